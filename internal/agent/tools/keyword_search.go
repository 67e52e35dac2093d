package tools

import (
	"context"
	"fmt"

	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/internal/artifact"
	"github.com/denissa4/ads-manager/pkg/googleads"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
	"golang.org/x/time/rate"
)

// KeywordSearchTool queries the keyword planning service per seed
// keyword and writes the aggregated results as a CSV report.
type KeywordSearchTool struct {
	ads       AdsAPI
	artifacts *artifact.Store
	limiter   *rate.Limiter
	l         pkgLog.Logger
}

// NewKeywordSearchTool creates a new keyword research tool.
func NewKeywordSearchTool(ads AdsAPI, artifacts *artifact.Store, l pkgLog.Logger) agent.Tool {
	return &KeywordSearchTool{
		ads:       ads,
		artifacts: artifacts,
		limiter:   rate.NewLimiter(rate.Limit(KeywordQueriesPerSecond), 1),
		l:         l,
	}
}

func (t *KeywordSearchTool) Name() string {
	return "google_ads_keyword_search"
}

func (t *KeywordSearchTool) Description() string {
	return "Research keyword ideas for a list of seed keywords using the Google Ads keyword planner. Returns search volume, competition and bid estimates, and writes a downloadable CSV report."
}

func (t *KeywordSearchTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"keywords": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Seed keywords to research, e.g. [\"running shoes\", \"trail runners\"]",
			},
		},
		"required": []string{"keywords"},
	}
}

func (t *KeywordSearchTool) RequiresAuth() bool { return true }

func (t *KeywordSearchTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	seeds, err := stringSliceParam(params, "keywords")
	if err != nil {
		return nil, err
	}

	auth, sess, err := adsAuth(ctx)
	if err != nil {
		return err.Error(), nil
	}

	// One upstream query per seed, paced by the limiter.
	var ideas []googleads.KeywordIdea
	for _, seed := range seeds {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		result, err := t.ads.GenerateKeywordIdeas(ctx, auth, []string{seed}, PerSeedResultCap)
		if err != nil {
			// API failures become conversational results, never crashes.
			t.l.Warnf(ctx, "Keyword idea query failed for seed %q: %v", seed, err)
			return fmt.Sprintf("Keyword research failed for %q: %v", seed, err), nil
		}
		ideas = append(ideas, result...)
	}

	if len(ideas) == 0 {
		return MsgNoKeywordData, nil
	}

	path, err := t.artifacts.WriteKeywordReport(ideas)
	if err != nil {
		t.l.Errorf(ctx, "Failed to write keyword report: %v", err)
		return fmt.Sprintf("Keyword data was retrieved but the report could not be written: %v", err), nil
	}
	sess.SetKeywordsFile(path)

	return map[string]interface{}{
		"download_url": t.artifacts.DownloadURL(path),
		"result_count": len(ideas),
		"keywords":     ideas,
	}, nil
}
