package tools

import (
	"context"
	"fmt"

	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/internal/artifact"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
)

// FetchReferenceURLsTool downloads reference web pages into the
// session's uploaded files so later idea generation can read them.
type FetchReferenceURLsTool struct {
	artifacts *artifact.Store
	l         pkgLog.Logger
}

// NewFetchReferenceURLsTool creates a new reference ingestion tool.
func NewFetchReferenceURLsTool(artifacts *artifact.Store, l pkgLog.Logger) agent.Tool {
	return &FetchReferenceURLsTool{artifacts: artifacts, l: l}
}

func (t *FetchReferenceURLsTool) Name() string {
	return "fetch_reference_urls"
}

func (t *FetchReferenceURLsTool) Description() string {
	return "Download the text content of one or more web pages (e.g. the user's website) and keep it as reference material for campaign idea generation."
}

func (t *FetchReferenceURLsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"urls": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "HTTP or HTTPS URLs to fetch",
			},
		},
		"required": []string{"urls"},
	}
}

func (t *FetchReferenceURLsTool) RequiresAuth() bool { return false }

func (t *FetchReferenceURLsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	urls, err := stringSliceParam(params, "urls")
	if err != nil {
		return nil, err
	}

	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	// Per-URL failures are skipped, not fatal to the batch.
	var fetched []string
	failures := map[string]string{}
	for _, url := range urls {
		path, err := t.artifacts.FetchURL(ctx, url)
		if err != nil {
			t.l.Warnf(ctx, "Failed to fetch reference URL %s: %v", url, err)
			failures[url] = err.Error()
			continue
		}
		sess.AddUploadedFile(path)
		fetched = append(fetched, url)
	}

	if len(fetched) == 0 {
		return fmt.Sprintf("None of the URLs could be fetched: %v", failures), nil
	}

	result := map[string]interface{}{"fetched": fetched}
	if len(failures) > 0 {
		result["failed"] = failures
	}
	return result, nil
}
