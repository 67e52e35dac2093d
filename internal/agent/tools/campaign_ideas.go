package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/internal/artifact"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
	"github.com/denissa4/ads-manager/pkg/llmprovider"
)

// CampaignIdeasTool generates campaign ideas from the session's
// reference artifacts with a single LLM call and writes the result to a
// text artifact.
type CampaignIdeasTool struct {
	llm       *llmprovider.Manager
	artifacts *artifact.Store
	l         pkgLog.Logger
}

// NewCampaignIdeasTool creates a new campaign idea generation tool.
func NewCampaignIdeasTool(llm *llmprovider.Manager, artifacts *artifact.Store, l pkgLog.Logger) agent.Tool {
	return &CampaignIdeasTool{llm: llm, artifacts: artifacts, l: l}
}

func (t *CampaignIdeasTool) Name() string {
	return "create_campaign_ideas_report"
}

func (t *CampaignIdeasTool) Description() string {
	return "Generate Google Ads campaign ideas based on the session's keyword research report and any uploaded reference files. Writes the ideas to a downloadable text file."
}

func (t *CampaignIdeasTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"notes": map[string]interface{}{
				"type":        "string",
				"description": "Free-text guidance from the user about the business, audience or goals",
			},
			"count": map[string]interface{}{
				"type":        "integer",
				"description": "How many campaign ideas to generate (default 3)",
			},
		},
	}
}

func (t *CampaignIdeasTool) RequiresAuth() bool { return false }

func (t *CampaignIdeasTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	notes, _ := params["notes"].(string)
	count := intParam(params, "count", DefaultIdeaCount)

	reference := t.gatherReference(ctx, sess.KeywordsFile(), sess.UploadedFiles())
	if reference == "" {
		reference = "(no keyword research or uploaded reference files are available)"
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: fmt.Sprintf(ideaGenerationPrompt, count, notes)}},
		},
		Messages: []llmprovider.Message{{
			Role:  "user",
			Parts: []llmprovider.Part{{Text: "Reference material:\n\n" + reference}},
		}},
	}

	resp, err := t.llm.GenerateContent(ctx, req)
	if err != nil {
		t.l.Warnf(ctx, "Campaign idea generation failed: %v", err)
		return fmt.Sprintf("Campaign idea generation failed: %v", err), nil
	}

	var ideaText string
	for _, part := range resp.Content.Parts {
		ideaText += part.Text
	}
	if strings.TrimSpace(ideaText) == "" {
		return "The model returned no campaign ideas. Try again with more reference material.", nil
	}

	path, err := t.artifacts.WriteIdeasReport(ideaText)
	if err != nil {
		t.l.Errorf(ctx, "Failed to write ideas report: %v", err)
		return fmt.Sprintf("Ideas were generated but the report could not be written: %v", err), nil
	}
	sess.SetIdeasFile(path)

	return map[string]interface{}{
		"download_url": t.artifacts.DownloadURL(path),
		"ideas":        ideaText,
	}, nil
}

// gatherReference converts every known artifact to plain text and
// concatenates them with provenance headers.
func (t *CampaignIdeasTool) gatherReference(ctx context.Context, keywordsFile string, uploads []string) string {
	var b strings.Builder

	paths := uploads
	if keywordsFile != "" {
		paths = append([]string{keywordsFile}, uploads...)
	}

	for _, path := range paths {
		text, err := artifact.ExtractText(path)
		if err != nil {
			t.l.Warnf(ctx, "Failed to extract text from %s: %v", path, err)
			continue
		}
		fmt.Fprintf(&b, "--- %s ---\n%s\n\n", path, text)
	}
	return strings.TrimSpace(b.String())
}
