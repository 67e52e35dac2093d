package tools

import (
	"context"
	"fmt"

	"github.com/denissa4/ads-manager/internal/agent"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
)

// RemoveCampaignTool removes a campaign by resource name.
type RemoveCampaignTool struct {
	ads AdsAPI
	l   pkgLog.Logger
}

// NewRemoveCampaignTool creates a new campaign removal tool.
func NewRemoveCampaignTool(ads AdsAPI, l pkgLog.Logger) agent.Tool {
	return &RemoveCampaignTool{ads: ads, l: l}
}

func (t *RemoveCampaignTool) Name() string {
	return "remove_campaign"
}

func (t *RemoveCampaignTool) Description() string {
	return "Remove a campaign (and everything in it) by its resource name."
}

func (t *RemoveCampaignTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"campaign_resource_name": map[string]interface{}{
				"type":        "string",
				"description": "Resource name of the campaign to remove, e.g. customers/123/campaigns/456",
			},
		},
		"required": []string{"campaign_resource_name"},
	}
}

func (t *RemoveCampaignTool) RequiresAuth() bool { return true }

func (t *RemoveCampaignTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	name, err := stringParam(params, "campaign_resource_name")
	if err != nil {
		return nil, err
	}

	auth, _, err := adsAuth(ctx)
	if err != nil {
		return err.Error(), nil
	}

	resource, err := t.ads.RemoveCampaign(ctx, auth, name)
	if err != nil {
		t.l.Warnf(ctx, "Removing campaign failed: %v", err)
		return fmt.Sprintf("Removing the campaign failed: %v", err), nil
	}

	return map[string]interface{}{"removed": resource}, nil
}
