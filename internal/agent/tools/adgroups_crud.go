package tools

import (
	"context"
	"fmt"

	"github.com/denissa4/ads-manager/internal/agent"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
)

// AddAdGroupTool creates an ad group under an existing campaign.
type AddAdGroupTool struct {
	ads AdsAPI
	l   pkgLog.Logger
}

// NewAddAdGroupTool creates a new ad group creation tool.
func NewAddAdGroupTool(ads AdsAPI, l pkgLog.Logger) agent.Tool {
	return &AddAdGroupTool{ads: ads, l: l}
}

func (t *AddAdGroupTool) Name() string {
	return "add_ad_group"
}

func (t *AddAdGroupTool) Description() string {
	return "Create a new ad group under an existing campaign, identified by its campaign resource name."
}

func (t *AddAdGroupTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"campaign_resource_name": map[string]interface{}{
				"type":        "string",
				"description": "Resource name of the campaign, e.g. customers/123/campaigns/456",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Name for the new ad group",
			},
			"cpc_bid_micros": map[string]interface{}{
				"type":        "integer",
				"description": "Optional default CPC bid in micros for the ad group",
			},
		},
		"required": []string{"campaign_resource_name", "name"},
	}
}

func (t *AddAdGroupTool) RequiresAuth() bool { return true }

func (t *AddAdGroupTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	campaign, err := stringParam(params, "campaign_resource_name")
	if err != nil {
		return nil, err
	}
	name, err := stringParam(params, "name")
	if err != nil {
		return nil, err
	}
	bid := int64(intParam(params, "cpc_bid_micros", 0))

	auth, _, err := adsAuth(ctx)
	if err != nil {
		return err.Error(), nil
	}

	resource, err := t.ads.CreateAdGroup(ctx, auth, campaign, name, bid)
	if err != nil {
		t.l.Warnf(ctx, "Creating ad group failed: %v", err)
		return fmt.Sprintf("Creating the ad group failed: %v", err), nil
	}

	return map[string]interface{}{"created": resource}, nil
}

// RemoveAdGroupTool removes an ad group by resource name.
type RemoveAdGroupTool struct {
	ads AdsAPI
	l   pkgLog.Logger
}

// NewRemoveAdGroupTool creates a new ad group removal tool.
func NewRemoveAdGroupTool(ads AdsAPI, l pkgLog.Logger) agent.Tool {
	return &RemoveAdGroupTool{ads: ads, l: l}
}

func (t *RemoveAdGroupTool) Name() string {
	return "remove_ad_group"
}

func (t *RemoveAdGroupTool) Description() string {
	return "Remove an ad group (and everything in it) by its resource name."
}

func (t *RemoveAdGroupTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"ad_group_resource_name": map[string]interface{}{
				"type":        "string",
				"description": "Resource name of the ad group to remove",
			},
		},
		"required": []string{"ad_group_resource_name"},
	}
}

func (t *RemoveAdGroupTool) RequiresAuth() bool { return true }

func (t *RemoveAdGroupTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	name, err := stringParam(params, "ad_group_resource_name")
	if err != nil {
		return nil, err
	}

	auth, _, err := adsAuth(ctx)
	if err != nil {
		return err.Error(), nil
	}

	resource, err := t.ads.RemoveAdGroup(ctx, auth, name)
	if err != nil {
		t.l.Warnf(ctx, "Removing ad group failed: %v", err)
		return fmt.Sprintf("Removing the ad group failed: %v", err), nil
	}

	return map[string]interface{}{"removed": resource}, nil
}
