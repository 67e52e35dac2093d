package tools

import (
	"context"
	"fmt"

	"github.com/denissa4/ads-manager/internal/agent"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
)

// AddAdTool creates a paused responsive search ad in an existing ad group.
type AddAdTool struct {
	ads AdsAPI
	l   pkgLog.Logger
}

// NewAddAdTool creates a new ad creation tool.
func NewAddAdTool(ads AdsAPI, l pkgLog.Logger) agent.Tool {
	return &AddAdTool{ads: ads, l: l}
}

func (t *AddAdTool) Name() string {
	return "add_ad"
}

func (t *AddAdTool) Description() string {
	return "Create a paused responsive search ad in an existing ad group. Headlines must be at most 30 characters and descriptions at most 90 characters."
}

func (t *AddAdTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"ad_group_resource_name": map[string]interface{}{
				"type":        "string",
				"description": "Resource name of the ad group",
			},
			"headlines": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Ad headlines (3 to 15, each at most 30 characters)",
			},
			"descriptions": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Ad descriptions (2 to 4, each at most 90 characters)",
			},
			"final_url": map[string]interface{}{
				"type":        "string",
				"description": "Landing page URL",
			},
		},
		"required": []string{"ad_group_resource_name", "headlines", "descriptions", "final_url"},
	}
}

func (t *AddAdTool) RequiresAuth() bool { return true }

func (t *AddAdTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	adGroup, err := stringParam(params, "ad_group_resource_name")
	if err != nil {
		return nil, err
	}
	headlines, err := stringSliceParam(params, "headlines")
	if err != nil {
		return nil, err
	}
	descriptions, err := stringSliceParam(params, "descriptions")
	if err != nil {
		return nil, err
	}
	finalURL, err := stringParam(params, "final_url")
	if err != nil {
		return nil, err
	}

	auth, _, err := adsAuth(ctx)
	if err != nil {
		return err.Error(), nil
	}

	resource, err := t.ads.CreateResponsiveSearchAd(ctx, auth, adGroup, sanitizeAll(headlines), sanitizeAll(descriptions), finalURL)
	if err != nil {
		t.l.Warnf(ctx, "Creating ad failed: %v", err)
		return fmt.Sprintf("Creating the ad failed: %v", err), nil
	}

	return map[string]interface{}{"created": resource, "status": "PAUSED"}, nil
}

// RemoveAdTool removes an ad by resource name.
type RemoveAdTool struct {
	ads AdsAPI
	l   pkgLog.Logger
}

// NewRemoveAdTool creates a new ad removal tool.
func NewRemoveAdTool(ads AdsAPI, l pkgLog.Logger) agent.Tool {
	return &RemoveAdTool{ads: ads, l: l}
}

func (t *RemoveAdTool) Name() string {
	return "remove_ad"
}

func (t *RemoveAdTool) Description() string {
	return "Remove an ad by its ad group ad resource name (as returned by list_campaigns)."
}

func (t *RemoveAdTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"ad_resource_name": map[string]interface{}{
				"type":        "string",
				"description": "Resource name of the ad group ad to remove",
			},
		},
		"required": []string{"ad_resource_name"},
	}
}

func (t *RemoveAdTool) RequiresAuth() bool { return true }

func (t *RemoveAdTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	name, err := stringParam(params, "ad_resource_name")
	if err != nil {
		return nil, err
	}

	auth, _, err := adsAuth(ctx)
	if err != nil {
		return err.Error(), nil
	}

	resource, err := t.ads.RemoveAdGroupAd(ctx, auth, name)
	if err != nil {
		t.l.Warnf(ctx, "Removing ad failed: %v", err)
		return fmt.Sprintf("Removing the ad failed: %v", err), nil
	}

	return map[string]interface{}{"removed": resource}, nil
}
