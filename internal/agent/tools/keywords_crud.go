package tools

import (
	"context"
	"fmt"

	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/pkg/googleads"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
)

// AddKeywordsTool adds broad-match keywords to an existing ad group.
type AddKeywordsTool struct {
	ads AdsAPI
	l   pkgLog.Logger
}

// NewAddKeywordsTool creates a new keyword addition tool.
func NewAddKeywordsTool(ads AdsAPI, l pkgLog.Logger) agent.Tool {
	return &AddKeywordsTool{ads: ads, l: l}
}

func (t *AddKeywordsTool) Name() string {
	return "add_keywords"
}

func (t *AddKeywordsTool) Description() string {
	return "Add broad-match keywords to an existing ad group, identified by its resource name. An optional CPC bid in micros applies to all added keywords."
}

func (t *AddKeywordsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"ad_group_resource_name": map[string]interface{}{
				"type":        "string",
				"description": "Resource name of the ad group, e.g. customers/123/adGroups/456",
			},
			"keywords": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Keyword texts to add",
			},
			"cpc_bid_micros": map[string]interface{}{
				"type":        "integer",
				"description": "Optional CPC bid in micros for the new keywords",
			},
		},
		"required": []string{"ad_group_resource_name", "keywords"},
	}
}

func (t *AddKeywordsTool) RequiresAuth() bool { return true }

func (t *AddKeywordsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	adGroup, err := stringParam(params, "ad_group_resource_name")
	if err != nil {
		return nil, err
	}
	texts, err := stringSliceParam(params, "keywords")
	if err != nil {
		return nil, err
	}
	bid := int64(intParam(params, "cpc_bid_micros", 0))

	auth, _, err := adsAuth(ctx)
	if err != nil {
		return err.Error(), nil
	}

	keywords := make([]googleads.NewKeyword, 0, len(texts))
	for _, text := range texts {
		keywords = append(keywords, googleads.NewKeyword{Text: text, CpcBidMicros: bid})
	}

	results, err := t.ads.CreateAdGroupKeywords(ctx, auth, adGroup, keywords)
	if err != nil {
		t.l.Warnf(ctx, "Adding keywords failed: %v", err)
		return fmt.Sprintf("Adding keywords failed: %v", err), nil
	}

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.ResourceName)
	}
	return map[string]interface{}{"created": names}, nil
}

// RemoveKeywordsTool removes keyword criteria by resource name.
type RemoveKeywordsTool struct {
	ads AdsAPI
	l   pkgLog.Logger
}

// NewRemoveKeywordsTool creates a new keyword removal tool.
func NewRemoveKeywordsTool(ads AdsAPI, l pkgLog.Logger) agent.Tool {
	return &RemoveKeywordsTool{ads: ads, l: l}
}

func (t *RemoveKeywordsTool) Name() string {
	return "remove_keywords"
}

func (t *RemoveKeywordsTool) Description() string {
	return "Remove keywords from an ad group by their criterion resource names (as returned by list_campaigns)."
}

func (t *RemoveKeywordsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"criterion_resource_names": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Resource names of the keyword criteria to remove",
			},
		},
		"required": []string{"criterion_resource_names"},
	}
}

func (t *RemoveKeywordsTool) RequiresAuth() bool { return true }

func (t *RemoveKeywordsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	names, err := stringSliceParam(params, "criterion_resource_names")
	if err != nil {
		return nil, err
	}

	auth, _, err := adsAuth(ctx)
	if err != nil {
		return err.Error(), nil
	}

	var removed []string
	for _, name := range names {
		resource, err := t.ads.RemoveAdGroupCriterion(ctx, auth, name)
		if err != nil {
			t.l.Warnf(ctx, "Removing keyword %s failed: %v", name, err)
			return fmt.Sprintf("Removing keyword %s failed: %v. Removed so far: %v", name, err, removed), nil
		}
		removed = append(removed, resource)
	}

	return map[string]interface{}{"removed": removed}, nil
}
