package tools

import (
	"context"
	"fmt"

	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/pkg/googleads"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
)

// UpdateCampaignBudgetTool changes a campaign budget's daily amount.
type UpdateCampaignBudgetTool struct {
	ads AdsAPI
	l   pkgLog.Logger
}

// NewUpdateCampaignBudgetTool creates a new budget adjustment tool.
func NewUpdateCampaignBudgetTool(ads AdsAPI, l pkgLog.Logger) agent.Tool {
	return &UpdateCampaignBudgetTool{ads: ads, l: l}
}

func (t *UpdateCampaignBudgetTool) Name() string {
	return "update_campaign_budget"
}

func (t *UpdateCampaignBudgetTool) Description() string {
	return "Change a campaign's daily budget. Takes the budget resource name (as returned by list_campaigns) and the new daily amount in currency units."
}

func (t *UpdateCampaignBudgetTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"budget_resource_name": map[string]interface{}{
				"type":        "string",
				"description": "Resource name of the campaign budget, e.g. customers/123/campaignBudgets/456",
			},
			"daily_amount": map[string]interface{}{
				"type":        "number",
				"description": "New daily budget in account currency units, e.g. 7.5",
			},
		},
		"required": []string{"budget_resource_name", "daily_amount"},
	}
}

func (t *UpdateCampaignBudgetTool) RequiresAuth() bool { return true }

func (t *UpdateCampaignBudgetTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	budget, err := stringParam(params, "budget_resource_name")
	if err != nil {
		return nil, err
	}
	amount, ok := params["daily_amount"].(float64)
	if !ok || amount <= 0 {
		return nil, fmt.Errorf("daily_amount parameter must be a positive number")
	}

	auth, _, err := adsAuth(ctx)
	if err != nil {
		return err.Error(), nil
	}

	micros := googleads.RoundBidMicros(int64(amount * 1_000_000))
	resource, err := t.ads.UpdateCampaignBudgetAmount(ctx, auth, budget, micros)
	if err != nil {
		t.l.Warnf(ctx, "Updating budget failed: %v", err)
		return fmt.Sprintf("Updating the campaign budget failed: %v", err), nil
	}

	return map[string]interface{}{
		"updated":       resource,
		"amount_micros": micros,
	}, nil
}
