package tools

import (
	"context"
	"fmt"

	"github.com/denissa4/ads-manager/internal/agent"
	"github.com/denissa4/ads-manager/internal/model"
	pkgLog "github.com/denissa4/ads-manager/pkg/log"
)

// GAQL queries for the portfolio read model. Results are paginated by
// the client; aggregation happens here.
const (
	gaqlCampaigns = `SELECT campaign.id, campaign.name, campaign.status, campaign.resource_name, campaign.campaign_budget, campaign_budget.resource_name, campaign_budget.amount_micros FROM campaign WHERE campaign.status != 'REMOVED'`

	gaqlAdGroups = `SELECT ad_group.id, ad_group.name, ad_group.status, ad_group.resource_name, ad_group.campaign FROM ad_group WHERE ad_group.status != 'REMOVED'`

	gaqlKeywords = `SELECT ad_group_criterion.resource_name, ad_group_criterion.criterion_id, ad_group_criterion.keyword.text, ad_group_criterion.keyword.match_type, ad_group_criterion.cpc_bid_micros, ad_group_criterion.ad_group FROM keyword_view WHERE ad_group_criterion.status != 'REMOVED'`

	gaqlAds = `SELECT ad_group_ad.resource_name, ad_group_ad.status, ad_group_ad.ad_group, ad_group_ad.ad.id, ad_group_ad.ad.final_urls, ad_group_ad.ad.responsive_search_ad.headlines, ad_group_ad.ad.responsive_search_ad.descriptions FROM ad_group_ad WHERE ad_group_ad.status != 'REMOVED'`
)

// ListCampaignsTool aggregates campaigns, ad groups, keywords and ads
// into one nested read model.
type ListCampaignsTool struct {
	ads AdsAPI
	l   pkgLog.Logger
}

// NewListCampaignsTool creates a new campaign listing tool.
func NewListCampaignsTool(ads AdsAPI, l pkgLog.Logger) agent.Tool {
	return &ListCampaignsTool{ads: ads, l: l}
}

func (t *ListCampaignsTool) Name() string {
	return "list_campaigns"
}

func (t *ListCampaignsTool) Description() string {
	return "List all Google Ads campaigns in the account with their budgets, ad groups, keywords and ads, as one nested structure."
}

func (t *ListCampaignsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *ListCampaignsTool) RequiresAuth() bool { return true }

func (t *ListCampaignsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	auth, _, err := adsAuth(ctx)
	if err != nil {
		return err.Error(), nil
	}

	campaignRows, err := t.ads.Search(ctx, auth, gaqlCampaigns)
	if err != nil {
		t.l.Warnf(ctx, "Campaign query failed: %v", err)
		return fmt.Sprintf("Listing campaigns failed: %v", err), nil
	}

	// Aggregate keyed by campaign then ad group resource name.
	campaigns := make(map[string]*model.Campaign)
	var order []string
	for _, row := range campaignRows {
		if row.Campaign == nil {
			continue
		}
		c := &model.Campaign{
			ID:           row.Campaign.ID,
			Name:         row.Campaign.Name,
			Status:       row.Campaign.Status,
			ResourceName: row.Campaign.ResourceName,
		}
		if row.CampaignBudget != nil {
			c.Budget = &model.Budget{
				ResourceName: row.CampaignBudget.ResourceName,
				AmountMicros: row.CampaignBudget.AmountMicros,
			}
		}
		campaigns[c.ResourceName] = c
		order = append(order, c.ResourceName)
	}

	adGroupRows, err := t.ads.Search(ctx, auth, gaqlAdGroups)
	if err != nil {
		return fmt.Sprintf("Listing ad groups failed: %v", err), nil
	}
	adGroups := make(map[string]*model.AdGroup)
	var adGroupOrder []string
	campaignOf := make(map[string]string)
	for _, row := range adGroupRows {
		if row.AdGroup == nil {
			continue
		}
		g := &model.AdGroup{
			ID:           row.AdGroup.ID,
			Name:         row.AdGroup.Name,
			Status:       row.AdGroup.Status,
			ResourceName: row.AdGroup.ResourceName,
		}
		adGroups[g.ResourceName] = g
		adGroupOrder = append(adGroupOrder, g.ResourceName)
		campaignOf[g.ResourceName] = row.AdGroup.Campaign
	}

	keywordRows, err := t.ads.Search(ctx, auth, gaqlKeywords)
	if err != nil {
		return fmt.Sprintf("Listing keywords failed: %v", err), nil
	}
	for _, row := range keywordRows {
		if row.AdGroupCriterion == nil || row.AdGroupCriterion.Keyword == nil {
			continue
		}
		g, ok := adGroups[row.AdGroupCriterion.AdGroup]
		if !ok {
			continue
		}
		g.Keywords = append(g.Keywords, model.Keyword{
			Text:         row.AdGroupCriterion.Keyword.Text,
			MatchType:    row.AdGroupCriterion.Keyword.MatchType,
			ResourceName: row.AdGroupCriterion.ResourceName,
			CpcBidMicros: row.AdGroupCriterion.CpcBidMicros,
		})
	}

	adRows, err := t.ads.Search(ctx, auth, gaqlAds)
	if err != nil {
		return fmt.Sprintf("Listing ads failed: %v", err), nil
	}
	for _, row := range adRows {
		if row.AdGroupAd == nil || row.AdGroupAd.Ad == nil {
			continue
		}
		g, ok := adGroups[row.AdGroupAd.AdGroup]
		if !ok {
			continue
		}
		ad := model.Ad{
			ID:           row.AdGroupAd.Ad.ID,
			ResourceName: row.AdGroupAd.ResourceName,
			Status:       row.AdGroupAd.Status,
			FinalURLs:    row.AdGroupAd.Ad.FinalURLs,
		}
		if rsa := row.AdGroupAd.Ad.ResponsiveSearchAd; rsa != nil {
			for _, h := range rsa.Headlines {
				ad.Headlines = append(ad.Headlines, h.Text)
			}
			for _, d := range rsa.Descriptions {
				ad.Descriptions = append(ad.Descriptions, d.Text)
			}
		}
		g.Ads = append(g.Ads, ad)
	}

	// Attach the fully-populated ad groups to their campaigns.
	for _, resourceName := range adGroupOrder {
		g := adGroups[resourceName]
		if c, ok := campaigns[campaignOf[resourceName]]; ok {
			c.AdGroups = append(c.AdGroups, *g)
		}
	}

	out := make([]model.Campaign, 0, len(order))
	for _, resourceName := range order {
		out = append(out, *campaigns[resourceName])
	}

	return map[string]interface{}{
		"campaign_count": len(out),
		"campaigns":      out,
	}, nil
}
