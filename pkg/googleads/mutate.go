package googleads

import (
	"context"
	"fmt"
)

// BillableUnitMicros is the smallest billable bid increment. Bids are
// rounded down to a multiple of this before being sent.
const BillableUnitMicros int64 = 10_000

// RoundBidMicros rounds a bid down to the billable increment.
func RoundBidMicros(micros int64) int64 {
	if micros < 0 {
		return 0
	}
	return micros - micros%BillableUnitMicros
}

// CreateCampaignBudget creates a standard (non-shared) daily budget and
// returns its resource name.
func (c *Client) CreateCampaignBudget(ctx context.Context, auth UserAuth, name string, amountMicros int64) (string, error) {
	ops := []map[string]interface{}{{
		"create": map[string]interface{}{
			"name":             name,
			"amountMicros":     fmt.Sprintf("%d", amountMicros),
			"deliveryMethod":   "STANDARD",
			"explicitlyShared": false,
		},
	}}

	results, err := c.mutate(ctx, auth, "campaignBudgets", ops)
	if err != nil {
		return "", err
	}
	return firstResourceName(results)
}

// UpdateCampaignBudgetAmount sets a new daily amount on an existing budget.
func (c *Client) UpdateCampaignBudgetAmount(ctx context.Context, auth UserAuth, budgetResourceName string, amountMicros int64) (string, error) {
	ops := []map[string]interface{}{{
		"updateMask": "amount_micros",
		"update": map[string]interface{}{
			"resourceName": budgetResourceName,
			"amountMicros": fmt.Sprintf("%d", amountMicros),
		},
	}}

	results, err := c.mutate(ctx, auth, "campaignBudgets", ops)
	if err != nil {
		return "", err
	}
	return firstResourceName(results)
}

// CreateCampaign creates a paused search campaign with fixed network and
// political-advertising settings, attached to the given budget.
func (c *Client) CreateCampaign(ctx context.Context, auth UserAuth, name, budgetResourceName string) (string, error) {
	ops := []map[string]interface{}{{
		"create": map[string]interface{}{
			"name":                   name,
			"status":                 "PAUSED",
			"advertisingChannelType": "SEARCH",
			"campaignBudget":         budgetResourceName,
			"manualCpc":              map[string]interface{}{},
			"networkSettings": NetworkSettings{
				TargetGoogleSearch:         true,
				TargetSearchNetwork:        true,
				TargetContentNetwork:       false,
				TargetPartnerSearchNetwork: false,
			},
			"containsEuPoliticalAdvertising": "DOES_NOT_CONTAIN_EU_POLITICAL_ADVERTISING",
		},
	}}

	results, err := c.mutate(ctx, auth, "campaigns", ops)
	if err != nil {
		return "", err
	}
	return firstResourceName(results)
}

// RemoveCampaign removes a campaign by resource name.
func (c *Client) RemoveCampaign(ctx context.Context, auth UserAuth, resourceName string) (string, error) {
	return c.removeResource(ctx, auth, "campaigns", resourceName)
}

// CreateAdGroup creates an enabled ad group under a campaign.
func (c *Client) CreateAdGroup(ctx context.Context, auth UserAuth, campaignResourceName, name string, cpcBidMicros int64) (string, error) {
	create := map[string]interface{}{
		"name":     name,
		"status":   "ENABLED",
		"type":     "SEARCH_STANDARD",
		"campaign": campaignResourceName,
	}
	if cpcBidMicros > 0 {
		create["cpcBidMicros"] = fmt.Sprintf("%d", RoundBidMicros(cpcBidMicros))
	}

	results, err := c.mutate(ctx, auth, "adGroups", []map[string]interface{}{{"create": create}})
	if err != nil {
		return "", err
	}
	return firstResourceName(results)
}

// RemoveAdGroup removes an ad group by resource name.
func (c *Client) RemoveAdGroup(ctx context.Context, auth UserAuth, resourceName string) (string, error) {
	return c.removeResource(ctx, auth, "adGroups", resourceName)
}

// CreateAdGroupKeywords creates broad-match keyword criteria under an ad
// group, one operation per keyword. Bids are rounded to the billable unit.
func (c *Client) CreateAdGroupKeywords(ctx context.Context, auth UserAuth, adGroupResourceName string, keywords []NewKeyword) ([]MutateResult, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("at least one keyword is required")
	}

	ops := make([]map[string]interface{}, 0, len(keywords))
	for _, kw := range keywords {
		create := map[string]interface{}{
			"adGroup": adGroupResourceName,
			"status":  "ENABLED",
			"keyword": KeywordInfo{Text: kw.Text, MatchType: "BROAD"},
		}
		if kw.CpcBidMicros > 0 {
			create["cpcBidMicros"] = fmt.Sprintf("%d", RoundBidMicros(kw.CpcBidMicros))
		}
		ops = append(ops, map[string]interface{}{"create": create})
	}

	return c.mutate(ctx, auth, "adGroupCriteria", ops)
}

// RemoveAdGroupCriterion removes one keyword criterion by resource name.
func (c *Client) RemoveAdGroupCriterion(ctx context.Context, auth UserAuth, resourceName string) (string, error) {
	return c.removeResource(ctx, auth, "adGroupCriteria", resourceName)
}

// CreateSharedNegativeSet creates a NEGATIVE_KEYWORDS shared set, fills it
// with the given keywords, and links it to the campaign. Returns the shared
// set resource name.
func (c *Client) CreateSharedNegativeSet(ctx context.Context, auth UserAuth, name string, keywords []string, campaignResourceName string) (string, error) {
	results, err := c.mutate(ctx, auth, "sharedSets", []map[string]interface{}{{
		"create": map[string]interface{}{
			"name": name,
			"type": "NEGATIVE_KEYWORDS",
		},
	}})
	if err != nil {
		return "", err
	}
	sharedSet, err := firstResourceName(results)
	if err != nil {
		return "", err
	}

	ops := make([]map[string]interface{}, 0, len(keywords))
	for _, kw := range keywords {
		ops = append(ops, map[string]interface{}{
			"create": map[string]interface{}{
				"sharedSet": sharedSet,
				"keyword":   KeywordInfo{Text: kw, MatchType: "BROAD"},
			},
		})
	}
	if len(ops) > 0 {
		if _, err := c.mutate(ctx, auth, "sharedCriteria", ops); err != nil {
			return "", err
		}
	}

	if _, err := c.mutate(ctx, auth, "campaignSharedSets", []map[string]interface{}{{
		"create": map[string]interface{}{
			"campaign":  campaignResourceName,
			"sharedSet": sharedSet,
		},
	}}); err != nil {
		return "", err
	}

	return sharedSet, nil
}

// CreateResponsiveSearchAd creates a paused responsive search ad under an
// ad group.
func (c *Client) CreateResponsiveSearchAd(ctx context.Context, auth UserAuth, adGroupResourceName string, headlines, descriptions []string, finalURL string) (string, error) {
	headlineAssets := make([]AdTextAsset, 0, len(headlines))
	for _, h := range headlines {
		headlineAssets = append(headlineAssets, AdTextAsset{Text: h})
	}
	descriptionAssets := make([]AdTextAsset, 0, len(descriptions))
	for _, d := range descriptions {
		descriptionAssets = append(descriptionAssets, AdTextAsset{Text: d})
	}

	ops := []map[string]interface{}{{
		"create": map[string]interface{}{
			"adGroup": adGroupResourceName,
			"status":  "PAUSED",
			"ad": map[string]interface{}{
				"finalUrls": []string{finalURL},
				"responsiveSearchAd": ResponsiveSearchAdInfo{
					Headlines:    headlineAssets,
					Descriptions: descriptionAssets,
				},
			},
		},
	}}

	results, err := c.mutate(ctx, auth, "adGroupAds", ops)
	if err != nil {
		return "", err
	}
	return firstResourceName(results)
}

// RemoveAdGroupAd removes an ad by resource name.
func (c *Client) RemoveAdGroupAd(ctx context.Context, auth UserAuth, resourceName string) (string, error) {
	return c.removeResource(ctx, auth, "adGroupAds", resourceName)
}

func (c *Client) removeResource(ctx context.Context, auth UserAuth, resource, resourceName string) (string, error) {
	results, err := c.mutate(ctx, auth, resource, []map[string]interface{}{{"remove": resourceName}})
	if err != nil {
		return "", err
	}
	return firstResourceName(results)
}

func firstResourceName(results []MutateResult) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("mutate returned no results")
	}
	return results[0].ResourceName, nil
}
