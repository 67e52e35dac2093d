package tools

import (
	"context"
	"fmt"

	"github.com/denissa4/ads-manager/internal/session"
	"github.com/denissa4/ads-manager/pkg/googleads"
)

// AdsAPI is the Google Ads surface the tools consume; satisfied by
// *googleads.Client and mocked in tests.
type AdsAPI interface {
	GenerateKeywordIdeas(ctx context.Context, auth googleads.UserAuth, seeds []string, limit int) ([]googleads.KeywordIdea, error)
	Search(ctx context.Context, auth googleads.UserAuth, query string) ([]googleads.Row, error)
	CreateCampaignBudget(ctx context.Context, auth googleads.UserAuth, name string, amountMicros int64) (string, error)
	UpdateCampaignBudgetAmount(ctx context.Context, auth googleads.UserAuth, budgetResourceName string, amountMicros int64) (string, error)
	CreateCampaign(ctx context.Context, auth googleads.UserAuth, name, budgetResourceName string) (string, error)
	RemoveCampaign(ctx context.Context, auth googleads.UserAuth, resourceName string) (string, error)
	CreateAdGroup(ctx context.Context, auth googleads.UserAuth, campaignResourceName, name string, cpcBidMicros int64) (string, error)
	RemoveAdGroup(ctx context.Context, auth googleads.UserAuth, resourceName string) (string, error)
	CreateAdGroupKeywords(ctx context.Context, auth googleads.UserAuth, adGroupResourceName string, keywords []googleads.NewKeyword) ([]googleads.MutateResult, error)
	RemoveAdGroupCriterion(ctx context.Context, auth googleads.UserAuth, resourceName string) (string, error)
	CreateSharedNegativeSet(ctx context.Context, auth googleads.UserAuth, name string, keywords []string, campaignResourceName string) (string, error)
	CreateResponsiveSearchAd(ctx context.Context, auth googleads.UserAuth, adGroupResourceName string, headlines, descriptions []string, finalURL string) (string, error)
	RemoveAdGroupAd(ctx context.Context, auth googleads.UserAuth, resourceName string) (string, error)
}

// currentSession pulls the session the orchestrator attached to the
// context. Tools depend on it for credentials and artifact paths.
func currentSession(ctx context.Context) (*session.Session, error) {
	s, ok := session.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("no session in context")
	}
	return s, nil
}

// adsAuth extracts per-user API credentials from the session. The
// orchestrator's auth guard runs first, so a miss here is a safety net,
// not the normal path.
func adsAuth(ctx context.Context) (googleads.UserAuth, *session.Session, error) {
	s, err := currentSession(ctx)
	if err != nil {
		return googleads.UserAuth{}, nil, err
	}
	customerID, refreshToken := s.Credentials()
	if customerID == "" || refreshToken == "" {
		return googleads.UserAuth{}, nil, fmt.Errorf("session is not authenticated")
	}
	return googleads.UserAuth{CustomerID: customerID, RefreshToken: refreshToken}, s, nil
}

// stringParam extracts a required string parameter.
func stringParam(params map[string]interface{}, key string) (string, error) {
	v, ok := params[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return v, nil
}

// stringSliceParam extracts a required non-empty list-of-strings parameter.
func stringSliceParam(params map[string]interface{}, key string) ([]string, error) {
	raw, ok := params[key].([]interface{})
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("%s parameter must be a non-empty list", key)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("%s parameter must contain only strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

// intParam extracts an optional integer parameter with a default.
// Function-call arguments arrive as JSON numbers (float64).
func intParam(params map[string]interface{}, key string, def int) int {
	if v, ok := params[key].(float64); ok && int(v) > 0 {
		return int(v)
	}
	return def
}
