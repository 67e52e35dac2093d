package googleads

import (
	"context"
	"fmt"
)

// Keyword planning constants. Language 1000 is English, geo target 2826 is
// the United Kingdom.
const (
	LanguageEnglish       = "languageConstants/1000"
	GeoTargetUK           = "geoTargetConstants/2826"
	NetworkSearchPartners = "GOOGLE_SEARCH_AND_PARTNERS"
)

// GenerateKeywordIdeas queries the keyword-idea planning service for one set
// of seed keywords and returns at most limit flattened ideas.
func (c *Client) GenerateKeywordIdeas(ctx context.Context, auth UserAuth, seeds []string, limit int) ([]KeywordIdea, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("at least one seed keyword is required")
	}

	req := KeywordIdeasRequest{
		Language:           LanguageEnglish,
		GeoTargetConstants: []string{GeoTargetUK},
		KeywordPlanNetwork: NetworkSearchPartners,
		PageSize:           limit,
		KeywordSeed:        &KeywordSeed{Keywords: seeds},
	}

	path := fmt.Sprintf("customers/%s:generateKeywordIdeas", auth.CustomerID)

	var resp KeywordIdeasResponse
	if err := c.post(ctx, auth, path, req, &resp); err != nil {
		return nil, err
	}

	ideas := make([]KeywordIdea, 0, len(resp.Results))
	for _, r := range resp.Results {
		if limit > 0 && len(ideas) >= limit {
			break
		}

		idea := KeywordIdea{Keyword: r.Text}
		if r.Metrics != nil {
			idea.AvgMonthlySearches = r.Metrics.AvgMonthlySearches
			idea.Competition = r.Metrics.Competition
			idea.CompetitionIndex = r.Metrics.CompetitionIndex
			idea.LowTopOfPageBidMicros = r.Metrics.LowTopOfPageBidMicros
			idea.HighTopOfPageBidMicros = r.Metrics.HighTopOfPageBidMicros
		}
		ideas = append(ideas, idea)
	}

	return ideas, nil
}

// Search runs a GAQL query, following page tokens until the result set is
// exhausted, and returns all rows.
func (c *Client) Search(ctx context.Context, auth UserAuth, query string) ([]Row, error) {
	path := fmt.Sprintf("customers/%s/googleAds:search", auth.CustomerID)

	var rows []Row
	pageToken := ""
	for {
		var resp SearchResponse
		req := SearchRequest{Query: query, PageToken: pageToken}
		if err := c.post(ctx, auth, path, req, &resp); err != nil {
			return nil, err
		}

		rows = append(rows, resp.Results...)

		if resp.NextPageToken == "" {
			return rows, nil
		}
		pageToken = resp.NextPageToken
	}
}
