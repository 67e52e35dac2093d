package googleads

// UserAuth carries the per-user credentials attached to every API call.
// The refresh token is exchanged for an access token by the OAuth2
// transport; the customer ID selects the operating account.
type UserAuth struct {
	CustomerID   string
	RefreshToken string
}

// --- Keyword planning ---

// KeywordIdeasRequest is the body for customers/{id}:generateKeywordIdeas.
type KeywordIdeasRequest struct {
	Language           string       `json:"language,omitempty"`
	GeoTargetConstants []string     `json:"geoTargetConstants,omitempty"`
	KeywordPlanNetwork string       `json:"keywordPlanNetwork,omitempty"`
	PageSize           int          `json:"pageSize,omitempty"`
	PageToken          string       `json:"pageToken,omitempty"`
	KeywordSeed        *KeywordSeed `json:"keywordSeed,omitempty"`
}

// KeywordSeed holds the seed keywords for idea generation.
type KeywordSeed struct {
	Keywords []string `json:"keywords"`
}

// KeywordIdeasResponse is the response for generateKeywordIdeas.
type KeywordIdeasResponse struct {
	Results       []KeywordIdeaResult `json:"results"`
	NextPageToken string              `json:"nextPageToken,omitempty"`
}

// KeywordIdeaResult is one generated keyword idea.
type KeywordIdeaResult struct {
	Text    string              `json:"text"`
	Metrics *KeywordIdeaMetrics `json:"keywordIdeaMetrics,omitempty"`
}

// KeywordIdeaMetrics holds the planning metrics for a keyword idea.
// The REST transport encodes int64 fields as JSON strings.
type KeywordIdeaMetrics struct {
	AvgMonthlySearches     int64  `json:"avgMonthlySearches,string,omitempty"`
	Competition            string `json:"competition,omitempty"`
	CompetitionIndex       int64  `json:"competitionIndex,string,omitempty"`
	LowTopOfPageBidMicros  int64  `json:"lowTopOfPageBidMicros,string,omitempty"`
	HighTopOfPageBidMicros int64  `json:"highTopOfPageBidMicros,string,omitempty"`
}

// KeywordIdea is the flattened idea handed to callers.
type KeywordIdea struct {
	Keyword                string `json:"keyword"`
	AvgMonthlySearches     int64  `json:"avg_monthly_searches"`
	Competition            string `json:"competition"`
	CompetitionIndex       int64  `json:"competition_index"`
	LowTopOfPageBidMicros  int64  `json:"low_top_of_page_bid"`
	HighTopOfPageBidMicros int64  `json:"high_top_of_page_bid"`
}

// --- GAQL search ---

// SearchRequest is the body for customers/{id}/googleAds:search.
type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
}

// SearchResponse is one page of GAQL results.
type SearchResponse struct {
	Results       []Row  `json:"results"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// Row is a GAQL result row; only the attributes selected by a query are set.
type Row struct {
	Campaign          *Campaign          `json:"campaign,omitempty"`
	CampaignBudget    *CampaignBudget    `json:"campaignBudget,omitempty"`
	AdGroup           *AdGroup           `json:"adGroup,omitempty"`
	AdGroupCriterion  *AdGroupCriterion  `json:"adGroupCriterion,omitempty"`
	AdGroupAd         *AdGroupAd         `json:"adGroupAd,omitempty"`
	SharedSet         *SharedSet         `json:"sharedSet,omitempty"`
	SharedCriterion   *SharedCriterion   `json:"sharedCriterion,omitempty"`
	CampaignSharedSet *CampaignSharedSet `json:"campaignSharedSet,omitempty"`
}

// Campaign is the campaign resource subset used by this service.
type Campaign struct {
	ResourceName   string `json:"resourceName,omitempty"`
	ID             int64  `json:"id,string,omitempty"`
	Name           string `json:"name,omitempty"`
	Status         string `json:"status,omitempty"`
	CampaignBudget string `json:"campaignBudget,omitempty"`
}

// CampaignBudget is the budget resource subset.
type CampaignBudget struct {
	ResourceName string `json:"resourceName,omitempty"`
	Name         string `json:"name,omitempty"`
	AmountMicros int64  `json:"amountMicros,string,omitempty"`
	Delivery     string `json:"deliveryMethod,omitempty"`
}

// AdGroup is the ad group resource subset.
type AdGroup struct {
	ResourceName string `json:"resourceName,omitempty"`
	ID           int64  `json:"id,string,omitempty"`
	Name         string `json:"name,omitempty"`
	Status       string `json:"status,omitempty"`
	Type         string `json:"type,omitempty"`
	Campaign     string `json:"campaign,omitempty"`
	CpcBidMicros int64  `json:"cpcBidMicros,string,omitempty"`
}

// KeywordInfo is a keyword criterion payload.
type KeywordInfo struct {
	Text      string `json:"text,omitempty"`
	MatchType string `json:"matchType,omitempty"`
}

// AdGroupCriterion is the ad group criterion subset (keywords).
type AdGroupCriterion struct {
	ResourceName string       `json:"resourceName,omitempty"`
	Status       string       `json:"status,omitempty"`
	Negative     bool         `json:"negative,omitempty"`
	AdGroup      string       `json:"adGroup,omitempty"`
	CpcBidMicros int64        `json:"cpcBidMicros,string,omitempty"`
	Keyword      *KeywordInfo `json:"keyword,omitempty"`
}

// AdTextAsset is a headline or description asset.
type AdTextAsset struct {
	Text string `json:"text"`
}

// ResponsiveSearchAdInfo holds RSA assets.
type ResponsiveSearchAdInfo struct {
	Headlines    []AdTextAsset `json:"headlines,omitempty"`
	Descriptions []AdTextAsset `json:"descriptions,omitempty"`
}

// Ad is the ad resource subset.
type Ad struct {
	ResourceName       string                  `json:"resourceName,omitempty"`
	ID                 int64                   `json:"id,string,omitempty"`
	FinalURLs          []string                `json:"finalUrls,omitempty"`
	ResponsiveSearchAd *ResponsiveSearchAdInfo `json:"responsiveSearchAd,omitempty"`
}

// AdGroupAd links an ad to an ad group.
type AdGroupAd struct {
	ResourceName string `json:"resourceName,omitempty"`
	Status       string `json:"status,omitempty"`
	AdGroup      string `json:"adGroup,omitempty"`
	Ad           *Ad    `json:"ad,omitempty"`
}

// SharedSet is a shared negative keyword set.
type SharedSet struct {
	ResourceName string `json:"resourceName,omitempty"`
	Name         string `json:"name,omitempty"`
	Type         string `json:"type,omitempty"`
}

// SharedCriterion is a criterion inside a shared set.
type SharedCriterion struct {
	ResourceName string       `json:"resourceName,omitempty"`
	SharedSet    string       `json:"sharedSet,omitempty"`
	Keyword      *KeywordInfo `json:"keyword,omitempty"`
}

// CampaignSharedSet links a shared set to a campaign.
type CampaignSharedSet struct {
	ResourceName string `json:"resourceName,omitempty"`
	Campaign     string `json:"campaign,omitempty"`
	SharedSet    string `json:"sharedSet,omitempty"`
}

// NetworkSettings holds the campaign network targeting flags.
type NetworkSettings struct {
	TargetGoogleSearch         bool `json:"targetGoogleSearch"`
	TargetSearchNetwork        bool `json:"targetSearchNetwork"`
	TargetContentNetwork       bool `json:"targetContentNetwork"`
	TargetPartnerSearchNetwork bool `json:"targetPartnerSearchNetwork"`
}

// --- Mutate plumbing ---

// mutateRequest is the generic body for <resource>:mutate endpoints.
type mutateRequest struct {
	Operations []map[string]interface{} `json:"operations"`
}

// MutateResult carries the resource name of a created/updated/removed resource.
type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

// mutateResponse is the generic response for <resource>:mutate endpoints.
type mutateResponse struct {
	Results []MutateResult `json:"results"`
}

// NewKeyword pairs keyword text with an optional CPC bid for creation calls.
type NewKeyword struct {
	Text         string
	CpcBidMicros int64
}
