package model

// Campaign is the aggregated read model for a Google Ads campaign,
// assembled from multiple report queries.
type Campaign struct {
	ID           int64
	Name         string
	Status       string
	ResourceName string
	Budget       *Budget
	AdGroups     []AdGroup
}

// Budget describes a campaign's daily budget.
type Budget struct {
	ID           int64
	ResourceName string
	AmountMicros int64
}

// AdGroup groups keywords and ads under a campaign.
type AdGroup struct {
	ID           int64
	Name         string
	Status       string
	ResourceName string
	Keywords     []Keyword
	Ads          []Ad
}

// Keyword is an ad group keyword criterion.
type Keyword struct {
	CriterionID  int64
	Text         string
	MatchType    string
	ResourceName string
	CpcBidMicros int64
}

// Ad is a responsive search ad within an ad group.
type Ad struct {
	ID           int64
	ResourceName string
	Status       string
	Headlines    []string
	Descriptions []string
	FinalURLs    []string
}
