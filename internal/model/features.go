package model

// MarketFeatures are the features derived from the market section.
type MarketFeatures struct {
	Demand            float64
	EconomicIndicator float64
}

// CustomerFeatures are the features derived from the customer section.
type CustomerFeatures struct {
	PreferenceScore float64
	SeasonalPattern map[string]float64
}

// CompetitorFeatures are the features derived from the competitor section.
type CompetitorFeatures struct {
	PriceAvg float64
	Count    int
}

// FeatureSet is the feature view consumed by the price model. A nil group
// means the source section was absent from the bundle, not that its values
// were zero.
type FeatureSet struct {
	Market     *MarketFeatures
	Customer   *CustomerFeatures
	Competitor *CompetitorFeatures
}
