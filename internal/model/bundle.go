package model

import "time"

// MarketData holds market-condition readings from the market feed.
type MarketData struct {
	Demand            float64 `json:"demand"`
	EconomicIndicator float64 `json:"economic_indicator"`
}

// CustomerData holds behavior readings from the customer feed.
type CustomerData struct {
	PreferenceScore  float64            `json:"preference_score"`
	SeasonalPatterns map[string]float64 `json:"seasonal_patterns"`
}

// CompetitorData holds competitor pricing from the competitor feed.
type CompetitorData struct {
	AvgPrice float64   `json:"avg_price"`
	Prices   []float64 `json:"prices"`
}

// RawDataBundle is the filtered union of whichever feed fetches succeeded
// in one collection pass. A nil section means that source was unavailable.
type RawDataBundle struct {
	Market     *MarketData
	Customer   *CustomerData
	Competitor *CompetitorData
	FetchedAt  time.Time
}
