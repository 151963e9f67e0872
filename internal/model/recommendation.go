package model

import "time"

// PriceRecommendation is the final output of one pricing cycle.
type PriceRecommendation struct {
	ID        string
	RawPrice  float64 // model output before business rules
	Price     float64 // clamped, discounted, rounded to 2 decimals
	Features  FeatureSet
	CreatedAt time.Time
}
