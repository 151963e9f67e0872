package features

import "DynaPrice/internal/model"

// Build derives the model feature set from a raw data bundle. It is total
// over any bundle: an absent section leaves the corresponding feature group
// nil, it never produces an error. Numeric sub-fields default to 0 and the
// seasonal pattern defaults to an empty map.
func Build(data model.RawDataBundle) model.FeatureSet {
	var fs model.FeatureSet

	if m := data.Market; m != nil {
		fs.Market = &model.MarketFeatures{
			Demand:            m.Demand,
			EconomicIndicator: m.EconomicIndicator,
		}
	}

	if c := data.Customer; c != nil {
		pattern := c.SeasonalPatterns
		if pattern == nil {
			pattern = map[string]float64{}
		}
		fs.Customer = &model.CustomerFeatures{
			PreferenceScore: c.PreferenceScore,
			SeasonalPattern: pattern,
		}
	}

	if c := data.Competitor; c != nil {
		fs.Competitor = &model.CompetitorFeatures{
			PriceAvg: c.AvgPrice,
			Count:    len(c.Prices),
		}
	}

	return fs
}
