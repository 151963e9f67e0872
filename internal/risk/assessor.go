package risk

import "DynaPrice/internal/model"

// Levels maps total-score thresholds to risk levels.
var Levels = []struct {
	MinTotal float64
	Level    model.RiskLevel
}{
	{1.5, model.RiskHigh},
	{1.0, model.RiskElevated},
	{0.5, model.RiskModerate},
}

// mapLevel maps a total score to a RiskLevel. Scores below 0.5 are low risk.
func mapLevel(total float64) model.RiskLevel {
	for _, l := range Levels {
		if total >= l.MinTotal {
			return l.Level
		}
	}
	return model.RiskLow
}

// Assess scores the exposure of a candidate price against current data.
//
// Scoring rule: four factors, each rated 0 (safe) to 2 (maximum exposure),
// combined as a weighted sum in [0, 2]:
//
//	competitor deviation   0.40  distance of price from the competitor average
//	demand pressure        0.25  weak demand, worse when priced above competitors
//	competitor dispersion  0.20  spread of competitor prices (market volatility)
//	data coverage          0.15  how many of the three feeds were available
//
// Factors that cannot be computed from the available data score a neutral 1.0
// rather than failing, so Assess is total over any bundle.
func Assess(price float64, data model.RawDataBundle) model.RiskScore {
	f1 := scoreCompetitorDeviation(price, data.Competitor)
	f2 := scoreDemandPressure(price, data.Market, data.Competitor)
	f3 := scoreCompetitorDispersion(data.Competitor)
	f4 := scoreDataCoverage(data)

	factors := []model.RiskFactor{f1, f2, f3, f4}
	total := f1.Weighted + f2.Weighted + f3.Weighted + f4.Weighted

	return model.RiskScore{
		Factors: factors,
		Total:   total,
		Level:   mapLevel(total),
	}
}
