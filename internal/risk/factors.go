package risk

import (
	"fmt"
	"math"

	"DynaPrice/internal/model"
)

// scoreCompetitorDeviation rates how far the candidate price sits from the
// competitor average. Overpricing scores harsher than undercutting.
// Weight: 0.40
func scoreCompetitorDeviation(price float64, c *model.CompetitorData) model.RiskFactor {
	if c == nil || c.AvgPrice <= 0 {
		return model.RiskFactor{Name: "competitor deviation", RawScore: 1.0, Weight: 0.40, Weighted: 0.40, Commentary: "competitor average unavailable"}
	}
	deviation := (price - c.AvgPrice) / c.AvgPrice * 100 // percentage

	var score float64
	switch {
	case deviation <= -30:
		score = 1.5 // deep undercut, margin exposure
	case deviation <= -10:
		score = 0.5
	case deviation <= 10:
		score = 0
	case deviation <= 20:
		score = 0.5
	case deviation <= 30:
		score = 1.0
	case deviation <= 50:
		score = 1.5
	default:
		score = 2.0
	}

	return model.RiskFactor{
		Name:       "competitor deviation",
		RawScore:   score,
		Weight:     0.40,
		Weighted:   score * 0.40,
		Commentary: fmt.Sprintf("%+.1f%% vs competitor avg", deviation),
	}
}

// scoreDemandPressure rates exposure from weak market demand, on the feed's
// 0-100 demand scale. Pricing above the competitor average into weak demand
// compounds the exposure.
// Weight: 0.25
func scoreDemandPressure(price float64, m *model.MarketData, c *model.CompetitorData) model.RiskFactor {
	if m == nil {
		return model.RiskFactor{Name: "demand pressure", RawScore: 1.0, Weight: 0.25, Weighted: 0.25, Commentary: "market data unavailable"}
	}

	var score float64
	switch {
	case m.Demand >= 80:
		score = 0
	case m.Demand >= 60:
		score = 0.25
	case m.Demand >= 40:
		score = 0.75
	case m.Demand >= 20:
		score = 1.25
	default:
		score = 1.75
	}

	commentary := fmt.Sprintf("demand=%.0f", m.Demand)
	if c != nil && c.AvgPrice > 0 && price > c.AvgPrice && m.Demand < 40 {
		score = math.Min(2.0, score+0.25)
		commentary += ", priced above avg into weak demand"
	}

	return model.RiskFactor{
		Name:       "demand pressure",
		RawScore:   score,
		Weight:     0.25,
		Weighted:   score * 0.25,
		Commentary: commentary,
	}
}

// scoreCompetitorDispersion rates market volatility via the coefficient of
// variation of the competitor price list. Needs at least two samples.
// Weight: 0.20
func scoreCompetitorDispersion(c *model.CompetitorData) model.RiskFactor {
	if c == nil || len(c.Prices) < 2 {
		return model.RiskFactor{Name: "competitor dispersion", RawScore: 1.0, Weight: 0.20, Weighted: 0.20, Commentary: "insufficient price samples"}
	}

	m := mean(c.Prices)
	if m <= 0 {
		return model.RiskFactor{Name: "competitor dispersion", RawScore: 1.0, Weight: 0.20, Weighted: 0.20, Commentary: "non-positive mean price"}
	}
	cv := stddev(c.Prices, m) / m * 100

	var score float64
	switch {
	case cv <= 5:
		score = 0.25
	case cv <= 10:
		score = 0.5
	case cv <= 20:
		score = 1.0
	case cv <= 35:
		score = 1.5
	default:
		score = 2.0
	}

	return model.RiskFactor{
		Name:       "competitor dispersion",
		RawScore:   score,
		Weight:     0.20,
		Weighted:   score * 0.20,
		Commentary: fmt.Sprintf("cv=%.1f%% over %d prices", cv, len(c.Prices)),
	}
}

// scoreDataCoverage rates how much of the input data was actually available.
// A price derived from fewer feeds is a blinder bet.
// Weight: 0.15
func scoreDataCoverage(data model.RawDataBundle) model.RiskFactor {
	available := 0
	if data.Market != nil {
		available++
	}
	if data.Customer != nil {
		available++
	}
	if data.Competitor != nil {
		available++
	}

	var score float64
	switch available {
	case 3:
		score = 0
	case 2:
		score = 0.75
	case 1:
		score = 1.5
	default:
		score = 2.0
	}

	return model.RiskFactor{
		Name:       "data coverage",
		RawScore:   score,
		Weight:     0.15,
		Weighted:   score * 0.15,
		Commentary: fmt.Sprintf("%d/3 sources available", available),
	}
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func stddev(vals []float64, mean float64) float64 {
	var sq float64
	for _, v := range vals {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(vals)))
}
