package risk

import (
	"math"
	"testing"

	"DynaPrice/internal/model"
)

func TestAssess_AlignedLowRisk(t *testing.T) {
	data := model.RawDataBundle{
		Market:     &model.MarketData{Demand: 85},
		Customer:   &model.CustomerData{PreferenceScore: 0.7},
		Competitor: &model.CompetitorData{AvgPrice: 50, Prices: []float64{49, 50, 51}},
	}
	score := Assess(50, data)

	if len(score.Factors) != 4 {
		t.Fatalf("expected 4 factors, got %d", len(score.Factors))
	}
	if score.Total >= 0.5 {
		t.Errorf("aligned price in strong demand should score low, got %.3f", score.Total)
	}
	if score.Level != model.RiskLow {
		t.Errorf("expected LOW, got %s", score.Level)
	}
}

func TestAssess_OverpricedWeakDemand(t *testing.T) {
	data := model.RawDataBundle{
		Market:     &model.MarketData{Demand: 10},
		Competitor: &model.CompetitorData{AvgPrice: 50, Prices: []float64{48, 52}},
	}
	score := Assess(100, data)

	if score.Total < 1.0 {
		t.Errorf("doubled price into weak demand should score high, got %.3f", score.Total)
	}
	if score.Level != model.RiskElevated && score.Level != model.RiskHigh {
		t.Errorf("expected ELEVATED or HIGH, got %s", score.Level)
	}
}

func TestAssess_EmptyBundle(t *testing.T) {
	score := Assess(42, model.RawDataBundle{})

	// Unknown factors score neutral 1.0, coverage scores 2.0:
	// 0.40 + 0.25 + 0.20 + 0.30 = 1.15
	if math.Abs(score.Total-1.15) > 1e-9 {
		t.Errorf("expected total 1.15 for empty bundle, got %.4f", score.Total)
	}
	if score.Level != model.RiskElevated {
		t.Errorf("expected ELEVATED for empty bundle, got %s", score.Level)
	}
}

func TestMapLevel_Boundaries(t *testing.T) {
	tests := []struct {
		total float64
		level model.RiskLevel
	}{
		{2.0, model.RiskHigh},
		{1.5, model.RiskHigh},
		{1.49, model.RiskElevated},
		{1.0, model.RiskElevated},
		{0.99, model.RiskModerate},
		{0.5, model.RiskModerate},
		{0.49, model.RiskLow},
		{0.0, model.RiskLow},
	}
	for _, tt := range tests {
		if got := mapLevel(tt.total); got != tt.level {
			t.Errorf("mapLevel(%.2f) = %s, want %s", tt.total, got, tt.level)
		}
	}
}

func TestScoreCompetitorDeviation_Bands(t *testing.T) {
	comp := &model.CompetitorData{AvgPrice: 100, Prices: []float64{95, 105}}
	tests := []struct {
		price float64
		want  float64
	}{
		{60, 1.5},  // -40%
		{80, 0.5},  // -20%
		{100, 0},   // aligned
		{115, 0.5}, // +15%
		{125, 1.0}, // +25%
		{145, 1.5}, // +45%
		{200, 2.0}, // +100%
	}
	for _, tt := range tests {
		f := scoreCompetitorDeviation(tt.price, comp)
		if f.RawScore != tt.want {
			t.Errorf("price %v: raw score = %v, want %v (%s)", tt.price, f.RawScore, tt.want, f.Commentary)
		}
	}
}

func TestScoreCompetitorDeviation_Unavailable(t *testing.T) {
	f := scoreCompetitorDeviation(50, nil)
	if f.RawScore != 1.0 {
		t.Errorf("missing competitor data should score neutral 1.0, got %v", f.RawScore)
	}
	f = scoreCompetitorDeviation(50, &model.CompetitorData{AvgPrice: 0})
	if f.RawScore != 1.0 {
		t.Errorf("zero competitor average should score neutral 1.0, got %v", f.RawScore)
	}
}

func TestScoreDemandPressure_Compounding(t *testing.T) {
	market := &model.MarketData{Demand: 30}
	comp := &model.CompetitorData{AvgPrice: 50}

	below := scoreDemandPressure(45, market, comp)
	above := scoreDemandPressure(60, market, comp)
	if above.RawScore <= below.RawScore {
		t.Errorf("pricing above avg into weak demand should compound: below=%v above=%v", below.RawScore, above.RawScore)
	}
}

func TestScoreCompetitorDispersion(t *testing.T) {
	tight := scoreCompetitorDispersion(&model.CompetitorData{Prices: []float64{99, 100, 101}})
	wide := scoreCompetitorDispersion(&model.CompetitorData{Prices: []float64{40, 100, 160}})
	if tight.RawScore >= wide.RawScore {
		t.Errorf("wider spread should score higher: tight=%v wide=%v", tight.RawScore, wide.RawScore)
	}

	single := scoreCompetitorDispersion(&model.CompetitorData{Prices: []float64{50}})
	if single.RawScore != 1.0 {
		t.Errorf("single sample should score neutral 1.0, got %v", single.RawScore)
	}
}

func TestScoreDataCoverage(t *testing.T) {
	market := &model.MarketData{}
	customer := &model.CustomerData{}
	competitor := &model.CompetitorData{}

	tests := []struct {
		name   string
		bundle model.RawDataBundle
		want   float64
	}{
		{"all", model.RawDataBundle{Market: market, Customer: customer, Competitor: competitor}, 0},
		{"two", model.RawDataBundle{Market: market, Competitor: competitor}, 0.75},
		{"one", model.RawDataBundle{Customer: customer}, 1.5},
		{"none", model.RawDataBundle{}, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := scoreDataCoverage(tt.bundle)
			if f.RawScore != tt.want {
				t.Errorf("raw score = %v, want %v", f.RawScore, tt.want)
			}
		})
	}
}
