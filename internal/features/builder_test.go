package features

import (
	"testing"

	"DynaPrice/internal/model"
)

func TestBuild_FullBundle(t *testing.T) {
	data := model.RawDataBundle{
		Market:     &model.MarketData{Demand: 72, EconomicIndicator: 1.4},
		Customer:   &model.CustomerData{PreferenceScore: 0.8, SeasonalPatterns: map[string]float64{"q4": 1.2}},
		Competitor: &model.CompetitorData{AvgPrice: 55, Prices: []float64{52, 54, 59}},
	}
	fs := Build(data)

	if fs.Market == nil || fs.Market.Demand != 72 || fs.Market.EconomicIndicator != 1.4 {
		t.Errorf("unexpected market features: %+v", fs.Market)
	}
	if fs.Customer == nil || fs.Customer.PreferenceScore != 0.8 {
		t.Errorf("unexpected customer features: %+v", fs.Customer)
	}
	if fs.Customer.SeasonalPattern["q4"] != 1.2 {
		t.Errorf("seasonal pattern not carried over: %+v", fs.Customer.SeasonalPattern)
	}
	if fs.Competitor == nil || fs.Competitor.PriceAvg != 55 || fs.Competitor.Count != 3 {
		t.Errorf("unexpected competitor features: %+v", fs.Competitor)
	}
}

func TestBuild_MissingSections(t *testing.T) {
	market := &model.MarketData{Demand: 50}
	customer := &model.CustomerData{PreferenceScore: 0.5}
	competitor := &model.CompetitorData{AvgPrice: 40}

	tests := []struct {
		name   string
		bundle model.RawDataBundle
	}{
		{"empty", model.RawDataBundle{}},
		{"market_only", model.RawDataBundle{Market: market}},
		{"customer_only", model.RawDataBundle{Customer: customer}},
		{"competitor_only", model.RawDataBundle{Competitor: competitor}},
		{"no_market", model.RawDataBundle{Customer: customer, Competitor: competitor}},
		{"no_customer", model.RawDataBundle{Market: market, Competitor: competitor}},
		{"no_competitor", model.RawDataBundle{Market: market, Customer: customer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := Build(tt.bundle)
			if (fs.Market != nil) != (tt.bundle.Market != nil) {
				t.Errorf("market presence mismatch: bundle=%v features=%v", tt.bundle.Market != nil, fs.Market != nil)
			}
			if (fs.Customer != nil) != (tt.bundle.Customer != nil) {
				t.Errorf("customer presence mismatch: bundle=%v features=%v", tt.bundle.Customer != nil, fs.Customer != nil)
			}
			if (fs.Competitor != nil) != (tt.bundle.Competitor != nil) {
				t.Errorf("competitor presence mismatch: bundle=%v features=%v", tt.bundle.Competitor != nil, fs.Competitor != nil)
			}
		})
	}
}

func TestBuild_PartialScenario(t *testing.T) {
	// Market and competitor available, customer feed down.
	data := model.RawDataBundle{
		Market:     &model.MarketData{Demand: 80},
		Competitor: &model.CompetitorData{AvgPrice: 50, Prices: []float64{48, 52}},
	}
	fs := Build(data)

	if fs.Market == nil || fs.Market.Demand != 80 {
		t.Errorf("expected market_demand=80, got %+v", fs.Market)
	}
	if fs.Market.EconomicIndicator != 0 {
		t.Errorf("missing sub-field should default to 0, got %v", fs.Market.EconomicIndicator)
	}
	if fs.Competitor == nil || fs.Competitor.PriceAvg != 50 || fs.Competitor.Count != 2 {
		t.Errorf("expected competitor avg=50 count=2, got %+v", fs.Competitor)
	}
	if fs.Customer != nil {
		t.Errorf("customer features should be omitted, got %+v", fs.Customer)
	}
}

func TestBuild_NilSeasonalPatterns(t *testing.T) {
	data := model.RawDataBundle{
		Customer: &model.CustomerData{PreferenceScore: 0.3},
	}
	fs := Build(data)
	if fs.Customer == nil {
		t.Fatal("expected customer features")
	}
	if fs.Customer.SeasonalPattern == nil {
		t.Error("seasonal pattern should default to an empty map, not nil")
	}
	if len(fs.Customer.SeasonalPattern) != 0 {
		t.Errorf("expected empty pattern, got %v", fs.Customer.SeasonalPattern)
	}
}

func TestBuild_EmptyCompetitorPrices(t *testing.T) {
	data := model.RawDataBundle{
		Competitor: &model.CompetitorData{AvgPrice: 45},
	}
	fs := Build(data)
	if fs.Competitor == nil || fs.Competitor.Count != 0 {
		t.Errorf("expected count=0 for absent price list, got %+v", fs.Competitor)
	}
}
