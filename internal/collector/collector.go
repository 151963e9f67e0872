package collector

import (
	"context"
	"log"
	"time"

	"DynaPrice/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// A nil field without a matching error falls back to a canned value.
type MockFetcher struct {
	Market     *model.MarketData
	Customer   *model.CustomerData
	Competitor *model.CompetitorData

	MarketErr     error
	CustomerErr   error
	CompetitorErr error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchMarket(_ context.Context) (*model.MarketData, error) {
	if m.MarketErr != nil {
		return nil, m.MarketErr
	}
	if m.Market != nil {
		return m.Market, nil
	}
	return &model.MarketData{Demand: 65, EconomicIndicator: 1.2}, nil
}

func (m *MockFetcher) FetchCustomer(_ context.Context) (*model.CustomerData, error) {
	if m.CustomerErr != nil {
		return nil, m.CustomerErr
	}
	if m.Customer != nil {
		return m.Customer, nil
	}
	return &model.CustomerData{
		PreferenceScore:  0.7,
		SeasonalPatterns: map[string]float64{"q4": 1.1},
	}, nil
}

func (m *MockFetcher) FetchCompetitor(_ context.Context) (*model.CompetitorData, error) {
	if m.CompetitorErr != nil {
		return nil, m.CompetitorErr
	}
	if m.Competitor != nil {
		return m.Competitor, nil
	}
	return &model.CompetitorData{AvgPrice: 50, Prices: []float64{48, 52}}, nil
}

// Collector aggregates the three data feeds into a raw bundle.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches all three feeds. A failed feed is logged and omitted; the
// bundle is the filtered union of whichever fetches succeeded, so it may be
// empty but is always usable downstream.
func (c *Collector) Collect(ctx context.Context) model.RawDataBundle {
	bundle := model.RawDataBundle{FetchedAt: time.Now()}

	if m, err := c.Fetcher.FetchMarket(ctx); err != nil {
		log.Printf("[WARN] market feed unavailable: %v", err)
	} else {
		bundle.Market = m
	}

	if cu, err := c.Fetcher.FetchCustomer(ctx); err != nil {
		log.Printf("[WARN] customer feed unavailable: %v", err)
	} else {
		bundle.Customer = cu
	}

	if co, err := c.Fetcher.FetchCompetitor(ctx); err != nil {
		log.Printf("[WARN] competitor feed unavailable: %v", err)
	} else {
		bundle.Competitor = co
	}

	return bundle
}
