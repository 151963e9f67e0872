package collector

import (
	"context"

	"DynaPrice/internal/model"
)

// Fetcher defines the interface for fetching the three raw pricing feeds.
// Each fetch is independently failable.
type Fetcher interface {
	FetchMarket(ctx context.Context) (*model.MarketData, error)
	FetchCustomer(ctx context.Context) (*model.CustomerData, error)
	FetchCompetitor(ctx context.Context) (*model.CompetitorData, error)
	Name() string
}
