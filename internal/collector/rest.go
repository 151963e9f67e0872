package collector

import (
	"context"
	"fmt"
	"time"

	"DynaPrice/internal/model"

	"github.com/go-resty/resty/v2"
)

// RestFetcher implements Fetcher against the pricing data REST endpoints:
// <market>/current, <customer>/behavior and <competitor>/prices.
type RestFetcher struct {
	marketURL     string
	customerURL   string
	competitorURL string
	apiKey        string
	client        *resty.Client
}

// NewRestFetcher creates a fetcher with optional proxy support.
func NewRestFetcher(marketURL, customerURL, competitorURL, apiKey, proxyURL string) *RestFetcher {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetHeader("User-Agent", "dynaprice/1.0")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &RestFetcher{
		marketURL:     marketURL,
		customerURL:   customerURL,
		competitorURL: competitorURL,
		apiKey:        apiKey,
		client:        client,
	}
}

func (f *RestFetcher) Name() string { return "rest" }

func (f *RestFetcher) FetchMarket(ctx context.Context) (*model.MarketData, error) {
	var out model.MarketData
	if err := f.getJSON(ctx, f.marketURL+"/current", &out); err != nil {
		return nil, fmt.Errorf("fetch market data: %w", err)
	}
	return &out, nil
}

func (f *RestFetcher) FetchCustomer(ctx context.Context) (*model.CustomerData, error) {
	var out model.CustomerData
	if err := f.getJSON(ctx, f.customerURL+"/behavior", &out); err != nil {
		return nil, fmt.Errorf("fetch customer behavior: %w", err)
	}
	return &out, nil
}

func (f *RestFetcher) FetchCompetitor(ctx context.Context) (*model.CompetitorData, error) {
	var out model.CompetitorData
	if err := f.getJSON(ctx, f.competitorURL+"/prices", &out); err != nil {
		return nil, fmt.Errorf("fetch competitor data: %w", err)
	}
	return &out, nil
}

func (f *RestFetcher) getJSON(ctx context.Context, url string, out any) error {
	req := f.client.R().SetContext(ctx).SetResult(out)
	if f.apiKey != "" {
		req.SetQueryParam("api_key", f.apiKey)
	}
	resp, err := req.Get(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("status %d, body: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
