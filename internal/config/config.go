package config

import (
	"fmt"
	"os"
	"strconv"

	"DynaPrice/internal/rules"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Pricing struct {
		MinPrice         float64 `yaml:"min_price"`
		MaxPrice         float64 `yaml:"max_price"` // 0 means unbounded
		SeasonalDiscount bool    `yaml:"seasonal_discount"`
	} `yaml:"pricing"`
	DataSource struct {
		MarketURL     string `yaml:"market_url"`
		CustomerURL   string `yaml:"customer_url"`
		CompetitorURL string `yaml:"competitor_url"`
		APIKey        string `yaml:"api_key"`
	} `yaml:"data_source"`
	Model struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"model"`
	Schedule struct {
		PricingCron string `yaml:"pricing_cron"`
		RetrainCron string `yaml:"retrain_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Webhook struct {
		URL string `yaml:"url"`
	} `yaml:"webhook"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PRICING_MIN_PRICE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Pricing.MinPrice = f
		}
	}
	if v := os.Getenv("PRICING_MAX_PRICE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Pricing.MaxPrice = f
		}
	}
	if v := os.Getenv("SEASONAL_DISCOUNT"); v != "" {
		cfg.Pricing.SeasonalDiscount = v == "true" || v == "1"
	}
	if v := os.Getenv("MARKET_DATA_URL"); v != "" {
		cfg.DataSource.MarketURL = v
	}
	if v := os.Getenv("CUSTOMER_DATA_URL"); v != "" {
		cfg.DataSource.CustomerURL = v
	}
	if v := os.Getenv("COMPETITOR_DATA_URL"); v != "" {
		cfg.DataSource.CompetitorURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		cfg.Webhook.URL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_PRICING"); v != "" {
		cfg.Schedule.PricingCron = v
	}
	if v := os.Getenv("CRON_RETRAIN"); v != "" {
		cfg.Schedule.RetrainCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Schedule.PricingCron == "" {
		cfg.Schedule.PricingCron = "0 */15 * * * *"
	}
	if cfg.Schedule.RetrainCron == "" {
		cfg.Schedule.RetrainCron = "0 0 3 * * *"
	}
	if cfg.Model.StateFile == "" {
		cfg.Model.StateFile = "data/model_state.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/dynaprice.db"
	}

	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Pricing.MinPrice < 0 {
		return fmt.Errorf("pricing.min_price must not be negative")
	}
	if c.Pricing.MaxPrice < 0 {
		return fmt.Errorf("pricing.max_price must not be negative")
	}
	if c.Pricing.MaxPrice != 0 && c.Pricing.MaxPrice < c.Pricing.MinPrice {
		return fmt.Errorf("pricing.max_price (%v) must be >= pricing.min_price (%v)",
			c.Pricing.MaxPrice, c.Pricing.MinPrice)
	}
	return nil
}

// PricingPolicy converts the pricing section into a rules.Policy. A zero
// max_price means unbounded.
func (c *Config) PricingPolicy() rules.Policy {
	p := rules.DefaultPolicy()
	p.MinPrice = c.Pricing.MinPrice
	if c.Pricing.MaxPrice > 0 {
		p.MaxPrice = c.Pricing.MaxPrice
	}
	p.SeasonalDiscount = c.Pricing.SeasonalDiscount
	return p
}
