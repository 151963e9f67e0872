package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"DynaPrice/internal/collector"
	"DynaPrice/internal/config"
	"DynaPrice/internal/engine"
	"DynaPrice/internal/notifier"
	"DynaPrice/internal/predictor"
	"DynaPrice/internal/recorder"
	"DynaPrice/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] DynaPrice starting...")

	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.MarketURL != "" {
		fetcher = collector.NewRestFetcher(
			cfg.DataSource.MarketURL,
			cfg.DataSource.CustomerURL,
			cfg.DataSource.CompetitorURL,
			cfg.DataSource.APIKey,
			cfg.Proxy,
		)
	} else {
		log.Println("[WARN] no data source configured, using mock fetcher")
		fetcher = &collector.MockFetcher{}
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher)

	// Init price model
	mdl, err := predictor.NewLinearModel(cfg.Model.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] init price model: %v", err)
	}
	log.Printf("[INFO] price model: %s (version %d)", mdl.Name(), mdl.Snapshot().Version)

	// Init pricing engine
	eng := engine.New(mdl, cfg.PricingPolicy())

	// Init webhook notifier
	var wn *notifier.WebhookNotifier
	if cfg.Webhook.URL != "" {
		wn = notifier.NewWebhookNotifier(cfg.Webhook.URL, cfg.Proxy)
	} else {
		log.Println("[WARN] no webhook configured, notifications disabled")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, eng, wn, rec)
	if err := sched.RegisterAll(cfg.Schedule.PricingCron, cfg.Schedule.RetrainCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing pricing cycle now")
		go sched.RunPricingNow()
	}

	log.Println("[INFO] DynaPrice is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] DynaPrice stopped")
}
