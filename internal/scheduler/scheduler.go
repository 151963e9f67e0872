package scheduler

import (
	"context"
	"fmt"
	"log"

	"DynaPrice/internal/collector"
	"DynaPrice/internal/engine"
	"DynaPrice/internal/features"
	"DynaPrice/internal/notifier"
	"DynaPrice/internal/predictor"
	"DynaPrice/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the cron-driven pricing and retrain cycles.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Engine    *engine.Engine
	Notifier  *notifier.WebhookNotifier // nil disables notifications
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, eng *engine.Engine, wn *notifier.WebhookNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Engine:    eng,
		Notifier:  wn,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// RegisterAll registers the pricing and retrain tasks.
func (s *Scheduler) RegisterAll(pricingCron, retrainCron string) error {
	if _, err := s.Cron.AddFunc(pricingCron, s.pricingCycle); err != nil {
		return fmt.Errorf("register pricing task: %w", err)
	}
	if _, err := s.Cron.AddFunc(retrainCron, s.retrainTask); err != nil {
		return fmt.Errorf("register retrain task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunPricingNow executes the pricing cycle immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunPricingNow() {
	s.pricingCycle()
}

func (s *Scheduler) pricingCycle() {
	log.Println("[INFO] running pricing cycle")
	bundle := s.Collector.Collect(s.Ctx)

	rec, err := s.Engine.Run(s.Ctx, bundle)
	if err != nil {
		log.Printf("[ERROR] pricing cycle: %v", err)
		s.tryNotify(fmt.Sprintf("pricing cycle failed: %v", err))
		return
	}

	// Risk assessment is advisory; it never blocks the recommendation.
	score := s.Engine.AssessRisk(rec.Price, bundle)
	log.Printf("[INFO] recommendation %s: %.2f (raw %.2f, risk %s)", rec.ID, rec.Price, rec.RawPrice, score.Level)

	s.tryNotify(notifier.FormatRecommendation(rec, &score))

	if err := s.Recorder.RecordCycle(&recorder.CycleRecord{
		Recommendation: rec,
		Risk:           &score,
		Source:         s.Collector.Fetcher.Name(),
	}); err != nil {
		log.Printf("[ERROR] record cycle: %v", err)
	}
}

func (s *Scheduler) retrainTask() {
	log.Println("[INFO] running model retrain")
	bundle := s.Collector.Collect(s.Ctx)
	if bundle.Competitor == nil || bundle.Competitor.AvgPrice <= 0 {
		log.Println("[WARN] retrain skipped: no competitor reference price")
		return
	}

	data := predictor.TrainingData{
		Observations: []predictor.Observation{{
			Features: features.Build(bundle),
			Price:    bundle.Competitor.AvgPrice,
		}},
	}

	evt := &recorder.TrainingEvent{
		Model:        s.Engine.Model.Name(),
		Observations: len(data.Observations),
		Succeeded:    true,
	}
	if err := s.Engine.Train(s.Ctx, data); err != nil {
		// Non-fatal: pricing keeps running on the previous model version.
		log.Printf("[ERROR] model update failed: %v", err)
		evt.Succeeded = false
		evt.Note = err.Error()
	}
	if err := s.Recorder.RecordTraining(evt); err != nil {
		log.Printf("[ERROR] record training event: %v", err)
	}
}

func (s *Scheduler) tryNotify(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
