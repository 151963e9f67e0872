package recorder

import "DynaPrice/internal/model"

// CycleRecord holds everything produced by one pricing cycle.
type CycleRecord struct {
	Recommendation *model.PriceRecommendation
	Risk           *model.RiskScore // nil when assessment was skipped
	Source         string           // fetcher name
}

// TrainingEvent records a model update attempt.
type TrainingEvent struct {
	Model        string
	Observations int
	Succeeded    bool
	Note         string
}

// Recorder persists pricing history for analysis.
type Recorder interface {
	RecordCycle(rec *CycleRecord) error
	RecordTraining(evt *TrainingEvent) error
	Close() error
}
