package predictor

import (
	"context"
	"fmt"

	"DynaPrice/internal/model"
)

// Observation pairs a feature set with the price observed for it.
type Observation struct {
	Features model.FeatureSet `json:"features"`
	Price    float64          `json:"price"`
}

// TrainingData is a batch of observations used to update a model.
type TrainingData struct {
	Observations []Observation `json:"observations"`
}

// Predictor produces a raw price from a feature set. Predict must be
// deterministic for identical input within a single model version.
type Predictor interface {
	Predict(ctx context.Context, features model.FeatureSet) (float64, error)
	Name() string
}

// Trainer updates shared model state. Implementations must serialize Train
// against concurrent Predict calls.
type Trainer interface {
	Train(ctx context.Context, data TrainingData) error
}

// PredictionError reports a failed model inference. It is fatal to the
// pricing request it occurred in.
type PredictionError struct {
	Model string
	Err   error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("model %s: predict: %v", e.Model, e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// TrainingError reports a failed model update. It never affects in-flight
// pricing requests.
type TrainingError struct {
	Model string
	Err   error
}

func (e *TrainingError) Error() string {
	return fmt.Sprintf("model %s: train: %v", e.Model, e.Err)
}

func (e *TrainingError) Unwrap() error { return e.Err }

// MockModel returns controllable fixed values for development and testing.
type MockModel struct {
	Price      float64
	PredictErr error
	TrainErr   error
	Trained    int
}

func (m *MockModel) Name() string { return "mock" }

func (m *MockModel) Predict(_ context.Context, _ model.FeatureSet) (float64, error) {
	if m.PredictErr != nil {
		return 0, &PredictionError{Model: m.Name(), Err: m.PredictErr}
	}
	return m.Price, nil
}

func (m *MockModel) Train(_ context.Context, _ TrainingData) error {
	m.Trained++
	if m.TrainErr != nil {
		return &TrainingError{Model: m.Name(), Err: m.TrainErr}
	}
	return nil
}
