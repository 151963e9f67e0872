package engine

import (
	"context"
	"fmt"
	"time"

	"DynaPrice/internal/features"
	"DynaPrice/internal/model"
	"DynaPrice/internal/predictor"
	"DynaPrice/internal/risk"
	"DynaPrice/internal/rules"

	"github.com/google/uuid"
)

// PricingError wraps any upstream failure of a pricing run. Callers receive
// either a bounded recommendation or a PricingError, never a partial price.
type PricingError struct {
	Stage string
	Err   error
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("pricing %s: %v", e.Stage, e.Err)
}

func (e *PricingError) Unwrap() error { return e.Err }

// Engine sequences feature building, prediction, and business-rule
// adjustment, and exposes risk assessment as a side channel.
type Engine struct {
	Model  predictor.Predictor
	Policy rules.Policy
}

// New creates an Engine around the given model and pricing policy.
func New(m predictor.Predictor, policy rules.Policy) *Engine {
	return &Engine{Model: m, Policy: policy}
}

// Run executes one pricing pass over the given bundle.
func (e *Engine) Run(ctx context.Context, data model.RawDataBundle) (*model.PriceRecommendation, error) {
	fs := features.Build(data)

	raw, err := e.Model.Predict(ctx, fs)
	if err != nil {
		return nil, &PricingError{Stage: "predict", Err: err}
	}

	final, err := rules.Adjust(raw, e.Policy)
	if err != nil {
		return nil, &PricingError{Stage: "adjust", Err: err}
	}

	return &model.PriceRecommendation{
		ID:        uuid.NewString(),
		RawPrice:  raw,
		Price:     final,
		Features:  fs,
		CreatedAt: time.Now(),
	}, nil
}

// AssessRisk scores a recommended price against the data it was derived
// from. It is advisory: not required to produce a recommendation, and it
// cannot fail.
func (e *Engine) AssessRisk(price float64, data model.RawDataBundle) model.RiskScore {
	return risk.Assess(price, data)
}

// Train forwards new observations to the model when it is trainable. The
// returned error is always a TrainingError (or nil) and is non-fatal: in-flight
// pricing requests are unaffected, callers just log and move on.
func (e *Engine) Train(ctx context.Context, data predictor.TrainingData) error {
	t, ok := e.Model.(predictor.Trainer)
	if !ok {
		return nil
	}
	return t.Train(ctx, data)
}
