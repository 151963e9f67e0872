package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"DynaPrice/internal/model"
)

// Weights parameterize the linear baseline model. Version increments on
// every successful train, so identical (features, version) pairs always
// produce the same prediction.
type Weights struct {
	BasePrice        float64 `json:"base_price"`
	Demand           float64 `json:"demand"`
	Economic         float64 `json:"economic"`
	Preference       float64 `json:"preference"`
	CompetitorAnchor float64 `json:"competitor_anchor"` // 0..1 pull toward competitor avg
	Seasonal         float64 `json:"seasonal"`
	Version          int     `json:"version"`
}

// DefaultWeights returns the starting parameters for a fresh model.
func DefaultWeights() Weights {
	return Weights{
		BasePrice:        50,
		Demand:           0.25,
		Economic:         5,
		Preference:       10,
		CompetitorAnchor: 0.6,
		Seasonal:         8,
		Version:          1,
	}
}

// LinearModel is a deterministic baseline predictor: a weighted linear
// combination of the available features, anchored toward the competitor
// average when one is known. Train is single-writer relative to concurrent
// Predict calls; Predict reads a weight snapshot under the read lock.
type LinearModel struct {
	mu        sync.RWMutex
	weights   Weights
	stateFile string // "" disables persistence
}

// NewLinearModel creates a LinearModel, loading persisted weights from
// stateFile when it exists. An empty stateFile keeps the model in-memory.
func NewLinearModel(stateFile string) (*LinearModel, error) {
	m := &LinearModel{weights: DefaultWeights(), stateFile: stateFile}
	if stateFile == "" {
		return m, nil
	}

	data, err := os.ReadFile(stateFile)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, fmt.Errorf("read model state: %w", err)
	}
	var w Weights
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parse model state: %w", err)
	}
	m.weights = w
	return m, nil
}

func (m *LinearModel) Name() string { return "linear" }

// Predict computes the raw price for the given features. Missing feature
// groups simply contribute nothing.
func (m *LinearModel) Predict(_ context.Context, fs model.FeatureSet) (float64, error) {
	m.mu.RLock()
	w := m.weights
	m.mu.RUnlock()

	price := w.BasePrice
	if f := fs.Market; f != nil {
		price += f.Demand * w.Demand
		price += f.EconomicIndicator * w.Economic
	}
	if f := fs.Customer; f != nil {
		price += f.PreferenceScore * w.Preference
		price += seasonalIndex(f.SeasonalPattern) * w.Seasonal
	}
	if f := fs.Competitor; f != nil && f.PriceAvg > 0 {
		price = price*(1-w.CompetitorAnchor) + f.PriceAvg*w.CompetitorAnchor
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &PredictionError{Model: m.Name(), Err: fmt.Errorf("non-finite output %v", price)}
	}
	return price, nil
}

// Train nudges the base price toward the mean observed price and bumps the
// model version. The whole update runs under the write lock so concurrent
// Predict calls see either the old or the new weights, never a mix.
func (m *LinearModel) Train(_ context.Context, data TrainingData) error {
	if len(data.Observations) == 0 {
		return &TrainingError{Model: m.Name(), Err: errors.New("empty training batch")}
	}
	var sum float64
	for _, obs := range data.Observations {
		if math.IsNaN(obs.Price) || math.IsInf(obs.Price, 0) || obs.Price < 0 {
			return &TrainingError{Model: m.Name(), Err: fmt.Errorf("invalid observed price %v", obs.Price)}
		}
		sum += obs.Price
	}
	mean := sum / float64(len(data.Observations))

	m.mu.Lock()
	defer m.mu.Unlock()

	const learningRate = 0.2
	m.weights.BasePrice += (mean - m.weights.BasePrice) * learningRate
	m.weights.Version++

	if err := m.saveLocked(); err != nil {
		return &TrainingError{Model: m.Name(), Err: err}
	}
	return nil
}

// Snapshot returns a copy of the current weights.
func (m *LinearModel) Snapshot() Weights {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.weights
}

func (m *LinearModel) saveLocked() error {
	if m.stateFile == "" {
		return nil
	}
	data, err := json.MarshalIndent(m.weights, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.stateFile, data, 0644)
}

// seasonalIndex reduces a seasonal pattern map to a single value in [-1, 1]:
// the mean of the pattern values, clipped. Order-independent, so it stays
// deterministic over map iteration.
func seasonalIndex(pattern map[string]float64) float64 {
	if len(pattern) == 0 {
		return 0
	}
	var sum float64
	for _, v := range pattern {
		sum += v
	}
	idx := sum / float64(len(pattern))
	return math.Max(-1, math.Min(1, idx))
}
