package rules

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// SeasonalDiscountRate is the fixed markdown applied when the seasonal
// discount is enabled.
const SeasonalDiscountRate = 0.10

// Policy holds the configured pricing constraints.
type Policy struct {
	MinPrice         float64
	MaxPrice         float64 // +Inf means unbounded
	SeasonalDiscount bool
}

// DefaultPolicy returns the policy used when no pricing config is set:
// no lower bound above zero, no upper bound, no discount.
func DefaultPolicy() Policy {
	return Policy{MinPrice: 0, MaxPrice: math.Inf(1)}
}

// InvalidPriceError reports a non-finite predicted price. The adjuster never
// lets NaN or Inf flow into a recommendation.
type InvalidPriceError struct {
	Price float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid predicted price: %v", e.Price)
}

// Adjust clamps the predicted price into [MinPrice, MaxPrice], applies the
// seasonal discount, and rounds to currency granularity (2 decimals,
// half-to-even).
//
// When MinPrice > MaxPrice the configuration is inconsistent; MinPrice wins
// and the call still succeeds. The seasonal discount applies after clamping,
// so the discounted price may fall below MinPrice. That ordering is kept on
// purpose.
func Adjust(predicted float64, p Policy) (float64, error) {
	if math.IsNaN(predicted) || math.IsInf(predicted, 0) {
		return 0, &InvalidPriceError{Price: predicted}
	}

	clamped := math.Max(math.Min(predicted, p.MaxPrice), p.MinPrice)

	if p.SeasonalDiscount {
		clamped *= 1 - SeasonalDiscountRate
	}

	return round2(clamped), nil
}

// round2 rounds to 2 decimal places using banker's rounding.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).RoundBank(2).InexactFloat64()
}
