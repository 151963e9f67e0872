package notifier

import (
	"fmt"
	"strings"

	"DynaPrice/internal/model"
)

// FormatRecommendation renders a pricing cycle into a report message.
func FormatRecommendation(rec *model.PriceRecommendation, score *model.RiskScore) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Price recommendation | %s\n\n", rec.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("final price: %.2f (model raw: %.2f)\n\n", rec.Price, rec.RawPrice))

	b.WriteString("inputs:\n")
	if f := rec.Features.Market; f != nil {
		b.WriteString(fmt.Sprintf("  market: demand=%.1f econ=%.2f\n", f.Demand, f.EconomicIndicator))
	} else {
		b.WriteString("  market: unavailable\n")
	}
	if f := rec.Features.Customer; f != nil {
		b.WriteString(fmt.Sprintf("  customer: preference=%.2f patterns=%d\n", f.PreferenceScore, len(f.SeasonalPattern)))
	} else {
		b.WriteString("  customer: unavailable\n")
	}
	if f := rec.Features.Competitor; f != nil {
		b.WriteString(fmt.Sprintf("  competitor: avg=%.2f count=%d\n", f.PriceAvg, f.Count))
	} else {
		b.WriteString("  competitor: unavailable\n")
	}

	if score != nil {
		b.WriteString(fmt.Sprintf("\nrisk: %.2f (%s)\n", score.Total, score.Level))
		for _, f := range score.Factors {
			b.WriteString(fmt.Sprintf("  %s(%s): %.2f (×%.2f) = %.3f\n",
				f.Name, f.Commentary, f.RawScore, f.Weight, f.Weighted))
		}
	}

	b.WriteString(fmt.Sprintf("\nid: %s", rec.ID))
	return b.String()
}
