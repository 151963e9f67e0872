package model

// RiskFactor represents a single factor's contribution to a risk score.
type RiskFactor struct {
	Name       string
	RawScore   float64 // 0 (safe) to 2 (maximum exposure)
	Weight     float64
	Weighted   float64
	Commentary string
}

// RiskLevel labels a risk score band.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskElevated RiskLevel = "ELEVATED"
	RiskHigh     RiskLevel = "HIGH"
)

// RiskScore is the exposure assessment for a (price, data) pair.
type RiskScore struct {
	Factors []RiskFactor
	Total   float64 // weighted sum in [0, 2]
	Level   RiskLevel
}
