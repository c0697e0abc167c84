// Package config holds the static reference data behind the generator:
// merchant categories, their typical spend ranges, the geographic bounding
// box, and the vocabularies the fraud patterns draw from. Pure data — a
// malformed entry here is a programmer error, not a runtime condition.
package config

// Range is an inclusive (Min, Max) interval used for uniform draws.
type Range struct {
	Min float64
	Max float64
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// ─── Merchant categories ──────────────────────────────────────────────────────

// Categories is the fixed merchant category enumeration.
var Categories = []string{
	"grocery",
	"restaurant",
	"gas_station",
	"pharmacy",
	"electronics",
	"clothing",
	"entertainment",
	"travel",
	"utilities",
	"online_retail",
}

// SpendingRanges maps each category to the typical per-transaction amount
// interval a legitimate customer produces there.
var SpendingRanges = map[string]Range{
	"grocery":       {20, 150},
	"restaurant":    {15, 80},
	"gas_station":   {30, 70},
	"pharmacy":      {10, 100},
	"electronics":   {50, 500},
	"clothing":      {30, 200},
	"entertainment": {20, 150},
	"travel":        {100, 1000},
	"utilities":     {50, 300},
	"online_retail": {25, 250},
}

// ─── Geographic boundaries ────────────────────────────────────────────────────

// Continental US bounding box, approximately. Every generated home, merchant,
// and clamped fraud location falls inside it.
var (
	LatRange = Range{25.0, 49.0}    // southern to northern US
	LonRange = Range{-125.0, -66.0} // western to eastern US
)

// ─── Fraud vocabularies ───────────────────────────────────────────────────────

// FraudProbability is the default fraction of a batch that carries fraud.
const FraudProbability = 0.02

// RoundAmounts are the suspiciously clean figures the round_amount pattern
// draws from. Real purchases almost never land on these exact values.
var RoundAmounts = []float64{100.00, 200.00, 250.00, 500.00, 750.00, 1000.00, 1500.00}

// HighRiskCategories are the categories disproportionately targeted by
// fraudsters. "jewelry" is listed for forward compatibility even though the
// current category enumeration never produces it.
var HighRiskCategories = map[string]bool{
	"electronics":   true,
	"jewelry":       true,
	"online_retail": true,
}
