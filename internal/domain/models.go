// Package domain contains the core record types emitted by the generator.
// Keeping them in one place makes the statistical shape of the dataset —
// and what each fraud pattern deliberately violates — easy to reason about.
package domain

import "time"

// ─── Constants ───────────────────────────────────────────────────────────────

// Currency used for all generated transactions. The downstream pipeline is
// currency-agnostic; a single currency keeps amount distributions comparable.
const CurrencyUSD = "USD"

// Fraud pattern tags. Each tag names the distributional assumption the
// pattern violates; the set below is exhaustive and stable — downstream
// models train against these exact labels.
const (
	FraudUnusualAmount     = "unusual_amount"     // amount far above the user's baseline
	FraudGeographicAnomaly = "geographic_anomaly" // location far from the user's home
	FraudHighFrequency     = "high_frequency"     // burst of transactions in a short window
	FraudCardTesting       = "card_testing"       // many micro-amounts probing a card
	FraudTimeAnomaly       = "time_anomaly"       // implausible 1–5 AM timing
	FraudRoundAmount       = "round_amount"       // suspiciously clean manual-entry figure
	FraudHighRiskCategory  = "high_risk_category" // large spend in fraud-prone categories
)

// FraudTypes returns every valid fraud_type tag, in a stable order.
func FraudTypes() []string {
	return []string{
		FraudUnusualAmount,
		FraudGeographicAnomaly,
		FraudHighFrequency,
		FraudCardTesting,
		FraudTimeAnomaly,
		FraudRoundAmount,
		FraudHighRiskCategory,
	}
}

// ─── Core domain types ────────────────────────────────────────────────────────

// User is a member of the population pool. Created once at population-build
// time and immutable thereafter; every synthesizer samples from the pool but
// never writes to it.
type User struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	HomeLat         float64 `json:"home_lat"`
	HomeLon         float64 `json:"home_lon"`
	TypicalSpending float64 `json:"typical_spending"` // baseline transaction size, > 0
	AccountAgeDays  int     `json:"account_age_days"`
}

// Merchant is a member of the merchant pool. AverageTransaction is the
// midpoint of the category's typical spending range.
type Merchant struct {
	MerchantID         string  `json:"merchant_id"`
	MerchantName       string  `json:"merchant_name"`
	Category           string  `json:"category"`
	LocationLat        float64 `json:"location_lat"`
	LocationLon        float64 `json:"location_lon"`
	AverageTransaction float64 `json:"average_transaction"`
}

// Transaction is the emitted unit: a terminal, independent fact produced by
// exactly one synthesizer call. UserID and MerchantID are weak references
// into the population pools (lookup only, no ownership).
//
// Invariant: FraudType is non-nil if and only if IsFraud is true.
type Transaction struct {
	TransactionID    string    `json:"transaction_id"`
	Timestamp        time.Time `json:"timestamp"`
	UserID           string    `json:"user_id"`
	CardNumber       string    `json:"card_number"` // masked, last 4 digits visible
	MerchantID       string    `json:"merchant_id"`
	MerchantName     string    `json:"merchant_name"`
	MerchantCategory string    `json:"merchant_category"`
	Amount           float64   `json:"amount"` // positive, two-decimal currency value
	Currency         string    `json:"currency"`
	LocationLat      float64   `json:"location_lat"`
	LocationLon      float64   `json:"location_lon"`
	DeviceID         string    `json:"device_id"`
	IPAddress        string    `json:"ip_address"`
	IsFraud          bool      `json:"is_fraud"`
	FraudType        *string   `json:"fraud_type"` // nil when IsFraud is false
}

// Record converts the transaction to its flat keyed representation — the
// sole wire artifact the generator produces. The timestamp renders as an
// ISO-8601 string; every other field keeps its natural scalar type, with a
// nil fraud_type rendering as null.
func (t Transaction) Record() map[string]any {
	var fraudType any
	if t.FraudType != nil {
		fraudType = *t.FraudType
	}
	return map[string]any{
		"transaction_id":    t.TransactionID,
		"timestamp":         t.Timestamp.Format(time.RFC3339Nano),
		"user_id":           t.UserID,
		"card_number":       t.CardNumber,
		"merchant_id":       t.MerchantID,
		"merchant_name":     t.MerchantName,
		"merchant_category": t.MerchantCategory,
		"amount":            t.Amount,
		"currency":          t.Currency,
		"location_lat":      t.LocationLat,
		"location_lon":      t.LocationLon,
		"device_id":         t.DeviceID,
		"ip_address":        t.IPAddress,
		"is_fraud":          t.IsFraud,
		"fraud_type":        fraudType,
	}
}
