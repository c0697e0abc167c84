// Fraud pattern library.
//
// Each generator deliberately violates one assumption of the normal
// distribution and stamps the resulting records with its fraud_type tag, so
// the downstream pipeline always has ground truth for what it should catch.
// Generators are independently invocable, never mutate the pools, and fail
// eagerly with ErrEmptyPopulation when a required pool has no members.
package synth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lumina/fraud-datagen/internal/config"
	"lumina/fraud-datagen/internal/domain"
)

// ErrUnknownFraudType is returned by GenerateFraud for a tag outside the
// documented pattern set.
var ErrUnknownFraudType = errors.New("unknown fraud type")

// ─── Registry ─────────────────────────────────────────────────────────────────

// GenerateFraud dispatches to the pattern registered for fraudType. Single-
// record patterns return a one-element slice; the burst patterns return
// their whole group. The valid tags are exactly domain.FraudTypes().
func (g *Generator) GenerateFraud(fraudType string) ([]domain.Transaction, error) {
	switch fraudType {
	case domain.FraudUnusualAmount:
		return g.single(g.GenerateUnusualAmount)
	case domain.FraudGeographicAnomaly:
		return g.single(g.GenerateGeographicAnomaly)
	case domain.FraudHighFrequency:
		return g.GenerateHighFrequency()
	case domain.FraudCardTesting:
		return g.GenerateCardTesting()
	case domain.FraudTimeAnomaly:
		return g.single(g.GenerateTimeAnomaly)
	case domain.FraudRoundAmount:
		return g.single(g.GenerateRoundAmount)
	case domain.FraudHighRiskCategory:
		return g.single(g.GenerateHighRiskCategory)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFraudType, fraudType)
	}
}

// RandomFraud picks one of the single-record patterns uniformly at random
// and invokes it. The burst patterns (high_frequency, card_testing) are
// excluded because they return a batch rather than a single record; callers
// that want bursts invoke those generators directly or use
// GenerateBatchWithBursts.
func (g *Generator) RandomFraud() (domain.Transaction, error) {
	patterns := []func() (domain.Transaction, error){
		g.GenerateUnusualAmount,
		g.GenerateGeographicAnomaly,
		g.GenerateTimeAnomaly,
		g.GenerateRoundAmount,
		g.GenerateHighRiskCategory,
	}
	return patterns[g.rng.Intn(len(patterns))]()
}

func (g *Generator) single(fn func() (domain.Transaction, error)) ([]domain.Transaction, error) {
	tx, err := fn()
	if err != nil {
		return nil, err
	}
	return []domain.Transaction{tx}, nil
}

// ─── Pattern 1: unusual_amount ───────────────────────────────────────────────

// GenerateUnusualAmount produces a charge of 10–20x the user's typical
// spending near their home — the signature of a stolen card used for one
// expensive purchase.
func (g *Generator) GenerateUnusualAmount() (domain.Transaction, error) {
	if err := g.checkPools(); err != nil {
		return domain.Transaction{}, err
	}
	user := g.pickUser()
	merchant := g.pickMerchant()

	amount := round2(user.TypicalSpending * g.uniform(10, 20))
	tx := g.fraudTx(user, merchant, amount, g.now(),
		user.HomeLat+g.jitter(0.5), user.HomeLon+g.jitter(0.5),
		g.deviceID(), domain.FraudUnusualAmount)
	return tx, nil
}

// ─── Pattern 2: geographic_anomaly ───────────────────────────────────────────

// GenerateGeographicAnomaly places the transaction 10–30 degrees from the
// user's home in a random direction per axis (clamped to the bounding box)
// on a device from the new-device band — a card used in another region.
func (g *Generator) GenerateGeographicAnomaly() (domain.Transaction, error) {
	if err := g.checkPools(); err != nil {
		return domain.Transaction{}, err
	}
	user := g.pickUser()
	merchant := g.pickMerchant()

	farLat := user.HomeLat + g.uniform(10, 30)*g.sign()
	farLon := user.HomeLon + g.uniform(10, 30)*g.sign()

	tx := g.fraudTx(user, merchant, round2(g.uniform(100, 500)), g.now(),
		farLat, farLon, g.newDeviceID(), domain.FraudGeographicAnomaly)
	return tx, nil
}

// ─── Pattern 3: high_frequency ───────────────────────────────────────────────

// GenerateHighFrequency emits 8–15 transactions for one user inside a
// five-minute window — a fraudster racing the card block.
func (g *Generator) GenerateHighFrequency() ([]domain.Transaction, error) {
	if err := g.checkPools(); err != nil {
		return nil, err
	}
	user := g.pickUser()
	count := 8 + g.rng.Intn(8) // 8–15
	base := g.now()

	txs := make([]domain.Transaction, 0, count)
	for i := 0; i < count; i++ {
		merchant := g.pickMerchant()
		ts := base.Add(time.Duration(g.rng.Intn(301)) * time.Second)
		txs = append(txs, g.fraudTx(user, merchant, round2(g.uniform(50, 300)), ts,
			user.HomeLat+g.jitter(1), user.HomeLon+g.jitter(1),
			g.deviceID(), domain.FraudHighFrequency))
	}
	return txs, nil
}

// ─── Pattern 4: card_testing ─────────────────────────────────────────────────

// GenerateCardTesting emits 5–10 micro-amount charges (below typical
// per-swipe alert thresholds) across merchants within half an hour — probing
// whether a stolen card is still active.
func (g *Generator) GenerateCardTesting() ([]domain.Transaction, error) {
	if err := g.checkPools(); err != nil {
		return nil, err
	}
	user := g.pickUser()
	count := 5 + g.rng.Intn(6) // 5–10
	base := g.now()

	txs := make([]domain.Transaction, 0, count)
	for i := 0; i < count; i++ {
		merchant := g.pickMerchant()
		ts := base.Add(time.Duration(g.rng.Intn(31)) * time.Minute)
		txs = append(txs, g.fraudTx(user, merchant, round2(g.uniform(0.50, 5.00)), ts,
			user.HomeLat+g.jitter(0.3), user.HomeLon+g.jitter(0.3),
			g.deviceID(), domain.FraudCardTesting))
	}
	return txs, nil
}

// ─── Pattern 5: time_anomaly ─────────────────────────────────────────────────

// GenerateTimeAnomaly forces the timestamp into the 1–5 AM window on a
// new-band device — a card used while its owner sleeps.
func (g *Generator) GenerateTimeAnomaly() (domain.Transaction, error) {
	if err := g.checkPools(); err != nil {
		return domain.Transaction{}, err
	}
	user := g.pickUser()
	merchant := g.pickMerchant()

	now := g.now()
	ts := time.Date(now.Year(), now.Month(), now.Day(),
		1+g.rng.Intn(5), g.rng.Intn(60), now.Second(), now.Nanosecond(), now.Location())

	tx := g.fraudTx(user, merchant, round2(g.uniform(100, 800)), ts,
		user.HomeLat+g.jitter(2), user.HomeLon+g.jitter(2),
		g.newDeviceID(), domain.FraudTimeAnomaly)
	return tx, nil
}

// ─── Pattern 6: round_amount ─────────────────────────────────────────────────

// GenerateRoundAmount charges an exact figure from the round-amount
// vocabulary — real purchases land on $237.41, manual fraud entry lands
// on $500.00.
func (g *Generator) GenerateRoundAmount() (domain.Transaction, error) {
	if err := g.checkPools(); err != nil {
		return domain.Transaction{}, err
	}
	user := g.pickUser()
	merchant := g.pickMerchant()

	amount := config.RoundAmounts[g.rng.Intn(len(config.RoundAmounts))]
	tx := g.fraudTx(user, merchant, amount, g.now(),
		user.HomeLat+g.jitter(1), user.HomeLon+g.jitter(1),
		g.deviceID(), domain.FraudRoundAmount)
	return tx, nil
}

// ─── Pattern 7: high_risk_category ───────────────────────────────────────────

// GenerateHighRiskCategory concentrates a large spend in the fraud-prone
// category subset. When the current population happens to contain no
// high-risk merchant, it falls back to the full pool rather than failing.
func (g *Generator) GenerateHighRiskCategory() (domain.Transaction, error) {
	if err := g.checkPools(); err != nil {
		return domain.Transaction{}, err
	}
	user := g.pickUser()

	var highRisk []domain.Merchant
	for _, m := range g.pools.Merchants {
		if config.HighRiskCategories[m.Category] {
			highRisk = append(highRisk, m)
		}
	}

	var merchant domain.Merchant
	if len(highRisk) > 0 {
		merchant = highRisk[g.rng.Intn(len(highRisk))]
	} else {
		merchant = g.pickMerchant()
	}

	tx := g.fraudTx(user, merchant, round2(g.uniform(2000, 5000)), g.now(),
		user.HomeLat+g.jitter(3), user.HomeLon+g.jitter(3),
		g.newDeviceID(), domain.FraudHighRiskCategory)
	return tx, nil
}

// ─── Shared construction ──────────────────────────────────────────────────────

// sign returns -1 or +1 with equal probability.
func (g *Generator) sign() float64 {
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// fraudTx assembles the fields every fraud pattern shares. Locations are
// clamped to the bounding box here so no pattern can emit an out-of-range
// coordinate.
func (g *Generator) fraudTx(user domain.User, merchant domain.Merchant,
	amount float64, ts time.Time, lat, lon float64, deviceID, fraudType string) domain.Transaction {
	return domain.Transaction{
		TransactionID:    uuid.NewString(),
		Timestamp:        ts,
		UserID:           user.UserID,
		CardNumber:       g.maskedCard(),
		MerchantID:       merchant.MerchantID,
		MerchantName:     merchant.MerchantName,
		MerchantCategory: merchant.Category,
		Amount:           amount,
		Currency:         domain.CurrencyUSD,
		LocationLat:      clampLat(lat),
		LocationLon:      clampLon(lon),
		DeviceID:         deviceID,
		IPAddress:        g.fraudIP(),
		IsFraud:          true,
		FraudType:        &fraudType,
	}
}
