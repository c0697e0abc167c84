// Package synth turns the population pools into labeled transactions.
//
// Architecture:
//   The Generator is stateless apart from its random source — it reads the
//   pools but never writes to them, so a single population can back any
//   number of generation runs. Every random draw goes through the one
//   *rand.Rand passed at construction; there is no ambient global
//   randomness, which keeps runs reproducible from a seed.
//
// The package has three layers:
//   1. GenerateNormal — the baseline distribution (normal.go)
//   2. the fraud pattern library — seven generators, each violating one
//      baseline assumption in a labeled way (fraud.go)
//   3. the batch orchestrator mixing the two at a target ratio (batch.go)
package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"lumina/fraud-datagen/internal/config"
	"lumina/fraud-datagen/internal/domain"
	"lumina/fraud-datagen/internal/identity"
	"lumina/fraud-datagen/internal/population"
)

// ErrEmptyPopulation is returned when an operation must sample from a pool
// that has no members. Detected eagerly, never retried internally.
var ErrEmptyPopulation = errors.New("population pool is empty")

// Device-id bands. Normal transactions draw from the full band; several
// fraud patterns draw from the upper half only, signaling a device the
// user has never been seen on.
const (
	deviceIDMin    = 1000
	deviceIDMax    = 9999
	newDeviceIDMin = 5000
)

// Generator synthesizes transactions from a fixed population.
type Generator struct {
	pools *population.Pools
	rng   *rand.Rand
	ids   identity.Decorator
	now   func() time.Time
}

// New creates a Generator over the given pools. All randomness draws from
// rng; identity strings come from ids. The clock defaults to time.Now.
func New(pools *population.Pools, rng *rand.Rand, ids identity.Decorator) *Generator {
	return &Generator{pools: pools, rng: rng, ids: ids, now: time.Now}
}

// SetClock replaces the time source used to stamp transactions. Tests use
// this to pin "now" to a fixed instant.
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// ─── Sampling helpers ─────────────────────────────────────────────────────────

// checkPools reports ErrEmptyPopulation if either pool has no members.
func (g *Generator) checkPools() error {
	if len(g.pools.Users) == 0 {
		return fmt.Errorf("%w: no users", ErrEmptyPopulation)
	}
	if len(g.pools.Merchants) == 0 {
		return fmt.Errorf("%w: no merchants", ErrEmptyPopulation)
	}
	return nil
}

// pickUser samples a user uniformly, with replacement.
func (g *Generator) pickUser() domain.User {
	return g.pools.Users[g.rng.Intn(len(g.pools.Users))]
}

// pickMerchant samples a merchant uniformly, with replacement.
func (g *Generator) pickMerchant() domain.Merchant {
	return g.pools.Merchants[g.rng.Intn(len(g.pools.Merchants))]
}

// uniform draws from [min, max).
func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// jitter draws a symmetric offset from [-spread, spread).
func (g *Generator) jitter(spread float64) float64 {
	return g.uniform(-spread, spread)
}

// maskedCard renders a masked card number with four visible digits.
func (g *Generator) maskedCard() string {
	return fmt.Sprintf("****-****-****-%d", 1000+g.rng.Intn(9000))
}

// deviceID returns an identifier from the full device band.
func (g *Generator) deviceID() string {
	return fmt.Sprintf("DEVICE_%d", deviceIDMin+g.rng.Intn(deviceIDMax-deviceIDMin+1))
}

// newDeviceID returns an identifier from the "never seen before" band.
func (g *Generator) newDeviceID() string {
	return fmt.Sprintf("DEVICE_%d", newDeviceIDMin+g.rng.Intn(deviceIDMax-newDeviceIDMin+1))
}

// fraudIP builds a fully random IPv4. Fraud traffic deliberately does not
// reuse the decorator's address space, mimicking proxies and botnets.
func (g *Generator) fraudIP() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		1+g.rng.Intn(255), 1+g.rng.Intn(255), 1+g.rng.Intn(255), 1+g.rng.Intn(255))
}

// ─── Numeric helpers ──────────────────────────────────────────────────────────

// round2 rounds to exactly two decimal places. All emitted amounts pass
// through here so no third-decimal drift reaches the wire.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clampLat and clampLon pin a coordinate to the configured bounding box.
func clampLat(v float64) float64 { return clamp(v, config.LatRange) }
func clampLon(v float64) float64 { return clamp(v, config.LonRange) }

func clamp(v float64, r config.Range) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}
