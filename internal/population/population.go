// Package population builds the fixed user and merchant pools a generation
// run samples from.
//
// Ownership: the returned Pools are owned by the caller for the lifetime of
// the run. Synthesizers hold read-only references and select by random
// sampling with replacement; nothing mutates a pool after Build returns.
package population

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"lumina/fraud-datagen/internal/config"
	"lumina/fraud-datagen/internal/domain"
	"lumina/fraud-datagen/internal/identity"
)

// ErrInvalidCount is returned when a requested pool size is not positive.
var ErrInvalidCount = errors.New("population counts must be positive")

// Baseline ranges for user attributes.
const (
	minTypicalSpending = 50.0
	maxTypicalSpending = 500.0
	minAccountAgeDays  = 30   // one month
	maxAccountAgeDays  = 3650 // ten years
)

// Pools holds the immutable user and merchant populations for one run.
type Pools struct {
	Users     []domain.User
	Merchants []domain.Merchant
}

// Build generates numUsers users and numMerchants merchants.
//
// Every id is unique within the run, every coordinate lies inside the
// configured bounding box, and every user's typical spending is positive.
// Returns ErrInvalidCount if either count is <= 0.
func Build(rng *rand.Rand, ids identity.Decorator, numUsers, numMerchants int) (*Pools, error) {
	if numUsers <= 0 || numMerchants <= 0 {
		return nil, fmt.Errorf("%w: users=%d merchants=%d", ErrInvalidCount, numUsers, numMerchants)
	}

	p := &Pools{
		Users:     make([]domain.User, 0, numUsers),
		Merchants: make([]domain.Merchant, 0, numMerchants),
	}
	seen := make(map[string]bool, numUsers+numMerchants)

	for i := 0; i < numUsers; i++ {
		p.Users = append(p.Users, domain.User{
			UserID:          uniqueID("USER", seen),
			Name:            ids.Name(),
			Email:           ids.Email(),
			Phone:           ids.Phone(),
			HomeLat:         uniform(rng, config.LatRange),
			HomeLon:         uniform(rng, config.LonRange),
			TypicalSpending: minTypicalSpending + rng.Float64()*(maxTypicalSpending-minTypicalSpending),
			AccountAgeDays:  minAccountAgeDays + rng.Intn(maxAccountAgeDays-minAccountAgeDays+1),
		})
	}

	for i := 0; i < numMerchants; i++ {
		category := config.Categories[rng.Intn(len(config.Categories))]
		p.Merchants = append(p.Merchants, domain.Merchant{
			MerchantID:         uniqueID("MERCH", seen),
			MerchantName:       ids.Company(),
			Category:           category,
			LocationLat:        uniform(rng, config.LatRange),
			LocationLon:        uniform(rng, config.LonRange),
			AverageTransaction: config.SpendingRanges[category].Mid(),
		})
	}

	return p, nil
}

// uniqueID builds a prefixed 8-hex-char identifier, regenerating on the
// (rare) collision so ids stay unique within the run.
func uniqueID(prefix string, seen map[string]bool) string {
	for {
		id := fmt.Sprintf("%s_%s", prefix, uuid.NewString()[:8])
		if !seen[id] {
			seen[id] = true
			return id
		}
	}
}

func uniform(rng *rand.Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
