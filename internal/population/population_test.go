package population_test

import (
	"errors"
	"math/rand"
	"testing"

	"lumina/fraud-datagen/internal/config"
	"lumina/fraud-datagen/internal/identity"
	"lumina/fraud-datagen/internal/population"
)

func buildPools(t *testing.T, numUsers, numMerchants int) *population.Pools {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	pools, err := population.Build(rng, identity.NewFaker(42), numUsers, numMerchants)
	if err != nil {
		t.Fatalf("Build(%d, %d): %v", numUsers, numMerchants, err)
	}
	return pools
}

// ─── Argument validation ──────────────────────────────────────────────────────

func TestBuild_RejectsNonPositiveCounts(t *testing.T) {
	cases := []struct {
		name                   string
		numUsers, numMerchants int
	}{
		{"zero users", 0, 10},
		{"zero merchants", 10, 0},
		{"negative users", -1, 10},
		{"negative merchants", 10, -5},
		{"both zero", 0, 0},
	}

	rng := rand.New(rand.NewSource(1))
	ids := identity.NewFaker(1)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := population.Build(rng, ids, tc.numUsers, tc.numMerchants)
			if !errors.Is(err, population.ErrInvalidCount) {
				t.Errorf("expected ErrInvalidCount, got %v", err)
			}
		})
	}
}

// ─── Pool construction ────────────────────────────────────────────────────────

func TestBuild_PoolSizes(t *testing.T) {
	pools := buildPools(t, 100, 40)
	if len(pools.Users) != 100 {
		t.Errorf("users: got %d, want 100", len(pools.Users))
	}
	if len(pools.Merchants) != 40 {
		t.Errorf("merchants: got %d, want 40", len(pools.Merchants))
	}
}

func TestBuild_IDsUniqueWithinRun(t *testing.T) {
	pools := buildPools(t, 500, 200)
	seen := make(map[string]bool)
	for _, u := range pools.Users {
		if seen[u.UserID] {
			t.Fatalf("duplicate user id %s", u.UserID)
		}
		seen[u.UserID] = true
	}
	for _, m := range pools.Merchants {
		if seen[m.MerchantID] {
			t.Fatalf("duplicate merchant id %s", m.MerchantID)
		}
		seen[m.MerchantID] = true
	}
}

func TestBuild_CoordinatesInsideBoundingBox(t *testing.T) {
	pools := buildPools(t, 200, 100)
	for _, u := range pools.Users {
		if u.HomeLat < config.LatRange.Min || u.HomeLat > config.LatRange.Max {
			t.Errorf("user %s home_lat %f outside bounding box", u.UserID, u.HomeLat)
		}
		if u.HomeLon < config.LonRange.Min || u.HomeLon > config.LonRange.Max {
			t.Errorf("user %s home_lon %f outside bounding box", u.UserID, u.HomeLon)
		}
	}
	for _, m := range pools.Merchants {
		if m.LocationLat < config.LatRange.Min || m.LocationLat > config.LatRange.Max {
			t.Errorf("merchant %s location_lat %f outside bounding box", m.MerchantID, m.LocationLat)
		}
		if m.LocationLon < config.LonRange.Min || m.LocationLon > config.LonRange.Max {
			t.Errorf("merchant %s location_lon %f outside bounding box", m.MerchantID, m.LocationLon)
		}
	}
}

func TestBuild_UserBaselines(t *testing.T) {
	pools := buildPools(t, 300, 10)
	for _, u := range pools.Users {
		if u.TypicalSpending < 50 || u.TypicalSpending > 500 {
			t.Errorf("user %s typical_spending %f outside [50, 500]", u.UserID, u.TypicalSpending)
		}
		if u.AccountAgeDays < 30 || u.AccountAgeDays > 3650 {
			t.Errorf("user %s account_age_days %d outside [30, 3650]", u.UserID, u.AccountAgeDays)
		}
	}
}

func TestBuild_MerchantCategoryAndAverage(t *testing.T) {
	pools := buildPools(t, 10, 150)
	for _, m := range pools.Merchants {
		r, known := config.SpendingRanges[m.Category]
		if !known {
			t.Errorf("merchant %s has unknown category %q", m.MerchantID, m.Category)
			continue
		}
		if m.AverageTransaction != r.Mid() {
			t.Errorf("merchant %s average_transaction %f, want category midpoint %f",
				m.MerchantID, m.AverageTransaction, r.Mid())
		}
	}
}

func TestBuild_DecorativeFieldsNonEmpty(t *testing.T) {
	pools := buildPools(t, 50, 50)
	for _, u := range pools.Users {
		if u.Name == "" || u.Email == "" || u.Phone == "" {
			t.Errorf("user %s has empty decorative fields: %+v", u.UserID, u)
		}
	}
	for _, m := range pools.Merchants {
		if m.MerchantName == "" {
			t.Errorf("merchant %s has empty name", m.MerchantID)
		}
	}
}
