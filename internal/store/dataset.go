// Package store provides thread-safe, in-memory storage for generated
// datasets served over the HTTP API.
//
// Design rationale: generated data is disposable by nature — the ground
// truth can always be regenerated from a seed — so an in-memory map with an
// insertion-order index is sufficient. A deployment that needs durable
// datasets would write the JSON artifact from cmd/generate instead.
package store

import (
	"errors"
	"sync"
	"time"

	"lumina/fraud-datagen/internal/domain"
)

// ErrDuplicateDataset is returned when a dataset ID is saved twice.
var ErrDuplicateDataset = errors.New("dataset already exists")

// Dataset is one generated batch together with its generation parameters.
type Dataset struct {
	ID           string               `json:"id"`
	CreatedAt    time.Time            `json:"created_at"`
	Seed         int64                `json:"seed"`
	FraudRatio   float64              `json:"fraud_ratio"`
	WithBursts   bool                 `json:"with_bursts"`
	Size         int                  `json:"size"`
	FraudCount   int                  `json:"fraud_count"`
	Transactions []domain.Transaction `json:"transactions"`
}

// Summary is the transaction-free view of a Dataset used in listings.
type Summary struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Seed       int64     `json:"seed"`
	FraudRatio float64   `json:"fraud_ratio"`
	WithBursts bool      `json:"with_bursts"`
	Size       int       `json:"size"`
	FraudCount int       `json:"fraud_count"`
}

// Store is a thread-safe in-memory dataset registry.
type Store struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
	order    []string // dataset IDs in insertion order, for stable listings
}

// New creates an empty, ready-to-use Store.
func New() *Store {
	return &Store{datasets: make(map[string]*Dataset)}
}

// Save persists a dataset. Returns ErrDuplicateDataset if the ID exists.
func (s *Store) Save(ds *Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.datasets[ds.ID]; exists {
		return ErrDuplicateDataset
	}
	s.datasets[ds.ID] = ds
	s.order = append(s.order, ds.ID)
	return nil
}

// Get retrieves a dataset by ID.
func (s *Store) Get(id string) (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[id]
	return ds, ok
}

// List returns summaries of every stored dataset, oldest first.
func (s *Store) List() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Summary, 0, len(s.order))
	for _, id := range s.order {
		ds := s.datasets[id]
		out = append(out, Summary{
			ID:         ds.ID,
			CreatedAt:  ds.CreatedAt,
			Seed:       ds.Seed,
			FraudRatio: ds.FraudRatio,
			WithBursts: ds.WithBursts,
			Size:       ds.Size,
			FraudCount: ds.FraudCount,
		})
	}
	return out
}
