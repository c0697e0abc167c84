package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"lumina/fraud-datagen/internal/config"
	"lumina/fraud-datagen/internal/domain"
	"lumina/fraud-datagen/internal/population"
	"lumina/fraud-datagen/internal/publish"
	"lumina/fraud-datagen/internal/store"
	"lumina/fraud-datagen/internal/synth"
)

// Handler holds the dependencies shared across all HTTP handlers.
//
// The generator's random source is not safe for concurrent use, so every
// generation call is serialised through mu. Generation is CPU-only and
// fast; a single worker is deliberate, not a bottleneck workaround.
type Handler struct {
	mu        sync.Mutex
	gen       *synth.Generator
	pools     *population.Pools
	store     *store.Store
	publisher *publish.Publisher
	seed      int64
}

// NewHandler creates a Handler wired to the given dependencies. seed is the
// value the server's random source was created from; it is echoed on every
// dataset so consumers can reproduce a run.
func NewHandler(gen *synth.Generator, pools *population.Pools, s *store.Store, p *publish.Publisher, seed int64) *Handler {
	return &Handler{gen: gen, pools: pools, store: s, publisher: p, seed: seed}
}

// ─── POST /api/v1/datasets ────────────────────────────────────────────────────

// datasetRequest is the generation payload. FraudRatio is optional and
// defaults to the documented fraud probability.
type datasetRequest struct {
	Size       int      `json:"size"`
	FraudRatio *float64 `json:"fraud_ratio"`
	WithBursts bool     `json:"with_bursts"`
}

// CreateDataset generates a labeled batch, stores it, publishes it to the
// configured sink, and returns it synchronously.
func (h *Handler) CreateDataset(w http.ResponseWriter, r *http.Request) {
	var req datasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "INVALID_JSON", "request body must be valid JSON")
		return
	}

	ratio := config.FraudProbability
	if req.FraudRatio != nil {
		ratio = *req.FraudRatio
	}

	h.mu.Lock()
	var txs []domain.Transaction
	var err error
	if req.WithBursts {
		txs, err = h.gen.GenerateBatchWithBursts(req.Size, ratio)
	} else {
		txs, err = h.gen.GenerateBatch(req.Size, ratio)
	}
	h.mu.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, synth.ErrInvalidBatchSize), errors.Is(err, synth.ErrInvalidFraudRatio):
			badRequest(w, "VALIDATION_ERROR", err.Error())
		default:
			internalError(w)
		}
		return
	}

	ds := &store.Dataset{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Seed:         h.seed,
		FraudRatio:   ratio,
		WithBursts:   req.WithBursts,
		Size:         len(txs),
		FraudCount:   countFraud(txs),
		Transactions: txs,
	}
	if err := h.store.Save(ds); err != nil {
		internalError(w)
		return
	}

	h.publisher.PublishAsync(ds)
	created(w, ds)
}

// ─── GET /api/v1/datasets ─────────────────────────────────────────────────────

// ListDatasets returns transaction-free summaries of every stored dataset.
func (h *Handler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	ok(w, h.store.List())
}

// ─── GET /api/v1/datasets/{id} ────────────────────────────────────────────────

// GetDataset retrieves a previously generated dataset by its ID.
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ds, exists := h.store.Get(id)
	if !exists {
		notFound(w, fmt.Sprintf("dataset '%s' not found", id))
		return
	}
	ok(w, ds)
}

// ─── POST /api/v1/fraud/{type} ────────────────────────────────────────────────

// fraudResponse pairs the invoked pattern tag with the records it produced
// (one for single-record patterns, a whole group for burst patterns).
type fraudResponse struct {
	FraudType    string               `json:"fraud_type"`
	Count        int                  `json:"count"`
	Transactions []domain.Transaction `json:"transactions"`
}

// GenerateFraud invokes one named fraud pattern against the server's
// population and returns the resulting records.
func (h *Handler) GenerateFraud(w http.ResponseWriter, r *http.Request) {
	fraudType := strings.ToLower(chi.URLParam(r, "type"))

	h.mu.Lock()
	txs, err := h.gen.GenerateFraud(fraudType)
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, synth.ErrUnknownFraudType) {
			badRequest(w, "INVALID_FRAUD_TYPE",
				fmt.Sprintf("fraud type must be one of: %s", strings.Join(domain.FraudTypes(), ", ")))
			return
		}
		internalError(w)
		return
	}

	ok(w, fraudResponse{FraudType: fraudType, Count: len(txs), Transactions: txs})
}

// ─── GET /api/v1/population ───────────────────────────────────────────────────

// populationSummary describes the pools the server generates from.
type populationSummary struct {
	NumUsers      int            `json:"num_users"`
	NumMerchants  int            `json:"num_merchants"`
	ByCategory    map[string]int `json:"merchants_by_category"`
	HighRiskCount int            `json:"high_risk_merchant_count"`
}

// GetPopulation returns a summary of the server's user and merchant pools.
func (h *Handler) GetPopulation(w http.ResponseWriter, r *http.Request) {
	byCategory := make(map[string]int, len(config.Categories))
	highRisk := 0
	for _, m := range h.pools.Merchants {
		byCategory[m.Category]++
		if config.HighRiskCategories[m.Category] {
			highRisk++
		}
	}

	ok(w, populationSummary{
		NumUsers:      len(h.pools.Users),
		NumMerchants:  len(h.pools.Merchants),
		ByCategory:    byCategory,
		HighRiskCount: highRisk,
	})
}

func countFraud(txs []domain.Transaction) int {
	n := 0
	for i := range txs {
		if txs[i].IsFraud {
			n++
		}
	}
	return n
}
