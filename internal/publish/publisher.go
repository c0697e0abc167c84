// Package publish pushes finished datasets to the downstream fraud-detection
// pipeline over HTTP.
//
// Deliveries run in a goroutine so generation never blocks on the consumer.
// Failed deliveries are logged but not retried — the dataset remains in the
// store and can be re-fetched, so delivery is best-effort by design of the
// consumer contract, not a durability boundary.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"lumina/fraud-datagen/internal/store"
)

// Publisher delivers dataset payloads to a single configured sink URL.
type Publisher struct {
	sinkURL string
	client  *http.Client
}

// New creates a Publisher for the given sink URL. An empty URL disables
// publishing entirely; PublishAsync becomes a no-op.
func New(sinkURL string) *Publisher {
	return &Publisher{
		sinkURL: sinkURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// payload is the body delivered to the sink.
type payload struct {
	Event       string         `json:"event"` // always "dataset_generated"
	DeliveredAt time.Time      `json:"delivered_at"`
	Dataset     *store.Dataset `json:"dataset"`
}

// PublishAsync fires the delivery in the background and returns immediately.
func (p *Publisher) PublishAsync(ds *store.Dataset) {
	if p.sinkURL == "" {
		return
	}
	go p.send(ds)
}

// send delivers a single dataset and logs the outcome.
func (p *Publisher) send(ds *store.Dataset) {
	body, err := json.Marshal(payload{
		Event:       "dataset_generated",
		DeliveredAt: time.Now().UTC(),
		Dataset:     ds,
	})
	if err != nil {
		slog.Error("publish: failed to marshal dataset", "dataset_id", ds.ID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.sinkURL, bytes.NewReader(body))
	if err != nil {
		slog.Error("publish: failed to build request", "dataset_id", ds.ID, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Lumina-Event", "dataset_generated")

	resp, err := p.client.Do(req)
	if err != nil {
		slog.Warn("publish: delivery failed", "dataset_id", ds.ID, "url", p.sinkURL, "error", err)
		return
	}
	defer resp.Body.Close()

	slog.Info("publish: delivered",
		"dataset_id", ds.ID,
		"url", p.sinkURL,
		"status", resp.StatusCode,
		"size", ds.Size,
		"fraud_count", ds.FraudCount,
	)
}
