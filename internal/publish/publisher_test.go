package publish

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lumina/fraud-datagen/internal/store"
)

func TestSend_DeliversDatasetPayload(t *testing.T) {
	var gotMethod, gotEvent string
	var gotPayload payload

	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotEvent = r.Header.Get("X-Lumina-Event")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer sink.Close()

	ds := &store.Dataset{
		ID:        "ds-1",
		CreatedAt: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Seed:      42,
		Size:      10,
	}
	New(sink.URL).send(ds)

	if gotMethod != http.MethodPost {
		t.Errorf("method %s, want POST", gotMethod)
	}
	if gotEvent != "dataset_generated" {
		t.Errorf("X-Lumina-Event %q, want dataset_generated", gotEvent)
	}
	if gotPayload.Event != "dataset_generated" {
		t.Errorf("payload event %q, want dataset_generated", gotPayload.Event)
	}
	if gotPayload.Dataset == nil || gotPayload.Dataset.ID != "ds-1" {
		t.Errorf("payload dataset %+v, want ds-1", gotPayload.Dataset)
	}
}

func TestPublishAsync_NoSinkConfigured(t *testing.T) {
	// Must be a silent no-op, not a panic or a stray request.
	New("").PublishAsync(&store.Dataset{ID: "ds-1"})
}
