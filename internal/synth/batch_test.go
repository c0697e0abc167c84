package synth_test

import (
	"errors"
	"testing"

	"lumina/fraud-datagen/internal/domain"
	"lumina/fraud-datagen/internal/synth"
)

func TestGenerateBatch_ExactSize(t *testing.T) {
	g, _ := newGenerator(t, 50, 30, 42)
	for _, size := range []int{1, 10, 500} {
		txs, err := g.GenerateBatch(size, 0.02)
		if err != nil {
			t.Fatalf("GenerateBatch(%d): %v", size, err)
		}
		if len(txs) != size {
			t.Errorf("GenerateBatch(%d) returned %d records", size, len(txs))
		}
	}
}

func TestGenerateBatch_RejectsInvalidArguments(t *testing.T) {
	g, _ := newGenerator(t, 10, 10, 42)

	tests := []struct {
		name  string
		size  int
		ratio float64
		want  error
	}{
		{"zero size", 0, 0.02, synth.ErrInvalidBatchSize},
		{"negative size", -5, 0.02, synth.ErrInvalidBatchSize},
		{"negative ratio", 100, -0.1, synth.ErrInvalidFraudRatio},
		{"ratio above one", 100, 1.5, synth.ErrInvalidFraudRatio},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := g.GenerateBatch(tc.size, tc.ratio); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
			if _, err := g.GenerateBatchWithBursts(tc.size, tc.ratio); !errors.Is(err, tc.want) {
				t.Errorf("with bursts: got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestGenerateBatch_FraudFractionTracksRatio(t *testing.T) {
	g, _ := newGenerator(t, 50, 30, 42)
	txs, err := g.GenerateBatch(1000, 0.02)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}

	fraud := 0
	for _, tx := range txs {
		if tx.IsFraud {
			fraud++
		}
	}
	// 1000 Bernoulli draws at p=0.02: the fraction stays near 2%.
	if fraud < 5 || fraud > 50 {
		t.Errorf("fraud count %d of 1000 is far from the 2%% target", fraud)
	}
}

func TestGenerateBatch_RatioExtremes(t *testing.T) {
	g, _ := newGenerator(t, 50, 30, 42)

	allNormal, err := g.GenerateBatch(200, 0)
	if err != nil {
		t.Fatalf("GenerateBatch(200, 0): %v", err)
	}
	for _, tx := range allNormal {
		if tx.IsFraud {
			t.Fatal("ratio 0 produced a fraud record")
		}
	}

	allFraud, err := g.GenerateBatch(200, 1)
	if err != nil {
		t.Fatalf("GenerateBatch(200, 1): %v", err)
	}
	for _, tx := range allFraud {
		if !tx.IsFraud {
			t.Fatal("ratio 1 produced a legitimate record")
		}
	}
}

func TestGenerateBatch_LabelConsistency(t *testing.T) {
	g, _ := newGenerator(t, 50, 30, 42)
	txs, err := g.GenerateBatch(1000, 0.1)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}

	known := make(map[string]bool)
	for _, tag := range domain.FraudTypes() {
		known[tag] = true
	}

	for _, tx := range txs {
		if tx.IsFraud != (tx.FraudType != nil) {
			t.Fatalf("label mismatch: is_fraud=%v fraud_type=%v", tx.IsFraud, tx.FraudType)
		}
		if tx.FraudType != nil && !known[*tx.FraudType] {
			t.Fatalf("unknown fraud_type %q", *tx.FraudType)
		}
		if tx.Amount <= 0 || !hasTwoDecimals(tx.Amount) {
			t.Fatalf("amount %.10f is not a positive two-decimal value", tx.Amount)
		}
		if tx.TransactionID == "" || tx.UserID == "" || tx.MerchantID == "" {
			t.Fatal("record is missing identifiers")
		}
	}
}

func TestGenerateBatchWithBursts_SizeIsMinimum(t *testing.T) {
	g, _ := newGenerator(t, 50, 30, 42)
	txs, err := g.GenerateBatchWithBursts(500, 0.1)
	if err != nil {
		t.Fatalf("GenerateBatchWithBursts: %v", err)
	}
	if len(txs) < 500 {
		t.Errorf("got %d records, want at least 500", len(txs))
	}

	seen := make(map[string]bool)
	for _, tx := range txs {
		if tx.FraudType != nil {
			seen[*tx.FraudType] = true
		}
	}
	// At 10% fraud over 500+ records the burst patterns show up too.
	for _, tag := range []string{domain.FraudHighFrequency, domain.FraudCardTesting} {
		if !seen[tag] {
			t.Errorf("burst pattern %s never appeared; saw %v", tag, seen)
		}
	}
}

func TestGenerateBatch_ReproducibleWithSeed(t *testing.T) {
	g1, _ := newGenerator(t, 50, 30, 99)
	g2, _ := newGenerator(t, 50, 30, 99)

	a, err := g1.GenerateBatch(100, 0.05)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	b, err := g2.GenerateBatch(100, 0.05)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}

	// Entity IDs are freshly minted UUIDs, so compare the seeded draws:
	// amounts, labels, and the merchant categories the picks landed on.
	for i := range a {
		if a[i].Amount != b[i].Amount || a[i].IsFraud != b[i].IsFraud ||
			a[i].MerchantCategory != b[i].MerchantCategory {
			t.Fatalf("record %d diverged between identically seeded runs", i)
		}
		if (a[i].FraudType == nil) != (b[i].FraudType == nil) {
			t.Fatalf("record %d diverged in fraud labeling", i)
		}
	}
}
