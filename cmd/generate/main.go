// Command generate writes a labeled transaction dataset to a JSON file.
//
// Usage:
//
//	go run ./cmd/generate [flags]
//
// Flags:
//
//	-users        population user pool size (default: 1000)
//	-merchants    population merchant pool size (default: 500)
//	-count        transactions to generate (default: 10000)
//	-fraud-ratio  target fraud fraction (default: 0.02)
//	-bursts       include multi-record burst patterns; count becomes a minimum
//	-seed         random seed for a reproducible dataset (default: 42)
//	-out          output file path (default: data/transactions.json)
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"lumina/fraud-datagen/internal/config"
	"lumina/fraud-datagen/internal/domain"
	"lumina/fraud-datagen/internal/identity"
	"lumina/fraud-datagen/internal/population"
	"lumina/fraud-datagen/internal/synth"
)

func main() {
	numUsers := flag.Int("users", 1000, "population user pool size")
	numMerchants := flag.Int("merchants", 500, "population merchant pool size")
	count := flag.Int("count", 10000, "transactions to generate")
	fraudRatio := flag.Float64("fraud-ratio", config.FraudProbability, "target fraud fraction")
	bursts := flag.Bool("bursts", false, "include multi-record burst patterns (count becomes a minimum)")
	seed := flag.Int64("seed", 42, "random seed")
	out := flag.String("out", "data/transactions.json", "output file path")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	ids := identity.NewFaker(*seed)

	pools, err := population.Build(rng, ids, *numUsers, *numMerchants)
	if err != nil {
		fatalf("population error: %v", err)
	}

	gen := synth.New(pools, rng, ids)

	var txs []domain.Transaction
	if *bursts {
		txs, err = gen.GenerateBatchWithBursts(*count, *fraudRatio)
	} else {
		txs, err = gen.GenerateBatch(*count, *fraudRatio)
	}
	if err != nil {
		fatalf("generation error: %v", err)
	}

	if err := writeDataset(*out, txs); err != nil {
		fatalf("%v", err)
	}

	printSummary(txs, *out)
}

// writeDataset writes the transactions as pretty-printed JSON, one flat
// record per transaction.
func writeDataset(path string, txs []domain.Transaction) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir error: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create error: %w", err)
	}
	defer f.Close()

	records := make([]map[string]any, len(txs))
	for i := range txs {
		records[i] = txs[i].Record()
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode error: %w", err)
	}
	return nil
}

// printSummary reports the fraud mix of the generated dataset.
func printSummary(txs []domain.Transaction, path string) {
	fraudByType := make(map[string]int)
	fraudTotal := 0
	for i := range txs {
		if txs[i].IsFraud {
			fraudTotal++
			fraudByType[*txs[i].FraudType]++
		}
	}

	total := len(txs)
	normal := total - fraudTotal

	fmt.Printf("Generated %d transactions → %s\n", total, path)
	fmt.Printf("  normal: %d (%.1f%%)\n", normal, pct(normal, total))
	fmt.Printf("  fraud:  %d (%.1f%%)\n", fraudTotal, pct(fraudTotal, total))

	types := make([]string, 0, len(fraudByType))
	for t := range fraudByType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Printf("    %-20s %d\n", t, fraudByType[t])
	}
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
