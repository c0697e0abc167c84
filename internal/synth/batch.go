// Batch orchestrator: composes the normal synthesizer and the fraud pattern
// library into a single output stream at a target fraud mix.
package synth

import (
	"errors"
	"fmt"

	"lumina/fraud-datagen/internal/domain"
)

// Batch-argument errors, detected eagerly before any record is built.
var (
	ErrInvalidBatchSize  = errors.New("batch size must be positive")
	ErrInvalidFraudRatio = errors.New("fraud ratio must be between 0 and 1")
)

// GenerateBatch produces exactly size transactions. Each slot is a Bernoulli
// trial with probability fraudRatio: on success the slot holds one record
// from RandomFraud, otherwise a normal transaction. Over a large batch the
// fraud fraction approximates fraudRatio.
//
// Contract: only the single-record fraud patterns substitute in place here.
// The burst patterns would silently inflate both the batch size and the
// effective fraud ratio, so they are reachable from the orchestrator only
// through GenerateBatchWithBursts.
func (g *Generator) GenerateBatch(size int, fraudRatio float64) ([]domain.Transaction, error) {
	if err := validateBatchArgs(size, fraudRatio); err != nil {
		return nil, err
	}
	if err := g.checkPools(); err != nil {
		return nil, err
	}

	out := make([]domain.Transaction, 0, size)
	for i := 0; i < size; i++ {
		if g.rng.Float64() < fraudRatio {
			tx, err := g.RandomFraud()
			if err != nil {
				return nil, err
			}
			out = append(out, tx)
		} else {
			tx, err := g.GenerateNormal()
			if err != nil {
				return nil, err
			}
			out = append(out, tx)
		}
	}
	return out, nil
}

// GenerateBatchWithBursts produces at least size transactions, drawing fraud
// slots uniformly over all seven patterns. A burst pattern appends its whole
// group, so the result may overshoot size — the requested size is a minimum,
// never a cap. Callers that need an exact count use GenerateBatch.
func (g *Generator) GenerateBatchWithBursts(size int, fraudRatio float64) ([]domain.Transaction, error) {
	if err := validateBatchArgs(size, fraudRatio); err != nil {
		return nil, err
	}
	if err := g.checkPools(); err != nil {
		return nil, err
	}

	allTypes := domain.FraudTypes()
	out := make([]domain.Transaction, 0, size)
	for len(out) < size {
		if g.rng.Float64() < fraudRatio {
			txs, err := g.GenerateFraud(allTypes[g.rng.Intn(len(allTypes))])
			if err != nil {
				return nil, err
			}
			out = append(out, txs...)
		} else {
			tx, err := g.GenerateNormal()
			if err != nil {
				return nil, err
			}
			out = append(out, tx)
		}
	}
	return out, nil
}

func validateBatchArgs(size int, fraudRatio float64) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBatchSize, size)
	}
	if fraudRatio < 0 || fraudRatio > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidFraudRatio, fraudRatio)
	}
	return nil
}
