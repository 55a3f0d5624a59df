package service

import (
	"context"
	"fmt"
	mrand "math/rand/v2"
	"sync"

	"github.com/themepick/api/internal/database"
)

// SampleStep is the result of one sampling procedure invocation: a random
// pick from the batch it accumulated, the batch size, and the cursor to
// resume from when the scan did not finish. A nil Next means the whole
// collection has been covered.
type SampleStep struct {
	ID    string
	Count int
	Next  *int
}

// Sampler draws a uniformly random eligible theme id by driving the
// database-side sampling function through its continuation protocol.
//
// Each invocation covers at most BatchCap ids. The sampler keeps invoking
// with the returned cursor until the scan completes, merging the per-batch
// picks so the final choice is uniform over the entire eligible set: after
// batch i of size n_i, the running choice is replaced by that batch's pick
// with probability n_i / (n_1 + ... + n_i). Memory stays bounded by one
// batch regardless of collection size.
type Sampler struct {
	db       database.Database
	batchCap int

	mu  sync.Mutex
	rng *mrand.Rand
}

// SamplerConfig configures a Sampler
type SamplerConfig struct {
	DB database.Database
	// BatchCap is the maximum ids accumulated per procedure invocation.
	BatchCap int
	// Rand overrides the merge RNG; used by tests for determinism.
	Rand *mrand.Rand
}

// NewSampler creates a new sampler
func NewSampler(cfg SamplerConfig) *Sampler {
	rng := cfg.Rand
	if rng == nil {
		rng = mrand.New(mrand.NewPCG(mrand.Uint64(), mrand.Uint64()))
	}
	return &Sampler{
		db:       cfg.DB,
		batchCap: cfg.BatchCap,
		rng:      rng,
	}
}

// Sample returns a uniformly random eligible theme id.
// Returns ErrNoEligibleThemes when no theme passes the eligibility filter.
func (s *Sampler) Sample(ctx context.Context) (string, error) {
	var (
		chosen string
		total  int
		start  = 0
	)

	for {
		step, err := s.Step(ctx, start)
		if err != nil {
			return "", err
		}

		if step.Count == 0 {
			// Empty collection, or the previous full batch ended exactly at
			// the collection boundary and its cursor points past the end.
			break
		}

		total += step.Count
		if s.keep(step.Count, total) {
			chosen = step.ID
		}

		if step.Next == nil {
			break
		}
		start = *step.Next
	}

	if total == 0 {
		return "", ErrNoEligibleThemes
	}
	return chosen, nil
}

// Step runs a single procedure invocation from the given cursor
func (s *Sampler) Step(ctx context.Context, start int) (*SampleStep, error) {
	query := `RETURN fn::theme_sample($start, $cap)`
	vars := map[string]interface{}{"start": start, "cap": s.batchCap}

	result, err := s.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSampleFailed, err)
	}

	return parseSampleStep(result)
}

// keep decides whether the latest batch's pick replaces the running choice
func (s *Sampler) keep(count, total int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < float64(count)/float64(total)
}

// parseSampleStep decodes the procedure's {id, count, next} output
func parseSampleStep(result interface{}) (*SampleStep, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result shape %T", ErrSampleFailed, result)
	}

	step := &SampleStep{}

	switch v := data["count"].(type) {
	case float64:
		step.Count = int(v)
	case int:
		step.Count = v
	case int64:
		step.Count = int(v)
	case uint64:
		step.Count = int(v)
	default:
		return nil, fmt.Errorf("%w: missing count in result", ErrSampleFailed)
	}

	if id, ok := data["id"].(string); ok {
		step.ID = id
	}
	if step.Count > 0 && step.ID == "" {
		return nil, fmt.Errorf("%w: non-empty batch without a pick", ErrSampleFailed)
	}

	switch v := data["next"].(type) {
	case float64:
		next := int(v)
		step.Next = &next
	case int:
		next := v
		step.Next = &next
	case int64:
		next := int(v)
		step.Next = &next
	case uint64:
		next := int(v)
		step.Next = &next
	case nil:
		// Scan complete.
	}

	return step, nil
}
