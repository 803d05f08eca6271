package sim

import (
	"context"
	"sync"
)

// RunBatch runs every simulator over the same config concurrently.
// Each simulator owns its object, profile, and engine, so the only
// coordination needed is the join.
func RunBatch(ctx context.Context, sims []*Simulator, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(sims))
	errs := make([]error, len(sims))

	var wg sync.WaitGroup
	for i, s := range sims {
		wg.Add(1)
		go func(idx int, s *Simulator) {
			defer wg.Done()
			results[idx], errs[idx] = s.Run(ctx, cfg)
		}(i, s)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// RunPair is RunBatch for the common side-by-side comparison of two
// objects.
func RunPair(ctx context.Context, a, b *Simulator, cfg Config) (*Result, *Result, error) {
	results, err := RunBatch(ctx, []*Simulator{a, b}, cfg)
	if err != nil {
		return nil, nil, err
	}
	return results[0], results[1], nil
}
