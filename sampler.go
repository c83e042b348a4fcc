package collatzbench

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Source draws uniform integers in [0, n). A *rand.Rand from math/rand/v2
// satisfies it; tests inject scripted sources to fix the starting values.
type Source interface {
	Uint64N(n uint64) uint64
}

// NewSource returns a PCG generator for the given seed.
// Seed 0 means unseeded: the generator is seeded from the runtime's
// random state, so two runs will differ.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample is the outcome of one sampling pass.
type Sample struct {
	Ratios    []float64        // Ratios of valid sequences, in draw order
	Sequences []SequenceResult // Valid sequences, only when RetainSequences is set
	Attempted int              // Number of draws (the requested sample size)
	Discarded int              // Draws that hit the cap or had no expansion
	Elapsed   time.Duration
}

// DrawStart returns a uniformly random odd integer in [3, maxStart).
// maxStart must be greater than 3.
func DrawStart(src Source, maxStart uint64) uint64 {
	odds := (maxStart - 2) / 2 // |{3, 5, ..., < maxStart}|
	return 3 + 2*src.Uint64N(odds)
}

// SampleSequences runs cfg.SampleSize independent trials and returns the
// contraction ratios of every valid sequence.
//
// Starting values are always drawn sequentially from src before any
// sequence is evaluated, so the ratio set depends only on the source state
// and the configuration, not on cfg.Workers. Invalid draws are dropped
// silently; the returned ratio set may be shorter than SampleSize.
func SampleSequences(ctx context.Context, cfg Config, src Source, logger *slog.Logger) (Sample, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SampleSize <= 0 {
		return Sample{}, fmt.Errorf("%w: sample size must be positive, got %d", ErrInvalidConfig, cfg.SampleSize)
	}
	if cfg.MaxStart <= 3 {
		return Sample{}, fmt.Errorf("%w: max start must be greater than 3, got %d", ErrInvalidConfig, cfg.MaxStart)
	}
	if cfg.IterationCap <= 0 {
		return Sample{}, fmt.Errorf("%w: iteration cap must be positive, got %d", ErrInvalidConfig, cfg.IterationCap)
	}

	n := cfg.SampleSize
	start := time.Now()

	starts := make([]uint64, n)
	for i := range starts {
		starts[i] = DrawStart(src, cfg.MaxStart)
	}

	results := make([]SequenceResult, n)
	var done atomic.Int64

	evaluate := func(ctx context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = AnalyzeSequence(starts[i], cfg.IterationCap)

			d := done.Add(1)
			if cfg.ProgressEvery > 0 && d%int64(cfg.ProgressEvery) == 0 && d < int64(n) {
				logger.Info("sampling progress",
					"done", d,
					"total", n,
					"percent", fmt.Sprintf("%.1f", float64(d)/float64(n)*100))
			}
		}
		return nil
	}

	workers := max(cfg.Workers, 1)
	var err error
	if workers == 1 {
		err = evaluate(ctx, 0, n)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		chunk := (n + workers - 1) / workers
		for lo := 0; lo < n; lo += chunk {
			hi := min(lo+chunk, n)
			g.Go(func() error {
				return evaluate(gctx, lo, hi)
			})
		}
		err = g.Wait()
	}
	if err != nil {
		return Sample{}, fmt.Errorf("sampling interrupted after %d of %d trials: %w", done.Load(), n, err)
	}

	sample := Sample{
		Ratios:    make([]float64, 0, n),
		Attempted: n,
	}
	for _, res := range results {
		if !res.Valid() {
			sample.Discarded++
			continue
		}
		sample.Ratios = append(sample.Ratios, res.Ratio)
		if cfg.RetainSequences {
			sample.Sequences = append(sample.Sequences, res)
		}
	}
	sample.Elapsed = time.Since(start)

	logger.Info("sampling complete",
		"attempted", sample.Attempted,
		"valid", len(sample.Ratios),
		"discarded", sample.Discarded,
		"workers", workers,
		"elapsed", sample.Elapsed)

	return sample, nil
}
