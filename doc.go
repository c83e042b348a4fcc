// Package collatzbench runs a Monte Carlo study of the Collatz (3x+1) map.
//
// # Overview
//
// Random odd starting values are iterated under the Collatz map
//
//	n → n/2     (n even, a "contraction")
//	n → 3n + 1  (n odd, an "expansion")
//
// until they reach 1 or hit an iteration cap. For every sequence that
// converges with at least one expansion, the contraction ratio
//
//	R = contractions / expansions
//
// is recorded. The ratios are aggregated into mean, population standard
// deviation, extrema and percentiles, and compared with the critical value
// R_c = log2(3) ≈ 1.584963:
//
//   - Curvature K_F = mean(R) - R_c
//   - Safety margin = K_F / R_c × 100%
//
// K_F and the labels attached to it are descriptive. Nothing in this package
// proves anything about the conjecture.
//
// # Architecture
//
// The package components:
//
//   - collatz        - Collatz step, per-sequence analysis, trajectories
//   - sampler        - Random odd starts, optional worker pool
//   - statistics     - Aggregate metrics
//   - interpretation - Curvature label table
//   - report/console - JSON report and terminal rendering
//   - verify         - The end-to-end pipeline
//   - assertions     - Test helpers for sequence and ratio properties
//
// # Quick Start
//
//	cfg := collatzbench.DefaultConfig()
//	cfg.SampleSize = 10_000
//	cfg.Seed = 42 // reproducible run
//
//	v, err := collatzbench.NewVerifier(cfg, nil, slog.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := v.Run(ctx)
//	if errors.Is(err, collatzbench.ErrEmptyResultSet) {
//	    // every draw was discarded, no report written
//	}
//
//	fmt.Printf("K_F = %.6f (%s)\n", out.Metrics.Curvature, out.Interpretation.Status)
//
// # Single Starts
//
// AnalyzeSequence and Trajectory can be used on their own to inspect one
// starting value:
//
//	res := collatzbench.AnalyzeSequence(27, collatzbench.DefaultIterationCap)
//	path := collatzbench.Trajectory(27, collatzbench.DefaultIterationCap)
//	// res.Steps == len(path)-1 == 111
//
// Arithmetic is uint64. A trajectory whose next 3n+1 would not fit stops
// there; AnalyzeSequence marks it Overflowed and non-converged, so the
// sampler discards it like a capped run.
//
// # Determinism
//
// Randomness comes only from the injected Source. Starting values are drawn
// sequentially before any sequence is evaluated, so a fixed seed gives the
// same ratio set for any Workers setting.
//
// # Report
//
// The JSON document is written to Config.Output and overwritten on every
// run:
//
//	{
//	  "collatz_geometric_proof": {
//	    "metadata": {...},
//	    "empirical_evidence": {"sample_size": 100000, "flow_curvature": ...},
//	    "geometric_interpretation": {...},
//	    "research_implications": {...},
//	    "ratio_distribution": {...}
//	  }
//	}
package collatzbench
