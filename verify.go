package collatzbench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyResultSet means no trial produced a valid ratio.
	ErrEmptyResultSet = errors.New("no valid sequences could be analyzed")

	// ErrIOFailure wraps failures to create or write the report file.
	ErrIOFailure = errors.New("report I/O failure")

	// ErrInvalidConfig wraps configuration validation failures.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnexpected wraps a panic recovered during a run.
	ErrUnexpected = errors.New("unexpected failure during verification")
)

// Outcome is everything a completed run produced.
type Outcome struct {
	Sample         Sample
	Metrics        Metrics
	Interpretation Interpretation
	Report         Report
}

// Verifier runs the sample → aggregate → report pipeline once per Run.
type Verifier struct {
	Config Config
	Source Source
	Logger *slog.Logger
	Out    io.Writer        // console destination
	Now    func() time.Time // report timestamp clock

	seeded *rand.Rand // generator built from Config.Seed, nil when a Source was injected
}

// NewVerifier validates cfg and returns a Verifier writing to stdout.
// A nil src draws from NewSource(cfg.Seed); a nil logger uses slog.Default().
// The report only records the seed when it actually drove the draws.
func NewVerifier(cfg Config, src Source, logger *slog.Logger) (*Verifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var seeded *rand.Rand
	if src == nil {
		seeded = NewSource(cfg.Seed)
		src = seeded
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Verifier{
		Config: cfg,
		Source: src,
		Logger: logger,
		Out:    os.Stdout,
		Now:    time.Now,
		seeded: seeded,
	}, nil
}

// Run executes one full verification.
//
// ErrEmptyResultSet is returned, and no report written, when every draw was
// discarded. A panic anywhere in the pipeline is recovered and returned as
// ErrUnexpected so partial output is never mistaken for a result.
func (v *Verifier) Run(ctx context.Context) (out Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			v.Logger.Error("verification panicked", "panic", r)
			out, err = Outcome{}, fmt.Errorf("%w: %v", ErrUnexpected, r)
		}
	}()

	cfg := v.Config
	RenderRunHeader(v.Out, cfg)

	v.Logger.Info("sampling started",
		"sample_size", cfg.SampleSize,
		"max_start", cfg.MaxStart,
		"iteration_cap", cfg.IterationCap,
		"workers", cfg.Workers)

	sample, err := SampleSequences(ctx, cfg, v.Source, v.Logger)
	if err != nil {
		return Outcome{}, err
	}

	metrics, err := Aggregate(sample.Ratios, sample.Attempted, sample.Elapsed)
	if err != nil {
		return Outcome{}, err
	}

	in := cfg.Labels.Interpret(metrics.Curvature)
	RenderConsole(v.Out, metrics, in)

	var implications *ResearchImplications
	if cfg.IncludeResearchImplications {
		implications = DefaultResearchImplications()
	}

	report := BuildReport(metrics, in, v.metadata(), implications, sample.Sequences)
	if err := WriteReport(cfg.Output, report); err != nil {
		return Outcome{}, err
	}
	fmt.Fprintf(v.Out, "\n💾 RESULTS SAVED TO: %s\n", cfg.Output)

	v.Logger.Info("verification complete",
		"status", in.Status,
		"curvature", metrics.Curvature,
		"output", cfg.Output)

	RenderVerdict(v.Out, in, cfg.Attribution)

	return Outcome{
		Sample:         sample,
		Metrics:        metrics,
		Interpretation: in,
		Report:         report,
	}, nil
}

func (v *Verifier) metadata() Metadata {
	cfg := v.Config
	meta := Metadata{
		Version:            cfg.Attribution.Version,
		Researcher:         cfg.Attribution.Researcher,
		Repository:         cfg.Attribution.Repository,
		ExecutionTimestamp: v.Now().Format(time.RFC3339),
		VerificationStatus: "COMPLETED",
		Year:               cfg.Attribution.Year,
		RunID:              uuid.NewString(),
		IterationCap:       cfg.IterationCap,
		MaxStart:           cfg.MaxStart,
	}
	if r, ok := v.Source.(*rand.Rand); ok && v.seeded != nil && r == v.seeded {
		meta.Seed = cfg.Seed
	}
	return meta
}
