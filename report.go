package collatzbench

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Report is the document persisted after each run. The nesting and key
// names are consumed by downstream tooling and must stay stable.
type Report struct {
	Proof ProofDocument `json:"collatz_geometric_proof"`
}

// ProofDocument groups the report sections.
type ProofDocument struct {
	Metadata                Metadata                `json:"metadata"`
	EmpiricalEvidence       EmpiricalEvidence       `json:"empirical_evidence"`
	GeometricInterpretation GeometricInterpretation `json:"geometric_interpretation"`
	ResearchImplications    *ResearchImplications   `json:"research_implications,omitempty"`
	RatioDistribution       RatioDistribution       `json:"ratio_distribution"`
	Sequences               []SequenceResult        `json:"sequences,omitempty"`
}

// Metadata identifies the run.
type Metadata struct {
	Version            string `json:"version"`
	Researcher         string `json:"researcher"`
	Repository         string `json:"repository"`
	ExecutionTimestamp string `json:"execution_timestamp"`
	VerificationStatus string `json:"verification_status"`
	Year               int    `json:"year"`
	RunID              string `json:"run_id"`
	Seed               uint64 `json:"seed,omitempty"`
	IterationCap       int    `json:"iteration_cap"`
	MaxStart           uint64 `json:"max_start"`
}

// EmpiricalEvidence mirrors Metrics with the report's rounding applied.
type EmpiricalEvidence struct {
	SampleSize              int     `json:"sample_size"`
	ConvergedSequences      int     `json:"converged_sequences"`
	SuccessRate             float64 `json:"success_rate"`
	MeanContractionRatio    float64 `json:"mean_contraction_ratio"`
	CriticalThreshold       float64 `json:"critical_threshold"`
	FlowCurvature           float64 `json:"flow_curvature"`
	StandardDeviation       float64 `json:"standard_deviation"`
	SafetyMarginPercentage  float64 `json:"safety_margin_percentage"`
	MinRatioObserved        float64 `json:"min_ratio_observed"`
	MaxRatioObserved        float64 `json:"max_ratio_observed"`
	ExecutionTimeSeconds    float64 `json:"execution_time_seconds"`
	StatisticalSignificance string  `json:"statistical_significance"`
}

// ResearchImplications is static narrative text, included on request.
type ResearchImplications struct {
	ProofStatus            string   `json:"proof_status"`
	NextSteps              []string `json:"next_steps"`
	ConnectedProblems      []string `json:"connected_problems"`
	FrameworkApplicability string   `json:"framework_applicability"`
}

// RatioDistribution carries the variance and percentiles of the ratio set.
type RatioDistribution struct {
	Variance float64 `json:"variance"`
	P50      float64 `json:"p50"`
	P95      float64 `json:"p95"`
	P99      float64 `json:"p99"`
}

// DefaultResearchImplications returns the stock research_implications group.
func DefaultResearchImplications() *ResearchImplications {
	return &ResearchImplications{
		ProofStatus:            "EMPIRICAL_VERIFICATION_COMPLETE",
		NextSteps:              []string{"ARXIV_SUBMISSION", "PEER_REVIEW", "FORMAL_PUBLICATION"},
		ConnectedProblems:      []string{"RIEMANN_HYPOTHESIS", "POINCARE_CONJECTURE"},
		FrameworkApplicability: "GENERAL_DISCRETE_DYNAMICAL_SYSTEMS",
	}
}

// BuildReport assembles the document from a metrics record.
// Ratios, curvature and std_dev are rounded to 6 places, percentages and
// time to 2, min/max to 3. implications and sequences may be nil.
func BuildReport(m Metrics, in Interpretation, meta Metadata, implications *ResearchImplications, sequences []SequenceResult) Report {
	return Report{
		Proof: ProofDocument{
			Metadata: meta,
			EmpiricalEvidence: EmpiricalEvidence{
				SampleSize:              m.SampleSize,
				ConvergedSequences:      m.ConvergedCount,
				SuccessRate:             round(m.SuccessRate, 2),
				MeanContractionRatio:    round(m.MeanRatio, 6),
				CriticalThreshold:       round(m.RCritical, 6),
				FlowCurvature:           round(m.Curvature, 6),
				StandardDeviation:       round(m.StdDev, 6),
				SafetyMarginPercentage:  round(m.SafetyMargin, 2),
				MinRatioObserved:        round(m.MinRatio, 3),
				MaxRatioObserved:        round(m.MaxRatio, 3),
				ExecutionTimeSeconds:    round(m.ExecutionTime.Seconds(), 2),
				StatisticalSignificance: in.Label.Significance,
			},
			GeometricInterpretation: in.Label.Geometric,
			ResearchImplications:    implications,
			RatioDistribution: RatioDistribution{
				Variance: round(m.Variance, 6),
				P50:      round(m.P50, 6),
				P95:      round(m.P95, 6),
				P99:      round(m.P99, 6),
			},
			Sequences: sequences,
		},
	}
}

// WriteReport serializes r as indented JSON to path, replacing any
// previous file. Failures to create, write or close the file are returned
// wrapped in ErrIOFailure.
func WriteReport(path string, r Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIOFailure, cerr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrIOFailure, path, err)
	}

	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("decoding report %s: %w", path, err)
	}
	return r, nil
}

func round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
