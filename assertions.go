package collatzbench

import (
	"math"
	"testing"
)

// AssertConverged verifies a sequence reached 1 within the iteration cap
// and is usable for the ratio set.
func AssertConverged(t *testing.T, res SequenceResult) {
	t.Helper()

	if !res.Converged {
		t.Errorf("Sequence from %d did not converge within %d steps", res.Start, res.Steps)
		return
	}
	if res.Expansions == 0 {
		t.Errorf("Sequence from %d converged without a 3n+1 step (ratio undefined)", res.Start)
	}
}

// AssertStepAccounting verifies every step was either a contraction or an
// expansion, and that the stored ratio matches the counts.
func AssertStepAccounting(t *testing.T, res SequenceResult) {
	t.Helper()

	if res.Contractions < 0 || res.Expansions < 0 {
		t.Errorf("Start %d: negative counts (contractions=%d, expansions=%d)",
			res.Start, res.Contractions, res.Expansions)
	}
	if res.Steps != res.Contractions+res.Expansions {
		t.Errorf("Start %d: steps %d != contractions %d + expansions %d",
			res.Start, res.Steps, res.Contractions, res.Expansions)
	}
	if res.Valid() {
		want := float64(res.Contractions) / float64(res.Expansions)
		if res.Ratio != want {
			t.Errorf("Start %d: ratio %.6f, want %.6f", res.Start, res.Ratio, want)
		}
	} else if res.Ratio != 0 {
		t.Errorf("Start %d: invalid sequence carries ratio %.6f", res.Start, res.Ratio)
	}
}

// AssertRatioSet verifies that a ratio set contains only finite, positive
// values, which rules out any division by a zero expansion count.
func AssertRatioSet(t *testing.T, ratios []float64) {
	t.Helper()

	for i, r := range ratios {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			t.Errorf("Ratio[%d] = %v is not finite", i, r)
		}
		if r <= 0 {
			t.Errorf("Ratio[%d] = %v is not positive", i, r)
		}
	}
}

// AssertSameRatios verifies two ratio sets are identical, element by element.
func AssertSameRatios(t *testing.T, a, b []float64) {
	t.Helper()

	if len(a) != len(b) {
		t.Fatalf("Ratio sets differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			t.Fatalf("Ratio sets differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// PrintMetrics logs a metrics record for test output.
func PrintMetrics(t *testing.T, m Metrics) {
	t.Helper()

	t.Logf("\n=== Contraction Ratio Statistics ===")
	t.Logf("Sequences: %d / %d (%.2f%%)", m.ConvergedCount, m.SampleSize, m.SuccessRate)
	t.Logf("Mean ratio: %.6f (R_c = %.6f)", m.MeanRatio, m.RCritical)
	t.Logf("Std dev: %.6f", m.StdDev)
	t.Logf("Curvature K_F: %.6f (safety margin %.2f%%)", m.Curvature, m.SafetyMargin)
	t.Logf("Range: %.3f - %.3f", m.MinRatio, m.MaxRatio)
	t.Logf("P50/P95/P99: %.3f / %.3f / %.3f", m.P50, m.P95, m.P99)
}
