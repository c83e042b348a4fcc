package collatzbench

import "testing"

// TestLabelTable_Classify walks the default cutoffs, including both
// boundaries.
func TestLabelTable_Classify(t *testing.T) {
	table := DefaultLabelTable()

	cases := []struct {
		curvature float64
		want      CurvatureStatus
	}{
		{0.9, StatusStrongPositive},
		{0.500001, StatusStrongPositive},
		{0.5, StatusPositive},
		{0.415037, StatusPositive},
		{1e-9, StatusPositive},
		{0, StatusInconclusive},
		{-0.2, StatusInconclusive},
	}

	for _, c := range cases {
		if got := table.Classify(c.curvature); got != c.want {
			t.Errorf("Classify(%v) = %s, want %s", c.curvature, got, c.want)
		}
	}
}

// TestLabelTable_CustomThresholds uses the older 0.3 middle cutoff.
func TestLabelTable_CustomThresholds(t *testing.T) {
	table := DefaultLabelTable()
	table.PositiveThreshold = 0.3

	if got := table.Classify(0.2); got != StatusInconclusive {
		t.Errorf("Classify(0.2) with 0.3 cutoff = %s, want INCONCLUSIVE", got)
	}
	if got := table.Classify(0.4); got != StatusPositive {
		t.Errorf("Classify(0.4) with 0.3 cutoff = %s, want POSITIVE", got)
	}
}

// TestLabelTable_Interpret attaches the matching label.
func TestLabelTable_Interpret(t *testing.T) {
	table := DefaultLabelTable()

	strong := table.Interpret(0.8)
	if strong.Label.Headline != table.Strong.Headline {
		t.Errorf("Strong headline = %q", strong.Label.Headline)
	}
	if strong.Label.Geometric.CurvatureStatus != "STRONGLY_POSITIVE" {
		t.Errorf("Strong curvature_status = %q", strong.Label.Geometric.CurvatureStatus)
	}
	if !strong.Positive() {
		t.Error("Strong interpretation should be positive")
	}

	weak := table.Interpret(-0.1)
	if weak.Status != StatusInconclusive || weak.Label.Headline != table.Inconclusive.Headline {
		t.Errorf("Expected inconclusive label, got %s / %q", weak.Status, weak.Label.Headline)
	}
	if weak.Positive() {
		t.Error("Inconclusive interpretation should not be positive")
	}
	if weak.Curvature != -0.1 {
		t.Errorf("Curvature not carried: %v", weak.Curvature)
	}
}
