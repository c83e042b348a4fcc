package collatzbench

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Metrics is the aggregate of all valid contraction ratios of one run.
type Metrics struct {
	SampleSize     int     // Requested number of trials
	ConvergedCount int     // Number of ratios that entered the statistics
	SuccessRate    float64 // ConvergedCount / SampleSize, in percent
	MeanRatio      float64
	Variance       float64 // Population variance (divisor N)
	StdDev         float64
	Curvature      float64 // K_F = MeanRatio - RCritical
	SafetyMargin   float64 // Curvature / RCritical, in percent
	MinRatio       float64
	MaxRatio       float64
	P50            float64
	P95            float64
	P99            float64
	ExecutionTime  time.Duration
	RCritical      float64
}

// Aggregate computes descriptive statistics over ratios.
//
// Returns ErrEmptyResultSet when no ratio is available; the caller must not
// report in that case.
func Aggregate(ratios []float64, sampleSize int, elapsed time.Duration) (Metrics, error) {
	if len(ratios) == 0 {
		return Metrics{}, ErrEmptyResultSet
	}
	if sampleSize <= 0 {
		return Metrics{}, fmt.Errorf("sample size must be positive, got %d", sampleSize)
	}

	n := float64(len(ratios))

	sum := 0.0
	minRatio, maxRatio := ratios[0], ratios[0]
	for _, r := range ratios {
		sum += r
		if r < minRatio {
			minRatio = r
		}
		if r > maxRatio {
			maxRatio = r
		}
	}
	mean := sum / n

	var variance float64
	for _, r := range ratios {
		diff := r - mean
		variance += diff * diff
	}
	variance /= n

	curvature := mean - RCritical

	sorted := make([]float64, len(ratios))
	copy(sorted, ratios)
	sort.Float64s(sorted)

	return Metrics{
		SampleSize:     sampleSize,
		ConvergedCount: len(ratios),
		SuccessRate:    n / float64(sampleSize) * 100,
		MeanRatio:      mean,
		Variance:       variance,
		StdDev:         math.Sqrt(variance),
		Curvature:      curvature,
		SafetyMargin:   curvature / RCritical * 100,
		MinRatio:       minRatio,
		MaxRatio:       maxRatio,
		P50:            percentile(sorted, 0.50),
		P95:            percentile(sorted, 0.95),
		P99:            percentile(sorted, 0.99),
		ExecutionTime:  elapsed,
		RCritical:      RCritical,
	}, nil
}

// percentile returns the p-th percentile (0 <= p <= 1) of an ascending slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	index := int(float64(len(sorted)-1) * p)
	if index < 0 {
		index = 0
	}
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	return sorted[index]
}
