package collatzbench

import "math"

// RCritical is the critical contraction ratio log2(3) ≈ 1.584962500721156.
//
// A sequence that halves exactly log2(3) times per tripling step neither
// grows nor shrinks on average. Mean ratios above this value describe
// trajectories that contract.
var RCritical = math.Log2(3)

// DefaultIterationCap bounds the number of map applications per sequence.
// It only guards against an unbounded loop; no start in the default range
// comes close to it.
const DefaultIterationCap = 1_000_000

// SequenceResult records one full run of the Collatz map from Start.
type SequenceResult struct {
	Start        uint64  `json:"start"`
	Converged    bool    `json:"converged"`
	Steps        int     `json:"steps"`
	Contractions int     `json:"contractions"` // halving steps (even branch)
	Expansions   int     `json:"expansions"`   // 3n+1 steps (odd branch)
	Ratio        float64 `json:"ratio"`        // Contractions / Expansions, zero when Expansions == 0
	Overflowed   bool    `json:"overflowed,omitempty"`
}

// Valid reports whether the sequence may contribute a ratio: it reached 1
// within the cap and took at least one tripling step.
func (s SequenceResult) Valid() bool {
	return s.Converged && s.Expansions > 0
}

// maxOddOperand is the largest n for which 3n+1 fits in a uint64.
const maxOddOperand = (math.MaxUint64 - 1) / 3

// Step applies the Collatz map once: n/2 for even n, 3n+1 for odd n.
// The odd branch wraps for n > (2^64-2)/3; use StepChecked when n may be
// that large.
func Step(n uint64) uint64 {
	if n%2 == 0 {
		return n / 2
	}
	return 3*n + 1
}

// StepChecked is Step with overflow detection. ok is false, and n is
// returned unchanged, when 3n+1 does not fit in a uint64.
func StepChecked(n uint64) (next uint64, ok bool) {
	if n%2 == 0 {
		return n / 2, true
	}
	if n > maxOddOperand {
		return n, false
	}
	return 3*n + 1, true
}

// AnalyzeSequence iterates the map from start until it reaches 1 or
// iterationCap steps have been taken.
//
// The run is converged iff it stopped before the cap. A trajectory whose
// next value would exceed the uint64 range stops there with Overflowed set
// and is never converged. Ratio is only filled in for converged runs with at
// least one expansion, so callers never divide by zero.
func AnalyzeSequence(start uint64, iterationCap int) SequenceResult {
	current := start
	res := SequenceResult{Start: start}

	for current != 1 && res.Steps < iterationCap {
		if current%2 == 0 {
			current /= 2
			res.Contractions++
		} else {
			if current > maxOddOperand {
				res.Overflowed = true
				break
			}
			current = 3*current + 1
			res.Expansions++
		}
		res.Steps++
	}

	res.Converged = !res.Overflowed && res.Steps < iterationCap
	if res.Valid() {
		res.Ratio = float64(res.Contractions) / float64(res.Expansions)
	}

	return res
}

// Trajectory returns the visited values starting at start (inclusive) and
// ending at 1, after iterationCap applications of the map, or at the last
// value before the uint64 range would be exceeded.
//
// The sampler does not call it; it is exposed for inspecting single
// starting values.
func Trajectory(start uint64, iterationCap int) []uint64 {
	trajectory := []uint64{start}
	x := start

	for i := 0; i < iterationCap && x != 1; i++ {
		next, ok := StepChecked(x)
		if !ok {
			break
		}
		x = next
		trajectory = append(trajectory, x)
	}

	return trajectory
}
