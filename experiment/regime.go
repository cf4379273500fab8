// SPDX-License-Identifier: MIT

package experiment

import "math"

// Regime labels a size by how its measured time compares with the model.
type Regime int

const (
	// RegimeUnknown marks an overhead that cannot be classified (NaN).
	RegimeUnknown Regime = iota

	// Suboptimal: above the threshold at small n, before any size met the model.
	// Recursion and allocation per scalar product dominate here.
	Suboptimal

	// Optimal: overhead at or below the threshold.
	Optimal

	// Degraded: above the threshold after some smaller size was Optimal.
	// Typically memory traffic from the quadrant copies at large n.
	Degraded
)

// String implements fmt.Stringer.
func (r Regime) String() string {
	switch r {
	case Suboptimal:
		return "suboptimal"
	case Optimal:
		return "optimal"
	case Degraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Classify labels each overhead, given in increasing size order.
//
// Rule:
//   - overhead ≤ threshold → Optimal.
//   - overhead > threshold before the first Optimal entry → Suboptimal.
//   - overhead > threshold after it → Degraded.
//   - NaN → RegimeUnknown.
//
// Complexity: O(p).
func Classify(overheads []float64, threshold float64) []Regime {
	out := make([]Regime, len(overheads))
	seenOptimal := false
	for i, oh := range overheads {
		switch {
		case math.IsNaN(oh):
			out[i] = RegimeUnknown
		case oh <= threshold:
			out[i] = Optimal
			seenOptimal = true
		case seenOptimal:
			out[i] = Degraded
		default:
			out[i] = Suboptimal
		}
	}

	return out
}
