// Package curve maps values through piecewise-linear breakpoint tables,
// for non-linear response curves (acceleration ramps, perceptual
// brightness, heat meters).
package curve

import "github.com/lixenwraith/tween/remap"

// NonLinearMap maps value through the piecewise-linear curve defined by
// the parallel slices positions and values. Inputs below the first
// position return values[0] and inputs at or above the last position
// return the last value; the curve clamps rather than extrapolates.
// Exact breakpoint inputs return the exact table value.
//
// Preconditions (caller-enforced, not validated): positions is sorted
// ascending, and both slices are non-empty with equal length. The
// result on an unsorted or empty table is undefined. The slices are
// never mutated or retained.
func NonLinearMap(value float64, positions, values []float64) float64 {
	// First index strictly above value; duplicates resolve to the
	// first qualifying index.
	i := 0
	for i < len(positions) && positions[i] <= value {
		i++
	}

	if i == len(positions) {
		return values[len(values)-1]
	}
	if i == 0 {
		return values[0]
	}

	t := (value - positions[i-1]) / (positions[i] - positions[i-1])
	return remap.Lerp(values[i-1], values[i], t)
}

// Table bundles a breakpoint curve for repeated lookups.
type Table struct {
	Positions []float64
	Values    []float64
}

// Map applies NonLinearMap against the table.
func (t Table) Map(value float64) float64 {
	return NonLinearMap(value, t.Positions, t.Values)
}
