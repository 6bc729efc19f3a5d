// Package remap provides linear range remapping primitives for
// real-time value conversion (cursor position to gradient progress,
// axis position to frequency, etc).
//
// All functions are pure and allocation-free; they are safe to call
// from render and input hot paths.
package remap

import "math"

// MapRange converts input from the range [inMin, inMax] to the range
// [outMin, outMax] without clamping. Inputs outside the source range
// extrapolate.
//
// A zero-width input range (inMin == inMax) divides by zero and yields
// ±Inf or NaN per IEEE-754. The result is propagated, not guarded;
// callers that need a defined result must supply a non-degenerate range.
func MapRange(inMin, inMax, input, outMin, outMax float64) float64 {
	return (input-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
}

// MapRangeClamp is MapRange with the output pinned to the range edges.
// The clamp decision is made in input space: input below inMin returns
// outMin verbatim, input above inMax returns outMax verbatim, without
// running the remap formula. Requires inMin < inMax.
func MapRangeClamp(inMin, inMax, input, outMin, outMax float64) float64 {
	if input < inMin {
		return outMin
	}
	if input > inMax {
		return outMax
	}
	return MapRange(inMin, inMax, input, outMin, outMax)
}

// Lerp linearly interpolates between start and end.
// amount=0 returns start, amount=1 returns end, values outside [0, 1]
// extrapolate.
func Lerp(start, end, amount float64) float64 {
	return (1-amount)*start + amount*end
}

// Clamp limits input to the range [min, max].
// Evaluates as max(min, min(input, max)); callers must supply
// min <= max, otherwise the result follows that evaluation order.
func Clamp(min, input, max float64) float64 {
	return math.Max(min, math.Min(input, max))
}
