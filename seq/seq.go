// Package seq provides small numeric aggregation helpers over slices,
// with selector variants for projecting non-numeric element types.
// These are the plumbing collaborators of the remap/curve/rate
// packages: they prepare plain numeric sequences, nothing more.
package seq

import "golang.org/x/exp/constraints"

// Number covers the numeric types the aggregations accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Min returns the smallest element, or the zero value for an empty
// slice.
func Min[T Number](items []T) T {
	return MinFunc(items, func(v T) T { return v })
}

// MinFunc returns the smallest selected value, or the zero value for an
// empty slice.
func MinFunc[E any, T Number](items []E, sel func(E) T) T {
	var best T
	for i, item := range items {
		v := sel(item)
		if i == 0 || v < best {
			best = v
		}
	}
	return best
}

// Max returns the largest element, or the zero value for an empty
// slice.
func Max[T Number](items []T) T {
	return MaxFunc(items, func(v T) T { return v })
}

// MaxFunc returns the largest selected value, or the zero value for an
// empty slice.
func MaxFunc[E any, T Number](items []E, sel func(E) T) T {
	var best T
	for i, item := range items {
		v := sel(item)
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}

// Sum returns the total of all elements.
func Sum[T Number](items []T) T {
	return SumFunc(items, func(v T) T { return v })
}

// SumFunc returns the total of all selected values.
func SumFunc[E any, T Number](items []E, sel func(E) T) T {
	var total T
	for _, item := range items {
		total += sel(item)
	}
	return total
}
