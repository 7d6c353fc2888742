package nthterm

import (
	"math"

	"github.com/nthterm/nthterm/pkg/domain"
)

// Sum computes the series sum by closed form, independently of any generated
// sequence. A non-positive term count yields 0.
//
// Arithmetic: S = n/2 * (2a + (n-1)d).
// Geometric: S = n*a when r == 1 (the general formula would be 0/0),
// otherwise S = a * (1 - r^n) / (1 - r).
//
// Large |r| with large n can overflow; the result propagates as ±Inf without
// special handling.
func Sum(kind domain.Kind, first, step float64, n int) float64 {
	if n <= 0 {
		return 0
	}

	fn := float64(n)
	switch kind {
	case domain.KindGeometric:
		if step == 1 {
			return fn * first
		}
		return first * (1 - math.Pow(step, fn)) / (1 - step)
	default:
		return fn / 2 * (2*first + (fn-1)*step)
	}
}
