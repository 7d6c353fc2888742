package nthterm

import (
	"math"

	"github.com/nthterm/nthterm/pkg/domain"
)

// Generate produces the ordered terms of a sequence. A non-positive term
// count yields an empty sequence, not an error.
//
// Arithmetic term i (0-indexed) is first + i*step. Geometric term i is
// first * step^i, computed by exponentiation rather than iterative
// multiplication so each term is independent of its predecessors.
func Generate(kind domain.Kind, first, step float64, n int) domain.Sequence {
	if n <= 0 {
		return domain.Sequence{}
	}

	seq := make(domain.Sequence, n)
	switch kind {
	case domain.KindGeometric:
		for i := range seq {
			seq[i] = first * math.Pow(step, float64(i))
		}
	default:
		for i := range seq {
			seq[i] = first + float64(i)*step
		}
	}
	return seq
}
