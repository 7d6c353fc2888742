package nthterm

import (
	"fmt"
	"math"

	"github.com/nthterm/nthterm/pkg/domain"
)

// Formula returns the nth-term formula as display text.
// Arithmetic folds the sign of the difference into the operator:
// "aₙ = 100 - (n-1) × 5" rather than "aₙ = 100 + (n-1) × -5".
func Formula(kind domain.Kind, first, step float64) string {
	if kind == domain.KindGeometric {
		return fmt.Sprintf("aₙ = %s × %sⁿ⁻¹", FormatTerm(first), FormatTerm(step))
	}
	if step < 0 {
		return fmt.Sprintf("aₙ = %s - (n-1) × %s", FormatTerm(first), FormatTerm(math.Abs(step)))
	}
	return fmt.Sprintf("aₙ = %s + (n-1) × %s", FormatTerm(first), FormatTerm(step))
}
