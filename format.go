package nthterm

import (
	"math"
	"strconv"
	"strings"

	"github.com/nthterm/nthterm/pkg/domain"
)

// EmptyDisplay is the placeholder shown for a sequence with no terms.
const EmptyDisplay = "No terms to display"

// Format renders a sequence as a comma-separated display string. Terms that
// are mathematically integral render without a decimal point ("5", not "5.0");
// everything else uses 6 significant digits in general notation.
func Format(seq domain.Sequence) string {
	if len(seq) == 0 {
		return EmptyDisplay
	}

	parts := make([]string, len(seq))
	for i, term := range seq {
		parts[i] = FormatTerm(term)
	}
	return strings.Join(parts, ", ")
}

// FormatTerm renders a single numeric value using the display rules above.
func FormatTerm(term float64) string {
	if isIntegral(term) {
		return strconv.FormatInt(int64(term), 10)
	}
	return strconv.FormatFloat(term, 'g', 6, 64)
}

// isIntegral reports whether the value has no fractional part and fits in an
// int64. NaN, infinities, and overflowing magnitudes fall through to the
// general float formatting.
func isIntegral(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return math.Trunc(v) == v && math.Abs(v) < math.MaxInt64
}
