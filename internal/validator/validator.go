package validator

import (
	"fmt"

	"github.com/nthterm/nthterm/pkg/domain"
)

// DefaultMaxTerms is the upper bound on term count when none is configured.
const DefaultMaxTerms = 1000

// TermCount checks the requested term count against (0, max].
// Out-of-range values wrap domain.ErrTermCountRange so callers can surface
// the message as a warning and skip generation.
func TermCount(n, max int) error {
	if max <= 0 {
		max = DefaultMaxTerms
	}
	if n <= 0 {
		return fmt.Errorf("%w: number of terms must be a positive integer", domain.ErrTermCountRange)
	}
	if n > max {
		return fmt.Errorf("%w: number of terms cannot exceed %d", domain.ErrTermCountRange, max)
	}
	return nil
}

// Parameters checks a full generation request: known kind and valid term
// count. Non-finite first term or step are deliberately accepted; they
// propagate through the formulas as floats.
func Parameters(p domain.Parameters, maxTerms int) error {
	if _, err := domain.ParseKind(string(p.Kind)); err != nil {
		return err
	}
	return TermCount(p.TermCount, maxTerms)
}
