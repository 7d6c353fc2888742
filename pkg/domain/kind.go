package domain

import (
	"fmt"
	"strings"
)

// Kind identifies the progression rule of a sequence.
type Kind string

const (
	KindArithmetic Kind = "arithmetic"
	KindGeometric  Kind = "geometric"
)

// ParseKind normalizes a user-supplied kind string.
// It accepts any casing ("Arithmetic", "GEOMETRIC", ...).
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindArithmetic:
		return KindArithmetic, nil
	case KindGeometric:
		return KindGeometric, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Label returns the display name used in reports ("Arithmetic", "Geometric").
func (k Kind) Label() string {
	switch k {
	case KindGeometric:
		return "Geometric"
	default:
		return "Arithmetic"
	}
}

// StepLabel returns the display name of the step parameter for this kind.
func (k Kind) StepLabel() string {
	if k == KindGeometric {
		return "Common Ratio"
	}
	return "Common Difference"
}

// DefaultStep returns the form default for the step parameter: 1.0 for a
// common difference, 2.0 for a common ratio.
func (k Kind) DefaultStep() float64 {
	if k == KindGeometric {
		return 2.0
	}
	return 1.0
}
