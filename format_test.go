package nthterm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nthterm/nthterm"
	"github.com/nthterm/nthterm/pkg/domain"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		seq  domain.Sequence
		want string
	}{
		{"Empty", domain.Sequence{}, "No terms to display"},
		{"Nil", nil, "No terms to display"},
		{"Integers", domain.Sequence{1, 2, 3}, "1, 2, 3"},
		{"Integral Floats", domain.Sequence{5.0, 10.0}, "5, 10"},
		{"Negative Integers", domain.Sequence{-3, 0, 3}, "-3, 0, 3"},
		{"Fractions", domain.Sequence{0.5, 0.75, 1, 1.25}, "0.5, 0.75, 1, 1.25"},
		{"Six Significant Digits", domain.Sequence{1.0 / 3.0}, "0.333333"},
		{"Large Magnitude", domain.Sequence{1.5e21}, "1.5e+21"},
		{"Mixed", domain.Sequence{100, 50, 25, 12.5, 6.25, 3.125}, "100, 50, 25, 12.5, 6.25, 3.125"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nthterm.Format(tt.seq))
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	seq := nthterm.Generate(domain.KindGeometric, 100, 0.5, 6)
	assert.Equal(t, nthterm.Format(seq), nthterm.Format(seq))
}

func TestFormatTerm(t *testing.T) {
	assert.Equal(t, "5", nthterm.FormatTerm(5.0))
	assert.Equal(t, "-2", nthterm.FormatTerm(-2.0))
	assert.Equal(t, "2.25", nthterm.FormatTerm(2.25))
	assert.Equal(t, "+Inf", nthterm.FormatTerm(math.Inf(1)))
}

func TestFormula(t *testing.T) {
	tests := []struct {
		name  string
		kind  domain.Kind
		first float64
		step  float64
		want  string
	}{
		{"Arithmetic Positive Step", domain.KindArithmetic, 1, 2, "aₙ = 1 + (n-1) × 2"},
		{"Arithmetic Negative Step", domain.KindArithmetic, 100, -5, "aₙ = 100 - (n-1) × 5"},
		{"Arithmetic Fractional", domain.KindArithmetic, 0.5, 0.25, "aₙ = 0.5 + (n-1) × 0.25"},
		{"Geometric", domain.KindGeometric, 1, 2, "aₙ = 1 × 2ⁿ⁻¹"},
		{"Geometric Fractional", domain.KindGeometric, 100, 0.5, "aₙ = 100 × 0.5ⁿ⁻¹"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nthterm.Formula(tt.kind, tt.first, tt.step))
		})
	}
}
