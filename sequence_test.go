package nthterm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nthterm/nthterm"
	"github.com/nthterm/nthterm/pkg/domain"
)

func TestGenerate_Length(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100, 1000} {
		seq := nthterm.Generate(domain.KindArithmetic, 1, 1, n)
		assert.Len(t, seq, n)
	}
}

func TestGenerate_EmptyForNonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		assert.Empty(t, nthterm.Generate(domain.KindArithmetic, 1, 1, n))
		assert.Empty(t, nthterm.Generate(domain.KindGeometric, 1, 2, n))
	}
}

func TestGenerate_ArithmeticTerms(t *testing.T) {
	tests := []struct {
		name  string
		first float64
		step  float64
		n     int
	}{
		{"Natural Numbers", 1, 1, 10},
		{"Decreasing", 100, -5, 6},
		{"Fractional Step", 0.5, 0.25, 8},
		{"Zero Step", 7, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := nthterm.Generate(domain.KindArithmetic, tt.first, tt.step, tt.n)
			require.Len(t, seq, tt.n)
			for i, term := range seq {
				assert.Equal(t, tt.first+float64(i)*tt.step, term, "term %d", i)
			}
		})
	}
}

func TestGenerate_GeometricTerms(t *testing.T) {
	tests := []struct {
		name  string
		first float64
		step  float64
		n     int
	}{
		{"Powers of 2", 1, 2, 8},
		{"Halving", 100, 0.5, 6},
		{"Alternating Sign", 1, -3, 5},
		{"Unit Ratio", 4, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := nthterm.Generate(domain.KindGeometric, tt.first, tt.step, tt.n)
			require.Len(t, seq, tt.n)
			for i, term := range seq {
				assert.Equal(t, tt.first*math.Pow(tt.step, float64(i)), term, "term %d", i)
			}
		})
	}
}

func TestGenerate_Pure(t *testing.T) {
	a := nthterm.Generate(domain.KindGeometric, 3, 1.5, 20)
	b := nthterm.Generate(domain.KindGeometric, 3, 1.5, 20)
	assert.Equal(t, a, b, "identical inputs must yield identical outputs")
}

func TestGenerate_NonFiniteInputsPropagate(t *testing.T) {
	seq := nthterm.Generate(domain.KindArithmetic, math.Inf(1), 1, 3)
	for _, term := range seq {
		assert.True(t, math.IsInf(term, 1))
	}

	seq = nthterm.Generate(domain.KindGeometric, 1, math.NaN(), 3)
	assert.False(t, math.IsNaN(seq[0]), "first term is r^0 = 1 times a")
	assert.True(t, math.IsNaN(seq[1]))
}

func TestSum_ClosedForm(t *testing.T) {
	tests := []struct {
		name  string
		kind  domain.Kind
		first float64
		step  float64
		n     int
		want  float64
	}{
		{"Arithmetic 1..10", domain.KindArithmetic, 1, 1, 10, 55},
		{"Arithmetic Decreasing", domain.KindArithmetic, 100, -5, 6, 525},
		{"Geometric Powers of 2", domain.KindGeometric, 1, 2, 8, 255},
		{"Geometric Halving", domain.KindGeometric, 100, 0.5, 6, 196.875},
		{"Zero Terms", domain.KindArithmetic, 5, 5, 0, 0},
		{"Negative Terms", domain.KindGeometric, 5, 5, -2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nthterm.Sum(tt.kind, tt.first, tt.step, tt.n))
		})
	}
}

func TestSum_GeometricUnitRatio(t *testing.T) {
	// r == 1 must be n*a exactly, avoiding 0/0 in the general formula.
	assert.Equal(t, 35.0, nthterm.Sum(domain.KindGeometric, 5, 1, 7))
	assert.False(t, math.IsNaN(nthterm.Sum(domain.KindGeometric, 1, 1, 1000)))
}

func TestSum_MatchesDirectSummation(t *testing.T) {
	tests := []struct {
		name  string
		kind  domain.Kind
		first float64
		step  float64
		n     int
	}{
		{"Arithmetic Fractional", domain.KindArithmetic, 0.5, 0.25, 8},
		{"Arithmetic Negative", domain.KindArithmetic, -10, 3.5, 41},
		{"Arithmetic Large", domain.KindArithmetic, 1, 1, 1000},
		{"Geometric Fractional", domain.KindGeometric, 100, 0.5, 6},
		{"Geometric Negative Ratio", domain.KindGeometric, 2, -1.5, 15},
		{"Geometric Near Unit", domain.KindGeometric, 1, 1.001, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := nthterm.Generate(tt.kind, tt.first, tt.step, tt.n)
			direct := seq.Sum()
			closed := nthterm.Sum(tt.kind, tt.first, tt.step, tt.n)
			assert.InEpsilon(t, direct, closed, 1e-9)
		})
	}
}

func TestSum_OverflowPropagatesAsInf(t *testing.T) {
	got := nthterm.Sum(domain.KindGeometric, 1, 10, 1000)
	assert.True(t, math.IsInf(got, 1), "overflow is not specially handled")
}

func TestSequence_DerivedValues(t *testing.T) {
	seq := nthterm.Generate(domain.KindArithmetic, 100, -5, 6)
	assert.Equal(t, 75.0, seq.Last())
	assert.Equal(t, 25.0, seq.Range())
	assert.Equal(t, 525.0, seq.Sum())

	empty := domain.Sequence{}
	assert.Equal(t, 0.0, empty.Last())
	assert.Equal(t, 0.0, empty.Range())
	assert.Equal(t, 0.0, empty.Sum())
}
