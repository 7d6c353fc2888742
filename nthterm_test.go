package nthterm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nthterm/nthterm"
	"github.com/nthterm/nthterm/pkg/domain"
)

func TestService_Scenarios(t *testing.T) {
	svc := nthterm.New()
	ctx := context.Background()

	tests := []struct {
		name          string
		params        domain.Parameters
		wantFormatted string
		wantSum       float64
	}{
		{
			name:          "Arithmetic Natural Numbers",
			params:        domain.Parameters{Kind: domain.KindArithmetic, FirstTerm: 1, Step: 1, TermCount: 10},
			wantFormatted: "1, 2, 3, 4, 5, 6, 7, 8, 9, 10",
			wantSum:       55,
		},
		{
			name:          "Arithmetic Negative Step",
			params:        domain.Parameters{Kind: domain.KindArithmetic, FirstTerm: 100, Step: -5, TermCount: 6},
			wantFormatted: "100, 95, 90, 85, 80, 75",
			wantSum:       525,
		},
		{
			name:          "Geometric Powers of 2",
			params:        domain.Parameters{Kind: domain.KindGeometric, FirstTerm: 1, Step: 2, TermCount: 8},
			wantFormatted: "1, 2, 4, 8, 16, 32, 64, 128",
			wantSum:       255,
		},
		{
			name:          "Geometric Fractional Ratio",
			params:        domain.Parameters{Kind: domain.KindGeometric, FirstTerm: 100, Step: 0.5, TermCount: 6},
			wantFormatted: "100, 50, 25, 12.5, 6.25, 3.125",
			wantSum:       196.875,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Generate(ctx, tt.params)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFormatted, res.Formatted)
			assert.Equal(t, tt.wantSum, res.ClosedSum)
			assert.InDelta(t, res.ClosedSum, res.DirectSum, 1e-9)
			assert.Len(t, res.Terms, tt.params.TermCount)
			assert.Equal(t, res.Terms.Last(), res.LastTerm)
			assert.Equal(t, res.Terms.Range(), res.Range)
			assert.NotEmpty(t, res.Formula)
		})
	}
}

func TestService_TermCountBoundary(t *testing.T) {
	svc := nthterm.New()
	ctx := context.Background()

	t.Run("Maximum Accepted", func(t *testing.T) {
		res, err := svc.Generate(ctx, domain.Parameters{Kind: domain.KindArithmetic, FirstTerm: 1, Step: 1, TermCount: 1000})
		require.NoError(t, err)
		assert.Len(t, res.Terms, 1000)
		assert.Equal(t, 500500.0, res.ClosedSum)
	})

	t.Run("Over Maximum Rejected", func(t *testing.T) {
		_, err := svc.Generate(ctx, domain.Parameters{Kind: domain.KindArithmetic, FirstTerm: 1, Step: 1, TermCount: 1001})
		assert.ErrorIs(t, err, domain.ErrTermCountRange)
	})

	t.Run("Zero Rejected", func(t *testing.T) {
		_, err := svc.Generate(ctx, domain.Parameters{Kind: domain.KindArithmetic, FirstTerm: 1, Step: 1, TermCount: 0})
		assert.ErrorIs(t, err, domain.ErrTermCountRange)
	})

	t.Run("Custom Max", func(t *testing.T) {
		small := nthterm.New(nthterm.WithMaxTerms(5))
		_, err := small.Generate(ctx, domain.Parameters{Kind: domain.KindArithmetic, FirstTerm: 1, Step: 1, TermCount: 6})
		assert.ErrorIs(t, err, domain.ErrTermCountRange)
	})
}

func TestService_UnknownKindRejected(t *testing.T) {
	svc := nthterm.New()
	_, err := svc.Generate(context.Background(), domain.Parameters{Kind: "harmonic", FirstTerm: 1, Step: 1, TermCount: 5})
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestService_Hooks(t *testing.T) {
	var generated, rejected int

	svc := nthterm.New(nthterm.WithLifecycleHooks(domain.LifecycleHooks{
		OnGenerate: func(ctx context.Context, e *domain.GenerateEvent) {
			generated++
			assert.Equal(t, domain.KindGeometric, e.Kind)
			assert.Equal(t, 8, e.TermCount)
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			rejected++
			assert.NotEmpty(t, e.Reason)
		},
	}))

	ctx := context.Background()
	_, err := svc.Generate(ctx, domain.Parameters{Kind: domain.KindGeometric, FirstTerm: 1, Step: 2, TermCount: 8})
	require.NoError(t, err)

	_, err = svc.Generate(ctx, domain.Parameters{Kind: domain.KindGeometric, FirstTerm: 1, Step: 2, TermCount: -1})
	require.Error(t, err)

	assert.Equal(t, 1, generated)
	assert.Equal(t, 1, rejected)
}
