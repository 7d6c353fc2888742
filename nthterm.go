package nthterm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nthterm/nthterm/internal/logging"
	"github.com/nthterm/nthterm/internal/validator"
	"github.com/nthterm/nthterm/pkg/domain"
)

// Version is the library version, reported by the /info endpoint and the
// version command.
var Version = "0.3.0"

// Service is the high-level entry point for the nthterm library.
// It composes the pure numeric functions into a validate-generate-summarize
// pipeline and adds logging and lifecycle hooks around it.
type Service struct {
	maxTerms int
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithMaxTerms overrides the upper bound on term count (default 1000).
func WithMaxTerms(n int) Option {
	return func(s *Service) {
		s.maxTerms = n
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Service) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New initializes a new sequence Service.
func New(opts ...Option) *Service {
	s := &Service{
		maxTerms: validator.DefaultMaxTerms,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxTerms returns the configured upper bound on term count.
func (s *Service) MaxTerms() int {
	return s.maxTerms
}

// Generate runs the full pipeline for one request and assembles the Result.
// Validation failures return before any computation; the caller surfaces
// them as user-visible warnings. Any other failure is wrapped generically.
func (s *Service) Generate(ctx context.Context, p domain.Parameters) (*domain.Result, error) {
	start := time.Now()

	if err := validator.Parameters(p, s.maxTerms); err != nil {
		s.logger.Warn("generation rejected", "kind", p.Kind, "term_count", p.TermCount, "err", err)
		s.fireReject(ctx, p, err)
		return nil, err
	}

	terms := Generate(p.Kind, p.FirstTerm, p.Step, p.TermCount)
	if len(terms) != p.TermCount {
		// Unreachable with a validated count; kept as the generic catch-all
		// around the generation step.
		return nil, fmt.Errorf("an error occurred while generating the sequence")
	}

	res := &domain.Result{
		Parameters: p,
		Terms:      terms,
		Formatted:  Format(terms),
		ClosedSum:  Sum(p.Kind, p.FirstTerm, p.Step, p.TermCount),
		DirectSum:  terms.Sum(),
		LastTerm:   terms.Last(),
		Range:      terms.Range(),
		Formula:    Formula(p.Kind, p.FirstTerm, p.Step),
	}

	s.logger.Debug("sequence generated",
		"kind", p.Kind,
		"term_count", p.TermCount,
		"closed_sum", res.ClosedSum,
	)

	if s.hooks.OnGenerate != nil {
		s.hooks.OnGenerate(ctx, &domain.GenerateEvent{
			Timestamp: time.Now(),
			Kind:      p.Kind,
			TermCount: p.TermCount,
			Duration:  time.Since(start),
		})
	}

	return res, nil
}

func (s *Service) fireReject(ctx context.Context, p domain.Parameters, err error) {
	if s.hooks.OnReject == nil {
		return
	}
	s.hooks.OnReject(ctx, &domain.RejectEvent{
		Timestamp: time.Now(),
		Kind:      p.Kind,
		Reason:    err.Error(),
	})
}
