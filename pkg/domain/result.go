package domain

import "time"

// Result is the full outcome of one generation request: the terms plus the
// derived values rendered by the form, the CLI report, and the text export.
type Result struct {
	Parameters Parameters `json:"parameters"`

	Terms     Sequence `json:"terms"`
	Formatted string   `json:"formatted"`

	// ClosedSum is computed by closed form, independently of Terms.
	// DirectSum is the plain summation of Terms, shown as a verification value.
	ClosedSum float64 `json:"closed_sum"`
	DirectSum float64 `json:"direct_sum"`

	LastTerm float64 `json:"last_term"`
	Range    float64 `json:"range"`
	Formula  string  `json:"formula"` // nth-term formula, e.g. "aₙ = 1 + (n-1) × 2"
}

// Session remembers a visitor's last generation parameters so the form can
// be pre-filled on return. Results are never stored.
type Session struct {
	ID         string     `json:"id"`
	Parameters Parameters `json:"parameters"`
	Generated  bool       `json:"generated"` // has this session triggered generation at least once
	UpdatedAt  time.Time  `json:"updated_at"`
}
