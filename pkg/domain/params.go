package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Parameters describes one generation request.
type Parameters struct {
	Kind      Kind    `json:"kind" yaml:"kind" mapstructure:"kind"`
	FirstTerm float64 `json:"first_term" yaml:"first_term" mapstructure:"first_term"`
	Step      float64 `json:"step" yaml:"step" mapstructure:"step"` // difference or ratio, depending on Kind
	TermCount int     `json:"term_count" yaml:"term_count" mapstructure:"term_count"`
}

// DefaultParameters returns the form defaults for the given kind:
// first term 1.0, ten terms, and the kind's default step.
func DefaultParameters(kind Kind) Parameters {
	return Parameters{
		Kind:      kind,
		FirstTerm: 1.0,
		Step:      kind.DefaultStep(),
		TermCount: 10,
	}
}

// ParametersFromMap decodes a loosely-typed argument map (MCP tool calls,
// session payloads) into Parameters. Numeric strings and JSON numbers are
// both accepted; the kind string is normalized.
func ParametersFromMap(args map[string]any) (Parameters, error) {
	var raw struct {
		Kind      string  `mapstructure:"kind"`
		FirstTerm float64 `mapstructure:"first_term"`
		Step      float64 `mapstructure:"step"`
		TermCount int     `mapstructure:"term_count"`
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Parameters{}, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(args); err != nil {
		return Parameters{}, fmt.Errorf("invalid parameters: %w", err)
	}

	kind, err := ParseKind(raw.Kind)
	if err != nil {
		return Parameters{}, err
	}

	return Parameters{
		Kind:      kind,
		FirstTerm: raw.FirstTerm,
		Step:      raw.Step,
		TermCount: raw.TermCount,
	}, nil
}
