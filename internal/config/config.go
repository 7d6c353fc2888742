// Package config loads server configuration from a YAML file over sane
// defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nthterm/nthterm/internal/validator"
	"github.com/nthterm/nthterm/pkg/domain"
)

// Duration wraps time.Duration so YAML values like "1h" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Redis configures the optional session store backend. An empty Addr keeps
// sessions in process memory.
type Redis struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	TTL      Duration `yaml:"ttl"`
}

// Defaults seeds the form when a visitor has no session yet.
type Defaults struct {
	Kind      domain.Kind `yaml:"kind"`
	FirstTerm float64     `yaml:"first_term"`
	Step      float64     `yaml:"step"`
	TermCount int         `yaml:"term_count"`
}

// Config is the full server configuration.
type Config struct {
	Addr     string   `yaml:"addr"`
	MaxTerms int      `yaml:"max_terms"`
	Redis    Redis    `yaml:"redis"`
	Defaults Defaults `yaml:"defaults"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := domain.DefaultParameters(domain.KindArithmetic)
	return Config{
		Addr:     ":8080",
		MaxTerms: validator.DefaultMaxTerms,
		Defaults: Defaults{
			Kind:      p.Kind,
			FirstTerm: p.FirstTerm,
			Step:      p.Step,
			TermCount: p.TermCount,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.MaxTerms <= 0 {
		cfg.MaxTerms = validator.DefaultMaxTerms
	}
	if _, err := domain.ParseKind(string(cfg.Defaults.Kind)); err != nil {
		return cfg, fmt.Errorf("invalid defaults: %w", err)
	}
	return cfg, nil
}

// Parameters converts the configured defaults into generation parameters.
func (d Defaults) Parameters() domain.Parameters {
	return domain.Parameters{
		Kind:      d.Kind,
		FirstTerm: d.FirstTerm,
		Step:      d.Step,
		TermCount: d.TermCount,
	}
}
