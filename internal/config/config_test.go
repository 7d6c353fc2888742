package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nthterm/nthterm/internal/config"
	"github.com/nthterm/nthterm/pkg/domain"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 1000, cfg.MaxTerms)
	assert.Equal(t, domain.KindArithmetic, cfg.Defaults.Kind)
	assert.Equal(t, 10, cfg.Defaults.TermCount)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nthterm.yaml")
	content := `
addr: ":9000"
max_terms: 500
redis:
  addr: "localhost:6379"
  db: 2
  ttl: 1h
defaults:
  kind: geometric
  first_term: 1
  step: 2
  term_count: 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 500, cfg.MaxTerms)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Redis.TTL.Std())
	assert.Equal(t, domain.KindGeometric, cfg.Defaults.Kind)

	params := cfg.Defaults.Parameters()
	assert.Equal(t, 2.0, params.Step)
	assert.Equal(t, 8, params.TermCount)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`addr: ":3000"`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, 1000, cfg.MaxTerms)
	assert.Equal(t, domain.KindArithmetic, cfg.Defaults.Kind)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("Bad YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o644))
		_, err := config.Load(path)
		assert.Error(t, err)
	})

	t.Run("Bad Default Kind", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kind.yaml")
		require.NoError(t, os.WriteFile(path, []byte("defaults:\n  kind: fibonacci\n"), 0o644))
		_, err := config.Load(path)
		assert.Error(t, err)
	})
}
