package collatzbench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100_000, cfg.SampleSize)
	assert.Equal(t, uint64(2_000_000), cfg.MaxStart)
	assert.Equal(t, 1_000_000, cfg.IterationCap)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, DefaultOutputPath, cfg.Output)
	assert.True(t, cfg.IncludeResearchImplications)
	assert.False(t, cfg.RetainSequences)
}

func TestConfig_ValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"sample size":     func(c *Config) { c.SampleSize = -1 },
		"max start":       func(c *Config) { c.MaxStart = 3 },
		"iteration cap":   func(c *Config) { c.IterationCap = 0 },
		"workers":         func(c *Config) { c.Workers = 0 },
		"output":          func(c *Config) { c.Output = "" },
		"thresholds":      func(c *Config) { c.Labels.StrongThreshold = c.Labels.PositiveThreshold },
		"missing heading": func(c *Config) { c.Labels.Strong.Headline = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collatz.yaml")
	data := []byte(`
sample_size: 500
iteration_cap: 100000
seed: 99
retain_sequences: true
labels:
  positive_threshold: 0.3
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.SampleSize)
	assert.Equal(t, 100_000, cfg.IterationCap)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.True(t, cfg.RetainSequences)
	assert.Equal(t, 0.3, cfg.Labels.PositiveThreshold)

	// Untouched keys keep their defaults.
	assert.Equal(t, uint64(2_000_000), cfg.MaxStart)
	assert.Equal(t, 0.5, cfg.Labels.StrongThreshold)
	assert.Equal(t, DefaultLabelTable().Strong.Headline, cfg.Labels.Strong.Headline)
	assert.Equal(t, DefaultOutputPath, cfg.Output)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sample_size: [oops"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("max_start: 2\n"), 0o644))
	_, err = LoadConfig(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
