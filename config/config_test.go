package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-existe.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "esoteric", cfg.ABTest.BusinessType)
	assert.Equal(t, []string{"emocional", "urgente", "profesional"}, cfg.ABTest.Tones)
	assert.Equal(t, 15, cfg.ABTest.NumHeadlines)
	assert.Equal(t, 4, cfg.ABTest.NumDescriptions)
	assert.Equal(t, 3, cfg.ABTest.Workers)
	assert.InDelta(t, 8.0, cfg.ABTest.TargetScore, 0.001)
	assert.Equal(t, int64(100), cfg.ABTest.MinClicks)
	assert.InDelta(t, 0.95, cfg.ABTest.MinConfidence, 0.001)
	assert.Equal(t, "adlab.db", cfg.Storage.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.HasAPIKey())
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
abtest:
  business_type: generic
  tones: [urgente]
  num_headlines: 5
  min_clicks: 250
storage:
  dsn: ":memory:"
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "generic", cfg.ABTest.BusinessType)
	assert.Equal(t, []string{"urgente"}, cfg.ABTest.Tones)
	assert.Equal(t, 5, cfg.ABTest.NumHeadlines)
	assert.Equal(t, int64(250), cfg.ABTest.MinClicks)
	assert.Equal(t, ":memory:", cfg.Storage.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	// lo no declarado conserva su default
	assert.Equal(t, 4, cfg.ABTest.NumDescriptions)
	assert.InDelta(t, 0.95, cfg.ABTest.MinConfidence, 0.001)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: warn
generator:
  api_key: del-yaml
`), 0o644))

	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("OPENAI_API_KEY", "del-entorno")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "del-entorno", cfg.Generator.APIKey)
	assert.True(t, cfg.HasAPIKey())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("abtest: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
