package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"ECOEVAL_PORT", "ECOEVAL_METRICS_PORT", "ECOEVAL_RATE_LIMIT_PER_MIN", "ECOEVAL_TRUST_PROXY",
	"ECOEVAL_METHOD", "ECOEVAL_SHIFT", "ECOEVAL_WEIGHT_USAGE", "ECOEVAL_AHP_METHOD",
	"ECOEVAL_OVERSIZE", "ECOEVAL_CONSISTENCY_THRESHOLD", "ECOEVAL_TIE_RULE",
	"ECOEVAL_LOG_LEVEL", "ECOEVAL_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8700, cfg.Server.Port)
	assert.Equal(t, 8701, cfg.Server.MetricsPort)
	assert.Equal(t, 120, cfg.Server.RateLimitPerMin)
	assert.False(t, cfg.Server.TrustProxy)
	assert.Equal(t, "minmax", cfg.Engine.Method)
	assert.Equal(t, 0.01, cfg.Engine.Shift)
	assert.Equal(t, "both", cfg.Engine.WeightUsage)
	assert.Equal(t, "geometric", cfg.Engine.AHPMethod)
	assert.Equal(t, "abort", cfg.Engine.Oversize)
	assert.Equal(t, 0.1, cfg.Engine.ConsistencyThreshold)
	assert.Equal(t, "competition", cfg.Engine.TieRule)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "ecoeval.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
engine:
  method: sum_of_squares
  oversize: truncate
logging:
  format: text
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 8701, cfg.Server.MetricsPort, "unset keys keep defaults")
	assert.Equal(t, "sum_of_squares", cfg.Engine.Method)
	assert.Equal(t, "truncate", cfg.Engine.Oversize)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ECOEVAL_PORT", "9100")
	t.Setenv("ECOEVAL_SHIFT", "0.05")
	t.Setenv("ECOEVAL_TIE_RULE", "dense")
	t.Setenv("ECOEVAL_LOG_LEVEL", "debug")
	t.Setenv("ECOEVAL_METRICS_PORT", "not-a-number")
	t.Setenv("ECOEVAL_TRUST_PROXY", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 8701, cfg.Server.MetricsPort, "malformed numbers are ignored")
	assert.Equal(t, 0.05, cfg.Engine.Shift)
	assert.Equal(t, "dense", cfg.Engine.TieRule)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Server.TrustProxy)

	d := cfg.Defaults()
	assert.Equal(t, 0.05, d.Shift)
	assert.Equal(t, "dense", d.TieRule)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("server: [1, 2"), 0o600))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parse config")

	t.Setenv("ECOEVAL_WEIGHT_USAGE", "sideways")
	_, err = Load("")
	assert.ErrorContains(t, err, "weight_usage")

	t.Setenv("ECOEVAL_WEIGHT_USAGE", "")
	t.Setenv("ECOEVAL_SHIFT", "2")
	_, err = Load("")
	assert.ErrorContains(t, err, "standardization.shift")
}
