package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, 0.8, cfg.ComparerConfig.WordFuzzyThreshold)
	assert.Equal(t, 0.9, cfg.ComparerConfig.LineFuzzyThreshold)
	assert.Equal(t, 0.8, cfg.ComparerConfig.ArrayMatchThreshold)
	assert.Equal(t, 0.5, cfg.ComparerConfig.FuzzyReplaceCost)
	assert.Equal(t, DefaultRankerMaxConcurrency, cfg.RankerConfig.MaxConcurrency)
	assert.Equal(t, "info", cfg.LogConfig.LogLevel)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadGlobalConfig("/nonexistent/config.json", zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
comparer_config:
  word_fuzzy_threshold: 0.75
ranker_config:
  max_concurrency: 2
  comparison_timeout_ms: 500
log_config:
  log_level: debug
`)

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 0.75, cfg.ComparerConfig.WordFuzzyThreshold)
	assert.Equal(t, 0.9, cfg.ComparerConfig.LineFuzzyThreshold, "unset values keep defaults")
	assert.Equal(t, 2, cfg.RankerConfig.MaxConcurrency)
	assert.Equal(t, int64(500), cfg.RankerConfig.ComparisonTimeout().Milliseconds())
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"comparer_config": {"line_fuzzy_threshold": 0.95, "number_tolerance": 0.001},
		"reporter_config": {"report_title": "Nightly"}
	}`)

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 0.95, cfg.ComparerConfig.LineFuzzyThreshold)
	assert.Equal(t, 0.001, cfg.ComparerConfig.NumberTolerance)
	assert.Equal(t, "Nightly", cfg.ReporterConfig.ReportTitle)
}

func TestLoadGlobalConfig_TOMLFile(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[comparer_config]
array_match_threshold = 0.6

[log_config]
log_format = "json"
`)

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 0.6, cfg.ComparerConfig.ArrayMatchThreshold)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)
}

func TestLoadGlobalConfig_UnknownKeys(t *testing.T) {
	for name, content := range map[string]string{
		"config.yaml": "comparer_config:\n  bogus: 1\n",
		"config.json": `{"bogus": 1}`,
		"config.toml": "bogus = 1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadGlobalConfig(writeConfig(t, name, content), zerolog.Nop())
			assert.Error(t, err)
		})
	}
}

func TestLoadGlobalConfig_InvalidValues(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
comparer_config:
  word_fuzzy_threshold: 1.5
log_config:
  log_level: loud
`)

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "ComparerConfig.WordFuzzyThreshold")
	assert.Contains(t, err.Error(), "rule 'loglevel'")
}

func TestValidateConfig_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GlobalConfig)
		field  string
	}{
		{"zero fuzzy cost", func(c *GlobalConfig) { c.ComparerConfig.FuzzyReplaceCost = 0 }, "FuzzyReplaceCost"},
		{"negative tolerance", func(c *GlobalConfig) { c.ComparerConfig.NumberTolerance = -1 }, "NumberTolerance"},
		{"no workers", func(c *GlobalConfig) { c.RankerConfig.MaxConcurrency = 0 }, "MaxConcurrency"},
		{"negative timeout", func(c *GlobalConfig) { c.RankerConfig.ComparisonTimeoutMs = -1 }, "ComparisonTimeoutMs"},
		{"unknown format", func(c *GlobalConfig) { c.LogConfig.LogFormat = "xml" }, "LogFormat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGlobalConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	assert.Equal(t, "explicit.yaml", GetConfigPath("explicit.yaml"))

	envPath := writeConfig(t, "env.yaml", "{}")
	t.Setenv(ConfigPathEnv, envPath)
	assert.Equal(t, envPath, GetConfigPath(""))
}
