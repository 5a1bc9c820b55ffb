package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aleister1102/goldencopy/internal/common"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	ComparerConfig ComparerConfig `json:"comparer_config,omitempty" yaml:"comparer_config,omitempty" toml:"comparer_config"`
	RankerConfig   RankerConfig   `json:"ranker_config,omitempty" yaml:"ranker_config,omitempty" toml:"ranker_config"`
	ReporterConfig ReporterConfig `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty" toml:"reporter_config"`
	LogConfig      LogConfig      `json:"log_config,omitempty" yaml:"log_config,omitempty" toml:"log_config"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		ComparerConfig: NewDefaultComparerConfig(),
		RankerConfig:   NewDefaultRankerConfig(),
		ReporterConfig: NewDefaultReporterConfig(),
		LogConfig:      NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// The format follows the file extension: .yaml/.yml, .toml, anything else
// is read as JSON. Values absent from the file keep their defaults. The
// result is validated before it is returned.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	if !fileExists(filePath) {
		return nil, common.NewValidationError("config_file", filePath, "config file does not exist")
	}

	data, err := common.NewInputReader(logger, nil, maxConfigFileSize).Read(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent([]byte(data), filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	logger.Debug().Str("path", filePath).Msg("Config loaded")
	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return parseYAMLConfig(data, filePath, cfg)
	case ".toml":
		return parseTOMLConfig(data, filePath, cfg)
	default:
		return parseJSONConfig(data, filePath, cfg)
	}
}

// parseYAMLConfig parses YAML configuration, rejecting unknown keys
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseTOMLConfig parses TOML configuration, rejecting unknown keys
func parseTOMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return common.NewError("failed to unmarshal TOML from '%s': %w", filePath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return common.NewError("unknown keys in TOML '%s': %v", filePath, undecoded)
	}
	return nil
}

// parseJSONConfig parses JSON configuration, rejecting unknown keys
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
