package config

import "time"

// RankerConfig defines how candidates are compared concurrently
type RankerConfig struct {
	MaxConcurrency int `json:"max_concurrency,omitempty" yaml:"max_concurrency,omitempty" toml:"max_concurrency" validate:"min=1"`
	// ComparisonTimeoutMs bounds one candidate's comparison. Zero disables the limit.
	ComparisonTimeoutMs int `json:"comparison_timeout_ms" yaml:"comparison_timeout_ms" toml:"comparison_timeout_ms" validate:"min=0"`
}

// NewDefaultRankerConfig creates default ranker configuration
func NewDefaultRankerConfig() RankerConfig {
	return RankerConfig{
		MaxConcurrency:      DefaultRankerMaxConcurrency,
		ComparisonTimeoutMs: DefaultRankerComparisonTimeoutMs,
	}
}

// ComparisonTimeout returns the per-candidate timeout as a duration
func (rc RankerConfig) ComparisonTimeout() time.Duration {
	return time.Duration(rc.ComparisonTimeoutMs) * time.Millisecond
}
