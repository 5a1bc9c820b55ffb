package differ

import (
	"fmt"

	"github.com/aleister1102/goldencopy/internal/common"
)

// ConfigValidator validates diff configuration values
type ConfigValidator struct{}

// NewConfigValidator creates a new config validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// Validate checks thresholds and costs are within their ranges
func (cv *ConfigValidator) Validate(cfg DiffConfig) error {
	thresholds := []struct {
		field string
		value float64
	}{
		{"word_fuzzy_threshold", cfg.WordFuzzyThreshold},
		{"line_fuzzy_threshold", cfg.LineFuzzyThreshold},
		{"array_match_threshold", cfg.ArrayMatchThreshold},
	}
	for _, th := range thresholds {
		if err := cv.validateUnitInterval(th.field, th.value); err != nil {
			return err
		}
	}

	if cfg.FuzzyReplaceCost <= 0 || cfg.FuzzyReplaceCost > hardReplaceCost {
		return common.NewValidationError("fuzzy_replace_cost", cfg.FuzzyReplaceCost,
			fmt.Sprintf("must be in (0, %.1f]", hardReplaceCost))
	}

	if cfg.NumberTolerance < 0 {
		return common.NewValidationError("number_tolerance", cfg.NumberTolerance, "must not be negative")
	}

	if cfg.ContextLines < 0 {
		return common.NewValidationError("context_lines", cfg.ContextLines, "must not be negative")
	}

	return nil
}

// validateUnitInterval checks a value lies in [0, 1]
func (cv *ConfigValidator) validateUnitInterval(field string, value float64) error {
	if value < 0 || value > 1 {
		return common.NewValidationError(field, value, "must be between 0 and 1")
	}
	return nil
}
