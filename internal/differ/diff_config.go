package differ

import (
	"github.com/aleister1102/goldencopy/internal/config"
	"github.com/aleister1102/goldencopy/internal/structural"
)

// Empirical matching constants. Test expectations depend on the exact values.
const (
	// DefaultWordFuzzyThreshold is the token similarity above which a word
	// substitution is charged the fuzzy cost.
	DefaultWordFuzzyThreshold = 0.8
	// DefaultLineFuzzyThreshold is the line similarity above which a line
	// substitution is charged the fuzzy cost.
	DefaultLineFuzzyThreshold = 0.9
	// DefaultArrayMatchThreshold is the element similarity above which the
	// array reconciler treats two elements as equal.
	DefaultArrayMatchThreshold = structural.DefaultArrayMatchThreshold
	// DefaultFuzzyReplaceCost is charged for a substitution of similar tokens.
	DefaultFuzzyReplaceCost = 0.5
	// hardReplaceCost is charged for any other substitution, insertion or deletion.
	hardReplaceCost = 1.0
)

// DiffConfig holds configuration for content diffing
type DiffConfig struct {
	WordFuzzyThreshold    float64
	LineFuzzyThreshold    float64
	ArrayMatchThreshold   float64
	FuzzyReplaceCost      float64
	NumberTolerance       float64
	EnableSemanticCleanup bool
	ContextLines          int
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		WordFuzzyThreshold:    DefaultWordFuzzyThreshold,
		LineFuzzyThreshold:    DefaultLineFuzzyThreshold,
		ArrayMatchThreshold:   DefaultArrayMatchThreshold,
		FuzzyReplaceCost:      DefaultFuzzyReplaceCost,
		NumberTolerance:       0,
		EnableSemanticCleanup: true,
		ContextLines:          3,
	}
}

// NewDiffConfigFromComparer converts the file configuration section
func NewDiffConfigFromComparer(cfg config.ComparerConfig) DiffConfig {
	return DiffConfig{
		WordFuzzyThreshold:    cfg.WordFuzzyThreshold,
		LineFuzzyThreshold:    cfg.LineFuzzyThreshold,
		ArrayMatchThreshold:   cfg.ArrayMatchThreshold,
		FuzzyReplaceCost:      cfg.FuzzyReplaceCost,
		NumberTolerance:       cfg.NumberTolerance,
		EnableSemanticCleanup: cfg.EnableSemanticCleanup,
		ContextLines:          cfg.ContextLines,
	}
}

func (c DiffConfig) reconciler() structural.Reconciler {
	return structural.Reconciler{
		MatchThreshold: c.ArrayMatchThreshold,
		Tolerance:      c.NumberTolerance,
	}
}
