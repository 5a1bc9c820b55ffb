package config

// ComparerConfig defines the thresholds and costs used by the diff engines
type ComparerConfig struct {
	WordFuzzyThreshold    float64 `json:"word_fuzzy_threshold" yaml:"word_fuzzy_threshold" toml:"word_fuzzy_threshold" validate:"gte=0,lte=1"`
	LineFuzzyThreshold    float64 `json:"line_fuzzy_threshold" yaml:"line_fuzzy_threshold" toml:"line_fuzzy_threshold" validate:"gte=0,lte=1"`
	ArrayMatchThreshold   float64 `json:"array_match_threshold" yaml:"array_match_threshold" toml:"array_match_threshold" validate:"gte=0,lte=1"`
	FuzzyReplaceCost      float64 `json:"fuzzy_replace_cost" yaml:"fuzzy_replace_cost" toml:"fuzzy_replace_cost" validate:"gt=0,lte=1"`
	NumberTolerance       float64 `json:"number_tolerance,omitempty" yaml:"number_tolerance,omitempty" toml:"number_tolerance" validate:"gte=0"`
	EnableSemanticCleanup bool    `json:"enable_semantic_cleanup" yaml:"enable_semantic_cleanup" toml:"enable_semantic_cleanup"`
	ContextLines          int     `json:"context_lines" yaml:"context_lines" toml:"context_lines" validate:"gte=0"`
}

// NewDefaultComparerConfig creates default comparer configuration
func NewDefaultComparerConfig() ComparerConfig {
	return ComparerConfig{
		WordFuzzyThreshold:    DefaultWordFuzzyThreshold,
		LineFuzzyThreshold:    DefaultLineFuzzyThreshold,
		ArrayMatchThreshold:   DefaultArrayMatchThreshold,
		FuzzyReplaceCost:      DefaultFuzzyReplaceCost,
		EnableSemanticCleanup: true,
		ContextLines:          DefaultContextLines,
	}
}
