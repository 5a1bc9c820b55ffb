// Package differ compares a candidate output against a reference at word,
// line and JSON-structure level and scores their similarity.
package differ

import (
	"strings"

	"github.com/aleister1102/goldencopy/internal/common"
	"github.com/aleister1102/goldencopy/internal/reporter"
	"github.com/rs/zerolog"
)

// ContentDiffer runs the comparison engines. It holds no mutable state and
// is safe for concurrent use.
type ContentDiffer struct {
	config          DiffConfig
	logger          zerolog.Logger
	wordProcessor   *DiffProcessor
	lineProcessor   *DiffProcessor
	statsCalculator *DiffStatsCalculator
	patchProcessor  *PatchProcessor
	diffUtils       *reporter.DiffUtils
	jsonRenderer    *reporter.JSONRenderer
}

// ContentDifferBuilder provides a fluent interface for creating ContentDiffer
type ContentDifferBuilder struct {
	diffCfg DiffConfig
	logger  zerolog.Logger
}

// NewContentDifferBuilder creates a new builder
func NewContentDifferBuilder() *ContentDifferBuilder {
	return &ContentDifferBuilder{
		diffCfg: DefaultDiffConfig(),
		logger:  zerolog.Nop(),
	}
}

// WithDiffConfig sets the diff configuration
func (b *ContentDifferBuilder) WithDiffConfig(cfg DiffConfig) *ContentDifferBuilder {
	b.diffCfg = cfg
	return b
}

// WithLogger sets the diagnostic logger. Logging never influences results.
func (b *ContentDifferBuilder) WithLogger(logger zerolog.Logger) *ContentDifferBuilder {
	b.logger = logger
	return b
}

// Build creates a new ContentDiffer instance
func (b *ContentDifferBuilder) Build() (*ContentDiffer, error) {
	if err := NewConfigValidator().Validate(b.diffCfg); err != nil {
		return nil, common.WrapError(err, "invalid diff config")
	}

	cfg := b.diffCfg
	return &ContentDiffer{
		config:          cfg,
		logger:          b.logger.With().Str("component", "ContentDiffer").Logger(),
		wordProcessor:   NewDiffProcessor(cfg.WordFuzzyThreshold, cfg.FuzzyReplaceCost, nil),
		lineProcessor:   NewDiffProcessor(cfg.LineFuzzyThreshold, cfg.FuzzyReplaceCost, trimmedMatch),
		statsCalculator: NewDiffStatsCalculator(),
		patchProcessor:  NewPatchProcessor(cfg),
		diffUtils:       reporter.NewDiffUtils(),
		jsonRenderer:    reporter.NewJSONRenderer(cfg.reconciler()),
	}, nil
}

// NewContentDiffer creates a new instance of ContentDiffer
func NewContentDiffer(logger zerolog.Logger, cfg DiffConfig) (*ContentDiffer, error) {
	return NewContentDifferBuilder().
		WithDiffConfig(cfg).
		WithLogger(logger).
		Build()
}

// NewDefaultContentDiffer creates a ContentDiffer with the default
// configuration and no diagnostics.
func NewDefaultContentDiffer() *ContentDiffer {
	cd, err := NewContentDifferBuilder().Build()
	if err != nil {
		// The default configuration is always valid.
		panic(err)
	}
	return cd
}

func trimmedMatch(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
