package differ

import (
	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/aleister1102/goldencopy/internal/normalizer"
)

// DiffWords compares reference and candidate word by word.
func (cd *ContentDiffer) DiffWords(reference, candidate string) *models.WordDiffResult {
	refTokens := normalizer.TokenizeWords(reference)
	candTokens := normalizer.TokenizeWords(candidate)

	parts := cd.wordProcessor.ProcessDiff(refTokens, candTokens)
	stats := cd.statsCalculator.CalculateStats(parts)

	result := NewComparisonResultBuilder().
		WithParts(parts, stats).
		WithHTML(cd.diffUtils.GenerateWordDiffHTML(parts)).
		BuildWordResult(models.TokenCounts{Reference: len(refTokens), Candidate: len(candTokens)})

	cd.logger.Debug().
		Int("reference_words", len(refTokens)).
		Int("candidate_words", len(candTokens)).
		Float64("diff_score", result.DiffScore).
		Msg("Word diff computed")

	return result
}
