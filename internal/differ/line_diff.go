package differ

import (
	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/aleister1102/goldencopy/internal/normalizer"
)

// DiffLines compares reference and candidate line by line. Lines that
// differ only in leading or trailing whitespace are equal.
func (cd *ContentDiffer) DiffLines(reference, candidate string) *models.LineDiffResult {
	refLines := normalizer.TokenizeLines(reference)
	candLines := normalizer.TokenizeLines(candidate)

	parts := cd.lineProcessor.ProcessDiff(refLines, candLines)
	stats := cd.statsCalculator.CalculateStats(parts)

	result := NewComparisonResultBuilder().
		WithParts(parts, stats).
		WithHTML(cd.diffUtils.GenerateLineDiffHTML(parts)).
		BuildLineResult(
			models.TokenCounts{Reference: len(refLines), Candidate: len(candLines)},
			cd.patchProcessor.LinePatch(reference, candidate),
		)

	cd.logger.Debug().
		Int("reference_lines", len(refLines)).
		Int("candidate_lines", len(candLines)).
		Float64("diff_score", result.DiffScore).
		Msg("Line diff computed")

	return result
}
