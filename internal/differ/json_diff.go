package differ

import (
	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/aleister1102/goldencopy/internal/normalizer"
)

// DiffJSON compares reference and candidate as JSON documents. Both sides
// are canonicalized first, so key order and key-sorted array order do not
// matter. When either side fails to parse the scores are undefined, the
// parse errors are reported and the caller falls back to DiffWords.
func (cd *ContentDiffer) DiffJSON(reference, candidate string) *models.JSONComparisonResult {
	ref := normalizer.Canonicalize(reference)
	cand := normalizer.Canonicalize(candidate)

	result := &models.JSONComparisonResult{
		DiffScore:           models.NaNScore(),
		Similarity:          models.NaNScore(),
		NormalizedReference: ref.NormalizedText,
		NormalizedCandidate: cand.NormalizedText,
		IsValidJSON: models.JSONValidity{
			Reference: ref.OK(),
			Candidate: cand.OK(),
		},
		ParseErrors: models.JSONParseErrors{
			Reference: ref.ErrorMessage(),
			Candidate: cand.ErrorMessage(),
		},
	}

	if !result.IsValidJSON.Both() {
		cd.logger.Debug().
			Bool("reference_valid", result.IsValidJSON.Reference).
			Bool("candidate_valid", result.IsValidJSON.Candidate).
			Msg("JSON comparison not applicable")
		return result
	}

	reconciler := cd.config.reconciler()
	similarity := reconciler.ObjectSimilarity(ref.Tree, cand.Tree)
	result.Similarity = models.Score(similarity)
	result.DiffScore = models.Score(1 - similarity)
	result.Changes = reconciler.CountChanges(ref.Tree, cand.Tree)
	result.DiffHTML = cd.jsonRenderer.Render(ref.Tree, cand.Tree)

	unified, err := cd.patchProcessor.UnifiedDiff(ref.NormalizedText, cand.NormalizedText)
	if err != nil {
		cd.logger.Warn().Err(err).Msg("Failed to build unified diff")
	} else {
		result.UnifiedDiff = unified
	}

	patch, err := cd.patchProcessor.JSONPatch(ref.Tree, cand.Tree)
	if err != nil {
		cd.logger.Warn().Err(err).Msg("Failed to build JSON patch")
	} else {
		result.Patch = patch
	}

	cd.logger.Debug().
		Float64("similarity", similarity).
		Int("additions", result.Changes.Additions).
		Int("removals", result.Changes.Removals).
		Msg("JSON diff computed")

	return result
}
