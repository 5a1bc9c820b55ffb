// Package goldencopy compares generator outputs against a reference
// ("golden copy") output and ranks generators by similarity.
//
// Text is compared word by word and line by line with a fuzzy edit-distance
// alignment. JSON outputs, optionally wrapped in markdown fences, are
// canonicalized and compared structurally so key order and id-sorted array
// order do not affect the score.
package goldencopy

import (
	"context"

	"github.com/aleister1102/goldencopy/internal/config"
	"github.com/aleister1102/goldencopy/internal/differ"
	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/aleister1102/goldencopy/internal/normalizer"
	"github.com/aleister1102/goldencopy/internal/ranking"
	"github.com/rs/zerolog"
)

type (
	WordDiffResult       = models.WordDiffResult
	LineDiffResult       = models.LineDiffResult
	JSONComparisonResult = models.JSONComparisonResult
	Comparison           = models.Comparison
	Candidate            = models.Candidate
	RankedResult         = models.RankedResult
	CanonicalResult      = normalizer.CanonicalResult
)

var defaultDiffer = differ.NewDefaultContentDiffer()

// DiffWords compares whitespace-separated tokens.
func DiffWords(reference, candidate string) *WordDiffResult {
	return defaultDiffer.DiffWords(reference, candidate)
}

// DiffLines compares newline-separated lines, ignoring surrounding whitespace.
func DiffLines(reference, candidate string) *LineDiffResult {
	return defaultDiffer.DiffLines(reference, candidate)
}

// DiffJSON compares two JSON documents structurally. Scores are NaN when
// either side is not valid JSON.
func DiffJSON(reference, candidate string) *JSONComparisonResult {
	return defaultDiffer.DiffJSON(reference, candidate)
}

// Canonicalize returns the sorted, pretty-printed form of a JSON document.
func Canonicalize(text string) CanonicalResult {
	return normalizer.Canonicalize(text)
}

// IsValidJSON reports whether text is JSON, directly or inside a markdown fence.
func IsValidJSON(text string) bool {
	return normalizer.IsValidJSON(text)
}

// SemanticOverlap returns the Jaccard overlap of the two texts' word sets.
func SemanticOverlap(a, b string) float64 {
	return differ.SemanticOverlap(a, b)
}

// Compare scores candidate structurally when both sides are JSON and by
// words otherwise.
func Compare(reference, candidate string) *Comparison {
	return defaultDiffer.Compare(reference, candidate)
}

// Rank compares every candidate with reference using the default limits
// and returns them best first. Failed comparisons are listed last.
func Rank(ctx context.Context, reference string, candidates []Candidate) ([]RankedResult, error) {
	ranker := ranking.NewRanker(defaultDiffer, config.NewDefaultRankerConfig(), zerolog.Nop())
	return ranker.Rank(ctx, reference, candidates)
}
