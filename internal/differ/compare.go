package differ

import (
	"github.com/aleister1102/goldencopy/internal/models"
)

// Compare runs every engine and picks the score to rank by: the structural
// JSON score when both sides are valid JSON, the word score otherwise.
func (cd *ContentDiffer) Compare(reference, candidate string) *models.Comparison {
	words := cd.DiffWords(reference, candidate)
	lines := cd.DiffLines(reference, candidate)
	jsonResult := cd.DiffJSON(reference, candidate)

	comparison := &models.Comparison{
		Words: words,
		Lines: lines,
		JSON:  jsonResult,
	}

	if jsonResult.Comparable() {
		comparison.Mode = models.ModeJSON
		comparison.DiffScore = float64(jsonResult.DiffScore)
		comparison.Similarity = float64(jsonResult.Similarity)
		comparison.DiffHTML = jsonResult.DiffHTML
	} else {
		comparison.Mode = models.ModeWords
		comparison.DiffScore = words.DiffScore
		comparison.Similarity = words.Similarity
		comparison.DiffHTML = words.DiffHTML
	}

	return comparison
}
