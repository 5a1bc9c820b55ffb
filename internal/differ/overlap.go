package differ

import (
	"github.com/aleister1102/goldencopy/internal/normalizer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SemanticOverlap returns the Jaccard overlap of the lower-cased word sets
// of a and b. Two texts without words overlap fully.
func SemanticOverlap(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]struct{} {
	lower := cases.Lower(language.Und)
	words := normalizer.TokenizeWords(text)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[lower.String(w)] = struct{}{}
	}
	return set
}
