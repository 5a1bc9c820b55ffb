package ranking

import "github.com/aleister1102/goldencopy/internal/models"

// Summary condenses a ranking for display
type Summary struct {
	Total     int     `json:"total"`
	Succeeded int     `json:"succeeded"`
	Failed    int     `json:"failed"`
	Best      string  `json:"best,omitempty"`
	BestScore float64 `json:"best_score"`
}

// Summarize expects results ordered by SortResults.
func Summarize(results []models.RankedResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Failed() {
			s.Failed++
			continue
		}
		if s.Succeeded == 0 {
			s.Best = r.Candidate
			s.BestScore = r.Comparison.Similarity
		}
		s.Succeeded++
	}
	return s
}
