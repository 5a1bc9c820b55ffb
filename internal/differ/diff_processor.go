package differ

import (
	"github.com/aleister1102/goldencopy/internal/levenshtein"
	"github.com/aleister1102/goldencopy/internal/models"
)

// TokenMatcher decides whether two tokens are equal for alignment.
type TokenMatcher func(a, b string) bool

func exactMatch(a, b string) bool { return a == b }

// DiffProcessor aligns token sequences with an edit-distance table whose
// substitution cost is discounted for similar tokens.
type DiffProcessor struct {
	fuzzyThreshold float64
	fuzzyCost      float64
	matches        TokenMatcher
}

// NewDiffProcessor creates a new diff processor
func NewDiffProcessor(fuzzyThreshold, fuzzyCost float64, matches TokenMatcher) *DiffProcessor {
	if matches == nil {
		matches = exactMatch
	}
	return &DiffProcessor{
		fuzzyThreshold: fuzzyThreshold,
		fuzzyCost:      fuzzyCost,
		matches:        matches,
	}
}

// substitutionCost returns the cost of replacing a with b
func (dp *DiffProcessor) substitutionCost(a, b string) float64 {
	if levenshtein.Similarity(a, b) > dp.fuzzyThreshold {
		return dp.fuzzyCost
	}
	return hardReplaceCost
}

// ProcessDiff aligns reference against candidate and returns the parts in
// reference order. Each cell records the operation chosen in the forward
// pass; among non-matching operations of equal cost replace wins, then
// delete, then insert. The backtrack follows the recorded operations.
func (dp *DiffProcessor) ProcessDiff(reference, candidate []string) []models.DiffPart {
	n, m := len(reference), len(candidate)

	cost := make([][]float64, n+1)
	ops := make([][]models.DiffOperation, n+1)
	subs := make([][]float64, n+1)
	for i := range cost {
		cost[i] = make([]float64, m+1)
		ops[i] = make([]models.DiffOperation, m+1)
		subs[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		cost[i][0] = float64(i)
		ops[i][0] = models.DiffDelete
	}
	for j := 1; j <= m; j++ {
		cost[0][j] = float64(j)
		ops[0][j] = models.DiffInsert
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if dp.matches(reference[i-1], candidate[j-1]) {
				cost[i][j] = cost[i-1][j-1]
				ops[i][j] = models.DiffEqual
				continue
			}

			sub := dp.substitutionCost(reference[i-1], candidate[j-1])
			subs[i][j] = sub

			best, op := cost[i-1][j-1]+sub, models.DiffReplace
			if del := cost[i-1][j] + hardReplaceCost; del < best {
				best, op = del, models.DiffDelete
			}
			if ins := cost[i][j-1] + hardReplaceCost; ins < best {
				best, op = ins, models.DiffInsert
			}
			cost[i][j] = best
			ops[i][j] = op
		}
	}

	parts := make([]models.DiffPart, 0, max(n, m))
	i, j := n, m
	for i > 0 || j > 0 {
		switch ops[i][j] {
		case models.DiffEqual:
			parts = append(parts, models.DiffPart{Operation: models.DiffEqual, Text: reference[i-1]})
			i--
			j--
		case models.DiffReplace:
			parts = append(parts, models.DiffPart{
				Operation: models.DiffReplace,
				Text:      candidate[j-1],
				OldText:   reference[i-1],
				NewText:   candidate[j-1],
				Cost:      subs[i][j],
			})
			i--
			j--
		case models.DiffDelete:
			parts = append(parts, models.DiffPart{Operation: models.DiffDelete, Text: reference[i-1], Cost: hardReplaceCost})
			i--
		case models.DiffInsert:
			parts = append(parts, models.DiffPart{Operation: models.DiffInsert, Text: candidate[j-1], Cost: hardReplaceCost})
			j--
		}
	}

	for l, h := 0, len(parts)-1; l < h; l, h = l+1, h-1 {
		parts[l], parts[h] = parts[h], parts[l]
	}
	return parts
}

// DiffStatistics holds diff calculation results
type DiffStatistics struct {
	Changes   models.ChangeSummary
	Distance  float64
	TotalOps  int
	DiffScore float64
}

// DiffStatsCalculator calculates statistics from aligned parts
type DiffStatsCalculator struct{}

// NewDiffStatsCalculator creates a new diff stats calculator
func NewDiffStatsCalculator() *DiffStatsCalculator {
	return &DiffStatsCalculator{}
}

// CalculateStats sums the cost retained on each non-equal part and tallies
// operations. A replacement always counts as a modification; a hard
// replacement also counts as one removal and one addition.
func (dsc *DiffStatsCalculator) CalculateStats(parts []models.DiffPart) DiffStatistics {
	stats := DiffStatistics{TotalOps: len(parts)}

	for _, part := range parts {
		switch part.Operation {
		case models.DiffInsert:
			stats.Changes.Added++
		case models.DiffDelete:
			stats.Changes.Removed++
		case models.DiffReplace:
			stats.Changes.Modified++
			if part.Cost >= hardReplaceCost {
				stats.Changes.Added++
				stats.Changes.Removed++
			}
		default:
			continue
		}
		stats.Distance += part.Cost
	}

	if stats.TotalOps > 0 {
		stats.DiffScore = stats.Distance / float64(stats.TotalOps)
	}
	return stats
}
