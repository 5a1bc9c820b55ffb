package differ

import (
	"github.com/aleister1102/goldencopy/internal/models"
)

// ComparisonResultBuilder builds word and line comparison results
type ComparisonResultBuilder struct {
	result models.ComparisonResult
}

// NewComparisonResultBuilder creates a new result builder
func NewComparisonResultBuilder() *ComparisonResultBuilder {
	return &ComparisonResultBuilder{}
}

// WithParts sets the aligned parts and the statistics computed from them
func (rb *ComparisonResultBuilder) WithParts(parts []models.DiffPart, stats DiffStatistics) *ComparisonResultBuilder {
	rb.result.Parts = parts
	rb.result.Changes = stats.Changes
	rb.result.Distance = stats.Distance
	rb.result.TotalOps = stats.TotalOps
	rb.result.DiffScore = stats.DiffScore
	rb.result.Similarity = 1 - stats.DiffScore
	return rb
}

// WithHTML sets the rendered markup
func (rb *ComparisonResultBuilder) WithHTML(html string) *ComparisonResultBuilder {
	rb.result.DiffHTML = html
	return rb
}

// BuildWordResult creates the final WordDiffResult
func (rb *ComparisonResultBuilder) BuildWordResult(counts models.TokenCounts) *models.WordDiffResult {
	return &models.WordDiffResult{
		ComparisonResult: rb.result,
		WordCount:        counts,
	}
}

// BuildLineResult creates the final LineDiffResult
func (rb *ComparisonResultBuilder) BuildLineResult(counts models.TokenCounts, patch string) *models.LineDiffResult {
	return &models.LineDiffResult{
		ComparisonResult: rb.result,
		LineCount:        counts,
		Patch:            patch,
	}
}
