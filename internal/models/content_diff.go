package models

// DiffOperation defines the type of change.
type DiffOperation int

const (
	// DiffEqual indicates an unchanged token.
	DiffEqual DiffOperation = 0
	// DiffInsert indicates a token present only in the candidate.
	DiffInsert DiffOperation = 1
	// DiffDelete indicates a token present only in the reference.
	DiffDelete DiffOperation = -1
	// DiffReplace indicates a reference token swapped for a candidate token.
	DiffReplace DiffOperation = 2
)

// String returns string representation of DiffOperation
func (op DiffOperation) String() string {
	switch op {
	case DiffEqual:
		return "equal"
	case DiffInsert:
		return "insert"
	case DiffDelete:
		return "delete"
	case DiffReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// MarshalText encodes the operation by name.
func (op DiffOperation) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// DiffPart is one aligned unit produced by backtracking the alignment table,
// in reference order. For DiffReplace, OldText and NewText hold both sides
// and Cost is the cost charged during alignment (0.5 or 1.0).
type DiffPart struct {
	Operation DiffOperation `json:"operation"`
	Text      string        `json:"text"`
	OldText   string        `json:"old_text,omitempty"`
	NewText   string        `json:"new_text,omitempty"`
	Cost      float64       `json:"cost"`
}

// ChangeSummary tallies the non-equal parts of a text comparison.
type ChangeSummary struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
}

// TokenCounts holds the number of tokens on each side of a comparison.
type TokenCounts struct {
	Reference int `json:"reference"`
	Candidate int `json:"candidate"`
}

// ComparisonResult is the shape shared by word and line comparisons.
// Similarity is always 1 - DiffScore.
type ComparisonResult struct {
	DiffScore  float64       `json:"diff_score"`
	Similarity float64       `json:"similarity"`
	DiffHTML   string        `json:"diff_html"`
	Changes    ChangeSummary `json:"changes"`
	Distance   float64       `json:"distance"`
	TotalOps   int           `json:"total_ops"`
	Parts      []DiffPart    `json:"-"`
}

// WordDiffResult holds the result of a word-level comparison.
type WordDiffResult struct {
	ComparisonResult
	WordCount TokenCounts `json:"word_count"`
}

// LineDiffResult holds the result of a line-level comparison. Patch is a
// diff-match-patch style patch from reference to candidate.
type LineDiffResult struct {
	ComparisonResult
	LineCount TokenCounts `json:"line_count"`
	Patch     string      `json:"patch,omitempty"`
}
