package models

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/aleister1102/goldencopy/internal/jsonvalue"
)

// Score is a numeric comparison field that may be undefined. An undefined
// score is NaN in memory and null on the wire.
type Score float64

// NaNScore returns the undefined score.
func NaNScore() Score {
	return Score(math.NaN())
}

// Defined reports whether the score holds a number.
func (s Score) Defined() bool {
	f := float64(s)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MarshalJSON encodes undefined scores as null.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Defined() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(s), 'g', -1, 64), nil
}

// UnmarshalJSON decodes null as an undefined score.
func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NaNScore()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = Score(f)
	return nil
}

// JSONValidity reports which inputs parsed as JSON.
type JSONValidity struct {
	Reference bool `json:"reference"`
	Candidate bool `json:"candidate"`
}

// Both reports whether both inputs are valid JSON.
func (v JSONValidity) Both() bool {
	return v.Reference && v.Candidate
}

// JSONParseErrors holds the parser messages for inputs that failed to parse.
type JSONParseErrors struct {
	Reference string `json:"reference,omitempty"`
	Candidate string `json:"candidate,omitempty"`
}

// JSONChanges tallies differences between two canonical JSON trees.
// StructuralChanges counts every non-equal leaf pairing; ValueChanges is
// the subset where both sides hold the same primitive kind.
type JSONChanges struct {
	StructuralChanges int `json:"structural_changes"`
	ValueChanges      int `json:"value_changes"`
	Additions         int `json:"additions"`
	Removals          int `json:"removals"`
}

// JSONComparisonResult holds the result of a structural JSON comparison.
// When either side is invalid, DiffScore and Similarity are undefined and
// callers rank by the word comparison instead.
type JSONComparisonResult struct {
	DiffScore           Score           `json:"diff_score"`
	Similarity          Score           `json:"similarity"`
	DiffHTML            string          `json:"diff_html"`
	NormalizedReference string          `json:"normalized_reference"`
	NormalizedCandidate string          `json:"normalized_candidate"`
	IsValidJSON         JSONValidity    `json:"is_valid_json"`
	ParseErrors         JSONParseErrors `json:"parse_errors"`
	Changes             JSONChanges     `json:"changes"`
	UnifiedDiff         string          `json:"unified_diff,omitempty"`
	Patch               json.RawMessage `json:"patch,omitempty"`
}

// Comparable reports whether the result carries a structural score.
func (r *JSONComparisonResult) Comparable() bool {
	return r.IsValidJSON.Both() && r.Similarity.Defined()
}

// ArrayDiffType tags one step of an array reconciliation.
type ArrayDiffType int

const (
	ArrayEqual ArrayDiffType = iota
	ArrayAdded
	ArrayRemoved
	// ArrayMoved is reserved; reconciliation never produces it.
	ArrayMoved
)

// String returns string representation of ArrayDiffType
func (t ArrayDiffType) String() string {
	switch t {
	case ArrayEqual:
		return "equal"
	case ArrayAdded:
		return "added"
	case ArrayRemoved:
		return "removed"
	case ArrayMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// ArrayDiffOperation is one element-level step of an array reconciliation.
// OldIndex and NewIndex are -1 when the element has no position on that side.
type ArrayDiffOperation struct {
	Type     ArrayDiffType
	Value    jsonvalue.Value
	OldIndex int
	NewIndex int
}
