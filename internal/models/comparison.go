package models

import "time"

// ComparisonMode names the engine whose score a Comparison carries.
type ComparisonMode string

const (
	ModeJSON  ComparisonMode = "json"
	ModeWords ComparisonMode = "words"
	ModeLines ComparisonMode = "lines"
)

// Comparison is the uniform result of comparing one candidate with the
// reference. DiffScore and Similarity come from the engine named by Mode.
type Comparison struct {
	Mode       ComparisonMode        `json:"mode"`
	DiffScore  float64               `json:"diff_score"`
	Similarity float64               `json:"similarity"`
	DiffHTML   string                `json:"diff_html"`
	Words      *WordDiffResult       `json:"words,omitempty"`
	Lines      *LineDiffResult       `json:"lines,omitempty"`
	JSON       *JSONComparisonResult `json:"json,omitempty"`
}

// Candidate is one generator output to be ranked against the reference.
type Candidate struct {
	Name   string `json:"name" yaml:"name"`
	Output string `json:"output" yaml:"output"`
}

// RankedResult is a candidate's position in a ranking. Failed comparisons
// (timeouts, panics) keep their entry with Error set and no Comparison.
type RankedResult struct {
	Rank            int           `json:"rank"`
	Candidate       string        `json:"candidate"`
	Comparison      *Comparison   `json:"comparison,omitempty"`
	SemanticOverlap float64       `json:"semantic_overlap"`
	Duration        time.Duration `json:"duration_ns"`
	Error           string        `json:"error,omitempty"`
}

// Failed reports whether the comparison did not complete.
func (r RankedResult) Failed() bool {
	return r.Error != "" || r.Comparison == nil
}
