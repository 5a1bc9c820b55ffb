// Package normalizer tokenizes text and turns JSON output, possibly wrapped
// in markdown fences, into a canonical tree and text.
package normalizer

import (
	"sort"
	"strconv"

	"github.com/aleister1102/goldencopy/internal/jsonvalue"
)

// arraySortFields are checked in order to find the key an array of objects
// is sorted by.
var arraySortFields = []string{"id", "name", "key"}

// CanonicalResult is the outcome of Canonicalize. On failure NormalizedText
// is the original text, Tree is nil and Err holds the parser error.
type CanonicalResult struct {
	NormalizedText string
	Tree           jsonvalue.Value
	Err            error
}

// OK reports whether the text was parsed.
func (r CanonicalResult) OK() bool {
	return r.Err == nil
}

// ErrorMessage returns the parser message, or "" when parsing succeeded.
func (r CanonicalResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// ParseJSON parses text directly and, failing that, after stripping a
// markdown fence.
func ParseJSON(text string) (jsonvalue.Value, error) {
	v, err := jsonvalue.Parse(text)
	if err == nil {
		return v, nil
	}

	extracted := ExtractFromMarkdown(text)
	if extracted == text {
		return nil, err
	}
	return jsonvalue.Parse(extracted)
}

// IsValidJSON reports whether text parses as JSON, directly or after fence
// extraction.
func IsValidJSON(text string) bool {
	_, err := ParseJSON(text)
	return err == nil
}

// Canonicalize parses text and returns its canonical pretty-printed form and
// tree. It never panics on malformed input; failure is reported in Err.
func Canonicalize(text string) CanonicalResult {
	tree, err := ParseJSON(text)
	if err != nil {
		return CanonicalResult{NormalizedText: text, Err: err}
	}

	canonical := CanonicalizeValue(tree)
	return CanonicalResult{
		NormalizedText: jsonvalue.Indent(canonical),
		Tree:           canonical,
	}
}

// CanonicalizeValue returns a canonical copy of v. Object keys are ordered
// on output by the encoder; arrays whose first element is an object carrying
// an id, name or key field are stably sorted by that field's string form.
// Every other array keeps its order. The function is idempotent.
func CanonicalizeValue(v jsonvalue.Value) jsonvalue.Value {
	switch t := v.(type) {
	case nil:
		return jsonvalue.Null{}
	case jsonvalue.Object:
		out := make(jsonvalue.Object, len(t))
		for k, item := range t {
			out[k] = CanonicalizeValue(item)
		}
		return out
	case jsonvalue.Array:
		out := make(jsonvalue.Array, len(t))
		for i, item := range t {
			out[i] = CanonicalizeValue(item)
		}
		if hasSortField(out) {
			sortArrayByKey(out)
		}
		return out
	default:
		return v
	}
}

func hasSortField(arr jsonvalue.Array) bool {
	if len(arr) == 0 {
		return false
	}
	first, ok := arr[0].(jsonvalue.Object)
	if !ok {
		return false
	}
	_, found := sortKey(first)
	return found
}

func sortArrayByKey(arr jsonvalue.Array) {
	keys := make([]string, len(arr))
	for i, item := range arr {
		if obj, ok := item.(jsonvalue.Object); ok {
			keys[i], _ = sortKey(obj)
		}
	}

	idx := make([]int, len(arr))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]] < keys[idx[b]]
	})

	sorted := make(jsonvalue.Array, len(arr))
	for i, j := range idx {
		sorted[i] = arr[j]
	}
	copy(arr, sorted)
}

func sortKey(obj jsonvalue.Object) (string, bool) {
	for _, field := range arraySortFields {
		v, ok := obj[field]
		if !ok || jsonvalue.KindOf(v) == jsonvalue.KindNull {
			continue
		}
		return keyString(v), true
	}
	return "", false
}

func keyString(v jsonvalue.Value) string {
	switch t := v.(type) {
	case jsonvalue.String:
		return string(t)
	case jsonvalue.Number:
		return strconv.FormatFloat(float64(t), 'f', -1, 64)
	case jsonvalue.Bool:
		return strconv.FormatBool(bool(t))
	default:
		return jsonvalue.Compact(v)
	}
}
