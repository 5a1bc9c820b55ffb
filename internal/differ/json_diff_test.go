package differ

import (
	"encoding/json"
	"testing"

	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffJSON_KeyOrderIgnored(t *testing.T) {
	res := NewDefaultContentDiffer().DiffJSON(`{"name":"John","age":30}`, `{"age":30,"name":"John"}`)

	assert.Equal(t, models.JSONValidity{Reference: true, Candidate: true}, res.IsValidJSON)
	assert.Equal(t, models.Score(1), res.Similarity)
	assert.Equal(t, models.Score(0), res.DiffScore)
	assert.Equal(t, models.JSONChanges{}, res.Changes)
	assert.Equal(t, res.NormalizedReference, res.NormalizedCandidate)
	assert.Empty(t, res.UnifiedDiff)
	assert.JSONEq(t, `[]`, string(res.Patch))
}

func TestDiffJSON_OneValueChanged(t *testing.T) {
	res := NewDefaultContentDiffer().DiffJSON(`{"a":1,"b":2}`, `{"a":1,"b":3}`)

	assert.Equal(t, models.Score(0.5), res.Similarity)
	assert.Equal(t, models.Score(0.5), res.DiffScore)
	assert.Equal(t, models.JSONChanges{StructuralChanges: 1, ValueChanges: 1}, res.Changes)
	assert.Contains(t, res.DiffHTML, `<del class="diff-removed">2</del> <ins class="diff-added">3</ins>`)
	assert.Contains(t, res.UnifiedDiff, "-  \"b\": 2")
	assert.Contains(t, res.UnifiedDiff, "+  \"b\": 3")
	assert.JSONEq(t, `[{"op":"replace","path":"/b","value":3}]`, string(res.Patch))
}

func TestDiffJSON_ArraysSortedByID(t *testing.T) {
	res := NewDefaultContentDiffer().DiffJSON(
		`[{"id":2,"v":"b"},{"id":1,"v":"a"}]`,
		`[{"id":1,"v":"a"},{"id":2,"v":"b"}]`,
	)

	assert.Equal(t, models.Score(1), res.Similarity)
	assert.Equal(t, models.JSONChanges{}, res.Changes)
}

func TestDiffJSON_MarkdownFence(t *testing.T) {
	res := NewDefaultContentDiffer().DiffJSON("```json\n{\"a\":1}\n```", `{"a":1}`)

	assert.True(t, res.IsValidJSON.Both())
	assert.Equal(t, models.Score(1), res.Similarity)
}

func TestDiffJSON_AddedKey(t *testing.T) {
	res := NewDefaultContentDiffer().DiffJSON(`{"a":1}`, `{"a":1,"b":2}`)

	assert.Equal(t, models.Score(0.5), res.Similarity)
	assert.Equal(t, 1, res.Changes.Additions)
	assert.Equal(t, 0, res.Changes.Removals)
	assert.Contains(t, res.DiffHTML, `class="diff-line diff-added"`)
	assert.JSONEq(t, `[{"op":"add","path":"/b","value":2}]`, string(res.Patch))
}

func TestDiffJSON_EmptyContainers(t *testing.T) {
	cd := NewDefaultContentDiffer()

	for _, doc := range []string{`{}`, `[]`} {
		res := cd.DiffJSON(doc, doc)
		assert.Equal(t, models.Score(1), res.Similarity, doc)
		assert.Equal(t, models.Score(0), res.DiffScore, doc)
	}
}

func TestDiffJSON_InvalidSides(t *testing.T) {
	cd := NewDefaultContentDiffer()

	tests := []struct {
		name      string
		ref, cand string
		validity  models.JSONValidity
	}{
		{"reference invalid", "not json", `{"a":1}`, models.JSONValidity{Reference: false, Candidate: true}},
		{"candidate invalid", `{"a":1}`, "not json", models.JSONValidity{Reference: true, Candidate: false}},
		{"both invalid", "nope", "{broken", models.JSONValidity{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := cd.DiffJSON(tt.ref, tt.cand)

			assert.Equal(t, tt.validity, res.IsValidJSON)
			assert.False(t, res.Similarity.Defined())
			assert.False(t, res.DiffScore.Defined())
			assert.False(t, res.Comparable())
			assert.Equal(t, !tt.validity.Reference, res.ParseErrors.Reference != "")
			assert.Equal(t, !tt.validity.Candidate, res.ParseErrors.Candidate != "")
			assert.Empty(t, res.DiffHTML)
			assert.Empty(t, res.Patch)
		})
	}
}

func TestDiffJSON_InvalidKeepsOriginalText(t *testing.T) {
	res := NewDefaultContentDiffer().DiffJSON("not json", `{"b":1,"a":2}`)

	assert.Equal(t, "not json", res.NormalizedReference)
	assert.Equal(t, "{\n  \"a\": 2,\n  \"b\": 1\n}", res.NormalizedCandidate)
}

func TestDiffJSON_UndefinedScoresMarshalAsNull(t *testing.T) {
	res := NewDefaultContentDiffer().DiffJSON("x", "y")

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["similarity"])
	assert.Nil(t, decoded["diff_score"])
}

func TestDiffJSON_ScoresComplement(t *testing.T) {
	docs := []string{`{}`, `[]`, `{"a":1}`, `{"a":[1,2,3]}`, `{"a":{"b":null}}`, `[1,"x",true]`, `"text"`, `3`}
	cd := NewDefaultContentDiffer()

	for _, a := range docs {
		for _, b := range docs {
			res := cd.DiffJSON(a, b)
			require.True(t, res.Comparable(), "%s vs %s", a, b)
			assert.Equal(t, 1.0, float64(res.Similarity+res.DiffScore), "%s vs %s", a, b)
			if a == b {
				assert.Equal(t, models.Score(1), res.Similarity)
			}
		}
	}
}

func TestDiffJSON_NumberToleranceAppliesToEveryOutput(t *testing.T) {
	cfg := DefaultDiffConfig()
	cfg.NumberTolerance = 0.01
	cd, err := NewContentDiffer(zerolog.Nop(), cfg)
	require.NoError(t, err)

	within := cd.DiffJSON(`{"a":1}`, `{"a":1.001}`)
	assert.Equal(t, models.Score(1), within.Similarity)
	assert.Equal(t, models.JSONChanges{}, within.Changes)
	assert.NotContains(t, within.DiffHTML, "diff-changed")

	mixed := cd.DiffJSON(`{"a":1,"b":2}`, `{"a":1.001,"b":3}`)
	assert.Equal(t, models.Score(0.5), mixed.Similarity)
	assert.Equal(t, models.JSONChanges{StructuralChanges: 1, ValueChanges: 1}, mixed.Changes)
	assert.Contains(t, mixed.DiffHTML, `diff-equal" style="padding-left:2em">  &#34;a&#34;: 1</div>`)
	assert.Contains(t, mixed.DiffHTML, `<del class="diff-removed">2</del> <ins class="diff-added">3</ins>`)

	exact := NewDefaultContentDiffer().DiffJSON(`{"a":1,"b":2}`, `{"a":1.001,"b":3}`)
	assert.Equal(t, models.Score(0), exact.Similarity)
	assert.Equal(t, models.JSONChanges{StructuralChanges: 2, ValueChanges: 2}, exact.Changes)
}
