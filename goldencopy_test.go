package goldencopy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdenticalText(t *testing.T) {
	res := DiffWords("Hello world", "Hello world")

	assert.Equal(t, 1.0, res.Similarity)
	assert.Equal(t, 0.0, res.DiffScore)
	assert.Zero(t, res.Changes.Added+res.Changes.Removed+res.Changes.Modified)
}

func TestCompletelyDifferentText(t *testing.T) {
	res := DiffWords("Hello world", "Goodbye universe")

	assert.Equal(t, 0.0, res.Similarity)
	assert.Greater(t, res.Changes.Added, 0)
	assert.Greater(t, res.Changes.Removed, 0)
}

func TestJSONKeyOrder(t *testing.T) {
	res := DiffJSON(`{"name":"John","age":30}`, `{"age":30,"name":"John"}`)

	assert.True(t, res.IsValidJSON.Both())
	assert.Equal(t, 1.0, float64(res.Similarity))
}

func TestJSONPartialMatch(t *testing.T) {
	res := DiffJSON(`{"a":1,"b":2}`, `{"a":1,"b":3}`)

	assert.Equal(t, 0.5, float64(res.Similarity))
}

func TestJSONArraysByID(t *testing.T) {
	res := DiffJSON(`[{"id":2,"v":"b"},{"id":1,"v":"a"}]`, `[{"id":1,"v":"a"},{"id":2,"v":"b"}]`)

	assert.Equal(t, 1.0, float64(res.Similarity))
}

func TestJSONInMarkdownFence(t *testing.T) {
	fenced := "```json\n{\"a\":1}\n```"

	assert.True(t, IsValidJSON(fenced))
	assert.Equal(t, 1.0, float64(DiffJSON(fenced, `{"a":1}`).Similarity))
}

func TestCanonicalize(t *testing.T) {
	res := Canonicalize(`{"b":1,"a":{"d":2,"c":3}}`)

	require.True(t, res.OK())
	assert.Equal(t, "{\n  \"a\": {\n    \"c\": 3,\n    \"d\": 2\n  },\n  \"b\": 1\n}", res.NormalizedText)
	assert.Equal(t, res.NormalizedText, Canonicalize(res.NormalizedText).NormalizedText)

	bad := Canonicalize("{nope")
	assert.False(t, bad.OK())
	assert.Equal(t, "{nope", bad.NormalizedText)
	assert.Nil(t, bad.Tree)
}

func TestLinesAndOverlap(t *testing.T) {
	assert.Equal(t, 1.0, DiffLines("a\n b ", "a\nb").Similarity)
	assert.Equal(t, 0.5, SemanticOverlap("the cat sat", "the cat ran"))
}

func TestCompareAndRank(t *testing.T) {
	assert.Equal(t, "json", string(Compare(`{"a":1}`, `{"a":1}`).Mode))

	results, err := Rank(context.Background(), `{"a":1,"b":2}`, []Candidate{
		{Name: "half", Output: `{"a":1,"b":3}`},
		{Name: "exact", Output: "```json\n{\"b\":2,\"a\":1}\n```"},
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "exact", results[0].Candidate)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, "half", results[1].Candidate)
}
