package normalizer

import (
	"testing"

	"github.com/aleister1102/goldencopy/internal/jsonvalue"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeWords(t *testing.T) {
	assert.Empty(t, TokenizeWords(""))
	assert.Empty(t, TokenizeWords("  \t\n "))
	assert.Equal(t, []string{"Hello", "world"}, TokenizeWords("  Hello \t\n world  "))
}

func TestTokenizeLines(t *testing.T) {
	assert.Empty(t, TokenizeLines(""))
	assert.Equal(t, []string{"a ", " b", ""}, TokenizeLines("a \n b\n"))
}

func TestExtractFromMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1,2]\n```", "[1,2]"},
		{"fence with surrounding space", "  ```json\n{}\n```  \n", "{}"},
		{"inline code", "`{\"a\":1}`", `{"a":1}`},
		{"no fence", " {\"a\":1} ", " {\"a\":1} "},
		{"plain text", "hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFromMarkdown(tt.input))
		})
	}
}

func TestIsValidJSON(t *testing.T) {
	assert.True(t, IsValidJSON(`{"a":1}`))
	assert.True(t, IsValidJSON("```json\n{\"a\":1}\n```"))
	assert.True(t, IsValidJSON(`[]`))
	assert.False(t, IsValidJSON(`{"a":`))
	assert.False(t, IsValidJSON("not json"))
	assert.False(t, IsValidJSON(""))
}

func TestCanonicalize_SortsKeys(t *testing.T) {
	res := Canonicalize(`{"b":2,"a":{"d":1,"c":[3,1,2]}}`)
	require.True(t, res.OK())

	assert.Equal(t, "{\n  \"a\": {\n    \"c\": [\n      3,\n      1,\n      2\n    ],\n    \"d\": 1\n  },\n  \"b\": 2\n}", res.NormalizedText)
	assert.Empty(t, res.ErrorMessage())
}

func TestCanonicalize_Failure(t *testing.T) {
	input := `{"a": 1,}`
	res := Canonicalize(input)

	assert.False(t, res.OK())
	assert.Equal(t, input, res.NormalizedText)
	assert.Nil(t, res.Tree)
	assert.NotEmpty(t, res.ErrorMessage())
}

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []string{
		`{"z":[{"name":"b"},{"name":"a"}],"y":null}`,
		`[{"id":3},{"id":1},{"id":2}]`,
		`[{"step":"second"},{"step":"first"}]`,
		`"plain"`,
		`{}`,
		"```json\n{\"k\":[{\"key\":\"x\"},{\"key\":\"a\"}]}\n```",
	}

	for _, input := range inputs {
		first := Canonicalize(input)
		require.True(t, first.OK(), input)
		second := Canonicalize(first.NormalizedText)
		require.True(t, second.OK(), input)
		assert.Equal(t, first.NormalizedText, second.NormalizedText, input)
	}
}

func TestCanonicalize_KeyPermutation(t *testing.T) {
	a := Canonicalize(`{"a":1,"b":{"x":true,"y":null},"c":"s"}`)
	b := Canonicalize(`{"c":"s","b":{"y":null,"x":true},"a":1}`)
	assert.Equal(t, a.NormalizedText, b.NormalizedText)
}

func TestCanonicalize_SortsArraysByID(t *testing.T) {
	perms := []string{
		`[{"id":"a","v":1},{"id":"b","v":2},{"id":"c","v":3}]`,
		`[{"id":"c","v":3},{"id":"a","v":1},{"id":"b","v":2}]`,
		`[{"id":"b","v":2},{"id":"c","v":3},{"id":"a","v":1}]`,
	}

	want := Canonicalize(perms[0]).NormalizedText
	for _, p := range perms[1:] {
		assert.Equal(t, want, Canonicalize(p).NormalizedText)
	}
}

func TestCanonicalize_NumericIDsSortAsStrings(t *testing.T) {
	res := Canonicalize(`[{"id":2},{"id":10},{"id":1}]`)
	require.True(t, res.OK())

	want := jsonvalue.Array{
		jsonvalue.Object{"id": jsonvalue.Number(1)},
		jsonvalue.Object{"id": jsonvalue.Number(10)},
		jsonvalue.Object{"id": jsonvalue.Number(2)},
	}
	if diff := cmp.Diff(want, res.Tree); diff != "" {
		t.Errorf("canonical tree mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalize_FallsBackToNameThenKey(t *testing.T) {
	byName := Canonicalize(`[{"name":"b"},{"name":"a"}]`)
	assert.Equal(t, jsonvalue.Array{
		jsonvalue.Object{"name": jsonvalue.String("a")},
		jsonvalue.Object{"name": jsonvalue.String("b")},
	}, byName.Tree)

	byKey := Canonicalize(`[{"key":"z"},{"key":"m"}]`)
	assert.Equal(t, jsonvalue.Array{
		jsonvalue.Object{"key": jsonvalue.String("m")},
		jsonvalue.Object{"key": jsonvalue.String("z")},
	}, byKey.Tree)
}

func TestCanonicalize_PreservesOrderWithoutSortKey(t *testing.T) {
	res := Canonicalize(`[{"step":"open"},{"step":"close"}]`)
	assert.Equal(t, jsonvalue.Array{
		jsonvalue.Object{"step": jsonvalue.String("open")},
		jsonvalue.Object{"step": jsonvalue.String("close")},
	}, res.Tree)

	scalars := Canonicalize(`[3,1,2]`)
	assert.Equal(t, jsonvalue.Array{jsonvalue.Number(3), jsonvalue.Number(1), jsonvalue.Number(2)}, scalars.Tree)

	nullFirst := Canonicalize(`[null,{"id":"a"}]`)
	assert.Equal(t, jsonvalue.Array{jsonvalue.Null{}, jsonvalue.Object{"id": jsonvalue.String("a")}}, nullFirst.Tree)
}
