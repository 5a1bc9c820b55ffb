package structural

import (
	"testing"

	"github.com/aleister1102/goldencopy/internal/jsonvalue"
	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Parse(text)
	require.NoError(t, err)
	return v
}

func TestDeepEqual(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		tolerance float64
		want      bool
	}{
		{"equal objects", `{"a":1,"b":[1,2]}`, `{"b":[1,2],"a":1}`, 0, true},
		{"array order matters", `[1,2]`, `[2,1]`, 0, false},
		{"array length differs", `[1]`, `[1,1]`, 0, false},
		{"missing key", `{"a":1}`, `{"a":1,"b":2}`, 0, false},
		{"null vs null", `null`, `null`, 0, true},
		{"null vs zero", `null`, `0`, 0, false},
		{"exact numbers", `1.0`, `1`, 0, true},
		{"numbers outside exact", `1.0`, `1.05`, 0, false},
		{"numbers within tolerance", `1.0`, `1.05`, 0.1, true},
		{"type mismatch", `{"a":[]}`, `{"a":{}}`, 0, false},
		{"strings exact", `"Go"`, `"go"`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeepEqual(mustParse(t, tt.a), mustParse(t, tt.b), tt.tolerance))
		})
	}
}

func TestGranular(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want Tally
	}{
		{"half of pairs match", `{"a":1,"b":2,"c":3,"d":4}`, `{"a":1,"b":2,"c":999,"d":888}`, Tally{2, 4}},
		{"key union", `{"a":1,"b":2}`, `{"a":1,"c":2}`, Tally{1, 3}},
		{"nested leaves", `{"a":{"x":1,"y":2}}`, `{"a":{"x":1,"y":3}}`, Tally{1, 2}},
		{"positional arrays with extras", `[1,2,3]`, `[1,5]`, Tally{1, 3}},
		{"type mismatch", `{"a":[1]}`, `{"a":"1"}`, Tally{0, 1}},
		{"null mismatch", `{"a":null}`, `{"a":1}`, Tally{0, 1}},
		{"empty containers", `{"a":[],"b":{}}`, `{"a":[],"b":{}}`, Tally{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Granular(mustParse(t, tt.a), mustParse(t, tt.b)))
		})
	}
}

func TestObjectSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, ObjectSimilarity(mustParse(t, `{}`), mustParse(t, `{}`)))
	assert.Equal(t, 1.0, ObjectSimilarity(mustParse(t, `[]`), mustParse(t, `[]`)))
	assert.Equal(t, 0.5, ObjectSimilarity(
		mustParse(t, `{"a":1,"b":2,"c":3,"d":4}`),
		mustParse(t, `{"a":1,"b":2,"c":999,"d":888}`),
	))
	assert.InDelta(t, 1.0/3.0, ObjectSimilarity(mustParse(t, `{"a":1,"b":2}`), mustParse(t, `{"a":1,"c":3}`)), 1e-12)
	assert.Equal(t, 0.0, ObjectSimilarity(mustParse(t, `[]`), mustParse(t, `{}`)))
}

func opTypes(ops []models.ArrayDiffOperation) []models.ArrayDiffType {
	out := make([]models.ArrayDiffType, len(ops))
	for i, op := range ops {
		out[i] = op.Type
	}
	return out
}

func TestReconcileArrays_Identical(t *testing.T) {
	ops := ReconcileArrays(mustParse(t, `[1,2,3]`).(jsonvalue.Array), mustParse(t, `[1,2,3]`).(jsonvalue.Array))

	assert.Equal(t, []models.ArrayDiffType{models.ArrayEqual, models.ArrayEqual, models.ArrayEqual}, opTypes(ops))
	for i, op := range ops {
		assert.Equal(t, i, op.OldIndex)
		assert.Equal(t, i, op.NewIndex)
	}
}

func TestReconcileArrays_AddedAndRemoved(t *testing.T) {
	added := ReconcileArrays(mustParse(t, `[1,2,3]`).(jsonvalue.Array), mustParse(t, `[1,2,3,4]`).(jsonvalue.Array))
	assert.Equal(t, []models.ArrayDiffType{models.ArrayEqual, models.ArrayEqual, models.ArrayEqual, models.ArrayAdded}, opTypes(added))
	assert.Equal(t, -1, added[3].OldIndex)
	assert.Equal(t, 3, added[3].NewIndex)

	removed := ReconcileArrays(mustParse(t, `["a","b","c"]`).(jsonvalue.Array), mustParse(t, `["a","c"]`).(jsonvalue.Array))
	assert.Equal(t, []models.ArrayDiffType{models.ArrayEqual, models.ArrayRemoved, models.ArrayEqual}, opTypes(removed))
	assert.Equal(t, jsonvalue.String("b"), removed[1].Value)
	assert.Equal(t, 1, removed[1].OldIndex)
	assert.Equal(t, -1, removed[1].NewIndex)
}

func TestReconcileArrays_EmptySides(t *testing.T) {
	assert.Empty(t, ReconcileArrays(jsonvalue.Array{}, jsonvalue.Array{}))

	ops := ReconcileArrays(jsonvalue.Array{}, mustParse(t, `[1,2]`).(jsonvalue.Array))
	assert.Equal(t, []models.ArrayDiffType{models.ArrayAdded, models.ArrayAdded}, opTypes(ops))

	ops = ReconcileArrays(mustParse(t, `[1,2]`).(jsonvalue.Array), jsonvalue.Array{})
	assert.Equal(t, []models.ArrayDiffType{models.ArrayRemoved, models.ArrayRemoved}, opTypes(ops))
}

func TestReconcileArrays_SimilarElementsCollapseToEqual(t *testing.T) {
	ref := mustParse(t, `[{"a":1,"b":2,"c":3,"d":4,"e":5,"f":6}]`).(jsonvalue.Array)
	cand := mustParse(t, `[{"a":1,"b":2,"c":3,"d":4,"e":5,"f":7}]`).(jsonvalue.Array)

	ops := ReconcileArrays(ref, cand)
	require.Len(t, ops, 1)
	assert.Equal(t, models.ArrayEqual, ops[0].Type)
	assert.Equal(t, cand[0], ops[0].Value)
}

func TestReconcileArrays_DissimilarElementsAreReplaced(t *testing.T) {
	ref := mustParse(t, `[{"a":1,"b":2}]`).(jsonvalue.Array)
	cand := mustParse(t, `[{"a":1,"b":3}]`).(jsonvalue.Array)

	ops := ReconcileArrays(ref, cand)
	assert.Equal(t, []models.ArrayDiffType{models.ArrayRemoved, models.ArrayAdded}, opTypes(ops))
}

func TestReconcileArrays_ReorderWithoutKey(t *testing.T) {
	ref := mustParse(t, `[{"s":"open"},{"s":"close"}]`).(jsonvalue.Array)
	cand := mustParse(t, `[{"s":"close"},{"s":"open"}]`).(jsonvalue.Array)

	ops := ReconcileArrays(ref, cand)
	assert.Equal(t, []models.ArrayDiffType{models.ArrayRemoved, models.ArrayEqual, models.ArrayAdded}, opTypes(ops))
}

func TestCountChanges(t *testing.T) {
	ref := mustParse(t, `{"a":1,"b":[1,2],"c":{"x":"s"},"d":true}`)
	cand := mustParse(t, `{"a":2,"b":[1,2,3],"c":{"x":1},"e":null}`)

	got := NewReconciler().CountChanges(ref, cand)
	assert.Equal(t, models.JSONChanges{
		StructuralChanges: 2,
		ValueChanges:      1,
		Additions:         2,
		Removals:          1,
	}, got)
}

func TestCountChanges_Identical(t *testing.T) {
	v := mustParse(t, `{"a":[{"id":1}],"b":null}`)
	assert.Equal(t, models.JSONChanges{}, NewReconciler().CountChanges(v, v))
}

func TestReconciler_ToleranceReachesSimilarity(t *testing.T) {
	exact := NewReconciler()
	tolerant := Reconciler{MatchThreshold: DefaultArrayMatchThreshold, Tolerance: 0.01}
	a := mustParse(t, `{"a":1,"b":2}`)
	b := mustParse(t, `{"a":1.001,"b":3}`)

	assert.Equal(t, 0.0, exact.ObjectSimilarity(a, b))
	assert.Equal(t, ObjectSimilarity(a, b), exact.ObjectSimilarity(a, b))
	assert.Equal(t, 0.5, tolerant.ObjectSimilarity(a, b))
	assert.Equal(t, Tally{Matches: 1, Total: 2}, tolerant.Granular(a, b))
	assert.Equal(t, 1.0, tolerant.ObjectSimilarity(mustParse(t, `{"a":1}`), mustParse(t, `{"a":1.001}`)))
}

func TestReconciler_ToleranceReachesArrayMatching(t *testing.T) {
	ref := mustParse(t, `[{"a":1,"b":1,"c":1,"d":1,"e":1,"f":"x"}]`).(jsonvalue.Array)
	cand := mustParse(t, `[{"a":1.001,"b":1,"c":1,"d":1,"e":1,"f":"y"}]`).(jsonvalue.Array)

	exactOps := NewReconciler().Reconcile(ref, cand)
	assert.Equal(t, []models.ArrayDiffType{models.ArrayRemoved, models.ArrayAdded}, opTypes(exactOps))

	tolerant := Reconciler{MatchThreshold: DefaultArrayMatchThreshold, Tolerance: 0.01}
	ops := tolerant.Reconcile(ref, cand)
	require.Len(t, ops, 1)
	assert.Equal(t, models.ArrayEqual, ops[0].Type)
}
