package structural

import (
	"github.com/aleister1102/goldencopy/internal/jsonvalue"
	"github.com/aleister1102/goldencopy/internal/models"
)

// DefaultArrayMatchThreshold is the similarity above which two array
// elements that are not deeply equal are still reported as equal.
const DefaultArrayMatchThreshold = 0.8

// Reconciler matches array elements independently of order and tallies
// changes between trees.
//
// Elements whose similarity exceeds MatchThreshold are collapsed into an
// equal step. Minor value drift inside an element therefore produces no
// addition or removal in the change counts.
type Reconciler struct {
	MatchThreshold float64
	Tolerance      float64
}

// NewReconciler creates a reconciler with the default threshold and exact
// numeric comparison.
func NewReconciler() Reconciler {
	return Reconciler{MatchThreshold: DefaultArrayMatchThreshold}
}

// ReconcileArrays reconciles two arrays with the default reconciler.
func ReconcileArrays(reference, candidate jsonvalue.Array) []models.ArrayDiffOperation {
	return NewReconciler().Reconcile(reference, candidate)
}

// Reconcile returns the element-level steps turning reference into
// candidate, in order. It builds an LCS table over deep equality and walks
// it back, emitting equal for equal or sufficiently similar pairs and
// otherwise an addition or removal consistent with the table.
func (r Reconciler) Reconcile(reference, candidate jsonvalue.Array) []models.ArrayDiffOperation {
	n, m := len(reference), len(candidate)

	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	equal := make([][]bool, n)
	similarity := make([][]float64, n)

	for i := 1; i <= n; i++ {
		equal[i-1] = make([]bool, m)
		similarity[i-1] = make([]float64, m)
		for j := 1; j <= m; j++ {
			if DeepEqual(reference[i-1], candidate[j-1], r.Tolerance) {
				equal[i-1][j-1] = true
				similarity[i-1][j-1] = 1.0
				lcs[i][j] = lcs[i-1][j-1] + 1
				continue
			}
			similarity[i-1][j-1] = r.ObjectSimilarity(reference[i-1], candidate[j-1])
			lcs[i][j] = max(lcs[i-1][j], lcs[i][j-1])
		}
	}

	ops := make([]models.ArrayDiffOperation, 0, max(n, m))
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && (equal[i-1][j-1] || similarity[i-1][j-1] > r.MatchThreshold):
			value := reference[i-1]
			if !equal[i-1][j-1] {
				value = candidate[j-1]
			}
			ops = append(ops, models.ArrayDiffOperation{
				Type: models.ArrayEqual, Value: value, OldIndex: i - 1, NewIndex: j - 1,
			})
			i--
			j--
		case j > 0 && (i == 0 || lcs[i][j-1] >= lcs[i-1][j]):
			ops = append(ops, models.ArrayDiffOperation{
				Type: models.ArrayAdded, Value: candidate[j-1], OldIndex: -1, NewIndex: j - 1,
			})
			j--
		default:
			ops = append(ops, models.ArrayDiffOperation{
				Type: models.ArrayRemoved, Value: reference[i-1], OldIndex: i - 1, NewIndex: -1,
			})
			i--
		}
	}

	for l, h := 0, len(ops)-1; l < h; l, h = l+1, h-1 {
		ops[l], ops[h] = ops[h], ops[l]
	}
	return ops
}

// CountChanges walks two trees and tallies their differences. Arrays are
// reconciled and contribute additions and removals; object keys present on
// one side only are additions or removals; differing leaves are structural
// changes, and value changes when both leaves share a primitive kind.
func (r Reconciler) CountChanges(reference, candidate jsonvalue.Value) models.JSONChanges {
	var changes models.JSONChanges
	r.countInto(reference, candidate, &changes)
	return changes
}

func (r Reconciler) countInto(a, b jsonvalue.Value, changes *models.JSONChanges) {
	ka, kb := jsonvalue.KindOf(a), jsonvalue.KindOf(b)

	switch {
	case ka == jsonvalue.KindArray && kb == jsonvalue.KindArray:
		for _, op := range r.Reconcile(a.(jsonvalue.Array), b.(jsonvalue.Array)) {
			switch op.Type {
			case models.ArrayAdded:
				changes.Additions++
			case models.ArrayRemoved:
				changes.Removals++
			}
		}
	case ka == jsonvalue.KindObject && kb == jsonvalue.KindObject:
		x, y := a.(jsonvalue.Object), b.(jsonvalue.Object)
		for k, xv := range x {
			if yv, ok := y[k]; ok {
				r.countInto(xv, yv, changes)
			} else {
				changes.Removals++
			}
		}
		for k := range y {
			if _, ok := x[k]; !ok {
				changes.Additions++
			}
		}
	default:
		if DeepEqual(a, b, r.Tolerance) {
			return
		}
		changes.StructuralChanges++
		if ka == kb && ka.IsPrimitive() {
			changes.ValueChanges++
		}
	}
}
