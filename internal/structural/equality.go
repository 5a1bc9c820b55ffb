// Package structural compares canonical JSON trees: strict deep equality,
// leaf-level granular scoring and order-independent array reconciliation.
package structural

import (
	"math"

	"github.com/aleister1102/goldencopy/internal/jsonvalue"
)

// DeepEqual reports whether a and b are structurally identical. Numbers
// compare within tolerance when tolerance > 0, exactly otherwise. Arrays
// compare position by position.
func DeepEqual(a, b jsonvalue.Value, tolerance float64) bool {
	ka, kb := jsonvalue.KindOf(a), jsonvalue.KindOf(b)
	if ka != kb {
		return false
	}

	switch ka {
	case jsonvalue.KindNull:
		return true
	case jsonvalue.KindBool:
		return a.(jsonvalue.Bool) == b.(jsonvalue.Bool)
	case jsonvalue.KindNumber:
		x, y := float64(a.(jsonvalue.Number)), float64(b.(jsonvalue.Number))
		if tolerance > 0 {
			return math.Abs(x-y) <= tolerance
		}
		return x == y
	case jsonvalue.KindString:
		return a.(jsonvalue.String) == b.(jsonvalue.String)
	case jsonvalue.KindArray:
		x, y := a.(jsonvalue.Array), b.(jsonvalue.Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !DeepEqual(x[i], y[i], tolerance) {
				return false
			}
		}
		return true
	case jsonvalue.KindObject:
		x, y := a.(jsonvalue.Object), b.(jsonvalue.Object)
		if len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, ok := y[k]
			if !ok || !DeepEqual(xv, yv, tolerance) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
