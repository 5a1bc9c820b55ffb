package structural

import "github.com/aleister1102/goldencopy/internal/jsonvalue"

// Tally counts how many leaf key-value pairs match out of all pairs seen.
type Tally struct {
	Matches int
	Total   int
}

var (
	match    = Tally{Matches: 1, Total: 1}
	mismatch = Tally{Matches: 0, Total: 1}
)

// Add returns the sum of two tallies.
func (t Tally) Add(o Tally) Tally {
	return Tally{Matches: t.Matches + o.Matches, Total: t.Total + o.Total}
}

// Ratio returns Matches/Total, or 0 for an empty tally.
func (t Tally) Ratio() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Matches) / float64(t.Total)
}

// Granular counts, over every leaf reachable in either tree, how many hold
// the same value in both. Arrays are compared by position with each extra
// element counting as one mismatch; objects take the union of their keys
// with one-sided keys counting as one mismatch. Two empty containers of the
// same kind count as one matching leaf. Numbers compare exactly.
func Granular(a, b jsonvalue.Value) Tally {
	return granular(a, b, 0)
}

// ObjectSimilarity returns 1 when a and b are deeply equal, otherwise the
// fraction of matching leaf pairs from Granular. Numbers compare exactly.
func ObjectSimilarity(a, b jsonvalue.Value) float64 {
	return objectSimilarity(a, b, 0)
}

// Granular is the package-level Granular with numbers compared within the
// reconciler's tolerance.
func (r Reconciler) Granular(a, b jsonvalue.Value) Tally {
	return granular(a, b, r.Tolerance)
}

// ObjectSimilarity is the package-level ObjectSimilarity with numbers
// compared within the reconciler's tolerance.
func (r Reconciler) ObjectSimilarity(a, b jsonvalue.Value) float64 {
	return objectSimilarity(a, b, r.Tolerance)
}

func objectSimilarity(a, b jsonvalue.Value, tolerance float64) float64 {
	if DeepEqual(a, b, tolerance) {
		return 1.0
	}
	return granular(a, b, tolerance).Ratio()
}

func granular(a, b jsonvalue.Value, tolerance float64) Tally {
	ka, kb := jsonvalue.KindOf(a), jsonvalue.KindOf(b)
	if ka != kb {
		return mismatch
	}

	switch ka {
	case jsonvalue.KindArray:
		return granularArray(a.(jsonvalue.Array), b.(jsonvalue.Array), tolerance)
	case jsonvalue.KindObject:
		return granularObject(a.(jsonvalue.Object), b.(jsonvalue.Object), tolerance)
	default:
		if DeepEqual(a, b, tolerance) {
			return match
		}
		return mismatch
	}
}

func granularArray(x, y jsonvalue.Array, tolerance float64) Tally {
	if len(x) == 0 && len(y) == 0 {
		return match
	}

	var t Tally
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		t = t.Add(granular(x[i], y[i], tolerance))
	}
	extra := max(len(x), len(y)) - n
	t.Total += extra
	return t
}

func granularObject(x, y jsonvalue.Object, tolerance float64) Tally {
	if len(x) == 0 && len(y) == 0 {
		return match
	}

	var t Tally
	for k, xv := range x {
		if yv, ok := y[k]; ok {
			t = t.Add(granular(xv, yv, tolerance))
		} else {
			t = t.Add(mismatch)
		}
	}
	for k := range y {
		if _, ok := x[k]; !ok {
			t = t.Add(mismatch)
		}
	}
	return t
}
