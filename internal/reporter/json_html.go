package reporter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aleister1102/goldencopy/internal/jsonvalue"
	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/aleister1102/goldencopy/internal/structural"
)

// JSONRenderer renders the difference between two canonical JSON trees as
// nested rows, one per key or array element.
type JSONRenderer struct {
	reconciler structural.Reconciler
}

// NewJSONRenderer creates a renderer that lays out arrays with reconciler.
func NewJSONRenderer(reconciler structural.Reconciler) *JSONRenderer {
	return &JSONRenderer{reconciler: reconciler}
}

// Render returns the HTML diff of reference and candidate.
func (jr *JSONRenderer) Render(reference, candidate jsonvalue.Value) string {
	var b strings.Builder
	b.WriteString(`<div class="json-diff">`)
	jr.renderValue(&b, "", reference, candidate, 0)
	b.WriteString(`</div>`)
	return b.String()
}

func (jr *JSONRenderer) renderValue(b *strings.Builder, label string, ref, cand jsonvalue.Value, depth int) {
	if structural.DeepEqual(ref, cand, jr.reconciler.Tolerance) {
		writeRow(b, ClassEqual, depth, label, "", jsonvalue.Compact(ref))
		return
	}

	kr, kc := jsonvalue.KindOf(ref), jsonvalue.KindOf(cand)
	switch {
	case kr == jsonvalue.KindObject && kc == jsonvalue.KindObject:
		jr.renderObject(b, label, ref.(jsonvalue.Object), cand.(jsonvalue.Object), depth)
	case kr == jsonvalue.KindArray && kc == jsonvalue.KindArray:
		jr.renderArray(b, label, ref.(jsonvalue.Array), cand.(jsonvalue.Array), depth)
	default:
		writeChangedRow(b, depth, label, jsonvalue.Compact(ref), jsonvalue.Compact(cand))
	}
}

func (jr *JSONRenderer) renderObject(b *strings.Builder, label string, ref, cand jsonvalue.Object, depth int) {
	writeRow(b, ClassChanged, depth, label, "", "{")

	for _, k := range unionKeys(ref, cand) {
		keyLabel := strconv.Quote(k)
		rv, inRef := ref[k]
		cv, inCand := cand[k]
		switch {
		case inRef && inCand:
			jr.renderValue(b, keyLabel, rv, cv, depth+1)
		case inRef:
			writeRow(b, ClassRemoved, depth+1, keyLabel, "", jsonvalue.Compact(rv))
		default:
			writeRow(b, ClassAdded, depth+1, keyLabel, "", jsonvalue.Compact(cv))
		}
	}

	writeRow(b, ClassChanged, depth, "", "", "}")
}

func (jr *JSONRenderer) renderArray(b *strings.Builder, label string, ref, cand jsonvalue.Array, depth int) {
	writeRow(b, ClassChanged, depth, label, "", "[")

	for _, op := range jr.reconciler.Reconcile(ref, cand) {
		switch op.Type {
		case models.ArrayEqual:
			writeIndexedRow(b, ClassEqual, depth+1, op.OldIndex, jsonvalue.Compact(op.Value))
		case models.ArrayAdded:
			writeIndexedRow(b, ClassAdded, depth+1, op.NewIndex, jsonvalue.Compact(op.Value))
		case models.ArrayRemoved:
			writeIndexedRow(b, ClassRemoved, depth+1, op.OldIndex, jsonvalue.Compact(op.Value))
		}
	}

	writeRow(b, ClassChanged, depth, "", "", "]")
}

func unionKeys(a, b jsonvalue.Object) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func rowPrefix(class string) string {
	switch class {
	case ClassAdded:
		return "+"
	case ClassRemoved:
		return "-"
	default:
		return " "
	}
}

func writeRow(b *strings.Builder, class string, depth int, label, attrs, text string) {
	fmt.Fprintf(b, `<div class="diff-line %s"%s style="padding-left:%dem">%s `, class, attrs, depth*2, rowPrefix(class))
	if label != "" {
		b.WriteString(Escape(label))
		b.WriteString(": ")
	}
	b.WriteString(Escape(text))
	b.WriteString(`</div>`)
}

func writeIndexedRow(b *strings.Builder, class string, depth, index int, text string) {
	writeRow(b, class, depth, fmt.Sprintf("[%d]", index), fmt.Sprintf(` data-index="%d"`, index), text)
}

func writeChangedRow(b *strings.Builder, depth int, label, oldText, newText string) {
	fmt.Fprintf(b, `<div class="diff-line %s" style="padding-left:%dem">~ `, ClassChanged, depth*2)
	if label != "" {
		b.WriteString(Escape(label))
		b.WriteString(": ")
	}
	b.WriteString(RemovedSpan(oldText))
	b.WriteString(" ")
	b.WriteString(AddedSpan(newText))
	b.WriteString(`</div>`)
}
