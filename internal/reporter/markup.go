package reporter

import (
	"fmt"
	"html/template"
)

// Marker classes. Renderers wrap escaped text in these and nothing else, so
// the resulting markup can be embedded as trusted HTML.
const (
	ClassEqual   = "diff-equal"
	ClassAdded   = "diff-added"
	ClassRemoved = "diff-removed"
	ClassChanged = "diff-changed"
)

// Escape escapes text for inclusion in diff markup.
func Escape(text string) string {
	return template.HTMLEscapeString(text)
}

// EqualSpan wraps unchanged text.
func EqualSpan(text string) string {
	return fmt.Sprintf(`<span class="%s">%s</span>`, ClassEqual, Escape(text))
}

// AddedSpan wraps text present only in the candidate.
func AddedSpan(text string) string {
	return fmt.Sprintf(`<ins class="%s">%s</ins>`, ClassAdded, Escape(text))
}

// RemovedSpan wraps text present only in the reference.
func RemovedSpan(text string) string {
	return fmt.Sprintf(`<del class="%s">%s</del>`, ClassRemoved, Escape(text))
}

// ChangedSpan renders a replacement: the old text struck through followed
// by the new text.
func ChangedSpan(oldText, newText string) string {
	return fmt.Sprintf(`<span class="%s">%s%s</span>`, ClassChanged, RemovedSpan(oldText), AddedSpan(newText))
}

// LineRow renders one patch-style row. prefix is "+", "-" or " ".
func LineRow(class, prefix, text string) string {
	return fmt.Sprintf(`<div class="diff-line %s">%s %s</div>`, class, Escape(prefix), Escape(text))
}
