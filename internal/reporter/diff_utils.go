package reporter

import (
	"fmt"
	"strings"

	"github.com/aleister1102/goldencopy/internal/models"
)

// DiffUtils renders aligned diff parts as HTML markup
type DiffUtils struct{}

// NewDiffUtils creates a new DiffUtils
func NewDiffUtils() *DiffUtils {
	return &DiffUtils{}
}

// GenerateWordDiffHTML renders word parts inline, separated by spaces.
func (du *DiffUtils) GenerateWordDiffHTML(parts []models.DiffPart) string {
	rendered := make([]string, 0, len(parts))
	for _, p := range parts {
		switch p.Operation {
		case models.DiffEqual:
			rendered = append(rendered, EqualSpan(p.Text))
		case models.DiffDelete:
			rendered = append(rendered, RemovedSpan(p.Text))
		case models.DiffInsert:
			rendered = append(rendered, AddedSpan(p.Text))
		case models.DiffReplace:
			rendered = append(rendered, ChangedSpan(p.OldText, p.NewText))
		}
	}
	return strings.Join(rendered, " ")
}

// GenerateLineDiffHTML renders line parts as rows. A replacement becomes a
// removed row followed by an added row.
func (du *DiffUtils) GenerateLineDiffHTML(parts []models.DiffPart) string {
	var htmlBuilder strings.Builder
	for _, p := range parts {
		switch p.Operation {
		case models.DiffEqual:
			htmlBuilder.WriteString(LineRow(ClassEqual, " ", p.Text))
		case models.DiffDelete:
			htmlBuilder.WriteString(LineRow(ClassRemoved, "-", p.Text))
		case models.DiffInsert:
			htmlBuilder.WriteString(LineRow(ClassAdded, "+", p.Text))
		case models.DiffReplace:
			htmlBuilder.WriteString(LineRow(ClassRemoved, "-", p.OldText))
			htmlBuilder.WriteString(LineRow(ClassAdded, "+", p.NewText))
		}
	}
	return htmlBuilder.String()
}

// CreateDiffSummary creates text summary of a change tally
func (du *DiffUtils) CreateDiffSummary(changes models.ChangeSummary) string {
	if changes.Added == 0 && changes.Removed == 0 && changes.Modified == 0 {
		return "No textual changes detected."
	}
	return fmt.Sprintf("%d additions (+), %d removals (-), %d modifications (~).", changes.Added, changes.Removed, changes.Modified)
}
