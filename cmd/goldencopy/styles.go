package main

import (
	"fmt"

	"github.com/aleister1102/goldencopy/internal/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// scoreStyle colors a similarity: green when close, yellow midway, red when far
func scoreStyle(similarity float64) lipgloss.Style {
	switch {
	case similarity >= 0.9:
		return addedStyle
	case similarity >= 0.5:
		return changedStyle
	default:
		return removedStyle
	}
}

func formatSimilarity(similarity float64) string {
	return scoreStyle(similarity).Render(fmt.Sprintf("%6.1f%%", similarity*100))
}

func field(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}

func formatChanges(c models.ChangeSummary) string {
	return addedStyle.Render(fmt.Sprintf("+%d", c.Added)) + " " +
		removedStyle.Render(fmt.Sprintf("-%d", c.Removed)) + " " +
		changedStyle.Render(fmt.Sprintf("~%d", c.Modified))
}

func formatJSONChanges(c models.JSONChanges) string {
	return addedStyle.Render(fmt.Sprintf("+%d", c.Additions)) + " " +
		removedStyle.Render(fmt.Sprintf("-%d", c.Removals)) + " " +
		changedStyle.Render(fmt.Sprintf("~%d", c.StructuralChanges)) +
		dimStyle.Render(fmt.Sprintf(" (%d value)", c.ValueChanges))
}
