package reporter

import (
	"fmt"
	"html/template"
	"math"
	"strings"
	"time"
	"unicode"
)

// titleCase converts string to title case (replaces deprecated strings.Title)
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// formatScore renders a [0,1] score as a percentage. Undefined scores render as N/A.
func formatScore(score float64) string {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", score*100)
}

// formatDuration rounds to a readable precision
func formatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "0s"
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}

// GetTemplateFunctions returns the functions available to report templates
func GetTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"title": titleCase,
		"formatTime": func(t time.Time, layout string) string {
			if t.IsZero() {
				return "N/A"
			}
			return t.Format(layout)
		},
		// Diff markup is built from escaped text only.
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"formatScore":    formatScore,
		"formatDuration": formatDuration,
	}
}
