package normalizer

import "strings"

// TokenizeWords splits text on runs of whitespace. Whitespace is never a
// token and empty tokens are dropped.
func TokenizeWords(text string) []string {
	return strings.Fields(strings.TrimSpace(text))
}

// TokenizeLines splits text on "\n" without trimming individual lines.
// Empty text has no lines.
func TokenizeLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
