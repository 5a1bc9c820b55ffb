package normalizer

import (
	"regexp"
	"strings"
)

// fencedBlockRegex matches a whole fenced code block with an optional
// language tag on the opening fence.
var fencedBlockRegex = regexp.MustCompile("(?s)^```[A-Za-z0-9_+-]*[ \t]*\r?\n?(.*?)\r?\n?```$")

// ExtractFromMarkdown strips one layer of code fence (```json, ``` or a
// single-backtick inline span) surrounding the text. Text without a fence
// is returned unchanged.
func ExtractFromMarkdown(text string) string {
	trimmed := strings.TrimSpace(text)

	if m := fencedBlockRegex.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}

	if isInlineCode(trimmed) {
		return strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	}

	return text
}

func isInlineCode(s string) bool {
	if len(s) < 2 || !strings.HasPrefix(s, "`") || !strings.HasSuffix(s, "`") {
		return false
	}
	// Double backticks belong to a fence or an empty span, not inline code.
	return !strings.HasPrefix(s, "``")
}
