package cards

import (
	"regexp"
	"strings"
)

// DefaultPreviewLen is the truncation length used by the front ends.
const DefaultPreviewLen = 80

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Preview renders a short plain-text preview of the card's content:
// blocks joined with spaces, HTML tags stripped, the bullet entity
// replaced with '*', whitespace collapsed, and the result truncated to
// maxLen with an ellipsis. The tag stripping is a simple
// angle-bracket pass, not an HTML parser.
func (c Card) Preview(maxLen int) string {
	text := strings.Join(c.Content(), " ")
	text = tagPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "&#x2022;", "*")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.TrimSpace(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	// Truncate by runes so a multi-byte character is never split.
	if runes := []rune(text); len(runes) > maxLen {
		text = string(runes[:maxLen]) + "..."
	}
	return text
}
