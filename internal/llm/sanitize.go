package llm

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	sentenceEnd   = regexp.MustCompile(`([.!?])\s+`)
)

// Markdown markers Gemini likes to emit even when asked for plain text.
var markdownMarkers = []string{"**", "##", "--", "*", "#"}

// Sanitize strips markdown noise from a model reply, collapses whitespace and
// keeps at most maxSentences sentences joined by newlines. Sentence boundaries
// are naive: a '.', '!' or '?' followed by spaces. Abbreviations like "Dr."
// split too; that matches the app's existing behavior.
func Sanitize(text string, maxSentences int) string {
	for _, marker := range markdownMarkers {
		text = strings.ReplaceAll(text, marker, "")
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " \t")
	}
	text = strings.Join(lines, "\n")

	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	if text == "" {
		return ""
	}

	parts := strings.Split(sentenceEnd.ReplaceAllString(text, "$1\n"), "\n")
	var kept []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kept = append(kept, part)
		if len(kept) >= maxSentences {
			break
		}
	}
	return strings.Join(kept, "\n")
}
