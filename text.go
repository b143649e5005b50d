package puzzlefetch

import "strings"

// hiddenWordLength is the answer length the aggregator hides in its table.
const hiddenWordLength = 5

// CollapseText collapses whitespace runs in the text content of a markup
// fragment into single spaces. Markup text often spans multiple text
// nodes with newlines and indentation; this normalizes it to a single
// clean line. Empty input yields the empty string.
func CollapseText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// HiddenWord extracts a Wordle answer from the text of a hidden span.
// It strips every character that is not an ASCII letter, uppercases the
// remainder, and reports ok only when exactly five letters remain.
// A false result means "try the next candidate", not an error.
func HiddenWord(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}
	}
	word := b.String()
	if len(word) != hiddenWordLength {
		return "", false
	}
	return word, true
}

// FormatPuzzleLabel canonicalizes a free-form puzzle-number string into a
// display label. The source markup sometimes carries a full label
// ("Wordle #1234"), sometimes a bare number with or without a leading
// "#"; all forms normalize to a consistent label.
func FormatPuzzleLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "Wordle"
	}
	if strings.Contains(strings.ToLower(trimmed), "wordle") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "#") {
		return "Wordle " + trimmed
	}
	return "Wordle #" + trimmed
}
