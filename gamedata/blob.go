// Package gamedata extracts the day's Sudoku from the game-data blob the
// puzzle provider embeds in its page. The payload is a script-scope
// assignment rather than structured markup, so extraction is textual:
// locate the assignment marker, carve out the JSON value, then decode.
package gamedata

import (
	"strings"

	"github.com/fwojciec/puzzlefetch"
)

const (
	// blobMarker introduces the game-data assignment inside the page's
	// inline script.
	blobMarker = "window.gameData = "

	// blobTerminator closes the inline script holding the assignment.
	blobTerminator = "</script>"
)

// ExtractBlob carves the raw game-data JSON text out of the page HTML.
// It returns the text between the assignment marker and the script
// closing tag, trimmed and with a single trailing semicolon stripped.
// Parsing the result as JSON is the caller's responsibility.
func ExtractBlob(html string) (string, error) {
	start := strings.Index(html, blobMarker)
	if start < 0 {
		return "", puzzlefetch.Errorf(puzzlefetch.ENOTFOUND, "window.gameData marker not found")
	}

	after := html[start+len(blobMarker):]
	end := strings.Index(after, blobTerminator)
	if end < 0 {
		return "", puzzlefetch.Errorf(puzzlefetch.ENOTFOUND, "closing script tag not found after window.gameData")
	}

	blob := strings.TrimSpace(after[:end])
	blob = strings.TrimSuffix(blob, ";")
	return strings.TrimSpace(blob), nil
}
