// Package hint extracts `@fileHint: <path>[::<docId>];` markers from route
// handlers.
package hint

import (
	"regexp"
	"strings"

	"github.com/kolah/swagscrape/swagerrors"
)

const (
	marker    = "@fileHint:"
	separator = "::"
)

var docIDPattern = regexp.MustCompile(`^\w+`)

// Extract returns the hint following the marker in text, terminated by a
// semicolon or the end of the line. It returns "" when there is no marker.
func Extract(text string) string {
	start := strings.Index(text, marker)
	if start == -1 {
		return ""
	}
	rest := text[start+len(marker):]
	if end := strings.IndexAny(rest, ";\n"); end != -1 {
		rest = rest[:end]
	}
	rest = strings.TrimSpace(rest)
	// a hint in a one-line block comment runs into the closing marker
	rest = strings.TrimSpace(strings.TrimSuffix(rest, "*/"))
	return rest
}

// Split separates a hint into the documentation file and the optional doc
// id. More than one separator is an error.
func Split(h string) (file, docID string, err error) {
	if !strings.Contains(h, separator) {
		return h, "", nil
	}

	parts := strings.Split(h, separator)
	if len(parts) != 2 {
		return "", "", &swagerrors.HintError{Hint: h}
	}
	return parts[0], docIDPattern.FindString(parts[1]), nil
}
