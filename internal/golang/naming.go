package golang

import (
	"strings"
	"unicode"
)

var initialisms = map[string]bool{
	"API":  true,
	"CSS":  true,
	"DNS":  true,
	"HTML": true,
	"HTTP": true,
	"ID":   true,
	"IP":   true,
	"JSON": true,
	"SQL":  true,
	"SSH":  true,
	"TLS":  true,
	"UI":   true,
	"URI":  true,
	"URL":  true,
	"UUID": true,
	"XML":  true,
}

// PascalCase joins the words of s, capitalizing each one and upper-casing
// known initialisms.
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		if upper := strings.ToUpper(w); initialisms[upper] {
			b.WriteString(upper)
			continue
		}
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// words splits on separators and on lower-to-upper case changes.
func words(s string) []string {
	var out []string
	for _, field := range strings.FieldsFunc(s, isSeparator) {
		start := 0
		runes := []rune(field)
		for i := 1; i < len(runes); i++ {
			if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
				out = append(out, string(runes[start:i]))
				start = i
			}
		}
		out = append(out, string(runes[start:]))
	}
	return out
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Identifier returns an exported Go identifier for s, prefixed with prefix.
// Identifiers that would start with a digit get an X.
func Identifier(prefix, s string) string {
	name := prefix + PascalCase(s)
	if name == "" {
		return "X"
	}
	if unicode.IsDigit(rune(name[0])) {
		return "X" + name
	}
	return name
}
