package annotations

import (
	"regexp"
	"strings"

	"github.com/kolah/swagscrape/doc"
)

var functionDecl = []*regexp.Regexp{
	regexp.MustCompile(`^(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*([\w$]*)`),
	regexp.MustCompile(`^(?:export\s+)?(?:const|let|var)\s+([\w$]+)\s*=\s*(?:async\s+)?(?:function\b|\([^)]*\)\s*=>|[\w$]+\s*=>)`),
	regexp.MustCompile(`^([\w$]+)\s*[:=]\s*(?:async\s+)?(?:function\b|\([^)]*\)\s*=>|[\w$]+\s*=>)`),
	regexp.MustCompile(`^(?:static\s+)?(?:async\s+)?([\w$]+)\s*\([^)]*\)\s*\{`),
}

var controlKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "catch": true, "with": true,
}

// parseBlockComments scans C-style sources for `/** ... */` blocks. A
// block followed by a function declaration or expression documents that
// function; typedef blocks stand alone; anything else is a member.
func parseBlockComments(src string) []doc.Node {
	var nodes []doc.Node
	for {
		start := strings.Index(src, "/**")
		if start == -1 {
			return nodes
		}
		end := strings.Index(src[start+3:], "*/")
		if end == -1 {
			return nodes
		}
		end += start + 3 + len("*/")

		raw := src[start:end]
		src = src[end:]
		if strings.HasPrefix(raw, "/***") {
			continue
		}

		lines := commentLines(raw)
		if hasTypedef(lines) {
			for _, chunk := range splitTypedefs(lines) {
				nodes = append(nodes, parseBlock(chunk))
			}
			continue
		}

		n := parseBlock(lines)
		n.Comment = raw + "\n"
		if name, ok := declaredFunction(src); ok {
			n.Name, n.Longname = name, name
		} else {
			n.Kind = doc.KindMember
		}
		nodes = append(nodes, n)
	}
}

// declaredFunction reports whether the code following a comment starts a
// function and returns its name, if it has one.
func declaredFunction(rest string) (string, bool) {
	rest = strings.TrimLeft(rest, " \t\r\n")
	if i := strings.IndexByte(rest, '\n'); i != -1 {
		rest = rest[:i]
	}
	for _, re := range functionDecl {
		if m := re.FindStringSubmatch(rest); m != nil && !controlKeywords[m[1]] {
			return m[1], true
		}
	}
	return "", false
}
