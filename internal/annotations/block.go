package annotations

import (
	"regexp"
	"strings"

	"github.com/kolah/swagscrape/doc"
)

var tagLine = regexp.MustCompile(`^@([A-Za-z][\w-]*)\s?(.*)$`)

// commentLines strips comment markers and the `*` gutter of block comments.
func commentLines(raw string) []string {
	raw = strings.TrimSpace(raw)
	block := strings.HasPrefix(raw, "/*")
	if block {
		raw = strings.TrimPrefix(raw, "/**")
		raw = strings.TrimPrefix(raw, "/*")
		raw = strings.TrimSuffix(raw, "*/")
	}

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t")
		if strings.HasPrefix(line, "//") {
			line = strings.TrimPrefix(line, "//")
		} else if block && strings.HasPrefix(line, "*") {
			line = strings.TrimPrefix(line, "*")
		}
		line = strings.TrimPrefix(line, " ")
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return lines
}

// splitTypedefs breaks a comment into one chunk per `@typedef` so several
// models can share a comment group. Lines before the first typedef stay
// with it.
func splitTypedefs(lines []string) [][]string {
	var chunks [][]string
	start := 0
	for i, line := range lines {
		m := tagLine.FindStringSubmatch(line)
		if m == nil || doc.KindOfTitle(m[1]) != doc.TagTypedef {
			continue
		}
		if i > start && hasTypedef(lines[start:i]) {
			chunks = append(chunks, lines[start:i])
			start = i
		}
	}
	return append(chunks, lines[start:])
}

func hasTypedef(lines []string) bool {
	for _, line := range lines {
		if m := tagLine.FindStringSubmatch(line); m != nil && doc.KindOfTitle(m[1]) == doc.TagTypedef {
			return true
		}
	}
	return false
}

// parseBlock builds a node from cleaned comment lines. The node is a
// typedef when the block declares one, a function otherwise.
func parseBlock(lines []string) doc.Node {
	n := doc.Node{
		Kind:    doc.KindFunction,
		Comment: strings.Join(lines, "\n") + "\n",
	}

	var description []string
	var tags []doc.Tag
	for _, line := range lines {
		if m := tagLine.FindStringSubmatch(line); m != nil {
			tags = append(tags, doc.NewTag(m[1], m[2]))
			continue
		}
		if len(tags) == 0 {
			description = append(description, line)
			continue
		}
		tags[len(tags)-1].Text += "\n" + line
	}
	n.Description = strings.TrimSpace(strings.Join(description, "\n"))

	for _, t := range tags {
		t.Text = strings.TrimSpace(t.Text)
		n.Tags = append(n.Tags, t)

		switch t.Kind {
		case doc.TagSummary:
			n.Summary = strings.Join(strings.Fields(t.Text), " ")
		case doc.TagParam:
			typ, name, desc := splitTyped(t.Text)
			n.Params = append(n.Params, doc.Param{Name: name, Type: typ, Description: desc})
		case doc.TagTypedef:
			typ, name, _ := splitTyped(t.Text)
			n.Kind = doc.KindTypedef
			n.Name = name
			n.Longname = name
			n.Type = typ
		case doc.TagProperty:
			typ, name, desc := splitTyped(t.Text)
			n.Properties = append(n.Properties, doc.Node{
				Kind:        doc.KindMember,
				Name:        name,
				Longname:    name,
				Description: desc,
				Type:        typ,
			})
		case doc.TagRequired:
			if len(n.Properties) > 0 {
				last := &n.Properties[len(n.Properties)-1]
				last.Tags = append(last.Tags, t)
			}
		}
	}
	return n
}

// splitTyped reads `{Type} name description`, `name {Type} description`
// and `[name]` forms. A leading "- " is dropped from the description.
func splitTyped(text string) (*doc.TypeHint, string, string) {
	var typ *doc.TypeHint
	if open := strings.IndexByte(text, '{'); open != -1 {
		if end := closingBrace(text, open); end != -1 {
			typ = parseTypeExpr(text[open+1 : end])
			text = text[:open] + text[end+1:]
		}
	}

	text = strings.TrimSpace(text)
	name := text
	rest := ""
	if i := strings.IndexAny(text, " \t\n"); i != -1 {
		name, rest = text[:i], strings.TrimSpace(text[i+1:])
	}
	name = strings.Trim(name, "[]")
	if eq := strings.IndexByte(name, '='); eq != -1 {
		name = name[:eq]
	}

	rest = strings.TrimSpace(strings.TrimPrefix(rest, "-"))
	return typ, name, rest
}

func closingBrace(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseTypeExpr splits a union into names and rewrites `T[]` and `[]T` to
// `Array.<T>`.
func parseTypeExpr(expr string) *doc.TypeHint {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") {
		expr = expr[1 : len(expr)-1]
	}

	var names []string
	for _, part := range strings.Split(expr, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		suffixes := 0
		for strings.HasSuffix(part, "[]") {
			part = strings.TrimSpace(strings.TrimSuffix(part, "[]"))
			suffixes++
		}
		// Go slice syntax
		for strings.HasPrefix(part, "[]") {
			part = strings.TrimPrefix(part, "[]")
			suffixes++
		}
		for ; suffixes > 0; suffixes-- {
			part = "Array.<" + part + ">"
		}
		names = append(names, part)
	}
	if len(names) == 0 {
		return nil
	}
	return &doc.TypeHint{Names: names}
}
