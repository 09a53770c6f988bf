package doc

import (
	"regexp"
	"strings"
)

// SwaggerMarker marks a comment block as documentation for an API handler.
const SwaggerMarker = "@swagger"

// FindDocumentationNode returns the first function node whose comment
// carries the swagger marker. A non-empty id additionally requires an
// `@id <id>` marker followed by whitespace.
func FindDocumentationNode(nodes []Node, id string) *Node {
	var idPattern *regexp.Regexp
	if id != "" {
		idPattern = regexp.MustCompile(`@id ` + regexp.QuoteMeta(id) + `\s+`)
	}

	for i := range nodes {
		n := &nodes[i]
		if n.Kind != KindFunction || !strings.Contains(n.Comment, SwaggerMarker) {
			continue
		}
		if idPattern != nil && !idPattern.MatchString(n.Comment) {
			continue
		}
		return n
	}
	return nil
}

// TagsWithKind returns the tags of kind in declaration order.
func TagsWithKind(n *Node, kind TagKind) []Tag {
	if n == nil {
		return nil
	}
	var tags []Tag
	for _, t := range n.Tags {
		if t.Kind == kind {
			tags = append(tags, t)
		}
	}
	return tags
}

// FindTypedef returns the first typedef node called name.
func FindTypedef(nodes []Node, name string) *Node {
	for i := range nodes {
		if nodes[i].Kind == KindTypedef && nodes[i].Name == name {
			return &nodes[i]
		}
	}
	return nil
}
