package scraper

import (
	"regexp"
	"strings"

	"github.com/kolah/swagscrape/doc"
	"github.com/kolah/swagscrape/internal/schema"
	"github.com/kolah/swagscrape/swagger"
)

var nonLetters = regexp.MustCompile(`[^a-zA-Z]`)

// toOperation builds the operation documented for ep. It returns nil when
// the hinted file has no matching node carrying the swagger tag. Complex
// types used by parameters and responses are returned for resolution.
func toOperation(ep Endpoint) (*swagger.Operation, []schema.ModelRef) {
	node := doc.FindDocumentationNode(ep.Nodes, ep.DocID)
	swag := doc.TagsWithKind(node, doc.TagSwagger)
	if len(swag) == 0 {
		return nil, nil
	}

	id := ep.Method + "_" + nonLetters.ReplaceAllString(ep.Paths[0], "")
	op := &swagger.Operation{
		ID:          id,
		OperationID: id,
		Summary:     summary(node),
		Tags:        []string{},
		Description: schema.FlattenText(swag[0].Text),
		Parameters:  []swagger.Parameter{},
		Responses:   make(map[string]*swagger.Response),
	}

	for _, t := range doc.TagsWithKind(node, doc.TagTag) {
		op.Tags = append(op.Tags, strings.TrimSpace(t.Text))
	}

	var refs []schema.ModelRef
	addRefs := func(names []string) {
		for _, name := range names {
			refs = append(refs, schema.ModelRef{Name: name, Source: ep.FileHint, Nodes: ep.Nodes})
		}
	}

	for _, p := range node.Params {
		param, found, ok := schema.ParseParam(p)
		if !ok {
			continue
		}
		op.Parameters = append(op.Parameters, param)
		addRefs(found)
	}

	for _, t := range doc.TagsWithKind(node, doc.TagResponse) {
		status, resp, found := schema.ParseResponse(t.Text)
		if status == "" {
			continue
		}
		op.Responses[status] = resp
		addRefs(found)
	}

	return op, refs
}

func summary(n *doc.Node) string {
	if n.Summary != "" {
		return n.Summary
	}
	if tags := doc.TagsWithKind(n, doc.TagSummary); len(tags) > 0 {
		return schema.FlattenText(strings.TrimSpace(tags[0].Text))
	}
	return ""
}
