// Package spec renders a Go source file embedding a generated document.
package spec

import (
	"encoding/base64"
	"sort"

	"github.com/kolah/swagscrape/internal/golang"
	"github.com/kolah/swagscrape/internal/templates"
	"github.com/kolah/swagscrape/swagger"
)

const templateName = "go/swagger.tmpl"

type Target struct{}

func New() *Target {
	return &Target{}
}

type operation struct {
	Name string
	ID   string
}

type templateData struct {
	Package    string
	Title      string
	Data       string
	Operations []operation
}

// Generate renders docJSON, the serialized form of doc, into package pkg
// together with one constant per operation id.
func (t *Target) Generate(engine templates.Engine, doc *swagger.Document, docJSON []byte, pkg string) (string, error) {
	data := templateData{
		Package:    pkg,
		Title:      doc.Info.Title,
		Data:       base64.StdEncoding.EncodeToString(docJSON),
		Operations: operations(doc),
	}

	return engine.Execute(templateName, data)
}

// operations lists the distinct operation ids of doc sorted by constant
// name. Of several ids mapping to one name the smallest is kept.
func operations(doc *swagger.Document) []operation {
	var all []operation
	for _, item := range doc.Paths {
		for _, op := range item {
			all = append(all, operation{Name: golang.Identifier("Operation", op.OperationID), ID: op.OperationID})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})

	var out []operation
	for _, op := range all {
		if len(out) > 0 && out[len(out)-1].Name == op.Name {
			continue
		}
		out = append(out, op)
	}
	return out
}
