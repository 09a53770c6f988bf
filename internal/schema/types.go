package schema

import (
	"slices"
	"strings"

	"github.com/kolah/swagscrape/doc"
	"github.com/kolah/swagscrape/swagger"
)

var primitiveTypes = []string{"number", "boolean", "integer", "string", "object", "file"}

// jsdoc spells arrays either way depending on how the type was written
var arrayPrefixes = []string{"Array.<", "[ 'Array' ].<"}

// ModelRef names a type to resolve and the nodes it was referenced from.
// Source identifies the nodes, normally the file they were parsed from.
type ModelRef struct {
	Name   string
	Source string
	Nodes  []doc.Node
}

// IsComplex reports whether typeName is not one of the primitive types.
func IsComplex(typeName string) bool {
	return !slices.Contains(primitiveTypes, strings.ToLower(strings.TrimSpace(typeName)))
}

// UnwrapArray strips an `Array.<T>` wrapper and reports whether one was
// present.
func UnwrapArray(typeName string) (string, bool) {
	for _, prefix := range arrayPrefixes {
		if strings.HasPrefix(typeName, prefix) && strings.HasSuffix(typeName, ">") {
			return typeName[len(prefix) : len(typeName)-1], true
		}
	}
	return typeName, false
}

// typeRef is the result of classifying a declared type.
type typeRef struct {
	name    string
	array   bool
	complex bool
}

func classify(hint *doc.TypeHint) typeRef {
	name := hint.First()
	if name == "" {
		name = "string"
	}
	name, array := UnwrapArray(name)
	return typeRef{name: name, array: array, complex: IsComplex(name)}
}

func (r typeRef) schema(description string) *swagger.Schema {
	s := swagger.TypeSchema(r.name, r.complex)
	s.Description = description
	if r.array {
		return swagger.ArrayOf(s)
	}
	return s
}

// DedupRefs keeps the first reference of every name per source.
func DedupRefs(refs []ModelRef) []ModelRef {
	seen := make(map[sourced]bool, len(refs))
	out := make([]ModelRef, 0, len(refs))
	for _, r := range refs {
		key := sourced{source: r.Source, name: r.Name}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
