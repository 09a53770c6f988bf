package swagger

import "sort"

const definitionsPrefix = "#/definitions/"

// Schema is a schema fragment: a reference, a primitive type or an array of
// either.
type Schema struct {
	Type        string  `json:"type,omitempty" yaml:"type,omitempty"`
	Ref         string  `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Items       *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Definition is a reusable named object schema.
type Definition struct {
	Type       string             `json:"type" yaml:"type"`
	Title      string             `json:"title" yaml:"title"`
	Properties map[string]*Schema `json:"properties" yaml:"properties"`
	Required   []string           `json:"required" yaml:"required"`
	AllOf      []*Schema          `json:"allOf,omitempty" yaml:"allOf,omitempty"`
}

func NewDefinition(title string) *Definition {
	return &Definition{
		Type:       "object",
		Title:      title,
		Properties: make(map[string]*Schema),
		Required:   []string{},
	}
}

// RefTo returns the $ref path of the definition called name.
func RefTo(name string) string {
	return definitionsPrefix + name
}

// RefName returns the definition name a $ref points at, or "" for refs
// outside of the definitions section.
func RefName(ref string) string {
	if len(ref) <= len(definitionsPrefix) || ref[:len(definitionsPrefix)] != definitionsPrefix {
		return ""
	}
	return ref[len(definitionsPrefix):]
}

// TypeSchema builds a fragment for typeName: a $ref when complex, a plain
// type otherwise.
func TypeSchema(typeName string, complex bool) *Schema {
	if complex {
		return &Schema{Ref: RefTo(typeName)}
	}
	return &Schema{Type: typeName}
}

// ArrayOf wraps items in an array fragment.
func ArrayOf(items *Schema) *Schema {
	return &Schema{Type: "array", Items: items}
}

// Refs returns every definition name referenced by the document, in no
// particular order and without duplicates.
func (d *Document) Refs() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s *Schema) {
		for ; s != nil; s = s.Items {
			if name := RefName(s.Ref); name != "" && !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}

	for _, item := range d.Paths {
		for _, op := range item {
			for _, p := range op.Parameters {
				add(p.Schema)
			}
			for _, r := range op.Responses {
				add(r.Schema)
			}
		}
	}
	for _, def := range d.Definitions {
		for _, p := range def.Properties {
			add(p)
		}
		for _, p := range def.AllOf {
			add(p)
		}
	}
	return out
}

// DanglingRefs returns the sorted names of referenced definitions missing
// from the definitions section.
func (d *Document) DanglingRefs() []string {
	var out []string
	for _, name := range d.Refs() {
		if _, ok := d.Definitions[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
