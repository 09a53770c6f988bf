// Package doc holds the documentation nodes produced by an annotation
// parser and the lookups the scraper runs over them.
package doc

type Kind string

const (
	KindFunction Kind = "function"
	KindTypedef  Kind = "typedef"
	KindMember   Kind = "member"
)

// Node is one parsed documentation block.
type Node struct {
	Kind        Kind      `yaml:"kind"`
	Name        string    `yaml:"name,omitempty"`
	Longname    string    `yaml:"longname,omitempty"`
	Comment     string    `yaml:"-"` // raw comment text, including tag markers
	Summary     string    `yaml:"summary,omitempty"`
	Description string    `yaml:"description,omitempty"`
	Tags        []Tag     `yaml:"tags,omitempty"`
	Params      []Param   `yaml:"params,omitempty"`
	Properties  []Node    `yaml:"properties,omitempty"`
	Type        *TypeHint `yaml:"type,omitempty"`
}

// TypeHint lists the type names of a `{...}` type expression.
type TypeHint struct {
	Names []string `yaml:"names,flow"`
}

// First returns the first declared type name or "".
func (t *TypeHint) First() string {
	if t == nil || len(t.Names) == 0 {
		return ""
	}
	return t.Names[0]
}

type Param struct {
	Name        string    `yaml:"name"`
	Type        *TypeHint `yaml:"type,omitempty"`
	Description string    `yaml:"description,omitempty"`
}

// Parser turns documentation source files into nodes.
type Parser interface {
	ParseFiles(paths ...string) ([]Node, error)
}
