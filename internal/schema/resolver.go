package schema

import (
	"slices"

	"github.com/kolah/swagscrape/doc"
	"github.com/kolah/swagscrape/swagerrors"
	"github.com/kolah/swagscrape/swagger"
)

// Resolver turns typedef nodes into definitions. A Resolver is a
// single-request session: every definition is built once and later
// lookups of the same name return the memoised result. A name missing
// from one source is looked up again for refs from other sources.
type Resolver struct {
	defs     map[string]*swagger.Definition
	closures map[string][]string
	missing  map[sourced]bool
	active   map[string]bool
}

type sourced struct {
	source string
	name   string
}

func NewResolver() *Resolver {
	return &Resolver{
		defs:     make(map[string]*swagger.Definition),
		closures: make(map[string][]string),
		missing:  make(map[sourced]bool),
		active:   make(map[string]bool),
	}
}

// Resolve builds the definition for ref.Name, searching ref.Nodes and
// extra for typedefs. The result lists every definition the model depends
// on first and the model itself last. A model without a typedef yields nil;
// a typedef whose parent cannot be resolved is an error.
func (r *Resolver) Resolve(ref ModelRef, extra []doc.Node) ([]*swagger.Definition, error) {
	nodes := make([]doc.Node, 0, len(ref.Nodes)+len(extra))
	nodes = append(nodes, ref.Nodes...)
	nodes = append(nodes, extra...)

	names, err := r.resolve(ref.Source, ref.Name, nodes, nil)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}

	defs := make([]*swagger.Definition, 0, len(names))
	for _, title := range names {
		defs = append(defs, r.defs[title])
	}
	return defs, nil
}

// lineage holds the typedefs whose parent chain led to name.
func (r *Resolver) resolve(source, name string, nodes []doc.Node, lineage []string) ([]string, error) {
	if closure, ok := r.closures[name]; ok {
		return closure, nil
	}
	// re-entry: the frame already resolving name emits it
	key := sourced{source: source, name: name}
	if r.missing[key] || r.active[name] {
		return nil, nil
	}

	typedef := doc.FindTypedef(nodes, name)
	if typedef == nil {
		r.missing[key] = true
		return nil, nil
	}

	r.active[name] = true
	defer delete(r.active, name)

	def := swagger.NewDefinition(name)
	var closure titles

	for i := range typedef.Properties {
		prop := &typedef.Properties[i]
		t := classify(prop.Type)
		def.Properties[prop.Name] = t.schema(prop.Description)

		if t.complex {
			sub, err := r.resolve(source, t.name, nodes, nil)
			if err != nil {
				return nil, err
			}
			closure.add(sub...)
		}

		if prop.HasTag(doc.TagRequired) && !slices.Contains(def.Required, prop.Name) {
			def.Required = append(def.Required, prop.Name)
		}
	}

	if parent := typedef.Type.First(); parent != "" && IsComplex(parent) {
		lineage = append(slices.Clone(lineage), name)
		if slices.Contains(lineage, parent) {
			return nil, &swagerrors.InheritanceError{Type: name, Parent: parent, Circular: true}
		}
		// an active parent is referenced from one of its own properties
		if !r.active[parent] {
			sub, err := r.resolve(source, parent, nodes, lineage)
			if err != nil {
				return nil, err
			}
			if len(sub) == 0 {
				return nil, &swagerrors.InheritanceError{Type: name, Parent: parent}
			}
			closure.add(sub...)
		}
		def.AllOf = []*swagger.Schema{{Type: parent, Ref: swagger.RefTo(parent)}}
	}

	r.defs[name] = def
	closure.add(name)
	r.closures[name] = closure.list

	return closure.list, nil
}

// titles is an insertion ordered set of definition titles.
type titles struct {
	list []string
	seen map[string]bool
}

func (t *titles) add(names ...string) {
	if t.seen == nil {
		t.seen = make(map[string]bool)
	}
	for _, n := range names {
		if t.seen[n] {
			continue
		}
		t.seen[n] = true
		t.list = append(t.list, n)
	}
}
