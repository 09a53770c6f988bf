package annotations

import (
	"strings"

	"github.com/kolah/swagscrape/doc"
	"go.yaml.in/yaml/v4"
)

// doclet is one entry of `jsdoc --explain` output.
type doclet struct {
	Comment      string        `yaml:"comment"`
	Kind         string        `yaml:"kind"`
	Name         string        `yaml:"name"`
	Longname     string        `yaml:"longname"`
	Summary      string        `yaml:"summary"`
	Description  string        `yaml:"description"`
	Undocumented bool          `yaml:"undocumented"`
	Tags         []docletTag   `yaml:"tags"`
	Params       []docletParam `yaml:"params"`
	Properties   []docletParam `yaml:"properties"`
	Type         *docletType   `yaml:"type"`
}

type docletTag struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type docletParam struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Type        *docletType `yaml:"type"`
	Tags        []docletTag `yaml:"tags"`
}

type docletType struct {
	Names []string `yaml:"names"`
}

func (t *docletType) hint() *doc.TypeHint {
	if t == nil || len(t.Names) == 0 {
		return nil
	}
	return &doc.TypeHint{Names: t.Names}
}

// parseDoclets decodes jsdoc explain JSON. Undocumented symbols carry no
// comment and are skipped.
func parseDoclets(src []byte) ([]doc.Node, error) {
	var doclets []doclet
	if err := yaml.Unmarshal(src, &doclets); err != nil {
		return nil, err
	}

	var nodes []doc.Node
	for _, d := range doclets {
		if d.Undocumented || d.Comment == "" {
			continue
		}

		n := doc.Node{
			Kind:        doc.Kind(d.Kind),
			Name:        d.Name,
			Longname:    d.Longname,
			Comment:     d.Comment,
			Summary:     d.Summary,
			Description: d.Description,
			Tags:        tags(d.Tags),
			Type:        d.Type.hint(),
		}
		for _, p := range d.Params {
			n.Params = append(n.Params, doc.Param{
				Name:        p.Name,
				Type:        p.Type.hint(),
				Description: p.Description,
			})
		}
		for _, p := range d.Properties {
			n.Properties = append(n.Properties, doc.Node{
				Kind:        doc.KindMember,
				Name:        p.Name,
				Longname:    p.Name,
				Description: p.Description,
				Type:        p.Type.hint(),
				Tags:        tags(p.Tags),
			})
		}
		attachRequired(&n)
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func tags(in []docletTag) []doc.Tag {
	var out []doc.Tag
	for _, t := range in {
		out = append(out, doc.NewTag(t.Title, t.Text))
	}
	return out
}

// attachRequired moves typedef-level `@required <name>` tags onto the
// property they name, since jsdoc keeps unknown tags on the doclet.
func attachRequired(n *doc.Node) {
	for _, t := range doc.TagsWithKind(n, doc.TagRequired) {
		name := strings.TrimSpace(t.Text)
		for i := range n.Properties {
			p := &n.Properties[i]
			if p.Name == name && !p.HasTag(doc.TagRequired) {
				p.Tags = append(p.Tags, t)
			}
		}
	}
}
