package doc

import "strings"

type TagKind int

const (
	TagOther TagKind = iota
	TagSwagger
	TagTag
	TagResponse
	TagParam
	TagRequired
	TagID
	TagSummary
	TagTypedef
	TagProperty
)

var tagKinds = map[string]TagKind{
	"swagger":  TagSwagger,
	"tag":      TagTag,
	"response": TagResponse,
	"param":    TagParam,
	"arg":      TagParam,
	"argument": TagParam,
	"required": TagRequired,
	"id":       TagID,
	"summary":  TagSummary,
	"typedef":  TagTypedef,
	"property": TagProperty,
	"prop":     TagProperty,
}

var tagTitles = map[TagKind]string{
	TagSwagger:  "swagger",
	TagTag:      "tag",
	TagResponse: "response",
	TagParam:    "param",
	TagRequired: "required",
	TagID:       "id",
	TagSummary:  "summary",
	TagTypedef:  "typedef",
	TagProperty: "property",
}

func (k TagKind) String() string {
	if title, ok := tagTitles[k]; ok {
		return title
	}
	return "other"
}

// Tag is one `@title text` directive of a documentation block.
type Tag struct {
	Kind  TagKind `yaml:"-"`
	Title string  `yaml:"title"`
	Text  string  `yaml:"text,omitempty"`
}

// NewTag classifies a raw tag title. Titles are matched case-insensitively,
// the original spelling is kept in Title.
func NewTag(title, text string) Tag {
	return Tag{
		Kind:  KindOfTitle(title),
		Title: title,
		Text:  text,
	}
}

func KindOfTitle(title string) TagKind {
	if k, ok := tagKinds[strings.ToLower(strings.TrimSpace(title))]; ok {
		return k
	}
	return TagOther
}

// HasTag reports whether the node carries at least one tag of kind.
func (n *Node) HasTag(kind TagKind) bool {
	return len(TagsWithKind(n, kind)) > 0
}
