// Package swagger contains the Swagger 2.0 shaped document produced by
// the scraper.
package swagger

const Version = "2.0"

type Document struct {
	Swagger     string                           `json:"swagger" yaml:"swagger"`
	Info        Info                             `json:"info" yaml:"info"`
	Host        string                           `json:"host,omitempty" yaml:"host,omitempty"`
	BasePath    string                           `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	Schemes     []string                         `json:"schemes" yaml:"schemes"`
	Consumes    []string                         `json:"consumes" yaml:"consumes"`
	Produces    []string                         `json:"produces" yaml:"produces"`
	Paths       map[string]map[string]*Operation `json:"paths" yaml:"paths"`
	Definitions map[string]*Definition           `json:"definitions" yaml:"definitions"`
}

type Info struct {
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	Version        string   `json:"version" yaml:"version"`
	TermsOfService string   `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	License        *License `json:"license,omitempty" yaml:"license,omitempty"`
}

type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

type Operation struct {
	ID          string               `json:"id" yaml:"id"`
	OperationID string               `json:"operationId" yaml:"operationId"`
	Summary     string               `json:"summary,omitempty" yaml:"summary,omitempty"`
	Tags        []string             `json:"tags" yaml:"tags"`
	Description string               `json:"description" yaml:"description"`
	Parameters  []Parameter          `json:"parameters" yaml:"parameters"`
	Responses   map[string]*Response `json:"responses" yaml:"responses"`
	Deprecated  bool                 `json:"deprecated" yaml:"deprecated"`
}

type ParameterLocation string

const (
	InQuery  ParameterLocation = "query"
	InPath   ParameterLocation = "path"
	InHeader ParameterLocation = "header"
	InBody   ParameterLocation = "body"
)

type Parameter struct {
	Name        string            `json:"name" yaml:"name"`
	In          ParameterLocation `json:"in" yaml:"in"`
	Required    bool              `json:"required" yaml:"required"`
	Description string            `json:"description" yaml:"description"`
	Schema      *Schema           `json:"schema" yaml:"schema"`
}

type Response struct {
	Description string  `json:"description" yaml:"description"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// New returns a document with the fixed swagscrape defaults.
func New(info Info) *Document {
	return &Document{
		Swagger:     Version,
		Info:        info,
		Schemes:     []string{"http", "https"},
		Consumes:    []string{"application/json"},
		Produces:    []string{"application/json"},
		Paths:       make(map[string]map[string]*Operation),
		Definitions: make(map[string]*Definition),
	}
}

// SetOperation stores op under path and method, replacing any previous one.
func (d *Document) SetOperation(path, method string, op *Operation) {
	item, ok := d.Paths[path]
	if !ok {
		item = make(map[string]*Operation)
		d.Paths[path] = item
	}
	item[method] = op
}
