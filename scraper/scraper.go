// Package scraper builds a Swagger 2.0 document from the documentation
// comments of route handlers.
//
// Every route handler points at its documentation with a file hint,
// `@fileHint: docs/users.go::list;`, placed in its source (or its route
// name or string value). The hinted file is parsed for a comment block
// carrying `@swagger` (and `@id list`), which becomes the operation.
// Types referenced from parameters and responses are resolved from
// `@typedef` blocks into definitions.
package scraper

import (
	"fmt"

	"github.com/kolah/swagscrape/doc"
	"github.com/kolah/swagscrape/internal/annotations"
	"github.com/kolah/swagscrape/internal/schema"
	"github.com/kolah/swagscrape/routes"
	"github.com/kolah/swagscrape/swagerrors"
	"github.com/kolah/swagscrape/swagger"
)

// Scraper holds configuration only and may be reused; every Document call
// owns its own state.
type Scraper struct {
	provider   routes.Provider
	baseFolder string
	common     []string
	parser     doc.Parser
	logger     Logger
	base       *swagger.Document
}

// Result is a generated document and the diagnostics collected while
// building it.
type Result struct {
	Document *swagger.Document
	Warnings []string
}

func New(provider routes.Provider, opts ...Option) (*Scraper, error) {
	if provider == nil {
		return nil, &swagerrors.ConfigError{Option: "routes", Message: "route provider cannot be empty"}
	}

	s := &Scraper{
		provider: provider,
		parser:   annotations.New(),
		logger:   NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Document scrapes every route and assembles the document. Malformed file
// hints and unresolvable parent types abort generation; anything else that
// cannot be documented is skipped and reported in Result.Warnings.
func (s *Scraper) Document(info swagger.Info) (*Result, error) {
	sess := newSession(s)

	var common []doc.Node
	if len(s.common) > 0 {
		nodes, err := s.parser.ParseFiles(s.common...)
		if err != nil {
			return nil, fmt.Errorf("parsing common models: %w", err)
		}
		common = nodes
	}

	endpoints, err := sess.endpoints()
	if err != nil {
		return nil, err
	}

	out := swagger.New(info)
	s.applyBase(out)

	var refs []schema.ModelRef
	for _, ep := range endpoints {
		op, found := toOperation(ep)
		if op == nil {
			s.logger.Debug("skipping undocumented endpoint", "method", ep.Method, "path", ep.Paths[0])
			continue
		}
		for _, p := range ep.Paths {
			out.SetOperation(p, ep.Method, op)
		}
		refs = append(refs, found...)
	}

	resolver := schema.NewResolver()
	for _, ref := range schema.DedupRefs(refs) {
		s.logger.Debug("resolving model", "name", ref.Name, "source", ref.Source)
		defs, err := resolver.Resolve(ref, common)
		if err != nil {
			return nil, fmt.Errorf("resolving model %s: %w", ref.Name, err)
		}
		for _, def := range defs {
			out.Definitions[def.Title] = def
		}
	}
	for _, name := range out.DanglingRefs() {
		sess.warn(fmt.Sprintf("cannot find the definition for: %s", name))
	}

	return &Result{Document: out, Warnings: sess.warnings}, nil
}

func (s *Scraper) applyBase(d *swagger.Document) {
	if s.base == nil {
		return
	}
	if s.base.Host != "" {
		d.Host = s.base.Host
	}
	if s.base.BasePath != "" {
		d.BasePath = s.base.BasePath
	}
	if len(s.base.Schemes) > 0 {
		d.Schemes = s.base.Schemes
	}
	if len(s.base.Consumes) > 0 {
		d.Consumes = s.base.Consumes
	}
	if len(s.base.Produces) > 0 {
		d.Produces = s.base.Produces
	}
}
