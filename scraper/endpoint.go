package scraper

import (
	"fmt"
	"path/filepath"

	"github.com/kolah/swagscrape/doc"
	"github.com/kolah/swagscrape/internal/hint"
)

// Endpoint is a route together with the documentation its file hint
// points at.
type Endpoint struct {
	// Paths lists the swagger path templates; the first names the operation
	Paths    []string
	Method   string
	Handler  any
	FileHint string
	DocID    string
	// Nodes are parsed from FileHint, empty without a hint
	Nodes []doc.Node
}

// session is the state of a single Document call.
type session struct {
	*Scraper
	docs     map[string][]doc.Node
	failed   map[string]bool
	warnings []string
}

func newSession(s *Scraper) *session {
	return &session{
		Scraper: s,
		docs:    make(map[string][]doc.Node),
		failed:  make(map[string]bool),
	}
}

func (s *session) warn(msg string) {
	s.logger.Warn(msg)
	s.warnings = append(s.warnings, msg)
}

// endpoints lists the routes and loads the documentation of each.
func (s *session) endpoints() ([]Endpoint, error) {
	rs, err := s.provider.Routes()
	if err != nil {
		return nil, fmt.Errorf("listing routes: %w", err)
	}

	out := make([]Endpoint, 0, len(rs))
	for _, r := range rs {
		if len(r.Paths) == 0 {
			continue
		}
		ep := Endpoint{Paths: r.Paths, Method: r.Method, Handler: r.Handler}

		src, err := hint.Source(r.Handler)
		if err != nil {
			s.warn(fmt.Sprintf("cannot read handler of %s %s: %v", r.Method, r.Paths[0], err))
			out = append(out, ep)
			continue
		}

		ep.FileHint, ep.DocID, err = hint.Split(hint.Extract(src))
		if err != nil {
			return nil, err
		}
		if ep.FileHint != "" {
			ep.Nodes = s.load(ep.FileHint)
		}

		s.logger.Debug("scraped endpoint",
			"method", ep.Method, "path", ep.Paths[0], "file", ep.FileHint, "id", ep.DocID)
		out = append(out, ep)
	}
	return out, nil
}

// load parses a hinted file once per session.
func (s *session) load(file string) []doc.Node {
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.baseFolder, file)
	}
	if nodes, ok := s.docs[path]; ok {
		return nodes
	}
	if s.failed[path] {
		return nil
	}

	nodes, err := s.parser.ParseFiles(path)
	if err != nil {
		s.failed[path] = true
		s.warn(fmt.Sprintf("cannot load documentation from %s: %v", file, err))
		return nil
	}
	s.docs[path] = nodes
	return nodes
}
