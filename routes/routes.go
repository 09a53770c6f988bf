// Package routes lists the endpoints of an application so their handlers
// can be scraped for documentation.
package routes

import (
	"sort"
	"strings"
)

// Route is one registered endpoint. A route answering on several path
// templates lists all of them; the first one names the operation.
type Route struct {
	Paths   []string
	Method  string
	Handler any
}

// Provider enumerates the routes of an application.
type Provider interface {
	Routes() ([]Route, error)
}

// HandlerMap maps an HTTP method to path templates and their handlers.
// Handlers are typically functions or `@fileHint: ...;` strings.
type HandlerMap map[string]map[string]any

func (m HandlerMap) Routes() ([]Route, error) {
	methods := make([]string, 0, len(m))
	for method := range m {
		methods = append(methods, method)
	}
	sort.Strings(methods)

	var out []Route
	for _, method := range methods {
		paths := make([]string, 0, len(m[method]))
		for p := range m[method] {
			paths = append(paths, p)
		}
		sort.Strings(paths)

		for _, p := range paths {
			out = append(out, Route{
				Paths:   []string{ToSwaggerPath(p)},
				Method:  strings.ToLower(method),
				Handler: m[method][p],
			})
		}
	}
	return out, nil
}

// ToSwaggerPath rewrites router path parameters into swagger templates:
// `:id` and `{id:[0-9]+}` both become `{id}`.
func ToSwaggerPath(p string) string {
	var b strings.Builder
	b.Grow(len(p))

	for i := 0; i < len(p); i++ {
		switch c := p[i]; {
		case c == ':' && (i == 0 || p[i-1] == '/'):
			j := i + 1
			for j < len(p) && isParamChar(p[j]) {
				j++
			}
			if j == i+1 {
				b.WriteByte(c)
				continue
			}
			b.WriteString("{" + p[i+1:j] + "}")
			i = j - 1
		case c == '{':
			end := closingBrace(p, i)
			if end == -1 {
				b.WriteString(p[i:])
				return b.String()
			}
			name := p[i+1 : end]
			if colon := strings.IndexByte(name, ':'); colon != -1 {
				name = name[:colon]
			}
			b.WriteString("{" + name + "}")
			i = end
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isParamChar(c byte) bool {
	return c == '_' || c == '-' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// closingBrace returns the index of the brace closing the one at open,
// skipping braces nested inside a parameter regexp.
func closingBrace(p string, open int) int {
	depth := 0
	for i := open; i < len(p); i++ {
		switch p[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func sortRoutes(rs []Route) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Paths[0] != rs[j].Paths[0] {
			return rs[i].Paths[0] < rs[j].Paths[0]
		}
		return rs[i].Method < rs[j].Method
	})
}
