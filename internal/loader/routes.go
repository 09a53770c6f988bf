package loader

import (
	"fmt"
	"os"

	"github.com/kolah/swagscrape/routes"
	"go.yaml.in/yaml/v4"
)

// LoadRoutes reads a route manifest: a YAML (or JSON) mapping of method to
// path to handler reference, usually a `@fileHint: ...;` string.
//
//	get:
//	  /users: "@fileHint: docs/users.go::list;"
func LoadRoutes(path string) (routes.HandlerMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading routes file: %w", err)
	}

	var manifest map[string]map[string]string
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("decoding routes file %s: %w", path, err)
	}

	return HandlerMap(manifest), nil
}

// HandlerMap converts string handler references into a route provider.
func HandlerMap(manifest map[string]map[string]string) routes.HandlerMap {
	m := make(routes.HandlerMap, len(manifest))
	for method, paths := range manifest {
		handlers := make(map[string]any, len(paths))
		for p, h := range paths {
			handlers[p] = h
		}
		m[method] = handlers
	}
	return m
}
