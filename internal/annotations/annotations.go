// Package annotations parses documentation comments into doc nodes. Go
// sources are read with go/parser, jsdoc `explain` output is decoded as
// JSON and any other file is scanned for `/** ... */` blocks.
package annotations

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kolah/swagscrape/doc"
)

// Parser implements doc.Parser over the file formats above.
type Parser struct{}

var _ doc.Parser = Parser{}

func New() Parser {
	return Parser{}
}

// ParseFiles parses every path and returns the nodes in file order.
func (p Parser) ParseFiles(paths ...string) ([]doc.Node, error) {
	var nodes []doc.Node
	for _, path := range paths {
		parsed, err := p.parseFile(path)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, parsed...)
	}
	return nodes, nil
}

func (p Parser) parseFile(path string) ([]doc.Node, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		nodes, err := parseGo(path, src)
		if err != nil {
			return nil, fmt.Errorf("parsing Go source %s: %w", path, err)
		}
		return nodes, nil
	case ".json":
		nodes, err := parseDoclets(src)
		if err != nil {
			return nil, fmt.Errorf("decoding doclets %s: %w", path, err)
		}
		return nodes, nil
	default:
		return parseBlockComments(string(src)), nil
	}
}
