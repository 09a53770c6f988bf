// Package golang holds the helpers used to render Go output files.
package golang

import (
	"golang.org/x/tools/imports"
)

// Format gofmts src and fixes its import block.
func Format(src []byte) ([]byte, error) {
	return imports.Process("swagger_gen.go", src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
}
