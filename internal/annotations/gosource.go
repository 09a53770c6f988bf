package annotations

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/kolah/swagscrape/doc"
)

// parseGo reads annotations from Go comments. A func doc comment gives a
// function node named after the func; any other comment group yields
// typedef nodes for its `@typedef` blocks or a function node when it
// carries the swagger marker.
func parseGo(path string, src []byte) ([]doc.Node, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	funcDocs := map[*ast.CommentGroup]*ast.FuncDecl{}
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Doc != nil {
			funcDocs[fn.Doc] = fn
		}
	}

	var nodes []doc.Node
	for _, group := range f.Comments {
		lines := groupLines(group)

		if fn, ok := funcDocs[group]; ok && !hasTypedef(lines) {
			n := parseBlock(lines)
			n.Name = fn.Name.Name
			n.Longname = funcLongname(fn)
			nodes = append(nodes, n)
			continue
		}

		if hasTypedef(lines) {
			for _, chunk := range splitTypedefs(lines) {
				nodes = append(nodes, parseBlock(chunk))
			}
			continue
		}

		if strings.Contains(strings.Join(lines, "\n"), doc.SwaggerMarker) {
			nodes = append(nodes, parseBlock(lines))
		}
	}
	return nodes, nil
}

func groupLines(group *ast.CommentGroup) []string {
	var lines []string
	for _, c := range group.List {
		lines = append(lines, commentLines(c.Text)...)
	}
	return lines
}

func funcLongname(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return fn.Name.Name
	}

	recv := fn.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}
	switch r := recv.(type) {
	case *ast.IndexExpr:
		recv = r.X
	case *ast.IndexListExpr:
		recv = r.X
	}
	if ident, ok := recv.(*ast.Ident); ok {
		return ident.Name + "." + fn.Name.Name
	}
	return fn.Name.Name
}
