package hint

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"runtime"
	"strings"
)

// Source returns the text a hint is searched in for a route handler:
// strings are used as-is, fmt.Stringer values by their String result and
// functions by their Go source, located through the runtime. Handlers
// without a textual representation yield "".
func Source(handler any) (string, error) {
	switch h := handler.(type) {
	case nil:
		return "", nil
	case string:
		return h, nil
	case fmt.Stringer:
		return h.String(), nil
	}

	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "", nil
	}

	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return "", nil
	}
	file, line := fn.FileLine(fn.Entry())
	// method values run through generated wrappers without a source file
	if !strings.HasSuffix(file, ".go") {
		return "", nil
	}

	return funcSource(file, line)
}

func funcSource(path string, line int) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading handler source: %w", err)
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("parsing handler source %s: %w", path, err)
	}

	var containing, starting ast.Node
	ast.Inspect(f, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.FuncDecl, *ast.FuncLit:
		default:
			return true
		}
		start, end := fset.Position(n.Pos()).Line, fset.Position(n.End()).Line
		if start <= line && line <= end {
			containing = n
			if start == line {
				starting = n
			}
		}
		return true
	})

	node := starting
	if node == nil {
		node = containing
	}
	if node == nil {
		return "", nil
	}

	from := node.Pos()
	if decl, ok := node.(*ast.FuncDecl); ok && decl.Doc != nil {
		from = decl.Doc.Pos()
	}
	return string(src[fset.Position(from).Offset:fset.Position(node.End()).Offset]), nil
}
