package golang

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateFuncs returns the sprig text functions plus the Go naming
// helpers used by the embedded templates.
func TemplateFuncs() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["goName"] = Identifier
	funcs["goComment"] = GoComment
	return funcs
}

// GoComment turns s into line comments, one per line of s.
func GoComment(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = "// " + strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
