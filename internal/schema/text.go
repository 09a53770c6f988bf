package schema

import (
	"strings"

	"github.com/kolah/swagscrape/doc"
	"github.com/kolah/swagscrape/swagger"
)

// Checked in this order; when a description carries several markers the
// last one checked wins.
var parameterLocations = []swagger.ParameterLocation{
	swagger.InQuery,
	swagger.InPath,
	swagger.InHeader,
	swagger.InBody,
}

// ParseParam turns a documented parameter into a swagger parameter. It
// reports ok=false for parameters without a location marker, which are
// not part of the API. Complex type names are returned for resolution.
func ParseParam(p doc.Param) (param swagger.Parameter, refs []string, ok bool) {
	if p.Description == "" {
		return swagger.Parameter{}, nil, false
	}

	var (
		location swagger.ParameterLocation
		required bool
	)
	for _, loc := range parameterLocations {
		idx := strings.Index(p.Description, marker(loc))
		if idx == -1 {
			continue
		}
		location = loc
		required = idx != 0 && p.Description[idx-1] == '*'
	}
	if location == "" {
		return swagger.Parameter{}, nil, false
	}

	strip := marker(location)
	if required {
		strip = "*" + strip
	}
	description := strings.TrimSpace(strings.Replace(p.Description, strip, "", 1))

	t := classify(p.Type)
	if t.complex {
		refs = append(refs, t.name)
	}

	return swagger.Parameter{
		Name:        p.Name,
		In:          location,
		Required:    required,
		Description: FlattenText(description),
		Schema:      t.schema(""),
	}, refs, true
}

func marker(loc swagger.ParameterLocation) string {
	return "(" + string(loc) + ")"
}

// ParseResponse parses response tag text of the form
// `<status> {<Type>} <description>`. A type suffixed with [] is an array.
func ParseResponse(text string) (status string, resp *swagger.Response, refs []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil, nil
	}

	status = fields[0]
	description := strings.Join(fields[1:], " ")
	resp = &swagger.Response{Description: description}

	end := strings.Index(description, "}")
	if !strings.HasPrefix(description, "{") || end == -1 {
		return status, resp, nil
	}

	typeName := description[1:end]
	resp.Description = strings.TrimSpace(description[end+1:])

	array := strings.HasSuffix(typeName, "[]")
	if array {
		typeName = strings.TrimSuffix(typeName, "[]")
	} else {
		typeName, array = UnwrapArray(typeName)
	}

	t := typeRef{name: typeName, array: array, complex: IsComplex(typeName)}
	if t.complex {
		refs = append(refs, t.name)
	}
	resp.Schema = t.schema("")

	return status, resp, refs
}

// FlattenText joins multi-line tag text into one line.
func FlattenText(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
