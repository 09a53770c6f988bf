package schema

import (
	"testing"

	"github.com/kolah/swagscrape/doc"
	"github.com/kolah/swagscrape/swagger"
	"github.com/stretchr/testify/require"
)

func TestIsComplex(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"number", false},
		{"Number", false},
		{" number   ", false},
		{"boolean", false},
		{"INTEGER", false},
		{"string", false},
		{"object", false},
		{"file", false},
		{"Widget", true},
		{"Array.<string>", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, IsComplex(tt.input))
		})
	}
}

func TestUnwrapArray(t *testing.T) {
	tests := []struct {
		input     string
		wantName  string
		wantArray bool
	}{
		{"Array.<Widget>", "Widget", true},
		{"[ 'Array' ].<string>", "string", true},
		{"Widget", "Widget", false},
		{"Array.<Widget", "Array.<Widget", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, array := UnwrapArray(tt.input)
			require.Equal(t, tt.wantName, name)
			require.Equal(t, tt.wantArray, array)
		})
	}
}

func TestParseParam(t *testing.T) {
	tests := []struct {
		name     string
		param    doc.Param
		wantOK   bool
		want     swagger.Parameter
		wantRefs []string
	}{
		{
			name:   "required path parameter",
			param:  doc.Param{Name: "id", Type: &doc.TypeHint{Names: []string{"string"}}, Description: "*(path) the id"},
			wantOK: true,
			want: swagger.Parameter{
				Name: "id", In: swagger.InPath, Required: true, Description: "the id",
				Schema: &swagger.Schema{Type: "string"},
			},
		},
		{
			name:   "optional query parameter",
			param:  doc.Param{Name: "filter", Description: "(query) optional filter"},
			wantOK: true,
			want: swagger.Parameter{
				Name: "filter", In: swagger.InQuery, Required: false, Description: "optional filter",
				Schema: &swagger.Schema{Type: "string"},
			},
		},
		{
			name:   "asterisk elsewhere does not make it required",
			param:  doc.Param{Name: "x", Description: "* (header) spaced"},
			wantOK: true,
			want: swagger.Parameter{
				Name: "x", In: swagger.InHeader, Description: "*  spaced",
				Schema: &swagger.Schema{Type: "string"},
			},
		},
		{
			name:   "complex body parameter",
			param:  doc.Param{Name: "body", Type: &doc.TypeHint{Names: []string{"Widget"}}, Description: "*(body) the\npayload"},
			wantOK: true,
			want: swagger.Parameter{
				Name: "body", In: swagger.InBody, Required: true, Description: "the payload",
				Schema: &swagger.Schema{Ref: "#/definitions/Widget"},
			},
			wantRefs: []string{"Widget"},
		},
		{
			name:   "array of complex",
			param:  doc.Param{Name: "items", Type: &doc.TypeHint{Names: []string{"Array.<Widget>"}}, Description: "(body) items"},
			wantOK: true,
			want: swagger.Parameter{
				Name: "items", In: swagger.InBody, Description: "items",
				Schema: &swagger.Schema{Type: "array", Items: &swagger.Schema{Ref: "#/definitions/Widget"}},
			},
			wantRefs: []string{"Widget"},
		},
		{
			name:   "array of primitive",
			param:  doc.Param{Name: "ids", Type: &doc.TypeHint{Names: []string{"Array.<integer>"}}, Description: "(query) ids"},
			wantOK: true,
			want: swagger.Parameter{
				Name: "ids", In: swagger.InQuery, Description: "ids",
				Schema: &swagger.Schema{Type: "array", Items: &swagger.Schema{Type: "integer"}},
			},
		},
		{
			name:   "last location checked wins",
			param:  doc.Param{Name: "both", Description: "(body) mentions (query) too"},
			wantOK: true,
			want: swagger.Parameter{
				Name: "both", In: swagger.InBody, Description: "mentions (query) too",
				Schema: &swagger.Schema{Type: "string"},
			},
		},
		{
			name:   "no location marker",
			param:  doc.Param{Name: "internal", Description: "not part of the API"},
			wantOK: false,
		},
		{
			name:   "empty description",
			param:  doc.Param{Name: "empty"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, refs, ok := ParseParam(tt.param)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantRefs, refs)
		})
	}
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantStatus string
		want       *swagger.Response
		wantRefs   []string
	}{
		{
			name:       "array of complex",
			text:       "200 {Widget[]} list of widgets",
			wantStatus: "200",
			want: &swagger.Response{
				Description: "list of widgets",
				Schema:      &swagger.Schema{Type: "array", Items: &swagger.Schema{Ref: "#/definitions/Widget"}},
			},
			wantRefs: []string{"Widget"},
		},
		{
			name:       "primitive",
			text:       "403 {string} forbidden message",
			wantStatus: "403",
			want: &swagger.Response{
				Description: "forbidden message",
				Schema:      &swagger.Schema{Type: "string"},
			},
		},
		{
			name:       "no schema",
			text:       "204 nothing\n  to see",
			wantStatus: "204",
			want:       &swagger.Response{Description: "nothing to see"},
		},
		{
			name:       "unterminated brace has no schema",
			text:       "500 {Error oops",
			wantStatus: "500",
			want:       &swagger.Response{Description: "{Error oops"},
		},
		{
			name:       "jsdoc array syntax",
			text:       "200 {Array.<Widget>} widgets",
			wantStatus: "200",
			want: &swagger.Response{
				Description: "widgets",
				Schema:      &swagger.Schema{Type: "array", Items: &swagger.Schema{Ref: "#/definitions/Widget"}},
			},
			wantRefs: []string{"Widget"},
		},
		{
			name:       "status only",
			text:       "default",
			wantStatus: "default",
			want:       &swagger.Response{Description: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp, refs := ParseResponse(tt.text)
			require.Equal(t, tt.wantStatus, status)
			require.Equal(t, tt.want, resp)
			require.Equal(t, tt.wantRefs, refs)
		})
	}
}

func TestParseResponseEmpty(t *testing.T) {
	status, resp, refs := ParseResponse("   ")
	require.Empty(t, status)
	require.Nil(t, resp)
	require.Nil(t, refs)
}

func TestDedupRefs(t *testing.T) {
	first := []doc.Node{{Name: "first"}}
	second := []doc.Node{{Name: "second"}}

	got := DedupRefs([]ModelRef{
		{Name: "Widget", Nodes: first},
		{Name: "Gadget", Nodes: second},
		{Name: "Widget", Nodes: second},
	})

	require.Len(t, got, 2)
	require.Equal(t, "Widget", got[0].Name)
	require.Equal(t, "first", got[0].Nodes[0].Name)
	require.Equal(t, "Gadget", got[1].Name)

	// the same name from another source is resolved separately
	got = DedupRefs([]ModelRef{
		{Name: "Widget", Source: "a.js", Nodes: first},
		{Name: "Widget", Source: "b.js", Nodes: second},
		{Name: "Widget", Source: "a.js", Nodes: second},
	})
	require.Len(t, got, 2)
	require.Equal(t, "a.js", got[0].Source)
	require.Equal(t, "b.js", got[1].Source)
}
