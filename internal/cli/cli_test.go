package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kolah/swagscrape/swagger"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := RootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func testdata(t *testing.T, name string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("testdata", name))
	require.NoError(t, err)
	return p
}

func TestGenerateWritesDocument(t *testing.T) {
	routesFile := testdata(t, "routes.yaml")
	baseFolder := testdata(t, "")
	baseDocument := testdata(t, "base.yaml")
	t.Chdir(t.TempDir())

	_, stderr, err := execute(t, "generate",
		"--routes-file", routesFile,
		"--base-folder", baseFolder,
		"--base-document", baseDocument,
		"--api-version", "3.0.0",
		"--base-path", "/v3",
		"--output", "out/swagger.json",
	)
	require.NoError(t, err)
	require.Contains(t, stderr, "Written: out/swagger.json")
	require.NotContains(t, stderr, "Warning:")

	data, err := os.ReadFile(filepath.Join("out", "swagger.json"))
	require.NoError(t, err)

	var doc swagger.Document
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, "Widget API", doc.Info.Title)
	require.Equal(t, "3.0.0", doc.Info.Version)
	require.Equal(t, "api.example.com", doc.Host)
	require.Equal(t, "/v3", doc.BasePath)
	require.Equal(t, []string{"https"}, doc.Schemes)

	list := doc.Paths["/widgets"]["get"]
	require.NotNil(t, list)
	require.Equal(t, "get_widgets", list.OperationID)
	require.Equal(t, "List widgets", list.Summary)
	require.Equal(t, []string{"widgets"}, list.Tags)
	require.Equal(t, "#/definitions/Widget", list.Responses["200"].Schema.Items.Ref)

	update := doc.Paths["/widgets/{id}"]["put"]
	require.NotNil(t, update)
	require.Equal(t, "put_widgetsid", update.OperationID)
	require.Len(t, update.Parameters, 2)
	require.Nil(t, update.Responses["204"].Schema)

	widget := doc.Definitions["Widget"]
	require.NotNil(t, widget)
	require.Equal(t, []string{"name"}, widget.Required)
	require.Contains(t, widget.Properties, "weight")
}

func TestGenerateDryRunGo(t *testing.T) {
	routesFile := testdata(t, "routes.yaml")
	baseFolder := testdata(t, "")
	t.Chdir(t.TempDir())

	stdout, _, err := execute(t, "generate",
		"--routes-file", routesFile,
		"--base-folder", baseFolder,
		"--format", "go",
		"--package", "apidocs",
		"--dry-run",
	)
	require.NoError(t, err)
	require.Contains(t, stdout, "package apidocs")
	require.Contains(t, stdout, `OperationGetWidgets = "get_widgets"`)
	require.Contains(t, stdout, `OperationPutWidgetsid = "put_widgetsid"`)

	_, err = os.Stat("swagger_gen.go")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateInlineRoutesOverrideFile(t *testing.T) {
	routesFile := testdata(t, "routes.yaml")
	baseFolder := testdata(t, "")
	dir := t.TempDir()
	t.Chdir(dir)

	config := `
routes-file: ` + routesFile + `
base-folder: ` + baseFolder + `
routes:
  - method: GET
    path: /widgets
    handler: "@fileHint: docs/missing.js::list;"
info:
  title: Inline
format: yaml
`
	require.NoError(t, os.WriteFile("swagscrape.yaml", []byte(config), 0644))

	stdout, stderr, err := execute(t, "generate", "--dry-run")
	require.NoError(t, err)
	require.Contains(t, stderr, "Warning: cannot load documentation from")
	require.Contains(t, stdout, "title: Inline")
	require.Contains(t, stdout, "put_widgetsid")
	require.NotContains(t, stdout, "get_widgets")
}

func TestGenerateErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := execute(t, "generate")
	require.ErrorContains(t, err, "routes or routes-file is required")

	_, _, err = execute(t, "generate", "--routes-file", "missing.yaml")
	require.ErrorContains(t, err, "reading routes file")

	require.NoError(t, os.WriteFile("routes.yaml", []byte("get:\n  /x: \"@fileHint: a.js::b::c;\"\n"), 0644))
	_, _, err = execute(t, "generate", "--routes-file", "routes.yaml")
	require.ErrorContains(t, err, "scraping routes")
}

func TestAnnotationsCommand(t *testing.T) {
	stdout, _, err := execute(t, "annotations", testdata(t, "docs/widgets.js"))
	require.NoError(t, err)
	require.Contains(t, stdout, "kind: typedef")
	require.Contains(t, stdout, "name: Widget")
	require.Contains(t, stdout, "title: swagger")

	_, _, err = execute(t, "annotations")
	require.Error(t, err)
}
