// Package codegen serializes a generated document into the configured
// output format.
package codegen

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kolah/swagscrape/internal/config"
	"github.com/kolah/swagscrape/internal/golang"
	spectarget "github.com/kolah/swagscrape/internal/targets/spec"
	"github.com/kolah/swagscrape/internal/templates"
	"github.com/kolah/swagscrape/swagger"
	embeddedtmpl "github.com/kolah/swagscrape/templates"
	"go.yaml.in/yaml/v4"
)

type Generator struct {
	config *config.Config
	engine templates.Engine
}

type Output struct {
	Filename string
	Content  string
}

func New(cfg *config.Config) (*Generator, error) {
	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir, golang.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	return &Generator{
		config: cfg,
		engine: engine,
	}, nil
}

func (g *Generator) Generate(doc *swagger.Document) (Output, error) {
	var (
		content []byte
		err     error
	)

	switch g.config.Format {
	case config.FormatYAML:
		content, err = marshalYAML(doc)
	case config.FormatGo:
		content, err = g.goSource(doc)
	default:
		content, err = marshalJSON(doc)
	}
	if err != nil {
		return Output{}, fmt.Errorf("generating %s output: %w", g.config.Format, err)
	}

	return Output{
		Filename: g.config.Output,
		Content:  string(content),
	}, nil
}

func marshalJSON(doc *swagger.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func marshalYAML(doc *swagger.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) goSource(doc *swagger.Document) ([]byte, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	content, err := spectarget.New().Generate(g.engine, doc, docJSON, g.config.Package)
	if err != nil {
		return nil, err
	}

	formatted, err := golang.Format([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("formatting: %w", err)
	}
	return formatted, nil
}
