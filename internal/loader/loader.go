// Package loader reads the inputs of a generation run that are not
// annotations: the base Swagger document and route manifests.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kolah/swagscrape/swagger"
	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
)

type Result struct {
	Document *swagger.Document
	Version  string
	Warnings []string
}

// LoadFile reads a Swagger 2.0 document whose info, host, basePath,
// schemes, consumes and produces seed the generated document.
func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading base document: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	config := &datamodel.DocumentConfiguration{
		BasePath:            filepath.Dir(absPath),
		AllowFileReferences: true,
	}

	return loadWithConfig(data, config)
}

func Load(data []byte) (*Result, error) {
	return loadWithConfig(data, nil)
}

func loadWithConfig(data []byte, config *datamodel.DocumentConfiguration) (*Result, error) {
	var doc libopenapi.Document
	var err error

	if config != nil {
		doc, err = libopenapi.NewDocumentWithConfiguration(data, config)
	} else {
		doc, err = libopenapi.NewDocument(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing base document: %w", err)
	}

	version := doc.GetVersion()
	if !strings.HasPrefix(version, "2.") {
		return nil, fmt.Errorf("unsupported base document version: %s (only swagger 2.0 supported)", version)
	}

	model, err := doc.BuildV2Model()
	if err != nil {
		return nil, fmt.Errorf("building swagger model: %w", err)
	}

	result := &Result{
		Document: transform(&model.Model),
		Version:  version,
	}

	if model.Model.Paths != nil && model.Model.Paths.PathItems != nil && model.Model.Paths.PathItems.Len() > 0 {
		result.Warnings = append(result.Warnings, "base document paths are ignored; paths are scraped from routes")
	}
	if model.Model.Definitions != nil && model.Model.Definitions.Definitions != nil && model.Model.Definitions.Definitions.Len() > 0 {
		result.Warnings = append(result.Warnings, "base document definitions are ignored; definitions are resolved from typedefs")
	}

	return result, nil
}
