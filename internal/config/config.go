package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/kolah/swagscrape/routes"
	"github.com/kolah/swagscrape/swagerrors"
	"github.com/spf13/cobra"
)

const DefaultFile = "swagscrape.yaml"

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatGo   = "go"
)

var formats = []string{FormatJSON, FormatYAML, FormatGo}

type Config struct {
	BaseFolder   string         `koanf:"base-folder"`
	Routes       []RouteConfig  `koanf:"routes"`
	RoutesFile   string         `koanf:"routes-file"`
	Common       []string       `koanf:"common"`
	BaseDocument string         `koanf:"base-document"`
	Info         InfoConfig     `koanf:"info"`
	Host         string         `koanf:"host"`
	BasePath     string         `koanf:"base-path"`
	Output       string         `koanf:"output"`
	Format       string         `koanf:"format"`
	Package      string         `koanf:"package"`
	Templates    TemplateConfig `koanf:"templates"`
}

// RouteConfig is an inline route. Handler is normally a file hint such as
// "@fileHint: docs/users.go::list;".
type RouteConfig struct {
	Method  string `koanf:"method"`
	Path    string `koanf:"path"`
	Handler string `koanf:"handler"`
}

type InfoConfig struct {
	Title       string `koanf:"title"`
	Version     string `koanf:"version"`
	Description string `koanf:"description"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

// BindFlags binds the generation flags to cmd.
func BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("config", "c", "", "Config file path (default: swagscrape.yaml)")
	flags.String("base-folder", "", "Folder file hints are relative to")
	flags.StringP("routes-file", "r", "", "Route manifest (method -> path -> handler)")
	flags.StringSlice("common", nil, "Annotation files with models shared by every endpoint")
	flags.StringP("base-document", "b", "", "Swagger 2.0 document providing info, host and basePath")
	flags.String("title", "", "API title")
	flags.String("api-version", "", "API version")
	flags.String("description", "", "API description")
	flags.String("host", "", "API host")
	flags.String("base-path", "", "API base path")
	flags.StringP("output", "o", "", "Output file (default: swagger.<format>)")
	flags.StringP("format", "f", "", "Output format: json, yaml, go")
	flags.StringP("package", "p", "", "Go package name for the go format")
	flags.String("templates", "", "Custom templates directory")
	flags.Bool("dry-run", false, "Print output without writing files")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	keys := map[string]string{
		"base-folder":   "base-folder",
		"routes-file":   "routes-file",
		"base-document": "base-document",
		"title":         "info.title",
		"api-version":   "info.version",
		"description":   "info.description",
		"host":          "host",
		"base-path":     "base-path",
		"output":        "output",
		"format":        "format",
		"package":       "package",
		"templates":     "templates.dir",
	}
	for flag, key := range keys {
		if v := getString(flag); v != "" {
			m[key] = v
		}
	}
	if v := getStringSlice("common"); len(v) > 0 {
		m["common"] = v
	}

	return m
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.Output == "" {
		switch c.Format {
		case FormatGo:
			c.Output = "swagger_gen.go"
		default:
			c.Output = "swagger." + c.Format
		}
	}
}

func (c *Config) Validate() error {
	if len(c.Routes) == 0 && c.RoutesFile == "" {
		return &swagerrors.ConfigError{Option: "routes", Message: "routes or routes-file is required"}
	}
	for i, r := range c.Routes {
		if r.Method == "" || r.Path == "" {
			return &swagerrors.ConfigError{
				Option:  fmt.Sprintf("routes[%d]", i),
				Message: "method and path are required",
			}
		}
	}

	if !slices.Contains(formats, c.Format) {
		return &swagerrors.ConfigError{
			Option:  "format",
			Value:   c.Format,
			Message: "valid: json, yaml, go",
		}
	}
	if c.Format == FormatGo && c.Package == "" {
		return &swagerrors.ConfigError{Option: "package", Message: "package name is required for the go format"}
	}

	return nil
}

// InlineRoutes returns the routes declared in the config file keyed by
// lower-cased method. A later entry for the same route replaces an earlier
// one.
func (c *Config) InlineRoutes() routes.HandlerMap {
	m := make(routes.HandlerMap)
	for _, r := range c.Routes {
		method := strings.ToLower(r.Method)
		if m[method] == nil {
			m[method] = make(map[string]any)
		}
		m[method][r.Path] = r.Handler
	}
	return m
}
