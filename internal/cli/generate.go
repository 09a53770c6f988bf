package cli

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kolah/swagscrape/internal/codegen"
	"github.com/kolah/swagscrape/internal/config"
	"github.com/kolah/swagscrape/internal/loader"
	"github.com/kolah/swagscrape/routes"
	"github.com/kolah/swagscrape/scraper"
	"github.com/kolah/swagscrape/swagger"
	"github.com/spf13/cobra"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a swagger document from the annotated handlers of a route table",
		RunE:  runGenerate,
	}

	config.BindFlags(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	provider, err := routeProvider(cfg)
	if err != nil {
		return err
	}

	base, err := baseDocument(cmd, cfg)
	if err != nil {
		return err
	}

	s, err := scraper.New(provider,
		scraper.WithBaseFolder(cfg.BaseFolder),
		scraper.WithCommon(cfg.Common...),
		scraper.WithBaseDocument(base),
		scraper.WithLogger(scraper.NewSlogAdapter(newLogger(cmd))),
	)
	if err != nil {
		return err
	}

	result, err := s.Document(info(cfg, base))
	if err != nil {
		return fmt.Errorf("scraping routes: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	doc := result.Document
	cmd.PrintErrf("Scraped %s v%s\n", doc.Info.Title, doc.Info.Version)
	cmd.PrintErrf("  Paths: %d\n", len(doc.Paths))
	cmd.PrintErrf("  Definitions: %d\n", len(doc.Definitions))

	gen, err := codegen.New(cfg)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	out, err := gen.Generate(doc)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		fmt.Fprint(cmd.OutOrStdout(), out.Content)
		return nil
	}

	if dir := filepath.Dir(out.Filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(out.Filename, []byte(out.Content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out.Filename, err)
	}
	cmd.PrintErrf("Written: %s\n", out.Filename)

	return nil
}

// routeProvider merges the routes file with the inline routes, inline
// handlers winning. Methods are compared case-insensitively; within one
// source the lower-case spelling wins.
func routeProvider(cfg *config.Config) (routes.Provider, error) {
	m := make(routes.HandlerMap)
	merge := func(src routes.HandlerMap) {
		for _, method := range slices.Sorted(maps.Keys(src)) {
			key := strings.ToLower(method)
			if m[key] == nil {
				m[key] = make(map[string]any)
			}
			maps.Copy(m[key], src[method])
		}
	}

	if cfg.RoutesFile != "" {
		fromFile, err := loader.LoadRoutes(cfg.RoutesFile)
		if err != nil {
			return nil, err
		}
		merge(fromFile)
	}
	merge(cfg.InlineRoutes())

	return m, nil
}

// baseDocument loads the configured base document and applies the host and
// base path overrides. It returns nil when there is nothing to apply.
func baseDocument(cmd *cobra.Command, cfg *config.Config) (*swagger.Document, error) {
	var base *swagger.Document
	if cfg.BaseDocument != "" {
		result, err := loader.LoadFile(cfg.BaseDocument)
		if err != nil {
			return nil, err
		}
		for _, w := range result.Warnings {
			cmd.PrintErrf("Warning: %s\n", w)
		}
		base = result.Document
	}

	if cfg.Host == "" && cfg.BasePath == "" {
		return base, nil
	}
	if base == nil {
		base = &swagger.Document{}
	}
	if cfg.Host != "" {
		base.Host = cfg.Host
	}
	if cfg.BasePath != "" {
		base.BasePath = cfg.BasePath
	}
	return base, nil
}

func info(cfg *config.Config, base *swagger.Document) swagger.Info {
	var i swagger.Info
	if base != nil {
		i = base.Info
	}
	if cfg.Info.Title != "" {
		i.Title = cfg.Info.Title
	}
	if cfg.Info.Version != "" {
		i.Version = cfg.Info.Version
	}
	if cfg.Info.Description != "" {
		i.Description = cfg.Info.Description
	}
	return i
}
