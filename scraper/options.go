package scraper

import (
	"github.com/kolah/swagscrape/doc"
	"github.com/kolah/swagscrape/swagerrors"
	"github.com/kolah/swagscrape/swagger"
)

// Option configures a Scraper.
type Option func(*Scraper) error

// WithBaseFolder sets the folder file hints are relative to. Defaults to
// the working directory.
func WithBaseFolder(dir string) Option {
	return func(s *Scraper) error {
		s.baseFolder = dir
		return nil
	}
}

// WithCommon adds annotation files whose typedefs are visible to every
// model, on top of the file a model was referenced from.
func WithCommon(paths ...string) Option {
	return func(s *Scraper) error {
		s.common = append(s.common, paths...)
		return nil
	}
}

// WithParser replaces the annotation parser.
func WithParser(p doc.Parser) Option {
	return func(s *Scraper) error {
		if p == nil {
			return &swagerrors.ConfigError{Option: "parser", Message: "parser cannot be nil"}
		}
		s.parser = p
		return nil
	}
}

// WithLogger sets the logger. Defaults to NopLogger.
func WithLogger(l Logger) Option {
	return func(s *Scraper) error {
		if l == nil {
			l = NopLogger{}
		}
		s.logger = l
		return nil
	}
}

// WithBaseDocument takes host, basePath, schemes, consumes and produces from
// base wherever they are set.
func WithBaseDocument(base *swagger.Document) Option {
	return func(s *Scraper) error {
		s.base = base
		return nil
	}
}
