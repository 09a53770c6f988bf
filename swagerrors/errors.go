// Package swagerrors provides the error types returned by swagscrape.
//
// Fatal conditions are reported through typed errors that match a sentinel
// with errors.Is and expose their detail through errors.As:
//
//	doc, err := s.Document(info)
//	var hintErr *swagerrors.HintError
//	if errors.As(err, &hintErr) {
//	    fmt.Println("bad hint:", hintErr.Hint)
//	}
package swagerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHint indicates a file hint with more than one "::".
	ErrMalformedHint = errors.New("malformed file hint")

	// ErrMissingParent indicates a typedef extends a type that cannot be found.
	ErrMissingParent = errors.New("missing parent type")

	// ErrCircularInheritance indicates a typedef (indirectly) extends itself.
	ErrCircularInheritance = errors.New("circular inheritance")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// HintError reports a file hint that cannot be split into file and doc id.
type HintError struct {
	Hint string
}

func (e *HintError) Error() string {
	return fmt.Sprintf("file hint with document identifier should only contain 1 :: (for: %s)", e.Hint)
}

func (e *HintError) Is(target error) bool {
	return target == ErrMalformedHint
}

// InheritanceError reports a typedef whose parent type cannot be resolved.
type InheritanceError struct {
	// Type is the inheriting typedef
	Type string
	// Parent is the declared parent type name
	Parent string
	// Circular is set when Parent is already being resolved further up
	Circular bool
}

func (e *InheritanceError) Error() string {
	if e.Circular {
		return fmt.Sprintf("circular inheritance: %s extends %s", e.Type, e.Parent)
	}
	return fmt.Sprintf("could not find parent type %s for %s", e.Parent, e.Type)
}

func (e *InheritanceError) Is(target error) bool {
	if target == ErrMissingParent {
		return !e.Circular
	}
	return target == ErrCircularInheritance && e.Circular
}

// ConfigError represents an invalid configuration option.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
