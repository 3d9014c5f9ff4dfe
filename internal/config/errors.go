package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidConfig indicates a configuration that fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string

	// Line is the line number where the error occurred (1-based, 0 if unknown).
	Line int

	// Column is the column where the error occurred (1-based, 0 if unknown).
	Column int

	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes one invalid field.
type ValidationError struct {
	// Field is the path of the field, e.g. "binding[2].keys".
	Field string

	// Msg describes the problem.
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Unwrap returns ErrInvalidConfig for errors.Is support.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}
