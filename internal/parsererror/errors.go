// Package parsererror defines the error types surfaced by the extraction pipeline.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrEmptyExtraction is matched by every EmptyExtractionError.
var ErrEmptyExtraction = errors.New("input format not recognized")

// EmptyExtractionError reports a scan that completed without producing a single record.
type EmptyExtractionError struct {
	FilePath     string
	Pages        int
	Lines        int
	Unclassified int
}

func (e *EmptyExtractionError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("no records extracted from '%s' (%d pages, %d lines, %d unclassified): %v",
			e.FilePath, e.Pages, e.Lines, e.Unclassified, ErrEmptyExtraction)
	}
	return fmt.Sprintf("no records extracted (%d pages, %d lines, %d unclassified): %v",
		e.Pages, e.Lines, e.Unclassified, ErrEmptyExtraction)
}

func (e *EmptyExtractionError) Is(target error) bool {
	return target == ErrEmptyExtraction
}

// MalformedAmountError describes an amount field that could not be parsed. It is
// non-fatal: the field degrades to zero and the record is kept.
type MalformedAmountError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedAmountError) Error() string {
	return fmt.Sprintf("malformed amount %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *MalformedAmountError) Unwrap() error {
	return e.Err
}

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
	Err                  error
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// ExportError wraps a failure while writing the tabular output.
type ExportError struct {
	FilePath string
	Format   string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export %s to '%s': %v", e.Format, e.FilePath, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
