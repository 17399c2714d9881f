// Package validation checks command arguments before any work is done.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SupportedInputExtensions are the report types that can be converted.
var SupportedInputExtensions = []string{".pdf", ".txt"}

// IsValidPath checks if a given path exists and is a regular file or a directory.
func IsValidPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}

	return nil
}

// IsValidInputFile checks that path is an existing report file of a supported type.
func IsValidInputFile(path string) error {
	if err := IsValidPath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %s is a directory, use the batch command", path)
	}
	if !hasSupportedExtension(path) {
		return fmt.Errorf("unsupported input file type: %s. Supported types are %s",
			path, strings.Join(SupportedInputExtensions, ", "))
	}
	return nil
}

// IsValidInputDirectory checks that path is an existing directory.
func IsValidInputDirectory(path string) error {
	if err := IsValidPath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input %s is not a directory", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "xlsx", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'xlsx', 'csv'", format)
	}
}

// IsValidOutputPath checks that an explicit output file has a supported extension
// and is not an existing directory. An empty path is valid.
func IsValidOutputPath(path string) error {
	if path == "" {
		return nil
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("output %s is a directory", path)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fmt.Errorf("output file %s has no extension", path)
	}
	return IsValidOutputFormat(ext)
}

func hasSupportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedInputExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
