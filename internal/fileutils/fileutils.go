// Package fileutils provides the file helpers shared by the commands and parsers.
package fileutils

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// OutputPrefix is prepended to the input name when no output path is given.
const OutputPrefix = "converted_"

var pdfMagic = []byte("%PDF-")

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// HasPDFHeader reports whether the file starts with the PDF magic bytes.
func HasPDFHeader(filePath string) (bool, error) {
	f, err := os.Open(filePath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return false, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return false, nil
	}
	return bytes.Equal(head, pdfMagic), nil
}

// DefaultOutputPath returns "converted_<name>.<ext>" next to the input file.
func DefaultOutputPath(inputFile, ext string) string {
	return filepath.Join(filepath.Dir(inputFile), OutputFileName(inputFile, ext))
}

// OutputFileName returns "converted_<name>.<ext>" for an input path.
func OutputFileName(inputFile, ext string) string {
	base := filepath.Base(inputFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return OutputPrefix + base + "." + strings.TrimPrefix(ext, ".")
}

// ListFilesWithExtensions returns the files under dirPath whose extension matches one
// of extensions, case-insensitively, sorted by path.
func ListFilesWithExtensions(dirPath string, extensions ...string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && wanted[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
