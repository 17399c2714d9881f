package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/models"
)

// ExportOptions controls how records are written.
type ExportOptions struct {
	// Format is used when the output path has no recognized extension.
	Format    Format
	SheetName string
	Delimiter rune
}

// DefaultExportOptions writes .xlsx files to the default sheet.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{Format: FormatXLSX, SheetName: DefaultSheetName, Delimiter: DefaultDelimiter}
}

// WriteRecords writes records to outputFile in the format implied by its extension.
func WriteRecords(records []models.DetailRecord, outputFile string, opts ExportOptions, logger logging.Logger) error {
	fallback := opts.Format
	if !fallback.IsValid() {
		fallback = FormatXLSX
	}

	switch FormatForPath(outputFile, fallback) {
	case FormatCSV:
		return WriteRecordsToCSV(records, outputFile, opts.Delimiter, logger)
	case FormatXLSX:
		return WriteRecordsToXLSX(records, outputFile, opts.SheetName, logger)
	default:
		return fmt.Errorf("unsupported export format for '%s'", outputFile)
	}
}

// writeFile creates path, and its parent directory, and encodes into it. A failed
// encode or close removes the incomplete file.
func writeFile(path, kind string, logger logging.Logger, encode func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path) // #nosec G304 -- output path chosen by the user
	if err != nil {
		logger.WithError(err).Error("Failed to create output file")
		return fmt.Errorf("error creating %s file: %w", kind, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing %s file: %w", kind, cerr)
		}
		if err == nil {
			return
		}
		if rerr := os.Remove(path); rerr != nil && !os.IsNotExist(rerr) {
			logger.WithError(rerr).Warn("Failed to remove incomplete file",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}()

	return encode(file)
}
