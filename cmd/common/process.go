// Package common contains shared functionality for command handlers
package common

import (
	"fmt"

	"fjacquet/receivables-xlsx/internal/fileutils"
	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/parser"
)

// ResolveOutput returns output, or "converted_<input>.<ext>" next to the input when
// output is empty.
func ResolveOutput(inputFile, output, ext string) string {
	if output != "" {
		return output
	}
	return fileutils.DefaultOutputPath(inputFile, ext)
}

// ProcessFile validates (optionally) and converts a single file, returning the
// number of records written.
func ProcessFile(p parser.FullParser, inputFile, outputFile string, validate bool, log logging.Logger) (int, error) {
	p.SetLogger(log)

	if validate {
		log.Info("Validating format...", logging.Field{Key: logging.FieldFile, Value: inputFile})
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return 0, fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return 0, fmt.Errorf("the file is not in a valid format: %s", inputFile)
		}
		log.Info("Validation successful.")
	}

	count, err := p.ConvertFile(inputFile, outputFile)
	if err != nil {
		return 0, err
	}

	log.Info("Conversion completed successfully!",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: count})
	return count, nil
}
