// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fjacquet/receivables-xlsx/internal/common"
	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/models"
)

// BaseParser holds what every parser shares: a logger and the export settings.
//
// Parsers embed it:
//
//	type MyParser struct {
//		parser.BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
	export common.ExportOptions
}

// NewBaseParser creates a BaseParser with default export options. A nil logger
// falls back to the default logger.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return BaseParser{
		logger: logger,
		export: common.DefaultExportOptions(),
	}
}

// SetLogger implements LoggerConfigurable. Nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// SetExportOptions replaces the export settings used by WriteRecords.
func (b *BaseParser) SetExportOptions(opts common.ExportOptions) {
	b.export = opts
}

// ExportOptions returns the current export settings.
func (b *BaseParser) ExportOptions() common.ExportOptions {
	return b.export
}

// WriteRecords writes records with the shared export writers.
func (b *BaseParser) WriteRecords(records []models.DetailRecord, outputFile string) error {
	b.logger.Debug("Writing records using common writer",
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return common.WriteRecords(records, outputFile, b.export, b.logger)
}
