package parser

import (
	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/reportparser"
)

// Parser reads a source document and extracts its detail records.
type Parser interface {
	// ParseFile reads the whole document at filePath. A document with no recognizable
	// records fails with a *parsererror.EmptyExtractionError.
	ParseFile(filePath string) (*reportparser.Result, error)
}

// Validator checks whether a file looks like something the parser can read.
type Validator interface {
	ValidateFormat(filePath string) (bool, error)
}

// FileConverter converts one input file into one export file.
type FileConverter interface {
	// ConvertFile returns the number of records written.
	ConvertFile(inputFile, outputFile string) (int, error)
}

// Inspector reports the classification of every line without exporting.
type Inspector interface {
	InspectFile(filePath string) ([]reportparser.LineReport, error)
}

// LoggerConfigurable lets callers swap a parser's logger.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser is everything a command needs from a parser.
type FullParser interface {
	Parser
	Validator
	FileConverter
	Inspector
	LoggerConfigurable
}
