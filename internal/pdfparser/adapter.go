// Package pdfparser reads receivables reports from PDF or plain-text files and feeds
// their pages to the report extractor.
package pdfparser

import (
	"errors"
	"os"
	"time"
	"unicode/utf8"

	"fjacquet/receivables-xlsx/internal/common"
	"fjacquet/receivables-xlsx/internal/currencyutils"
	"fjacquet/receivables-xlsx/internal/fileutils"
	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/models"
	"fjacquet/receivables-xlsx/internal/parser"
	"fjacquet/receivables-xlsx/internal/parsererror"
	"fjacquet/receivables-xlsx/internal/reportparser"
)

// Source formats handled by an Adapter.
const (
	FormatPDF  = "PDF"
	FormatText = "TXT"
)

// Adapter implements parser.FullParser on top of a PDFExtractor and a report extractor.
type Adapter struct {
	parser.BaseParser
	extractor PDFExtractor
	engine    *reportparser.Extractor
	format    string
}

// NewAdapter creates a PDF adapter. A nil extractor reads PDFs natively; a nil engine
// uses the default extraction options.
func NewAdapter(logger logging.Logger, extractor PDFExtractor, engine *reportparser.Extractor) *Adapter {
	if extractor == nil {
		extractor = NewNativePDFExtractor()
	}
	return newAdapter(logger, extractor, engine, FormatPDF)
}

// NewTextAdapter creates an adapter for reports already converted to text.
func NewTextAdapter(logger logging.Logger, engine *reportparser.Extractor) *Adapter {
	return newAdapter(logger, NewTextExtractor(), engine, FormatText)
}

func newAdapter(logger logging.Logger, extractor PDFExtractor, engine *reportparser.Extractor, format string) *Adapter {
	base := parser.NewBaseParser(logger)
	if engine == nil {
		engine = reportparser.NewExtractor(reportparser.DefaultOptions(), base.GetLogger())
	}
	return &Adapter{
		BaseParser: base,
		extractor:  extractor,
		engine:     engine,
		format:     format,
	}
}

// ParseFile extracts the pages of filePath and scans them. An unreadable source fails
// with *parsererror.InvalidFormatError before any line is scanned.
func (a *Adapter) ParseFile(filePath string) (*reportparser.Result, error) {
	start := time.Now()
	logger := a.GetLogger().WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldFormat, Value: a.format})

	texts, err := a.extractor.ExtractPages(filePath)
	if err != nil {
		logger.WithError(err).Error("Text extraction failed")
		return nil, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: a.format,
			Msg:            "could not extract text",
			Err:            err,
		}
	}
	logger.Debug("Extracted pages", logging.Field{Key: logging.FieldPages, Value: len(texts)})

	result, err := a.engine.ExtractTexts(texts)
	if err != nil {
		var empty *parsererror.EmptyExtractionError
		if errors.As(err, &empty) {
			empty.FilePath = filePath
		}
		logger.WithError(err).Warn("No records extracted")
		return nil, err
	}

	logger.Info("Extracted records",
		logging.Field{Key: logging.FieldScanID, Value: result.ScanID},
		logging.Field{Key: logging.FieldCount, Value: result.Count()},
		logging.Field{Key: logging.FieldPages, Value: result.Stats.Pages},
		logging.Field{Key: "orphaned", Value: result.Stats.Orphaned},
		logging.Field{Key: "unclassified", Value: result.Stats.Unclassified},
		logging.Field{Key: "malformed_amounts", Value: result.Stats.MalformedAmounts},
		logging.Field{Key: "total_amount", Value: currencyutils.FormatBRL(result.Total())},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	return result, nil
}

// ConvertFile parses inputFile and writes its records to outputFile.
func (a *Adapter) ConvertFile(inputFile, outputFile string) (int, error) {
	result, err := a.ParseFile(inputFile)
	if err != nil {
		return 0, err
	}

	if err := a.WriteRecords(result.Records, outputFile); err != nil {
		return 0, &parsererror.ExportError{
			FilePath: outputFile,
			Format:   string(common.FormatForPath(outputFile, a.ExportOptions().Format)),
			Err:      err,
		}
	}
	return result.Count(), nil
}

// ValidateFormat checks that the file exists and looks like this adapter's format.
func (a *Adapter) ValidateFormat(filePath string) (bool, error) {
	a.GetLogger().Debug("Validating format",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldFormat, Value: a.format})

	isPDF, err := fileutils.HasPDFHeader(filePath)
	if err != nil {
		return false, err
	}
	if a.format == FormatPDF {
		return isPDF, nil
	}
	if isPDF {
		return false, nil
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return false, err
	}
	return utf8.Valid(data), nil
}

// InspectFile classifies every line of filePath.
func (a *Adapter) InspectFile(filePath string) ([]reportparser.LineReport, error) {
	texts, err := a.extractor.ExtractPages(filePath)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: a.format,
			Msg:            "could not extract text",
			Err:            err,
		}
	}
	return a.engine.Inspect(models.PagesFromTexts(texts)), nil
}
