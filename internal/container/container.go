// Package container provides dependency injection for the receivables-xlsx application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/receivables-xlsx/internal/common"
	"fjacquet/receivables-xlsx/internal/config"
	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/parser"
	"fjacquet/receivables-xlsx/internal/pdfparser"
	"fjacquet/receivables-xlsx/internal/reportparser"
	"fjacquet/receivables-xlsx/internal/store"
)

// ParserType defines the types of parsers available.
type ParserType string

const (
	PDF  ParserType = "pdf"
	Text ParserType = "text"
)

// ParserTypeForFile maps a file extension to a parser type.
func ParserTypeForFile(path string) (ParserType, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF, nil
	case ".txt":
		return Text, nil
	default:
		return "", fmt.Errorf("unsupported input file type: %s", path)
	}
}

// Option overrides a dependency that NewContainer would otherwise build from config.
type Option func(*options)

type options struct {
	logger    logging.Logger
	markers   store.MarkerSource
	extractor pdfparser.PDFExtractor
}

// WithLogger injects the logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMarkerSource injects the noise marker source.
func WithMarkerSource(src store.MarkerSource) Option {
	return func(o *options) { o.markers = src }
}

// WithPDFExtractor injects the PDF text extractor.
func WithPDFExtractor(e pdfparser.PDFExtractor) Option {
	return func(o *options) { o.extractor = e }
}

// Container holds all application dependencies. It is immutable after creation;
// every field is reached through a getter.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	extractor *reportparser.Extractor

	parsers map[ParserType]parser.FullParser
}

// NewContainer creates and wires all application dependencies.
//
// Parameters:
//   - cfg: Application configuration
//   - opts: Optional dependency overrides, mostly for tests
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	markerSource := o.markers
	if markerSource == nil {
		markerSource = store.NewMarkerStore(cfg.Extraction.NoiseFile, logger)
	}
	fileMarkers, err := markerSource.LoadMarkers()
	if err != nil {
		return nil, fmt.Errorf("failed to load noise markers: %w", err)
	}

	markers := make([]string, 0, len(cfg.Extraction.NoiseMarkers)+len(fileMarkers))
	markers = append(markers, cfg.Extraction.NoiseMarkers...)
	markers = append(markers, fileMarkers...)

	extractor := reportparser.NewExtractor(reportparser.Options{
		MinLineLength:   cfg.Extraction.MinLineLength,
		GenericFallback: cfg.Extraction.GenericFallback,
		NoiseMarkers:    markers,
	}, logger)

	pdfExtractor := o.extractor
	if pdfExtractor == nil {
		pdfExtractor, err = newPDFExtractor(cfg.PDF)
		if err != nil {
			return nil, err
		}
	}

	export := common.ExportOptions{
		Format:    common.Format(cfg.Export.Format),
		SheetName: cfg.Export.SheetName,
		Delimiter: cfg.Delimiter(),
	}

	pdfParser := pdfparser.NewAdapter(logger, pdfExtractor, extractor)
	pdfParser.SetExportOptions(export)
	textParser := pdfparser.NewTextAdapter(logger, extractor)
	textParser.SetExportOptions(export)

	parsers := map[ParserType]parser.FullParser{
		PDF:  pdfParser,
		Text: textParser,
	}

	logger.Debug("Container initialized successfully",
		logging.Field{Key: "parsers_count", Value: len(parsers)},
		logging.Field{Key: "noise_markers", Value: len(extractor.Registry().Noise().Markers())},
		logging.Field{Key: "pdf_extractor", Value: cfg.PDF.Extractor})

	return &Container{
		logger:    logger,
		config:    cfg,
		extractor: extractor,
		parsers:   parsers,
	}, nil
}

func newPDFExtractor(cfg config.PDFConfig) (pdfparser.PDFExtractor, error) {
	switch cfg.Extractor {
	case "", config.ExtractorNative:
		return pdfparser.NewNativePDFExtractor(), nil
	case config.ExtractorPdftotext:
		return pdfparser.NewRealPDFExtractor(cfg.PdftotextPath), nil
	default:
		return nil, fmt.Errorf("unknown pdf extractor: %s", cfg.Extractor)
	}
}

// GetParser returns a parser for the given type.
func (c *Container) GetParser(pt ParserType) (parser.FullParser, error) {
	p, ok := c.parsers[pt]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", pt)
	}
	return p, nil
}

// ParserForFile returns the parser matching the file extension.
func (c *Container) ParserForFile(path string) (parser.FullParser, error) {
	pt, err := ParserTypeForFile(path)
	if err != nil {
		return nil, err
	}
	return c.GetParser(pt)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetExtractor returns the shared report extractor.
func (c *Container) GetExtractor() *reportparser.Extractor {
	return c.extractor
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
