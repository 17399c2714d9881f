package container

import (
	"errors"
	"path/filepath"
	"testing"

	"fjacquet/receivables-xlsx/internal/common"
	"fjacquet/receivables-xlsx/internal/config"
	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/pdfparser"
	"fjacquet/receivables-xlsx/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Log:    config.LogConfig{Level: "info", Format: "text"},
		Export: config.ExportConfig{Format: "xlsx", SheetName: "Pendências", CSVDelimiter: ";"},
		Extraction: config.ExtractionConfig{
			MinLineLength:   5,
			GenericFallback: true,
			NoiseMarkers:    []string{"EMITIDO EM"},
		},
		PDF: config.PDFConfig{Extractor: config.ExtractorNative, PdftotextPath: "pdftotext"},
	}
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		opts        []Option
		expectError string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: "configuration cannot be nil",
		},
		{
			name:   "valid config",
			config: testConfig(),
			opts:   []Option{WithLogger(logging.NewMockLogger()), WithMarkerSource(&store.MockMarkerStore{})},
		},
		{
			name:        "marker source failure",
			config:      testConfig(),
			opts:        []Option{WithLogger(logging.NewMockLogger()), WithMarkerSource(&store.MockMarkerStore{LoadMarkersError: errors.New("boom")})},
			expectError: "failed to load noise markers",
		},
		{
			name: "unknown pdf extractor",
			config: func() *config.Config {
				c := testConfig()
				c.PDF.Extractor = "ocr"
				return c
			}(),
			opts:        []Option{WithLogger(logging.NewMockLogger()), WithMarkerSource(&store.MockMarkerStore{})},
			expectError: "unknown pdf extractor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config, tt.opts...)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c.GetLogger())
			assert.Equal(t, tt.config, c.GetConfig())
			assert.NoError(t, c.Close())
		})
	}
}

func TestNewContainer_MergesNoiseMarkers(t *testing.T) {
	c, err := NewContainer(testConfig(),
		WithLogger(logging.NewMockLogger()),
		WithMarkerSource(&store.MockMarkerStore{Markers: []string{"vendedor"}}))
	require.NoError(t, err)

	markers := c.GetExtractor().Registry().Noise().Markers()
	assert.Contains(t, markers, "EMITIDO EM")
	assert.Contains(t, markers, "VENDEDOR")
	assert.Contains(t, markers, "TOTAL")
}

func TestNewContainer_MarkerFileFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Extraction.NoiseFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewContainer(cfg, WithLogger(logging.NewMockLogger()))
	assert.Error(t, err)
}

func TestNewContainer_ExportOptions(t *testing.T) {
	c, err := NewContainer(testConfig(), WithLogger(logging.NewMockLogger()), WithMarkerSource(&store.MockMarkerStore{}))
	require.NoError(t, err)

	for _, pt := range []ParserType{PDF, Text} {
		p, err := c.GetParser(pt)
		require.NoError(t, err)
		adapter, ok := p.(*pdfparser.Adapter)
		require.True(t, ok)
		assert.Equal(t, common.ExportOptions{Format: common.FormatXLSX, SheetName: "Pendências", Delimiter: ';'}, adapter.ExportOptions())
	}
}

func TestContainer_GetParser(t *testing.T) {
	mock := pdfparser.NewMockPDFExtractor([]string{"x"}, nil)
	c, err := NewContainer(testConfig(),
		WithLogger(logging.NewMockLogger()),
		WithMarkerSource(&store.MockMarkerStore{}),
		WithPDFExtractor(mock))
	require.NoError(t, err)

	tests := []struct {
		path    string
		want    ParserType
		wantErr bool
	}{
		{"report.pdf", PDF, false},
		{"REPORT.PDF", PDF, false},
		{"report.txt", Text, false},
		{"report.xlsx", "", true},
		{"report", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := c.ParserForFile(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			want, err := c.GetParser(tt.want)
			require.NoError(t, err)
			assert.Same(t, want, p)
		})
	}

	_, err = c.GetParser(ParserType("ofx"))
	assert.Error(t, err)

	p, err := c.GetParser(PDF)
	require.NoError(t, err)
	_, _ = p.InspectFile("a.pdf")
	assert.Equal(t, []string{"a.pdf"}, mock.Calls)
}

func TestNewContainer_PdftotextExtractor(t *testing.T) {
	cfg := testConfig()
	cfg.PDF.Extractor = config.ExtractorPdftotext
	cfg.PDF.PdftotextPath = "/opt/poppler/bin/pdftotext"

	e, err := newPDFExtractor(cfg.PDF)
	require.NoError(t, err)
	pdftotext, ok := e.(*pdfparser.RealPDFExtractor)
	require.True(t, ok)
	assert.Equal(t, "/opt/poppler/bin/pdftotext", pdftotext.Path)
}
