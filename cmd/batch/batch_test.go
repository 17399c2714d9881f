package batch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/receivables-xlsx/cmd/batch"
	"fjacquet/receivables-xlsx/cmd/root"
	"fjacquet/receivables-xlsx/internal/config"
	"fjacquet/receivables-xlsx/internal/container"
	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const report = "123 ACME CORP (11)98765-4321 SAO PAULO\n" +
	"1.1 01/01/2024 15/01/2024 14 BANC 5001 1.000,00 10,00 0,00 2,50 1.012,50\n"

func setup(t *testing.T) {
	t.Helper()
	cfg := &config.Config{
		Log:        config.LogConfig{Level: "info", Format: "text"},
		Export:     config.ExportConfig{Format: "csv", SheetName: "Pendências", CSVDelimiter: ","},
		Extraction: config.ExtractionConfig{MinLineLength: 5, GenericFallback: true},
		PDF:        config.PDFConfig{Extractor: config.ExtractorNative, PdftotextPath: "pdftotext"},
	}
	c, err := container.NewContainer(cfg,
		container.WithLogger(logging.NewMockLogger()),
		container.WithMarkerSource(&store.MockMarkerStore{}))
	require.NoError(t, err)

	originalContainer, originalFlags := root.AppContainer, root.SharedFlags
	root.AppContainer = c
	t.Cleanup(func() {
		root.AppContainer = originalContainer
		root.SharedFlags = originalFlags
	})
}

func TestBatchCommand_CommandMetadata(t *testing.T) {
	assert.Equal(t, "batch", batch.Cmd.Use)
	assert.Contains(t, batch.Cmd.Short, "Batch process")
	assert.NotNil(t, batch.Cmd.RunE)
}

func TestBatchCommand_LongDescription(t *testing.T) {
	assert.Contains(t, batch.Cmd.Long, "Batch process files")
	assert.Contains(t, batch.Cmd.Long, "input directory")
	assert.Contains(t, batch.Cmd.Long, "another directory")
	assert.Contains(t, batch.Cmd.Long, "Example")
}

func TestBatchCommand_ProcessesDirectory(t *testing.T) {
	setup(t)
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "sheets")
	require.NoError(t, os.WriteFile(filepath.Join(in, "a.txt"), []byte(report), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(in, "b.txt"), []byte("TOTAL GERAL 1,00\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.md"), []byte(report), 0600))

	root.SharedFlags.Input = in
	root.SharedFlags.Output = out

	var buf bytes.Buffer
	batch.Cmd.SetOut(&buf)
	require.NoError(t, batch.Cmd.RunE(batch.Cmd, nil))

	assert.FileExists(t, filepath.Join(out, "converted_a.csv"))
	assert.NoFileExists(t, filepath.Join(out, "converted_b.csv"))
	assert.NoFileExists(t, filepath.Join(out, "converted_notes.csv"))
	assert.Contains(t, buf.String(), "EMPTY")
	assert.Contains(t, buf.String(), "1 converted, 1 failed (1 without records), 1 records total")
}

func TestBatchCommand_AllFailed(t *testing.T) {
	setup(t)
	in := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "b.txt"), []byte("TOTAL GERAL 1,00\n"), 0600))

	root.SharedFlags.Input = in
	root.SharedFlags.Output = t.TempDir()

	batch.Cmd.SetOut(&bytes.Buffer{})
	err := batch.Cmd.RunE(batch.Cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no file in")
}

func TestBatchCommand_MissingInput(t *testing.T) {
	setup(t)
	root.SharedFlags.Input = ""
	err := batch.Cmd.RunE(batch.Cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input")
}
