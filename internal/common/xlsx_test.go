package common

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestEncodeXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeXLSX(&buf, sampleRecords(), ""))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{DefaultSheetName}, f.GetSheetList())

	rows, err := f.GetRows(DefaultSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Headers, rows[0])
	assert.Equal(t, "123", rows[1][0])
	assert.Equal(t, "(11)98765-4321", rows[1][2])
	assert.Equal(t, "01/01/2024", rows[1][5])
	assert.Equal(t, "5001", rows[1][9])

	cellType, err := f.GetCellType(DefaultSheetName, "O2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
	assert.NotEqual(t, excelize.CellTypeInlineString, cellType)

	total, err := f.GetCellValue(DefaultSheetName, "O2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1012.5", total)

	ref, err := f.GetCellValue(DefaultSheetName, "J3")
	require.NoError(t, err)
	assert.Equal(t, "", ref)
}

func TestEncodeXLSX_CustomSheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeXLSX(&buf, sampleRecords(), "Receivables"))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{"Receivables"}, f.GetSheetList())
}

func TestEncodeXLSX_InvalidSheetName(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeXLSX(&buf, sampleRecords(), "bad/name")
	assert.Error(t, err)
}

func TestWriteRecordsToXLSX(t *testing.T) {
	logger := logging.NewMockLogger()
	out := filepath.Join(t.TempDir(), "reports", "converted.xlsx")

	require.NoError(t, WriteRecordsToXLSX(sampleRecords(), out, DefaultSheetName, logger))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.True(t, logger.HasEntry("INFO", "Writing records to XLSX file"))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(DefaultSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestWriteRecordsToXLSX_EncodeFailureLeavesNoFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.xlsx")

	err := WriteRecordsToXLSX(sampleRecords(), out, "this sheet name is far longer than allowed", logging.NewMockLogger())
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestWriteRecordsToXLSX_NilRecords(t *testing.T) {
	err := WriteRecordsToXLSX(nil, filepath.Join(t.TempDir(), "out.xlsx"), "", nil)
	assert.Error(t, err)
}

func TestEncodeXLSX_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeXLSX(&buf, []models.DetailRecord{}, ""))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(DefaultSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteRecords_PicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultExportOptions()
	opts.Delimiter = ';'

	csvOut := filepath.Join(dir, "out.csv")
	require.NoError(t, WriteRecords(sampleRecords(), csvOut, opts, logging.NewMockLogger()))
	content, err := os.ReadFile(csvOut)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Código Cliente;Cliente")

	xlsxOut := filepath.Join(dir, "out.xlsx")
	require.NoError(t, WriteRecords(sampleRecords(), xlsxOut, opts, logging.NewMockLogger()))
	f, err := excelize.OpenFile(xlsxOut)
	require.NoError(t, err)
	_ = f.Close()

	opts.Format = FormatCSV
	noExt := filepath.Join(dir, "out")
	require.NoError(t, WriteRecords(sampleRecords(), noExt, opts, logging.NewMockLogger()))
	content, err = os.ReadFile(noExt)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Valor Total")
}
