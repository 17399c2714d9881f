package common

import (
	"fmt"
	"io"

	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/models"

	"github.com/xuri/excelize/v2"
)

// EncodeXLSX writes a workbook with a header row and one row per record to w.
func EncodeXLSX(w io.Writer, records []models.DetailRecord, sheetName string) error {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("invalid sheet name '%s': %w", sheetName, err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("error writing header row: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := rowValues(rec)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// WriteRecordsToXLSX writes records to an .xlsx file, creating the parent directory.
func WriteRecordsToXLSX(records []models.DetailRecord, xlsxFile, sheetName string, logger logging.Logger) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to XLSX")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	logger.Info("Writing records to XLSX file",
		logging.Field{Key: logging.FieldFile, Value: xlsxFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	err := writeFile(xlsxFile, "XLSX", logger, func(w io.Writer) error {
		if err := EncodeXLSX(w, records, sheetName); err != nil {
			logger.WithError(err).Error("Failed to encode records as XLSX")
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Debug("Successfully wrote records to XLSX file",
		logging.Field{Key: logging.FieldFile, Value: xlsxFile})
	return nil
}
