package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/receivables-xlsx/internal/logging"
	"fjacquet/receivables-xlsx/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV fields unless configured otherwise.
const DefaultDelimiter = ','

// RecordRow is the CSV shape of a record. Tags follow Headers.
type RecordRow struct {
	PartyID        string `csv:"Código Cliente"`
	Name           string `csv:"Cliente"`
	Phone          string `csv:"Telefone"`
	City           string `csv:"Cidade"`
	DocumentID     string `csv:"Documento"`
	IssueDate      string `csv:"Emissão"`
	DueDate        string `csv:"Vencimento"`
	Aging          int    `csv:"ATS"`
	Kind           string `csv:"Tipo"`
	BillingRef     string `csv:"Boleto"`
	DocumentAmount string `csv:"Valor Documento"`
	Interest       string `csv:"Juros"`
	Penalty        string `csv:"Multa"`
	Fee            string `csv:"Tarifa"`
	TotalAmount    string `csv:"Valor Total"`
}

// NewRecordRow converts a record, fixing amounts at two decimals.
func NewRecordRow(r models.DetailRecord) RecordRow {
	return RecordRow{
		PartyID:        r.Party.PartyID,
		Name:           r.Party.Name,
		Phone:          r.Party.Phone,
		City:           r.Party.City,
		DocumentID:     r.DocumentID,
		IssueDate:      r.IssueDate,
		DueDate:        r.DueDate,
		Aging:          r.Aging,
		Kind:           string(r.Kind),
		BillingRef:     r.BillingRef,
		DocumentAmount: r.DocumentAmount.StringFixed(2),
		Interest:       r.Interest.StringFixed(2),
		Penalty:        r.Penalty.StringFixed(2),
		Fee:            r.Fee.StringFixed(2),
		TotalAmount:    r.TotalAmount.StringFixed(2),
	}
}

// EncodeCSV writes a header line and one line per record to w.
func EncodeCSV(w io.Writer, records []models.DetailRecord, delimiter rune) error {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	rows := make([]RecordRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, NewRecordRow(r))
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteRecordsToCSV writes records to a CSV file, creating the parent directory.
func WriteRecordsToCSV(records []models.DetailRecord, csvFile string, delimiter rune, logger logging.Logger) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	logger.Info("Writing records to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: "delimiter", Value: string(delimiter)})

	return writeFile(csvFile, "CSV", logger, func(w io.Writer) error {
		if err := EncodeCSV(w, records, delimiter); err != nil {
			logger.WithError(err).Error("Failed to marshal records to CSV")
			return err
		}
		return nil
	})
}
