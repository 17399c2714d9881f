// Package common holds the record export writers shared by every command.
package common

import (
	"path/filepath"
	"strings"

	"fjacquet/receivables-xlsx/internal/models"
)

// DefaultSheetName is the worksheet that receives the records.
const DefaultSheetName = "Pendências"

// Headers is the fixed column order of every export.
var Headers = []string{
	"Código Cliente",
	"Cliente",
	"Telefone",
	"Cidade",
	"Documento",
	"Emissão",
	"Vencimento",
	"ATS",
	"Tipo",
	"Boleto",
	"Valor Documento",
	"Juros",
	"Multa",
	"Tarifa",
	"Valor Total",
}

// Format is an export file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// IsValid reports whether f is a supported export format.
func (f Format) IsValid() bool {
	return f == FormatXLSX || f == FormatCSV
}

// FormatForPath picks the format from the output file extension, falling back to
// fallback for anything that is neither .xlsx nor .csv.
func FormatForPath(path string, fallback Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX
	case ".csv":
		return FormatCSV
	}
	return fallback
}

// rowValues lays a record out in Headers order. Amounts stay numeric.
func rowValues(r models.DetailRecord) []interface{} {
	row := []interface{}{
		r.Party.PartyID,
		r.Party.Name,
		r.Party.Phone,
		r.Party.City,
		r.DocumentID,
		r.IssueDate,
		r.DueDate,
		r.Aging,
		string(r.Kind),
		r.BillingRef,
	}
	for _, amount := range r.Amounts() {
		// Spreadsheet cells hold float64; exact values stay in the CSV export.
		row = append(row, amount.InexactFloat64())
	}
	return row
}
