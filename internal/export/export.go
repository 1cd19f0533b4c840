// Package export writes transactions as CSV files and XLSX workbooks.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/fintrack/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// swagger:enum Format
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

var ErrUnknownFormat = errors.New("format must be either 'csv' or 'xlsx'")

// sheet is the name of the worksheet in XLSX exports.
const sheet = "Transactions"

// Columns are the column headers of exports, in order.
var Columns = []string{"Date", "Type", "Category", "Amount", "Payment method", "Notes"}

// ParseFormat returns the format for its name. An empty name is CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", CSV:
		return CSV, nil
	case XLSX:
		return XLSX, nil
	}

	return "", ErrUnknownFormat
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == XLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename returns the name for a download of the format.
func (f Format) Filename() string {
	return fmt.Sprintf("transactions.%s", f)
}

// Write writes the transactions to w in the format.
func Write(w io.Writer, f Format, transactions []models.Transaction) error {
	switch f {
	case CSV:
		return writeCSV(w, transactions)
	case XLSX:
		return writeXLSX(w, transactions)
	}

	return ErrUnknownFormat
}

func row(t models.Transaction) []string {
	return []string{
		t.Date.String(),
		string(t.Type),
		t.Category,
		t.Amount.String(),
		string(t.PaymentMethod),
		t.Notes,
	}
}

func writeCSV(w io.Writer, transactions []models.Transaction) error {
	writer := csv.NewWriter(w)

	err := writer.Write(Columns)
	if err != nil {
		return err
	}

	for _, t := range transactions {
		err := writer.Write(row(t))
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeXLSX(w io.Writer, transactions []models.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName("Sheet1", sheet)
	if err != nil {
		return err
	}

	err = f.SetSheetRow(sheet, "A1", &Columns)
	if err != nil {
		return err
	}

	for i, t := range transactions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		// Amounts are numbers so that spreadsheets can sum them
		amount, _ := t.Amount.Float64()
		values := []any{t.Date.String(), string(t.Type), t.Category, amount, string(t.PaymentMethod), t.Notes}

		err = f.SetSheetRow(sheet, cell, &values)
		if err != nil {
			return err
		}
	}

	return f.Write(w)
}
