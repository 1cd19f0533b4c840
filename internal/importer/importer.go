// Package importer parses files with transactions to import.
//
// The accepted CSV format is the one written by the export package, so an
// export can be imported again.
package importer

import (
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fintrack/backend/internal/export"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Column positions in the CSV file.
const (
	Date int = iota
	Type
	Category
	Amount
	PaymentMethod
	Notes
)

var (
	ErrHeader      = errors.New("the first line must contain the columns " + strings.Join(export.Columns, ", "))
	ErrColumnCount = fmt.Errorf("every line must have %d columns", len(export.Columns))
)

// Row is a parsed line of the file.
type Row struct {
	Line        int // Line in the file, starting at 1 for the header
	Transaction models.Transaction
}

// Parse parses a CSV file with transactions.
//
// The transactions are not validated beyond parsing, this happens when they
// are saved. Each has the import hash of its line set.
func Parse(f io.Reader) ([]Row, error) {
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return []Row{}, nil
	} else if err != nil {
		return nil, parseError(err)
	}

	if !equalFold(header, export.Columns) {
		return nil, lineError(1, ErrHeader)
	}

	rows := []Row{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(err)
		}

		line, _ := reader.FieldPos(0)

		if len(record) != len(export.Columns) {
			return nil, lineError(line, ErrColumnCount)
		}

		date, err := types.ParseDate(strings.TrimSpace(record[Date]))
		if err != nil {
			return nil, lineError(line, fmt.Errorf("could not parse date %q", record[Date]))
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(record[Amount]))
		if err != nil {
			return nil, lineError(line, fmt.Errorf("could not parse amount %q", record[Amount]))
		}

		rows = append(rows, Row{
			Line: line,
			Transaction: models.Transaction{
				Type:          models.TransactionType(strings.ToLower(strings.TrimSpace(record[Type]))),
				Amount:        amount,
				Category:      record[Category],
				Date:          date,
				PaymentMethod: models.PaymentMethod(strings.ToLower(strings.TrimSpace(record[PaymentMethod]))),
				Notes:         record[Notes],
				ImportHash:    hash(record),
			},
		})
	}

	return rows, nil
}

// hash returns the SHA256 hash of a record.
func hash(record []string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(strings.Join(record, ","))))
}

func equalFold(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		// Spreadsheet programs like to add a byte order mark
		if !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(a[i], "\ufeff")), b[i]) {
			return false
		}
	}

	return true
}

// lineError returns a validation error for the file that contains the line
// of the input the error occurred in.
func lineError(line int, err error) error {
	return models.NewValidationError("file", fmt.Sprintf("error in line %d of the CSV: %s", line, err))
}

// parseError converts an error of the CSV reader.
func parseError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return lineError(pe.StartLine, pe.Err)
	}

	return models.NewValidationError("file", fmt.Sprintf("could not read CSV: %s", err))
}
