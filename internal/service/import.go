package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/importer"
	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportResult reports what an import did.
type ImportResult struct {
	Created []models.Transaction

	// Skipped is the number of rows that had already been imported before
	Skipped int
}

// Import creates the transactions of the rows for owner.
//
// Rows whose import hash already belongs to a transaction of owner are
// skipped, so importing the same file twice creates no duplicates. Equal
// rows in one file are all created. If any row is invalid, nothing is
// created.
func (l *Ledger) Import(ctx context.Context, owner uuid.UUID, rows []importer.Row) (ImportResult, error) {
	result := ImportResult{Created: []models.Transaction{}}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := importHashes(tx, owner, rows)
		if err != nil {
			return err
		}

		for _, row := range rows {
			if existing[row.Transaction.ImportHash] {
				result.Skipped++
				continue
			}

			t := row.Transaction
			t.ID = uuid.Nil
			t.UserID = owner

			err := tx.Create(&t).Error
			var v *models.ValidationError
			if errors.As(err, &v) {
				return models.NewValidationError("file", fmt.Sprintf("error in line %d of the CSV: %s", row.Line, v))
			} else if err != nil {
				return err
			}

			result.Created = append(result.Created, t)
		}

		return nil
	})
	if err != nil {
		return ImportResult{Created: []models.Transaction{}}, err
	}

	for _, t := range result.Created {
		publish(ctx, l.events, events.TransactionCreated, owner, t.ID)
	}

	return result, nil
}

// importHashes returns the import hashes of the rows that transactions of
// owner already have.
func importHashes(tx *gorm.DB, owner uuid.UUID, rows []importer.Row) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(rows) == 0 {
		return existing, nil
	}

	hashes := make([]string, 0, len(rows))
	for _, row := range rows {
		hashes = append(hashes, row.Transaction.ImportHash)
	}

	var found []string
	err := tx.Model(&models.Transaction{}).
		Where("user_id = ? AND import_hash IN ?", owner, hashes).
		Distinct().
		Pluck("import_hash", &found).Error
	if err != nil {
		return nil, err
	}

	for _, h := range found {
		existing[h] = true
	}

	return existing, nil
}
