package service

import (
	"context"

	"github.com/fintrack/backend/internal/category"
	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionInput are the fields of a new transaction.
type TransactionInput struct {
	Type          models.TransactionType
	Amount        decimal.Decimal
	Category      string
	Date          types.Date
	PaymentMethod models.PaymentMethod
	Notes         string
}

// TransactionPatch holds the fields to change on a transaction.
// Nil fields are left unchanged.
type TransactionPatch struct {
	Type          *models.TransactionType
	Amount        *decimal.Decimal
	Category      *string
	Date          *types.Date
	PaymentMethod *models.PaymentMethod
	Notes         *string
}

// TransactionFilter restricts the transactions returned by List.
// Zero values do not filter.
type TransactionFilter struct {
	Type models.TransactionType

	// Category is a glob pattern matched against the normalized category,
	// e.g. "food*"
	Category string

	Year  *int
	Month *int
}

// Summary are the totals of a user's transactions in a period.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Savings decimal.Decimal
}

// Ledger manages the transactions of users.
type Ledger struct {
	db     *gorm.DB
	events events.Publisher
}

func NewLedger(db *gorm.DB, publisher events.Publisher) *Ledger {
	return &Ledger{db: db, events: publisher}
}

// Add records a new transaction for owner.
func (l *Ledger) Add(ctx context.Context, owner uuid.UUID, in TransactionInput) (models.Transaction, error) {
	t := models.Transaction{
		UserID:        owner,
		Type:          in.Type,
		Amount:        in.Amount,
		Category:      in.Category,
		Date:          in.Date,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}

	err := l.db.WithContext(ctx).Create(&t).Error
	if err != nil {
		return models.Transaction{}, err
	}

	publish(ctx, l.events, events.TransactionCreated, owner, t.ID)
	return t, nil
}

// Get returns a transaction of owner.
func (l *Ledger) Get(ctx context.Context, owner, id uuid.UUID) (models.Transaction, error) {
	var t models.Transaction
	err := l.db.WithContext(ctx).Where("user_id = ? AND id = ?", owner, id).First(&t).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return t, nil
}

// List returns the transactions of owner matching the filter, the most
// recent first.
func (l *Ledger) List(ctx context.Context, owner uuid.UUID, f TransactionFilter) ([]models.Transaction, error) {
	p, err := periodFilter(f.Year, f.Month)
	if err != nil {
		return nil, err
	}

	q := l.db.WithContext(ctx).Where("user_id = ?", owner)
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	var transactions []models.Transaction
	err = within(q, p).Order("date DESC, created_at DESC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	if f.Category == "" {
		return transactions, nil
	}

	pattern := category.Normalize(f.Category)
	matching := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if glob.Glob(pattern, t.Category) {
			matching = append(matching, t)
		}
	}

	return matching, nil
}

// Update changes the fields of a transaction of owner that are set in the
// patch. The updated transaction is validated as a whole.
func (l *Ledger) Update(ctx context.Context, owner, id uuid.UUID, patch TransactionPatch) (models.Transaction, error) {
	t, err := l.Get(ctx, owner, id)
	if err != nil {
		return models.Transaction{}, err
	}

	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.PaymentMethod != nil {
		t.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Notes != nil {
		t.Notes = *patch.Notes
	}

	err = l.db.WithContext(ctx).Save(&t).Error
	if err != nil {
		return models.Transaction{}, err
	}

	publish(ctx, l.events, events.TransactionUpdated, owner, t.ID)
	return t, nil
}

// Delete removes a transaction of owner.
func (l *Ledger) Delete(ctx context.Context, owner, id uuid.UUID) error {
	t, err := l.Get(ctx, owner, id)
	if err != nil {
		return err
	}

	err = l.db.WithContext(ctx).Delete(&t).Error
	if err != nil {
		return err
	}

	publish(ctx, l.events, events.TransactionDeleted, owner, t.ID)
	return nil
}

// Summary returns the income, expense and savings of owner in the year
// (and month) given. Without a year, all transactions are summed.
func (l *Ledger) Summary(ctx context.Context, owner uuid.UUID, year, month *int) (Summary, error) {
	p, err := periodFilter(year, month)
	if err != nil {
		return Summary{}, err
	}

	totals := make(map[models.TransactionType]decimal.Decimal, len(models.TransactionTypes))
	for _, typ := range models.TransactionTypes {
		var amounts []decimal.Decimal

		q := l.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ? AND type = ?", owner, typ)
		err := within(q, p).Pluck("amount", &amounts).Error
		if err != nil {
			return Summary{}, err
		}

		totals[typ] = sum(amounts)
	}

	income := totals[models.TransactionIncome]
	expense := totals[models.TransactionExpense]

	return Summary{
		Income:  income,
		Expense: expense,
		Savings: income.Sub(expense),
	}, nil
}
