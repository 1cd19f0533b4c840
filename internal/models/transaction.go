package models

import (
	"strings"

	"github.com/fintrack/backend/internal/category"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// swagger:enum TransactionType
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

var TransactionTypes = []TransactionType{TransactionIncome, TransactionExpense}

// swagger:enum PaymentMethod
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentUPI   PaymentMethod = "upi"
	PaymentOther PaymentMethod = "other"
)

var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentUPI, PaymentOther}

// Transaction is a single income or expense of a user.
type Transaction struct {
	DefaultModel
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_lookup,priority:1"`
	Type          TransactionType `gorm:"not null;index:idx_transactions_lookup,priority:3"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8);not null"`
	Category      string          `gorm:"not null;index:idx_transactions_lookup,priority:2"`
	Date          types.Date      `gorm:"not null;index:idx_transactions_lookup,priority:4"`
	PaymentMethod PaymentMethod   `gorm:"not null;default:cash"`
	Notes         string

	// ImportHash identifies the line of an imported file the transaction
	// was created from. Empty for transactions created through the API.
	ImportHash string `gorm:"index"`
}

// BeforeSave normalizes the category, trims the notes and validates the
// transaction. Every write goes through this, so stored categories are
// always normalized.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Category = category.Normalize(t.Category)
	t.Notes = strings.TrimSpace(t.Notes)

	if t.PaymentMethod == "" {
		t.PaymentMethod = PaymentCash
	}

	return t.Validate()
}

// Validate checks all fields of the transaction and reports every invalid one.
func (t Transaction) Validate() error {
	var v ValidationError

	if !slices.Contains(TransactionTypes, t.Type) {
		v.Add("type", "type must be either 'income' or 'expense'")
	}

	if msg := checkAmount("amount", t.Amount); msg != "" {
		v.Add("amount", msg)
	}

	if err := category.Validate(t.Category); err != nil {
		v.Add("category", err.Error())
	}

	if t.Date.IsZero() {
		v.Add("date", "date is required")
	}

	if t.PaymentMethod != "" && !slices.Contains(PaymentMethods, t.PaymentMethod) {
		v.Add("paymentMethod", "payment method must be one of 'cash', 'card', 'upi' or 'other'")
	}

	return v.Err()
}
