package models

import (
	"errors"

	"github.com/fintrack/backend/internal/category"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MinBudgetYear is the first year a budget can be set for.
const MinBudgetYear = 2000

// Budget is a spending limit for a category over a month or a year.
//
// Type, Year and Month are the stored form of the budget's period. Use
// SetPeriod to write them so that they always describe a valid period.
type Budget struct {
	DefaultModel
	UserID   uuid.UUID        `gorm:"type:uuid;not null;index:idx_budgets_lookup,priority:1"`
	Category string           `gorm:"not null;index:idx_budgets_lookup,priority:2"`
	Limit    decimal.Decimal  `gorm:"column:limit_amount;type:DECIMAL(20,8);not null"`
	Type     types.PeriodType `gorm:"not null"`
	Year     int              `gorm:"not null;index:idx_budgets_lookup,priority:3"`
	Month    *int             `gorm:"index:idx_budgets_lookup,priority:4"`
}

// SetPeriod stores the period on the budget.
func (b *Budget) SetPeriod(p types.Period) {
	b.Type, b.Year, b.Month = types.Parts(p)
}

// Period returns the period of the budget.
func (b Budget) Period() (types.Period, error) {
	return types.NewPeriod(b.Type, b.Year, b.Month)
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = category.Normalize(b.Category)
	return b.Validate()
}

// Validate checks all fields of the budget and reports every invalid one.
func (b Budget) Validate() error {
	var v ValidationError

	if err := category.Validate(b.Category); err != nil {
		v.Add("category", err.Error())
	}

	if msg := checkAmount("limit", b.Limit); msg != "" {
		v.Add("limit", msg)
	}

	if b.Year < MinBudgetYear {
		v.Add("year", "year must be 2000 or later")
	}

	if _, err := b.Period(); err != nil {
		v.Add(PeriodField(err), err.Error())
	}

	return v.Err()
}

// PeriodField returns the name of the budget field a period error is about.
func PeriodField(err error) string {
	if errors.Is(err, types.ErrPeriodTypeInvalid) {
		return "type"
	}

	return "month"
}
