// Package service implements the operations on transactions, budgets and
// users. Every operation is scoped to the user that owns the records.
package service

import (
	"context"
	"errors"

	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// publish sends an event for a successful write. Failing to publish is
// logged and does not fail the write.
func publish(ctx context.Context, p events.Publisher, t events.Type, owner, id uuid.UUID) {
	err := p.Publish(ctx, events.New(t, owner, id))
	if err != nil {
		log.Warn().Err(err).Str("event", string(t)).Str("resource", id.String()).Msg("could not publish event")
	}
}

// periodFilter returns the period for an optional year and month filter
// as a validation error for the query parameters.
func periodFilter(year, month *int) (types.Period, error) {
	p, err := types.PeriodOf(year, month)
	if errors.Is(err, types.ErrPeriodYearRequired) {
		return nil, models.NewValidationError("year", err.Error())
	} else if err != nil {
		return nil, models.NewValidationError("month", err.Error())
	}

	return p, nil
}

// within restricts a transaction query to the dates of the period.
// A nil period does not restrict the query.
func within(db *gorm.DB, p types.Period) *gorm.DB {
	if p == nil {
		return db
	}

	first, last := p.Bounds()
	return db.Where("date >= ? AND date <= ?", first, last)
}

func sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}

	return total
}
