package types

import (
	"errors"
	"time"
)

// swagger:enum PeriodType
type PeriodType string

const (
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
)

var (
	ErrPeriodTypeInvalid     = errors.New("type must be either 'monthly' or 'yearly'")
	ErrPeriodMonthRequired   = errors.New("month is required for monthly budgets")
	ErrPeriodMonthNotAllowed = errors.New("month must not be set for yearly budgets")
	ErrPeriodMonthInvalid    = errors.New("month must be between 1 and 12")
)

// Period is the time window covered by a budget or an aggregation.
//
// It is either Yearly or Monthly. The unexported method keeps other
// implementations out, so a Period always has a well-defined window.
type Period interface {
	// Type returns the tag of the variant.
	Type() PeriodType

	// Bounds returns the first and the last day of the period.
	// Both are part of the period.
	Bounds() (first, last Date)

	period()
}

// Yearly is the period covering a whole calendar year.
type Yearly struct {
	Year int
}

func (Yearly) Type() PeriodType {
	return PeriodYearly
}

func (y Yearly) Bounds() (first, last Date) {
	first = NewDate(y.Year, time.January, 1)
	return first, NewDate(y.Year, time.December, 31)
}

func (Yearly) period() {}

// Monthly is the period covering one month of a year.
type Monthly struct {
	Year  int
	Month time.Month
}

func (Monthly) Type() PeriodType {
	return PeriodMonthly
}

func (m Monthly) Bounds() (first, last Date) {
	first = NewDate(m.Year, m.Month, 1)
	return first, first.AddDate(0, 1, -1)
}

func (Monthly) period() {}

// NewPeriod builds the Period described by a type tag, a year and an
// optional month.
//
// A monthly period requires a month between 1 and 12, a yearly period
// must not have one.
func NewPeriod(t PeriodType, year int, month *int) (Period, error) {
	switch t {
	case PeriodYearly:
		if month != nil {
			return nil, ErrPeriodMonthNotAllowed
		}
		return Yearly{Year: year}, nil

	case PeriodMonthly:
		if month == nil {
			return nil, ErrPeriodMonthRequired
		}
		if *month < 1 || *month > 12 {
			return nil, ErrPeriodMonthInvalid
		}
		return Monthly{Year: year, Month: time.Month(*month)}, nil
	}

	return nil, ErrPeriodTypeInvalid
}

// PeriodOf returns the period for an optional year and month filter.
//
// Without a year, the returned period is nil and means "all time".
// A month without a year is an error.
func PeriodOf(year, month *int) (Period, error) {
	if year == nil {
		if month != nil {
			return nil, ErrPeriodYearRequired
		}
		return nil, nil
	}

	if month == nil {
		return Yearly{Year: *year}, nil
	}

	return NewPeriod(PeriodMonthly, *year, month)
}

// ErrPeriodYearRequired is returned when a month is given without a year.
var ErrPeriodYearRequired = errors.New("year is required when month is set")

// Parts returns the type, year and month of a period as they are stored.
// The month is nil for yearly periods.
func Parts(p Period) (PeriodType, int, *int) {
	switch v := p.(type) {
	case Monthly:
		m := int(v.Month)
		return PeriodMonthly, v.Year, &m
	case Yearly:
		return PeriodYearly, v.Year, nil
	}

	return "", 0, nil
}
