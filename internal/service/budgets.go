package service

import (
	"context"
	"errors"

	"github.com/fintrack/backend/internal/category"
	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetInput are the fields of a new budget.
type BudgetInput struct {
	Category string
	Limit    decimal.Decimal
	Type     types.PeriodType
	Year     int
	Month    *int
}

// BudgetPatch holds the fields to change on a budget. Nil fields are left
// unchanged.
//
// Changing the type to yearly without setting a month clears the month.
type BudgetPatch struct {
	Category *string
	Limit    *decimal.Decimal
	Type     *types.PeriodType
	Year     *int
	Month    *int
}

// Utilization is the spending against a budget.
type Utilization struct {
	Budget    models.Budget
	Spent     decimal.Decimal
	Remaining decimal.Decimal

	// Percent is Spent in percent of the budget's limit, rounded to two
	// decimal places
	Percent decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Budgets manages the budgets of users.
type Budgets struct {
	db     *gorm.DB
	events events.Publisher

	// uniquePeriod allows only one budget per category and period
	uniquePeriod bool
}

func NewBudgets(db *gorm.DB, publisher events.Publisher, uniquePeriod bool) *Budgets {
	return &Budgets{db: db, events: publisher, uniquePeriod: uniquePeriod}
}

// build returns the budget with the period described by type, year and
// month. If they do not form a valid period, all invalid fields are
// reported.
func build(b models.Budget, t types.PeriodType, year int, month *int) (models.Budget, error) {
	p, err := types.NewPeriod(t, year, month)
	if err == nil {
		b.SetPeriod(p)
		return b, b.Validate()
	}

	// Validate the other fields against any valid period
	b.SetPeriod(types.Yearly{Year: year})

	var v *models.ValidationError
	if !errors.As(b.Validate(), &v) {
		v = &models.ValidationError{}
	}
	v.Add(models.PeriodField(err), err.Error())

	return models.Budget{}, v
}

// Add creates a new budget for owner.
func (s *Budgets) Add(ctx context.Context, owner uuid.UUID, in BudgetInput) (models.Budget, error) {
	b, err := build(models.Budget{
		UserID:   owner,
		Category: category.Normalize(in.Category),
		Limit:    in.Limit,
	}, in.Type, in.Year, in.Month)
	if err != nil {
		return models.Budget{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkUnique(tx, b); err != nil {
			return err
		}
		return tx.Create(&b).Error
	})
	if err != nil {
		return models.Budget{}, err
	}

	publish(ctx, s.events, events.BudgetCreated, owner, b.ID)
	return b, nil
}

// checkUnique returns ErrBudgetPeriodNotUnique if budgets are unique per
// period and another budget of the owner has the same category and period.
func (s *Budgets) checkUnique(tx *gorm.DB, b models.Budget) error {
	if !s.uniquePeriod {
		return nil
	}

	q := tx.Model(&models.Budget{}).
		Where("user_id = ? AND category = ? AND type = ? AND year = ?", b.UserID, b.Category, b.Type, b.Year).
		Where("id <> ?", b.ID)

	if b.Month == nil {
		q = q.Where("month IS NULL")
	} else {
		q = q.Where("month = ?", *b.Month)
	}

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return models.ErrBudgetPeriodNotUnique
	}

	return nil
}

// Get returns a budget of owner.
func (s *Budgets) Get(ctx context.Context, owner, id uuid.UUID) (models.Budget, error) {
	var b models.Budget
	err := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", owner, id).First(&b).Error
	if err != nil {
		return models.Budget{}, err
	}

	return b, nil
}

// List returns all budgets of owner, the latest period first. Yearly
// budgets come before the monthly budgets of the same year.
func (s *Budgets) List(ctx context.Context, owner uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget

	err := s.order(s.db.WithContext(ctx).Where("user_id = ?", owner)).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

func (s *Budgets) order(q *gorm.DB) *gorm.DB {
	// NULL sorts differently per database, yearly budgets have no month
	return q.Order("year DESC").Order("COALESCE(month, 13) DESC").Order("created_at DESC")
}

// Update changes the fields of a budget of owner that are set in the patch.
func (s *Budgets) Update(ctx context.Context, owner, id uuid.UUID, patch BudgetPatch) (models.Budget, error) {
	b, err := s.Get(ctx, owner, id)
	if err != nil {
		return models.Budget{}, err
	}

	if patch.Category != nil {
		b.Category = category.Normalize(*patch.Category)
	}
	if patch.Limit != nil {
		b.Limit = *patch.Limit
	}

	t, year, month := b.Type, b.Year, b.Month
	if patch.Type != nil {
		t = *patch.Type
		if t == types.PeriodYearly && patch.Month == nil {
			month = nil
		}
	}
	if patch.Year != nil {
		year = *patch.Year
	}
	if patch.Month != nil {
		month = patch.Month
	}

	b, err = build(b, t, year, month)
	if err != nil {
		return models.Budget{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkUnique(tx, b); err != nil {
			return err
		}

		return tx.Save(&b).Error
	})
	if err != nil {
		return models.Budget{}, err
	}

	publish(ctx, s.events, events.BudgetUpdated, owner, b.ID)
	return b, nil
}

// Delete removes a budget of owner.
func (s *Budgets) Delete(ctx context.Context, owner, id uuid.UUID) error {
	b, err := s.Get(ctx, owner, id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Delete(&b).Error
	if err != nil {
		return err
	}

	publish(ctx, s.events, events.BudgetDeleted, owner, b.ID)
	return nil
}

// Utilization returns the spending against each budget of owner in the
// year. With a month, only monthly budgets for that month are included.
func (s *Budgets) Utilization(ctx context.Context, owner uuid.UUID, year, month *int) ([]Utilization, error) {
	if year == nil {
		return nil, models.NewValidationError("year", "year is required")
	}

	if month != nil && (*month < 1 || *month > 12) {
		return nil, models.NewValidationError("month", types.ErrPeriodMonthInvalid.Error())
	}

	q := s.db.WithContext(ctx).Where("user_id = ? AND year = ?", owner, *year)
	if month != nil {
		q = q.Where("month = ?", *month)
	}

	var budgets []models.Budget
	err := s.order(q).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	utilizations := make([]Utilization, 0, len(budgets))
	for _, b := range budgets {
		u, err := s.utilization(ctx, b)
		if err != nil {
			return nil, err
		}
		utilizations = append(utilizations, u)
	}

	return utilizations, nil
}

func (s *Budgets) utilization(ctx context.Context, b models.Budget) (Utilization, error) {
	p, err := b.Period()
	if err != nil {
		return Utilization{}, err
	}

	var amounts []decimal.Decimal
	q := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("user_id = ? AND type = ? AND category = ?", b.UserID, models.TransactionExpense, b.Category)

	err = within(q, p).Pluck("amount", &amounts).Error
	if err != nil {
		return Utilization{}, err
	}

	spent := sum(amounts)
	percent := decimal.Zero
	if !b.Limit.IsZero() {
		percent = spent.Div(b.Limit).Mul(hundred).Round(2)
	}

	return Utilization{
		Budget:    b,
		Spent:     spent,
		Remaining: b.Limit.Sub(spent),
		Percent:   percent,
	}, nil
}
