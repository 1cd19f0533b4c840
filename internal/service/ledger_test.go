package service_test

import (
	"errors"

	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/service"
	"github.com/fintrack/backend/internal/types"
	"github.com/fintrack/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLedgerAddNormalizesCategory() {
	user := suite.createTestUser()

	for _, c := range []string{"Food", "  FOOD ", "food\t", "fOoD"} {
		t := suite.createTestTransaction(user.ID, service.TransactionInput{
			Type:     models.TransactionExpense,
			Amount:   amount(12.5),
			Category: c,
			Date:     types.NewDate(2024, 3, 10),
		})
		assert.Equal(suite.T(), "food", t.Category)
		assert.Equal(suite.T(), models.PaymentCash, t.PaymentMethod)
	}

	assert.Equal(suite.T(), []events.Type{
		events.TransactionCreated, events.TransactionCreated, events.TransactionCreated, events.TransactionCreated,
	}, suite.publisher.types())
}

func (suite *TestSuiteStandard) TestLedgerAddValidation() {
	user := suite.createTestUser()

	_, err := suite.ledger.Add(suite.ctx, user.ID, service.TransactionInput{
		Type:          "transfer",
		Category:      " a ",
		PaymentMethod: "cheque",
	})

	assert.ErrorIs(suite.T(), err, models.ErrValidation)
	f := fields(err)
	for _, field := range []string{"type", "amount", "category", "date", "paymentMethod"} {
		assert.Contains(suite.T(), f, field)
	}
	assert.Empty(suite.T(), suite.publisher.types())
}

func (suite *TestSuiteStandard) TestLedgerListOrderAndFilter() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	march := suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: amount(1), Category: "food", Date: types.NewDate(2024, 3, 10)})
	marchLater := suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: amount(2), Category: "fuel", Date: types.NewDate(2024, 3, 10)})
	january := suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionIncome, Amount: amount(3), Category: "salary", Date: types.NewDate(2024, 1, 31)})
	lastYear := suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: amount(4), Category: "food", Date: types.NewDate(2023, 12, 31)})
	suite.createTestTransaction(other.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: amount(5), Category: "food", Date: types.NewDate(2024, 3, 11)})

	ids := func(ts []models.Transaction) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(ts))
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter service.TransactionFilter
		want   []uuid.UUID
	}{
		{"All, newest first", service.TransactionFilter{}, []uuid.UUID{marchLater.ID, march.ID, january.ID, lastYear.ID}},
		{"Type", service.TransactionFilter{Type: models.TransactionIncome}, []uuid.UUID{january.ID}},
		{"Year", service.TransactionFilter{Year: intPtr(2023)}, []uuid.UUID{lastYear.ID}},
		{"Month", service.TransactionFilter{Year: intPtr(2024), Month: intPtr(3)}, []uuid.UUID{marchLater.ID, march.ID}},
		{"Category", service.TransactionFilter{Category: " Food"}, []uuid.UUID{march.ID, lastYear.ID}},
		{"Category glob", service.TransactionFilter{Category: "f*"}, []uuid.UUID{marchLater.ID, march.ID, lastYear.ID}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			transactions, err := suite.ledger.List(suite.ctx, user.ID, tt.filter)
			require.Nil(suite.T(), err)
			assert.Equal(suite.T(), tt.want, ids(transactions))
		})
	}

	_, err := suite.ledger.List(suite.ctx, user.ID, service.TransactionFilter{Month: intPtr(3)})
	assert.Contains(suite.T(), fields(err), "year")
}

func (suite *TestSuiteStandard) TestLedgerUpdate() {
	user := suite.createTestUser()
	t := suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: amount(10), Category: "food", Date: types.NewDate(2024, 3, 10), Notes: "lunch"})

	category := "  Groceries "
	newAmount := amount(42.42)
	updated, err := suite.ledger.Update(suite.ctx, user.ID, t.ID, service.TransactionPatch{
		Category: &category,
		Amount:   &newAmount,
	})
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), "groceries", updated.Category)
	assert.True(suite.T(), updated.Amount.Equal(newAmount))
	assert.Equal(suite.T(), "lunch", updated.Notes, "Unset fields must not change")

	stored, err := suite.ledger.Get(suite.ctx, user.ID, t.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "groceries", stored.Category)

	// Invalid updates are rejected and do not change the record
	zero := decimal.Zero
	_, err = suite.ledger.Update(suite.ctx, user.ID, t.ID, service.TransactionPatch{Amount: &zero})
	assert.Contains(suite.T(), fields(err), "amount")

	stored, err = suite.ledger.Get(suite.ctx, user.ID, t.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), stored.Amount.Equal(newAmount))

	assert.Equal(suite.T(), []events.Type{events.TransactionCreated, events.TransactionUpdated}, suite.publisher.types())
}

func (suite *TestSuiteStandard) TestLedgerOwnership() {
	owner := suite.createTestUser()
	intruder := suite.createTestUser()
	t := suite.createTestTransaction(owner.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: amount(10), Category: "food", Date: types.NewDate(2024, 3, 10)})

	category := "stolen"
	_, err := suite.ledger.Update(suite.ctx, intruder.ID, t.ID, service.TransactionPatch{Category: &category})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	err = suite.ledger.Delete(suite.ctx, intruder.ID, t.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = suite.ledger.Get(suite.ctx, intruder.ID, t.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	stored, err := suite.ledger.Get(suite.ctx, owner.ID, t.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "food", stored.Category)
}

func (suite *TestSuiteStandard) TestLedgerDelete() {
	user := suite.createTestUser()
	t := suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: amount(10), Category: "food", Date: types.NewDate(2024, 3, 10)})

	require.Nil(suite.T(), suite.ledger.Delete(suite.ctx, user.ID, t.ID))

	_, err := suite.ledger.Get(suite.ctx, user.ID, t.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	err = suite.ledger.Delete(suite.ctx, user.ID, t.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	assert.Equal(suite.T(), []events.Type{events.TransactionCreated, events.TransactionDeleted}, suite.publisher.types())
}

func (suite *TestSuiteStandard) TestLedgerSummary() {
	user := suite.createTestUser()

	suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionIncome, Amount: amount(5000), Category: "salary", Date: types.NewDate(2024, 1, 31)})
	suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: amount(3000), Category: "rent", Date: types.NewDate(2024, 6, 1)})
	suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: amount(100), Category: "rent", Date: types.NewDate(2023, 12, 31)})

	summary, err := suite.ledger.Summary(suite.ctx, user.ID, intPtr(2024), nil)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), summary.Income.Equal(amount(5000)), summary.Income.String())
	assert.True(suite.T(), summary.Expense.Equal(amount(3000)), summary.Expense.String())
	assert.True(suite.T(), summary.Savings.Equal(amount(2000)), summary.Savings.String())

	summary, err = suite.ledger.Summary(suite.ctx, user.ID, intPtr(2024), intPtr(6))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), summary.Income.IsZero())
	assert.True(suite.T(), summary.Savings.Equal(amount(-3000)))

	summary, err = suite.ledger.Summary(suite.ctx, user.ID, nil, nil)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), summary.Expense.Equal(amount(3100)))

	summary, err = suite.ledger.Summary(suite.ctx, user.ID, intPtr(2019), nil)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), summary.Income.IsZero())
	assert.True(suite.T(), summary.Expense.IsZero())
	assert.True(suite.T(), summary.Savings.IsZero())

	_, err = suite.ledger.Summary(suite.ctx, user.ID, nil, intPtr(3))
	assert.Contains(suite.T(), fields(err), "year")

	_, err = suite.ledger.Summary(suite.ctx, user.ID, intPtr(2024), intPtr(13))
	assert.Contains(suite.T(), fields(err), "month")
}

func (suite *TestSuiteStandard) TestLedgerPublishFailureDoesNotFailWrite() {
	user := suite.createTestUser()
	suite.publisher.err = errors.New("broker down")

	t, err := suite.ledger.Add(suite.ctx, user.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: amount(10), Category: "food", Date: types.NewDate(2024, 3, 10)})
	require.Nil(suite.T(), err)

	_, err = suite.ledger.Get(suite.ctx, user.ID, t.ID)
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestLedgerDatabaseError() {
	user := suite.createTestUser()
	test.CloseDB(suite.T(), suite.db)

	_, err := suite.ledger.List(suite.ctx, user.ID, service.TransactionFilter{})
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	_, err = suite.ledger.Summary(suite.ctx, user.ID, nil, nil)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestLedgerAmountRoundTrip() {
	user := suite.createTestUser()

	for _, s := range []string{"123456789012.123", "0.00000001", "1234567.12345678"} {
		in := decimal.RequireFromString(s)
		t := suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: in, Category: "travel", Date: types.NewDate(2024, 3, 10)})

		stored, err := suite.ledger.Get(suite.ctx, user.ID, t.ID)
		require.Nil(suite.T(), err)
		assert.True(suite.T(), in.Equal(stored.Amount), "stored %s as %s", in, stored.Amount)

		require.Nil(suite.T(), suite.ledger.Delete(suite.ctx, user.ID, t.ID))
	}

	t := suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: decimal.RequireFromString("123456789012.123"), Category: "travel", Date: types.NewDate(2024, 3, 10)})
	summary, err := suite.ledger.Summary(suite.ctx, user.ID, nil, nil)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), t.Amount.Equal(summary.Expense), "expense was %s", summary.Expense)
}

func (suite *TestSuiteStandard) TestLedgerAmountNotStorable() {
	user := suite.createTestUser()

	for _, s := range []string{"123456789012.12345678", "0.000000001", "1000000000000"} {
		_, err := suite.ledger.Add(suite.ctx, user.ID, service.TransactionInput{
			Type:     models.TransactionExpense,
			Amount:   decimal.RequireFromString(s),
			Category: "travel",
			Date:     types.NewDate(2024, 3, 10),
		})
		assert.ErrorIs(suite.T(), err, models.ErrValidation, s)
		assert.Contains(suite.T(), fields(err), "amount", s)
	}
}
