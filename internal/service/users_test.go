package service_test

import (
	"github.com/fintrack/backend/internal/config"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/service"
	"github.com/fintrack/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRegister() {
	user, err := suite.users.Register(suite.ctx, service.Registration{
		Name:     " Jane Doe ",
		Email:    "Jane@Example.com",
		Password: "secret123",
	})
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), "Jane Doe", user.Name)
	assert.Equal(suite.T(), "jane@example.com", user.Email)
	assert.NotEqual(suite.T(), "secret123", user.PasswordHash)

	_, err = suite.users.Register(suite.ctx, service.Registration{Name: "Jane Again", Email: "jane@example.com ", Password: "secret123"})
	assert.ErrorIs(suite.T(), err, models.ErrEmailTaken)
}

func (suite *TestSuiteStandard) TestRegisterValidation() {
	_, err := suite.users.Register(suite.ctx, service.Registration{Name: "Jo", Email: "jo", Password: "12345"})
	assert.ErrorIs(suite.T(), err, models.ErrValidation)

	f := fields(err)
	assert.Contains(suite.T(), f, "name")
	assert.Contains(suite.T(), f, "email")
	assert.Contains(suite.T(), f, "password")
}

func (suite *TestSuiteStandard) TestAuthenticate() {
	_, err := suite.users.Register(suite.ctx, service.Registration{Name: "Jane", Email: "jane@example.com", Password: "secret123"})
	require.Nil(suite.T(), err)

	user, err := suite.users.Authenticate(suite.ctx, " JANE@example.com", "secret123")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "jane@example.com", user.Email)

	_, err = suite.users.Authenticate(suite.ctx, "jane@example.com", "wrong")
	assert.ErrorIs(suite.T(), err, models.ErrInvalidCredentials)

	_, err = suite.users.Authenticate(suite.ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(suite.T(), err, models.ErrInvalidCredentials)
}

func (suite *TestSuiteStandard) TestDeletionPolicies() {
	count := func(model any) int64 {
		var n int64
		require.Nil(suite.T(), suite.db.Model(model).Count(&n).Error)
		return n
	}

	tests := []struct {
		policy       config.DeletionPolicy
		err          error
		userDeleted  bool
		transactions int64
		budgets      int64
	}{
		{config.DeleteForbid, models.ErrUserHasRecords, false, 1, 1},
		{config.DeleteOrphan, nil, true, 1, 1},
		{config.DeleteCascade, nil, true, 0, 0},
	}

	for _, tt := range tests {
		suite.Run(string(tt.policy), func() {
			require.Nil(suite.T(), suite.db.Exec("DELETE FROM transactions").Error)
			require.Nil(suite.T(), suite.db.Exec("DELETE FROM budgets").Error)

			user := suite.createTestUser()
			suite.createTestTransaction(user.ID, service.TransactionInput{Type: models.TransactionExpense, Amount: amount(1), Category: "food", Date: types.NewDate(2024, 1, 1)})
			suite.createTestBudget(user.ID, service.BudgetInput{Category: "food", Limit: amount(1), Type: types.PeriodYearly, Year: 2024})

			users := service.NewUsers(suite.db, 4, tt.policy)
			err := users.Delete(suite.ctx, user.ID)
			if tt.err != nil {
				assert.ErrorIs(suite.T(), err, tt.err)
			} else {
				assert.Nil(suite.T(), err)
			}

			_, err = users.Get(suite.ctx, user.ID)
			if tt.userDeleted {
				assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
			} else {
				assert.Nil(suite.T(), err)
			}

			assert.Equal(suite.T(), tt.transactions, count(&models.Transaction{}))
			assert.Equal(suite.T(), tt.budgets, count(&models.Budget{}))
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteForbidWithoutRecords() {
	user := suite.createTestUser()

	require.Nil(suite.T(), suite.users.Delete(suite.ctx, user.ID))

	_, err := suite.users.Get(suite.ctx, user.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
