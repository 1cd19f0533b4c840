package models_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectUnknownDriver() {
	_, err := models.Connect("mysql", test.TmpFile(suite.T()))
	assert.ErrorIs(suite.T(), err, models.ErrUnknownDriver)
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	test.CloseDB(suite.T(), suite.db)

	err := suite.db.Find(&[]models.Transaction{}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestValidationErrorMessage() {
	v := models.NewValidationError("year", "year is required")
	v.Add("year", "ignored")
	v.Add("amount", "amount must be greater than 0")

	assert.Equal(suite.T(), "the request contains invalid data: amount: amount must be greater than 0; year: year is required", v.Error())
	assert.ErrorIs(suite.T(), v, models.ErrValidation)
	assert.Nil(suite.T(), (&models.ValidationError{}).Err())
}
