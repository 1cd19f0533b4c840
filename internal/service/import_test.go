package service_test

import (
	"strings"

	"github.com/fintrack/backend/internal/events"
	"github.com/fintrack/backend/internal/importer"
	"github.com/fintrack/backend/internal/service"
)

const importFile = "Date,Type,Category,Amount,Payment method,Notes\n" +
	"2024-03-10,expense,Food,200,card,weekly groceries\n" +
	"2024-03-11,expense,food,4.5,cash,coffee\n" +
	"2024-03-11,expense,food,4.5,cash,coffee\n" +
	"2024-03-01,income,salary,5000,,\n"

func (suite *TestSuiteStandard) parse(input string) []importer.Row {
	rows, err := importer.Parse(strings.NewReader(input))
	suite.Require().Nil(err)
	return rows
}

func (suite *TestSuiteStandard) TestLedgerImport() {
	user := suite.createTestUser()

	result, err := suite.ledger.Import(suite.ctx, user.ID, suite.parse(importFile))
	suite.Require().Nil(err)
	suite.Assert().Len(result.Created, 4, "Equal lines in one file are all imported")
	suite.Assert().Equal(0, result.Skipped)
	suite.Assert().Equal("food", result.Created[0].Category)

	transactions, err := suite.ledger.List(suite.ctx, user.ID, service.TransactionFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 4)

	suite.Assert().Equal(4, len(suite.publisher.types()))
	suite.Assert().Equal(events.TransactionCreated, suite.publisher.types()[0])
}

func (suite *TestSuiteStandard) TestLedgerImportTwice() {
	user := suite.createTestUser()

	_, err := suite.ledger.Import(suite.ctx, user.ID, suite.parse(importFile))
	suite.Require().Nil(err)

	more := importFile + "2024-03-12,expense,rent,900,upi,\n"
	result, err := suite.ledger.Import(suite.ctx, user.ID, suite.parse(more))
	suite.Require().Nil(err)
	suite.Assert().Len(result.Created, 1)
	suite.Assert().Equal(4, result.Skipped)
	suite.Assert().Equal("rent", result.Created[0].Category)
}

func (suite *TestSuiteStandard) TestLedgerImportOtherUser() {
	jane := suite.createTestUser()
	john := suite.createTestUser()

	_, err := suite.ledger.Import(suite.ctx, jane.ID, suite.parse(importFile))
	suite.Require().Nil(err)

	result, err := suite.ledger.Import(suite.ctx, john.ID, suite.parse(importFile))
	suite.Require().Nil(err)
	suite.Assert().Len(result.Created, 4, "Import hashes of other users are ignored")
}

func (suite *TestSuiteStandard) TestLedgerImportInvalidRow() {
	user := suite.createTestUser()

	input := importFile + "2024-03-12,transfer,rent,900,upi,\n"
	_, err := suite.ledger.Import(suite.ctx, user.ID, suite.parse(input))
	suite.Require().NotNil(err)
	suite.Assert().Contains(fields(err)["file"], "line 6")

	transactions, err := suite.ledger.List(suite.ctx, user.ID, service.TransactionFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 0, "Nothing is created if a row is invalid")
}

func (suite *TestSuiteStandard) TestLedgerImportEmpty() {
	user := suite.createTestUser()

	result, err := suite.ledger.Import(suite.ctx, user.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Len(result.Created, 0)
}
