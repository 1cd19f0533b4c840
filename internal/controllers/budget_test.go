package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/fintrack/backend/internal/config"
	"github.com/fintrack/backend/internal/controllers"
	"github.com/fintrack/backend/internal/types"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetCreate() {
	token := suite.register("Jane Doe", "jane@example.com")

	budget := suite.createBudget(token, map[string]any{
		"category": " Groceries",
		"limit":    "400",
		"type":     "monthly",
		"year":     2024,
		"month":    3,
	})

	suite.Assert().Equal("groceries", budget.Category)
	suite.Assert().True(decimal.NewFromInt(400).Equal(budget.Limit))
	suite.Require().NotNil(budget.Month)
	suite.Assert().Equal(types.Int(3), *budget.Month)
	suite.Assert().Equal(fmt.Sprintf("%s/budgets/%s", apiURL, budget.ID), budget.Links.Self)

	yearly := suite.createBudget(token, map[string]any{"category": "travel", "limit": 2000, "type": "yearly", "year": 2024})
	suite.Assert().Nil(yearly.Month)
}

func (suite *TestSuiteStandard) TestBudgetCreateNumericStrings() {
	token := suite.register("Jane Doe", "jane@example.com")

	budget := suite.createBudget(token, map[string]any{"category": "food", "limit": "400", "type": "monthly", "year": "2024", "month": "3"})
	suite.Assert().Equal(types.Int(2024), budget.Year)
	suite.Require().NotNil(budget.Month)
	suite.Assert().Equal(types.Int(3), *budget.Month)

	r := suite.request(token, http.MethodPatch, "/budgets/"+budget.ID.String(), map[string]any{"month": "4"})
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().NotNil(response.Data.Month)
	suite.Assert().Equal(types.Int(4), *response.Data.Month)

	// Utilization reports the stored numbers
	r = suite.request(token, http.MethodGet, "/budgets/utilization", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), `"year":2024`)
}

func (suite *TestSuiteStandard) TestBudgetCreateFails() {
	token := suite.register("Jane Doe", "jane@example.com")

	tests := []struct {
		name   string
		body   map[string]any
		fields []string
	}{
		{"All missing", map[string]any{}, []string{"category", "limit", "year", "type"}},
		{"Monthly without month", map[string]any{"category": "food", "limit": "10", "type": "monthly", "year": 2024}, []string{"month"}},
		{"Month out of range", map[string]any{"category": "food", "limit": "10", "type": "monthly", "year": 2024, "month": 13}, []string{"month"}},
		{"Yearly with month", map[string]any{"category": "food", "limit": "10", "type": "yearly", "year": 2024, "month": 2}, []string{"month"}},
		{"Year too early", map[string]any{"category": "food", "limit": "10", "type": "yearly", "year": 1999}, []string{"year"}},
		{"Negative limit", map[string]any{"category": "food", "limit": "-10", "type": "yearly", "year": 2024}, []string{"limit"}},
		{"Unknown type", map[string]any{"category": "food", "limit": "10", "type": "weekly", "year": 2024}, []string{"type"}},
		{"Year not a number", map[string]any{"category": "food", "limit": "10", "type": "yearly", "year": "next year"}, []string{"year"}},
		{"Month not a number", map[string]any{"category": "food", "limit": "10", "type": "monthly", "year": "2024", "month": "March"}, []string{"month"}},
	}

	for _, tt := range tests {
		r := suite.request(token, http.MethodPost, "/budgets", tt.body)
		test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)

		e := suite.errorResponse(r)
		for _, field := range tt.fields {
			suite.Assert().Contains(e.Fields, field, tt.name)
		}
	}
}

func (suite *TestSuiteStandard) TestBudgetUniquePeriod() {
	suite.configure(config.DeleteForbid, true)
	token := suite.register("Jane Doe", "jane@example.com")

	body := map[string]any{"category": "food", "limit": "10", "type": "monthly", "year": 2024, "month": 3}
	suite.createBudget(token, body)

	r := suite.request(token, http.MethodPost, "/budgets", body)
	test.AssertHTTPStatus(suite.T(), r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestBudgetList() {
	token := suite.register("Jane Doe", "jane@example.com")

	suite.createBudget(token, map[string]any{"category": "food", "limit": "10", "type": "monthly", "year": 2023, "month": 12})
	suite.createBudget(token, map[string]any{"category": "rent", "limit": "10", "type": "monthly", "year": 2024, "month": 1})
	suite.createBudget(token, map[string]any{"category": "travel", "limit": "10", "type": "yearly", "year": 2024})
	suite.createBudget(token, map[string]any{"category": "fun", "limit": "10", "type": "monthly", "year": 2024, "month": 2})

	r := suite.request(token, http.MethodGet, "/budgets", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response controllers.BudgetListResponse
	test.DecodeResponse(suite.T(), r, &response)

	categories := make([]string, 0, len(response.Data))
	for _, b := range response.Data {
		categories = append(categories, b.Category)
	}
	suite.Assert().Equal([]string{"travel", "fun", "rent", "food"}, categories)
}

func (suite *TestSuiteStandard) TestBudgetGetUpdateDelete() {
	token := suite.register("Jane Doe", "jane@example.com")
	budget := suite.createBudget(token, map[string]any{"category": "food", "limit": "100", "type": "monthly", "year": 2024, "month": 3})
	path := "/budgets/" + budget.ID.String()

	r := suite.request(token, http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	r = suite.request(token, http.MethodPatch, path, map[string]any{"limit": "150"})
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().True(decimal.NewFromInt(150).Equal(response.Data.Limit))
	suite.Require().NotNil(response.Data.Month, "Fields that are not sent stay unchanged")

	// Switching to yearly drops the month
	r = suite.request(token, http.MethodPut, path, map[string]any{"type": "yearly"})
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Nil(response.Data.Month)

	r = suite.request(token, http.MethodPatch, path, map[string]any{"type": "monthly"})
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
	suite.Assert().Contains(suite.errorResponse(r).Fields, "month")

	r = suite.request(token, http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)

	r = suite.request(token, http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetOtherUser() {
	jane := suite.register("Jane Doe", "jane@example.com")
	john := suite.register("John Doe", "john@example.com")

	budget := suite.createBudget(jane, map[string]any{"category": "food", "limit": "100", "type": "yearly", "year": 2024})
	path := "/budgets/" + budget.ID.String()

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		r := suite.request(john, method, path, map[string]any{"limit": "1"})
		test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)
	}
}

func (suite *TestSuiteStandard) TestBudgetUtilization() {
	token := suite.register("Jane Doe", "jane@example.com")
	other := suite.register("John Doe", "john@example.com")

	budget := suite.createBudget(token, map[string]any{"category": "Food", "limit": "100", "type": "monthly", "year": 2024, "month": 3})
	suite.createBudget(token, map[string]any{"category": "travel", "limit": "1000", "type": "yearly", "year": 2024})

	suite.createTransaction(token, map[string]any{"type": "expense", "amount": "20", "category": " FOOD", "date": "2024-03-10"})
	suite.createTransaction(token, map[string]any{"type": "expense", "amount": "15", "category": "food", "date": "2024-04-01"})
	suite.createTransaction(token, map[string]any{"type": "income", "amount": "50", "category": "food", "date": "2024-03-11"})
	suite.createTransaction(token, map[string]any{"type": "expense", "amount": "1250", "category": "travel", "date": "2024-08-01"})
	suite.createTransaction(other, map[string]any{"type": "expense", "amount": "70", "category": "food", "date": "2024-03-12"})

	r := suite.request(token, http.MethodGet, "/budgets/utilization?year=2024&month=3", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response controllers.UtilizationListResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().Len(response.Data, 1)

	u := response.Data[0]
	suite.Assert().Equal(budget.ID.String(), u.ID)
	suite.Assert().Equal("food", u.Category)
	suite.Assert().True(decimal.NewFromInt(20).Equal(u.Spent), u.Spent.String())
	suite.Assert().True(decimal.NewFromInt(80).Equal(u.Remaining), u.Remaining.String())
	suite.Assert().Equal("20.00%", u.UtilizationPercent)

	r = suite.request(token, http.MethodGet, "/budgets/utilization?year=2024", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().Len(response.Data, 2)

	travel := response.Data[0]
	suite.Assert().Equal("travel", travel.Category)
	suite.Assert().True(decimal.NewFromInt(-250).Equal(travel.Remaining), travel.Remaining.String())
	suite.Assert().Equal("125.00%", travel.UtilizationPercent)
}

func (suite *TestSuiteStandard) TestBudgetUtilizationInvalid() {
	token := suite.register("Jane Doe", "jane@example.com")

	for _, query := range []string{"", "?month=3", "?year=2024&month=0", "?year=twenty"} {
		r := suite.request(token, http.MethodGet, "/budgets/utilization"+query, nil)
		test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
	}
}
