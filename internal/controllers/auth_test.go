package controllers_test

import (
	"net/http"
	"testing"

	"github.com/fintrack/backend/internal/config"
	"github.com/fintrack/backend/internal/controllers"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegister() {
	r := suite.request("", http.MethodPost, "/auth/register", map[string]string{
		"name":     "Jane Doe",
		"email":    " Jane@Example.com ",
		"password": "s3cret-password",
	})
	test.AssertHTTPStatus(suite.T(), r, http.StatusCreated)

	var response controllers.AuthResponse
	test.DecodeResponse(suite.T(), r, &response)

	suite.Assert().NotEmpty(response.Data.Token)
	suite.Assert().Equal("jane@example.com", response.Data.User.Email)
	suite.Assert().Equal("Jane Doe", response.Data.User.Name)
	suite.Assert().Contains(r.Header().Get("Set-Cookie"), "token="+response.Data.Token)
	suite.Assert().Contains(r.Header().Get("Set-Cookie"), "HttpOnly")
	suite.Assert().Contains(r.Header().Get("Set-Cookie"), "SameSite=Strict")
	suite.Assert().NotContains(r.Body.String(), "password")
}

func (suite *TestSuiteStandard) TestRegisterFails() {
	suite.register("Jane Doe", "jane@example.com")

	tests := []struct {
		name   string
		body   any
		field  string
		status int
	}{
		{"Empty body", nil, "", http.StatusBadRequest},
		{"Broken JSON", `{ "name": "Jane`, "", http.StatusBadRequest},
		{"Missing password", map[string]string{"name": "Jane Doe", "email": "j@example.com"}, "password", http.StatusBadRequest},
		{"Short name", map[string]string{"name": "Jo", "email": "jo@example.com", "password": "s3cret-password"}, "name", http.StatusBadRequest},
		{"Invalid email", map[string]string{"name": "Jane Doe", "email": "jane", "password": "s3cret-password"}, "email", http.StatusBadRequest},
		{"Short password", map[string]string{"name": "Jane Doe", "email": "j@example.com", "password": "12345"}, "password", http.StatusBadRequest},
		{"Email taken", map[string]string{"name": "Jane Doe", "email": "JANE@example.com", "password": "s3cret-password"}, "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, apiURL+"/auth/register", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.field != "" {
				e := suite.errorResponse(&r)
				assert.Contains(t, e.Fields, tt.field)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	suite.register("Jane Doe", "jane@example.com")

	r := suite.request("", http.MethodPost, "/auth/login", map[string]string{
		"email":    "JANE@example.com",
		"password": "s3cret-password",
	})
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response controllers.AuthResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Equal("jane@example.com", response.Data.User.Email)

	me := suite.request(response.Data.Token, http.MethodGet, "/auth/me", nil)
	test.AssertHTTPStatus(suite.T(), me, http.StatusOK)

	var user controllers.UserResponse
	test.DecodeResponse(suite.T(), me, &user)
	suite.Assert().Equal(response.Data.User, user.Data)
}

func (suite *TestSuiteStandard) TestLoginWithRegisteredSpelling() {
	for _, email := range []string{" Jane@Example.com ", "a.b@example.com"} {
		suite.T().Run(email, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, apiURL+"/auth/register", map[string]string{
				"name":     "Jane Doe",
				"email":    email,
				"password": "s3cret-password",
			})
			test.AssertHTTPStatus(t, &r, http.StatusCreated)

			r = test.Request(t, suite.router, http.MethodPost, apiURL+"/auth/login", map[string]string{
				"email":    email,
				"password": "s3cret-password",
			})
			test.AssertHTTPStatus(t, &r, http.StatusOK)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterAndLoginRejectSameEmails() {
	for _, email := range []string{"a..b@example.com", "a@b..c", "a@b_c.de", "(x)@y.de", "a@.b.de", "a@b.de."} {
		suite.T().Run(email, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, apiURL+"/auth/register", map[string]string{
				"name":     "Jane Doe",
				"email":    email,
				"password": "s3cret-password",
			})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, suite.errorResponse(&r).Fields, "email")

			r = test.Request(t, suite.router, http.MethodPost, apiURL+"/auth/login", map[string]string{
				"email":    email,
				"password": "s3cret-password",
			})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, suite.errorResponse(&r).Fields, "email")
		})
	}
}

func (suite *TestSuiteStandard) TestLoginInvalidCredentials() {
	suite.register("Jane Doe", "jane@example.com")

	for _, body := range []map[string]string{
		{"email": "jane@example.com", "password": "wrong-password"},
		{"email": "john@example.com", "password": "s3cret-password"},
	} {
		r := suite.request("", http.MethodPost, "/auth/login", body)
		test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
		suite.Assert().Equal(models.ErrInvalidCredentials.Error(), suite.errorResponse(r).Error)
	}
}

func (suite *TestSuiteStandard) TestCookieAuthentication() {
	token := suite.register("Jane Doe", "jane@example.com")

	r := test.Request(suite.T(), suite.router, http.MethodGet, apiURL+"/auth/me", nil, map[string]string{"Cookie": "token=" + token})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestLogout() {
	r := suite.request("", http.MethodPost, "/auth/logout", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
	suite.Assert().Contains(r.Header().Get("Set-Cookie"), "token=;")
	suite.Assert().Contains(r.Header().Get("Set-Cookie"), "Max-Age=0")
	suite.Assert().Contains(r.Header().Get("Set-Cookie"), "SameSite=Strict")
}

func (suite *TestSuiteStandard) TestUnauthorized() {
	for _, token := range []string{"", "not-a-token"} {
		r := suite.request(token, http.MethodGet, "/auth/me", nil)
		test.AssertHTTPStatus(suite.T(), r, http.StatusUnauthorized)
	}
}

func (suite *TestSuiteStandard) TestDeleteMe() {
	token := suite.register("Jane Doe", "jane@example.com")

	r := suite.request(token, http.MethodDelete, "/auth/me", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)

	// The token is valid, but the user is gone
	r = suite.request(token, http.MethodGet, "/auth/me", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestDeleteMeForbidden() {
	token := suite.register("Jane Doe", "jane@example.com")
	suite.createTransaction(token, map[string]any{"type": "income", "amount": "10", "category": "salary", "date": "2024-01-31"})

	r := suite.request(token, http.MethodDelete, "/auth/me", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestDeleteMeCascade() {
	suite.configure(config.DeleteCascade, false)

	token := suite.register("Jane Doe", "jane@example.com")
	suite.createTransaction(token, map[string]any{"type": "income", "amount": "10", "category": "salary", "date": "2024-01-31"})

	r := suite.request(token, http.MethodDelete, "/auth/me", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)

	// The email can be used again
	token = suite.register("Jane Doe", "jane@example.com")
	r = suite.request(token, http.MethodGet, "/transactions", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Len(response.Data, 0)
}
