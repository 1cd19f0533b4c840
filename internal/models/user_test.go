package models_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserNormalizesEmail() {
	user := suite.createTestUser("  Jane.Doe@Example.COM ")
	assert.Equal(suite.T(), "jane.doe@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	suite.createTestUser("taken@example.com")

	err := suite.db.Create(&models.User{Name: "Other", Email: "TAKEN@example.com", PasswordHash: "x"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrEmailTaken)
}

func (suite *TestSuiteStandard) TestUserValidate() {
	err := models.User{Name: " ab ", Email: "not-an-email"}.Validate()

	var v *models.ValidationError
	require.ErrorAs(suite.T(), err, &v)
	assert.Contains(suite.T(), v.Fields, "name")
	assert.Contains(suite.T(), v.Fields, "email")

	assert.Nil(suite.T(), models.User{Name: "Jane", Email: "jane@example.com"}.Validate())
}

func (suite *TestSuiteStandard) TestValidEmail() {
	tests := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"  Jane.Doe@Example.COM ", true},
		{"a..b@example.com", false},
		{"a@b..c", false},
		{"a@b_c.de", false},
		{"a@.b.de", false},
		{"a@b.de.", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(suite.T(), tt.valid, models.ValidEmail(tt.email), tt.email)
	}
}
