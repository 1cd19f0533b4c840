package models

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MinUserNameLength is the minimum length of a user's name in runes.
const MinUserNameLength = 3

var validate = validator.New()

// User is an account that owns transactions and budgets.
type User struct {
	DefaultModel
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex:idx_users_email;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether the normalized email is a valid address.
func ValidEmail(email string) bool {
	return validate.Var(NormalizeEmail(email), "required,email") == nil
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = NormalizeEmail(u.Email)

	return u.Validate()
}

// Validate checks the name and email of the user.
func (u User) Validate() error {
	var v ValidationError

	if utf8.RuneCountInString(strings.TrimSpace(u.Name)) < MinUserNameLength {
		v.Add("name", "name must be at least 3 characters long")
	}

	if !ValidEmail(u.Email) {
		v.Add("email", "please enter a valid email address")
	}

	return v.Err()
}
