package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/config"
	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MinPasswordLength is the minimum length of a password in runes.
const MinPasswordLength = 6

// Registration are the fields to create an account with.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Users manages user accounts.
type Users struct {
	db         *gorm.DB
	bcryptCost int
	policy     config.DeletionPolicy
}

func NewUsers(db *gorm.DB, bcryptCost int, policy config.DeletionPolicy) *Users {
	return &Users{db: db, bcryptCost: bcryptCost, policy: policy}
}

// Register creates a new user.
func (s *Users) Register(ctx context.Context, r Registration) (models.User, error) {
	u := models.User{
		Name:  r.Name,
		Email: r.Email,
	}

	var v *models.ValidationError
	if !errors.As(u.Validate(), &v) {
		v = &models.ValidationError{}
	}

	if utf8.RuneCountInString(r.Password) < MinPasswordLength {
		v.Add("password", "password must be at least 6 characters long")
	}

	if err := v.Err(); err != nil {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(r.Password, s.bcryptCost)
	if err != nil {
		return models.User{}, err
	}
	u.PasswordHash = hash

	err = s.db.WithContext(ctx).Create(&u).Error
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("user", u.ID.String()).Msg("registered user")
	return u, nil
}

// Authenticate returns the user with the email and password.
//
// An unknown email and a wrong password both return ErrInvalidCredentials.
func (s *Users) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", models.NormalizeEmail(email)).First(&u).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, models.ErrInvalidCredentials
	} else if err != nil {
		return models.User{}, err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return models.User{}, models.ErrInvalidCredentials
	}

	return u, nil
}

// Get returns a user by id.
func (s *Users) Get(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return models.User{}, err
	}

	return u, nil
}

// Delete deletes a user. What happens to the user's transactions and
// budgets depends on the deletion policy.
func (s *Users) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		err := tx.First(&u, "id = ?", id).Error
		if err != nil {
			return err
		}

		switch s.policy {
		case config.DeleteForbid:
			owned, err := ownsRecords(tx, id)
			if err != nil {
				return err
			}
			if owned {
				return models.ErrUserHasRecords
			}

		case config.DeleteCascade:
			err := tx.Where("user_id = ?", id).Delete(&models.Transaction{}).Error
			if err != nil {
				return err
			}

			err = tx.Where("user_id = ?", id).Delete(&models.Budget{}).Error
			if err != nil {
				return err
			}
		}

		err = tx.Delete(&u).Error
		if err != nil {
			return err
		}

		log.Info().Str("user", id.String()).Str("policy", string(s.policy)).Msg("deleted user")
		return nil
	})
}

func ownsRecords(tx *gorm.DB, id uuid.UUID) (bool, error) {
	for _, model := range []any{&models.Transaction{}, &models.Budget{}} {
		var count int64
		err := tx.Model(model).Where("user_id = ?", id).Count(&count).Error
		if err != nil {
			return false, err
		}

		if count > 0 {
			return true, nil
		}
	}

	return false, nil
}
