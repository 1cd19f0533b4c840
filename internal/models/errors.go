package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("the request contains invalid data")
	ErrUnauthorized     = errors.New("you are not authenticated")

	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailTaken            = errors.New("user already exists")
	ErrUserHasRecords        = errors.New("the user still owns transactions or budgets and the deletion policy forbids deleting them")
	ErrBudgetPeriodNotUnique = errors.New("there already is a budget for this category and period")
)

// ValidationError collects messages for invalid fields of a resource.
//
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Add records a message for a field. The first message for a field wins.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}

	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// Err returns the ValidationError if any field is invalid and nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}

	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}

	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, msg)
	return e
}
