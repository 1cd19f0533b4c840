package httputil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fintrack/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error  string            `json:"error" example:"the request contains invalid data"`
	Fields map[string]string `json:"fields,omitempty"` // Messages for invalid fields, keyed by field name
}

// Status returns the appropriate HTTP status for an error.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, ErrRequestBodyEmpty),
		errors.Is(err, ErrInvalidUUID):
		return http.StatusBadRequest

	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrUserHasRecords),
		errors.Is(err, models.ErrBudgetPeriodNotUnique):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// Error aborts the request and writes the error with the matching status.
//
// Server errors are logged with the request id. The client only gets a
// general message containing the request id.
func Error(c *gin.Context, err error) {
	status := Status(err)

	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.AbortWithStatusJSON(status, HTTPError{
			Error: fmt.Sprintf("%s, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", models.ErrGeneral, requestid.Get(c)),
		})
		return
	}

	e := HTTPError{Error: err.Error()}

	var v *models.ValidationError
	if errors.As(err, &v) {
		e.Error = models.ErrValidation.Error()
		e.Fields = v.Fields
	}

	c.AbortWithStatusJSON(status, e)
}

// ValidationErrorToText returns a human readable message for a failed
// binding validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "email":
		return "please enter a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
