package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/fintrack/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestHost returns the URL of the API as seen by the client, for APIs
// mounted at path.
//
// The scheme defaults to http and is https if the x-forwarded-proto header
// is set to "https".
func RequestHost(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	// We can reasonably expect a reverse proxy to set x-forwarded-host
	// as it is a de-facto standard.
	//
	// If it is set, we use it to construct the links and use the
	// x-forwarded-prefix header as prefix if the proxy sets one.
	host := c.Request.Host
	prefix := path

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost

		if forwardedPrefix := c.Request.Header.Get("x-forwarded-prefix"); forwardedPrefix != "" {
			prefix = forwardedPrefix
		}
	}

	return scheme + "://" + host + prefix
}

// UUIDFromString binds a string to a UUID.
func UUIDFromString(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return id, nil
}

// QueryInt parses an optional integer query parameter.
// It returns nil if the parameter is not set or empty.
func QueryInt(c *gin.Context, key string) (*int, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, models.NewValidationError(key, key+" must be an integer")
	}

	return &i, nil
}

// BindData binds the JSON body of the request to data.
//
// Failed `binding` tag validations are returned as *models.ValidationError.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var v models.ValidationError
		for _, e := range validationErrors {
			v.Add(fieldName(e), ValidationErrorToText(e))
		}
		return &v
	}

	// A value of the wrong type for a known field
	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) && typeError.Field != "" {
		return models.NewValidationError(typeError.Field, fmt.Sprintf("%s must be %s", typeError.Field, typeName(typeError.Type)))
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

func typeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "true or false"
	}

	return "a valid " + t.Kind().String()
}

// fieldName returns the JSON name of the field. The validator reports the
// Go struct field name, all request structs use lowerCamelCase JSON names.
func fieldName(e validator.FieldError) string {
	name := e.Field()
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToLower(r)) + name[size:]
}

// ContextURL is the key of the API URL in the request context.
const ContextURL = "fintrack-api-url"

// APIURL returns the URL of the API that links in responses are built on.
func APIURL(c *gin.Context) string {
	return c.GetString(ContextURL)
}
