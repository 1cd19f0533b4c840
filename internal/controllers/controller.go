// Package controllers implements the HTTP handlers of the FinTrack API.
package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Cookie configures the cookie the access token is stored in.
type Cookie struct {
	Name   string
	Secure bool
}

// Controller holds the services the handlers work with.
type Controller struct {
	Ledger  *service.Ledger
	Budgets *service.Budgets
	Users   *service.Users
	Tokens  *auth.Tokens
	Cookie  Cookie
}

// Authenticate returns the middleware that rejects unauthenticated requests.
func (co Controller) Authenticate() gin.HandlerFunc {
	return auth.Middleware(co.Tokens, co.Cookie.Name, co.Users)
}

// owner returns the id of the user making the request. If there is none,
// the request is aborted.
func owner(c *gin.Context) (uuid.UUID, bool) {
	s, ok := auth.SessionFrom(c)
	if !ok {
		httputil.Error(c, models.ErrUnauthorized)
		return uuid.Nil, false
	}

	return s.UserID, true
}

// resourceID parses the id path parameter. If it is invalid, the request
// is aborted.
func resourceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httputil.Error(c, err)
		return uuid.Nil, false
	}

	return id, true
}

// setTokenCookie stores the token in an httpOnly cookie. A negative maxAge
// deletes the cookie.
func (co Controller) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(co.Cookie.Name, token, maxAge, "/", "", co.Cookie.Secure, true)
}

// uploadedFile returns the file uploaded in the "file" form field. Its name
// must end in suffix.
func uploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, models.NewValidationError("file", "you must send a file")
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(formFile.Filename), suffix) {
		return nil, models.NewValidationError("file", fmt.Sprintf("the file must have the suffix %s", suffix))
	}

	return formFile.Open()
}
