package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// UserLookup finds the user a token was issued to.
type UserLookup interface {
	Get(ctx context.Context, id uuid.UUID) (models.User, error)
}

// TokenFrom returns the access token of a request.
//
// The Authorization header with the Bearer scheme takes precedence over
// the cookie.
func TokenFrom(c *gin.Context, cookieName string) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}

	return ""
}

// Middleware authenticates requests and stores the Session for handlers.
//
// Requests without a valid token, or with a token for a user that does
// not exist anymore, are aborted with 401. OPTIONS requests only describe
// the endpoint and pass without a session.
func Middleware(tokens *Tokens, cookieName string, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token := TokenFrom(c, cookieName)
		if token == "" {
			httputil.Error(c, models.ErrUnauthorized)
			return
		}

		id, err := tokens.Verify(token)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("rejected token")
			httputil.Error(c, models.ErrUnauthorized)
			return
		}

		user, err := users.Get(c.Request.Context(), id)
		if errors.Is(err, models.ErrResourceNotFound) {
			httputil.Error(c, models.ErrUnauthorized)
			return
		} else if err != nil {
			httputil.Error(c, err)
			return
		}

		SetSession(c, Session{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
		})

		c.Next()
	}
}
