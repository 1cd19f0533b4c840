package controllers

import (
	"net/http"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

// User is the public representation of a user.
type User struct {
	ID    uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name  string    `json:"name" example:"Jane Doe"`
	Email string    `json:"email" example:"jane@example.com"`
}

func newUser(u models.User) User {
	return User{ID: u.ID, Name: u.Name, Email: u.Email}
}

type AuthData struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // The access token. It is also set as cookie
	User  User   `json:"user"`
}

type AuthResponse struct {
	Data AuthData `json:"data"`
}

type UserResponse struct {
	Data User `json:"data"`
}

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)

	r.OPTIONS("/logout", httputil.OptionsPost)
	r.POST("/logout", co.Logout)

	me := r.Group("/me", co.Authenticate())
	{
		me.OPTIONS("", httputil.OptionsGetDelete)
		me.GET("", co.GetMe)
		me.DELETE("", co.DeleteMe)
	}
}

// login issues a token for the user and sets it as cookie.
func (co Controller) login(c *gin.Context, status int, u models.User) {
	token, _, err := co.Tokens.Issue(u.ID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	co.setTokenCookie(c, token, int(co.Tokens.TTL().Seconds()))
	c.JSON(status, AuthResponse{Data: AuthData{Token: token, User: newUser(u)}})
}

// @Summary		Register
// @Description	Creates a new user and logs them in
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	AuthResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			register	body		RegisterRequest	true	"Name, email and password"
// @Router			/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var req RegisterRequest
	if err := httputil.BindData(c, &req); err != nil {
		httputil.Error(c, err)
		return
	}

	u, err := co.Users.Register(c.Request.Context(), service.Registration(req))
	if err != nil {
		httputil.Error(c, err)
		return
	}

	co.login(c, http.StatusCreated, u)
}

// @Summary		Login
// @Description	Authenticates a user. The token is returned and set as cookie
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	AuthResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			login	body		LoginRequest	true	"Email and password"
// @Router			/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := httputil.BindData(c, &req); err != nil {
		httputil.Error(c, err)
		return
	}

	// Same rule as for registration, on the normalized address
	if !models.ValidEmail(req.Email) {
		httputil.Error(c, models.NewValidationError("email", "please enter a valid email address"))
		return
	}

	u, err := co.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	co.login(c, http.StatusOK, u)
}

// @Summary		Logout
// @Description	Deletes the token cookie
// @Tags			Auth
// @Success		204
// @Router			/auth/logout [post]
func (co Controller) Logout(c *gin.Context) {
	co.setTokenCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// @Summary		Current user
// @Description	Returns the authenticated user
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httputil.HTTPError
// @Router			/auth/me [get]
func (co Controller) GetMe(c *gin.Context) {
	s, ok := auth.SessionFrom(c)
	if !ok {
		httputil.Error(c, models.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: User{ID: s.UserID, Name: s.Name, Email: s.Email}})
}

// @Summary		Delete account
// @Description	Deletes the authenticated user. Transactions and budgets are handled according to the configured deletion policy
// @Tags			Auth
// @Success		204
// @Failure		401	{object}	httputil.HTTPError
// @Failure		409	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/auth/me [delete]
func (co Controller) DeleteMe(c *gin.Context) {
	id, ok := owner(c)
	if !ok {
		return
	}

	err := co.Users.Delete(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	co.setTokenCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}
