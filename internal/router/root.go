package router

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs         string `json:"docs" example:"https://example.com/api/docs/index.html"`      // Swagger API documentation
	Healthz      string `json:"healthz" example:"https://example.com/api/healthz"`           // Health check
	Version      string `json:"version" example:"https://example.com/api/version"`           // Version of the API
	Metrics      string `json:"metrics" example:"https://example.com/api/metrics"`           // Prometheus metrics
	Auth         string `json:"auth" example:"https://example.com/api/auth"`                 // Registration, login and the current user
	Transactions string `json:"transactions" example:"https://example.com/api/transactions"` // Transactions of the current user
	Budgets      string `json:"budgets" example:"https://example.com/api/budgets"`           // Budgets of the current user
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.APIURL(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:         url + "/docs/index.html",
			Healthz:      url + "/healthz",
			Version:      url + "/version",
			Metrics:      url + "/metrics",
			Auth:         url + "/auth",
			Transactions: url + "/transactions",
			Budgets:      url + "/budgets",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the FinTrack backend
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}
