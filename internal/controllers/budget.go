package controllers

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	{
		r.OPTIONS("/utilization", httputil.OptionsGet)
		r.GET("/utilization", co.GetUtilization)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutPatchDelete)
		r.GET("/:id", co.GetBudget)
		r.PUT("/:id", co.UpdateBudget)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

// @Summary		Create budget
// @Description	Creates a new budget for a category and a month or year
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		409		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httputil.Error(c, err)
		return
	}

	budget, err := co.Budgets.Add(c.Request.Context(), userID, editable.input())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: newBudget(c, budget)})
}

// @Summary		Get budgets
// @Description	Returns all budgets of the user, the most recent period first
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	budgets, err := co.Budgets.List(c.Request.Context(), userID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		data = append(data, newBudget(c, b))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	id, ok := resourceID(c)
	if !ok {
		return
	}

	budget, err := co.Budgets.Get(c.Request.Context(), userID, id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: newBudget(c, budget)})
}

// @Summary		Update budget
// @Description	Updates a budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		409		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		string		true	"ID formatted as string"
// @Param			budget	body		BudgetPatch	true	"Budget"
// @Router			/budgets/{id} [patch]
// @Router			/budgets/{id} [put]
func (co Controller) UpdateBudget(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	id, ok := resourceID(c)
	if !ok {
		return
	}

	var patch BudgetPatch
	if err := httputil.BindData(c, &patch); err != nil {
		httputil.Error(c, err)
		return
	}

	budget, err := co.Budgets.Update(c.Request.Context(), userID, id, patch.patch())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: newBudget(c, budget)})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	id, ok := resourceID(c)
	if !ok {
		return
	}

	err := co.Budgets.Delete(c.Request.Context(), userID, id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get budget utilization
// @Description	Returns the spending against each budget of the user in a year. With a month, only the monthly budgets of that month are returned
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	UtilizationListResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			year	query		int	true	"Year"
// @Param			month	query		int	false	"Month"
// @Router			/budgets/utilization [get]
func (co Controller) GetUtilization(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	year, err := httputil.QueryInt(c, "year")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	month, err := httputil.QueryInt(c, "month")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	utilizations, err := co.Budgets.Utilization(c.Request.Context(), userID, year, month)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	data := make([]Utilization, 0, len(utilizations))
	for _, u := range utilizations {
		data = append(data, newUtilization(c, u))
	}

	c.JSON(http.StatusOK, UtilizationListResponse{Data: data})
}
