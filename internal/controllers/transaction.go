package controllers

import (
	"fmt"
	"net/http"

	"github.com/fintrack/backend/internal/export"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/importer"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/service"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Aggregates and exports
	{
		r.OPTIONS("/summary", httputil.OptionsGet)
		r.GET("/summary", co.GetSummary)
		r.OPTIONS("/export", httputil.OptionsGet)
		r.GET("/export", co.ExportTransactions)
		r.OPTIONS("/import", httputil.OptionsPost)
		r.POST("/import", co.ImportTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutPatchDelete)
		r.GET("/:id", co.GetTransaction)
		r.PUT("/:id", co.UpdateTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// filter parses the query parameters for transaction lists.
func filter(c *gin.Context) (service.TransactionFilter, error) {
	f := service.TransactionFilter{
		Type:     models.TransactionType(c.Query("type")),
		Category: c.Query("category"),
	}

	if f.Type != "" && !slices.Contains(models.TransactionTypes, f.Type) {
		return f, models.NewValidationError("type", "type must be either 'income' or 'expense'")
	}

	var err error
	f.Year, err = httputil.QueryInt(c, "year")
	if err != nil {
		return f, err
	}

	f.Month, err = httputil.QueryInt(c, "month")
	if err != nil {
		return f, err
	}

	return f, nil
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httputil.Error(c, err)
		return
	}

	transaction, err := co.Ledger.Add(c.Request.Context(), userID, editable.input())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: newTransaction(c, transaction)})
}

// @Summary		Get transactions
// @Description	Returns the transactions of the user, the most recent first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			type		query		string	false	"Filter by type, income or expense"
// @Param			category	query		string	false	"Filter by category. Supports * as wildcard"
// @Param			year		query		int		false	"Filter by year"
// @Param			month		query		int		false	"Filter by month, requires year"
// @Router			/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	f, err := filter(c)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	transactions, err := co.Ledger.List(c.Request.Context(), userID, f)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(c, t))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	id, ok := resourceID(c)
	if !ok {
		return
	}

	transaction, err := co.Ledger.Get(c.Request.Context(), userID, id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransaction(c, transaction)})
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			id			path		string				true	"ID formatted as string"
// @Param			transaction	body		TransactionPatch	true	"Transaction"
// @Router			/transactions/{id} [patch]
// @Router			/transactions/{id} [put]
func (co Controller) UpdateTransaction(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	id, ok := resourceID(c)
	if !ok {
		return
	}

	var patch TransactionPatch
	if err := httputil.BindData(c, &patch); err != nil {
		httputil.Error(c, err)
		return
	}

	transaction, err := co.Ledger.Update(c.Request.Context(), userID, id, patch.patch())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransaction(c, transaction)})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	id, ok := resourceID(c)
	if !ok {
		return
	}

	err := co.Ledger.Delete(c.Request.Context(), userID, id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get summary
// @Description	Returns income, expense and savings of the user. Without a year, all transactions are summed
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			year	query		int	false	"Year"
// @Param			month	query		int	false	"Month, requires year"
// @Router			/transactions/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
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

	summary, err := co.Ledger.Summary(c.Request.Context(), userID, year, month)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: Summary(summary)})
}

// @Summary		Export transactions
// @Description	Returns the transactions of the user as CSV file or XLSX workbook
// @Tags			Transactions
// @Produce		text/csv
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			format		query		string	false	"csv (default) or xlsx"
// @Param			type		query		string	false	"Filter by type, income or expense"
// @Param			category	query		string	false	"Filter by category. Supports * as wildcard"
// @Param			year		query		int		false	"Filter by year"
// @Param			month		query		int		false	"Filter by month, requires year"
// @Router			/transactions/export [get]
func (co Controller) ExportTransactions(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		httputil.Error(c, models.NewValidationError("format", err.Error()))
		return
	}

	f, err := filter(c)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	transactions, err := co.Ledger.List(c.Request.Context(), userID, f)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename()))
	c.Status(http.StatusOK)

	// The status is sent already, errors can only be logged
	err = export.Write(c.Writer, format, transactions)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("writing export")
	}
}

// @Summary		Import transactions
// @Description	Imports transactions from a CSV file in the format of the CSV export. Lines that have been imported before are skipped
// @Tags			Transactions
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			file	formData	file	true	"File to import"
// @Router			/transactions/import [post]
func (co Controller) ImportTransactions(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	f, err := uploadedFile(c, ".csv")
	if err != nil {
		httputil.Error(c, err)
		return
	}
	defer f.Close()

	rows, err := importer.Parse(f)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	result, err := co.Ledger.Import(c.Request.Context(), userID, rows)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	data := ImportResult{
		Transactions: make([]Transaction, 0, len(result.Created)),
		Skipped:      result.Skipped,
	}
	for _, t := range result.Created {
		data.Transactions = append(data.Transactions, newTransaction(c, t))
	}

	c.JSON(http.StatusCreated, ImportResponse{Data: data})
}
