package controllers

import (
	"fmt"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/service"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type models.TransactionType `json:"type" example:"expense"` // Either income or expense

	// At most 15 significant digits and 8 decimal places
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"14.03" minimum:"0.00000001" maximum:"999999999999.999" multipleOf:"0.00000001"` // The amount of the transaction. Numbers and numeric strings are accepted

	Category      string               `json:"category" example:"food"`                                      // Category of the transaction. Stored trimmed and lower-cased
	Date          types.Date           `json:"date" swaggertype:"string" format:"date" example:"2024-03-10"` // Date of the transaction
	PaymentMethod models.PaymentMethod `json:"paymentMethod" example:"card" default:"cash"`                  // One of cash, card, upi or other
	Notes         string               `json:"notes" example:"Lunch with Sam" default:""`                    // Free text notes
}

// input returns the service input for the API representation of the editable fields
func (editable TransactionEditable) input() service.TransactionInput {
	return service.TransactionInput{
		Type:          editable.Type,
		Amount:        editable.Amount,
		Category:      editable.Category,
		Date:          editable.Date,
		PaymentMethod: editable.PaymentMethod,
		Notes:         editable.Notes,
	}
}

// TransactionPatch contains the fields to update. Fields that are not
// sent are left unchanged.
type TransactionPatch struct {
	Type          *models.TransactionType `json:"type" example:"income"`
	Amount        *decimal.Decimal        `json:"amount" swaggertype:"string" example:"14.03"`
	Category      *string                 `json:"category" example:"salary"`
	Date          *types.Date             `json:"date" swaggertype:"string" format:"date" example:"2024-03-10"`
	PaymentMethod *models.PaymentMethod   `json:"paymentMethod" example:"upi"`
	Notes         *string                 `json:"notes" example:"Bonus"`
}

func (p TransactionPatch) patch() service.TransactionPatch {
	return service.TransactionPatch(p)
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	ImportHash string           `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70"` // The SHA256 hash of the imported line. Empty for transactions that were not imported
	Links      TransactionLinks `json:"links"`
}

// newTransaction returns the API representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:          model.Type,
			Amount:        model.Amount,
			Category:      model.Category,
			Date:          model.Date,
			PaymentMethod: model.PaymentMethod,
			Notes:         model.Notes,
		},
		ImportHash: model.ImportHash,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/transactions/%s", httputil.APIURL(c), model.ID),
		},
	}
}

type TransactionResponse struct {
	Data Transaction `json:"data"` // Data for the transaction
}

type TransactionListResponse struct {
	Data []Transaction `json:"data"` // List of transactions
}

// Summary is the API representation of the totals in a period.
type Summary struct {
	Income  decimal.Decimal `json:"income" swaggertype:"string" example:"5000"`
	Expense decimal.Decimal `json:"expense" swaggertype:"string" example:"3000"`
	Savings decimal.Decimal `json:"savings" swaggertype:"string" example:"2000"` // Income minus expense
}

type SummaryResponse struct {
	Data Summary `json:"data"`
}

type ImportResult struct {
	Transactions []Transaction `json:"transactions"`        // The created transactions
	Skipped      int           `json:"skipped" example:"2"` // Number of lines that had been imported before
}

type ImportResponse struct {
	Data ImportResult `json:"data"`
}
