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

type BudgetEditable struct {
	Category string           `json:"category" example:"groceries"`                                                          // Category the budget limits spending for
	Limit    decimal.Decimal  `json:"limit" swaggertype:"string" example:"400" minimum:"0.00000001" multipleOf:"0.00000001"` // Maximum spending in the period
	Type     types.PeriodType `json:"type" example:"monthly"`                                                                // Either monthly or yearly
	Year     types.Int        `json:"year" swaggertype:"integer" example:"2024" minimum:"2000"`                              // Year of the budget. Numbers and numeric strings are accepted
	Month    *types.Int       `json:"month" swaggertype:"integer" example:"3" minimum:"1" maximum:"12"`                      // Month of the budget. Required for monthly budgets, must be empty for yearly ones
}

func (editable BudgetEditable) input() service.BudgetInput {
	return service.BudgetInput{
		Category: editable.Category,
		Limit:    editable.Limit,
		Type:     editable.Type,
		Year:     int(editable.Year),
		Month:    types.IntPtr(editable.Month),
	}
}

// BudgetPatch contains the fields to update. Fields that are not sent
// are left unchanged.
type BudgetPatch struct {
	Category *string           `json:"category" example:"rent"`
	Limit    *decimal.Decimal  `json:"limit" swaggertype:"string" example:"1200"`
	Type     *types.PeriodType `json:"type" example:"yearly"`
	Year     *types.Int        `json:"year" swaggertype:"integer" example:"2025"`
	Month    *types.Int        `json:"month" swaggertype:"integer" example:"4"`
}

func (p BudgetPatch) patch() service.BudgetPatch {
	return service.BudgetPatch{
		Category: p.Category,
		Limit:    p.Limit,
		Type:     p.Type,
		Year:     types.IntPtr(p.Year),
		Month:    types.IntPtr(p.Month),
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget itself
}

// Budget is the API representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category: model.Category,
			Limit:    model.Limit,
			Type:     model.Type,
			Year:     types.Int(model.Year),
			Month:    types.IntOf(model.Month),
		},
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/budgets/%s", httputil.APIURL(c), model.ID),
		},
	}
}

type BudgetResponse struct {
	Data Budget `json:"data"` // Data for the budget
}

type BudgetListResponse struct {
	Data []Budget `json:"data"` // List of budgets
}

// Utilization is the spending against a budget.
type Utilization struct {
	ID                 string           `json:"id" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Category           string           `json:"category" example:"groceries"`
	Limit              decimal.Decimal  `json:"limit" swaggertype:"string" example:"100"`
	Spent              decimal.Decimal  `json:"spent" swaggertype:"string" example:"20"`
	Remaining          decimal.Decimal  `json:"remaining" swaggertype:"string" example:"80"` // Negative when the budget is exceeded
	UtilizationPercent string           `json:"utilizationPercent" example:"20.00%"`
	Type               types.PeriodType `json:"type" example:"monthly"`
	Year               int              `json:"year" example:"2024"`
	Month              *int             `json:"month" example:"3"`
	Links              BudgetLinks      `json:"links"`
}

func newUtilization(c *gin.Context, u service.Utilization) Utilization {
	return Utilization{
		ID:                 u.Budget.ID.String(),
		Category:           u.Budget.Category,
		Limit:              u.Budget.Limit,
		Spent:              u.Spent,
		Remaining:          u.Remaining,
		UtilizationPercent: u.Percent.StringFixed(2) + "%",
		Type:               u.Budget.Type,
		Year:               u.Budget.Year,
		Month:              u.Budget.Month,
		Links:              newBudget(c, u.Budget).Links,
	}
}

type UtilizationListResponse struct {
	Data []Utilization `json:"data"`
}
