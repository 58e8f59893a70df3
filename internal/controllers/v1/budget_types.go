package v1

import (
	"fmt"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	cv_uuid "github.com/centavo-app/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Month      types.Month     `json:"month" example:"2024-07-01T00:00:00.000000Z"`               // The month the budget applies to
	CategoryID uuid.UUID       `json:"categoryId" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // ID of the category the budget is for
	Amount     decimal.Decimal `json:"amount" example:"1500000" minimum:"0" multipleOf:"1e-8"`    // The budgeted amount, 0 means no budget is configured
	Note       string          `json:"note" example:"Incluye la cena de cumpleaños" default:""`   // A note about the budget
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Month:      editable.Month,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Note:       editable.Note,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/d5b3a0e8-0407-4c9e-8b32-16e338c7e7e0"`        // The budget itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // The category the budget is for
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(url string, model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Month:      model.Month,
			CategoryID: model.CategoryID,
			Amount:     model.Amount,
			Note:       model.Note,
		},
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of Budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of the created Budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the Budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	CategoryID cv_uuid.UUID `form:"category"`                   // By ID of the category
	Month      string       `form:"month" filterField:"false"`  // By month, in YYYY-MM format
	Note       string       `form:"note" filterField:"false"`   // By note
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		CategoryID: f.CategoryID.UUID,
	}
}

// BudgetCopyQuery are the parameters for copying budgets between months
type BudgetCopyQuery struct {
	From string `form:"from" binding:"required" example:"2024-06"` // The month to copy budgets from, in YYYY-MM format
	To   string `form:"to" binding:"required" example:"2024-07"`   // The month to copy budgets to, in YYYY-MM format
}
