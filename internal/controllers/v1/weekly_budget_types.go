package v1

import (
	"fmt"

	"github.com/centavo-app/backend/internal/models"
	cv_uuid "github.com/centavo-app/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WeeklyBudgetEditable represents all user configurable parameters
type WeeklyBudgetEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // ID of the category the limit is for
	Amount     decimal.Decimal `json:"amount" example:"400000" minimum:"0" multipleOf:"1e-8"`     // The limit for the week
	Year       int             `json:"year" example:"2024"`                                       // The ISO year the budget applies to
	Week       int             `json:"week" example:"27" minimum:"1" maximum:"53"`                // The ISO 8601 week number
}

func (editable WeeklyBudgetEditable) model() models.WeeklyBudget {
	return models.WeeklyBudget{
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Year:       editable.Year,
		Week:       editable.Week,
	}
}

type WeeklyBudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/weekly-budgets/f3a1b5c9-8c2e-44d7-9f1a-6b0e3d8c2a51"`  // The weekly budget itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // The category the limit is for
}

type WeeklyBudget struct {
	models.DefaultModel
	WeeklyBudgetEditable
	Links WeeklyBudgetLinks `json:"links"`
}

func newWeeklyBudget(url string, model models.WeeklyBudget) WeeklyBudget {
	return WeeklyBudget{
		DefaultModel: model.DefaultModel,
		WeeklyBudgetEditable: WeeklyBudgetEditable{
			CategoryID: model.CategoryID,
			Amount:     model.Amount,
			Year:       model.Year,
			Week:       model.Week,
		},
		Links: WeeklyBudgetLinks{
			Self:     fmt.Sprintf("%s/v1/weekly-budgets/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type WeeklyBudgetListResponse struct {
	Data       []WeeklyBudget `json:"data"`                                                          // List of WeeklyBudgets
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type WeeklyBudgetCreateResponse struct {
	Data  []WeeklyBudgetResponse `json:"data"`                                                          // List of the created WeeklyBudgets or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (w *WeeklyBudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	w.Data = append(w.Data, WeeklyBudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type WeeklyBudgetResponse struct {
	Data  *WeeklyBudget `json:"data"`                                                          // Data for the WeeklyBudget
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type WeeklyBudgetQueryFilter struct {
	CategoryID cv_uuid.UUID `form:"category"`                   // By ID of the category
	Year       int          `form:"year"`                       // By ISO year
	Week       int          `form:"week"`                       // By ISO week number
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first WeeklyBudget returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of WeeklyBudgets to return. Defaults to 50.
}

func (f WeeklyBudgetQueryFilter) model() models.WeeklyBudget {
	return models.WeeklyBudget{
		CategoryID: f.CategoryID.UUID,
		Year:       f.Year,
		Week:       f.Week,
	}
}
