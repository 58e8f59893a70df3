package v1

import (
	"fmt"

	"github.com/centavo-app/backend/internal/models"
	cv_uuid "github.com/centavo-app/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtEditable represents all user configurable parameters
type DebtEditable struct {
	Name           string           `json:"name" example:"Tarjeta Itaú" default:""`                    // Name of the debt
	CategoryID     uuid.UUID        `json:"categoryId" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // ID of the category payments are recorded under
	Balance        decimal.Decimal  `json:"balance" example:"8400000" minimum:"0" multipleOf:"1e-8"`   // Total amount still owed
	APR            *decimal.Decimal `json:"apr" example:"24.5" minimum:"0"`                            // Annual interest rate in percent, omit if unknown
	MonthlyPayment decimal.Decimal  `json:"monthlyPayment" example:"900000" minimum:"0"`               // Target payment per month
	DueDay         int              `json:"dueDay" example:"5" minimum:"1" maximum:"31"`               // Day of month the payment is due
}

func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		Name:           editable.Name,
		CategoryID:     editable.CategoryID,
		Balance:        editable.Balance,
		APR:            editable.APR,
		MonthlyPayment: editable.MonthlyPayment,
		DueDay:         editable.DueDay,
	}
}

type DebtLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/debts/a9f7c3e1-46b2-4b9f-9d0a-91c2f77a20b4"`           // The debt itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // The category payments are recorded under
}

type Debt struct {
	models.DefaultModel
	DebtEditable
	Links DebtLinks `json:"links"`
}

func newDebt(url string, model models.Debt) Debt {
	return Debt{
		DefaultModel: model.DefaultModel,
		DebtEditable: DebtEditable{
			Name:           model.Name,
			CategoryID:     model.CategoryID,
			Balance:        model.Balance,
			APR:            model.APR,
			MonthlyPayment: model.MonthlyPayment,
			DueDay:         model.DueDay,
		},
		Links: DebtLinks{
			Self:     fmt.Sprintf("%s/v1/debts/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type DebtListResponse struct {
	Data       []Debt      `json:"data"`                                                          // List of Debts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DebtCreateResponse struct {
	Data  []DebtResponse `json:"data"`                                                          // List of the created Debts or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (d *DebtCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DebtResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DebtResponse struct {
	Data  *Debt   `json:"data"`                                                          // Data for the Debt
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DebtQueryFilter struct {
	CategoryID cv_uuid.UUID `form:"category"`                   // By ID of the category
	Name       string       `form:"name" filterField:"false"`   // By name
	Search     string       `form:"search" filterField:"false"` // By string in name
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first Debt returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of Debts to return. Defaults to 50.
}

func (f DebtQueryFilter) model() models.Debt {
	return models.Debt{
		CategoryID: f.CategoryID.UUID,
	}
}
