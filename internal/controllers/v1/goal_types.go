package v1

import (
	"fmt"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	Month                 types.Month     `json:"month" example:"2024-07-01T00:00:00.000000Z"`                  // The month the goal applies to
	SavingsTarget         decimal.Decimal `json:"savingsTarget" example:"1000000" minimum:"0"`                  // Amount to set aside this month
	VariableSpendingLimit decimal.Decimal `json:"variableSpendingLimit" example:"2500000" minimum:"0"`          // Ceiling for variable-group spending
	MinimumDebtPayment    decimal.Decimal `json:"minimumDebtPayment" example:"900000" minimum:"0"`              // Minimum total debt payments
}

func (editable GoalEditable) model() models.MonthlyGoal {
	return models.MonthlyGoal{
		Month:                 editable.Month,
		SavingsTarget:         editable.SavingsTarget,
		VariableSpendingLimit: editable.VariableSpendingLimit,
		MinimumDebtPayment:    editable.MinimumDebtPayment,
	}
}

type GoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The goal itself
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

func newGoal(url string, model models.MonthlyGoal) Goal {
	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Month:                 model.Month,
			SavingsTarget:         model.SavingsTarget,
			VariableSpendingLimit: model.VariableSpendingLimit,
			MinimumDebtPayment:    model.MinimumDebtPayment,
		},
		Links: GoalLinks{
			Self: fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of Goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the Goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalQueryFilter struct {
	Month  string `form:"month" filterField:"false"`  // By month, in YYYY-MM format
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Goal returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Goals to return. Defaults to 50.
}
