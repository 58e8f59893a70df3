package models

import (
	"encoding/json"

	"github.com/centavo-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthlyGoal holds the targets a user sets for a single month.
// There is at most one goal per month.
type MonthlyGoal struct {
	DefaultModel
	Month                 types.Month     `gorm:"uniqueIndex"`
	SavingsTarget         decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Amount to set aside this month
	VariableSpendingLimit decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Ceiling for variable-group spending
	MinimumDebtPayment    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Minimum total debt payments
}

// Returns all monthly goals on this instance for export
func (MonthlyGoal) Export() (json.RawMessage, error) {
	var goals []MonthlyGoal
	err := DB.Unscoped().Where(&MonthlyGoal{}).Find(&goals).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&goals)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
