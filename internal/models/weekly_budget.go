package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WeeklyBudget is a spending limit for a category in a specific ISO week.
//
// A weekly budget is only surfaced by the analytics while its (year, week)
// pair is the current one; past and future weeks are kept but not shown.
type WeeklyBudget struct {
	DefaultModel
	CategoryID uuid.UUID
	Category   Category        `json:"-"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The limit for the week
	Year       int
	Week       int // ISO 8601 week number
}

func (w *WeeklyBudget) BeforeCreate(tx *gorm.DB) error {
	_ = w.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*WeeklyBudget)
	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (w *WeeklyBudget) BeforeSave(_ *gorm.DB) error {
	if w.Week < 1 || w.Week > 53 {
		return ErrWeeklyBudgetWeekInvalid
	}

	return nil
}

// Returns all weekly budgets on this instance for export
func (WeeklyBudget) Export() (json.RawMessage, error) {
	var weeklyBudgets []WeeklyBudget
	err := DB.Unscoped().Where(&WeeklyBudget{}).Find(&weeklyBudgets).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&weeklyBudgets)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
