package models

import (
	"encoding/json"
	"strings"

	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the planned spending for a category in a specific month.
//
// An amount of zero means "no budget configured" for the row, which the
// analytics layer reports differently from a budget that is exactly used up.
type Budget struct {
	DefaultModel
	Month      types.Month     `gorm:"uniqueIndex:budget_month_category"`
	CategoryID uuid.UUID       `gorm:"uniqueIndex:budget_month_category"`
	Category   Category        `json:"-"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note       string
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Budget)
	return b.checkIntegrity(tx, *toSave)
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Budget)

	if tx.Statement.Changed("CategoryID") {
		err := b.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

func (b *Budget) checkIntegrity(tx *gorm.DB, toSave Budget) error {
	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Note = strings.TrimSpace(b.Note)

	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// IsUnset reports whether no budget amount is configured for the row.
func (b Budget) IsUnset() bool {
	return b.Amount.IsZero()
}

// Returns all budgets on this instance for export
func (Budget) Export() (json.RawMessage, error) {
	var budgets []Budget
	err := DB.Unscoped().Where(&Budget{}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&budgets)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
