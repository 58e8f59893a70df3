package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Debt represents an outstanding debt with a monthly payment target.
//
// Payments towards a debt are recorded as expense transactions in the
// category the debt references. A debt without an APR is excluded from
// the avalanche payoff ordering.
type Debt struct {
	DefaultModel
	Name           string
	CategoryID     uuid.UUID        // The category the debt's payments are recorded under
	Category       Category         `json:"-"`
	Balance        decimal.Decimal  `gorm:"type:DECIMAL(20,8)"` // Total amount still owed
	APR            *decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Annual interest rate in percent
	MonthlyPayment decimal.Decimal  `gorm:"type:DECIMAL(20,8)"` // Target payment per month
	DueDay         int              // Day of month the payment is due, 1-31
}

func (d *Debt) BeforeCreate(tx *gorm.DB) error {
	_ = d.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Debt)
	return d.checkIntegrity(tx, *toSave)
}

func (d *Debt) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Debt)

	if tx.Statement.Changed("CategoryID") {
		err := d.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *Debt) checkIntegrity(tx *gorm.DB, toSave Debt) error {
	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)

	if d.DueDay < 1 || d.DueDay > 31 {
		return ErrDebtDueDayInvalid
	}

	return nil
}

// Returns all debts on this instance for export
func (Debt) Export() (json.RawMessage, error) {
	var debts []Debt
	err := DB.Unscoped().Where(&Debt{}).Find(&debts).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&debts)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
