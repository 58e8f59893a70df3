package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// swagger:enum TransactionType
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// swagger:enum TransactionAccount
type TransactionAccount string

const (
	AccountCash TransactionAccount = "CASH"
	AccountBank TransactionAccount = "BANK"
	AccountCard TransactionAccount = "CARD"
)

// Transaction represents a single income or expense movement.
type Transaction struct {
	DefaultModel
	Date        time.Time // Day precision, time of day is ignored by all calculations
	Description string
	CategoryID  uuid.UUID
	Category    Category `json:"-"`
	Type        TransactionType
	Account     TransactionAccount
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Tags        []string        `gorm:"serializer:json"`
	Note        string
	ImportHash  string // The SHA256 hash of a unique combination of values to use in duplicate detection
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Transaction)

	if tx.Statement.Changed("CategoryID") {
		err := t.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the category the transaction references exists.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Note = strings.TrimSpace(t.Note)

	switch t.Type {
	case TransactionTypeIncome, TransactionTypeExpense:
	default:
		return ErrTransactionTypeInvalid
	}

	switch t.Account {
	case AccountCash, AccountBank, AccountCard:
	default:
		return ErrTransactionAccountInvalid
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrAmountNotPositive
	}

	return nil
}

// Returns all transactions on this instance for export
func (Transaction) Export() (json.RawMessage, error) {
	var transactions []Transaction
	err := DB.Unscoped().Where(&Transaction{}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&transactions)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
