package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// swagger:enum ReminderType
type ReminderType string

const (
	ReminderCardClose    ReminderType = "CARD_CLOSE"
	ReminderCardDue      ReminderType = "CARD_DUE"
	ReminderSubscription ReminderType = "SUBSCRIPTION"
	ReminderOther        ReminderType = "OTHER"
)

// PaymentReminder is a manually created reminder for an upcoming payment.
type PaymentReminder struct {
	DefaultModel
	Title   string
	DueDate time.Time
	Type    ReminderType
	Amount  *decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (r *PaymentReminder) BeforeSave(_ *gorm.DB) error {
	r.Title = strings.TrimSpace(r.Title)

	if r.Type == "" {
		r.Type = ReminderOther
	}

	switch r.Type {
	case ReminderCardClose, ReminderCardDue, ReminderSubscription, ReminderOther:
	default:
		return ErrReminderTypeInvalid
	}

	return nil
}

// Returns all payment reminders on this instance for export
func (PaymentReminder) Export() (json.RawMessage, error) {
	var reminders []PaymentReminder
	err := DB.Unscoped().Where(&PaymentReminder{}).Find(&reminders).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&reminders)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
