package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// swagger:enum SubscriptionStatus
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionPaused    SubscriptionStatus = "PAUSED"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

// Subscription is a recurring charge detected from the transaction history.
//
// Subscriptions are regenerated whenever the transaction set changes. The
// status is the only user-controlled field; it is carried over to the
// regenerated entry by merchant so that pausing or cancelling survives
// redetection.
type Subscription struct {
	DefaultModel
	Merchant      string          `gorm:"uniqueIndex"`        // Upper-cased transaction description
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Mean amount of the detected charges
	CategoryID    uuid.UUID
	Category      Category `json:"-"`
	LastCharge    time.Time
	NextEstimated time.Time
	Status        SubscriptionStatus
}

func (s *Subscription) BeforeSave(_ *gorm.DB) error {
	s.Merchant = strings.ToUpper(strings.TrimSpace(s.Merchant))

	if s.Status == "" {
		s.Status = SubscriptionActive
	}

	switch s.Status {
	case SubscriptionActive, SubscriptionPaused, SubscriptionCancelled:
	default:
		return ErrSubscriptionStatusInvalid
	}

	return nil
}

func (s *Subscription) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Subscription)

	if tx.Statement.Changed("Status") {
		switch toSave.Status {
		case SubscriptionActive, SubscriptionPaused, SubscriptionCancelled:
		default:
			return ErrSubscriptionStatusInvalid
		}
	}

	return nil
}

// Returns all subscriptions on this instance for export
func (Subscription) Export() (json.RawMessage, error) {
	var subscriptions []Subscription
	err := DB.Unscoped().Where(&Subscription{}).Find(&subscriptions).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&subscriptions)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
