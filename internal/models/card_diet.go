package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardDietSettings is the single-row configuration for card diet mode.
//
// While the diet is enabled, card expenses outside the exception categories
// count as violations. Enabling the diet resets StartDate, so the streak
// always measures the current diet period.
type CardDietSettings struct {
	ID uint `gorm:"primaryKey" json:"-"`
	Timestamps
	Enabled    bool
	StartDate  time.Time
	Exceptions []uuid.UUID `gorm:"serializer:json"` // Category IDs that are allowed on card
}

func (s *CardDietSettings) BeforeSave(_ *gorm.DB) error {
	if s.Enabled && s.StartDate.IsZero() {
		return ErrCardDietStartDateNotSet
	}

	return nil
}

// IsException reports whether the category is on the diet's allow list.
func (s CardDietSettings) IsException(categoryID uuid.UUID) bool {
	for _, id := range s.Exceptions {
		if id == categoryID {
			return true
		}
	}

	return false
}

// LoadCardDietSettings returns the settings row, creating a disabled
// default if none exists yet.
func LoadCardDietSettings(db *gorm.DB) (CardDietSettings, error) {
	var settings CardDietSettings
	err := db.FirstOrCreate(&settings, CardDietSettings{ID: 1}).Error
	return settings, err
}

// Returns the card diet settings on this instance for export
func (CardDietSettings) Export() (json.RawMessage, error) {
	var settings []CardDietSettings
	err := DB.Unscoped().Where(&CardDietSettings{}).Find(&settings).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&settings)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
