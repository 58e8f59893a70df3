package models_test

import (
	"github.com/centavo-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestReminderBeforeSave() {
	tests := []struct {
		name  string
		rType models.ReminderType
		err   error
	}{
		{"card close", models.ReminderCardClose, nil},
		{"card due", models.ReminderCardDue, nil},
		{"subscription", models.ReminderSubscription, nil},
		{"other", models.ReminderOther, nil},
		{"empty defaults to other", "", nil},
		{"invalid type", "BIRTHDAY", models.ErrReminderTypeInvalid},
	}

	for _, tt := range tests {
		reminder := models.PaymentReminder{
			Title: "Cierre Visa",
			Type:  tt.rType,
		}

		err := reminder.BeforeSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err, tt.name)

		if tt.rType == "" && err == nil {
			assert.Equal(suite.T(), models.ReminderOther, reminder.Type)
		}
	}
}

func (suite *TestSuiteStandard) TestReminderTrimWhitespace() {
	reminder := models.PaymentReminder{
		Title:   "  Vencimiento Visa \t",
		DueDate: testDate,
	}
	err := models.DB.Create(&reminder).Error
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), "Vencimiento Visa", reminder.Title)
}
