package models_test

import (
	"github.com/centavo-app/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestSubscriptionBeforeSave() {
	tests := []struct {
		name   string
		status models.SubscriptionStatus
		err    error
	}{
		{"active", models.SubscriptionActive, nil},
		{"paused", models.SubscriptionPaused, nil},
		{"cancelled", models.SubscriptionCancelled, nil},
		{"empty defaults to active", "", nil},
		{"invalid status", "SNOOZED", models.ErrSubscriptionStatusInvalid},
	}

	for _, tt := range tests {
		subscription := models.Subscription{
			Merchant: "NETFLIX.COM",
			Status:   tt.status,
		}

		err := subscription.BeforeSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err, tt.name)

		if tt.status == "" && err == nil {
			assert.Equal(suite.T(), models.SubscriptionActive, subscription.Status)
		}
	}
}

func (suite *TestSuiteStandard) TestSubscriptionMerchantUppercased() {
	category := suite.createTestCategory(models.Category{})

	subscription := models.Subscription{
		Merchant:   "  spotify ag  ",
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(35000),
	}
	err := models.DB.Create(&subscription).Error
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), "SPOTIFY AG", subscription.Merchant)
}

func (suite *TestSuiteStandard) TestSubscriptionStatusUpdate() {
	category := suite.createTestCategory(models.Category{})

	subscription := models.Subscription{
		Merchant:   "NETFLIX.COM",
		CategoryID: category.ID,
	}
	err := models.DB.Create(&subscription).Error
	require.Nil(suite.T(), err)

	// An invalid status must be rejected on update, not just on create
	err = models.DB.Model(&subscription).Select("", "Status").Updates(models.Subscription{Status: "SNOOZED"}).Error
	require.NotNil(suite.T(), err)
	assert.Equal(suite.T(), models.ErrSubscriptionStatusInvalid, err)

	err = models.DB.Model(&subscription).Select("", "Status").Updates(models.Subscription{Status: models.SubscriptionPaused}).Error
	require.Nil(suite.T(), err)

	var reloaded models.Subscription
	err = models.DB.First(&reloaded, subscription.ID).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.SubscriptionPaused, reloaded.Status)
}

func (suite *TestSuiteStandard) TestSubscriptionMerchantUnique() {
	category := suite.createTestCategory(models.Category{})

	err := models.DB.Create(&models.Subscription{
		Merchant:   "NETFLIX.COM",
		CategoryID: category.ID,
	}).Error
	require.Nil(suite.T(), err)

	// Upper-casing happens before the unique check, so case differences collide
	err = models.DB.Create(&models.Subscription{
		Merchant:   "netflix.com",
		CategoryID: category.ID,
	}).Error

	require.NotNil(suite.T(), err)
	assert.Equal(suite.T(), models.ErrSubscriptionMerchantNotUnique, err)
}
