package models_test

import (
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCardDietDefault() {
	settings, err := models.LoadCardDietSettings(models.DB)
	require.Nil(suite.T(), err)

	assert.False(suite.T(), settings.Enabled)
	assert.True(suite.T(), settings.StartDate.IsZero())

	// A second load returns the same row instead of creating another one
	again, err := models.LoadCardDietSettings(models.DB)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), settings.ID, again.ID)
}

func (suite *TestSuiteStandard) TestCardDietStartDateRequired() {
	settings, err := models.LoadCardDietSettings(models.DB)
	require.Nil(suite.T(), err)

	settings.Enabled = true
	err = models.DB.Save(&settings).Error
	require.NotNil(suite.T(), err)
	assert.Equal(suite.T(), models.ErrCardDietStartDateNotSet, err)

	settings.StartDate = time.Now()
	err = models.DB.Save(&settings).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCardDietIsException() {
	allowed := uuid.New()

	settings := models.CardDietSettings{
		Exceptions: []uuid.UUID{allowed},
	}

	assert.True(suite.T(), settings.IsException(allowed))
	assert.False(suite.T(), settings.IsException(uuid.New()))
}
