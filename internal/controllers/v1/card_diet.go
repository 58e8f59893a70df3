package v1

import (
	"net/http"
	"time"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CardDietEditable represents all user configurable parameters
type CardDietEditable struct {
	Enabled    bool        `json:"enabled" example:"true" default:"false"`                              // Whether the diet is active
	Exceptions []uuid.UUID `json:"exceptions" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // Category IDs that are allowed on card
}

type CardDiet struct {
	Enabled    bool        `json:"enabled" example:"true"`                                    // Whether the diet is active
	StartDate  *time.Time  `json:"startDate" example:"2024-07-01T00:00:00Z"`                  // When the current diet period started
	Exceptions []uuid.UUID `json:"exceptions" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // Category IDs that are allowed on card
}

func newCardDiet(model models.CardDietSettings) CardDiet {
	data := CardDiet{
		Enabled:    model.Enabled,
		Exceptions: model.Exceptions,
	}

	if data.Exceptions == nil {
		data.Exceptions = make([]uuid.UUID, 0)
	}

	if !model.StartDate.IsZero() {
		start := model.StartDate
		data.StartDate = &start
	}

	return data
}

type CardDietResponse struct {
	Data  *CardDiet `json:"data"`                                           // The card diet settings
	Error *string   `json:"error" example:"the request body is not valid"` // The error, if any occurred
}

// RegisterCardDietRoutes registers the routes for the card diet settings
// with the RouterGroup that is passed.
//
// The settings are a singleton, there is exactly one configuration per
// instance.
func RegisterCardDietRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCardDiet)
	r.GET("", GetCardDiet)
	r.PUT("", UpdateCardDiet)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CardDiet
// @Success		204
// @Router			/v1/card-diet [options]
func OptionsCardDiet(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get card diet settings
// @Description	Returns the card diet configuration
// @Tags			CardDiet
// @Produce		json
// @Success		200	{object}	CardDietResponse
// @Failure		500	{object}	CardDietResponse
// @Router			/v1/card-diet [get]
func GetCardDiet(c *gin.Context) {
	settings, err := models.LoadCardDietSettings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardDietResponse{
			Error: &s,
		})
		return
	}

	data := newCardDiet(settings)
	c.JSON(http.StatusOK, CardDietResponse{Data: &data})
}

// @Summary		Update card diet settings
// @Description	Updates the card diet configuration. Enabling a disabled diet starts a new period from today.
// @Tags			CardDiet
// @Accept			json
// @Produce		json
// @Success		200			{object}	CardDietResponse
// @Failure		400			{object}	CardDietResponse
// @Failure		500			{object}	CardDietResponse
// @Param			cardDiet	body		CardDietEditable	true	"CardDiet"
// @Router			/v1/card-diet [put]
func UpdateCardDiet(c *gin.Context) {
	var editable CardDietEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardDietResponse{
			Error: &s,
		})
		return
	}

	settings, err := models.LoadCardDietSettings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardDietResponse{
			Error: &s,
		})
		return
	}

	// A freshly enabled diet starts its streak today
	if editable.Enabled && !settings.Enabled {
		settings.StartDate = time.Now()
	}

	settings.Enabled = editable.Enabled
	settings.Exceptions = editable.Exceptions

	err = models.DB.Save(&settings).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardDietResponse{
			Error: &s,
		})
		return
	}

	data := newCardDiet(settings)
	c.JSON(http.StatusOK, CardDietResponse{Data: &data})
}
