package v1

import (
	"net/http"

	"github.com/centavo-app/backend/internal/analytics"
	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterSubscriptionRoutes registers the routes for subscriptions with
// the RouterGroup that is passed.
//
// Subscriptions are detected from the transaction history, so there is no
// create endpoint. Regeneration replaces the list while keeping user set
// statuses.
func RegisterSubscriptionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSubscriptionList)
		r.GET("", GetSubscriptions)
	}

	// Regeneration from the transaction history
	{
		r.OPTIONS("/regenerate", OptionsSubscriptionRegenerate)
		r.POST("/regenerate", RegenerateSubscriptions)
	}

	// Subscription with ID
	{
		r.OPTIONS("/:id", OptionsSubscriptionDetail)
		r.GET("/:id", GetSubscription)
		r.PATCH("/:id", UpdateSubscription)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Router			/v1/subscriptions [options]
func OptionsSubscriptionList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Router			/v1/subscriptions/regenerate [options]
func OptionsSubscriptionRegenerate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [options]
func OptionsSubscriptionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Subscription{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Regenerate subscriptions
// @Description	Redetects recurring charges from the full transaction history. User set statuses are kept by merchant.
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionListResponse
// @Failure		500	{object}	SubscriptionListResponse
// @Router			/v1/subscriptions/regenerate [post]
func RegenerateSubscriptions(c *gin.Context) {
	var transactions []models.Transaction
	err := models.DB.Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &s,
		})
		return
	}

	var existing []models.Subscription
	err = models.DB.Find(&existing).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &s,
		})
		return
	}

	subscriptions := analytics.MergeSubscriptionStatus(analytics.DetectSubscriptions(transactions), existing)

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.Subscription{}).Error
		if err != nil {
			return err
		}

		for i := range subscriptions {
			err = tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&subscriptions[i]).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &s,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]Subscription, 0)
	for _, subscription := range subscriptions {
		data = append(data, newSubscription(url, subscription))
	}

	c.JSON(http.StatusOK, SubscriptionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count: len(data),
			Total: int64(len(data)),
			Limit: len(data),
		},
	})
}

// @Summary		Get subscriptions
// @Description	Returns a list of detected subscriptions
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionListResponse
// @Failure		400	{object}	SubscriptionListResponse
// @Failure		500	{object}	SubscriptionListResponse
// @Router			/v1/subscriptions [get]
// @Param			status	query	string	false	"Filter by status"
// @Param			search	query	string	false	"Search for this text in the merchant"
// @Param			offset	query	uint	false	"The offset of the first Subscription returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Subscriptions to return. Defaults to 50."
func GetSubscriptions(c *gin.Context) {
	var filter SubscriptionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("merchant ASC").
		Where(filter.model(), queryFields...)

	q = searchFilter(models.DB, q, filter.Search, "merchant")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Subscriptions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var subscriptions []models.Subscription
	err := q.Find(&subscriptions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]Subscription, 0)
	for _, subscription := range subscriptions {
		data = append(data, newSubscription(url, subscription))
	}

	c.JSON(http.StatusOK, SubscriptionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get subscription
// @Description	Returns a specific subscription
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionResponse
// @Failure		400	{object}	SubscriptionResponse
// @Failure		404	{object}	SubscriptionResponse
// @Failure		500	{object}	SubscriptionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [get]
func GetSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	data := newSubscription(c.GetString(string(models.DBContextURL)), subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &data})
}

// @Summary		Update subscription
// @Description	Updates the status of a subscription. All other fields are owned by detection.
// @Tags			Subscriptions
// @Accept			json
// @Produce		json
// @Success		200				{object}	SubscriptionResponse
// @Failure		400				{object}	SubscriptionResponse
// @Failure		404				{object}	SubscriptionResponse
// @Failure		500				{object}	SubscriptionResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subscription	body		SubscriptionEditable	true	"Subscription"
// @Router			/v1/subscriptions/{id} [patch]
func UpdateSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SubscriptionEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	var data SubscriptionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&subscription).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubscriptionResponse{
			Error: &s,
		})
		return
	}

	r := newSubscription(c.GetString(string(models.DBContextURL)), subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &r})
}
