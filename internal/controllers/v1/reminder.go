package v1

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterReminderRoutes registers the routes for payment reminders with
// the RouterGroup that is passed.
func RegisterReminderRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsReminderList)
		r.GET("", GetReminders)
		r.POST("", CreateReminders)
	}

	// Reminder with ID
	{
		r.OPTIONS("/:id", OptionsReminderDetail)
		r.GET("/:id", GetReminder)
		r.PATCH("/:id", UpdateReminder)
		r.DELETE("/:id", DeleteReminder)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Router			/v1/reminders [options]
func OptionsReminderList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id} [options]
func OptionsReminderDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.PaymentReminder{})
}

// @Summary		Create reminders
// @Description	Creates new payment reminders
// @Tags			Reminders
// @Produce		json
// @Success		201			{object}	ReminderCreateResponse
// @Failure		400			{object}	ReminderCreateResponse
// @Failure		500			{object}	ReminderCreateResponse
// @Param			reminders	body		[]ReminderEditable	true	"Reminders"
// @Router			/v1/reminders [post]
func CreateReminders(c *gin.Context) {
	var editables []ReminderEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ReminderCreateResponse{}

	for _, editable := range editables {
		reminder := editable.model()

		err = models.DB.Create(&reminder).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newReminder(c.GetString(string(models.DBContextURL)), reminder)
		r.Data = append(r.Data, ReminderResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get reminders
// @Description	Returns a list of payment reminders
// @Tags			Reminders
// @Produce		json
// @Success		200	{object}	ReminderListResponse
// @Failure		400	{object}	ReminderListResponse
// @Failure		500	{object}	ReminderListResponse
// @Router			/v1/reminders [get]
// @Param			title	query	string	false	"Filter by title"
// @Param			type	query	string	false	"Filter by type"
// @Param			search	query	string	false	"Search for this text in the title"
// @Param			offset	query	uint	false	"The offset of the first Reminder returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Reminders to return. Defaults to 50."
func GetReminders(c *gin.Context) {
	var filter ReminderQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("due_date ASC").
		Where(filter.model(), queryFields...)

	q = likeFilter(q, setFields, "title", "Title", filter.Title)
	q = searchFilter(models.DB, q, filter.Search, "title")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Reminders and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var reminders []models.PaymentReminder
	err := q.Find(&reminders).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]Reminder, 0)
	for _, reminder := range reminders {
		data = append(data, newReminder(url, reminder))
	}

	c.JSON(http.StatusOK, ReminderListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get reminder
// @Description	Returns a specific payment reminder
// @Tags			Reminders
// @Produce		json
// @Success		200	{object}	ReminderResponse
// @Failure		400	{object}	ReminderResponse
// @Failure		404	{object}	ReminderResponse
// @Failure		500	{object}	ReminderResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id} [get]
func GetReminder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var reminder models.PaymentReminder
	err = models.DB.First(&reminder, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	data := newReminder(c.GetString(string(models.DBContextURL)), reminder)
	c.JSON(http.StatusOK, ReminderResponse{Data: &data})
}

// @Summary		Update reminder
// @Description	Updates an existing payment reminder. Only values to be updated need to be specified.
// @Tags			Reminders
// @Accept			json
// @Produce		json
// @Success		200			{object}	ReminderResponse
// @Failure		400			{object}	ReminderResponse
// @Failure		404			{object}	ReminderResponse
// @Failure		500			{object}	ReminderResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			reminder	body		ReminderEditable	true	"Reminder"
// @Router			/v1/reminders/{id} [patch]
func UpdateReminder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var reminder models.PaymentReminder
	err = models.DB.First(&reminder, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ReminderEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var data ReminderEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&reminder).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	r := newReminder(c.GetString(string(models.DBContextURL)), reminder)
	c.JSON(http.StatusOK, ReminderResponse{Data: &r})
}

// @Summary		Delete reminder
// @Description	Deletes a payment reminder
// @Tags			Reminders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id} [delete]
func DeleteReminder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var reminder models.PaymentReminder
	err = models.DB.First(&reminder, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&reminder).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
