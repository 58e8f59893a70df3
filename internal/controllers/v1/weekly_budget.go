package v1

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterWeeklyBudgetRoutes registers the routes for weekly budgets with
// the RouterGroup that is passed.
func RegisterWeeklyBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsWeeklyBudgetList)
		r.GET("", GetWeeklyBudgets)
		r.POST("", CreateWeeklyBudgets)
	}

	// WeeklyBudget with ID
	{
		r.OPTIONS("/:id", OptionsWeeklyBudgetDetail)
		r.GET("/:id", GetWeeklyBudget)
		r.PATCH("/:id", UpdateWeeklyBudget)
		r.DELETE("/:id", DeleteWeeklyBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			WeeklyBudgets
// @Success		204
// @Router			/v1/weekly-budgets [options]
func OptionsWeeklyBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			WeeklyBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weekly-budgets/{id} [options]
func OptionsWeeklyBudgetDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.WeeklyBudget{})
}

// @Summary		Create weekly budgets
// @Description	Creates new weekly spending limits
// @Tags			WeeklyBudgets
// @Produce		json
// @Success		201				{object}	WeeklyBudgetCreateResponse
// @Failure		400				{object}	WeeklyBudgetCreateResponse
// @Failure		404				{object}	WeeklyBudgetCreateResponse
// @Failure		500				{object}	WeeklyBudgetCreateResponse
// @Param			weeklyBudgets	body		[]WeeklyBudgetEditable	true	"WeeklyBudgets"
// @Router			/v1/weekly-budgets [post]
func CreateWeeklyBudgets(c *gin.Context) {
	var editables []WeeklyBudgetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyBudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := WeeklyBudgetCreateResponse{}

	for _, editable := range editables {
		weeklyBudget := editable.model()

		err = models.DB.Create(&weeklyBudget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newWeeklyBudget(c.GetString(string(models.DBContextURL)), weeklyBudget)
		r.Data = append(r.Data, WeeklyBudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get weekly budgets
// @Description	Returns a list of weekly spending limits
// @Tags			WeeklyBudgets
// @Produce		json
// @Success		200	{object}	WeeklyBudgetListResponse
// @Failure		400	{object}	WeeklyBudgetListResponse
// @Failure		500	{object}	WeeklyBudgetListResponse
// @Router			/v1/weekly-budgets [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			year		query	int		false	"Filter by ISO year"
// @Param			week		query	int		false	"Filter by ISO week number"
// @Param			offset		query	uint	false	"The offset of the first WeeklyBudget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of WeeklyBudgets to return. Defaults to 50."
func GetWeeklyBudgets(c *gin.Context) {
	var filter WeeklyBudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("year DESC, week DESC").
		Where(filter.model(), queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 WeeklyBudgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var weeklyBudgets []models.WeeklyBudget
	err := q.Find(&weeklyBudgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyBudgetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyBudgetListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]WeeklyBudget, 0)
	for _, weeklyBudget := range weeklyBudgets {
		data = append(data, newWeeklyBudget(url, weeklyBudget))
	}

	c.JSON(http.StatusOK, WeeklyBudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get weekly budget
// @Description	Returns a specific weekly spending limit
// @Tags			WeeklyBudgets
// @Produce		json
// @Success		200	{object}	WeeklyBudgetResponse
// @Failure		400	{object}	WeeklyBudgetResponse
// @Failure		404	{object}	WeeklyBudgetResponse
// @Failure		500	{object}	WeeklyBudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weekly-budgets/{id} [get]
func GetWeeklyBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &s,
		})
		return
	}

	var weeklyBudget models.WeeklyBudget
	err = models.DB.First(&weeklyBudget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &s,
		})
		return
	}

	data := newWeeklyBudget(c.GetString(string(models.DBContextURL)), weeklyBudget)
	c.JSON(http.StatusOK, WeeklyBudgetResponse{Data: &data})
}

// @Summary		Update weekly budget
// @Description	Updates an existing weekly spending limit. Only values to be updated need to be specified.
// @Tags			WeeklyBudgets
// @Accept			json
// @Produce		json
// @Success		200				{object}	WeeklyBudgetResponse
// @Failure		400				{object}	WeeklyBudgetResponse
// @Failure		404				{object}	WeeklyBudgetResponse
// @Failure		500				{object}	WeeklyBudgetResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			weeklyBudget	body		WeeklyBudgetEditable	true	"WeeklyBudget"
// @Router			/v1/weekly-budgets/{id} [patch]
func UpdateWeeklyBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &s,
		})
		return
	}

	var weeklyBudget models.WeeklyBudget
	err = models.DB.First(&weeklyBudget, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, WeeklyBudgetEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &s,
		})
		return
	}

	var data WeeklyBudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&weeklyBudget).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyBudgetResponse{
			Error: &s,
		})
		return
	}

	r := newWeeklyBudget(c.GetString(string(models.DBContextURL)), weeklyBudget)
	c.JSON(http.StatusOK, WeeklyBudgetResponse{Data: &r})
}

// @Summary		Delete weekly budget
// @Description	Deletes a weekly spending limit
// @Tags			WeeklyBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/weekly-budgets/{id} [delete]
func DeleteWeeklyBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var weeklyBudget models.WeeklyBudget
	err = models.DB.First(&weeklyBudget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&weeklyBudget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
