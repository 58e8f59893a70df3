package v1

import (
	"errors"
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterGoalRoutes registers the routes for monthly goals with
// the RouterGroup that is passed.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group. Goals are created with PUT as there is
	// at most one goal per month
	{
		r.OPTIONS("", OptionsGoalList)
		r.GET("", GetGoals)
		r.PUT("", UpsertGoal)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.DELETE("/:id", DeleteGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.MonthlyGoal{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create or update a goal
// @Description	Creates the goal for the month in the body, or updates it if one already exists
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [put]
func UpsertGoal(c *gin.Context) {
	var editable GoalEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	var goal models.MonthlyGoal
	err = models.DB.Where("month = ?", editable.Month).First(&goal).Error

	// No goal for the month yet, create one
	if errors.Is(err, models.ErrResourceNotFound) {
		goal = editable.model()

		err = models.DB.Create(&goal).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), GoalResponse{
				Error: &s,
			})
			return
		}

		data := newGoal(c.GetString(string(models.DBContextURL)), goal)
		c.JSON(http.StatusCreated, GoalResponse{Data: &data})
		return
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&goal).Updates(editable.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	data := newGoal(c.GetString(string(models.DBContextURL)), goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Get goals
// @Description	Returns a list of monthly goals
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		400	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/v1/goals [get]
// @Param			month	query	string	false	"Filter by month, in YYYY-MM format"
// @Param			offset	query	uint	false	"The offset of the first Goal returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Goals to return. Defaults to 50."
func GetGoals(c *gin.Context) {
	var filter GoalQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("month DESC")

	// Filter for the month if it is set
	if slices.Contains(setFields, "Month") {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, GoalListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("month = ?", month)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Goals and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var goals []models.MonthlyGoal
	err := q.Find(&goals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]Goal, 0)
	for _, goal := range goals {
		data = append(data, newGoal(url, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get goal
// @Description	Returns a specific monthly goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	var goal models.MonthlyGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	data := newGoal(c.GetString(string(models.DBContextURL)), goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Delete goal
// @Description	Deletes a monthly goal
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var goal models.MonthlyGoal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
