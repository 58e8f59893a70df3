package v1

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCategoryRuleRoutes registers the routes for category rules with
// the RouterGroup that is passed.
func RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryRuleList)
		r.GET("", GetCategoryRules)
		r.POST("", CreateCategoryRules)
	}

	// CategoryRule with ID
	{
		r.OPTIONS("/:id", OptionsCategoryRuleDetail)
		r.GET("/:id", GetCategoryRule)
		r.PATCH("/:id", UpdateCategoryRule)
		r.DELETE("/:id", DeleteCategoryRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryRules
// @Success		204
// @Router			/v1/category-rules [options]
func OptionsCategoryRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [options]
func OptionsCategoryRuleDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.CategoryRule{})
}

// @Summary		Create category rules
// @Description	Creates new rules for automatic categorization of imported transactions
// @Tags			CategoryRules
// @Produce		json
// @Success		201		{object}	CategoryRuleCreateResponse
// @Failure		400		{object}	CategoryRuleCreateResponse
// @Failure		404		{object}	CategoryRuleCreateResponse
// @Failure		500		{object}	CategoryRuleCreateResponse
// @Param			rules	body		[]CategoryRuleEditable	true	"CategoryRules"
// @Router			/v1/category-rules [post]
func CreateCategoryRules(c *gin.Context) {
	var editables []CategoryRuleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryRuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model()

		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategoryRule(c.GetString(string(models.DBContextURL)), rule)
		r.Data = append(r.Data, CategoryRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get category rules
// @Description	Returns a list of category rules
// @Tags			CategoryRules
// @Produce		json
// @Success		200	{object}	CategoryRuleListResponse
// @Failure		400	{object}	CategoryRuleListResponse
// @Failure		500	{object}	CategoryRuleListResponse
// @Router			/v1/category-rules [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			match		query	string	false	"Filter by match pattern"
// @Param			search		query	string	false	"Search for this text in the match pattern"
// @Param			offset		query	uint	false	"The offset of the first CategoryRule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of CategoryRules to return. Defaults to 50."
func GetCategoryRules(c *gin.Context) {
	var filter CategoryRuleQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("priority ASC").
		Where(filter.model(), queryFields...)

	q = likeFilter(q, setFields, "match", "Match", filter.Match)
	q = searchFilter(models.DB, q, filter.Search, "match")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 CategoryRules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var rules []models.CategoryRule
	err := q.Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]CategoryRule, 0)
	for _, rule := range rules {
		data = append(data, newCategoryRule(url, rule))
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category rule
// @Description	Returns a specific category rule
// @Tags			CategoryRules
// @Produce		json
// @Success		200	{object}	CategoryRuleResponse
// @Failure		400	{object}	CategoryRuleResponse
// @Failure		404	{object}	CategoryRuleResponse
// @Failure		500	{object}	CategoryRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [get]
func GetCategoryRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.CategoryRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	data := newCategoryRule(c.GetString(string(models.DBContextURL)), rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &data})
}

// @Summary		Update category rule
// @Description	Updates an existing category rule. Only values to be updated need to be specified.
// @Tags			CategoryRules
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		404		{object}	CategoryRuleResponse
// @Failure		500		{object}	CategoryRuleResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		CategoryRuleEditable	true	"CategoryRule"
// @Router			/v1/category-rules/{id} [patch]
func UpdateCategoryRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.CategoryRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryRuleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	var data CategoryRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &s,
		})
		return
	}

	r := newCategoryRule(c.GetString(string(models.DBContextURL)), rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &r})
}

// @Summary		Delete category rule
// @Description	Deletes a category rule
// @Tags			CategoryRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [delete]
func DeleteCategoryRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.CategoryRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
