package v1

import (
	"fmt"

	"github.com/centavo-app/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name      string               `json:"name" example:"Supermercado" default:""`  // Name of the category
	Group     models.CategoryGroup `json:"group" example:"VARIABLE" default:""`     // Group the category belongs to
	Essential bool                 `json:"essential" example:"true" default:"false"` // Is spending in this category non-discretionary?
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:      editable.Name,
		Group:     editable.Group,
		Essential: editable.Essential,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                  // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions for this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(url string, model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:      model.Name,
			Group:     model.Group,
			Essential: model.Essential,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name      string               `form:"name" filterField:"false"`   // By name
	Group     models.CategoryGroup `form:"group"`                      // By group
	Essential bool                 `form:"essential"`                  // Is the category essential?
	Search    string               `form:"search" filterField:"false"` // By string in name
	Offset    uint                 `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit     int                  `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		Group:     f.Group,
		Essential: f.Essential,
	}
}
