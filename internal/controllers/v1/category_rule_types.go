package v1

import (
	"fmt"

	"github.com/centavo-app/backend/internal/models"
	cv_uuid "github.com/centavo-app/backend/internal/uuid"
	"github.com/google/uuid"
)

// CategoryRuleEditable represents all user configurable parameters
type CategoryRuleEditable struct {
	Priority   uint      `json:"priority" example:"10"`                                     // Rules are applied in ascending priority order
	Match      string    `json:"match" example:"NETFLIX*" default:""`                       // Glob pattern matched against the transaction description
	CategoryID uuid.UUID `json:"categoryId" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // ID of the category to assign on match
}

func (editable CategoryRuleEditable) model() models.CategoryRule {
	return models.CategoryRule{
		Priority:   editable.Priority,
		Match:      editable.Match,
		CategoryID: editable.CategoryID,
	}
}

type CategoryRuleLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/category-rules/1e11dd0a-ec1c-4a20-acb2-c09ae01a42a9"` // The category rule itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // The category the rule assigns
}

type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

func newCategoryRule(url string, model models.CategoryRule) CategoryRule {
	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			Priority:   model.Priority,
			Match:      model.Match,
			CategoryID: model.CategoryID,
		},
		Links: CategoryRuleLinks{
			Self:     fmt.Sprintf("%s/v1/category-rules/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type CategoryRuleListResponse struct {
	Data       []CategoryRule `json:"data"`                                                          // List of CategoryRules
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CategoryRuleCreateResponse struct {
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of the created CategoryRules or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CategoryRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Data  *CategoryRule `json:"data"`                                                          // Data for the CategoryRule
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryRuleQueryFilter struct {
	CategoryID cv_uuid.UUID `form:"category"`                   // By ID of the category
	Match      string       `form:"match" filterField:"false"`  // By match pattern
	Search     string       `form:"search" filterField:"false"` // By string in the match pattern
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first CategoryRule returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of CategoryRules to return. Defaults to 50.
}

func (f CategoryRuleQueryFilter) model() models.CategoryRule {
	return models.CategoryRule{
		CategoryID: f.CategoryID.UUID,
	}
}
