package v1

import (
	"fmt"
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionEditable represents all user configurable parameters.
//
// Everything else on a subscription is owned by detection and regenerated
// from the transaction history.
type SubscriptionEditable struct {
	Status models.SubscriptionStatus `json:"status" example:"PAUSED" default:"ACTIVE"` // The status of the subscription
}

func (editable SubscriptionEditable) model() models.Subscription {
	return models.Subscription{
		Status: editable.Status,
	}
}

type SubscriptionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/subscriptions/91dbc4a0-5b5f-4a4a-aa10-2e02bb1f9a7d"` // The subscription itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // The category of the most recent charge
}

type Subscription struct {
	models.DefaultModel
	Merchant      string                    `json:"merchant" example:"NETFLIX"`                                // Case normalized transaction description
	Amount        decimal.Decimal           `json:"amount" example:"50167"`                                    // Mean amount of the detected charges
	CategoryID    uuid.UUID                 `json:"categoryId" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // ID of the category of the most recent charge
	LastCharge    time.Time                 `json:"lastCharge" example:"2024-07-15T00:00:00Z"`                 // Date of the most recent charge
	NextEstimated time.Time                 `json:"nextEstimated" example:"2024-08-15T00:00:00Z"`              // Estimated date of the next charge
	Status        models.SubscriptionStatus `json:"status" example:"ACTIVE"`                                   // The status of the subscription
	Links         SubscriptionLinks         `json:"links"`
}

func newSubscription(url string, model models.Subscription) Subscription {
	return Subscription{
		DefaultModel:  model.DefaultModel,
		Merchant:      model.Merchant,
		Amount:        model.Amount,
		CategoryID:    model.CategoryID,
		LastCharge:    model.LastCharge,
		NextEstimated: model.NextEstimated,
		Status:        model.Status,
		Links: SubscriptionLinks{
			Self:     fmt.Sprintf("%s/v1/subscriptions/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type SubscriptionListResponse struct {
	Data       []Subscription `json:"data"`                                                          // List of Subscriptions
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type SubscriptionResponse struct {
	Data  *Subscription `json:"data"`                                                          // Data for the Subscription
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SubscriptionQueryFilter struct {
	Status models.SubscriptionStatus `form:"status"`                     // By status
	Search string                    `form:"search" filterField:"false"` // By string in the merchant
	Offset uint                      `form:"offset" filterField:"false"` // The offset of the first Subscription returned. Defaults to 0.
	Limit  int                       `form:"limit" filterField:"false"`  // Maximum number of Subscriptions to return. Defaults to 50.
}

func (f SubscriptionQueryFilter) model() models.Subscription {
	return models.Subscription{
		Status: f.Status,
	}
}
