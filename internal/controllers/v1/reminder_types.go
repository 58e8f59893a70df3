package v1

import (
	"fmt"
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ReminderEditable represents all user configurable parameters
type ReminderEditable struct {
	Title   string              `json:"title" example:"Rent" default:""`                          // What the payment is for
	DueDate time.Time           `json:"dueDate" example:"2024-07-05T00:00:00Z"`                   // When the payment is due
	Type    models.ReminderType `json:"type" example:"OTHER" default:"OTHER"`                     // The kind of payment
	Amount  *decimal.Decimal    `json:"amount" example:"1200000" minimum:"0" multipleOf:"1e-8"`   // The amount due, omit if unknown
}

func (editable ReminderEditable) model() models.PaymentReminder {
	return models.PaymentReminder{
		Title:   editable.Title,
		DueDate: editable.DueDate,
		Type:    editable.Type,
		Amount:  editable.Amount,
	}
}

type ReminderLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/reminders/2c5e28f6-4d27-458c-94c5-f5e8b2dd9c4a"` // The reminder itself
}

type Reminder struct {
	models.DefaultModel
	ReminderEditable
	Links ReminderLinks `json:"links"`
}

func newReminder(url string, model models.PaymentReminder) Reminder {
	return Reminder{
		DefaultModel: model.DefaultModel,
		ReminderEditable: ReminderEditable{
			Title:   model.Title,
			DueDate: model.DueDate,
			Type:    model.Type,
			Amount:  model.Amount,
		},
		Links: ReminderLinks{
			Self: fmt.Sprintf("%s/v1/reminders/%s", url, model.ID),
		},
	}
}

type ReminderListResponse struct {
	Data       []Reminder  `json:"data"`                                                          // List of Reminders
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ReminderCreateResponse struct {
	Data  []ReminderResponse `json:"data"`                                                          // List of the created Reminders or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *ReminderCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ReminderResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ReminderResponse struct {
	Data  *Reminder `json:"data"`                                                          // Data for the Reminder
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ReminderQueryFilter struct {
	Title  string              `form:"title" filterField:"false"`  // By title
	Type   models.ReminderType `form:"type"`                       // By type
	Search string              `form:"search" filterField:"false"` // By string in title
	Offset uint                `form:"offset" filterField:"false"` // The offset of the first Reminder returned. Defaults to 0.
	Limit  int                 `form:"limit" filterField:"false"`  // Maximum number of Reminders to return. Defaults to 50.
}

func (f ReminderQueryFilter) model() models.PaymentReminder {
	return models.PaymentReminder{
		Type: f.Type,
	}
}
