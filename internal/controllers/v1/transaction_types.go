package v1

import (
	"fmt"
	"time"

	"github.com/centavo-app/backend/internal/models"
	cv_uuid "github.com/centavo-app/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date        time.Time                 `json:"date" example:"2024-07-02T00:00:00Z"`                            // Date of the transaction, time of day is ignored
	Description string                    `json:"description" example:"Supermercado Stock" default:""`            // Description of the transaction
	CategoryID  uuid.UUID                 `json:"categoryId" example:"c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"`      // ID of the category
	Type        models.TransactionType    `json:"type" example:"EXPENSE" default:""`                              // Whether money came in or went out
	Account     models.TransactionAccount `json:"account" example:"CARD" default:""`                              // The account the money moved on
	Amount      decimal.Decimal           `json:"amount" example:"145000" minimum:"0.00000001" multipleOf:"1e-8"` // The amount of the transaction, must be positive
	Tags        []string                  `json:"tags" example:"compartido"`                                      // Free-form labels
	Note        string                    `json:"note" example:"Compra semanal" default:""`                       // A note about the transaction
	ImportHash  string                    `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917f4016bbbcf4325fe08114b3" default:""` // The SHA256 hash of a unique combination of values to use in duplicate detection for imports
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:        editable.Date,
		Description: editable.Description,
		CategoryID:  editable.CategoryID,
		Type:        editable.Type,
		Account:     editable.Account,
		Amount:      editable.Amount,
		Tags:        editable.Tags,
		Note:        editable.Note,
		ImportHash:  editable.ImportHash,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`      // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/c7d6e1f8-ef9d-444c-9c71-32dfd8cb5efc"` // The category of the transaction
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(url string, model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:        model.Date,
			Description: model.Description,
			CategoryID:  model.CategoryID,
			Type:        model.Type,
			Account:     model.Account,
			Amount:      model.Amount,
			Tags:        model.Tags,
			Note:        model.Note,
			ImportHash:  model.ImportHash,
		},
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of Transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of the created Transactions or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the Transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	CategoryID  cv_uuid.UUID               `form:"category"`                        // By ID of the category
	Type        models.TransactionType     `form:"type"`                            // By type
	Account     models.TransactionAccount  `form:"account"`                         // By account
	Month       time.Time                  `form:"month" filterField:"false" time_format:"2006-01" time_utc:"1"` // By month, in YYYY-MM format
	Description string                     `form:"description" filterField:"false"` // By description
	Note        string                     `form:"note" filterField:"false"`        // By note
	Search      string                     `form:"search" filterField:"false"`      // By string in description or note
	Offset      uint                       `form:"offset" filterField:"false"`      // The offset of the first Transaction returned. Defaults to 0.
	Limit       int                        `form:"limit" filterField:"false"`       // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		CategoryID: f.CategoryID.UUID,
		Type:       f.Type,
		Account:    f.Account,
	}
}
