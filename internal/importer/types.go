package importer

import (
	"github.com/centavo-app/backend/internal/models"
	"github.com/google/uuid"
)

// TransactionPreview is used to preview transactions that will be imported
// to allow for editing before they are committed.
type TransactionPreview struct {
	Transaction             models.Transaction `json:"transaction"`
	CategoryName            string             `json:"categoryName" example:"Groceries"`                        // Name of the category from the statement
	RuleID                  uuid.UUID          `json:"ruleId" example:"1e11dd0a-ec1c-4a20-acb2-c09ae01a42a9"`   // ID of the category rule that was applied to this transaction preview
	DuplicateTransactionIDs []uuid.UUID        `json:"duplicateTransactionIds"`                                 // IDs of transactions that this transaction duplicates
}
