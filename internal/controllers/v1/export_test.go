package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExport() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Supermercado Stock"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "GNU Terry Pratchett", response.Clacks)
	assert.False(suite.T(), response.CreationTime.IsZero())

	// Every registered model is part of the export
	for _, key := range []string{
		"Budget", "CardDietSettings", "Category", "CategoryRule", "Debt",
		"MonthlyGoal", "PaymentReminder", "Subscription", "Transaction", "WeeklyBudget",
	} {
		assert.Contains(suite.T(), response.Data, key)
	}

	var transactions []models.Transaction
	err := json.Unmarshal(response.Data["Transaction"], &transactions)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), transactions, 1)
	assert.Equal(suite.T(), transaction.Data.ID, transactions[0].ID)
}
