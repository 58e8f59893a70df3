package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransactionsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Transaction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Transaction exists", createTestTransaction(suite.T(), v1.TransactionEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name     string
		body     any
		status   int
		testFunc func(t *testing.T, r v1.TransactionCreateResponse)
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.TransactionCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field TransactionEditable.note of type string", *r.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, r v1.TransactionCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *r.Error)
			},
		},
		{
			"Non-existing Category",
			fmt.Sprintf(`[{ "date": "2024-07-02T00:00:00Z", "categoryId": "%s", "type": "EXPENSE", "account": "CASH", "amount": 10000 }]`, uuid.New()),
			http.StatusNotFound,
			func(t *testing.T, r v1.TransactionCreateResponse) {
				assert.Contains(t, *r.Data[0].Error, "there is no category matching your query")
			},
		},
		{
			"Negative amount",
			[]v1.TransactionEditable{
				{
					Date:       testDate,
					CategoryID: category.Data.ID,
					Type:       models.TransactionTypeExpense,
					Account:    models.AccountCash,
					Amount:     decimal.NewFromInt(-500),
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, r v1.TransactionCreateResponse) {
				assert.Equal(t, models.ErrAmountNotPositive.Error(), *r.Data[0].Error)
			},
		},
		{
			"Invalid type",
			[]v1.TransactionEditable{
				{
					Date:       testDate,
					CategoryID: category.Data.ID,
					Type:       "TRANSFER",
					Account:    models.AccountCash,
					Amount:     decimal.NewFromInt(500),
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, r v1.TransactionCreateResponse) {
				assert.Equal(t, models.ErrTransactionTypeInvalid.Error(), *r.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{})
	salary := createTestCategory(suite.T(), v1.CategoryEditable{})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:        testDate,
		Description: "Supermercado Stock",
		CategoryID:  groceries.Data.ID,
		Type:        models.TransactionTypeExpense,
		Account:     models.AccountCard,
		Note:        "Compra semanal",
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:        testDate.AddDate(0, 0, 3),
		Description: "Salario Julio",
		CategoryID:  salary.Data.ID,
		Type:        models.TransactionTypeIncome,
		Account:     models.AccountBank,
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:        testDate.AddDate(0, -1, 0),
		Description: "Supermercado Stock",
		CategoryID:  groceries.Data.ID,
		Type:        models.TransactionTypeExpense,
		Account:     models.AccountCash,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Category", fmt.Sprintf("category=%s", groceries.Data.ID), 2},
		{"Type EXPENSE", "type=EXPENSE", 2},
		{"Type INCOME", "type=INCOME", 1},
		{"Account", "account=CARD", 1},
		{"Month", "month=2024-07", 2},
		{"Previous month", "month=2024-06", 1},
		{"Description", "description=Supermercado", 2},
		{"Note", "note=semanal", 1},
		{"Empty note", "note=", 2},
		{"Search in description", "search=salario", 1},
		{"Search in note", "search=compra", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2&limit=-1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.TransactionListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// TestTransactionsGetSorted verifies that transactions are returned newest
// first.
func (suite *TestSuiteStandard) TestTransactionsGetSorted() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	older := createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:       testDate.AddDate(0, 0, -10),
		CategoryID: category.Data.ID,
	})

	newer := createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:       testDate,
		CategoryID: category.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)

	require.Len(suite.T(), transactions.Data, 2)
	assert.Equal(suite.T(), newer.Data.ID, transactions.Data[0].ID)
	assert.Equal(suite.T(), older.Data.ID, transactions.Data[1].ID)
}

func (suite *TestSuiteStandard) TestTransactionsPagination() {
	for i := 0; i < 10; i++ {
		createTestTransaction(suite.T(), v1.TransactionEditable{})
	}

	tests := []struct {
		name          string
		offset        uint
		limit         int
		expectedCount int
		expectedTotal int64
	}{
		{"All", 0, -1, 10, 10},
		{"First 5", 0, 5, 5, 10},
		{"Last 5", 5, -1, 5, 10},
		{"Offset 3", 3, -1, 7, 10},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?offset=%d&limit=%d", tt.offset, tt.limit), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var transactions v1.TransactionListResponse
			test.DecodeResponse(t, &r, &transactions)

			assert.Equal(suite.T(), tt.offset, transactions.Pagination.Offset)
			assert.Equal(suite.T(), tt.limit, transactions.Pagination.Limit)
			assert.Equal(suite.T(), tt.expectedCount, transactions.Pagination.Count)
			assert.Equal(suite.T(), tt.expectedTotal, transactions.Pagination.Total)
		})
	}
}

// Verify that updating transactions works as desired
func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Initial description"})

	tests := []struct {
		name        string
		transaction map[string]any
		testFunc    func(t *testing.T, tr v1.TransactionResponse)
	}{
		{
			"Description and note",
			map[string]any{
				"description": "Another description",
				"note":        "New note!",
			},
			func(t *testing.T, tr v1.TransactionResponse) {
				assert.Equal(t, "Another description", tr.Data.Description)
				assert.Equal(t, "New note!", tr.Data.Note)
			},
		},
		{
			"Amount",
			map[string]any{
				"amount": 250000,
			},
			func(t *testing.T, tr v1.TransactionResponse) {
				assert.True(t, decimal.NewFromInt(250000).Equal(tr.Data.Amount))
			},
		},
		{
			"Tags",
			map[string]any{
				"tags": []string{"viaje", "trabajo"},
			},
			func(t *testing.T, tr v1.TransactionResponse) {
				assert.Equal(t, []string{"viaje", "trabajo"}, tr.Data.Tags)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, transaction.Data.Links.Self, tt.transaction)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var tr v1.TransactionResponse
			test.DecodeResponse(t, &r, &tr)

			if tt.testFunc != nil {
				tt.testFunc(t, tr)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Invalid type for field", `{"description": 2}`, http.StatusBadRequest},
		{"Non-existing category", fmt.Sprintf(`{"categoryId": "%s"}`, uuid.New()), http.StatusNotFound},
		{"Negative amount", `{"amount": -100}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, transaction.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestTransactionsDelete verifies all cases for Transaction deletions.
func (suite *TestSuiteStandard) TestTransactionsDelete() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Transaction", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				tr := createTestTransaction(t, v1.TransactionEditable{})
				tt.id = tr.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
