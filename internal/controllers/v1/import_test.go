package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestImportOptions() {
	tests := []struct {
		name  string
		path  string
		allow string
	}{
		{"Root", "", "GET"},
		{"Statement preview", "/statement-preview", "POST"},
		{"Statement", "/statement", "POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/import"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestImportGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/import/statement", response.Links.Statement)
	assert.Equal(suite.T(), "http://example.com/v1/import/statement-preview", response.Links.StatementPreview)
}

func (suite *TestSuiteStandard) TestImportStatementPreview() {
	// A rule that takes precedence over the statement's category column
	suscripciones := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Streaming"})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{
		Priority:   10,
		Match:      "NETFLIX*",
		CategoryID: suscripciones.Data.ID,
	})

	body, headers := test.LoadTestFile(suite.T(), "importer/statement.csv")
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/statement-preview", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var preview v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &r, &preview)
	require.Len(suite.T(), preview.Data, 4)

	// The first line resolves its category by name against the seeded taxonomy
	first := preview.Data[0]
	assert.Equal(suite.T(), "Supermercado Stock", first.Transaction.Description)
	assert.Equal(suite.T(), "Supermercado", first.CategoryName)
	assert.NotEqual(suite.T(), uuid.Nil, first.Transaction.CategoryID)
	assert.Equal(suite.T(), uuid.Nil, first.RuleID)
	assert.Empty(suite.T(), first.DuplicateTransactionIDs)

	// The second line is matched by the rule
	second := preview.Data[1]
	assert.Equal(suite.T(), suscripciones.Data.ID, second.Transaction.CategoryID)
	assert.NotEqual(suite.T(), uuid.Nil, second.RuleID)

	// The fourth line has an unknown category and parser defaults
	fourth := preview.Data[3]
	assert.Equal(suite.T(), "Panaderia", fourth.CategoryName)
	assert.Equal(suite.T(), uuid.Nil, fourth.Transaction.CategoryID)
	assert.Equal(suite.T(), models.TransactionTypeExpense, fourth.Transaction.Type)
	assert.Equal(suite.T(), models.AccountCash, fourth.Transaction.Account)
}

func (suite *TestSuiteStandard) TestImportStatementPreviewFails() {
	tests := []struct {
		name string
		file string
	}{
		{"No file", ""},
		{"Wrong suffix", "importer/statement.txt"},
		{"Broken date", "importer/statement-broken-date.csv"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var r = test.Request(t, http.MethodPost, "http://example.com/v1/import/statement-preview", "")
			if tt.file != "" {
				body, headers := test.LoadTestFile(t, tt.file)
				r = test.Request(t, http.MethodPost, "http://example.com/v1/import/statement-preview", body, headers)
			}

			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestImportStatement verifies that committing a statement creates the
// transactions, creates unknown categories and skips duplicates on a second
// upload.
func (suite *TestSuiteStandard) TestImportStatement() {
	body, headers := test.LoadTestFile(suite.T(), "importer/statement.csv")
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/statement", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &created)
	require.Len(suite.T(), created.Data, 4)

	for _, tr := range created.Data {
		require.Nil(suite.T(), tr.Error)
		assert.NotEqual(suite.T(), uuid.Nil, tr.Data.CategoryID)
	}

	// The unknown category from the statement was created on the fly
	var categories v1.CategoryListResponse
	rList := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories?name=Panaderia", "")
	test.AssertHTTPStatus(suite.T(), &rList, http.StatusOK)
	test.DecodeResponse(suite.T(), &rList, &categories)
	require.Len(suite.T(), categories.Data, 1)
	assert.Equal(suite.T(), models.CategoryGroupVariable, categories.Data[0].Group)

	// Uploading the same statement again must not create anything
	body, headers = test.LoadTestFile(suite.T(), "importer/statement.csv")
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/statement", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var again v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &again)
	assert.Empty(suite.T(), again.Data)

	var transactions v1.TransactionListResponse
	rList = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &rList, http.StatusOK)
	test.DecodeResponse(suite.T(), &rList, &transactions)
	assert.Len(suite.T(), transactions.Data, 4)

	// The amounts survived the round trip
	total := decimal.Zero
	for _, tr := range transactions.Data {
		total = total.Add(tr.Amount)
	}
	assert.True(suite.T(), decimal.NewFromInt(145000+50167+8000000+25000).Equal(total))
}
