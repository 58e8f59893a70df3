package v1_test

import (
	"net/http"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestV1Get() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/budgets", response.Links.Budgets)
	assert.Equal(suite.T(), "http://example.com/v1/card-diet", response.Links.CardDiet)
	assert.Equal(suite.T(), "http://example.com/v1/categories", response.Links.Categories)
	assert.Equal(suite.T(), "http://example.com/v1/category-rules", response.Links.CategoryRules)
	assert.Equal(suite.T(), "http://example.com/v1/debts", response.Links.Debts)
	assert.Equal(suite.T(), "http://example.com/v1/export", response.Links.Export)
	assert.Equal(suite.T(), "http://example.com/v1/goals", response.Links.Goals)
	assert.Equal(suite.T(), "http://example.com/v1/import", response.Links.Import)
	assert.Equal(suite.T(), "http://example.com/v1/months", response.Links.Months)
	assert.Equal(suite.T(), "http://example.com/v1/reminders", response.Links.Reminders)
	assert.Equal(suite.T(), "http://example.com/v1/subscriptions", response.Links.Subscriptions)
	assert.Equal(suite.T(), "http://example.com/v1/transactions", response.Links.Transactions)
	assert.Equal(suite.T(), "http://example.com/v1/weekly-budgets", response.Links.WeeklyBudgets)
}

func (suite *TestSuiteStandard) TestV1Options() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", r.Header().Get("allow"))
}
