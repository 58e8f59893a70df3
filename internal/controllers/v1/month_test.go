package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/centavo-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonthsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMonthsFails() {
	tests := []struct {
		name  string
		query string
		error string
	}{
		{"Month not set", "", "the month query parameter must be set"},
		{"Invalid month", "month=NotAMonth", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/months?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.error != "" {
				var response v1.MonthResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.error, *response.Error)
			}
		})
	}
}

// TestMonthsDashboard verifies that the dashboard aggregates the month's
// data into the derived views.
func (suite *TestSuiteStandard) TestMonthsDashboard() {
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:        testDate,
		Description: "Salario Julio",
		Type:        models.TransactionTypeIncome,
		Account:     models.AccountBank,
		Amount:      decimal.NewFromInt(8000000),
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:        testDate,
		Description: "Supermercado Stock",
		CategoryID:  groceries.Data.ID,
		Type:        models.TransactionTypeExpense,
		Account:     models.AccountCard,
		Amount:      decimal.NewFromInt(450000),
	})

	// A transaction in another month must not show up in the stats
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:       testDate.AddDate(0, -1, 0),
		CategoryID: groceries.Data.ID,
		Amount:     decimal.NewFromInt(999999),
	})

	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Month:      types.MonthOf(testDate),
		CategoryID: groceries.Data.ID,
		Amount:     decimal.NewFromInt(500000),
	})

	_ = createTestDebt(suite.T(), v1.DebtEditable{
		Name:    "Tarjeta Visa",
		Balance: decimal.NewFromInt(8400000),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month=2024-07", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	report := response.Data

	assert.True(suite.T(), decimal.NewFromInt(8000000).Equal(report.Stats.Income), "Income is %s", report.Stats.Income)
	assert.True(suite.T(), decimal.NewFromInt(450000).Equal(report.Stats.Expenses), "Expenses are %s", report.Stats.Expenses)
	assert.True(suite.T(), decimal.NewFromInt(7550000).Equal(report.Stats.Balance), "Balance is %s", report.Stats.Balance)

	// One budget row with its utilization
	require.Len(suite.T(), report.Budgets, 1)
	assert.True(suite.T(), decimal.NewFromInt(450000).Equal(report.Budgets[0].Spent))

	// The debt has no APR, so it is in the snowball but not the avalanche
	assert.Len(suite.T(), report.Snowball, 1)
	assert.Empty(suite.T(), report.Avalanche)

	// The diet is disabled on a fresh instance
	assert.Nil(suite.T(), report.CardDiet)
}
