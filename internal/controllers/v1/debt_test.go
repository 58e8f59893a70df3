package v1_test

import (
	"fmt"
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

// TestDebtsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestDebtsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Debt with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Debt exists", createTestDebt(suite.T(), v1.DebtEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/debts", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsCreateFails() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Group: models.CategoryGroupDebt})

	tests := []struct {
		name     string
		body     any
		status   int
		testFunc func(t *testing.T, r v1.DebtCreateResponse)
	}{
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, r v1.DebtCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *r.Error)
			},
		},
		{
			"Non-existing Category",
			fmt.Sprintf(`[{ "name": "Tarjeta", "categoryId": "%s", "dueDay": 5 }]`, uuid.New()),
			http.StatusNotFound,
			func(t *testing.T, r v1.DebtCreateResponse) {
				assert.Contains(t, *r.Data[0].Error, "there is no category matching your query")
			},
		},
		{
			"Invalid due day",
			[]v1.DebtEditable{
				{
					Name:       "Tarjeta",
					CategoryID: category.Data.ID,
					DueDay:     32,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, r v1.DebtCreateResponse) {
				assert.Equal(t, models.ErrDebtDueDayInvalid.Error(), *r.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/debts", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.DebtCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsGetFilter() {
	apr := decimal.NewFromFloat(24.5)

	visa := createTestDebt(suite.T(), v1.DebtEditable{
		Name:    "Tarjeta Visa",
		Balance: decimal.NewFromInt(8400000),
		APR:     &apr,
	})

	_ = createTestDebt(suite.T(), v1.DebtEditable{
		Name:    "Préstamo personal",
		Balance: decimal.NewFromInt(15000000),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 2},
		{"Category", fmt.Sprintf("category=%s", visa.Data.CategoryID), 1},
		{"Name", "name=Visa", 1},
		{"Search", "search=tarjeta", 1},
		{"No match", "name=Hipoteca", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.DebtListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/debts?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// Verify that updating debts works as desired
func (suite *TestSuiteStandard) TestDebtsUpdate() {
	debt := createTestDebt(suite.T(), v1.DebtEditable{
		Name:    "Tarjeta Visa",
		Balance: decimal.NewFromInt(8400000),
	})

	tests := []struct {
		name     string
		debt     map[string]any
		testFunc func(t *testing.T, d v1.DebtResponse)
	}{
		{
			"Balance after payment",
			map[string]any{
				"balance": 7500000,
			},
			func(t *testing.T, d v1.DebtResponse) {
				assert.True(t, decimal.NewFromInt(7500000).Equal(d.Data.Balance))
			},
		},
		{
			"APR becomes known",
			map[string]any{
				"apr": 24.5,
			},
			func(t *testing.T, d v1.DebtResponse) {
				require.NotNil(t, d.Data.APR)
				assert.True(t, decimal.NewFromFloat(24.5).Equal(*d.Data.APR))
			},
		},
		{
			"Due day",
			map[string]any{
				"dueDay": 15,
			},
			func(t *testing.T, d v1.DebtResponse) {
				assert.Equal(t, 15, d.Data.DueDay)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, debt.Data.Links.Self, tt.debt)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var d v1.DebtResponse
			test.DecodeResponse(t, &r, &d)

			if tt.testFunc != nil {
				tt.testFunc(t, d)
			}
		})
	}
}

// TestDebtsDelete verifies all cases for Debt deletions.
func (suite *TestSuiteStandard) TestDebtsDelete() {
	debt := createTestDebt(suite.T(), v1.DebtEditable{})

	r := test.Request(suite.T(), http.MethodDelete, debt.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, debt.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
