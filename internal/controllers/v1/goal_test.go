package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/internal/types"
	"github.com/centavo-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestGoalsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestGoalsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Goal with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Goal exists", upsertTestGoal(suite.T(), v1.GoalEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/goals", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestGoalsUpsert verifies that the first PUT for a month creates the goal
// and the second updates it in place.
func (suite *TestSuiteStandard) TestGoalsUpsert() {
	created := upsertTestGoal(suite.T(), v1.GoalEditable{
		Month:         types.NewMonth(2024, 7),
		SavingsTarget: decimal.NewFromInt(1000000),
	}, http.StatusCreated)

	updated := upsertTestGoal(suite.T(), v1.GoalEditable{
		Month:         types.NewMonth(2024, 7),
		SavingsTarget: decimal.NewFromInt(1500000),
	}, http.StatusOK)

	assert.Equal(suite.T(), created.Data.ID, updated.Data.ID)
	assert.True(suite.T(), decimal.NewFromInt(1500000).Equal(updated.Data.SavingsTarget))

	// A goal for another month is a new resource
	other := upsertTestGoal(suite.T(), v1.GoalEditable{
		Month: types.NewMonth(2024, 8),
	}, http.StatusCreated)
	assert.NotEqual(suite.T(), created.Data.ID, other.Data.ID)
}

func (suite *TestSuiteStandard) TestGoalsUpsertFails() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/goals", `{ "savingsTarget": "NotANumber" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	_ = upsertTestGoal(suite.T(), v1.GoalEditable{Month: types.NewMonth(2024, 6)})
	_ = upsertTestGoal(suite.T(), v1.GoalEditable{Month: types.NewMonth(2024, 7)})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 2},
		{"Month", "month=2024-07", 1},
		{"Empty month", "month=2024-01", 0},
		{"Invalid month", "month=NotAMonth", -1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.GoalListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")

			if tt.len == -1 {
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
				return
			}

			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// TestGoalsGetSorted verifies that goals are returned newest month first.
func (suite *TestSuiteStandard) TestGoalsGetSorted() {
	june := upsertTestGoal(suite.T(), v1.GoalEditable{Month: types.NewMonth(2024, 6)})
	july := upsertTestGoal(suite.T(), v1.GoalEditable{Month: types.NewMonth(2024, 7)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var goals v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &goals)

	assert.Equal(suite.T(), july.Data.ID, goals.Data[0].ID)
	assert.Equal(suite.T(), june.Data.ID, goals.Data[1].ID)
}

// TestGoalsDelete verifies all cases for Goal deletions.
func (suite *TestSuiteStandard) TestGoalsDelete() {
	goal := upsertTestGoal(suite.T(), v1.GoalEditable{})

	r := test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
