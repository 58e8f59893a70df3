package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{})
	_ = createTestDebt(suite.T(), v1.DebtEditable{})
	_ = upsertTestGoal(suite.T(), v1.GoalEditable{})
	_ = createTestReminder(suite.T(), v1.ReminderEditable{})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{})
	_ = createTestWeeklyBudget(suite.T(), v1.WeeklyBudgetEditable{})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Verify that all resources are deleted, including the seeded categories
	for _, model := range models.Registry {
		count := int64(-1)
		err := models.DB.Model(model).Count(&count).Error
		assert.Nil(suite.T(), err, "%T", model)
		assert.Zero(suite.T(), count, "Not all %T were deleted", model)
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"No confirmation", "http://example.com/v1"},
		{"Wrong confirmation", "http://example.com/v1?confirm=on-second-thought-no"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, "the confirmation for the cleanup API call was incorrect", response.Error)
		})
	}
}
