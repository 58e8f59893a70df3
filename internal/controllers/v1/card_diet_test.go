package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/centavo-app/backend/internal/controllers/v1"
	"github.com/centavo-app/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCardDietOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/card-diet", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PUT", r.Header().Get("allow"))
}

// TestCardDietDefault verifies that a fresh instance has a disabled diet
// without a start date.
func (suite *TestSuiteStandard) TestCardDietDefault() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/card-diet", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CardDietResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.Enabled)
	assert.Nil(suite.T(), response.Data.StartDate)
	assert.Empty(suite.T(), response.Data.Exceptions)
}

// TestCardDietEnable verifies that enabling the diet starts a new period.
func (suite *TestSuiteStandard) TestCardDietEnable() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/card-diet", v1.CardDietEditable{
		Enabled:    true,
		Exceptions: []uuid.UUID{category.Data.ID},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CardDietResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Enabled)
	require.NotNil(suite.T(), response.Data.StartDate)
	assert.Equal(suite.T(), []uuid.UUID{category.Data.ID}, response.Data.Exceptions)
}

// TestCardDietReenable verifies that updating an enabled diet keeps the
// period and that a disable and enable cycle starts a new one.
func (suite *TestSuiteStandard) TestCardDietReenable() {
	enable := func(t *testing.T) v1.CardDiet {
		r := test.Request(t, http.MethodPut, "http://example.com/v1/card-diet", v1.CardDietEditable{Enabled: true})
		test.AssertHTTPStatus(t, &r, http.StatusOK)

		var response v1.CardDietResponse
		test.DecodeResponse(t, &r, &response)
		require.NotNil(t, response.Data)
		return *response.Data
	}

	first := enable(suite.T())

	// Updating while enabled does not reset the start date
	unchanged := enable(suite.T())
	assert.Equal(suite.T(), first.StartDate.Unix(), unchanged.StartDate.Unix())

	// Disabling keeps the start date of the last period
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/card-diet", v1.CardDietEditable{Enabled: false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var disabled v1.CardDietResponse
	test.DecodeResponse(suite.T(), &r, &disabled)
	assert.False(suite.T(), disabled.Data.Enabled)

	second := enable(suite.T())
	assert.True(suite.T(), second.Enabled)
	require.NotNil(suite.T(), second.StartDate)
}

func (suite *TestSuiteStandard) TestCardDietUpdateFails() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/card-diet", `{ "enabled": "yes" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
