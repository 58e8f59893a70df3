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
	"github.com/stretchr/testify/assert"
)

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestCategory(t, v1.CategoryEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/categories", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CategoryListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestCategoriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Categories endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/categories", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestCategoriesGetSingle verifies that requests for the resource endpoints
// are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Category", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")

			var category v1.CategoryResponse
			test.DecodeResponse(t, &r, &category)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name:      "Cantina del club",
		Group:     models.CategoryGroupVariable,
		Essential: false,
	})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name:      "Cuota del club",
		Group:     models.CategoryGroupFixed,
		Essential: true,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name", "name=Cantina del club", 1},
		{"Fuzzy name", "name=del club", 2},
		{"Search", "search=DEL CLUB", 2},
		{"Group", "group=SAVINGS", 2}, // The two seeded SAVINGS categories
		{"Non-existing group", "group=OTHER", 0},
		{"Limit", "name=del club&limit=1", 1},
		{"Offset", "name=del club&offset=1&limit=-1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CategoryListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	// Test category for uniqueness
	c := createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Unique Category Name",
	})

	tests := []struct {
		name     string
		body     any
		status   int                                             // expected HTTP status
		testFunc func(t *testing.T, c v1.CategoryCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "name": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field CategoryEditable.name of type string", *c.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *c.Error)
			},
		},
		{
			"No group",
			`[{ "name": "Some category" }]`,
			http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, models.ErrCategoryGroupInvalid.Error(), *c.Data[0].Error)
			},
		},
		{
			"Duplicate name",
			[]v1.CategoryEditable{
				{
					Name:  c.Data.Name,
					Group: models.CategoryGroupVariable,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, c v1.CategoryCreateResponse) {
				assert.Equal(t, models.ErrCategoryNameNotUnique.Error(), *c.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var c v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &c)

			if tt.testFunc != nil {
				tt.testFunc(t, c)
			}
		})
	}
}

// Verify that updating categories works as desired
func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Name of the category"})

	tests := []struct {
		name     string                                    // name of the test
		category map[string]any                            // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, c v1.CategoryResponse) // tests to perform against the updated category resource
	}{
		{
			"Name and group",
			map[string]any{
				"name":  "Another name",
				"group": "SAVINGS",
			},
			func(t *testing.T, c v1.CategoryResponse) {
				assert.Equal(t, "Another name", c.Data.Name)
				assert.Equal(t, models.CategoryGroupSavings, c.Data.Group)
			},
		},
		{
			"Essential",
			map[string]any{
				"essential": true,
			},
			func(t *testing.T, c v1.CategoryResponse) {
				assert.True(t, c.Data.Essential)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, category.Data.Links.Self, tt.category)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var c v1.CategoryResponse
			test.DecodeResponse(t, &r, &c)

			if tt.testFunc != nil {
				tt.testFunc(t, c)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Category", uuid.New().String(), `{"name": "Does not matter"}`, http.StatusNotFound},
		{"Invalid group", "", `{"group": "GAMBLING"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				category := createTestCategory(suite.T(), v1.CategoryEditable{})
				tt.id = category.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCategoriesDelete verifies all cases for Category deletions.
func (suite *TestSuiteStandard) TestCategoriesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Category", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				c := createTestCategory(t, v1.CategoryEditable{})
				tt.id = c.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCategoriesGetSorted verifies that Categories are sorted by name.
func (suite *TestSuiteStandard) TestCategoriesGetSorted() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "AAA before everything seeded",
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)

	assert.Equal(suite.T(), "AAA before everything seeded", categories.Data[0].Name)
}
