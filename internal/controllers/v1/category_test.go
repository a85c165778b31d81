package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pennyplan/backend/internal/controllers/v1"
	"github.com/pennyplan/backend/internal/models"
	"github.com/pennyplan/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &category)

	if r.Code == http.StatusCreated {
		return category.Data[0]
	}

	return v1.CategoryResponse{}
}

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	tests := []struct {
		name string
		test func(t *testing.T)
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
		id     string
		status int
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

// TestCategoriesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Housing", Note: "Rent"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Category", c.Data.ID.String(), http.StatusOK},
		{"No Category with this ID", uuid.NewString(), http.StatusNotFound},
		{"Invalid ID", "Definitely-Not-A-UUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, "Housing", response.Data.Name)
				assert.Equal(t, c.Data.Links.Self, response.Data.Links.Self)
				assert.Equal(t, fmt.Sprintf("http://example.com/v1/incomes?category=%s", c.Data.ID), response.Data.Links.Incomes)
			} else {
				assert.NotNil(t, response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})

	tests := []struct {
		name     string
		body     any
		status   int
		errorMsg string
	}{
		{"Broken body", `[{ "name": 2 }]`, http.StatusBadRequest, "cannot unmarshal number"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Duplicate name", []v1.CategoryEditable{{Name: "Groceries"}}, http.StatusBadRequest, models.ErrCategoryNameNotUnique.Error()},
		{"Duplicate after trim", []v1.CategoryEditable{{Name: " Groceries "}}, http.StatusBadRequest, models.ErrCategoryNameNotUnique.Error()},
		{"Success", []v1.CategoryEditable{{Name: "Leisure"}}, http.StatusCreated, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.errorMsg == "" {
				return
			}

			if response.Error != nil {
				assert.Contains(t, *response.Error, tt.errorMsg)
				return
			}

			if assert.Len(t, response.Data, 1) && assert.NotNil(t, response.Data[0].Error) {
				assert.Contains(t, *response.Data[0].Error, tt.errorMsg)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Housing", Note: "Rent and utilities"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Insurance", Note: "", Archived: true})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Streaming", Note: "Video and music"})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 3, 3},
		{"Name", "name=ous", 1, 1},
		{"Empty note", "note=", 1, 1},
		{"Archived", "archived=true", 1, 1},
		{"Not archived", "archived=false", 2, 2},
		{"Search", "search=music", 1, 1},
		{"Limit", "limit=2", 2, 3},
		{"Offset", "offset=2", 1, 3},
		{"Limit 0", "limit=0", 0, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len, "Request ID: %s", r.Header().Get("x-request-id"))
			if assert.NotNil(t, response.Pagination) {
				assert.Equal(t, tt.total, response.Pagination.Total)
				assert.Equal(t, tt.len, response.Pagination.Count)
			}
		})
	}
}
