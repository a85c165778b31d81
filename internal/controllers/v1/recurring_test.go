package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pennyplan/backend/internal/controllers/v1"
	"github.com/pennyplan/backend/internal/models"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	"github.com/pennyplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// recurringCollections are the endpoints that share the recurring item representation.
var recurringCollections = []string{"incomes", "expenses", "subscriptions"}

// recurringItem is the representation shared by incomes, expenses and subscriptions.
type recurringItem struct {
	models.DefaultModel
	v1.RecurringEditable
	Links struct {
		Self string `json:"self"`
	} `json:"links"`
}

type recurringResponse struct {
	Data  *recurringItem `json:"data"`
	Error *string        `json:"error"`
}

type recurringCreateResponse struct {
	Data  []recurringResponse `json:"data"`
	Error *string             `json:"error"`
}

type recurringListResponse struct {
	Data       []recurringItem `json:"data"`
	Error      *string         `json:"error"`
	Pagination *v1.Pagination  `json:"pagination"`
}

func createTestRecurring(t *testing.T, collection string, e v1.RecurringEditable, expectedStatus ...int) recurringResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/%s", collection), []v1.RecurringEditable{recurringDefaults(e)})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response recurringCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	if len(response.Data) > 0 {
		return response.Data[0]
	}

	return recurringResponse{Error: response.Error}
}

func (suite *TestSuiteStandard) TestRecurringCreate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	for _, collection := range recurringCollections {
		suite.T().Run(collection, func(t *testing.T) {
			item := createTestRecurring(t, collection, v1.RecurringEditable{
				Name:       " Salary ",
				CategoryID: &category.Data.ID,
				Amount:     decimal.NewFromFloat(2500),
				Currency:   " eur",
				Frequency:  recurrence.Monthly,
				StartDate:  types.NewDate(2024, 1, 31),
			})

			assert.Equal(t, "Salary", item.Data.Name)
			assert.Equal(t, "EUR", item.Data.Currency)
			assert.True(t, decimal.NewFromFloat(2500).Equal(item.Data.Amount))
			assert.Equal(t, "2024-01-31", item.Data.StartDate.String())
			assert.True(t, item.Data.EndDate.IsZero())
			assert.Equal(t, category.Data.ID, *item.Data.CategoryID)
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/%s/%s", collection, item.Data.ID), item.Data.Links.Self)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringCreateInvalid() {
	tests := []struct {
		name        string
		collections []string
		editable    v1.RecurringEditable
		err         error
	}{
		{"Negative amount", recurringCollections, v1.RecurringEditable{Amount: decimal.NewFromFloat(-5)}, models.ErrAmountNotPositive},
		{"Invalid currency", recurringCollections, v1.RecurringEditable{Currency: "EURO"}, models.ErrCurrencyInvalid},
		{"Unknown category", recurringCollections, v1.RecurringEditable{CategoryID: func() *uuid.UUID { id := uuid.New(); return &id }()}, models.ErrCategoryNotFound},
		{"One time without date", recurringCollections, v1.RecurringEditable{Frequency: recurrence.OneTime}, models.ErrDateMissing},
		{"End before start", recurringCollections, v1.RecurringEditable{StartDate: types.NewDate(2024, 5, 1), EndDate: types.NewDate(2024, 4, 30)}, models.ErrEndDateBeforeStartDate},
		{"Biannually", []string{"incomes", "expenses"}, v1.RecurringEditable{Frequency: recurrence.Biannually}, models.ErrFrequencyNotAllowed},
		{"Unknown frequency", recurringCollections, v1.RecurringEditable{Frequency: "fortnightly"}, models.ErrFrequencyNotAllowed},
	}

	for _, tt := range tests {
		for _, collection := range tt.collections {
			suite.T().Run(fmt.Sprintf("%s/%s", collection, tt.name), func(t *testing.T) {
				item := createTestRecurring(t, collection, tt.editable, http.StatusBadRequest)
				if assert.NotNil(t, item.Error) {
					assert.Contains(t, *item.Error, tt.err.Error())
				}
			})
		}
	}
}

func (suite *TestSuiteStandard) TestRecurringBiannuallySubscription() {
	item := createTestRecurring(suite.T(), "subscriptions", v1.RecurringEditable{Frequency: recurrence.Biannually})
	suite.Assert().Equal(recurrence.Biannually, item.Data.Frequency)
}

func (suite *TestSuiteStandard) TestRecurringGetSingle() {
	for _, collection := range recurringCollections {
		suite.T().Run(collection, func(t *testing.T) {
			item := createTestRecurring(t, collection, v1.RecurringEditable{Name: "Gym"})

			tests := []struct {
				name   string
				id     string
				status int
			}{
				{"Existing", item.Data.ID.String(), http.StatusOK},
				{"Not found", uuid.NewString(), http.StatusNotFound},
				{"Invalid ID", "not-a-uuid", http.StatusBadRequest},
			}

			for _, tt := range tests {
				r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/%s/%s", collection, tt.id), "")
				test.AssertHTTPStatus(t, &r, tt.status)

				var response recurringResponse
				test.DecodeResponse(t, &r, &response)

				if tt.status == http.StatusOK {
					assert.Equal(t, "Gym", response.Data.Name, tt.name)
				} else {
					assert.NotNil(t, response.Error, tt.name)
				}

				r = test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/%s/%s", collection, tt.id), "")
				if tt.status == http.StatusOK {
					test.AssertHTTPStatus(t, &r, http.StatusNoContent)
					assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
				} else {
					test.AssertHTTPStatus(t, &r, tt.status)
				}
			}
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringUpdate() {
	for _, collection := range recurringCollections {
		suite.T().Run(collection, func(t *testing.T) {
			item := createTestRecurring(t, collection, v1.RecurringEditable{Name: "Rent", StartDate: types.NewDate(2024, 1, 1)})
			path := fmt.Sprintf("http://example.com/v1/%s/%s", collection, item.Data.ID)

			r := test.Request(t, http.MethodPatch, path, map[string]any{
				"name":     "Rent with garage",
				"currency": "usd",
				"endDate":  "2024-12-31",
			})
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response recurringResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, "Rent with garage", response.Data.Name)
			assert.Equal(t, "USD", response.Data.Currency)
			assert.Equal(t, "2024-12-31", response.Data.EndDate.String())
			assert.Equal(t, "2024-01-01", response.Data.StartDate.String(), "fields not in the body must not change")

			// Removing the end date
			r = test.Request(t, http.MethodPatch, path, `{ "endDate": null }`)
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)
			assert.True(t, response.Data.EndDate.IsZero())

			// An end date before the start date is rejected
			r = test.Request(t, http.MethodPatch, path, map[string]any{"endDate": "2023-12-31"})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			r = test.Request(t, http.MethodGet, path, "")
			test.DecodeResponse(t, &r, &response)
			assert.True(t, response.Data.EndDate.IsZero(), "rejected updates must not be persisted")

			// Broken body
			r = test.Request(t, http.MethodPatch, path, `{ "name": 2 }`)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			// Missing resource
			r = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/%s/%s", collection, uuid.New()), map[string]any{"name": "Nope"})
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringDelete() {
	for _, collection := range recurringCollections {
		suite.T().Run(collection, func(t *testing.T) {
			item := createTestRecurring(t, collection, v1.RecurringEditable{})
			path := fmt.Sprintf("http://example.com/v1/%s/%s", collection, item.Data.ID)

			r := test.Request(t, http.MethodDelete, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)

			r = test.Request(t, http.MethodGet, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)

			r = test.Request(t, http.MethodDelete, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringGetFilter() {
	housing := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Housing"})

	for _, collection := range recurringCollections {
		_ = createTestRecurring(suite.T(), collection, v1.RecurringEditable{Name: "Rent", CategoryID: &housing.Data.ID, Amount: decimal.NewFromFloat(950)})
		_ = createTestRecurring(suite.T(), collection, v1.RecurringEditable{Name: "Phone", Note: "Mobile contract", Currency: "USD"})
		_ = createTestRecurring(suite.T(), collection, v1.RecurringEditable{Name: "Insurance", Frequency: recurrence.Annually})
	}

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"All, ordered by name", "", []string{"Insurance", "Phone", "Rent"}},
		{"Category", fmt.Sprintf("category=%s", housing.Data.ID), []string{"Rent"}},
		{"No category", "category=", []string{"Insurance", "Phone"}},
		{"Frequency", "frequency=annually", []string{"Insurance"}},
		{"Currency", "currency=usd", []string{"Phone"}},
		{"Name", "name=en", []string{"Rent"}},
		{"Empty note", "note=", []string{"Insurance", "Rent"}},
		{"Search", "search=contract", []string{"Phone"}},
		{"Limit and offset", "offset=1&limit=1", []string{"Phone"}},
	}

	for _, collection := range recurringCollections {
		for _, tt := range tests {
			suite.T().Run(fmt.Sprintf("%s/%s", collection, tt.name), func(t *testing.T) {
				r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/%s?%s", collection, tt.query), "")
				test.AssertHTTPStatus(t, &r, http.StatusOK)

				var response recurringListResponse
				test.DecodeResponse(t, &r, &response)

				names := make([]string, 0)
				for _, item := range response.Data {
					names = append(names, item.Name)
				}
				assert.Equal(t, tt.names, names)
			})
		}
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes?category=not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestRecurringCategoryDeleted verifies that items are kept without a category
// when their category is deleted.
func (suite *TestSuiteStandard) TestRecurringCategoryDeleted() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})
	item := createTestRecurring(suite.T(), "expenses", v1.RecurringEditable{CategoryID: &category.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, item.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response recurringResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.CategoryID)
}
