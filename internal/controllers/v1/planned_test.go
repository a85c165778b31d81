package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pennyplan/backend/internal/controllers/v1"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	"github.com/pennyplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func getPlanned(t *testing.T, collection, query string, expectedStatus int) v1.PlannedResponse {
	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/%s/planned?%s", collection, query), "")
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response v1.PlannedResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestPlannedMonthQuery() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Missing", "", "the month query parameter must be set"},
		{"Invalid month", "month=2024-13", "the month query parameter must be in YYYY-MM format"},
		{"Full date", "month=2024-01-31", "the month query parameter must be in YYYY-MM format"},
	}

	for _, collection := range recurringCollections {
		for _, tt := range tests {
			suite.T().Run(fmt.Sprintf("%s/%s", collection, tt.name), func(t *testing.T) {
				response := getPlanned(t, collection, tt.query, http.StatusBadRequest)
				if assert.NotNil(t, response.Error) {
					assert.Equal(t, tt.err, *response.Error)
				}
			})
		}
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/expenses/planned", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

// TestPlannedMonthEnd verifies that a monthly item anchored on the 31st
// is planned for the last day of shorter months.
func (suite *TestSuiteStandard) TestPlannedMonthEnd() {
	income := createTestIncome(suite.T(), v1.RecurringEditable{
		Name:      "Salary",
		Amount:    decimal.NewFromFloat(2500),
		Frequency: recurrence.Monthly,
		StartDate: types.NewDate(2024, 1, 31),
	})

	tests := []struct {
		month string
		date  string
	}{
		{"2024-01", "2024-01-31"},
		{"2024-02", "2024-02-29"},
		{"2024-04", "2024-04-30"},
		{"2025-02", "2025-02-28"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.month, func(t *testing.T) {
			response := getPlanned(t, "incomes", fmt.Sprintf("month=%s", tt.month), http.StatusOK)

			assert.Equal(t, tt.month, response.Data.Month.String())
			if assert.Len(t, response.Data.Items, 1) {
				item := response.Data.Items[0]
				assert.Equal(t, tt.date, item.Date.String())
				assert.Equal(t, income.Data.ID, item.ID)
				assert.Equal(t, income.Data.Links.Self, item.Links.Self)
			}
		})
	}

	// Before the start date, nothing is planned
	response := getPlanned(suite.T(), "incomes", "month=2023-12", http.StatusOK)
	suite.Assert().Len(response.Data.Items, 0)
	suite.Assert().Len(response.Data.Totals, 0)
}

func (suite *TestSuiteStandard) TestPlannedOrderAndTotals() {
	_ = createTestExpense(suite.T(), v1.RecurringEditable{Name: "Rent", Amount: decimal.NewFromFloat(950), StartDate: types.NewDate(2024, 1, 1)})
	_ = createTestExpense(suite.T(), v1.RecurringEditable{Name: "Electricity", Amount: decimal.NewFromFloat(80.5), StartDate: types.NewDate(2023, 12, 15)})
	_ = createTestExpense(suite.T(), v1.RecurringEditable{Name: "Car insurance", Amount: decimal.NewFromFloat(420), Frequency: recurrence.Annually, StartDate: types.NewDate(2023, 3, 1)})
	_ = createTestExpense(suite.T(), v1.RecurringEditable{Name: "Cloud storage", Amount: decimal.NewFromFloat(2.99), Currency: "USD", StartDate: types.NewDate(2024, 2, 1)})
	_ = createTestExpense(suite.T(), v1.RecurringEditable{Name: "Gym", Amount: decimal.NewFromFloat(30), StartDate: types.NewDate(2023, 1, 10), EndDate: types.NewDate(2024, 2, 28)})
	_ = createTestExpense(suite.T(), v1.RecurringEditable{Name: "Sofa", Amount: decimal.NewFromFloat(700), Frequency: recurrence.OneTime, Date: types.NewDate(2024, 3, 20)})
	_ = createTestExpense(suite.T(), v1.RecurringEditable{Name: "Groceries", Amount: decimal.NewFromFloat(60), Frequency: recurrence.Weekly, StartDate: types.NewDate(2024, 2, 27)})

	response := getPlanned(suite.T(), "expenses", "month=2024-03", http.StatusOK)

	type planned struct {
		name string
		date string
	}

	items := make([]planned, 0)
	for _, item := range response.Data.Items {
		items = append(items, planned{item.Name, item.Date.String()})
	}

	suite.Assert().Equal([]planned{
		{"Car insurance", "2024-03-01"},
		{"Cloud storage", "2024-03-01"},
		{"Rent", "2024-03-01"},
		{"Groceries", "2024-03-05"},
		{"Electricity", "2024-03-15"},
	}, items, "one time items are never planned")

	if suite.Assert().Len(response.Data.Totals, 2) {
		suite.Assert().Equal("EUR", response.Data.Totals[0].Currency)
		suite.Assert().True(decimal.NewFromFloat(1510.5).Equal(response.Data.Totals[0].Amount), response.Data.Totals[0].Amount.String())
		suite.Assert().Equal("USD", response.Data.Totals[1].Currency)
		suite.Assert().True(decimal.NewFromFloat(2.99).Equal(response.Data.Totals[1].Amount), response.Data.Totals[1].Amount.String())
	}
}

func (suite *TestSuiteStandard) TestPlannedMatch() {
	_ = createTestSubscription(suite.T(), v1.RecurringEditable{Name: "Video streaming"})
	_ = createTestSubscription(suite.T(), v1.RecurringEditable{Name: "Music streaming"})
	_ = createTestSubscription(suite.T(), v1.RecurringEditable{Name: "Newspaper"})

	tests := []struct {
		match string
		len   int
	}{
		{"", 3},
		{"*streaming", 2},
		{"Music*", 1},
		{"*Streaming", 0},
		{"Newspaper", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.match, func(t *testing.T) {
			response := getPlanned(t, "subscriptions", fmt.Sprintf("month=2024-02&match=%s", tt.match), http.StatusOK)
			assert.Len(t, response.Data.Items, tt.len)
		})
	}
}

// TestPlannedKinds verifies that each planned endpoint only plans its own kind.
func (suite *TestSuiteStandard) TestPlannedKinds() {
	_ = createTestIncome(suite.T(), v1.RecurringEditable{Name: "Salary"})
	_ = createTestExpense(suite.T(), v1.RecurringEditable{Name: "Rent"})
	_ = createTestSubscription(suite.T(), v1.RecurringEditable{Name: "Streaming"})

	for collection, name := range map[string]string{"incomes": "Salary", "expenses": "Rent", "subscriptions": "Streaming"} {
		response := getPlanned(suite.T(), collection, "month=2024-06", http.StatusOK)
		if suite.Assert().Len(response.Data.Items, 1, collection) {
			suite.Assert().Equal(name, response.Data.Items[0].Name)
			suite.Assert().Equal("2024-06-15", response.Data.Items[0].Date.String())
		}
	}
}

func (suite *TestSuiteStandard) TestPlannedDBClosed() {
	suite.CloseDB()

	response := getPlanned(suite.T(), "incomes", "month=2024-06", http.StatusInternalServerError)
	suite.Assert().NotNil(response.Error)
}
