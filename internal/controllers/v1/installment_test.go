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

func (suite *TestSuiteStandard) TestInstallmentsCreate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Electronics"})

	i := createTestInstallment(suite.T(), v1.InstallmentEditable{
		Name:             "Laptop",
		CategoryID:       &category.Data.ID,
		Amount:           decimal.NewFromFloat(99.99),
		Currency:         "eur",
		FirstPaymentDate: types.NewDate(2024, 1, 31),
		Frequency:        recurrence.Monthly,
		NumberOfPayments: 12,
		Active:           true,
	})

	suite.Assert().Equal("Laptop", i.Data.Name)
	suite.Assert().Equal("EUR", i.Data.Currency)
	suite.Assert().True(decimal.NewFromFloat(1199.88).Equal(i.Data.Total), i.Data.Total.String())
	suite.Assert().Equal("2024-12-31", i.Data.LastPaymentDate.String())
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/installments/%s/payments", i.Data.ID), i.Data.Links.Payments)
}

func (suite *TestSuiteStandard) TestInstallmentsCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.InstallmentEditable
		err      error
	}{
		{"Negative amount", v1.InstallmentEditable{Amount: decimal.NewFromFloat(-1)}, models.ErrAmountNotPositive},
		{"Invalid currency", v1.InstallmentEditable{Currency: "XX"}, models.ErrCurrencyInvalid},
		{"Daily", v1.InstallmentEditable{Frequency: recurrence.Daily}, models.ErrFrequencyNotAllowed},
		{"Annually", v1.InstallmentEditable{Frequency: recurrence.Annually}, models.ErrFrequencyNotAllowed},
		{"No payments", v1.InstallmentEditable{NumberOfPayments: -2}, models.ErrNumberOfPaymentsNotPositive},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/installments", []v1.InstallmentEditable{withInstallmentDefaults(tt.editable)})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.InstallmentCreateResponse
			test.DecodeResponse(t, &r, &response)
			if assert.Len(t, response.Data, 1) && assert.NotNil(t, response.Data[0].Error) {
				assert.Contains(t, *response.Data[0].Error, tt.err.Error())
			}
		})
	}
}

// withInstallmentDefaults sets the fields of a valid installment that are not set in e.
func withInstallmentDefaults(e v1.InstallmentEditable) v1.InstallmentEditable {
	if e.Name == "" {
		e.Name = uuid.NewString()
	}
	if e.Amount.IsZero() {
		e.Amount = decimal.NewFromFloat(10)
	}
	if e.Currency == "" {
		e.Currency = "EUR"
	}
	if e.Frequency == "" {
		e.Frequency = recurrence.Monthly
	}
	if e.FirstPaymentDate.IsZero() {
		e.FirstPaymentDate = types.NewDate(2024, 1, 1)
	}
	if e.NumberOfPayments == 0 {
		e.NumberOfPayments = 3
	}
	return e
}

func (suite *TestSuiteStandard) TestInstallmentsGetSingle() {
	i := createTestInstallment(suite.T(), v1.InstallmentEditable{Name: "Phone"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", i.Data.ID.String(), http.StatusOK},
		{"Not found", uuid.NewString(), http.StatusNotFound},
		{"Invalid ID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/installments/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.InstallmentResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, "Phone", response.Data.Name)
				assert.False(t, response.Data.Active)
			} else {
				assert.NotNil(t, response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestInstallmentsUpdate() {
	i := createTestInstallment(suite.T(), v1.InstallmentEditable{Name: "Bike", NumberOfPayments: 6})

	r := test.Request(suite.T(), http.MethodPatch, i.Data.Links.Self, map[string]any{
		"active":           true,
		"numberOfPayments": 10,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InstallmentResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Active)
	suite.Assert().Equal(10, response.Data.NumberOfPayments)
	suite.Assert().Equal("Bike", response.Data.Name)
	suite.Assert().Equal("2024-10-01", response.Data.LastPaymentDate.String())

	r = test.Request(suite.T(), http.MethodPatch, i.Data.Links.Self, map[string]any{"frequency": "quarterly"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/installments/%s", uuid.New()), map[string]any{"active": false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestInstallmentsDelete() {
	i := createTestInstallment(suite.T(), v1.InstallmentEditable{})

	r := test.Request(suite.T(), http.MethodDelete, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestInstallmentsGetFilter() {
	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{Name: "Laptop", Active: true})
	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{Name: "Phone", Frequency: recurrence.Biweekly, Active: true})
	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{Name: "Sofa", Currency: "CHF"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Active", "active=true", 2},
		{"Inactive", "active=false", 1},
		{"Frequency", "frequency=biweekly", 1},
		{"Currency", "currency=chf", 1},
		{"Name", "name=apt", 1},
		{"Search", "search=o", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/installments?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.InstallmentListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestInstallmentsPlanned() {
	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{
		Name:             "Laptop",
		Amount:           decimal.NewFromFloat(99.99),
		FirstPaymentDate: types.NewDate(2024, 1, 1),
		Frequency:        recurrence.Monthly,
		NumberOfPayments: 3,
		Active:           true,
	})
	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{
		Name:             "Couch",
		Amount:           decimal.NewFromFloat(50),
		FirstPaymentDate: types.NewDate(2024, 2, 20),
		Frequency:        recurrence.Biweekly,
		NumberOfPayments: 4,
		Active:           true,
	})
	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{
		Name:             "Paused",
		FirstPaymentDate: types.NewDate(2024, 1, 1),
		NumberOfPayments: 12,
		Active:           false,
	})

	tests := []struct {
		month   string
		match   string
		names   []string
		numbers []int
		dates   []string
	}{
		{"2023-12", "", []string{}, []int{}, []string{}},
		{"2024-01", "", []string{"Laptop"}, []int{1}, []string{"2024-01-01"}},
		{"2024-03", "", []string{"Laptop", "Couch"}, []int{3, 2}, []string{"2024-03-01", "2024-03-05"}},
		{"2024-03", "C*", []string{"Couch"}, []int{2}, []string{"2024-03-05"}},
		{"2024-04", "", []string{"Couch"}, []int{4}, []string{"2024-04-02"}},
		{"2024-05", "", []string{}, []int{}, []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s %s", tt.month, tt.match), func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/installments/planned?month=%s&match=%s", tt.month, tt.match), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.InstallmentPlannedResponse
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0)
			numbers := make([]int, 0)
			dates := make([]string, 0)
			for _, item := range response.Data.Items {
				names = append(names, item.Name)
				numbers = append(numbers, item.PaymentNumber)
				dates = append(dates, item.Date.String())
			}

			assert.Equal(t, tt.names, names)
			assert.Equal(t, tt.numbers, numbers)
			assert.Equal(t, tt.dates, dates)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/installments/planned?month=2024-03", "")
	var response v1.InstallmentPlannedResponse
	test.DecodeResponse(suite.T(), &r, &response)
	if suite.Assert().Len(response.Data.Totals, 1) {
		suite.Assert().True(decimal.NewFromFloat(149.99).Equal(response.Data.Totals[0].Amount), response.Data.Totals[0].Amount.String())
	}

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/installments/planned", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestInstallmentsPayments() {
	i := createTestInstallment(suite.T(), v1.InstallmentEditable{
		FirstPaymentDate: types.NewDate(2024, 1, 31),
		Frequency:        recurrence.Monthly,
		NumberOfPayments: 4,
		Active:           false,
	})

	r := test.Request(suite.T(), http.MethodGet, i.Data.Links.Payments, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InstallmentPaymentsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	dates := make([]string, 0)
	for n, p := range response.Data {
		suite.Assert().Equal(n+1, p.Number)
		dates = append(dates, p.Date.String())
	}
	suite.Assert().Equal([]string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30"}, dates, "inactive installments still have a payment schedule")

	r = test.Request(suite.T(), http.MethodOptions, i.Data.Links.Payments, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/installments/%s/payments", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
