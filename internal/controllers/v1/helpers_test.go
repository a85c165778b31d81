package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pennyplan/backend/internal/controllers/v1"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	"github.com/pennyplan/backend/test"
	"github.com/shopspring/decimal"
)

// recurringDefaults fills in the fields needed for a valid monthly item.
func recurringDefaults(e v1.RecurringEditable) v1.RecurringEditable {
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

	if e.Frequency != recurrence.OneTime && e.StartDate.IsZero() {
		e.StartDate = types.NewDate(2024, 1, 15)
	}

	return e
}

func createTestIncome(t *testing.T, e v1.RecurringEditable, expectedStatus ...int) v1.IncomeResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/incomes", []v1.RecurringEditable{recurringDefaults(e)})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.IncomeCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.IncomeResponse{}
}

func createTestExpense(t *testing.T, e v1.RecurringEditable, expectedStatus ...int) v1.ExpenseResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", []v1.RecurringEditable{recurringDefaults(e)})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.ExpenseResponse{}
}

func createTestSubscription(t *testing.T, e v1.RecurringEditable, expectedStatus ...int) v1.SubscriptionResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/subscriptions", []v1.RecurringEditable{recurringDefaults(e)})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.SubscriptionCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.SubscriptionResponse{}
}

func createTestInstallment(t *testing.T, e v1.InstallmentEditable, expectedStatus ...int) v1.InstallmentResponse {
	if e.Name == "" {
		e.Name = uuid.NewString()
	}

	if e.Amount.IsZero() {
		e.Amount = decimal.NewFromFloat(99.99)
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

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/installments", []v1.InstallmentEditable{e})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.InstallmentCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.InstallmentResponse{}
}
