package v1

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pennyplan/backend/internal/models"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	pp_uuid "github.com/pennyplan/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentEditable represents all user configurable parameters
type InstallmentEditable struct {
	Name             string               `json:"name" example:"Laptop" default:""`                                         // Name of the installment
	Note             string               `json:"note" example:"0% financing" default:""`                                   // Notes about the installment
	CategoryID       *uuid.UUID           `json:"categoryId" example:"0f9e2e3f-fa7d-4e8a-9a6f-1ea9f3b2c3d4"`                // ID of the category, if any
	Amount           decimal.Decimal      `json:"amount" example:"99.99" swaggertype:"string"`                              // Amount of a single payment
	Currency         string               `json:"currency" example:"EUR"`                                                   // ISO 4217 currency code
	FirstPaymentDate types.Date           `json:"firstPaymentDate" example:"2024-01-01" swaggertype:"string" format:"date"` // Due date of the first payment
	Frequency        recurrence.Frequency `json:"frequency" example:"monthly" enums:"weekly,biweekly,monthly"`              // Time between two payments
	NumberOfPayments int                  `json:"numberOfPayments" example:"12"`                                            // Number of payments
	Active           bool                 `json:"active" example:"true" default:"true"`                                     // Inactive installments are not planned
}

func (editable InstallmentEditable) model() models.Installment {
	return models.Installment{
		Name:             editable.Name,
		Note:             editable.Note,
		CategoryID:       editable.CategoryID,
		Amount:           editable.Amount,
		Currency:         strings.ToUpper(strings.TrimSpace(editable.Currency)),
		FirstPaymentDate: editable.FirstPaymentDate,
		Frequency:        editable.Frequency,
		NumberOfPayments: editable.NumberOfPayments,
		Active:           editable.Active,
	}
}

type InstallmentLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/installments/b0d0f5c6-4c8e-4a4e-9c36-0d0ba4d6c3f2"`              // The installment itself
	Payments string `json:"payments" example:"https://example.com/api/v1/installments/b0d0f5c6-4c8e-4a4e-9c36-0d0ba4d6c3f2/payments"` // The payment schedule of the installment
}

type Installment struct {
	models.DefaultModel
	InstallmentEditable
	Links InstallmentLinks `json:"links"`

	// These fields are computed
	Total           decimal.Decimal `json:"total" example:"1199.88" swaggertype:"string"`                            // Sum of all payments
	LastPaymentDate types.Date      `json:"lastPaymentDate" example:"2024-12-01" swaggertype:"string" format:"date"` // Due date of the last payment
}

func newInstallment(c *gin.Context, model models.Installment) Installment {
	url := c.GetString(string(models.DBContextURL))

	installment := Installment{
		DefaultModel: model.DefaultModel,
		InstallmentEditable: InstallmentEditable{
			Name:             model.Name,
			Note:             model.Note,
			CategoryID:       model.CategoryID,
			Amount:           model.Amount,
			Currency:         model.Currency,
			FirstPaymentDate: model.FirstPaymentDate,
			Frequency:        model.Frequency,
			NumberOfPayments: model.NumberOfPayments,
			Active:           model.Active,
		},
		Links: InstallmentLinks{
			Self:     selfLink(url, "installments", model.ID),
			Payments: fmt.Sprintf("%s/payments", selfLink(url, "installments", model.ID)),
		},
		Total: model.Total(),
	}

	if last, ok := resolver(c).Last(model.Plan()); ok {
		installment.LastPaymentDate = last.Date
	}

	return installment
}

type InstallmentListResponse struct {
	Data       []Installment `json:"data"`                                                          // List of Installments
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type InstallmentCreateResponse struct {
	Data  []InstallmentResponse `json:"data"`                                                          // List of the created Installments or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *InstallmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, InstallmentResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InstallmentResponse struct {
	Data  *Installment `json:"data"`                                                          // Data for the Installment
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type InstallmentQueryFilter struct {
	Name       string               `form:"name" filterField:"false"`   // By name
	Note       string               `form:"note" filterField:"false"`   // By note
	CategoryID pp_uuid.UUID         `form:"category"`                   // By ID of the Category. An empty value filters for installments without a category.
	Frequency  recurrence.Frequency `form:"frequency"`                  // By frequency
	Currency   string               `form:"currency"`                   // By currency
	Active     bool                 `form:"active"`                     // Is the installment active?
	Search     string               `form:"search" filterField:"false"` // By string in name or note
	Offset     uint                 `form:"offset" filterField:"false"` // The offset of the first Installment returned. Defaults to 0.
	Limit      int                  `form:"limit" filterField:"false"`  // Maximum number of Installments to return. Defaults to 50.
}

func (f InstallmentQueryFilter) model() models.Installment {
	return models.Installment{
		CategoryID: f.CategoryID.Ptr(),
		Frequency:  f.Frequency,
		Currency:   strings.ToUpper(f.Currency),
		Active:     f.Active,
	}
}

// PlannedInstallment is a payment of an installment due in the month.
type PlannedInstallment struct {
	ID               uuid.UUID       `json:"id" example:"b0d0f5c6-4c8e-4a4e-9c36-0d0ba4d6c3f2"`            // ID of the installment
	Name             string          `json:"name" example:"Laptop"`                                        // Name of the installment
	CategoryID       *uuid.UUID      `json:"categoryId" example:"0f9e2e3f-fa7d-4e8a-9a6f-1ea9f3b2c3d4"`    // ID of the category, if any
	Amount           decimal.Decimal `json:"amount" example:"99.99" swaggertype:"string"`                  // Amount of the payment
	Currency         string          `json:"currency" example:"EUR"`                                       // ISO 4217 currency code
	Date             types.Date      `json:"date" example:"2024-03-01" swaggertype:"string" format:"date"` // Due date of the payment
	PaymentNumber    int             `json:"paymentNumber" example:"3"`                                    // Number of the payment, starting at 1
	NumberOfPayments int             `json:"numberOfPayments" example:"12"`                                // Total number of payments of the installment
	Links            PlannedLinks    `json:"links"`
}

type InstallmentPlanned struct {
	Month  types.Month          `json:"month" example:"2024-03" swaggertype:"string"` // The month
	Items  []PlannedInstallment `json:"items"`                                        // Payments due in the month, ordered by date and name
	Totals []Total              `json:"totals"`                                       // Sums per currency, ordered by currency
}

type InstallmentPlannedResponse struct {
	Data  *InstallmentPlanned `json:"data"`                                                  // Data for the month
	Error *string             `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type InstallmentPaymentsResponse struct {
	Data  []recurrence.Payment `json:"data"`                                                          // All payments of the installment
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
