package v1

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pennyplan/backend/internal/models"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	pp_uuid "github.com/pennyplan/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// RecurringEditable represents all user configurable parameters of
// incomes, expenses and subscriptions.
type RecurringEditable struct {
	Name       string               `json:"name" example:"Salary" default:""`                                                                         // Name of the item
	Note       string               `json:"note" example:"Paid on the last day of the month" default:""`                                              // Notes about the item
	CategoryID *uuid.UUID           `json:"categoryId" example:"0f9e2e3f-fa7d-4e8a-9a6f-1ea9f3b2c3d4"`                                                // ID of the category, if any
	Amount     decimal.Decimal      `json:"amount" example:"2500.00" swaggertype:"string"`                                                            // Amount per occurrence
	Currency   string               `json:"currency" example:"EUR"`                                                                                   // ISO 4217 currency code
	Frequency  recurrence.Frequency `json:"frequency" example:"monthly" enums:"one_time,daily,weekly,biweekly,monthly,quarterly,annually,biannually"` // How often the item recurs
	Date       types.Date           `json:"date" example:"2024-02-14" swaggertype:"string" format:"date"`                                             // Date of a one time item
	StartDate  types.Date           `json:"startDate" example:"2024-01-31" swaggertype:"string" format:"date"`                                        // First occurrence of a recurring item
	EndDate    types.Date           `json:"endDate" example:"2024-12-31" swaggertype:"string" format:"date"`                                          // Last possible occurrence of a recurring item, if any
}

func (editable RecurringEditable) recurring() models.Recurring {
	return models.Recurring{
		Amount:    editable.Amount,
		Currency:  strings.ToUpper(strings.TrimSpace(editable.Currency)),
		Frequency: editable.Frequency,
		Date:      editable.Date,
		StartDate: editable.StartDate,
		EndDate:   editable.EndDate,
	}
}

func newRecurringEditable(name, note string, categoryID *uuid.UUID, r models.Recurring) RecurringEditable {
	return RecurringEditable{
		Name:       name,
		Note:       note,
		CategoryID: categoryID,
		Amount:     r.Amount,
		Currency:   r.Currency,
		Frequency:  r.Frequency,
		Date:       r.Date,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}

// RecurringQueryFilter contains the fields that incomes, expenses and
// subscriptions can be filtered with.
type RecurringQueryFilter struct {
	Name       string               `form:"name" filterField:"false"`   // By name
	Note       string               `form:"note" filterField:"false"`   // By note
	CategoryID pp_uuid.UUID         `form:"category"`                   // By ID of the Category. An empty value filters for items without a category.
	Frequency  recurrence.Frequency `form:"frequency"`                  // By frequency
	Currency   string               `form:"currency"`                   // By currency
	Search     string               `form:"search" filterField:"false"` // By string in name or note
	Offset     uint                 `form:"offset" filterField:"false"` // The offset of the first item returned. Defaults to 0.
	Limit      int                  `form:"limit" filterField:"false"`  // Maximum number of items to return. Defaults to 50.
}

func (f RecurringQueryFilter) recurring() models.Recurring {
	return models.Recurring{
		Frequency: f.Frequency,
		Currency:  strings.ToUpper(f.Currency),
	}
}
