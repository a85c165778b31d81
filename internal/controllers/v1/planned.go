package v1

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pennyplan/backend/internal/models"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// PlannedQueryFilter selects the month for the planned endpoints.
type PlannedQueryFilter struct {
	QueryMonth
	Match string `form:"match" example:"*Insurance*"` // Only include items whose name matches this glob pattern. Globbing is case sensitive.
}

type PlannedLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/4a6b2c14-1a0c-4b0e-8a4f-a2c7e3e2b9f1"` // The planned resource itself
}

// PlannedItem is an income, expense or subscription that occurs in the month.
type PlannedItem struct {
	ID         uuid.UUID            `json:"id" example:"4a6b2c14-1a0c-4b0e-8a4f-a2c7e3e2b9f1"`            // ID of the item
	Name       string               `json:"name" example:"Rent"`                                          // Name of the item
	CategoryID *uuid.UUID           `json:"categoryId" example:"0f9e2e3f-fa7d-4e8a-9a6f-1ea9f3b2c3d4"`    // ID of the category, if any
	Amount     decimal.Decimal      `json:"amount" example:"950" swaggertype:"string"`                    // Amount per occurrence
	Currency   string               `json:"currency" example:"EUR"`                                       // ISO 4217 currency code
	Frequency  recurrence.Frequency `json:"frequency" example:"monthly"`                                  // How often the item recurs
	Date       types.Date           `json:"date" example:"2024-02-29" swaggertype:"string" format:"date"` // The first occurrence in the month
	Links      PlannedLinks         `json:"links"`
}

// Total is the sum of planned amounts in one currency.
type Total struct {
	Currency string          `json:"currency" example:"EUR"`                        // ISO 4217 currency code
	Amount   decimal.Decimal `json:"amount" example:"1234.56" swaggertype:"string"` // Sum of all amounts in this currency
}

type Planned struct {
	Month  types.Month   `json:"month" example:"2024-02" swaggertype:"string"` // The month
	Items  []PlannedItem `json:"items"`                                        // Items occurring in the month, ordered by date and name
	Totals []Total       `json:"totals"`                                       // Sums per currency, ordered by currency
}

type PlannedResponse struct {
	Data  *Planned `json:"data"`                                                  // Data for the month
	Error *string  `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

// plannedSource is the data of a single income, expense or subscription
// that the planned endpoints need.
type plannedSource struct {
	id         uuid.UUID
	name       string
	categoryID *uuid.UUID
	recurring  models.Recurring
	self       string
}

// planned returns the items that occur in month m, each with its first
// occurrence in the month.
func planned(r recurrence.Resolver, m types.Month, match string, sources []plannedSource) Planned {
	items := make([]PlannedItem, 0)
	sums := make(map[string]decimal.Decimal)

	for _, s := range sources {
		if match != "" && !glob.Glob(match, s.name) {
			continue
		}

		d, ok := r.Occurrence(s.recurring.Schedule(), m)
		if !ok {
			continue
		}

		items = append(items, PlannedItem{
			ID:         s.id,
			Name:       s.name,
			CategoryID: s.categoryID,
			Amount:     s.recurring.Amount,
			Currency:   s.recurring.Currency,
			Frequency:  s.recurring.Frequency,
			Date:       d,
			Links:      PlannedLinks{Self: s.self},
		})

		sums[s.recurring.Currency] = sums[s.recurring.Currency].Add(s.recurring.Amount)
	}

	slices.SortStableFunc(items, func(a, b PlannedItem) int {
		if !a.Date.Equal(b.Date) {
			if a.Date.Before(b.Date) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})

	return Planned{
		Month:  m,
		Items:  items,
		Totals: totals(sums),
	}
}

// totals returns the sums ordered by currency.
func totals(sums map[string]decimal.Decimal) []Total {
	currencies := make([]string, 0, len(sums))
	for currency := range sums {
		currencies = append(currencies, currency)
	}
	slices.Sort(currencies)

	t := make([]Total, 0, len(currencies))
	for _, currency := range currencies {
		t = append(t, Total{Currency: currency, Amount: sums[currency]})
	}
	return t
}

func selfLink(url, collection string, id uuid.UUID) string {
	return fmt.Sprintf("%s/v1/%s/%s", url, collection, id)
}
