package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pennyplan/backend/internal/httputil"
	"github.com/pennyplan/backend/internal/models"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CalendarEntry is an occurrence of an item on a day of the month.
type CalendarEntry struct {
	Kind          string               `json:"kind" example:"expense" enums:"income,expense,subscription,installment"` // The kind of the item
	ID            uuid.UUID            `json:"id" example:"4a6b2c14-1a0c-4b0e-8a4f-a2c7e3e2b9f1"`                      // ID of the item
	Name          string               `json:"name" example:"Rent"`                                                    // Name of the item
	CategoryID    *uuid.UUID           `json:"categoryId" example:"0f9e2e3f-fa7d-4e8a-9a6f-1ea9f3b2c3d4"`              // ID of the category, if any
	Amount        decimal.Decimal      `json:"amount" example:"950" swaggertype:"string"`                              // Amount of the occurrence
	Currency      string               `json:"currency" example:"EUR"`                                                 // ISO 4217 currency code
	Frequency     recurrence.Frequency `json:"frequency" example:"monthly"`                                            // How often the item recurs
	PaymentNumber int                  `json:"paymentNumber,omitempty" example:"3"`                                    // Number of the payment, installments only
	Links         PlannedLinks         `json:"links"`
}

type CalendarDay struct {
	Day     int             `json:"day" example:"14"` // Day of the month
	Entries []CalendarEntry `json:"entries"`          // Incomes, expenses, subscriptions and installments on that day, in that order
}

type Calendar struct {
	Month types.Month   `json:"month" example:"2024-02" swaggertype:"string"` // The month
	Days  []CalendarDay `json:"days"`                                         // Days with at least one entry, ascending
}

type CalendarResponse struct {
	Data  *Calendar `json:"data"`                                                  // Data for the month
	Error *string   `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

// calendarItem pairs an entry with the recurrence that places it.
type calendarItem struct {
	entry     CalendarEntry
	scheduled recurrence.Scheduled
}

func (i calendarItem) Occurs(r recurrence.Resolver, d types.Date) bool {
	return i.scheduled.Occurs(r, d)
}

func RegisterCalendarRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCalendar)
	r.GET("", GetCalendar)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Router			/v1/calendar [options]
func OptionsCalendar(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get calendar
// @Description	Returns every day of a month with the incomes, expenses, subscriptions and installment payments occurring on it. Items recurring more than once a month appear on every day they occur on.
// @Tags			Calendar
// @Produce		json
// @Success		200		{object}	CalendarResponse
// @Failure		400		{object}	CalendarResponse
// @Failure		500		{object}	CalendarResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/calendar [get]
func GetCalendar(c *gin.Context) {
	var query QueryMonth
	_ = c.ShouldBind(&query)

	month, err := query.parse()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CalendarResponse{
			Error: &s,
		})
		return
	}

	items, err := calendarItems(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalendarResponse{
			Error: &s,
		})
		return
	}

	r := resolver(c)
	expanded := recurrence.Expand(r, items, month)

	days := make([]CalendarDay, 0)
	for _, day := range expanded.Days() {
		entries := make([]CalendarEntry, 0)
		for _, item := range expanded.On(day) {
			entry := item.entry
			if plan, ok := item.scheduled.(recurrence.Plan); ok {
				payment, _ := r.PaymentOn(plan, month.Day(day))
				entry.PaymentNumber = payment.Number
			}
			entries = append(entries, entry)
		}

		days = append(days, CalendarDay{Day: day, Entries: entries})
	}

	c.JSON(http.StatusOK, CalendarResponse{
		Data: &Calendar{
			Month: month,
			Days:  days,
		},
	})
}

// calendarItems loads incomes, expenses, subscriptions and active
// installments, in that order.
func calendarItems(c *gin.Context) ([]calendarItem, error) {
	url := c.GetString(string(models.DBContextURL))
	items := make([]calendarItem, 0)

	recurring := func(kind, collection string, id uuid.UUID, name string, categoryID *uuid.UUID, r models.Recurring) calendarItem {
		return calendarItem{
			entry: CalendarEntry{
				Kind:       kind,
				ID:         id,
				Name:       name,
				CategoryID: categoryID,
				Amount:     r.Amount,
				Currency:   r.Currency,
				Frequency:  r.Frequency,
				Links:      PlannedLinks{Self: selfLink(url, collection, id)},
			},
			scheduled: r.Schedule(),
		}
	}

	var incomes []models.Income
	if err := models.DB.Order("name ASC").Find(&incomes).Error; err != nil {
		return nil, err
	}
	for _, i := range incomes {
		items = append(items, recurring("income", "incomes", i.ID, i.Name, i.CategoryID, i.Recurring))
	}

	var expenses []models.Expense
	if err := models.DB.Order("name ASC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	for _, e := range expenses {
		items = append(items, recurring("expense", "expenses", e.ID, e.Name, e.CategoryID, e.Recurring))
	}

	var subscriptions []models.Subscription
	if err := models.DB.Order("name ASC").Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	for _, s := range subscriptions {
		items = append(items, recurring("subscription", "subscriptions", s.ID, s.Name, s.CategoryID, s.Recurring))
	}

	var installments []models.Installment
	if err := models.DB.Where(&models.Installment{Active: true}).Order("name ASC").Find(&installments).Error; err != nil {
		return nil, err
	}
	for _, i := range installments {
		items = append(items, calendarItem{
			entry: CalendarEntry{
				Kind:       "installment",
				ID:         i.ID,
				Name:       i.Name,
				CategoryID: i.CategoryID,
				Amount:     i.Amount,
				Currency:   i.Currency,
				Frequency:  i.Frequency,
				Links:      PlannedLinks{Self: selfLink(url, "installments", i.ID)},
			},
			scheduled: i.Plan(),
		})
	}

	return items, nil
}
