package models

import (
	"fmt"
	"strings"

	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
)

// Frequencies allowed per kind of recurring item.
var (
	IncomeFrequencies       = []recurrence.Frequency{recurrence.OneTime, recurrence.Daily, recurrence.Weekly, recurrence.Biweekly, recurrence.Monthly, recurrence.Quarterly, recurrence.Annually}
	ExpenseFrequencies      = IncomeFrequencies
	SubscriptionFrequencies = recurrence.Frequencies
	InstallmentFrequencies  = []recurrence.Frequency{recurrence.Weekly, recurrence.Biweekly, recurrence.Monthly}
)

// Recurring holds the amount and the recurrence of an income, expense
// or subscription.
type Recurring struct {
	Amount    decimal.Decimal      `gorm:"type:DECIMAL(20,8)"`
	Currency  string               `gorm:"size:3"`
	Frequency recurrence.Frequency `gorm:"index"`
	Date      types.Date
	StartDate types.Date
	EndDate   types.Date
}

// Schedule returns the recurrence of the item.
func (r Recurring) Schedule() recurrence.Schedule {
	return recurrence.Schedule{
		Frequency: r.Frequency,
		Date:      r.Date,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

func (r *Recurring) normalize() {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
}

// validate checks the item against the frequencies allowed for its kind.
func (r Recurring) validate(allowed []recurrence.Frequency) error {
	if !r.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if err := validateCurrency(r.Currency); err != nil {
		return err
	}

	if !slices.Contains(allowed, r.Frequency) {
		return fmt.Errorf("%w: '%s'", ErrFrequencyNotAllowed, r.Frequency)
	}

	if r.Frequency == recurrence.OneTime {
		if r.Date.IsZero() {
			return ErrDateMissing
		}
		return nil
	}

	if r.StartDate.IsZero() {
		return ErrStartDateMissing
	}

	if !r.EndDate.IsZero() && r.EndDate.Before(r.StartDate) {
		return ErrEndDateBeforeStartDate
	}

	return nil
}

func validateCurrency(s string) error {
	if _, err := currency.ParseISO(s); err != nil {
		return fmt.Errorf("%w: '%s'", ErrCurrencyInvalid, s)
	}
	return nil
}
