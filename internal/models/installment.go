package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Installment is a purchase paid off in a fixed number of payments.
type Installment struct {
	DefaultModel
	Category         Category `gorm:"constraint:OnDelete:SET NULL"`
	CategoryID       *uuid.UUID
	Name             string
	Note             string
	Amount           decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Amount of a single payment
	Currency         string          `gorm:"size:3"`
	FirstPaymentDate types.Date
	Frequency        recurrence.Frequency
	NumberOfPayments int
	Active           bool
}

func (i Installment) Self() string {
	return "Installment"
}

// Plan returns the payment plan of the installment.
func (i Installment) Plan() recurrence.Plan {
	return recurrence.Plan{
		FirstPaymentDate: i.FirstPaymentDate,
		Frequency:        i.Frequency,
		NumberOfPayments: i.NumberOfPayments,
		Active:           i.Active,
	}
}

// Total returns the sum of all payments.
func (i Installment) Total() decimal.Decimal {
	return i.Amount.Mul(decimal.NewFromInt(int64(i.NumberOfPayments)))
}

func (i *Installment) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Note = strings.TrimSpace(i.Note)
	i.Currency = strings.ToUpper(strings.TrimSpace(i.Currency))

	return nil
}

func (i *Installment) AfterSave(_ *gorm.DB) error {
	if !i.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if err := validateCurrency(i.Currency); err != nil {
		return err
	}

	if !slices.Contains(InstallmentFrequencies, i.Frequency) {
		return fmt.Errorf("%w: '%s'", ErrFrequencyNotAllowed, i.Frequency)
	}

	if i.FirstPaymentDate.IsZero() {
		return ErrFirstPaymentDateMissing
	}

	if i.NumberOfPayments <= 0 {
		return ErrNumberOfPaymentsNotPositive
	}

	return nil
}
