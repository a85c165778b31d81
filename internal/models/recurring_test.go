package models_test

import (
	"testing"

	"github.com/pennyplan/backend/internal/models"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRecurringValidation() {
	tests := []struct {
		name   string
		modify func(*models.Recurring)
		err    error
	}{
		{"Valid", func(_ *models.Recurring) {}, nil},
		{"Zero amount", func(r *models.Recurring) { r.Amount = decimal.Zero }, models.ErrAmountNotPositive},
		{"Negative amount", func(r *models.Recurring) { r.Amount = decimal.NewFromInt(-5) }, models.ErrAmountNotPositive},
		{"Invalid currency", func(r *models.Recurring) { r.Currency = "ABCD" }, models.ErrCurrencyInvalid},
		{"Unknown frequency", func(r *models.Recurring) { r.Frequency = "fortnightly" }, models.ErrFrequencyNotAllowed},
		{"No start date", func(r *models.Recurring) { r.StartDate = types.Date{} }, models.ErrStartDateMissing},
		{"End before start", func(r *models.Recurring) { r.EndDate = types.NewDate(2023, 12, 31) }, models.ErrEndDateBeforeStartDate},
		{"End equals start", func(r *models.Recurring) { r.EndDate = r.StartDate }, nil},
		{"One time without date", func(r *models.Recurring) { r.Frequency = recurrence.OneTime }, models.ErrDateMissing},
		{"One time with date", func(r *models.Recurring) {
			r.Frequency = recurrence.OneTime
			r.Date = types.NewDate(2024, 2, 14)
			r.StartDate = types.Date{}
		}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := validRecurring()
			tt.modify(&r)

			err := models.DB.Create(&models.Expense{Name: tt.name, Recurring: r}).Error
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringFrequencyPerKind() {
	r := validRecurring()
	r.Frequency = recurrence.Biannually

	err := models.DB.Create(&models.Income{Name: "Bonus", Recurring: r}).Error
	suite.Assert().ErrorIs(err, models.ErrFrequencyNotAllowed)

	err = models.DB.Create(&models.Expense{Name: "Car service", Recurring: r}).Error
	suite.Assert().ErrorIs(err, models.ErrFrequencyNotAllowed)

	err = models.DB.Create(&models.Subscription{Name: "Domain", Recurring: r}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestRecurringNormalize() {
	r := validRecurring()
	r.Currency = " usd "

	income := models.Income{Name: "  Salary ", Note: " Paid late sometimes ", Recurring: r}
	suite.Require().Nil(models.DB.Create(&income).Error)

	var found models.Income
	suite.Require().Nil(models.DB.First(&found, income.ID).Error)

	suite.Assert().Equal("USD", found.Currency)
	suite.Assert().Equal("Salary", found.Name)
	suite.Assert().Equal("Paid late sometimes", found.Note)
	suite.Assert().True(found.Amount.Equal(decimal.NewFromFloat(12.5)))
	suite.Assert().Equal(types.NewDate(2024, 1, 31), found.StartDate)
	suite.Assert().True(found.EndDate.IsZero())
	suite.Assert().Equal(recurrence.Monthly, found.Frequency)
}

func (suite *TestSuiteStandard) TestRecurringUpdateValidates() {
	subscription := models.Subscription{Name: "Music", Recurring: validRecurring()}
	suite.Require().Nil(models.DB.Create(&subscription).Error)

	err := models.DB.Model(&subscription).Select("EndDate").Updates(models.Subscription{Recurring: models.Recurring{EndDate: types.NewDate(2020, 1, 1)}}).Error
	suite.Assert().ErrorIs(err, models.ErrEndDateBeforeStartDate)

	var found models.Subscription
	suite.Require().Nil(models.DB.First(&found, subscription.ID).Error)
	suite.Assert().True(found.EndDate.IsZero(), "invalid update has been persisted")
}

func (suite *TestSuiteStandard) TestRecurringSchedule() {
	r := validRecurring()
	r.EndDate = types.NewDate(2024, 6, 30)

	s := r.Schedule()
	suite.Assert().Equal(recurrence.Monthly, s.Frequency)
	suite.Assert().Equal(r.StartDate, s.StartDate)
	suite.Assert().Equal(r.EndDate, s.EndDate)

	d, ok := recurrence.Resolver{}.Occurrence(s, types.NewMonth(2024, 2))
	suite.Assert().True(ok)
	suite.Assert().Equal(types.NewDate(2024, 2, 29), d)
}

func (suite *TestSuiteStandard) TestRecurringSelf() {
	suite.Assert().Equal("Income", models.Income{}.Self())
	suite.Assert().Equal("Expense", models.Expense{}.Self())
	suite.Assert().Equal("Subscription", models.Subscription{}.Self())
}
