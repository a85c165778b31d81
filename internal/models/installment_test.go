package models_test

import (
	"github.com/pennyplan/backend/internal/models"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

func validInstallment() models.Installment {
	return models.Installment{
		Name:             "Laptop",
		Amount:           decimal.NewFromFloat(99.99),
		Currency:         "eur",
		FirstPaymentDate: types.NewDate(2024, 1, 1),
		Frequency:        recurrence.Monthly,
		NumberOfPayments: 3,
		Active:           true,
	}
}

func (suite *TestSuiteStandard) TestInstallmentSelf() {
	suite.Assert().Equal("Installment", models.Installment{}.Self())
}

func (suite *TestSuiteStandard) TestInstallmentValidation() {
	tests := []struct {
		name   string
		modify func(*models.Installment)
		err    error
	}{
		{"Valid", func(_ *models.Installment) {}, nil},
		{"Zero amount", func(i *models.Installment) { i.Amount = decimal.Zero }, models.ErrAmountNotPositive},
		{"Invalid currency", func(i *models.Installment) { i.Currency = "€" }, models.ErrCurrencyInvalid},
		{"Quarterly", func(i *models.Installment) { i.Frequency = recurrence.Quarterly }, models.ErrFrequencyNotAllowed},
		{"Daily", func(i *models.Installment) { i.Frequency = recurrence.Daily }, models.ErrFrequencyNotAllowed},
		{"No first payment", func(i *models.Installment) { i.FirstPaymentDate = types.Date{} }, models.ErrFirstPaymentDateMissing},
		{"No payments", func(i *models.Installment) { i.NumberOfPayments = 0 }, models.ErrNumberOfPaymentsNotPositive},
		{"Inactive", func(i *models.Installment) { i.Active = false }, nil},
	}

	for _, tt := range tests {
		i := validInstallment()
		tt.modify(&i)

		err := models.DB.Create(&i).Error
		if tt.err == nil {
			suite.Assert().Nil(err, tt.name)
			continue
		}
		suite.Assert().ErrorIs(err, tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestInstallmentPlan() {
	i := validInstallment()
	suite.Require().Nil(models.DB.Create(&i).Error)

	var found models.Installment
	suite.Require().Nil(models.DB.First(&found, i.ID).Error)
	suite.Assert().Equal("EUR", found.Currency)

	plan := found.Plan()
	suite.Assert().Equal(recurrence.Plan{
		FirstPaymentDate: types.NewDate(2024, 1, 1),
		Frequency:        recurrence.Monthly,
		NumberOfPayments: 3,
		Active:           true,
	}, plan)

	payment, ok := recurrence.Resolver{}.Payment(plan, types.NewMonth(2024, 3))
	suite.Assert().True(ok)
	suite.Assert().Equal(recurrence.Payment{Date: types.NewDate(2024, 3, 1), Number: 3}, payment)
}

func (suite *TestSuiteStandard) TestInstallmentTotal() {
	i := validInstallment()
	suite.Assert().True(decimal.NewFromFloat(299.97).Equal(i.Total()), "total is %s", i.Total())
}
