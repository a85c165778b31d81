package models_test

import (
	"github.com/pennyplan/backend/internal/models"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestCategory(c models.Category) models.Category {
	err := models.DB.Create(&c).Error
	if err != nil {
		suite.Assert().FailNow("Category could not be saved", "Error: %s, Category: %#v", err, c)
	}

	return c
}

// validRecurring returns a monthly recurrence starting on 2024-01-31
// that passes validation.
func validRecurring() models.Recurring {
	return models.Recurring{
		Amount:    decimal.NewFromFloat(12.5),
		Currency:  "EUR",
		Frequency: recurrence.Monthly,
		StartDate: types.NewDate(2024, 1, 31),
	}
}
