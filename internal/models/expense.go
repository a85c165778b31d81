package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is a bill, e.g. rent or insurance.
type Expense struct {
	DefaultModel
	Category   Category `gorm:"constraint:OnDelete:SET NULL"`
	CategoryID *uuid.UUID
	Name       string
	Note       string
	Recurring
}

func (e Expense) Self() string {
	return "Expense"
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)
	e.normalize()

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	return e.validate(ExpenseFrequencies)
}
