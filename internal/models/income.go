package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Income is a source of money, e.g. a salary.
type Income struct {
	DefaultModel
	Category   Category `gorm:"constraint:OnDelete:SET NULL"`
	CategoryID *uuid.UUID
	Name       string
	Note       string
	Recurring
}

func (i Income) Self() string {
	return "Income"
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Note = strings.TrimSpace(i.Note)
	i.normalize()

	return nil
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	return i.validate(IncomeFrequencies)
}
