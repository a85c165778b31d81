package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category groups incomes, expenses, subscriptions and installments.
type Category struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Note     string
	Archived bool
}

func (c Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}
