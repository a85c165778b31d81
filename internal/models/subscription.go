package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription is a service that renews periodically. Unlike incomes and
// expenses, subscriptions can renew biannually.
type Subscription struct {
	DefaultModel
	Category   Category `gorm:"constraint:OnDelete:SET NULL"`
	CategoryID *uuid.UUID
	Name       string
	Note       string
	Recurring
}

func (s Subscription) Self() string {
	return "Subscription"
}

func (s *Subscription) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Note = strings.TrimSpace(s.Note)
	s.normalize()

	return nil
}

func (s *Subscription) AfterSave(_ *gorm.DB) error {
	return s.validate(SubscriptionFrequencies)
}
