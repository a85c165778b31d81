// Package reminder publishes reminders for incomes, expenses, subscriptions
// and installment payments that are coming up.
package reminder

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pennyplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Message is a reminder for a single occurrence.
type Message struct {
	Kind             string          `json:"kind"`
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Date             types.Date      `json:"date"`
	PaymentNumber    int             `json:"paymentNumber,omitempty"`
	NumberOfPayments int             `json:"numberOfPayments,omitempty"`
}

func (m Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// Publisher delivers reminder messages.
type Publisher interface {
	Publish(ctx context.Context, m Message) error
}
