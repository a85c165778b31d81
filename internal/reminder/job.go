package reminder

import (
	"context"
	"time"

	"github.com/pennyplan/backend/internal/models"
	"github.com/pennyplan/backend/internal/recurrence"
	"github.com/pennyplan/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// Job finds everything that occurs Lookahead days after the day it runs
// and publishes a reminder for each occurrence.
type Job struct {
	Resolver  recurrence.Resolver
	Publisher Publisher
	Lookahead int
}

// Result counts the reminders of a run.
type Result struct {
	Published int
	Failed    int
}

// Day returns the day reminders are sent for when the job runs at now.
func (j Job) Day(now time.Time) types.Date {
	return types.DateOf(now).AddDate(0, 0, j.Lookahead)
}

// Run publishes the reminders for the day given by now and Lookahead.
//
// A message that cannot be published is logged and counted, the run continues
// with the next one. Errors loading the data abort the run.
func (j Job) Run(ctx context.Context, now time.Time) (Result, error) {
	day := j.Day(now)

	messages, err := j.messages(day)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, m := range messages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := j.Publisher.Publish(ctx, m); err != nil {
			log.Error().Err(err).Str("kind", m.Kind).Str("id", m.ID.String()).Msg("could not publish reminder")
			result.Failed++
			continue
		}
		result.Published++
	}

	log.Info().
		Str("day", day.String()).
		Int("published", result.Published).
		Int("failed", result.Failed).
		Msg("reminders sent")

	return result, nil
}

// messages loads every item and returns the messages for those occurring on day,
// incomes first, then expenses, subscriptions and installments, each by name.
func (j Job) messages(day types.Date) ([]Message, error) {
	messages := make([]Message, 0)

	recurring := func(kind string, item models.Recurring, m Message) {
		if !j.Resolver.Occurs(item.Schedule(), day) {
			return
		}

		m.Kind = kind
		m.Amount = item.Amount
		m.Currency = item.Currency
		m.Date = day
		messages = append(messages, m)
	}

	var incomes []models.Income
	if err := models.DB.Order("name ASC").Find(&incomes).Error; err != nil {
		return nil, err
	}
	for _, i := range incomes {
		recurring("income", i.Recurring, Message{ID: i.ID, Name: i.Name})
	}

	var expenses []models.Expense
	if err := models.DB.Order("name ASC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	for _, e := range expenses {
		recurring("expense", e.Recurring, Message{ID: e.ID, Name: e.Name})
	}

	var subscriptions []models.Subscription
	if err := models.DB.Order("name ASC").Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	for _, s := range subscriptions {
		recurring("subscription", s.Recurring, Message{ID: s.ID, Name: s.Name})
	}

	var installments []models.Installment
	if err := models.DB.Where(&models.Installment{Active: true}).Order("name ASC").Find(&installments).Error; err != nil {
		return nil, err
	}
	for _, i := range installments {
		payment, ok := j.Resolver.PaymentOn(i.Plan(), day)
		if !ok {
			continue
		}

		messages = append(messages, Message{
			Kind:             "installment",
			ID:               i.ID,
			Name:             i.Name,
			Amount:           i.Amount,
			Currency:         i.Currency,
			Date:             payment.Date,
			PaymentNumber:    payment.Number,
			NumberOfPayments: i.NumberOfPayments,
		})
	}

	return messages, nil
}
