package recurrence

import (
	"github.com/pennyplan/backend/internal/types"
)

// Plan is a finite sequence of payments.
type Plan struct {
	FirstPaymentDate types.Date
	Frequency        Frequency
	NumberOfPayments int
	Active           bool
}

// Payment is one payment of a plan. Number is in 1..NumberOfPayments.
type Payment struct {
	Date   types.Date `json:"date"`
	Number int        `json:"paymentNumber"`
}

// Occurs reports whether a payment of the plan falls on d.
func (p Plan) Occurs(r Resolver, d types.Date) bool {
	_, ok := r.PaymentOn(p, d)
	return ok
}

// schedulable reports whether the plan can produce payments at all.
func (p Plan) schedulable() bool {
	return !p.FirstPaymentDate.IsZero() && p.Frequency.Installment() && p.NumberOfPayments > 0
}

// Payment returns the payment of the plan that falls in month m.
//
// Payment k is due on the first payment date advanced by k-1 cycles. Since
// payments are at least a week apart, a plan has at most one payment per month.
// Inactive plans and plans without a first payment date have no payments.
func (r Resolver) Payment(p Plan, m types.Month) (Payment, bool) {
	if !p.Active || !p.schedulable() {
		return Payment{}, false
	}

	start, end := m.Start(), m.End()
	for k := 1; k <= p.NumberOfPayments; k++ {
		d := r.Advance(p.FirstPaymentDate, p.Frequency, k-1)

		// Payment dates only increase, nothing later can match
		if d.After(end) {
			break
		}

		if !d.Before(start) {
			return Payment{Date: d, Number: k}, true
		}
	}

	return Payment{}, false
}

// Payments returns the complete payment schedule of the plan, regardless of
// whether the plan is active.
func (r Resolver) Payments(p Plan) []Payment {
	if !p.schedulable() {
		return []Payment{}
	}

	payments := make([]Payment, 0, p.NumberOfPayments)
	for k := 1; k <= p.NumberOfPayments; k++ {
		payments = append(payments, Payment{
			Date:   r.Advance(p.FirstPaymentDate, p.Frequency, k-1),
			Number: k,
		})
	}
	return payments
}

// PaymentOn returns the payment of an active plan that is due on d.
func (r Resolver) PaymentOn(p Plan, d types.Date) (Payment, bool) {
	if !p.Active || !p.schedulable() || d.Before(p.FirstPaymentDate) {
		return Payment{}, false
	}

	k := r.firstCycle(p.FirstPaymentDate, p.Frequency, d) + 1
	if k > p.NumberOfPayments {
		return Payment{}, false
	}

	due := r.Advance(p.FirstPaymentDate, p.Frequency, k-1)
	if !due.Equal(d) {
		return Payment{}, false
	}

	return Payment{Date: due, Number: k}, true
}

// Last returns the final payment of the plan.
func (r Resolver) Last(p Plan) (Payment, bool) {
	if !p.schedulable() {
		return Payment{}, false
	}

	return Payment{
		Date:   r.Advance(p.FirstPaymentDate, p.Frequency, p.NumberOfPayments-1),
		Number: p.NumberOfPayments,
	}, true
}
