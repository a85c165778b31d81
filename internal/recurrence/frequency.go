// Package recurrence resolves when recurring financial items produce dated events.
//
// Everything in this package is pure: resolvers hold no state, perform no I/O
// and report anomalies such as a missing anchor date or a lapsed item as the
// absence of a result, never as an error.
package recurrence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pennyplan/backend/internal/types"
)

var (
	ErrInvalidFrequency      = errors.New("invalid frequency")
	ErrInvalidMonthEndPolicy = errors.New("invalid month end policy")
)

// Frequency is how often a recurring item produces an occurrence.
type Frequency string

const (
	OneTime    Frequency = "one_time"
	Daily      Frequency = "daily"
	Weekly     Frequency = "weekly"
	Biweekly   Frequency = "biweekly"
	Monthly    Frequency = "monthly"
	Quarterly  Frequency = "quarterly"
	Annually   Frequency = "annually"
	Biannually Frequency = "biannually"
)

// Frequencies lists every known frequency.
var Frequencies = []Frequency{OneTime, Daily, Weekly, Biweekly, Monthly, Quarterly, Annually, Biannually}

// ParseFrequency parses the string representation of a frequency.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: '%s'", ErrInvalidFrequency, s)
	}
	return f, nil
}

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case OneTime, Daily, Weekly, Biweekly, Monthly, Quarterly, Annually, Biannually:
		return true
	}
	return false
}

// Recurring reports whether f produces more than one occurrence.
func (f Frequency) Recurring() bool {
	return f.Valid() && f != OneTime
}

// Installment reports whether f can be used for an installment plan.
func (f Frequency) Installment() bool {
	return f == Weekly || f == Biweekly || f == Monthly
}

// Interval is the length of one cycle. Exactly one of Days and Months is set
// for recurring frequencies, neither is set for one_time.
type Interval struct {
	Days   int
	Months int
}

// Interval returns the length of one cycle of f.
func (f Frequency) Interval() Interval {
	switch f {
	case Daily:
		return Interval{Days: 1}
	case Weekly:
		return Interval{Days: 7}
	case Biweekly:
		return Interval{Days: 14}
	case Monthly:
		return Interval{Months: 1}
	case Quarterly:
		return Interval{Months: 3}
	case Biannually:
		return Interval{Months: 6}
	case Annually:
		return Interval{Months: 12}
	}
	return Interval{}
}

// MonthEndPolicy decides what happens when a calendar-month advance lands on a
// day that does not exist in the target month, e.g. January 31st plus one month.
type MonthEndPolicy int

const (
	// Clamp moves the occurrence to the last day of the shorter month.
	Clamp MonthEndPolicy = iota

	// Overflow rolls the surplus days into the following month, so that
	// January 31st plus one month is March 2nd or 3rd.
	Overflow
)

// ParseMonthEndPolicy parses "clamp" or "overflow". An empty string is Clamp.
func ParseMonthEndPolicy(s string) (MonthEndPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return Clamp, nil
	case "overflow":
		return Overflow, nil
	}
	return Clamp, fmt.Errorf("%w: '%s', must be one of 'clamp', 'overflow'", ErrInvalidMonthEndPolicy, s)
}

func (p MonthEndPolicy) String() string {
	if p == Overflow {
		return "overflow"
	}
	return "clamp"
}

// FarFuture is the end bound used for recurring items without an end date.
var FarFuture = types.NewDate(9999, 12, 31)
