package recurrence

import (
	"github.com/pennyplan/backend/internal/types"
)

// Schedule is the recurrence part of a recurring item.
//
// Date is the single occurrence of a one_time item. StartDate is the anchor of
// a recurring item and EndDate, if set, its last possible occurrence.
type Schedule struct {
	Frequency Frequency
	Date      types.Date
	StartDate types.Date
	EndDate   types.Date
}

// Occurs reports whether the schedule produces an occurrence on d.
func (s Schedule) Occurs(r Resolver, d types.Date) bool {
	return r.Occurs(s, d)
}

// end returns the last date an occurrence may fall on.
func (s Schedule) end() types.Date {
	if s.EndDate.IsZero() {
		return FarFuture
	}
	return s.EndDate
}

// Resolver computes occurrences. The zero value clamps month-end days.
type Resolver struct {
	MonthEnd MonthEndPolicy
}

// Advance returns the anchor advanced by n cycles of f.
//
// The result is always computed from the anchor, so the day of month of the
// anchor is kept for every cycle of a calendar-month frequency.
func (r Resolver) Advance(anchor types.Date, f Frequency, n int) types.Date {
	iv := f.Interval()
	if iv.Months != 0 {
		if r.MonthEnd == Overflow {
			return anchor.AddDate(0, iv.Months*n, 0)
		}
		return anchor.AddMonthsClamped(iv.Months * n)
	}

	return anchor.AddDate(0, 0, iv.Days*n)
}

// firstCycle returns the smallest cycle number whose date is on or after from.
//
// The estimate undershoots by at least one cycle, the walk then finds the
// exact cycle. The result is the same as walking from the anchor.
func (r Resolver) firstCycle(anchor types.Date, f Frequency, from types.Date) int {
	if !anchor.Before(from) {
		return 0
	}

	iv := f.Interval()
	var n int
	if iv.Months != 0 {
		n = from.MonthsSince(anchor)/iv.Months - 1
	} else {
		n = from.DaysSince(anchor)/iv.Days - 1
	}
	n = max(n, 0)

	for r.Advance(anchor, f, n).Before(from) {
		n++
	}
	return n
}

// Occurrence returns the first date in month m on which the schedule produces
// an occurrence.
//
// There is no occurrence for one_time schedules, for schedules without a
// start date, for schedules that lapsed before the month and for schedules
// whose next cycle falls after the month or after their end date.
func (r Resolver) Occurrence(s Schedule, m types.Month) (types.Date, bool) {
	if !s.Frequency.Recurring() || s.StartDate.IsZero() {
		return types.Date{}, false
	}

	start, end := m.Start(), m.End()
	if !s.EndDate.IsZero() && s.EndDate.Before(start) {
		return types.Date{}, false
	}

	d := r.Advance(s.StartDate, s.Frequency, r.firstCycle(s.StartDate, s.Frequency, start))
	if d.After(end) || d.After(s.end()) {
		return types.Date{}, false
	}

	return d, true
}

// Occurs reports whether the schedule produces an occurrence on day d.
func (r Resolver) Occurs(s Schedule, d types.Date) bool {
	if d.IsZero() {
		return false
	}

	if s.Frequency == OneTime {
		return !s.Date.IsZero() && s.Date.Equal(d)
	}

	if !s.Frequency.Recurring() || s.StartDate.IsZero() {
		return false
	}

	if d.Before(s.StartDate) || d.After(s.end()) {
		return false
	}

	iv := s.Frequency.Interval()
	if iv.Days != 0 {
		return d.DaysSince(s.StartDate)%iv.Days == 0
	}

	// With Overflow, a cycle can land in the month after the one it belongs to
	months := d.MonthsSince(s.StartDate)
	for _, k := range []int{months, months - 1} {
		if k < 0 || k%iv.Months != 0 {
			continue
		}

		if r.Advance(s.StartDate, s.Frequency, k/iv.Months).Equal(d) {
			return true
		}
	}

	return false
}

// Days returns every day of month m on which the schedule produces an
// occurrence, in ascending order.
func (r Resolver) Days(s Schedule, m types.Month) []int {
	days := []int{}
	for day := 1; day <= m.Days(); day++ {
		if r.Occurs(s, m.Day(day)) {
			days = append(days, day)
		}
	}
	return days
}
