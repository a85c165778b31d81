package recurrence

import (
	"github.com/pennyplan/backend/internal/types"
)

// Scheduled is anything that can tell whether it occurs on a given day.
// Schedule and Plan both implement it.
type Scheduled interface {
	Occurs(r Resolver, d types.Date) bool
}

// Calendar groups items by the days of a month they occur on.
type Calendar[T Scheduled] struct {
	month types.Month
	days  map[int][]T
	count int
}

// Expand places every item on every day of month m it occurs on.
//
// Items occurring more than once in the month (daily, weekly, biweekly)
// appear once per matching day. Within a day, items keep the order of the
// input slice.
func Expand[T Scheduled](r Resolver, items []T, m types.Month) Calendar[T] {
	c := Calendar[T]{
		month: m,
		days:  make(map[int][]T),
	}

	for _, item := range items {
		for day := 1; day <= m.Days(); day++ {
			if item.Occurs(r, m.Day(day)) {
				c.days[day] = append(c.days[day], item)
				c.count++
			}
		}
	}

	return c
}

// Month returns the month the calendar was expanded for.
func (c Calendar[T]) Month() types.Month {
	return c.month
}

// Days returns the days that have at least one item, ascending.
func (c Calendar[T]) Days() []int {
	days := make([]int, 0, len(c.days))
	for day := 1; day <= c.month.Days(); day++ {
		if _, ok := c.days[day]; ok {
			days = append(days, day)
		}
	}
	return days
}

// On returns the items occurring on day.
func (c Calendar[T]) On(day int) []T {
	return c.days[day]
}

// Len returns the total number of placements across all days.
func (c Calendar[T]) Len() int {
	return c.count
}
