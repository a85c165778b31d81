package types

import (
	"database/sql"
	"database/sql/driver"
	"strings"
	"time"
)

// DateFormat is the layout dates are parsed from and rendered with.
const DateFormat = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar date at day granularity, normalized to UTC midnight.
// The zero Date represents an absent date.
type Date time.Time

// NewDate returns the date for the given year, month and day.
// Out of range values are normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// MustParseDate is like ParseDate but panics on invalid input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the date as a time.Time at UTC midnight.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// String returns the date formatted as YYYY-MM-DD, or an empty string for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return time.Time(d).Format(DateFormat)
}

func (d Date) Year() int {
	return time.Time(d).Year()
}

func (d Date) Month() time.Month {
	return time.Time(d).Month()
}

func (d Date) Day() int {
	return time.Time(d).Day()
}

// MonthOf returns the month the date is in.
func (d Date) MonthOf() Month {
	return NewMonth(d.Year(), d.Month())
}

// IsZero reports if the date is absent.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDate adds years, months and days like time.Time.AddDate does,
// letting days past the end of a month roll over into the next one.
func (d Date) AddDate(years, months, days int) Date {
	return Date(time.Time(d).AddDate(years, months, days))
}

// AddMonthsClamped adds months to the date. When the day of month does not
// exist in the resulting month, the last day of that month is used instead.
func (d Date) AddMonthsClamped(months int) Date {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := min(d.Day(), DaysIn(first.Year(), first.Month()))
	return NewDate(first.Year(), first.Month(), day)
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// DaysSince returns the number of days from e to d. It is negative when d is before e.
func (d Date) DaysSince(e Date) int {
	return int((time.Time(d).Unix() - time.Time(e).Unix()) / secondsPerDay)
}

// MonthsSince returns the number of calendar months from e's month to d's month.
func (d Date) MonthsSince(e Date) int {
	return (d.Year()-e.Year())*12 + int(d.Month()) - int(e.Month())
}

// MarshalJSON implements the json.Marshaler interface. The zero date is null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// It accepts YYYY-MM-DD and RFC3339 timestamps, of which only the date is kept.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	pattern := time.RFC3339
	if fullDate.MatchString(value) {
		pattern = DateFormat
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// Scan writes the value from the database. NULL is read as the zero date.
func (d *Date) Scan(value any) error {
	nullTime := &sql.NullTime{}
	if err := nullTime.Scan(value); err != nil {
		// SQLite may hand back dates as text
		if s, ok := value.(string); ok {
			t, perr := time.Parse(DateFormat, s[:min(len(s), len(DateFormat))])
			if perr != nil {
				return err
			}
			*d = DateOf(t)
			return nil
		}
		return err
	}

	if !nullTime.Valid {
		*d = Date{}
		return nil
	}

	*d = DateOf(nullTime.Time)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return time.Time(d), nil
}

// GormDataType defines the data type used by gorm the type.
func (Date) GormDataType() string {
	return "date"
}
