package types

import (
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the wire layout of the Date scalar (yyyy/MM/dd).
const DateLayout = "2006/01/02"

// datePattern guards time.Parse, which accepts signs and short fields that
// the wire format does not allow.
var datePattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

// CalendarDate is a day in the calendar, without time of day or time zone.
// The zero value is not a valid date; use NewCalendarDate or ParseCalendarDate.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// NewCalendarDate returns the date for the given triple. It fails if the
// triple does not name a real day, e.g. 2023/04/31. Years run from 1 to 9999.
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	if year < 1 || year > 9999 {
		return CalendarDate{}, errors.Errorf("year %d out of range", year)
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}, errors.Errorf("%04d/%02d/%02d is not a calendar date", year, int(month), day)
	}

	return CalendarDate{year: year, month: month, day: day}, nil
}

// MustCalendarDate is like NewCalendarDate but panics on an invalid triple.
func MustCalendarDate(year int, month time.Month, day int) CalendarDate {
	d, err := NewCalendarDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseCalendarDate parses s in the yyyy/MM/dd wire format.
func ParseCalendarDate(s string) (CalendarDate, error) {
	if !datePattern.MatchString(s) {
		return CalendarDate{}, errors.Errorf("%q does not match yyyy/MM/dd", s)
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CalendarDate{}, errors.Wrapf(err, "parsing %q", s)
	}

	return NewCalendarDate(t.Year(), t.Month(), t.Day())
}

// Year returns the year of d.
func (d CalendarDate) Year() int { return d.year }

// Month returns the month of d.
func (d CalendarDate) Month() time.Month { return d.month }

// Day returns the day of the month of d.
func (d CalendarDate) Day() int { return d.day }

// IsZero reports whether d is the zero value.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Before reports whether d is strictly before o.
func (d CalendarDate) Before(o CalendarDate) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

// String formats d in the wire format, e.g. 2023/07/04.
func (d CalendarDate) String() string {
	b := make([]byte, 0, len(DateLayout))
	b = appendPadded(b, d.year, 4)
	b = append(b, '/')
	b = appendPadded(b, int(d.month), 2)
	b = append(b, '/')
	b = appendPadded(b, d.day, 2)
	return string(b)
}

// MarshalJSON implements JSON Marshalling used to generate the output
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, d.String()), nil
}

func appendPadded(b []byte, v, width int) []byte {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}
