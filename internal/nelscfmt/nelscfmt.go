// Package nelscfmt formats and parses NELSC date strings.
//
// A NELSC date is seven characters, YY:Mw-d:
//
//	YY  the year as a signed base-24 pair
//	M   the one-based month of the year as a base-24 digit (1..13)
//	w   the one-based week of the month (1..4, or 1..5 in a long month)
//	d   the one-based day of the week (1..7)
//
// For example 00:B3-1 is day 14 of month 10 of year zero. The week and
// day fields are parsed as base-24 digits too; within their valid
// ranges the two notations coincide.
package nelscfmt

import (
	"fmt"

	"github.com/lunisolar/nelsc/internal/base24"
	"github.com/lunisolar/nelsc/internal/cycle"
)

// DateLength is the exact length of a formatted NELSC date.
const DateLength = 7

const daysPerWeek = 7

const (
	shortMonthWeeks = 4
	longMonthWeeks  = 5

	shortYearMonths = 12
	longYearMonths  = 13

	shortMonthDays = 28
	longMonthDays  = 35
)

// Field and separator positions within a formatted date.
const (
	fieldYear  = 0
	sepYearPos = 2
	fieldMonth = 3
	fieldWeek  = 4
	sepWeekPos = 5
	fieldDay   = 6

	sepYear = ':'
	sepWeek = '-'
)

// FormatDate renders a NELSC date from its year, zero-based month of
// year and zero-based day of month. Panics if any field is out of range
// for that particular year and month; untrusted input goes through
// ParseDate instead.
func FormatDate(year, monthOfYear, dayOfMonth int32) string {
	if year < cycle.YearMin || year > cycle.YearMax || monthOfYear < 0 || dayOfMonth < 0 {
		panic("nelscfmt: date field out of range")
	}

	maxMonths := int32(shortYearMonths)
	if cycle.IsLongYear(year) {
		maxMonths = longYearMonths
	}
	if monthOfYear >= maxMonths {
		panic("nelscfmt: month of year out of range")
	}

	absMonth := cycle.YearToMonth(year) + monthOfYear

	maxDays := int32(shortMonthDays)
	if cycle.IsLongMonth(absMonth) {
		maxDays = longMonthDays
	}
	if dayOfMonth >= maxDays {
		panic("nelscfmt: day of month out of range")
	}

	buf := base24.AppendPair(make([]byte, 0, DateLength), year)
	buf = append(buf, sepYear, base24.IntToDigit(monthOfYear+1))
	buf = append(buf, base24.IntToDigit(dayOfMonth/daysPerWeek+1), sepWeek)
	buf = append(buf, base24.IntToDigit(dayOfMonth%daysPerWeek+1))
	return string(buf)
}

// A ParseError reports why a string is not a valid NELSC date.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid NELSC date %q: %s", e.Input, e.Reason)
}

// ParseDate reads a NELSC date from the first DateLength bytes of s and
// returns its absolute day offset. Anything after those bytes is
// ignored; callers wanting strict input check the length themselves.
// Every field is validated against the actual year and month lengths,
// so the result is always a valid in-range day.
func ParseDate(s string) (int32, error) {
	fail := func(reason string) (int32, error) {
		return 0, &ParseError{Input: s, Reason: reason}
	}

	if len(s) < DateLength {
		return fail("too short")
	}
	if s[sepYearPos] != sepYear || s[sepWeekPos] != sepWeek {
		return fail("bad separators")
	}

	year, ok := base24.PairToInt(s[fieldYear:])
	if !ok {
		return fail("bad year pair")
	}

	month := base24.DigitToInt(s[fieldMonth])
	week := base24.DigitToInt(s[fieldWeek])
	day := base24.DigitToInt(s[fieldDay])
	if month == -1 || week == -1 || day == -1 {
		return fail("bad base-24 digit")
	}

	// Every valid base-24 pair is a valid year, so the year needs no
	// further range check.
	maxMonths := int32(shortYearMonths)
	if cycle.IsLongYear(year) {
		maxMonths = longYearMonths
	}
	if month < 1 || month > maxMonths {
		return fail("month out of range for year")
	}
	absMonth := cycle.YearToMonth(year) + month - 1

	maxWeeks := int32(shortMonthWeeks)
	if cycle.IsLongMonth(absMonth) {
		maxWeeks = longMonthWeeks
	}
	if week < 1 || week > maxWeeks {
		return fail("week out of range for month")
	}
	if day < 1 || day > daysPerWeek {
		return fail("day of week out of range")
	}

	return cycle.MonthToDay(absMonth) + (week-1)*daysPerWeek + (day - 1), nil
}
