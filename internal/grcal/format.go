package grcal

import "fmt"

// dateSeparator divides the fields of a formatted date.
const dateSeparator = '-'

const (
	yearFieldLen        = 4
	dayMonthFieldMaxLen = 2
)

// FormatDate renders a date as YYYY-MM-DD with zero-padded fields.
// Panics if the triple is not a valid in-range date; format untrusted
// input through DateToOffset first.
func FormatDate(year, month, day int32) string {
	if _, err := DateToOffset(year, month, day); err != nil {
		panic("grcal: formatting invalid date: " + err.Error())
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// parseYear reads exactly four decimal digits at the start of s.
// Returns -1 if s is too short or any of the four bytes is not a digit.
// Extra digits after the fourth are the caller's problem.
func parseYear(s string) int32 {
	if len(s) < yearFieldLen {
		return -1
	}
	var y int32
	for i := 0; i < yearFieldLen; i++ {
		if s[i] < '0' || s[i] > '9' {
			return -1
		}
		y = y*10 + int32(s[i]-'0')
	}
	return y
}

// parseDayMonth reads a one- or two-digit decimal field at the start of
// s. Returns the value and the number of bytes consumed, or -1 and zero
// on failure (no digits, or more than two).
func parseDayMonth(s string) (int32, int) {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
		if n > dayMonthFieldMaxLen {
			return -1, 0
		}
	}
	if n < 1 {
		return -1, 0
	}
	var v int32
	for i := 0; i < n; i++ {
		v = v*10 + int32(s[i]-'0')
	}
	return v, n
}

// ParseDate reads a YYYY-MM-DD date from the start of s and converts it
// to a day offset. The year field must be exactly four digits; month
// and day may be one or two. On success it also returns whatever
// followed the date, so callers can reject trailing garbage or keep
// scanning. Failure, including a well-formed but invalid date, returns
// a *DateError.
func ParseDate(s string) (offs int32, rest string, err error) {
	badForm := func() (int32, string, error) {
		return 0, "", &DateError{Reason: "malformed date string"}
	}

	year := parseYear(s)
	if year == -1 {
		return badForm()
	}
	s = s[yearFieldLen:]

	if len(s) == 0 || s[0] != dateSeparator {
		return badForm()
	}
	s = s[1:]

	month, n := parseDayMonth(s)
	if month == -1 {
		return badForm()
	}
	s = s[n:]

	if len(s) == 0 || s[0] != dateSeparator {
		return badForm()
	}
	s = s[1:]

	day, n := parseDayMonth(s)
	if day == -1 {
		return badForm()
	}
	s = s[n:]

	offs, err = DateToOffset(year, month, day)
	if err != nil {
		return 0, "", err
	}
	return offs, s, nil
}
