// Package grcal converts between proleptic Gregorian calendar dates and
// absolute day offsets.
//
// Day offset zero is proleptic 1200-03-01. The supported offset range
// is DayMin..DayMax, which covers 1582-10-15 (the first day the
// Gregorian calendar was in use anywhere) through 9999-12-31 (the last
// date a four-digit year field can express).
//
// Internally the engine works in March-based years: the year boundary
// is shifted so the variable-length month (February) is always the last
// month of the cycle. That puts every leap day at the very end of a
// year, which in turn puts the 4-year and 400-year cycle leap days at
// the very end of their cycles, where the decomposition handles them as
// two explicit special cases.
//
// All functions are pure and safe for concurrent use. Inputs outside a
// documented contract range panic; invalid dates from untrusted input
// are reported through DateToOffset's error return.
package grcal

import "fmt"

const (
	// DayMin is the least valid day offset (1582-10-15).
	DayMin = 139750

	// DayMax is the greatest valid day offset (9999-12-31).
	DayMax = 3214073
)

const (
	monthCount = 12

	// monthShift is how many months March-based years lag standard
	// Gregorian years.
	monthShift = 2

	longMonthDays  = 31
	shortMonthDays = 30
	leapFebDays    = 29
	nonLeapFebDays = 28

	// Days in the aligned periods of the decomposition hierarchy.
	quadCenturyDays = 146097
	centuryDays     = 36524
	quadYearDays    = 1461
	yearDays        = 365
	leapYearDays    = 366

	centuriesPerQuadCentury = 4
	quadYearsPerCentury     = 25
	yearsPerQuadYear        = 4

	quadCenturyYears = 400
	centuryYears     = 100
	quadYearYears    = 4

	// baseYear is the (March-based) year containing day offset zero.
	baseYear = 1200

	// maxYear is the last year a YYYY field can hold.
	maxYear = 9999
)

// monthPattern gives the March-based month lengths. '+' is a 31-day
// month, '-' a 30-day month, and '*' the variable-length month, which
// the March-based indexing forces into the final slot.
const monthPattern = "+-+-++-+-++*"

// monthLength returns the day count of the March-based month at index
// i, or zero for the variable-length month. Panics if i is outside
// 0..11.
func monthLength(i int32) int32 {
	if i < 0 || i >= monthCount {
		panic("grcal: month index out of range")
	}
	switch monthPattern[i] {
	case '+':
		return longMonthDays
	case '-':
		return shortMonthDays
	default:
		return 0
	}
}

// IsLeapYear reports whether the given (January-based) year is a leap
// year under Gregorian rules. Panics if y is less than one.
func IsLeapYear(y int32) bool {
	if y < 1 {
		panic("grcal: year out of range")
	}
	if y%400 == 0 {
		return true
	}
	return y%4 == 0 && y%100 != 0
}

// OffsetToDate converts a day offset to a (year, month, day) date.
// Month is 1..12 and day is 1-based. Panics if offs is outside
// DayMin..DayMax; callers holding untrusted input must range-check it
// first.
func OffsetToDate(offs int32) (year, month, day int32) {
	if offs < DayMin || offs > DayMax {
		panic("grcal: day offset out of range")
	}

	// Peel off aligned periods, largest first.
	qc := offs / quadCenturyDays
	offs %= quadCenturyDays

	c := offs / centuryDays
	offs %= centuryDays

	q := offs / quadYearDays
	offs %= quadYearDays

	y := offs / yearDays
	d := offs % yearDays

	// A century count of four can only mean the leap day at the very
	// end of a 400-year cycle; fold it into the last day of the last
	// year of that cycle.
	if c == centuriesPerQuadCentury {
		c = centuriesPerQuadCentury - 1
		q = quadYearsPerCentury - 1
		y = yearsPerQuadYear - 1
		d = leapYearDays - 1
	}

	// Likewise a year count of four is the leap day ending a 4-year
	// cycle.
	if y == yearsPerQuadYear {
		y = yearsPerQuadYear - 1
		d = leapYearDays - 1
	}

	year = qc*quadCenturyYears + c*centuryYears + q*quadYearYears + y + baseYear

	// Walk the month pattern until the remaining days fall inside the
	// current month. The variable-length month is last, so reaching it
	// ends the walk unconditionally.
	month = 0
	for d > 0 {
		ml := monthLength(month)
		if ml == 0 || d < ml {
			break
		}
		month++
		d -= ml
	}
	day = d + 1

	// Back from March-based to standard month numbering.
	month += monthShift
	if month >= monthCount {
		month -= monthCount
		year++
	}
	month++

	return year, month, day
}

// A DateError reports why a year/month/day triple is not a valid date
// inside the engine's range.
type DateError struct {
	Year   int32
	Month  int32
	Day    int32
	Reason string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %04d-%02d-%02d: %s", e.Year, e.Month, e.Day, e.Reason)
}

// DateToOffset converts a (year, month, day) date to its day offset.
// Unlike OffsetToDate it accepts arbitrary integers and returns a
// *DateError for anything that is not a valid date within
// DayMin..DayMax, making it the validation path for untrusted input.
func DateToOffset(year, month, day int32) (int32, error) {
	fail := func(reason string) (int32, error) {
		return 0, &DateError{Year: year, Month: month, Day: day, Reason: reason}
	}

	if year <= baseYear || year > maxYear {
		return fail("year out of range")
	}
	if month < 1 || month > monthCount {
		return fail("month out of range")
	}
	if day < 1 {
		return fail("day out of range")
	}

	d := day - 1

	// Convert to March-based coordinates.
	m := month - 1 - monthShift
	y := year
	if m < 0 {
		y--
		m += monthCount
	}

	ml := monthLength(m)
	if ml == 0 {
		// The variable month is the last of the March-based year, which
		// spans into the next January-based year; that next year is the
		// one whose leap status matters.
		if IsLeapYear(y + 1) {
			ml = leapFebDays
		} else {
			ml = nonLeapFebDays
		}
	}
	if d >= ml {
		return fail("day exceeds month length")
	}

	y -= baseYear

	qc := y / quadCenturyYears
	y %= quadCenturyYears

	c := y / centuryYears
	y %= centuryYears

	q := y / quadYearYears
	y %= quadYearYears

	offs := qc*quadCenturyDays + c*centuryDays + q*quadYearDays + y*yearDays

	// Whole months before the target month. The variable month never
	// figures in because it is the last slot and we only pass months
	// preceding m.
	for i := int32(0); i < m; i++ {
		offs += monthLength(i)
	}
	offs += d

	if offs < DayMin || offs > DayMax {
		return fail("date outside supported range")
	}
	return offs, nil
}
