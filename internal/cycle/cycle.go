// Package cycle implements the NELSC calendar's cyclic arithmetic: the
// conversions between absolute day offsets, absolute month offsets and
// years.
//
// NELSC months are short (28 days, four weeks) or long (35 days, five
// weeks), following a fixed 32-month pattern spanning 945 days. Years
// are short (12 months) or long (13 months), following an 11-year span
// pattern of 136 months, with one irregularity: the last year of every
// 231-year super-pattern (21 spans, 2857 months) is long regardless of
// its position in the span pattern. That irregularity is a deliberate
// calendar rule, not a rounding artifact, and is preserved exactly.
//
// The day↔month and month↔year layers are independent; composing them
// gives day↔year. A fixed constant (GregorianOffset) aligns NELSC day
// numbering with the Gregorian day numbering in the grcal package.
//
// Everything here is a pure function over read-only pattern tables.
// Inputs outside the documented ranges are caller bugs and panic; the
// command layer validates user input before calling in.
package cycle

// Valid ranges for the three NELSC quantities. The boundaries are
// mutually consistent: DayMin is the first day of MonthMin, MonthMin is
// the first month of YearMin, and likewise at the top end.
const (
	DayMin = -35364
	DayMax = 175020

	MonthMin = -1197
	MonthMax = 5926

	YearMin = -96
	YearMax = 479
)

// GregorianOffset aligns the two day numbering schemes: NELSC absolute
// day d corresponds to Gregorian day offset d + GregorianOffset.
// NELSC day 0 is Gregorian 1925-02-02.
const GregorianOffset = 264773

const (
	shortMonthDays = 28
	longMonthDays  = 35

	shortYearMonths = 12
	longYearMonths  = 13

	// One 32-month pattern spans 945 days.
	monthPatternLen  = 32
	monthPatternDays = 945

	// One 11-year span is 136 months; 21 spans plus the forced-long
	// final year make a 231-year super-pattern of 2857 months.
	yearSpanLen    = 11
	yearSpanMonths = 136

	yearPatternLen    = 231
	yearPatternMonths = 2857
)

// Epoch placement constants. dayEpoch and monthEpoch are the distances
// from the start of year zero to absolute day zero and absolute month
// zero. monthBias/yearBias place the first 231-year super-pattern 121
// years (11 whole spans, 1496 months) before year zero, which both
// keeps the month↔year decomposition non-negative over the valid range
// and puts year zero near the middle of a super-pattern. These values
// are part of the calendar's alignment contract, not arithmetic
// convenience.
const (
	dayEpoch   = 308
	monthEpoch = 10

	monthBias = 1496
	yearBias  = 121
)

// monthPattern marks each month of the 32-month pattern short or long.
// Entries sum to monthPatternDays.
const monthPattern = "SSLS" + "SSSLS" +
	"SSLS" + "SSSLS" +
	"SSLS" + "SSSLS" +
	"SSSLS"

// yearSpan marks each year of the 11-year span short or long. Entries
// sum to yearSpanMonths. The final entry reads short here but is
// overridden to long at the end of each 231-year super-pattern; only
// whole-span counting ever covers it, so the override lives in the
// decomposition, not the table.
const yearSpan = "SL" + "SL" + "SSL" + "SSL" + "S"

// patternLong decodes one pattern character. Panics on anything but
// 'S' or 'L', which would mean a corrupt table.
func patternLong(c byte) bool {
	switch c {
	case 'L':
		return true
	case 'S':
		return false
	}
	panic("cycle: bad pattern character")
}

// floordiv divides rounding toward negative infinity.
func floordiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floormod returns the remainder of floordiv; it always has the sign
// of the divisor.
func floormod(a, b int32) int32 {
	return a - floordiv(a, b)*b
}

// DayToMonth converts a NELSC absolute day offset to the absolute month
// offset containing it, plus the zero-based day within that month.
// Panics if d is outside DayMin..DayMax.
func DayToMonth(d int32) (month, dayOfMonth int32) {
	if d < DayMin || d > DayMax {
		panic("cycle: day offset out of range")
	}

	// Re-origin to the first day of year zero, count whole 32-month
	// patterns, then walk the pattern for the remainder.
	t := d + dayEpoch
	month = floordiv(t, monthPatternDays) * monthPatternLen
	rem := floormod(t, monthPatternDays)

	for i := 0; rem > 0; i++ {
		long := patternLong(monthPattern[i])
		if (long && rem < longMonthDays) || (!long && rem < shortMonthDays) {
			break
		}
		month++
		if long {
			rem -= longMonthDays
		} else {
			rem -= shortMonthDays
		}
	}

	return month - monthEpoch, rem
}

// MonthToDay converts a NELSC absolute month offset to the day offset
// of the first day of that month. Panics if m is outside
// MonthMin..MonthMax.
func MonthToDay(m int32) int32 {
	if m < MonthMin || m > MonthMax {
		panic("cycle: month offset out of range")
	}

	t := m + monthEpoch
	day := floordiv(t, monthPatternLen) * monthPatternDays
	for i := int32(0); i < floormod(t, monthPatternLen); i++ {
		if patternLong(monthPattern[i]) {
			day += longMonthDays
		} else {
			day += shortMonthDays
		}
	}

	return day - dayEpoch
}

// MonthToYear converts a NELSC absolute month offset to the year
// containing it, plus the zero-based month within that year. Panics if
// m is outside MonthMin..MonthMax.
func MonthToYear(m int32) (year, monthOfYear int32) {
	if m < MonthMin || m > MonthMax {
		panic("cycle: month offset out of range")
	}

	// Re-origin to the first month of year zero, then shift by the
	// super-pattern placement bias; the shifted value is non-negative
	// everywhere in the valid range.
	t := m + monthEpoch + monthBias
	year = floordiv(t, yearPatternMonths) * yearPatternLen
	rem := floormod(t, yearPatternMonths)

	// The very last month of a super-pattern belongs to the forced-long
	// final year, which the span pattern cannot express: resolve it
	// directly to month 12 of year 230 within the pattern.
	force13 := false
	if rem == yearPatternMonths-1 {
		year += yearPatternLen - 1
		rem = 0
		force13 = true
	}

	year += floordiv(rem, yearSpanMonths) * yearSpanLen
	rem = floormod(rem, yearSpanMonths)

	for i := 0; rem > 0; i++ {
		long := patternLong(yearSpan[i])
		if (long && rem < longYearMonths) || (!long && rem < shortYearMonths) {
			break
		}
		year++
		if long {
			rem -= longYearMonths
		} else {
			rem -= shortYearMonths
		}
	}

	if force13 {
		rem = longYearMonths - 1
	}

	return year - yearBias, rem
}

// YearToMonth converts a NELSC year to the absolute month offset of the
// first month of that year. Panics if y is outside YearMin..YearMax.
func YearToMonth(y int32) int32 {
	if y < YearMin || y > YearMax {
		panic("cycle: year out of range")
	}

	t := y + yearBias
	month := floordiv(t, yearPatternLen) * yearPatternMonths
	month += floordiv(floormod(t, yearPatternLen), yearSpanLen) * yearSpanMonths

	// At most ten remaining years; the forced-long exception never
	// applies because the eleventh span entry is only ever crossed by
	// whole-span counting above.
	for i := int32(0); i < floormod(t, yearSpanLen); i++ {
		if patternLong(yearSpan[i]) {
			month += longYearMonths
		} else {
			month += shortYearMonths
		}
	}

	return month - monthBias - monthEpoch
}

// IsLongMonth reports whether the month at absolute offset m has 35
// days. It is defined by the day distance to the next month rather than
// the raw pattern table, so it stays correct across every boundary.
// Panics if m is outside MonthMin..MonthMax.
func IsLongMonth(m int32) bool {
	if m < MonthMin || m > MonthMax {
		panic("cycle: month offset out of range")
	}

	begin := MonthToDay(m)
	next := int32(DayMax + 1)
	if m < MonthMax {
		next = MonthToDay(m + 1)
	}
	return next-begin > shortMonthDays
}

// IsLongYear reports whether year y has 13 months, by the month
// distance to the next year. Panics if y is outside YearMin..YearMax.
func IsLongYear(y int32) bool {
	if y < YearMin || y > YearMax {
		panic("cycle: year out of range")
	}

	begin := YearToMonth(y)
	next := int32(MonthMax + 1)
	if y < YearMax {
		next = YearToMonth(y + 1)
	}
	return next-begin > shortYearMonths
}
