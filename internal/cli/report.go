package cli

import (
	"fmt"
	"strings"

	"github.com/lunisolar/nelsc/internal/cycle"
	"github.com/lunisolar/nelsc/internal/grcal"
	"github.com/lunisolar/nelsc/internal/nelscfmt"
)

// lengthName renders a long/short flag the way the reports spell it.
func lengthName(long bool) string {
	if long {
		return "long"
	}
	return "short"
}

// DayReport describes one NELSC day in both calendars. It is the shared
// payload of the day, month and date commands.
type DayReport struct {
	DayOffset     int32  `json:"day_offset"`
	AbsoluteMonth int32  `json:"absolute_month"`
	NelscDate     string `json:"nelsc_date"`
	MonthLength   string `json:"month_length"`
	YearLength    string `json:"year_length"`
	GregorianDate string `json:"gregorian_date"`
}

// buildDayReport assembles the report for a NELSC absolute day offset.
// The offset must already be validated; out-of-range panics.
func buildDayReport(day int32) DayReport {
	absMonth, dayOfMonth := cycle.DayToMonth(day)
	year, monthOfYear := cycle.MonthToYear(absMonth)

	gy, gm, gd := grcal.OffsetToDate(day + cycle.GregorianOffset)

	return DayReport{
		DayOffset:     day,
		AbsoluteMonth: absMonth,
		NelscDate:     nelscfmt.FormatDate(year, monthOfYear, dayOfMonth),
		MonthLength:   lengthName(cycle.IsLongMonth(absMonth)),
		YearLength:    lengthName(cycle.IsLongYear(year)),
		GregorianDate: grcal.FormatDate(gy, gm, gd),
	}
}

func (r DayReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Day offset:      %d\n", r.DayOffset)
	fmt.Fprintf(&b, "Absolute month:  %d\n", r.AbsoluteMonth)
	fmt.Fprintf(&b, "NELSC date:      %s\n", r.NelscDate)
	fmt.Fprintf(&b, "Month length:    %s\n", r.MonthLength)
	fmt.Fprintf(&b, "Year length:     %s\n", r.YearLength)
	fmt.Fprintf(&b, "Gregorian date:  %s", r.GregorianDate)
	return b.String()
}
