package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunisolar/nelsc/internal/cycle"
	"github.com/lunisolar/nelsc/internal/grcal"
)

// Day offsets of the full moon week within a month. The week sits in
// the middle of the month, so its position depends on the month length.
const (
	fullMoonShortBegin = 14
	fullMoonShortEnd   = 20
	fullMoonLongBegin  = 21
	fullMoonLongEnd    = 27
)

// FullMoonWeek is the Gregorian date range of one month's full moon
// week.
type FullMoonWeek struct {
	Month int32  `json:"month"`
	Begin string `json:"begin"`
	End   string `json:"end"`
}

// FullMoonReport lists the full moon weeks for a range of months.
type FullMoonReport struct {
	Weeks []FullMoonWeek `json:"weeks"`
}

func (r FullMoonReport) String() string {
	var b strings.Builder
	lastYear := ""
	for i, w := range r.Weeks {
		// Blank line whenever the begin date crosses into a new
		// Gregorian year.
		year := w.Begin[:4]
		if i > 0 && year != lastYear {
			b.WriteByte('\n')
		}
		lastYear = year

		fmt.Fprintf(&b, "%s - %s", w.Begin, w.End)
		if i < len(r.Weeks)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// NewFullMoonCommand creates the fullmoon command.
func NewFullMoonCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fullmoon <first-month> <last-month>",
		Short: "List the Gregorian dates of NELSC full moon weeks",
		Long: `List the Gregorian date ranges of the full moon weeks for every NELSC
month from the first absolute month offset through the last. The full
moon does not always actually happen in the full moon week.

Negative offsets need a -- separator so they are not read as flags.

Example:
  nelsc fullmoon 0 12`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFullMoon(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runFullMoon(opts *RootOptions, firstArg, lastArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	fail := func(err error) error {
		_ = formatter.Error(err.Error())
		return err
	}

	first, err := parseDecimalArg(firstArg)
	if err != nil {
		return fail(err)
	}
	last, err := parseDecimalArg(lastArg)
	if err != nil {
		return fail(err)
	}
	if first < cycle.MonthMin || first > cycle.MonthMax ||
		last < cycle.MonthMin || last > cycle.MonthMax {
		return fail(rangeError(cycle.MonthMin, cycle.MonthMax))
	}
	if last < first {
		return fail(NewExitError(ExitFailure, "last month must not be less than first month"))
	}

	report := FullMoonReport{Weeks: make([]FullMoonWeek, 0, last-first+1)}
	for m := int32(first); m <= int32(last); m++ {
		begin := cycle.MonthToDay(m)
		if cycle.IsLongMonth(m) {
			begin += fullMoonLongBegin
		} else {
			begin += fullMoonShortBegin
		}
		end := begin + (fullMoonShortEnd - fullMoonShortBegin)

		by, bm, bd := grcal.OffsetToDate(begin + cycle.GregorianOffset)
		ey, em, ed := grcal.OffsetToDate(end + cycle.GregorianOffset)

		report.Weeks = append(report.Weeks, FullMoonWeek{
			Month: m,
			Begin: grcal.FormatDate(by, bm, bd),
			End:   grcal.FormatDate(ey, em, ed),
		})
	}

	return formatter.Success(report)
}
