package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunisolar/nelsc/internal/base24"
	"github.com/lunisolar/nelsc/internal/cycle"
	"github.com/lunisolar/nelsc/internal/grcal"
)

// The March equinox always falls in this Gregorian month, usually on or
// within a day of this day of month. The chart uses it as a fixed
// anchor to show how far each NELSC year drifts.
const (
	equinoxMonth = 3
	equinoxDay   = 20
)

// NewYearRow is one year of the new year chart.
type NewYearRow struct {
	Year          string `json:"year"` // base-24 pair
	FirstDay      string `json:"first_day"`
	EquinoxOffset int32  `json:"equinox_offset"`
}

// NewYearReport charts the Gregorian date of every NELSC year's first
// day, with summary statistics over the whole range.
type NewYearReport struct {
	Rows []NewYearRow `json:"rows"`

	EarliestMonth int32 `json:"earliest_month"`
	EarliestDay   int32 `json:"earliest_day"`
	LatestMonth   int32 `json:"latest_month"`
	LatestDay     int32 `json:"latest_day"`

	MinDrift int32 `json:"min_drift"`
	MaxDrift int32 `json:"max_drift"`
}

func (r NewYearReport) String() string {
	var b strings.Builder
	for i, row := range r.Rows {
		if i > 0 && i%4 == 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %s  equinox month offset %2d\n", row.Year, row.FirstDay, row.EquinoxOffset)
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Range of first day of year:  %02d-%02d - %02d-%02d\n",
		r.EarliestMonth, r.EarliestDay, r.LatestMonth, r.LatestDay)
	fmt.Fprintf(&b, "Range of equinox offsets:    [%d, %d]",
		r.MinDrift, r.MaxDrift)
	return b.String()
}

// NewNewYearCommand creates the newyear command.
func NewNewYearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "newyear",
		Short: "Chart the Gregorian date of every NELSC new year",
		Long: `Chart all NELSC years with the Gregorian date of the first day of each
year, the offset of the month containing March 20 (an approximation of
the equinox) from the first month, and the earliest/latest first days
over the whole calendar.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNewYear(rootOpts, cmd)
		},
	}
}

func runNewYear(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	report := NewYearReport{Rows: make([]NewYearRow, 0, cycle.YearMax-cycle.YearMin+1)}
	for y := int32(cycle.YearMin); y <= cycle.YearMax; y++ {
		absMonth := cycle.YearToMonth(y)
		day := cycle.MonthToDay(absMonth)

		gy, gm, gd := grcal.OffsetToDate(day + cycle.GregorianOffset)

		// The equinox anchor of the Gregorian year the NELSC year
		// starts in.
		grEquinox, err := grcal.DateToOffset(gy, equinoxMonth, equinoxDay)
		if err != nil {
			return WrapExitError(ExitCommandError, "equinox date out of range", err)
		}

		// In the first year the equinox precedes the calendar's reach;
		// pin it to the month before the year starts.
		absEquinox := absMonth - 1
		if y > cycle.YearMin {
			absEquinox, _ = cycle.DayToMonth(grEquinox - cycle.GregorianOffset)
		}
		drift := absEquinox - absMonth

		if len(report.Rows) == 0 {
			report.MinDrift, report.MaxDrift = drift, drift
			report.EarliestMonth, report.EarliestDay = gm, gd
			report.LatestMonth, report.LatestDay = gm, gd
		} else {
			if drift < report.MinDrift {
				report.MinDrift = drift
			}
			if drift > report.MaxDrift {
				report.MaxDrift = drift
			}
			if gm < report.EarliestMonth || (gm == report.EarliestMonth && gd < report.EarliestDay) {
				report.EarliestMonth, report.EarliestDay = gm, gd
			}
			if gm > report.LatestMonth || (gm == report.LatestMonth && gd > report.LatestDay) {
				report.LatestMonth, report.LatestDay = gm, gd
			}
		}

		report.Rows = append(report.Rows, NewYearRow{
			Year:          base24.FormatPair(y),
			FirstDay:      grcal.FormatDate(gy, gm, gd),
			EquinoxOffset: drift,
		})
	}

	return formatter.Success(report)
}
