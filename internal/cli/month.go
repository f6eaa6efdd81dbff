package cli

import (
	"github.com/spf13/cobra"

	"github.com/lunisolar/nelsc/internal/cycle"
)

// NewMonthCommand creates the month command.
func NewMonthCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "month <offset>",
		Short: "Describe the first day of a NELSC absolute month offset",
		Long: `Describe the first day of the month at the given NELSC absolute month
offset, in the same form as the day command.

Negative offsets need a -- separator so they are not read as flags.

Examples:
  nelsc month 0
  nelsc month -- -1197`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonth(rootOpts, args[0], cmd)
		},
	}
}

func runMonth(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	month, err := parseDecimalArg(arg)
	if err != nil {
		_ = formatter.Error(err.Error())
		return err
	}
	if month < cycle.MonthMin || month > cycle.MonthMax {
		err := rangeError(cycle.MonthMin, cycle.MonthMax)
		_ = formatter.Error(err.Error())
		return err
	}

	return formatter.Success(buildDayReport(cycle.MonthToDay(int32(month))))
}
