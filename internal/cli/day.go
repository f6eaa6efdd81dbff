package cli

import (
	"github.com/spf13/cobra"

	"github.com/lunisolar/nelsc/internal/cycle"
)

// NewDayCommand creates the day command.
func NewDayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "day <offset>",
		Short: "Describe a NELSC absolute day offset",
		Long: `Describe the day at the given NELSC absolute day offset: its NELSC
date, month and year lengths, and the corresponding Gregorian date.

Negative offsets need a -- separator so they are not read as flags.

Examples:
  nelsc day 0
  nelsc day -- -35364`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay(rootOpts, args[0], cmd)
		},
	}
}

func runDay(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	day, err := parseDecimalArg(arg)
	if err != nil {
		_ = formatter.Error(err.Error())
		return err
	}
	if day < cycle.DayMin || day > cycle.DayMax {
		err := rangeError(cycle.DayMin, cycle.DayMax)
		_ = formatter.Error(err.Error())
		return err
	}

	return formatter.Success(buildDayReport(int32(day)))
}
