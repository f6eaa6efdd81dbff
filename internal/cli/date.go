package cli

import (
	"github.com/spf13/cobra"
)

// NewDateCommand creates the date command.
func NewDateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "date <date>",
		Short: "Describe a NELSC or Gregorian calendar date",
		Long: `Describe a calendar date given as either a NELSC date in YY:Mw-d form
or a Gregorian date in YYYY-MM-DD form. NELSC is tried first.

Gregorian dates must fall inside the NELSC range, 1828-04-07 through
2404-04-11.

Examples:
  nelsc date 00:B3-1
  nelsc date 1925-02-02`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDate(rootOpts, args[0], cmd)
		},
	}
}

func runDate(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	day, err := parseDateArg(arg)
	if err != nil {
		_ = formatter.Error(err.Error())
		return err
	}

	formatter.VerboseLog("parsed %q as NELSC absolute day %d", arg, day)
	return formatter.Success(buildDayReport(day))
}
