// Package cli implements the nelsc command tree.
//
// The commands are thin validation and presentation layers: every
// untrusted argument is parsed and range-checked here, then handed to
// the conversion engines, whose own range checks are panics reserved
// for caller bugs.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the nelsc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "nelsc",
		Short: "NELSC lunisolar calendar converter",
		Long: `nelsc converts between the NELSC lunisolar calendar, its absolute
day and month offsets, the Gregorian calendar, and the base-24 numerals
NELSC dates are written in.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Config file and environment supply defaults for flags the
			// user didn't set explicitly.
			if !cmd.Flags().Changed("format") {
				if v := viper.GetString("format"); v != "" {
					opts.Format = v
				}
			}
			if !cmd.Flags().Changed("verbose") && viper.IsSet("verbose") {
				opts.Verbose = viper.GetBool("verbose")
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewDayCommand(opts))
	cmd.AddCommand(NewMonthCommand(opts))
	cmd.AddCommand(NewDateCommand(opts))
	cmd.AddCommand(NewFullMoonCommand(opts))
	cmd.AddCommand(NewNewYearCommand(opts))
	cmd.AddCommand(NewTo24PairCommand(opts))
	cmd.AddCommand(NewFrom24PairCommand(opts))
	cmd.AddCommand(NewTo24DigitCommand(opts))
	cmd.AddCommand(NewFrom24DigitCommand(opts))

	return cmd
}

// initConfig wires the optional .nelsc.yaml config file and NELSC_
// environment variables into viper. Missing config files are fine; the
// flag defaults apply.
func initConfig() {
	viper.SetConfigName(".nelsc")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("NELSC")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cobra.OnInitialize(initConfig)

	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return GetExitCode(err)
	}
	return ExitSuccess
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
