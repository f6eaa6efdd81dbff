package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunisolar/nelsc/internal/base24"
)

// PairConversion is the payload of the to24pair and from24pair
// commands.
type PairConversion struct {
	Decimal int32  `json:"decimal"`
	Pair    string `json:"pair"`
}

func (c PairConversion) String() string {
	return fmt.Sprintf("Decimal value:  %d\nBase-24 pair:   %s", c.Decimal, c.Pair)
}

// DigitConversion is the payload of the to24digit and from24digit
// commands.
type DigitConversion struct {
	Decimal int32  `json:"decimal"`
	Digit   string `json:"digit"`
}

func (c DigitConversion) String() string {
	return fmt.Sprintf("Decimal value:  %d\nBase-24 digit:  %s", c.Decimal, c.Digit)
}

// NewTo24PairCommand creates the to24pair command.
func NewTo24PairCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "to24pair <integer>",
		Short: "Convert a decimal integer to a signed base-24 pair",
		Long: `Convert a signed decimal integer in range -96 to 479 into a two-digit
base-24 pair in signed style.

Negative integers need a -- separator so they are not read as flags.

Examples:
  nelsc to24pair 479
  nelsc to24pair -- -96`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTo24Pair(rootOpts, args[0], cmd)
		},
	}
}

func runTo24Pair(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	v, err := parseDecimalArg(arg)
	if err != nil {
		_ = formatter.Error(err.Error())
		return err
	}
	if v < base24.PairMin || v > base24.PairMax {
		err := rangeError(base24.PairMin, base24.PairMax)
		_ = formatter.Error(err.Error())
		return err
	}

	return formatter.Success(PairConversion{
		Decimal: int32(v),
		Pair:    base24.FormatPair(int32(v)),
	})
}

// NewFrom24PairCommand creates the from24pair command.
func NewFrom24PairCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "from24pair <pair>",
		Short: "Convert a signed base-24 pair to a decimal integer",
		Long: `Convert a two-digit base-24 pair in signed style into a signed decimal
integer.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrom24Pair(rootOpts, args[0], cmd)
		},
	}
}

func runFrom24Pair(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	v, err := parsePairArg(arg)
	if err != nil {
		_ = formatter.Error(err.Error())
		return err
	}

	return formatter.Success(PairConversion{
		Decimal: v,
		Pair:    base24.FormatPair(v),
	})
}

// NewTo24DigitCommand creates the to24digit command.
func NewTo24DigitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "to24digit <integer>",
		Short: "Convert a decimal integer to a base-24 digit",
		Long:  `Convert a decimal integer in range 0 to 23 into a base-24 digit.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTo24Digit(rootOpts, args[0], cmd)
		},
	}
}

func runTo24Digit(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	v, err := parseDecimalArg(arg)
	if err != nil {
		_ = formatter.Error(err.Error())
		return err
	}
	if v < 0 || v > base24.DigitMax {
		err := rangeError(0, base24.DigitMax)
		_ = formatter.Error(err.Error())
		return err
	}

	return formatter.Success(DigitConversion{
		Decimal: int32(v),
		Digit:   string(base24.IntToDigit(int32(v))),
	})
}

// NewFrom24DigitCommand creates the from24digit command.
func NewFrom24DigitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "from24digit <digit>",
		Short: "Convert a base-24 digit to a decimal integer",
		Long:  `Convert a single base-24 digit into a decimal integer.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrom24Digit(rootOpts, args[0], cmd)
		},
	}
}

func runFrom24Digit(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s := strings.TrimSpace(arg)
	if len(s) != 1 {
		err := NewExitError(ExitFailure, "provide exactly one base-24 digit")
		_ = formatter.Error(err.Error())
		return err
	}

	v := base24.DigitToInt(s[0])
	if v == -1 {
		err := NewExitError(ExitFailure, "could not parse as a base-24 digit")
		_ = formatter.Error(err.Error())
		return err
	}

	return formatter.Success(DigitConversion{
		Decimal: v,
		Digit:   strings.ToUpper(s),
	})
}
