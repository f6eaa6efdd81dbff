package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lunisolar/nelsc/internal/base24"
	"github.com/lunisolar/nelsc/internal/cycle"
	"github.com/lunisolar/nelsc/internal/grcal"
	"github.com/lunisolar/nelsc/internal/nelscfmt"
)

// parseDecimalArg parses a command argument as a signed decimal
// integer, allowing surrounding whitespace.
func parseDecimalArg(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, NewExitError(ExitFailure, "could not parse argument as a decimal integer")
	}
	return v, nil
}

// rangeError builds the failure for an argument outside lo..hi.
func rangeError(lo, hi int64) error {
	return NewExitError(ExitFailure, fmt.Sprintf("argument must be in range %d to %d", lo, hi))
}

// parsePairArg parses a command argument as a signed base-24 pair,
// allowing surrounding whitespace.
func parsePairArg(s string) (int32, error) {
	s = strings.TrimSpace(s)
	v, ok := base24.PairToInt(s)
	if !ok || len(s) != 2 {
		return 0, NewExitError(ExitFailure, "could not parse argument as a base-24 pair")
	}
	return v, nil
}

// parseDateArg parses a command argument as a calendar date, trying
// NELSC (YY:Mw-d) first and falling back to Gregorian (YYYY-MM-DD).
// Gregorian dates are translated through the alignment constant and
// must land inside the NELSC day range. Returns the NELSC absolute day
// offset.
func parseDateArg(s string) (int32, error) {
	fail := func() (int32, error) {
		return 0, NewExitError(ExitFailure,
			"could not parse as a valid calendar date\n"+
				"(note: Gregorian dates must be in range 1828-04-07 to 2404-04-11)")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return fail()
	}

	if d, err := nelscfmt.ParseDate(s); err == nil {
		if strings.TrimSpace(s[nelscfmt.DateLength:]) != "" {
			return fail()
		}
		return d, nil
	}

	offs, rest, err := grcal.ParseDate(s)
	if err != nil || strings.TrimSpace(rest) != "" {
		return fail()
	}
	d := offs - cycle.GregorianOffset
	if d < cycle.DayMin || d > cycle.DayMax {
		return fail()
	}
	return d, nil
}
