// Package base24 implements the base-24 numeral system used by NELSC
// dates.
//
// The 24 digits are the decimal digits followed by fourteen letters
// chosen to avoid lookalikes: 0123456789ABCDEFGMPRTVXY. Digit parsing
// is case-insensitive; digit printing always uses uppercase.
//
// Small signed integers are written as a pair of digits. The pair
// covers the unsigned space 0..575; values above PairMax wrap around to
// negative by subtracting 576, giving the signed range PairMin..PairMax
// (-96..479). The NELSC year range is deliberately identical to this
// range, so every valid pair is a valid year and vice versa.
package base24

import "strings"

// Digits is the base-24 digit alphabet, in value order.
const Digits = "0123456789ABCDEFGMPRTVXY"

const (
	// DigitMax is the greatest value of a single base-24 digit.
	DigitMax = 23

	// PairMin is the least value representable by a signed pair.
	PairMin = -96

	// PairMax is the greatest value representable by a signed pair.
	PairMax = 479

	// pairSpace is the size of the unsigned pair space. Unsigned pair
	// values above PairMax map to negatives by subtracting this.
	pairSpace = 576
)

// DigitToInt converts a base-24 digit character to its value 0..23.
// Lowercase letters are accepted. Returns -1 if c is not a base-24
// digit.
func DigitToInt(c byte) int32 {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	i := strings.IndexByte(Digits, c)
	if i < 0 {
		return -1
	}
	return int32(i)
}

// IntToDigit converts a value 0..23 to its uppercase base-24 digit.
// Panics if v is out of range.
func IntToDigit(v int32) byte {
	if v < 0 || v > DigitMax {
		panic("base24: digit value out of range")
	}
	return Digits[v]
}

// PairToInt parses the first two bytes of s as a signed base-24 pair.
// Anything after the two digits is ignored. The second return value is
// false if s is shorter than two bytes or either byte is not a base-24
// digit.
func PairToInt(s string) (int32, bool) {
	if len(s) < 2 {
		return 0, false
	}
	most := DigitToInt(s[0])
	least := DigitToInt(s[1])
	if most == -1 || least == -1 {
		return 0, false
	}
	v := most*24 + least
	if v > PairMax {
		v -= pairSpace
	}
	return v, true
}

// FormatPair renders v as a two-digit signed base-24 pair.
// Panics if v is outside PairMin..PairMax.
func FormatPair(v int32) string {
	return string(AppendPair(nil, v))
}

// AppendPair appends the two-digit signed base-24 form of v to dst and
// returns the extended slice. Panics if v is outside PairMin..PairMax.
func AppendPair(dst []byte, v int32) []byte {
	if v < PairMin || v > PairMax {
		panic("base24: pair value out of range")
	}
	if v < 0 {
		v += pairSpace
	}
	return append(dst, IntToDigit(v/24), IntToDigit(v%24))
}
