// Package checkcode verifies the control numbers (check digits) carried by
// the identifier codes used in publishing and commerce.
//
// Nearly every such code -- the GS1 trade item numbers (EAN-8, EAN-13,
// EAN-14, UCC-12, SSCC) as well as the ISSN and ISMN -- shares the same
// construction: each data digit is multiplied by a fixed positional weight,
// the products are summed, and the final position must hold the value that
// brings the sum to a multiple of the scheme's modulus. This package holds
// that shared machinery; the gs1 and pubid subpackages supply the
// per-format lengths and weight tables.
//
// Every function here is a pure function of its input string and constant
// parameters, so all of them are safe for unsynchronized concurrent use.
package checkcode

import (
	"github.com/pkg/errors"
	"strings"
)

// formatStripper removes the characters that may appear as visual
// separators in printed identifier codes.
var formatStripper = strings.NewReplacer(
	"-", "",
	"/", "",
	" ", "",
	"\t", "",
	"\n", "",
)

// Strip returns s with the formatting characters '-', '/', space, tab and
// newline removed. Stripping an already-stripped string returns it
// unchanged.
func Strip(s string) string {
	return formatStripper.Replace(s)
}

// digitVal returns the numeric value of c, or -1 if c is not a decimal
// digit.
func digitVal(c byte) int {
	if c < '0' || c > '9' {
		return -1
	}
	return int(c - '0')
}

// ValidateControlNumber checks that the final character of s holds the
// control number implied by its leading digits.
//
// The weight table covers every position of s except the last: weights[i]
// multiplies s[i], so s must have exactly len(weights)+1 characters. The
// expected control number is (subtract - sum%modulo) % modulo, which maps
// the sum%modulo == 0 boundary to 0. The final character is normally a
// digit, but the letter 'X' is accepted there as the value 10, as the ISSN
// uses under modulo 11.
func ValidateControlNumber(s string, weights []int, modulo, subtract int) error {
	if len(s) != len(weights)+1 {
		return errors.Errorf("the weight table covers %d positions plus a "+
			"control position, but %q has %d characters",
			len(weights), s, len(s))
	}

	sum := 0
	for i, w := range weights {
		d := digitVal(s[i])
		if d < 0 {
			return errors.Errorf("position %d of %q should be a digit 0-9, "+
				"but is %q", i, s, s[i])
		}
		sum += d * w
	}

	control := (subtract - sum%modulo) % modulo

	last := s[len(s)-1]
	given := digitVal(last)
	if last == 'X' {
		given = 10
	}
	if given < 0 {
		return errors.Errorf("the control position of %q should hold a "+
			"digit 0-9 or 'X', but is %q", s, last)
	}
	if given != control {
		return errors.Errorf("the control number of %q should be %d, "+
			"but is %d", s, control, given)
	}
	return nil
}

// CheckControlNumber reports whether the final character of s holds the
// control number implied by its leading digits; see ValidateControlNumber.
func CheckControlNumber(s string, weights []int, modulo, subtract int) bool {
	return ValidateControlNumber(s, weights, modulo, subtract) == nil
}

// ComputeControlNumber returns the control number for the data-digit
// string s, which covers the weighted positions only (no control
// position): weights[i] multiplies s[i], so s must have exactly
// len(weights) characters, all digits.
//
// The result is in [0, modulo-1]; under modulo 11 the value 10 is
// conventionally written as the letter 'X'.
func ComputeControlNumber(s string, weights []int, modulo, subtract int) (int, error) {
	if len(s) != len(weights) {
		return 0, errors.Errorf("the weight table covers %d positions, "+
			"but %q has %d characters", len(weights), s, len(s))
	}

	sum := 0
	for i, w := range weights {
		d := digitVal(s[i])
		if d < 0 {
			return 0, errors.Errorf("position %d of %q should be a digit "+
				"0-9, but is %q", i, s, s[i])
		}
		sum += d * w
	}
	return (subtract - sum%modulo) % modulo, nil
}

// Validate strips formatting from s and checks that the result is a string
// of exactly length digits whose final digit is the modulo-10 control
// number under the given weight table. This is the gate shared by the
// whole EAN/UCC family; the gs1 package wraps it with the per-format
// parameters.
func Validate(s string, length int, weights []int) error {
	s = Strip(s)
	if len(s) != length {
		return errors.Errorf("%q should have %d characters after "+
			"stripping, but has %d", s, length, len(s))
	}
	for i := 0; i < len(s); i++ {
		if digitVal(s[i]) < 0 {
			return errors.Errorf("%q should contain only digits 0-9, "+
				"but position %d is %q", s, i, s[i])
		}
	}
	return ValidateControlNumber(s, weights, 10, 10)
}

// Valid reports whether Validate accepts s with the given length and
// weight table.
func Valid(s string, length int, weights []int) bool {
	return Validate(s, length, weights) == nil
}
