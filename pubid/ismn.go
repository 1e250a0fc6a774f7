package pubid

import (
	"github.com/ctrlnum/checkcode"
	"github.com/pkg/errors"
)

// ismnWeights covers the 9 data positions of a 10-character ISMN after
// its leading 'M' is mapped to the digit 3.
var ismnWeights = []int{3, 1, 3, 1, 3, 1, 3, 1, 3}

// ValidateISMN checks s as a 10-character ISMN, with or without the
// "ISMN" marker, e.g. "M-2306-7118-7" or "ISMN M-2306-7118-7".
//
// The ISMN's leading 'M' stands for the digit 3 under its EAN mapping
// (the 13-digit form prefixes 9790, and M marks the 0), so it is replaced
// before the alternating 3/1 weights are applied.
func ValidateISMN(s string) error {
	cleaned := checkcode.Strip(trimMarker(s, "ISMN"))
	if len(cleaned) > 0 && cleaned[0] == 'M' {
		cleaned = "3" + cleaned[1:]
	}

	if len(cleaned) != 10 {
		return errors.Errorf("an ISMN should have 10 characters, but %q "+
			"has %d", cleaned, len(cleaned))
	}
	if !allDigits(cleaned) {
		return errors.Errorf("%q should contain only digits 0-9 after the "+
			"leading M", cleaned)
	}

	return checkcode.ValidateControlNumber(cleaned, ismnWeights, 10, 10)
}

// ValidISMN reports whether s is a valid ISMN; see ValidateISMN.
func ValidISMN(s string) bool {
	return ValidateISMN(s) == nil
}
