package pubid

import (
	"github.com/ctrlnum/checkcode"
	"github.com/pkg/errors"
	"strings"
)

// issnWeights covers the 7 data digits of an ISSN; the check character is
// computed under modulo 11, so its value may be 10, written 'X'.
var issnWeights = []int{8, 7, 6, 5, 4, 3, 2}

// ValidateISSN checks s as an ISSN, with or without the "ISSN" marker,
// e.g. "0317-8471" or "ISSN 2434-561X". Matching is case-insensitive, so
// a lower-case marker or check character is accepted.
func ValidateISSN(s string) error {
	cleaned := strings.ToUpper(s)
	cleaned = strings.TrimPrefix(cleaned, "ISSN")
	cleaned = checkcode.Strip(cleaned)

	if len(cleaned) != 8 {
		return errors.Errorf("an ISSN should have 8 characters, but %q "+
			"has %d", cleaned, len(cleaned))
	}
	// 'X' is only legal in the check position; substituting '0' lets a
	// single digit test cover the rest.
	if !allDigits(strings.Replace(cleaned, "X", "0", -1)) {
		return errors.Errorf("%q should contain only digits 0-9, with 'X' "+
			"allowed as the check character", cleaned)
	}

	return checkcode.ValidateControlNumber(cleaned, issnWeights, 11, 11)
}

// ValidISSN reports whether s is a valid ISSN; see ValidateISSN.
func ValidISSN(s string) bool {
	return ValidateISSN(s) == nil
}

// allDigits reports whether s is non-empty and holds only digits 0-9.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if digitVal(s[i]) < 0 {
			return false
		}
	}
	return true
}
