package pubid

import (
	"github.com/ctrlnum/checkcode"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// isbnCharSet holds the characters that may appear anywhere in a printed
// ISBN-10: digits, the letters of the "ISBN" marker, the 'X' check
// character, spaces and hyphens.
var isbnCharSet = [128]uint8{
	' ': 1, '-': 1,
	'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
	'B': 1, 'I': 1, 'N': 1, 'S': 1, 'X': 1,
}

// isbn13DataWeights covers the 12 data digits of an ISBN-13.
var isbn13DataWeights = []int{1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3}

// isbn10DataWeights covers the 9 data digits of an ISBN-10 under its
// modulo-11 scheme.
var isbn10DataWeights = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}

// digitVal returns the numeric value of c, or -1 if c is not a decimal
// digit.
func digitVal(c byte) int {
	if c < '0' || c > '9' {
		return -1
	}
	return int(c - '0')
}

// trimMarker returns s with a leading format-name marker such as "ISBN"
// removed, compared case-insensitively.
func trimMarker(s, marker string) string {
	if len(s) >= len(marker) && strings.EqualFold(s[:len(marker)], marker) {
		return s[len(marker):]
	}
	return s
}

// ValidateISBN checks s as a printed ISBN-10 carrying the "ISBN" marker,
// e.g. "ISBN 0-306-40615-2".
//
// The ten positions are validated by divisibility: each of the first nine
// digits is multiplied by 10 down to 2, the check character contributes
// its own value (10 for 'X'), and the code is valid iff the total is a
// multiple of 11. This is equivalent to computing the check character and
// comparing it, since the check character is defined as exactly the value
// that makes the total divisible.
func ValidateISBN(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 || isbnCharSet[s[i]] == 0 {
			return errors.Errorf("%q may only hold digits, 'X', spaces, "+
				"hyphens and the ISBN marker, but position %d is %q",
				s, i, s[i])
		}
	}
	if !strings.HasPrefix(s, "ISBN") {
		return errors.Errorf("%q should begin with the ISBN marker", s)
	}

	cleaned := trimMarker(checkcode.Strip(s), "ISBN")
	return validateBareISBN10(cleaned)
}

// ValidISBN reports whether s is a valid printed ISBN-10; see
// ValidateISBN.
func ValidISBN(s string) bool {
	return ValidateISBN(s) == nil
}

// validateBareISBN10 checks a stripped, marker-less 10-character ISBN-10.
func validateBareISBN10(s string) error {
	if len(s) != 10 {
		return errors.Errorf("an ISBN-10 should have 10 characters, "+
			"but %q has %d", s, len(s))
	}

	sum := 0
	for i := 0; i < 9; i++ {
		d := digitVal(s[i])
		if d < 0 {
			return errors.Errorf("position %d of %q should be a digit 0-9, "+
				"but is %q", i, s, s[i])
		}
		sum += d * (10 - i)
	}

	switch d := digitVal(s[9]); {
	case s[9] == 'X':
		sum += 10
	case d >= 0:
		sum += d
	default:
		return errors.Errorf("the check position of %q should hold a "+
			"digit 0-9 or 'X', but is %q", s, s[9])
	}

	if sum%11 != 0 {
		return errors.Errorf("%q fails its modulo-11 checksum", s)
	}
	return nil
}

// ValidateISBN13 checks s as an ISBN-13, the Bookland EAN-13 form of an
// ISBN, with or without the "ISBN" marker, e.g. "978-0-306-40615-7".
func ValidateISBN13(s string) error {
	return checkcode.Validate(trimMarker(s, "ISBN"), 13, isbn13DataWeights)
}

// ValidISBN13 reports whether s is a valid ISBN-13.
func ValidISBN13(s string) bool {
	return ValidateISBN13(s) == nil
}

// ISBN10To13 converts an ISBN-10, with or without the "ISBN" marker, to
// its bare ISBN-13 form by prepending "978" and recomputing the check
// digit.
func ISBN10To13(s string) (string, error) {
	cleaned := trimMarker(checkcode.Strip(s), "ISBN")
	if err := validateBareISBN10(cleaned); err != nil {
		return "", err
	}

	base := "978" + cleaned[:9]
	check, err := checkcode.ComputeControlNumber(base, isbn13DataWeights, 10, 10)
	if err != nil {
		return "", err
	}
	return base + strconv.Itoa(check), nil
}

// ISBN13To10 converts a "978"-prefixed ISBN-13, with or without the
// "ISBN" marker, to its bare ISBN-10 form by recomputing the modulo-11
// check character, written as 'X' when its value is 10.
func ISBN13To10(s string) (string, error) {
	cleaned := trimMarker(checkcode.Strip(s), "ISBN")
	if err := ValidateISBN13(cleaned); err != nil {
		return "", err
	}
	if !strings.HasPrefix(cleaned, "978") {
		return "", errors.Errorf("only ISBN-13s with the 978 prefix have "+
			"an ISBN-10 form, but %q has %q", cleaned, cleaned[:3])
	}

	base := cleaned[3:12]
	check, err := checkcode.ComputeControlNumber(base, isbn10DataWeights, 11, 11)
	if err != nil {
		return "", err
	}
	if check == 10 {
		return base + "X", nil
	}
	return base + strconv.Itoa(check), nil
}
