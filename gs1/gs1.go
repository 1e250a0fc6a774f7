package gs1

import (
	"github.com/ctrlnum/checkcode"
)

// Lengths of the GS1 data structures validated by this package, including
// their check digit.
const (
	EAN8Length  = 8
	UCC12Length = 12
	EAN13Length = 13
	EAN14Length = 14
	SSCCLength  = 18
)

// Per-format weight tables. Each covers every position except the check
// digit, alternating 3 and 1 with 3 always adjacent to the check digit.
var (
	ean8Weights  = []int{3, 1, 3, 1, 3, 1, 3}
	ucc12Weights = []int{3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3}
	ean13Weights = []int{1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3}
	ean14Weights = []int{3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3}
	ssccWeights  = []int{3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3}
)

// ValidateEAN8 checks s as an EAN-8 (GTIN-8), e.g. "9638-5074".
// Formatting characters are stripped before validation.
func ValidateEAN8(s string) error {
	return checkcode.Validate(s, EAN8Length, ean8Weights)
}

// ValidEAN8 reports whether s is a valid EAN-8.
func ValidEAN8(s string) bool {
	return ValidateEAN8(s) == nil
}

// ValidateUCC12 checks s as a UCC-12 (UPC-A / GTIN-12), e.g.
// "036000291452". Formatting characters are stripped before validation.
func ValidateUCC12(s string) error {
	return checkcode.Validate(s, UCC12Length, ucc12Weights)
}

// ValidUCC12 reports whether s is a valid UCC-12.
func ValidUCC12(s string) bool {
	return ValidateUCC12(s) == nil
}

// ValidateEAN13 checks s as an EAN-13 (GTIN-13), e.g. "4006381333931".
// Formatting characters are stripped before validation.
func ValidateEAN13(s string) error {
	return checkcode.Validate(s, EAN13Length, ean13Weights)
}

// ValidEAN13 reports whether s is a valid EAN-13.
func ValidEAN13(s string) bool {
	return ValidateEAN13(s) == nil
}

// ValidateEAN14 checks s as an EAN-14 (GTIN-14), the shipping container
// form of a GTIN, e.g. "1 0614141 000415". Formatting characters are
// stripped before validation.
func ValidateEAN14(s string) error {
	return checkcode.Validate(s, EAN14Length, ean14Weights)
}

// ValidEAN14 reports whether s is a valid EAN-14.
func ValidEAN14(s string) bool {
	return ValidateEAN14(s) == nil
}

// ValidateSSCC checks s as an 18-digit Serial Shipping Container Code,
// e.g. "1 0614141 234567890 8". Formatting characters are stripped before
// validation.
func ValidateSSCC(s string) error {
	return checkcode.Validate(s, SSCCLength, ssccWeights)
}

// ValidSSCC reports whether s is a valid SSCC.
func ValidSSCC(s string) bool {
	return ValidateSSCC(s) == nil
}

// ValidGTIN reports whether s, after stripping formatting characters, is a
// valid GTIN of any of the four GS1 lengths (GTIN-8, -12, -13 or -14).
func ValidGTIN(s string) bool {
	switch len(checkcode.Strip(s)) {
	case EAN8Length:
		return ValidEAN8(s)
	case UCC12Length:
		return ValidUCC12(s)
	case EAN13Length:
		return ValidEAN13(s)
	case EAN14Length:
		return ValidEAN14(s)
	}
	return false
}

// CheckDigit returns the GS1 check digit for the data-digit string s,
// which must not include a check digit position. It accepts any data
// length, so it serves all the fixed-length formats above as well as
// padded GTIN forms; the weights alternate 3 and 1 anchored so the digit
// nearest the check position is multiplied by 3.
func CheckDigit(s string) (int, error) {
	s = checkcode.Strip(s)
	weights := make([]int, len(s))
	for i := range weights {
		if (len(s)-1-i)%2 == 0 {
			weights[i] = 3
		} else {
			weights[i] = 1
		}
	}
	return checkcode.ComputeControlNumber(s, weights, 10, 10)
}
