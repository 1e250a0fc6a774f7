package checkcode

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"math/rand"
	"testing"
)

func TestStrip(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(Strip("400-6381/333 931"), "4006381333931")
	w.ShouldBeEqual(Strip("0317\t8471\n"), "03178471")
	w.ShouldBeEqual(Strip(""), "")
	w.ShouldBeEqual(Strip("- / \t\n"), "")

	// stripping is idempotent
	for _, s := range []string{
		"ISBN 0-306-40615-2",
		"978-0-306-40615-7",
		"1/0614141/000415",
		"already clean",
	} {
		once := Strip(s)
		w.As(s).ShouldBeEqual(Strip(once), once)
	}
}

func TestValidateControlNumber(t *testing.T) {
	type cnTest struct {
		name             string
		input            string
		weights          []int
		modulo, subtract int
		valid            bool
	}

	pass := func(n, s string, ws []int, m, sub int) cnTest {
		return cnTest{name: n, input: s, weights: ws, modulo: m, subtract: sub, valid: true}
	}
	fail := func(n, s string, ws []int, m, sub int) cnTest {
		return cnTest{name: n, input: s, weights: ws, modulo: m, subtract: sub}
	}

	ean13w := []int{1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3}
	issnw := []int{8, 7, 6, 5, 4, 3, 2}

	for i, tt := range []cnTest{
		pass("EAN-13 weights", "4006381333931", ean13w, 10, 10),
		pass("ISSN weights", "03178471", issnw, 11, 11),
		pass("X stands for 10", "2434561X", issnw, 11, 11),
		pass("remainder 0 maps to control 0", "00", []int{1}, 10, 10),
		pass("single digit", "19", []int{1}, 10, 10),

		fail("wrong control number", "4006381333930", ean13w, 10, 10),
		fail("too short for table", "400638133393", ean13w, 10, 10),
		fail("too long for table", "40063813339311", ean13w, 10, 10),
		fail("empty", "", ean13w, 10, 10),
		fail("non-digit data position", "400638A333931", ean13w, 10, 10),
		fail("X outside control position", "X3178471", issnw, 11, 11),
		fail("letter in control position", "0317847Y", issnw, 11, 11),
		fail("X where modulo 10 forbids value 10", "0000000X", []int{3, 1, 3, 1, 3, 1, 3}, 10, 10),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			err := ValidateControlNumber(tt.input, tt.weights, tt.modulo, tt.subtract)
			if tt.valid {
				w.As(tt.input).ShouldSucceed(err)
			} else {
				w.Logf("%+v", err)
				w.As(tt.input).ShouldFail(err)
			}
			w.As(tt.input).ShouldBeEqual(
				CheckControlNumber(tt.input, tt.weights, tt.modulo, tt.subtract), tt.valid)
		})
	}
}

func TestComputeControlNumber(t *testing.T) {
	w := expect.WrapT(t)

	ean13w := []int{1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3}
	c, err := ComputeControlNumber("400638133393", ean13w, 10, 10)
	w.ShouldSucceed(err)
	w.ShouldBeEqual(c, 1)

	isbn10 := []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	c, err = ComputeControlNumber("030640615", isbn10, 11, 11)
	w.ShouldSucceed(err)
	w.ShouldBeEqual(c, 2)

	// ISSN check values may reach 10 under modulo 11
	c, err = ComputeControlNumber("2434561", []int{8, 7, 6, 5, 4, 3, 2}, 11, 11)
	w.ShouldSucceed(err)
	w.ShouldBeEqual(c, 10)

	_, err = ComputeControlNumber("12345", ean13w, 10, 10)
	w.ShouldFail(err)
	_, err = ComputeControlNumber("40063813339A", ean13w, 10, 10)
	w.ShouldFail(err)
}

func TestComputeControlNumber_range(t *testing.T) {
	// the control number is always in [0, modulo-1], regardless of input
	w := expect.WrapT(t)
	weights := []int{3, 1, 3, 1, 3, 1, 3}
	buf := make([]byte, len(weights))
	for i := 0; i < 1000; i++ {
		for j := range buf {
			buf[j] = byte('0' + rand.Intn(10))
		}
		c, err := ComputeControlNumber(string(buf), weights, 10, 10)
		w.As(string(buf)).ShouldSucceed(err)
		w.As(string(buf)).ShouldBeTrue(c >= 0 && c <= 9)
	}
}

func TestValidate(t *testing.T) {
	weights := []int{1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3}

	w := expect.WrapT(t)
	w.ShouldSucceed(Validate("4006381333931", 13, weights))
	w.ShouldSucceed(Validate("400-6381/333 931", 13, weights))
	w.ShouldSucceed(Validate("4006381\t333931\n", 13, weights))

	// wrong length is rejected regardless of content
	w.ShouldFail(Validate("400638133393", 13, weights))
	w.ShouldFail(Validate("40063813339311", 13, weights))
	w.ShouldFail(Validate("", 13, weights))

	// all characters must be digits; 'X' has no place in the GS1 family
	w.ShouldFail(Validate("400638133393X", 13, weights))
	w.ShouldFail(Validate("4OO6381333931", 13, weights))

	w.ShouldBeTrue(Valid("4006381333931", 13, weights))
	w.ShouldBeFalse(Valid("4006381333932", 13, weights))
}
