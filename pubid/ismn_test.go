package pubid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ismnTest struct {
	Name   string
	Input  string
	Output bool
}

var ismnTests = []ismnTest{
	{
		Name:   "good-ismn",
		Input:  "M-2306-7118-7",
		Output: true,
	},
	{
		Name:   "good-ismn-marker",
		Input:  "ISMN M-2306-7118-7",
		Output: true,
	},
	{
		Name:   "good-ismn-lowercase-marker",
		Input:  "ismn M-2306-7118-7",
		Output: true,
	},
	{
		Name:   "good-ismn-bare",
		Input:  "M230671187",
		Output: true,
	},
	{
		Name:   "good-ismn-mapped-digit",
		Input:  "3-2306-7118-7",
		Output: true,
	},
	{
		Name:   "bad-ismn-checksum",
		Input:  "M-2306-7118-8",
		Output: false,
	},
	{
		Name:   "bad-ismn-lowercase-m",
		Input:  "m-2306-7118-7",
		Output: false,
	},
	{
		Name:   "bad-ismn-m-inside",
		Input:  "2-M306-7118-7",
		Output: false,
	},
	{
		Name:   "bad-ismn-short",
		Input:  "M-2306-711-7",
		Output: false,
	},
	{
		Name:   "bad-ismn-long",
		Input:  "M-2306-71188-7",
		Output: false,
	},
	{
		Name:   "bad-ismn-x-check",
		Input:  "M-2306-7118-X",
		Output: false,
	},
	{
		Name:   "bad-ismn-empty",
		Input:  "",
		Output: false,
	},
}

func TestValidISMN(t *testing.T) {
	for _, tt := range ismnTests {
		t.Run(tt.Name, func(t *testing.T) {
			out := ValidISMN(tt.Input)
			assert.Equal(t, tt.Output, out)
		})
	}
}
