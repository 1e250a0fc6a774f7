// Package gs1 validates the check digits of the GS1 trade item and
// logistics identifiers: EAN-8, UCC-12 (UPC-A), EAN-13, EAN-14 and the
// SSCC.
//
// All of these are fixed-length, all-numeric data structures whose final
// digit is a check digit under the GS1 "standard check digit" algorithm:
// working leftward from the check digit, data digits are alternately
// multiplied by 3 and 1, the products are summed, and the check digit is
// the value that raises the sum to the next multiple of 10. The GS1
// General Specifications define the algorithm and the data structures:
// - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
//
// Because the multiplier nearest the check digit is always 3, the weight
// table for an even-length code begins with 3 and for an odd-length code
// begins with 1; this is why the EAN-13 table leads with 1 while every
// other family member leads with 3.
//
// The four GTIN lengths (8, 12, 13, 14) identify trade items; the SSCC
// (18 digits) identifies logistics units such as pallets. Despite the
// different names they are one numbering scheme, and a shorter GTIN
// becomes a longer one by zero-padding on the left without changing the
// check digit.
//
// This package checks lengths, digits and check digits only. GS1 reserves
// and restricts many prefix ranges (for example, RCNs for internal use);
// codes in those ranges still validate here, exactly as they scan at a
// point of sale.
package gs1
