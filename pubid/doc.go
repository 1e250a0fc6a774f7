// Package pubid validates the publishing identifiers: ISBN (books, ISO
// 2108), ISSN (serials, ISO 3297) and ISMN (printed music, ISO 10957).
//
// Unlike the uniform GS1 family, each of these carries its own quirks:
// the ISBN-10 uses a modulo-11 checksum with 'X' as a check character,
// the ISSN uses descending weights 8..2 under modulo 11, and the
// 10-character ISMN maps its leading 'M' to the digit 3 before applying
// the GS1-style alternating weights. The printed forms also carry their
// format name as a marker ("ISBN 0-306-40615-2"), which the validators
// strip.
package pubid
