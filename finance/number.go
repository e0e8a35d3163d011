/*
number.go - Document number generation and parsing

PURPOSE:
  Formats and parses the PREFIX-YYYY-NNNN numbers used across document
  types (BKK-2025-0001, INV-2025-0042, JO-2025-0007). Formatting and
  parsing round-trip exactly: parsing a generated number recovers the
  year and sequence unchanged.

FORMAT:
  <prefix>-<4 digit year>-<sequence, zero padded to 4>
  Sequences above 9999 widen naturally (BKK-2025-12345) and still parse.
*/
package finance

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedNumber is returned when a document number does not match
// the PREFIX-YYYY-NNNN format.
var ErrMalformedNumber = errors.New("malformed document number")

// Well-known number prefixes.
const (
	PrefixBKK     = "BKK"
	PrefixInvoice = "INV"
	PrefixJO      = "JO"
	PrefixPJO     = "PJO"
)

// DocumentNumber is a parsed document number.
type DocumentNumber struct {
	Prefix   string
	Year     int
	Sequence int
}

// Format renders the canonical string form.
func (n DocumentNumber) Format() string {
	return fmt.Sprintf("%s-%04d-%04d", n.Prefix, n.Year, n.Sequence)
}

// ParseDocumentNumber parses PREFIX-YYYY-NNNN. It fails closed on extra
// segments, empty prefixes, non-numeric parts, and non-positive fields.
func ParseDocumentNumber(s string) (DocumentNumber, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] == "" {
		return DocumentNumber{}, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 || year <= 0 {
		return DocumentNumber{}, fmt.Errorf("%w: bad year in %q", ErrMalformedNumber, s)
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil || seq <= 0 {
		return DocumentNumber{}, fmt.Errorf("%w: bad sequence in %q", ErrMalformedNumber, s)
	}
	return DocumentNumber{Prefix: parts[0], Year: year, Sequence: seq}, nil
}

// GenerateBKKNumber formats a BKK voucher number, e.g. BKK-2025-0001.
func GenerateBKKNumber(year, sequence int) string {
	return DocumentNumber{Prefix: PrefixBKK, Year: year, Sequence: sequence}.Format()
}

// ParseBKKNumber parses a BKK voucher number back to year and sequence.
func ParseBKKNumber(s string) (year, sequence int, err error) {
	n, err := ParseDocumentNumber(s)
	if err != nil {
		return 0, 0, err
	}
	if n.Prefix != PrefixBKK {
		return 0, 0, fmt.Errorf("%w: expected %s prefix in %q", ErrMalformedNumber, PrefixBKK, s)
	}
	return n.Year, n.Sequence, nil
}
