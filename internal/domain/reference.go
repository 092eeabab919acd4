package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ReferencePrefix starts every booking reference.
const ReferencePrefix = "BK-"

// referenceDigits is the zero-padded width of the numeric suffix.
const referenceDigits = 5

// FormatReference renders a sequence number as a booking reference,
// e.g. FormatReference(1) == "BK-00001".
func FormatReference(n int64) string {
	return fmt.Sprintf("%s%0*d", ReferencePrefix, referenceDigits, n)
}

// NextReference derives the reference following the given one.
// The input is the lexicographically greatest reference currently
// stored for the hub, soft-deleted bookings included, so numbers are
// never reused. An empty or unparseable input starts the sequence at
// BK-00001.
func NextReference(last string) string {
	if !strings.HasPrefix(last, ReferencePrefix) {
		return FormatReference(1)
	}

	n, err := strconv.ParseInt(strings.TrimPrefix(last, ReferencePrefix), 10, 64)
	if err != nil || n < 0 {
		return FormatReference(1)
	}

	return FormatReference(n + 1)
}
