package oeis

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is the number of an OEIS entry, ex: 45 for A000045
type ID int

// ParseID reads an id from an A-number ("A000045", "a45") or a bare number ("45").
func ParseID(s string) (ID, error) {
	num := strings.TrimSpace(s)
	if strings.HasPrefix(num, "A") || strings.HasPrefix(num, "a") {
		num = num[1:]
	}

	n, err := strconv.Atoi(num)
	if err != nil || n <= 0 || strings.HasPrefix(num, "+") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID(n), nil
}

// String returns the A-number, zero padded to six digits.
func (id ID) String() string {
	return fmt.Sprintf("A%06d", int(id))
}

// URL returns the canonical page of the sequence under base.
func (id ID) URL(base string) string {
	return strings.TrimRight(base, "/") + "/" + id.String()
}

// bFileURL returns the location of the sequence's b-file (index value pairs)
func (id ID) bFileURL(base string) string {
	return fmt.Sprintf("%s/b%06d.txt", id.URL(base), int(id))
}
