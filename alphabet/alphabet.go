// Package alphabet defines the canonical 95-character ordering shared by the
// pad engine and the digest helpers. The position of a character in Canonical
// is its integer value.
package alphabet

import (
	"errors"
	"fmt"
)

// Canonical is the full ordering: digits, lowercase, uppercase, then symbols.
// The first 64 characters (digits, letters, '+' and '=') form the default
// working alphabet.
const Canonical = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ+=_;:!-,.@*~|$%^&#()[]{}` ?'\"<>/\\"

// Size is the number of characters in Canonical.
const Size = len(Canonical)

// DefaultBase is the base used when callers do not pick one.
const DefaultBase = 64

// ErrInvalidBase is returned for a base larger than Size.
var ErrInvalidBase = errors.New("invalid base")

// positions maps a byte to its index in Canonical, or -1.
var positions [256]int

func init() {
	for i := range positions {
		positions[i] = -1
	}
	for i := 0; i < Size; i++ {
		c := Canonical[i]
		if positions[c] != -1 {
			panic(fmt.Sprintf("alphabet: duplicate character %q", c))
		}
		positions[c] = i
	}
}

// IsLegacyBase reports whether base selects the full alphabet through the
// legacy "base <= 0" convention.
func IsLegacyBase(base int) bool {
	return base <= 0
}

// Resolve returns the number of characters selected by base.
//
// A base of zero or less selects the full alphabet. This mirrors older
// callers that passed 0 to mean "everything"; new code should pass Size.
func Resolve(base int) (int, error) {
	if IsLegacyBase(base) {
		return Size, nil
	}
	if base > Size {
		return 0, fmt.Errorf("%w: %d (must be in [1, %d])", ErrInvalidBase, base, Size)
	}
	return base, nil
}

// Truncate returns the first base characters of Canonical.
func Truncate(base int) (string, error) {
	n, err := Resolve(base)
	if err != nil {
		return "", err
	}
	return Canonical[:n], nil
}

// Position returns the index of c in the full canonical ordering.
func Position(c byte) (int, bool) {
	p := positions[c]
	return p, p >= 0
}

// Char returns the character at position i. It panics if i is out of range.
func Char(i int) byte {
	return Canonical[i]
}
