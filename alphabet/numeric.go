package alphabet

import (
	"errors"
	"fmt"
)

// ErrUnknownCharacter is returned when a character is not part of Canonical,
// or not part of the working alphabet where one is required.
var ErrUnknownCharacter = errors.New("unknown character")

// CharError reports the offending byte and where it was found.
// It unwraps to ErrUnknownCharacter.
type CharError struct {
	Field string // which input held the character, e.g. "value" or "key"
	Index int
	Char  byte
}

func (e *CharError) Error() string {
	return fmt.Sprintf("%v %q at position %d of %s", ErrUnknownCharacter, e.Char, e.Index, e.Field)
}

func (e *CharError) Unwrap() error {
	return ErrUnknownCharacter
}

// Positions converts s to canonical positions, failing on the first byte that
// is not in Canonical. Only the first n bytes are converted when n >= 0.
func Positions(s, field string, n int) ([]uint16, error) {
	if n < 0 || n > len(s) {
		n = len(s)
	}
	result := make([]uint16, n)
	for i := 0; i < n; i++ {
		p, ok := Position(s[i])
		if !ok {
			return nil, &CharError{Field: field, Index: i, Char: s[i]}
		}
		result[i] = uint16(p)
	}
	return result, nil
}

// FromPositions maps numerals back to characters of set.
func FromPositions(numeric []uint16, set string) (string, error) {
	result := make([]byte, len(numeric))
	for i, v := range numeric {
		if int(v) >= len(set) {
			return "", fmt.Errorf("numeral at position %d out of range: %d not in [0..%d]", i, v, len(set)-1)
		}
		result[i] = set[v]
	}
	return string(result), nil
}
