package pad

import (
	"errors"

	"github.com/vdparikh/pad/alphabet"
)

var (
	// ErrUnknownCharacter is returned when a value, padded value or key
	// character is outside the alphabet it must be drawn from. The concrete
	// error is a *CharError.
	ErrUnknownCharacter = alphabet.ErrUnknownCharacter

	// ErrInvalidBase is returned for a base above the canonical alphabet size.
	ErrInvalidBase = alphabet.ErrInvalidBase

	// ErrEmptyKey is returned when the padding key is empty; there is nothing
	// to stretch.
	ErrEmptyKey = errors.New("empty padding key")

	errEmptyDigest = errors.New("digest returned no output")
)

// CharError describes the character that triggered ErrUnknownCharacter.
type CharError = alphabet.CharError
