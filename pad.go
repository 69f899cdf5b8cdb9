// Package pad implements a keyed, reversible padding transform over a fixed
// 95-character alphabet.
//
// Each character of the value is shifted by the matching character of the
// key, using positions in the canonical alphabet (see package alphabet), and
// the sum is reduced modulo the size of the working alphabet: the first base
// characters of the canonical ordering. Keys shorter than the value are
// stretched by appending digests of the key.
//
// The transform is an obfuscation scheme, not encryption. Use package seal
// for confidentiality.
//
// Example usage:
//
//	p, err := pad.New("secret key", 64)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	padded, err := p.Pad("hello")
//	if err != nil {
//		log.Fatal(err)
//	}
//	// padded is five characters drawn from 0-9, a-z, A-Z, '+' and '='
//
//	value, err := p.Unpad(padded)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// value is "hello"
package pad

import (
	"fmt"

	"github.com/vdparikh/pad/alphabet"
	"github.com/vdparikh/pad/subtle"
)

// Padder pads and unpads values with a fixed key, base and digest.
// It is immutable and safe for concurrent use.
type Padder struct {
	key     string
	working string
	digest  Digest
}

// New creates a Padder for key over the first base characters of the
// canonical alphabet, stretching with DefaultDigest.
//
// base must be at most alphabet.Size. A base of zero or less selects the whole
// alphabet for compatibility with older callers.
func New(key string, base int) (*Padder, error) {
	return NewWithDigest(key, base, DefaultDigest)
}

// NewWithDigest is like New but stretches the key with d.
func NewWithDigest(key string, base int, d Digest) (*Padder, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	working, err := alphabet.Truncate(base)
	if err != nil {
		return nil, err
	}
	if d == nil {
		d = DefaultDigest
	}
	return &Padder{
		key:     key,
		working: working,
		digest:  d,
	}, nil
}

// Base returns the size of the working alphabet.
func (p *Padder) Base() int {
	return len(p.working)
}

// Pad shifts every character of value by the stretched key.
// value may hold any canonical character; the output only holds characters of
// the working alphabet and has the same length as value.
func (p *Padder) Pad(value string) (string, error) {
	// Step 1: Stretch the key to cover the value
	stretched, err := StretchKey(p.key, len(value), p.digest)
	if err != nil {
		return "", err
	}

	// Step 2: Convert value and key to positions in the full alphabet
	values, err := alphabet.Positions(value, "value", -1)
	if err != nil {
		return "", err
	}
	offsets, err := alphabet.Positions(stretched, "key", len(value))
	if err != nil {
		return "", err
	}

	// Step 3: Add and reduce modulo the working alphabet
	shifted, err := subtle.Shift(values, offsets, len(p.working))
	if err != nil {
		return "", fmt.Errorf("failed to pad: %w", err)
	}

	// Step 4: Convert back to characters of the working alphabet
	return alphabet.FromPositions(shifted, p.working)
}

// Unpad reverses Pad. Every character of padded must belong to the working
// alphabet.
func (p *Padder) Unpad(padded string) (string, error) {
	stretched, err := StretchKey(p.key, len(padded), p.digest)
	if err != nil {
		return "", err
	}

	values, err := alphabet.Positions(padded, "padded value", -1)
	if err != nil {
		return "", err
	}
	for i, v := range values {
		if int(v) >= len(p.working) {
			return "", &CharError{Field: "padded value", Index: i, Char: padded[i]}
		}
	}
	offsets, err := alphabet.Positions(stretched, "key", len(padded))
	if err != nil {
		return "", err
	}

	unshifted, err := subtle.Unshift(values, offsets, len(p.working))
	if err != nil {
		return "", fmt.Errorf("failed to unpad: %w", err)
	}

	return alphabet.FromPositions(unshifted, p.working)
}

// Pad pads value with key over the first base characters of the alphabet.
func Pad(value, key string, base int) (string, error) {
	p, err := New(key, base)
	if err != nil {
		return "", err
	}
	return p.Pad(value)
}

// Unpad reverses Pad for the same key and base.
func Unpad(padded, key string, base int) (string, error) {
	p, err := New(key, base)
	if err != nil {
		return "", err
	}
	return p.Unpad(padded)
}
