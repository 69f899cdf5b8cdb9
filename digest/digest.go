// Package digest provides the hashing helpers used around the pad engine:
// the default key-stretching digest, truncated hashes rendered in an
// arbitrary base, random strings, file fingerprints and base conversion over
// the canonical alphabet.
//
// Example usage:
//
//	h, err := digest.Value("some value", 20, 62) // 20 alphanumeric characters
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	dec, err := digest.ConvertBase("ff", 16, 10) // "255"
package digest

import (
	"crypto/sha1"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vdparikh/pad/alphabet"
	"github.com/vdparikh/pad/subtle"
)

// SHA512 renders SHA-512 as the first 64 characters of its standard base64
// encoding. Every character of standard base64 is part of the canonical
// alphabet, so the output can be used directly as pad key material.
type SHA512 struct{}

// Sum implements pad.Digest.
func (SHA512) Sum(data string) string {
	sum := sha512.Sum512([]byte(data))
	return base64.StdEncoding.EncodeToString(sum[:])[:64]
}

// stripper removes the characters that fall outside the base-62 alphabet.
var stripper = strings.NewReplacer("+", "", "/", "", "=", "")

// Value hashes value with SHA-512 and returns at most length characters.
//
// Base 64 uses the standard base64 encoding of the raw digest and base 62
// the same encoding without '+', '/' and '='. Any other base converts the hex
// digest into the first base characters of the canonical alphabet.
func Value(value string, length, base int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("length must not be negative, got %d", length)
	}

	sum := sha512.Sum512([]byte(value))
	var out string
	switch base {
	case 64:
		out = base64.StdEncoding.EncodeToString(sum[:])
	case 62:
		out = stripper.Replace(base64.StdEncoding.EncodeToString(sum[:]))
	default:
		n, err := alphabet.Resolve(base)
		if err != nil {
			return "", err
		}
		converted, err := ConvertBase(hex.EncodeToString(sum[:]), 16, n)
		if err != nil {
			return "", fmt.Errorf("failed to convert digest: %w", err)
		}
		out = converted
	}
	return truncate(out, length), nil
}

// File returns the base64 SHA-1 of the file at path with '+', '/' and '='
// removed.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return stripper.Replace(base64.StdEncoding.EncodeToString(h.Sum(nil))), nil
}

// ConvertBase converts value between two bases, reading and writing digits as
// characters of the canonical alphabet. Every digit of value must be below
// from.
func ConvertBase(value string, from, to int) (string, error) {
	if from > alphabet.Size || to > alphabet.Size {
		return "", fmt.Errorf("%w: %d -> %d", alphabet.ErrInvalidBase, from, to)
	}
	digits, err := alphabet.Positions(value, "value", -1)
	if err != nil {
		return "", err
	}
	converted, err := subtle.ConvertRadix(digits, from, to)
	if err != nil {
		return "", err
	}
	return alphabet.FromPositions(converted, alphabet.Canonical)
}

func truncate(s string, n int) string {
	if n < len(s) {
		return s[:n]
	}
	return s
}
