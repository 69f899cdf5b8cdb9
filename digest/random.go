package digest

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"

	"github.com/vdparikh/pad/alphabet"
)

// Random returns length random characters.
//
// Base 64 draws length random bytes and keeps the start of their base64
// encoding, '=' removed. Other bases pick each character uniformly from the
// first base characters of the canonical alphabet.
func Random(length, base int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("length must not be negative, got %d", length)
	}

	if base == 64 {
		buf := make([]byte, length)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		encoded := strings.ReplaceAll(base64.StdEncoding.EncodeToString(buf), "=", "")
		return truncate(encoded, length), nil
	}

	set, err := alphabet.Truncate(base)
	if err != nil {
		return "", err
	}
	limit := big.NewInt(int64(len(set)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to read random index: %w", err)
		}
		out[i] = set[n.Int64()]
	}
	return string(out), nil
}
