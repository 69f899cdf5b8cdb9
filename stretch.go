package pad

import (
	"strconv"
	"strings"

	"github.com/vdparikh/pad/digest"
)

// Digest is the hash used to stretch a key. Sum must be deterministic and
// should only emit characters of the canonical alphabet, otherwise padding
// fails with ErrUnknownCharacter once the stretched part of the key is used.
type Digest interface {
	Sum(data string) string
}

// DefaultDigest is the digest used when none is supplied.
var DefaultDigest Digest = digest.SHA512{}

// StretchKey extends key until it is at least n bytes long by appending
// d.Sum(key + counter) with a decimal counter starting at 1. The original
// key always stays at the front and the result is never truncated.
func StretchKey(key string, n int, d Digest) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if d == nil {
		d = DefaultDigest
	}
	if len(key) >= n {
		return key, nil
	}

	var b strings.Builder
	b.WriteString(key)
	for count := 1; b.Len() < n; count++ {
		sum := d.Sum(key + strconv.Itoa(count))
		if sum == "" {
			// An empty digest would never make progress.
			return "", errEmptyDigest
		}
		b.WriteString(sum)
	}
	return b.String(), nil
}
