package passhash

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/vdparikh/pad/digest"
)

const (
	legacySaltLen   = 27
	legacyMinPrefix = 66
	legacyMaxPrefix = 86

	// MaxLegacyComplexity bounds the rounds Check will run (complexity²).
	MaxLegacyComplexity = 64
)

// Legacy is the salted, iterated SHA-512 scheme.
//
// A hash hides two random choices, a round in [1, complexity²] and a prefix
// length in [66, 86]; Check has to try all of them. Every candidate is
// compared, without an early return, so timing does not reveal which one
// matched.
type Legacy struct {
	siteSalt   string
	complexity int
}

// NewLegacy returns a Legacy driver. complexity is clamped to
// [1, MaxLegacyComplexity].
func NewLegacy(siteSalt string, complexity int) *Legacy {
	if complexity < 1 {
		complexity = 1
	}
	if complexity > MaxLegacyComplexity {
		complexity = MaxLegacyComplexity
	}
	return &Legacy{siteSalt: siteSalt, complexity: complexity}
}

// Make implements Hasher.
func (l *Legacy) Make(password string) (string, error) {
	salt, err := digest.Random(legacySaltLen, 64)
	if err != nil {
		return "", err
	}
	salt = strings.ReplaceAll(salt, "$", "")

	round, err := randInt(1, l.complexity*l.complexity)
	if err != nil {
		return "", err
	}
	prefix, err := randInt(legacyMinPrefix, legacyMaxPrefix)
	if err != nil {
		return "", err
	}

	rs := strconv.Itoa(round)
	prep := sha512Hex(password + l.siteSalt + salt + rs)[:prefix]
	sum := sha512.Sum512([]byte(prep + l.siteSalt + salt + rs))

	return fmt.Sprintf("%s$%d$%s$%s", DriverLegacy, l.complexity, salt, base64.StdEncoding.EncodeToString(sum[:])), nil
}

// Check implements Hasher.
func (l *Legacy) Check(password, hash string) (bool, error) {
	parts := strings.SplitN(hash, "$", 4)
	if len(parts) < 4 || parts[0] != DriverLegacy {
		return false, ErrMalformedHash
	}
	complexity, err := strconv.Atoi(parts[1])
	if err != nil || complexity < 1 || complexity > MaxLegacyComplexity {
		return false, fmt.Errorf("%w: complexity %q", ErrMalformedHash, parts[1])
	}
	salt := l.siteSalt + parts[2]
	want := []byte(parts[3])

	match := 0
	for c := 1; c <= complexity*complexity; c++ {
		cs := strconv.Itoa(c)
		prep := sha512Hex(password + salt + cs)
		for i := legacyMinPrefix; i <= legacyMaxPrefix; i++ {
			sum := sha512.Sum512([]byte(prep[:i] + salt + cs))
			got := []byte(base64.StdEncoding.EncodeToString(sum[:]))
			match |= subtle.ConstantTimeCompare(got, want)
		}
	}
	return match == 1, nil
}

func sha512Hex(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

// randInt returns a uniform integer in [lo, hi].
func randInt(lo, hi int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(hi-lo+1)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random value: %w", err)
	}
	return lo + int(n.Int64()), nil
}
