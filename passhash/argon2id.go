package passhash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2idParams are the cost parameters of the Argon2id driver.
type Argon2idParams struct {
	Memory  uint32 // KiB
	Time    uint32
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2idParams returns m=64 MiB, t=3, p=2 with a 16-byte salt and a
// 32-byte key.
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{
		Memory:  64 * 1024,
		Time:    3,
		Threads: 2,
		SaltLen: 16,
		KeyLen:  32,
	}
}

// maxCostFactor bounds the cost parameters Check accepts from a stored hash,
// as a multiple of the defaults or of the driver's own parameters, whichever
// is larger.
const maxCostFactor = 4

// Argon2id hashes into the PHC string format
// "$argon2id$v=19$m=<KiB>,t=<iterations>,p=<threads>$<salt>$<key>".
type Argon2id struct {
	params Argon2idParams
}

// NewArgon2id returns an Argon2id driver using params.
func NewArgon2id(params Argon2idParams) *Argon2id {
	return &Argon2id{params: params}
}

// Make implements Hasher.
func (a *Argon2id) Make(password string) (string, error) {
	salt := make([]byte, a.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, a.params.Time, a.params.Memory, a.params.Threads, a.params.KeyLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		DriverArgon2id, argon2.Version,
		a.params.Memory, a.params.Time, a.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check implements Hasher. The cost parameters are read from hash, so hashes
// made with older parameters still verify.
func (a *Argon2id) Check(password, hash string) (bool, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != DriverArgon2id {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported argon2 version %d", ErrMalformedHash, version)
	}

	var p Argon2idParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: key: %v", ErrMalformedHash, err)
	}
	if len(want) == 0 || p.Time == 0 || p.Threads == 0 {
		return false, ErrMalformedHash
	}
	if maxMemory, maxTime := a.limits(); p.Memory > maxMemory || p.Time > maxTime {
		return false, fmt.Errorf("%w: cost m=%d,t=%d above limit m=%d,t=%d",
			ErrMalformedHash, p.Memory, p.Time, maxMemory, maxTime)
	}

	got := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// limits returns the largest memory (KiB) and time cost Check will run.
func (a *Argon2id) limits() (memory, time uint32) {
	def := DefaultArgon2idParams()
	memory, time = def.Memory, def.Time
	if a.params.Memory > memory {
		memory = a.params.Memory
	}
	if a.params.Time > time {
		time = a.params.Time
	}
	return memory * maxCostFactor, time * maxCostFactor
}
