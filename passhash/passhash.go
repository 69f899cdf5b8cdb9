// Package passhash creates and verifies password hashes.
//
// Two drivers are provided: Argon2id, used for every new hash, and Legacy,
// which verifies (and can still produce) the older salted SHA-512 format
// "default$<complexity>$<salt>$<hash>". A Manager picks the driver from the
// hash prefix so stored legacy hashes keep working.
//
//	m := passhash.NewManager(siteSalt, 5)
//	hash, err := m.Make("my-secret-password")
//	ok, err := m.Check("my-secret-password", hash)
package passhash

import (
	"errors"
	"strings"
	"sync"
)

// ErrMalformedHash is returned when a hash string cannot be parsed by the
// driver it was routed to.
var ErrMalformedHash = errors.New("malformed password hash")

// Hasher is implemented by every password-hashing driver.
// Implementations must be safe for concurrent use.
type Hasher interface {
	// Make hashes password with a fresh random salt.
	Make(password string) (string, error)

	// Check reports whether password matches hash. A structurally invalid
	// hash returns (false, err).
	Check(password, hash string) (bool, error)
}

// Driver names, which are also the hash prefixes.
const (
	DriverLegacy   = "default"
	DriverArgon2id = "argon2id"
)

// Detect returns the driver that produced hash.
func Detect(hash string) (string, bool) {
	switch {
	case strings.HasPrefix(hash, "$"+DriverArgon2id+"$"):
		return DriverArgon2id, true
	case strings.HasPrefix(hash, DriverLegacy+"$"):
		return DriverLegacy, true
	default:
		return "", false
	}
}

// Manager dispatches Check to the driver named by the hash prefix and Make to
// the default driver. It is safe for concurrent use, including Register.
type Manager struct {
	mu      sync.RWMutex
	drivers map[string]Hasher
	def     string
}

// NewManager returns a Manager with Argon2id as the default driver and the
// Legacy driver configured with siteSalt and complexity.
func NewManager(siteSalt string, complexity int) *Manager {
	return &Manager{
		drivers: map[string]Hasher{
			DriverArgon2id: NewArgon2id(DefaultArgon2idParams()),
			DriverLegacy:   NewLegacy(siteSalt, complexity),
		},
		def: DriverArgon2id,
	}
}

// Register replaces or adds the driver for name, which must be one of the
// Driver constants for Check to route to it.
func (m *Manager) Register(name string, h Hasher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
}

func (m *Manager) driver(name string) (Hasher, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	return h, ok
}

// Make hashes password with the default driver.
func (m *Manager) Make(password string) (string, error) {
	h, _ := m.driver(m.def)
	return h.Make(password)
}

// Check verifies password against a hash from any registered driver.
func (m *Manager) Check(password, hash string) (bool, error) {
	name, ok := Detect(hash)
	if !ok {
		return false, ErrMalformedHash
	}
	h, ok := m.driver(name)
	if !ok {
		return false, ErrMalformedHash
	}
	return h.Check(password, hash)
}

// NeedsRehash reports whether hash was not produced by the default driver.
func (m *Manager) NeedsRehash(hash string) bool {
	name, _ := Detect(hash)
	return name != m.def
}

// Verify that both drivers and the Manager implement Hasher
var (
	_ Hasher = (*Manager)(nil)
	_ Hasher = (*Legacy)(nil)
	_ Hasher = (*Argon2id)(nil)
)
