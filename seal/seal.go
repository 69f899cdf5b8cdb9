// Package seal encrypts short payloads into printable, self-describing
// strings of the form "<type>|<base64>".
//
// The default type (an empty type name) is AES-GCM through Tink. The "open"
// type only base64-encodes the data and is meant for passing values through
// URLs, not for secrecy.
//
//	s, err := seal.NewFromPassphrase("secret key")
//	if err != nil {
//		log.Fatal(err)
//	}
//	payload, err := s.Seal([]byte("Some data to encrypt"), seal.TypeDefault)
//	data, err := s.Open(payload)
package seal

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/tink/go/aead"
	aeadsubtle "github.com/google/tink/go/aead/subtle"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/tink"
	"github.com/vdparikh/pad/digest"
)

// Type names how a payload was sealed.
type Type string

const (
	// TypeDefault encrypts with the Sealer's AEAD.
	TypeDefault Type = ""
	// TypeFast is an alias of TypeDefault kept for older payload producers.
	TypeFast Type = "fast"
	// TypeOpen base64-encodes without encryption.
	TypeOpen Type = "open"
)

const separator = "|"

var (
	// ErrUnknownType is returned for a type the Sealer does not implement.
	ErrUnknownType = errors.New("unknown seal type")
	// ErrMalformed is returned when a payload has no type separator or its
	// body is not valid base64.
	ErrMalformed = errors.New("malformed sealed payload")
)

// Sealer seals and opens payloads with one AEAD. It is safe for concurrent
// use when the underlying AEAD is.
type Sealer struct {
	aead tink.AEAD
}

// New wraps an existing Tink AEAD primitive.
func New(a tink.AEAD) (*Sealer, error) {
	if a == nil {
		return nil, fmt.Errorf("aead cannot be nil")
	}
	return &Sealer{aead: a}, nil
}

// NewFromPassphrase derives an AES-256-GCM key from passphrase. The key is the
// first 32 characters of the base-64 SHA-512 digest of the passphrase.
func NewFromPassphrase(passphrase string) (*Sealer, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}
	key, err := digest.Value(passphrase, 32, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	a, err := aeadsubtle.NewAESGCM([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("failed to create AES-GCM: %w", err)
	}
	return New(a)
}

// NewFromHandle builds a Sealer from a Tink AEAD keyset handle.
func NewFromHandle(handle *keyset.Handle) (*Sealer, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}
	a, err := aead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get AEAD primitive: %w", err)
	}
	return New(a)
}

// Seal encodes data as typ.
func (s *Sealer) Seal(data []byte, typ Type) (string, error) {
	switch typ {
	case TypeDefault, TypeFast:
		ct, err := s.aead.Encrypt(data, nil)
		if err != nil {
			return "", fmt.Errorf("failed to encrypt: %w", err)
		}
		return string(typ) + separator + base64.StdEncoding.EncodeToString(ct), nil
	case TypeOpen:
		return string(typ) + separator + base64.StdEncoding.EncodeToString(data), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
}

// Open decodes a payload produced by Seal, choosing the algorithm from its
// type prefix.
func (s *Sealer) Open(payload string) ([]byte, error) {
	typ, body, ok := strings.Cut(payload, separator)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformed, separator)
	}
	raw, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch Type(typ) {
	case TypeDefault, TypeFast:
		data, err := s.aead.Decrypt(raw, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt: %w", err)
		}
		return data, nil
	case TypeOpen:
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
}
