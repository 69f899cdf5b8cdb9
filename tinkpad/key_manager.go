// Package tinkpad provides Tink integration for the pad transform.
// This file contains the KeyManager implementation that registers pad keys
// with Tink's registry.
package tinkpad

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/core/registry"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	tinkpb "github.com/google/tink/go/proto/tink_go_proto"
	"google.golang.org/protobuf/proto"
)

const (
	// PadKeyTypeURL is the type URL for pad keys in Tink's registry.
	PadKeyTypeURL = "type.googleapis.com/vdparikh.pad.PadKey"

	defaultKeySize = 32
)

// KeyManager implements registry.KeyManager for pad keys.
// The key value is raw random material; the pad key is its standard base64
// encoding, which only uses characters of the canonical alphabet.
type KeyManager struct {
	typeURL string
}

// NewKeyManager creates a new pad key manager.
func NewKeyManager() *KeyManager {
	return &KeyManager{
		typeURL: PadKeyTypeURL,
	}
}

// padKey is the primitive handed out by the KeyManager. It carries the pad key
// only; the base is chosen when the Cipher is built.
type padKey struct {
	secret string
}

// Primitive creates a pad key primitive from the given serialized key.
func (km *KeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if err := validateKeySize(len(serializedKey)); err != nil {
		return nil, err
	}
	return &padKey{secret: base64.StdEncoding.EncodeToString(serializedKey)}, nil
}

// DoesSupport returns true if this KeyManager supports the given key type URL.
func (km *KeyManager) DoesSupport(typeURL string) bool {
	return typeURL == km.typeURL
}

// TypeURL returns the type URL of the keys managed by this KeyManager.
func (km *KeyManager) TypeURL() string {
	return km.typeURL
}

// NewKey is not supported: pad keys have no proto message of their own.
// Use NewKeyData instead.
func (km *KeyManager) NewKey(serializedKeyTemplate []byte) (proto.Message, error) {
	return nil, fmt.Errorf("NewKey is not supported for %s - use NewKeyData instead", km.typeURL)
}

// NewKeyData creates a new KeyData from the given key template value.
// The template value holds the key size as a single byte.
func (km *KeyManager) NewKeyData(serializedKeyTemplate []byte) (*tinkpb.KeyData, error) {
	keySize := defaultKeySize
	if len(serializedKeyTemplate) > 0 {
		keySize = int(serializedKeyTemplate[0])
	}
	if err := validateKeySize(keySize); err != nil {
		return nil, fmt.Errorf("invalid key template: %w", err)
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}

	return &tinkpb.KeyData{
		TypeUrl:         km.typeURL,
		Value:           key,
		KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
	}, nil
}

// Verify that KeyManager implements registry.KeyManager
var _ registry.KeyManager = (*KeyManager)(nil)

func validateKeySize(n int) error {
	if n != 16 && n != 24 && n != 32 {
		return fmt.Errorf("invalid key size: %d bytes (must be 16, 24, or 32)", n)
	}
	return nil
}

// KeyTemplate creates a key template for 32-byte pad keys.
//
//	handle, err := keyset.NewHandle(tinkpad.KeyTemplate())
func KeyTemplate() *tinkpb.KeyTemplate {
	return keyTemplate(32)
}

// KeyTemplate16 creates a key template for 16-byte pad keys.
func KeyTemplate16() *tinkpb.KeyTemplate {
	return keyTemplate(16)
}

// KeyTemplate24 creates a key template for 24-byte pad keys.
func KeyTemplate24() *tinkpb.KeyTemplate {
	return keyTemplate(24)
}

func keyTemplate(size byte) *tinkpb.KeyTemplate {
	return &tinkpb.KeyTemplate{
		TypeUrl:          PadKeyTypeURL,
		Value:            []byte{size},
		OutputPrefixType: tinkpb.OutputPrefixType_RAW,
	}
}

// NewKeysetHandleFromKey creates a keyset handle from raw key material, for
// keys that come from an HSM or another key management system.
//
// The key must be 16, 24, or 32 bytes.
//
// Note: This creates an unencrypted keyset. In production, encrypt the keyset
// before storing it.
func NewKeysetHandleFromKey(key []byte) (*keyset.Handle, error) {
	if err := validateKeySize(len(key)); err != nil {
		return nil, err
	}

	keyIDBytes := make([]byte, 4)
	if _, err := rand.Read(keyIDBytes); err != nil {
		return nil, fmt.Errorf("failed to generate key ID: %w", err)
	}
	keyID := binary.BigEndian.Uint32(keyIDBytes) | 1 // never zero

	ks := &tinkpb.Keyset{
		PrimaryKeyId: keyID,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         PadKeyTypeURL,
				Value:           key,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
			KeyId:            keyID,
			Status:           tinkpb.KeyStatusType_ENABLED,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	}

	return insecurecleartextkeyset.Read(&keyset.MemReaderWriter{Keyset: ks})
}
