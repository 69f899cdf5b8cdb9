// Package tinkpad provides Tink integration for the pad transform.
// This file contains the factory for building pad primitives from Tink
// keyset handles.
package tinkpad

import (
	"fmt"

	"github.com/google/tink/go/keyset"
	"github.com/vdparikh/pad"
)

// New creates a pad Cipher from the primary key of a Tink keyset handle.
//
// Example:
//
//	handle, err := keyset.NewHandle(tinkpad.KeyTemplate())
//	if err != nil {
//	    return err
//	}
//	primitive, err := tinkpad.New(handle, 64)
//	if err != nil {
//	    return err
//	}
//	padded, err := primitive.Pad("hello")
func New(handle *keyset.Handle, base int) (pad.Cipher, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}

	primitives, err := handle.PrimitivesWithKeyManager(NewKeyManager())
	if err != nil {
		return nil, fmt.Errorf("failed to get primitives from handle: %w", err)
	}

	primary := primitives.Primary
	if primary == nil {
		return nil, fmt.Errorf("no primary key found in keyset")
	}

	key, ok := primary.Primitive.(*padKey)
	if !ok {
		return nil, fmt.Errorf("primary key %d is not a pad key", primary.KeyID)
	}

	p, err := pad.New(key.secret, base)
	if err != nil {
		return nil, fmt.Errorf("failed to create padder: %w", err)
	}
	return p, nil
}
