package tinkpad

import (
	"math/rand"
	"testing"

	"github.com/google/tink/go/keyset"
	"github.com/vdparikh/pad/alphabet"
)

// TestBijectivity checks that distinct values of the same length never pad to
// the same output under one key.
func TestBijectivity(t *testing.T) {
	handle := newTestHandle(t)
	primitive, err := New(handle, 16)
	if err != nil {
		t.Fatalf("Failed to create pad primitive: %v", err)
	}

	seen := make(map[string]string)
	for i := 0; i < 4096; i++ {
		value := []byte("000")
		value[0] = alphabet.Canonical[i>>8&0xf]
		value[1] = alphabet.Canonical[i>>4&0xf]
		value[2] = alphabet.Canonical[i&0xf]

		padded, err := primitive.Pad(string(value))
		if err != nil {
			t.Fatalf("Pad(%q) failed: %v", value, err)
		}
		if prev, ok := seen[padded]; ok {
			t.Fatalf("collision: %q and %q both pad to %q", prev, value, padded)
		}
		seen[padded] = string(value)
	}
}

// TestKeySensitivity checks that independent keys give different outputs.
func TestKeySensitivity(t *testing.T) {
	if err := Register(); err != nil {
		t.Fatal(err)
	}

	value := "sensitivity-check-value"
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		handle, err := keyset.NewHandle(KeyTemplate())
		if err != nil {
			t.Fatal(err)
		}
		primitive, err := New(handle, alphabet.Size)
		if err != nil {
			t.Fatal(err)
		}
		padded, err := primitive.Pad(value)
		if err != nil {
			t.Fatal(err)
		}
		if seen[padded] {
			t.Errorf("two random keys padded %q to the same %q", value, padded)
		}
		seen[padded] = true
	}
}

// TestDeterminism checks that two primitives from one handle agree.
func TestDeterminism(t *testing.T) {
	handle := newTestHandle(t)
	rng := rand.New(rand.NewSource(7))

	p1, err := New(handle, 64)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := New(handle, 64)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 50; i++ {
		b := make([]byte, 1+rng.Intn(120))
		for j := range b {
			b[j] = alphabet.Canonical[rng.Intn(64)]
		}
		a1, err := p1.Pad(string(b))
		if err != nil {
			t.Fatal(err)
		}
		a2, err := p2.Pad(string(b))
		if err != nil {
			t.Fatal(err)
		}
		if a1 != a2 {
			t.Fatalf("NOT DETERMINISTIC: %q produced %q and %q", b, a1, a2)
		}
	}
}
