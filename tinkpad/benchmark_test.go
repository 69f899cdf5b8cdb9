package tinkpad

import (
	"strings"
	"testing"

	"github.com/google/tink/go/keyset"
	"github.com/vdparikh/pad"
)

func newBenchPrimitive(b *testing.B, base int) pad.Cipher {
	b.Helper()
	if err := Register(); err != nil {
		b.Fatalf("Failed to register KeyManager: %v", err)
	}
	handle, err := keyset.NewHandle(KeyTemplate())
	if err != nil {
		b.Fatalf("Failed to create keyset handle: %v", err)
	}
	primitive, err := New(handle, base)
	if err != nil {
		b.Fatalf("Failed to create pad primitive: %v", err)
	}
	return primitive
}

// BenchmarkPad benchmarks Pad for inputs that fit in the key and inputs that
// need stretching.
func BenchmarkPad(b *testing.B) {
	primitive := newBenchPrimitive(b, 64)

	benchmarks := []struct {
		name  string
		value string
	}{
		{"Short_8", "abcd1234"},
		{"KeyLength_44", strings.Repeat("a", 44)},
		{"Stretched_256", strings.Repeat("Zz09", 64)},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := primitive.Pad(bm.value); err != nil {
					b.Fatalf("Pad failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkRoundTrip benchmarks Pad followed by Unpad.
func BenchmarkRoundTrip(b *testing.B) {
	primitive := newBenchPrimitive(b, 62)
	value := "0123456789abcdefABCDEF"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		padded, err := primitive.Pad(value)
		if err != nil {
			b.Fatalf("Pad failed: %v", err)
		}
		if _, err := primitive.Unpad(padded); err != nil {
			b.Fatalf("Unpad failed: %v", err)
		}
	}
}

// BenchmarkConcurrent benchmarks a shared primitive across goroutines.
func BenchmarkConcurrent(b *testing.B) {
	primitive := newBenchPrimitive(b, 64)

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := primitive.Pad("concurrent-value"); err != nil {
				b.Fatalf("Pad failed: %v", err)
			}
		}
	})
}
