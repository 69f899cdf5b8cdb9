package pad

// Cipher is the keyed pad primitive, in the style of Tink's primitives.
// A Cipher is deterministic: the same value, key and base always pad to the
// same output.
type Cipher interface {
	// Pad transforms value into a string of the same length drawn from the
	// working alphabet.
	Pad(value string) (string, error)

	// Unpad recovers the value passed to Pad. It is the exact inverse of Pad
	// for values drawn from the working alphabet.
	Unpad(padded string) (string, error)
}

// Verify that Padder implements Cipher
var _ Cipher = (*Padder)(nil)
