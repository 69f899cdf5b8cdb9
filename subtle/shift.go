// Package subtle provides the low-level modular primitives behind the pad
// engine. Values are numeral arrays (positions in the canonical alphabet)
// rather than strings.
// It should not be used directly by most users; instead use the high-level
// APIs in the parent package.
package subtle

import "fmt"

// Shift adds offsets to values element-wise and reduces each sum modulo radix.
// Values may be larger than radix; only the sum is reduced.
//
// Thread safety: Shift does not retain or modify its inputs.
func Shift(values, offsets []uint16, radix int) ([]uint16, error) {
	if err := checkArgs(values, offsets, radix); err != nil {
		return nil, err
	}

	result := make([]uint16, len(values))
	for i, v := range values {
		sum := uint32(v) + uint32(offsets[i])
		result[i] = uint16(sum % uint32(radix))
	}
	return result, nil
}

// Unshift is the inverse of Shift for values below radix.
// Each value must be a valid numeral of radix, since Shift only ever
// produces those.
func Unshift(values, offsets []uint16, radix int) ([]uint16, error) {
	if err := checkArgs(values, offsets, radix); err != nil {
		return nil, err
	}

	result := make([]uint16, len(values))
	for i, v := range values {
		if int(v) >= radix {
			return nil, fmt.Errorf("numeral at position %d out of range: %d not in [0..%d]", i, v, radix-1)
		}
		diff := (int(v) - int(offsets[i])) % radix
		if diff < 0 {
			diff += radix
		}
		result[i] = uint16(diff)
	}
	return result, nil
}

func checkArgs(values, offsets []uint16, radix int) error {
	if radix < 1 {
		return fmt.Errorf("radix must be at least 1, got %d", radix)
	}
	if len(offsets) < len(values) {
		return fmt.Errorf("offsets too short: %d offsets for %d values", len(offsets), len(values))
	}
	return nil
}
