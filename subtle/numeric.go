package subtle

import "fmt"

// ConvertRadix converts a big-endian numeral array from one radix to another
// by repeated long division. Leading zeros are not preserved; a zero value
// converts to a single zero numeral.
func ConvertRadix(digits []uint16, from, to int) ([]uint16, error) {
	if from < 2 || to < 2 {
		return nil, fmt.Errorf("radix must be at least 2, got %d -> %d", from, to)
	}
	if len(digits) == 0 {
		return nil, fmt.Errorf("no numerals to convert")
	}

	work := make([]int, len(digits))
	for i, d := range digits {
		if int(d) >= from {
			return nil, fmt.Errorf("numeral at position %d out of range: %d not in [0..%d]", i, d, from-1)
		}
		work[i] = int(d)
	}

	// Each pass divides the whole number by `to`; the remainder is the next
	// least-significant output numeral and the quotient is kept in work.
	var out []uint16
	length := len(work)
	for {
		rem := 0
		newLen := 0
		for i := 0; i < length; i++ {
			rem = rem*from + work[i]
			if rem >= to {
				work[newLen] = rem / to
				newLen++
				rem %= to
			} else if newLen > 0 {
				work[newLen] = 0
				newLen++
			}
		}
		out = append(out, uint16(rem))
		length = newLen
		if newLen == 0 {
			break
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
