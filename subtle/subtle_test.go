package subtle

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShiftReducesSum(t *testing.T) {
	got, err := Shift([]uint16{0, 63, 94, 10}, []uint16{1, 1, 94, 0, 7}, 64)
	if err != nil {
		t.Fatalf("Shift failed: %v", err)
	}
	want := []uint16{1, 0, 60, 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Shift mismatch (-want +got):\n%s", diff)
	}
}

func TestUnshiftInvertsShift(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for radix := 1; radix <= 95; radix++ {
		values := make([]uint16, 32)
		offsets := make([]uint16, 40)
		for i := range values {
			values[i] = uint16(rng.Intn(radix))
		}
		for i := range offsets {
			offsets[i] = uint16(rng.Intn(95))
		}

		shifted, err := Shift(values, offsets, radix)
		if err != nil {
			t.Fatalf("radix %d: Shift failed: %v", radix, err)
		}
		for i, v := range shifted {
			if int(v) >= radix {
				t.Fatalf("radix %d: shifted[%d] = %d escapes radix", radix, i, v)
			}
		}

		recovered, err := Unshift(shifted, offsets, radix)
		if err != nil {
			t.Fatalf("radix %d: Unshift failed: %v", radix, err)
		}
		if diff := cmp.Diff(values, recovered); diff != "" {
			t.Fatalf("radix %d: round trip mismatch (-want +got):\n%s", radix, diff)
		}
	}
}

func TestShiftErrors(t *testing.T) {
	if _, err := Shift([]uint16{1}, []uint16{1}, 0); err == nil {
		t.Error("expected error for radix 0")
	}
	if _, err := Shift([]uint16{1, 2}, []uint16{1}, 10); err == nil {
		t.Error("expected error for short offsets")
	}
	if _, err := Unshift([]uint16{10}, []uint16{1}, 10); err == nil {
		t.Error("expected error for numeral outside radix")
	}
}

func TestConvertRadix(t *testing.T) {
	testCases := []struct {
		name     string
		digits   []uint16
		from, to int
		want     []uint16
	}{
		{"HexToDecimal", []uint16{15, 15}, 16, 10, []uint16{2, 5, 5}},
		{"DecimalToBinary", []uint16{1, 0}, 10, 2, []uint16{1, 0, 1, 0}},
		{"LeadingZerosDropped", []uint16{0, 0, 15, 15}, 16, 10, []uint16{2, 5, 5}},
		{"Zero", []uint16{0}, 16, 62, []uint16{0}},
		{"SameRadix", []uint16{4, 2}, 10, 10, []uint16{4, 2}},
		{"ToBase62", []uint16{6, 2}, 10, 62, []uint16{1, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ConvertRadix(tc.digits, tc.from, tc.to)
			if err != nil {
				t.Fatalf("ConvertRadix failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ConvertRadix mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertRadixRoundTrip(t *testing.T) {
	digits := []uint16{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	to95, err := ConvertRadix(digits, 10, 95)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ConvertRadix(to95, 95, 10)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(digits, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertRadixErrors(t *testing.T) {
	if _, err := ConvertRadix(nil, 10, 2); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := ConvertRadix([]uint16{1}, 1, 2); err == nil {
		t.Error("expected error for radix 1")
	}
	if _, err := ConvertRadix([]uint16{1, 16}, 16, 10); err == nil {
		t.Error("expected error for numeral outside source radix")
	}
}
