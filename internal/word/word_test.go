package word

import "testing"

func TestPopCount(t *testing.T) {
	tests := []struct {
		w        Word
		expected int
	}{
		{Empty, 0},
		{AllBits, 64},
		{Word(1), 1},
		{Word(5), 2},
		{Word(1) << 63, 1},
		{Word(0xFF00FF00FF00FF00), 32},
	}

	for _, tt := range tests {
		if got := tt.w.PopCount(); got != tt.expected {
			t.Errorf("PopCount(%#x) = %d, expected %d", uint64(tt.w), got, tt.expected)
		}
	}
}

func TestContainsSetClear(t *testing.T) {
	w := Empty
	for _, bit := range []int{0, 7, 31, 63} {
		if w.Contains(bit) {
			t.Errorf("empty word contains bit %d", bit)
		}
		w = w.Set(bit)
		if !w.Contains(bit) {
			t.Errorf("bit %d not set after Set", bit)
		}
	}
	if w.PopCount() != 4 {
		t.Errorf("expected popcount 4, got %d", w.PopCount())
	}

	w = w.Clear(31)
	if w.Contains(31) {
		t.Errorf("bit 31 still set after Clear")
	}
	if w.PopCount() != 3 {
		t.Errorf("expected popcount 3, got %d", w.PopCount())
	}

	// Setting an already-set bit is a no-op.
	if before := w.Set(0); before != w.Set(0).Set(0) {
		t.Errorf("Set is not idempotent")
	}
}

func TestComplement(t *testing.T) {
	if Empty.Complement() != AllBits {
		t.Errorf("complement of empty is not all bits")
	}
	if AllBits.Complement() != Empty {
		t.Errorf("complement of all bits is not empty")
	}
	w := Word(0x00FF)
	if got := w.Complement().Complement(); got != w {
		t.Errorf("double complement changed word: %#x", uint64(got))
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		lo, hi   int
		expected Word
	}{
		{0, 0, Empty},
		{64, 64, Empty},
		{0, 64, AllBits},
		{0, 1, Word(1)},
		{0, 4, Word(0xF)},
		{4, 8, Word(0xF0)},
		{63, 64, Word(1) << 63},
		{8, 8, Empty},
	}

	for _, tt := range tests {
		if got := Range(tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Range(%d, %d) = %#x, expected %#x", tt.lo, tt.hi, uint64(got), uint64(tt.expected))
		}
	}

	// Every range mask has exactly hi-lo bits.
	for lo := 0; lo <= 64; lo += 7 {
		for hi := lo; hi <= 64; hi += 9 {
			if got := Range(lo, hi).PopCount(); got != hi-lo {
				t.Errorf("Range(%d, %d) popcount = %d, expected %d", lo, hi, got, hi-lo)
			}
		}
	}
}

func TestPrefix(t *testing.T) {
	for n := 0; n <= 64; n++ {
		p := Prefix(n)
		if p != Range(0, n) {
			t.Errorf("Prefix(%d) != Range(0, %d)", n, n)
		}
		if p.PopCount() != n {
			t.Errorf("Prefix(%d) popcount = %d", n, p.PopCount())
		}
	}
}

func TestCombinators(t *testing.T) {
	a := Word(0b1100)
	b := Word(0b1010)

	if got := And(a, b); got != 0b1000 {
		t.Errorf("And = %#b", uint64(got))
	}
	if got := Or(a, b); got != 0b1110 {
		t.Errorf("Or = %#b", uint64(got))
	}
	if got := Xor(a, b); got != 0b0110 {
		t.Errorf("Xor = %#b", uint64(got))
	}
	if got := AndNot(a, b); got != 0b0100 {
		t.Errorf("AndNot = %#b", uint64(got))
	}

	// AndNot against empty must vanish on the zero side.
	if AndNot(Empty, a) != Empty {
		t.Errorf("AndNot(0, a) != 0")
	}
	if And(a, Empty) != Empty {
		t.Errorf("And(a, 0) != 0")
	}
}
