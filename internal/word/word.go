package word

import "math/bits"

// Bits is the number of bit offsets covered by one Word.
const Bits = 64

// Word is a 64-bit bitmask. Bit i set means the value i (relative to the
// word's base offset) is a member.
type Word uint64

const (
	// Empty is the word with no bits set.
	Empty Word = 0
	// AllBits is the word with every bit set.
	AllBits Word = ^Word(0)
)

// PopCount returns the number of set bits.
func (w Word) PopCount() int {
	return bits.OnesCount64(uint64(w))
}

// Contains reports whether the bit at the given offset is set.
// The offset must be in [0, Bits).
func (w Word) Contains(bit int) bool {
	return w&(1<<uint(bit)) != 0
}

// Set returns a copy of w with the bit at the given offset set.
func (w Word) Set(bit int) Word {
	return w | 1<<uint(bit)
}

// Clear returns a copy of w with the bit at the given offset cleared.
func (w Word) Clear(bit int) Word {
	return w &^ (1 << uint(bit))
}

// Complement returns the bitwise negation of w.
func (w Word) Complement() Word {
	return ^w
}

// Range returns a word with exactly the bits in [lo, hi) set.
// Requires 0 <= lo <= hi <= Bits.
func Range(lo, hi int) Word {
	// Shifting by Bits is undefined for uint64, so build the mask from
	// the prefix below hi minus the prefix below lo.
	return Prefix(hi) &^ Prefix(lo)
}

// Prefix returns a word with the bits [0, n) set. Requires 0 <= n <= Bits.
func Prefix(n int) Word {
	if n >= Bits {
		return AllBits
	}
	return Word(1)<<uint(n) - 1
}

// And returns the intersection of two words.
func And(a, b Word) Word { return a & b }

// Or returns the union of two words.
func Or(a, b Word) Word { return a | b }

// Xor returns the symmetric difference of two words.
func Xor(a, b Word) Word { return a ^ b }

// AndNot returns the bits of a that are not in b.
func AndNot(a, b Word) Word { return a &^ b }
