package packbits

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/hupe1980/packbits/internal/word"
)

// ForEach calls fn for each member in ascending order. Iteration stops
// early if fn returns false. Zero allocations.
func (b *BitSet) ForEach(fn func(v int) bool) {
	for i, w := range b.words {
		base := i * word.Bits
		for w != word.Empty {
			bit := bits.TrailingZeros64(uint64(w))
			if !fn(base + bit) {
				return
			}
			w &= w - 1
		}
	}
}

// NextSet returns the smallest member >= v, if any. Negative v behaves
// like 0.
func (b *BitSet) NextSet(v int) (int, bool) {
	if v < 0 {
		v = 0
	}

	idx := v / word.Bits
	if idx >= len(b.words) {
		return 0, false
	}

	// Mask off the bits below v in the first word.
	w := b.words[idx] &^ word.Prefix(v%word.Bits)
	for {
		if w != word.Empty {
			return idx*word.Bits + bits.TrailingZeros64(uint64(w)), true
		}
		idx++
		if idx >= len(b.words) {
			return 0, false
		}
		w = b.words[idx]
	}
}

// ToSlice returns all members in ascending order.
func (b *BitSet) ToSlice() []int {
	out := make([]int, 0, b.count)
	b.ForEach(func(v int) bool {
		out = append(out, v)
		return true
	})
	return out
}

// maxStringMembers caps how many members String prints.
const maxStringMembers = 32

// String returns the members in set notation, e.g. "{0, 2, 65}". Large
// sets are elided after maxStringMembers members.
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')

	printed := 0
	b.ForEach(func(v int) bool {
		if printed == maxStringMembers {
			sb.WriteString(", ...")
			return false
		}
		if printed > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
		printed++
		return true
	})

	sb.WriteByte('}')
	return sb.String()
}
