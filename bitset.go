package packbits

import (
	"github.com/hupe1980/packbits/internal/mem"
	"github.com/hupe1980/packbits/internal/word"
)

// BitSet is a set of nonnegative integers backed by packed 64-bit words.
// Word i covers the values [i*64, (i+1)*64). The cardinality is maintained
// incrementally alongside the bit storage, and the storage is kept
// canonical: it never ends in an all-zero word. Interior all-zero words are
// permitted (they arise naturally, e.g. from Difference).
type BitSet struct {
	words []word.Word
	count int
}

// New creates an empty set.
func New() *BitSet {
	return &BitSet{}
}

// FromWords creates a set from raw machine-word values. words[0] covers the
// values [0, 64), words[1] the values [64, 128), and so on. Trailing
// all-zero words are trimmed.
func FromWords(words []uint64) *BitSet {
	b := &BitSet{words: make([]word.Word, len(words))}
	for i, w := range words {
		b.words[i] = word.Word(w)
		b.count += b.words[i].PopCount()
	}
	b.trim()
	return b
}

// FromRange creates the set of all values in [lo, hi). Storage is built
// directly: fully covered interior words are AllBits and the two boundary
// words are synthesized from prefix masks, so the cardinality is hi-lo with
// no popcount pass. Panics if lo is negative or lo > hi.
func FromRange(lo, hi int) *BitSet {
	if lo < 0 {
		panic("packbits: FromRange with negative bound")
	}
	if lo > hi {
		panic("packbits: FromRange with inverted bounds")
	}
	if lo == hi {
		return New()
	}

	loWord := lo / word.Bits
	hiWord := (hi - 1) / word.Bits

	buf := mem.NewBuffer[word.Word](hiWord + 1)
	for i := 0; i < loWord; i++ {
		buf.Append(word.Empty)
	}
	if loWord == hiWord {
		buf.Append(word.Range(lo%word.Bits, (hi-1)%word.Bits+1))
	} else {
		buf.Append(word.Prefix(lo % word.Bits).Complement())
		for i := loWord + 1; i < hiWord; i++ {
			buf.Append(word.AllBits)
		}
		buf.Append(word.Prefix((hi-1)%word.Bits + 1))
	}

	// The last word covers hi-1, so the storage is canonical as built.
	return &BitSet{words: buf.Take(), count: hi - lo}
}

// FromInts creates a set from explicit values. Panics on any negative
// value. For input that may contain invalid members, use FromValidInts.
func FromInts(values ...int) *BitSet {
	b := New()
	for _, v := range values {
		b.Insert(v)
	}
	return b
}

// FromValidInts creates a set from the valid members of values, silently
// discarding negatives. The lenient counterpart of FromInts, kept as a
// separately named constructor so call sites state which behavior they get.
func FromValidInts(values ...int) *BitSet {
	b := New()
	for _, v := range values {
		if v >= 0 {
			b.Insert(v)
		}
	}
	return b
}

// Insert adds v to the set. Reports whether v was newly inserted.
// Panics if v is negative.
func (b *BitSet) Insert(v int) bool {
	if v < 0 {
		panic("packbits: Insert with negative value")
	}

	idx := v / word.Bits
	bit := v % word.Bits

	if idx >= len(b.words) {
		b.grow(idx + 1)
	}
	if b.words[idx].Contains(bit) {
		return false
	}

	b.words[idx] = b.words[idx].Set(bit)
	b.count++
	return true
}

// Remove deletes v from the set. Reports whether v was present. Negative
// or out-of-range values are never present and report false.
func (b *BitSet) Remove(v int) bool {
	if v < 0 {
		return false
	}

	idx := v / word.Bits
	bit := v % word.Bits

	if idx >= len(b.words) || !b.words[idx].Contains(bit) {
		return false
	}

	b.words[idx] = b.words[idx].Clear(bit)
	b.count--
	if idx == len(b.words)-1 {
		b.trim()
	}
	return true
}

// Contains reports whether v is a member. Negative and out-of-range values
// report false. O(1).
func (b *BitSet) Contains(v int) bool {
	if v < 0 {
		return false
	}
	idx := v / word.Bits
	return idx < len(b.words) && b.words[idx].Contains(v%word.Bits)
}

// Count returns the number of members. O(1).
func (b *BitSet) Count() int {
	return b.count
}

// IsEmpty reports whether the set has no members.
func (b *BitSet) IsEmpty() bool {
	return b.count == 0
}

// Clone returns an independent copy. Neither set observes the other's
// subsequent mutations.
func (b *BitSet) Clone() *BitSet {
	if len(b.words) == 0 {
		return &BitSet{count: b.count}
	}
	cloned := &BitSet{
		words: make([]word.Word, len(b.words)),
		count: b.count,
	}
	copy(cloned.words, b.words)
	return cloned
}

// Equal reports whether both sets have identical membership. Canonical
// storage makes this a word-wise comparison.
func (b *BitSet) Equal(other *BitSet) bool {
	if b.count != other.count || len(b.words) != len(other.words) {
		return false
	}
	for i, w := range b.words {
		if other.words[i] != w {
			return false
		}
	}
	return true
}

// Words returns the backing machine words, lowest bit range first. The
// returned slice is a copy; the highest word, if any, is nonzero.
func (b *BitSet) Words() []uint64 {
	if len(b.words) == 0 {
		return nil
	}
	out := make([]uint64, len(b.words))
	for i, w := range b.words {
		out[i] = uint64(w)
	}
	return out
}

// Validate recomputes the population and canonical length from storage and
// reports any disagreement with the cached state. A non-nil result means
// the implementation corrupted an invariant, not that the caller misused
// the set.
func (b *BitSet) Validate() error {
	pop := 0
	for _, w := range b.words {
		pop += w.PopCount()
	}
	if pop != b.count {
		return &ErrCountMismatch{Cached: b.count, Actual: pop}
	}
	if n := len(b.words); n > 0 && b.words[n-1] == word.Empty {
		return &ErrNotCanonical{WordCount: n}
	}
	return nil
}

// grow extends storage to n words, doubling capacity so that repeated
// single inserts stay amortized O(1). Slots beyond the previous length are
// zero: fresh allocations are zero-filled and trim only ever cuts words
// that are already Empty.
func (b *BitSet) grow(n int) {
	if n <= cap(b.words) {
		b.words = b.words[:n]
		return
	}
	newCap := 2 * cap(b.words)
	if newCap < n {
		newCap = n
	}
	grown := make([]word.Word, n, newCap)
	copy(grown, b.words)
	b.words = grown
}

// trim restores canonical form by dropping the run of trailing Empty words.
func (b *BitSet) trim() {
	n := len(b.words)
	for n > 0 && b.words[n-1] == word.Empty {
		n--
	}
	if n == 0 {
		b.words = b.words[:0]
		return
	}
	b.words = b.words[:n]
}
