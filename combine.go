package packbits

import (
	"github.com/hupe1980/packbits/internal/mem"
	"github.com/hupe1980/packbits/internal/word"
)

// wordOp bundles a per-word combining function with its tail policy, so the
// two cannot be mismatched at a call site. includeTail must be true exactly
// when the function can produce bits from a word paired with Empty: Or and
// Xor keep the longer operand's tail, And and AndNot statically vanish on
// it and never need to look past the shorter operand.
type wordOp struct {
	apply       func(a, b word.Word) word.Word
	includeTail bool
}

var (
	opUnion         = wordOp{apply: word.Or, includeTail: true}
	opIntersection  = wordOp{apply: word.And, includeTail: false}
	opSymmetricDiff = wordOp{apply: word.Xor, includeTail: true}
	opDifference    = wordOp{apply: word.AndNot, includeTail: false}
)

// combine is the engine behind the four set operations. It streams
// op.apply across both operands' words into one pre-sized buffer,
// accumulating the population in the same pass, then trims the zero tail
// with a single backward scan. No intermediate copy, no second counting
// pass, no reallocation for the trim.
func combine(a, b *BitSet, op wordOp) *BitSet {
	shared := min(len(a.words), len(b.words))
	capacity := shared
	if op.includeTail {
		capacity = max(len(a.words), len(b.words))
	}

	buf := mem.NewBuffer[word.Word](capacity)
	count := 0

	for i := 0; i < shared; i++ {
		w := op.apply(a.words[i], b.words[i])
		count += w.PopCount()
		buf.Append(w)
	}
	if op.includeTail {
		// At most one of these loops runs: only the longer operand has
		// words past the shared prefix, and the shorter side is Empty
		// there.
		for i := shared; i < len(a.words); i++ {
			w := op.apply(a.words[i], word.Empty)
			count += w.PopCount()
			buf.Append(w)
		}
		for i := shared; i < len(b.words); i++ {
			w := op.apply(word.Empty, b.words[i])
			count += w.PopCount()
			buf.Append(w)
		}
	}

	// Trimmed words are all zero, so count is unaffected.
	n := buf.Len()
	for n > 0 && buf.At(n-1) == word.Empty {
		n--
	}
	buf.Truncate(n)

	return &BitSet{words: buf.Take(), count: count}
}

// Union returns the set of values in b, other, or both.
func (b *BitSet) Union(other *BitSet) *BitSet {
	return combine(b, other, opUnion)
}

// Intersect returns the set of values in both b and other.
func (b *BitSet) Intersect(other *BitSet) *BitSet {
	return combine(b, other, opIntersection)
}

// Difference returns the set of values in b but not in other.
func (b *BitSet) Difference(other *BitSet) *BitSet {
	return combine(b, other, opDifference)
}

// SymmetricDifference returns the set of values in exactly one of b and
// other.
func (b *BitSet) SymmetricDifference(other *BitSet) *BitSet {
	return combine(b, other, opSymmetricDiff)
}
