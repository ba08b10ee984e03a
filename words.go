package packbits

// WordSource is the capability a dense word-backed collaborator exposes so
// a set can be derived from it in O(word count) instead of per-bit
// iteration. Words returns the backing 64-bit words, lowest bit range
// first; the slice must be treated as read-only.
//
// BitSet itself implements WordSource.
type WordSource interface {
	Words() []uint64
}

// FromWordSource creates a set from any dense word-backed collaborator,
// such as a bit array, by reinterpreting its backing words. The conversion
// is lossy: any length or padding information beyond the highest set bit
// is discarded by the canonical trim.
func FromWordSource(src WordSource) *BitSet {
	return FromWords(src.Words())
}
