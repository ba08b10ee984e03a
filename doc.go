// Package packbits provides a dense set of nonnegative integers backed by a
// packed array of 64-bit words.
//
// A BitSet stores membership as raw bit storage and maintains an exact
// cardinality alongside it, so Count is O(1) at all times. Storage is kept
// in canonical form (no trailing all-zero word), which makes structural
// equality a word-wise comparison.
//
// # Quick Start
//
//	s := packbits.FromRange(0, 130)   // {0, 1, ..., 129}
//	s.Insert(1000)
//	s.Contains(64)                    // true
//	s.Count()                         // 131
//
//	a := packbits.FromInts(1, 5, 9)
//	b := packbits.FromInts(5, 9, 13)
//	a.Intersect(b)                    // {5, 9}
//	a.Union(b)                        // {1, 5, 9, 13}
//
// # Construction
//
// Sets can be built empty (New), from raw machine words (FromWords), from a
// contiguous range (FromRange, O(1) cardinality, no per-bit pass), from
// explicit values (FromInts strict, FromValidInts lenient), from any dense
// word-backed collaborator (FromWordSource), or from a roaring bitmap
// (FromRoaring).
//
// # Contract
//
// Only nonnegative integers are representable. Supplying a negative value
// to Insert, FromInts or FromRange is a caller contract violation and
// panics before any visible state changes; Contains and Remove simply
// report absence.
//
// A BitSet is a single-owner mutable value: it is not safe for concurrent
// mutation, and Clone produces a fully independent copy.
//
// # Serialization
//
// WriteTo and ReadFrom implement io.WriterTo and io.ReaderFrom with a
// little-endian word frame. WriteSnapshot and ReadSnapshot wrap the same
// frame with optional zstd or lz4 compression.
package packbits
