// Package word provides the fixed-width bitmask unit underlying packbits.
//
// A Word covers 64 consecutive bit offsets. Bit i of the pattern corresponds
// to the integer value i relative to the word's base offset. All operations
// are pure value operations; a Word is never mutated in place.
//
// Bit offsets passed to Contains, Set, Clear, Range and Prefix must be in
// range for the word width. Offsets are caller-guaranteed; out-of-range
// offsets are a programmer error, not a recoverable condition.
package word
