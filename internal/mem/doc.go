// Package mem provides single-pass buffer construction primitives.
//
// A Buffer is a fixed-capacity region with an initialized-prefix watermark:
// slots below the watermark hold values, slots above it are untouched. The
// watermark only moves forward through Append, AppendSlice and MoveFrom, so
// a result can be streamed into one allocation without a redundant
// zero-fill-then-overwrite pass and without reading any slot before it has
// been written.
//
// Capacity violations and use after Take panic: they are contract
// violations by the caller, not recoverable conditions.
package mem
