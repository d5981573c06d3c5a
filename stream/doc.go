// Package stream implements the batched transfer loop for endian-aware
// serialization of fixed-width elements over sequential byte streams.
//
// The package operates on raw byte buffers: a buffer of count elements, each
// exactly size bytes, is written to (or read from) an io.Writer (io.Reader)
// in the byte order selected by an endian.EndianEngine. Byte swapping happens
// only when the requested order differs from the host's native order:
//
//   - Write, matching order: one direct bulk write of the caller's bytes.
//   - Write, differing order: elements are copied into a pooled scratch
//     buffer, swapped in place, and flushed chunk by chunk. The caller's
//     buffer is never mutated, memory stays bounded, and the number of
//     stream operations is one per chunk rather than one per element.
//   - Read: each element is read directly into the destination and swapped
//     in place when needed; no staging is required since the destination is
//     wholly owned by the call.
//
// Every operation is a self-contained synchronous transaction: no state
// persists across calls, and failures are reported through the returned
// error, never retried internally. A short write or read is terminal for
// that call; the stream position afterwards reflects some whole number of
// completed elements, and on a failed read the destination is filled only
// up to the failing element.
//
// Concurrent calls on distinct streams and buffers are safe. Serializing
// access to a shared stream or buffer is the caller's responsibility.
//
// The wire format is bare: count elements of size bytes each, concatenated
// with no framing, length prefix, or padding. Callers must know count and
// size out-of-band.
//
// Most callers should prefer the typed generic entry points in the root
// endio package; this package is the byte-level engine beneath them.
package stream
