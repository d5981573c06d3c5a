// Package errs defines the sentinel errors shared across endio packages.
//
// Callers can use errors.Is to distinguish argument validation failures from
// I/O failures reported by the underlying stream:
//
//	if err := endio.WriteBE(w, values); errors.Is(err, errs.ErrInvalidElementSize) {
//	    // caller bug, not a stream failure
//	}
package errs

import "errors"

var (
	// ErrNilStream is returned when the writer or reader argument is nil.
	ErrNilStream = errors.New("nil stream")

	// ErrNilBuffer is returned when a nil data buffer is supplied with a
	// non-zero element count.
	ErrNilBuffer = errors.New("nil data buffer")

	// ErrInvalidElementSize is returned when the element size is zero or
	// negative.
	ErrInvalidElementSize = errors.New("invalid element size")

	// ErrInvalidCount is returned when the element count is negative.
	ErrInvalidCount = errors.New("invalid element count")

	// ErrBufferTooSmall is returned when the data buffer cannot hold
	// count * size bytes.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidCompression is returned when a compression type is not
	// supported by the block codec.
	ErrInvalidCompression = errors.New("invalid compression type")
)
