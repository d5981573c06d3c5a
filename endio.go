// Package endio provides endian-aware binary serialization of fixed-width
// numeric arrays to and from sequential byte streams.
//
// Given a slice of numeric values and a target byte order, endio writes the
// values to an io.Writer in that order; given a stream of bytes in a stated
// order, it reads the values back correctly regardless of the host machine's
// native byte order. Byte swapping happens only when the requested order
// differs from the host order, and writes are batched through a bounded
// scratch buffer so large arrays cost one stream operation per chunk rather
// than one per element.
//
// # Basic Usage
//
// Writing and reading a slice in big-endian order:
//
//	import "github.com/arloliu/endio"
//
//	values := []uint32{0x11223344, 0x55667788, 0x99AABBCC}
//	if err := endio.WriteBE(w, values); err != nil {
//	    return err
//	}
//
//	restored := make([]uint32, 3)
//	if err := endio.ReadBE(r, restored); err != nil {
//	    return err
//	}
//
// All fixed-width numeric types share one generic implementation: unsigned
// and signed 8/16/32/64-bit integers plus float32 and float64, expressed by
// the Numeric constraint. Floats are moved by their raw IEEE 754 bits.
//
// The produced wire format is bare: the elements' bytes, concatenated with
// no framing, length prefix, or padding. The element count and width must be
// known to the reader out-of-band.
//
// # Blocks
//
// Marshal and Unmarshal serialize a whole slice into a single in-memory
// block, optionally compressed:
//
//	blk, err := endio.Marshal(values, endian.GetLittleEndianEngine(),
//	    block.WithCompression(format.CompressionZstd))
//
// # Package Structure
//
// This package provides generic typed wrappers around the byte-level
// machinery. For finer control use the subpackages directly: endian for
// host-order detection and swap primitives, stream for the batched transfer
// loop over raw bytes, block and compress for the block codec.
package endio

import (
	"io"
	"unsafe"

	"github.com/arloliu/endio/block"
	"github.com/arloliu/endio/endian"
	"github.com/arloliu/endio/stream"
)

// Numeric constrains the element types endio can serialize: every
// fixed-width integer and floating-point type.
type Numeric interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// Write writes values to w in the byte order of engine.
//
// An empty slice is a no-op success. The slice is never mutated.
func Write[T Numeric](w io.Writer, values []T, engine endian.EndianEngine) error {
	return stream.WriteOrdered(w, asBytes(values), len(values), elemSize[T](), engine)
}

// Read reads len(values) elements from r into values, converting from the
// byte order of engine to host order.
//
// An empty slice is a no-op success. On a short read, values holds every
// element before the failing one; the remainder must be treated as
// untouched.
func Read[T Numeric](r io.Reader, values []T, engine endian.EndianEngine) error {
	return stream.ReadOrdered(r, asBytes(values), len(values), elemSize[T](), engine)
}

// WriteBE writes values to w in big-endian byte order.
func WriteBE[T Numeric](w io.Writer, values []T) error {
	return Write(w, values, endian.GetBigEndianEngine())
}

// WriteLE writes values to w in little-endian byte order.
func WriteLE[T Numeric](w io.Writer, values []T) error {
	return Write(w, values, endian.GetLittleEndianEngine())
}

// ReadBE reads len(values) big-endian elements from r into values.
func ReadBE[T Numeric](r io.Reader, values []T) error {
	return Read(r, values, endian.GetBigEndianEngine())
}

// ReadLE reads len(values) little-endian elements from r into values.
func ReadLE[T Numeric](r io.Reader, values []T) error {
	return Read(r, values, endian.GetLittleEndianEngine())
}

// Marshal serializes values into a single block in the byte order of engine,
// optionally compressed via block.WithCompression.
//
// The returned slice is newly allocated and owned by the caller. An empty
// input yields an empty block.
func Marshal[T Numeric](values []T, engine endian.EndianEngine, opts ...block.Option) ([]byte, error) {
	enc, err := block.NewEncoder(engine, opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(asBytes(values), len(values), elemSize[T]())
}

// Unmarshal restores count elements from a block produced by Marshal with
// the same engine and options.
func Unmarshal[T Numeric](blk []byte, count int, engine endian.EndianEngine, opts ...block.Option) ([]T, error) {
	dec, err := block.NewDecoder(engine, opts...)
	if err != nil {
		return nil, err
	}

	data, err := dec.Decode(blk, count, elemSize[T]())
	if err != nil {
		return nil, err
	}

	values := make([]T, count)
	copy(asBytes(values), data)

	return values, nil
}

// elemSize returns the width of T in bytes.
func elemSize[T Numeric]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// asBytes reinterprets a numeric slice as its raw in-memory bytes without
// copying. The view is writable: reads through it fill the caller's slice.
func asBytes[T Numeric](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*elemSize[T]())
}
