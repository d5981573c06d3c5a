package stream

import (
	"fmt"
	"io"

	"github.com/arloliu/endio/endian"
	"github.com/arloliu/endio/errs"
	"github.com/arloliu/endio/internal/pool"
)

// WriteOrdered writes count elements of size bytes each from data to w in the
// byte order of engine.
//
// When the requested order matches the host order, the caller's bytes are
// written verbatim in a single bulk write. Otherwise elements are staged
// through a bounded scratch buffer, byte swapped, and flushed in chunks;
// data is never mutated either way.
//
// A count of zero is a no-op success. A short write at any point aborts the
// transfer; the stream then holds some whole number of complete elements.
//
// Parameters:
//   - w: Destination stream (binary, sequential)
//   - data: Source bytes, at least count*size long
//   - count: Number of elements to write
//   - size: Element width in bytes
//   - engine: Byte order of the produced stream
//
// Returns:
//   - error: nil on success; an errs sentinel for invalid arguments, or the
//     wrapped stream error (io.ErrShortWrite for silent short writes)
func WriteOrdered(w io.Writer, data []byte, count, size int, engine endian.EndianEngine) error {
	if err := validate(w == nil, data, count, size); err != nil {
		return err
	}

	if count == 0 {
		return nil
	}

	if !endian.CompareNativeEndian(engine) {
		return writeSwapped(w, data, count, size)
	}

	// Fast path: requested order equals host order, write the caller's
	// bytes verbatim.
	total := count * size
	n, err := w.Write(data[:total])
	if err != nil {
		return fmt.Errorf("bulk write failed: %w", err)
	}
	if n != total {
		return fmt.Errorf("bulk write: %w", io.ErrShortWrite)
	}

	return nil
}

// WriteBE writes count elements of size bytes each from data to w in
// big-endian byte order.
func WriteBE(w io.Writer, data []byte, count, size int) error {
	return WriteOrdered(w, data, count, size, endian.GetBigEndianEngine())
}

// WriteLE writes count elements of size bytes each from data to w in
// little-endian byte order.
func WriteLE(w io.Writer, data []byte, count, size int) error {
	return WriteOrdered(w, data, count, size, endian.GetLittleEndianEngine())
}

// writeSwapped drives the copy-swap-flush loop for writes whose byte order
// differs from the host order.
//
// The scratch buffer holds a whole number of elements (capacity rounded down
// to a multiple of size, minimum one element) and is returned to the pool on
// every exit path.
func writeSwapped(w io.Writer, data []byte, count, size int) error {
	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	// Oversized elements force the buffer up to a single-element chunk.
	if buf.Cap() < size {
		buf.Grow(size)
	}
	chunkElems := buf.Cap() / size

	for offset := 0; offset < count; {
		batch := min(count-offset, chunkElems)
		chunk := buf.Slice(0, batch*size)

		for i := range batch {
			elem := chunk[i*size : (i+1)*size]
			src := (offset + i) * size
			copy(elem, data[src:src+size])
			endian.Convert(elem)
		}

		n, err := w.Write(chunk)
		if err != nil {
			return fmt.Errorf("chunk write failed at element %d: %w", offset, err)
		}
		if n != len(chunk) {
			return fmt.Errorf("chunk write at element %d: %w", offset, io.ErrShortWrite)
		}

		offset += batch
	}

	return nil
}

// validate applies the shared argument checks for ordered transfers.
//
// A zero count is accepted as a trivial no-op on both the write and read
// paths; the data buffer is only inspected when there is something to move.
func validate(streamNil bool, data []byte, count, size int) error {
	if streamNil {
		return errs.ErrNilStream
	}
	if size <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidElementSize, size)
	}
	if count < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCount, count)
	}
	if count == 0 {
		return nil
	}
	if data == nil {
		return errs.ErrNilBuffer
	}
	if len(data) < count*size {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, count*size, len(data))
	}

	return nil
}
