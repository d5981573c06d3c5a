package stream

import (
	"fmt"
	"io"

	"github.com/arloliu/endio/endian"
)

// ReadOrdered reads count elements of size bytes each from r into data,
// converting from the byte order of engine to host order.
//
// Each element is read directly into its destination slot and, when the
// source order differs from the host order, swapped in place before the next
// element is read. No intermediate buffer is involved.
//
// A count of zero is a no-op success. On a short read the transfer stops
// immediately: data holds every element before the failing one, and the
// remainder of the buffer must be treated as untouched.
//
// Parameters:
//   - r: Source stream (binary, sequential)
//   - data: Destination bytes, at least count*size long
//   - count: Number of elements to read
//   - size: Element width in bytes
//   - engine: Byte order of the incoming stream
//
// Returns:
//   - error: nil on success; an errs sentinel for invalid arguments, or the
//     wrapped stream error (io.EOF / io.ErrUnexpectedEOF on short reads)
func ReadOrdered(r io.Reader, data []byte, count, size int, engine endian.EndianEngine) error {
	if err := validate(r == nil, data, count, size); err != nil {
		return err
	}

	if count == 0 {
		return nil
	}

	swapNeeded := !endian.CompareNativeEndian(engine)

	for i := range count {
		elem := data[i*size : (i+1)*size]
		if _, err := io.ReadFull(r, elem); err != nil {
			return fmt.Errorf("read failed at element %d: %w", i, err)
		}
		if swapNeeded {
			endian.Convert(elem)
		}
	}

	return nil
}

// ReadBE reads count big-endian elements of size bytes each from r into
// data, converting them to host order.
func ReadBE(r io.Reader, data []byte, count, size int) error {
	return ReadOrdered(r, data, count, size, endian.GetBigEndianEngine())
}

// ReadLE reads count little-endian elements of size bytes each from r into
// data, converting them to host order.
func ReadLE(r io.Reader, data []byte, count, size int) error {
	return ReadOrdered(r, data, count, size, endian.GetLittleEndianEngine())
}
