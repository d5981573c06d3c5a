package block

import (
	"bytes"
	"fmt"

	"github.com/arloliu/endio/compress"
	"github.com/arloliu/endio/endian"
	"github.com/arloliu/endio/errs"
	"github.com/arloliu/endio/internal/options"
	"github.com/arloliu/endio/stream"
)

// Decoder restores arrays of fixed-width elements from blocks produced by a
// matching Encoder.
//
// A Decoder is immutable after construction and safe for concurrent use. It
// must be configured with the same byte order and compression type the
// encoder used; blocks are not self-describing.
type Decoder struct {
	engine endian.EndianEngine
	codec  compress.Codec
}

// NewDecoder creates a Decoder for blocks encoded in the byte order of
// engine.
//
// Parameters:
//   - engine: Byte order of the encoded payload
//   - opts: Optional configuration, e.g. WithCompression
//
// Returns:
//   - *Decoder: A ready-to-use decoder
//   - error: Invalid option error
func NewDecoder(engine endian.EndianEngine, opts ...Option) (*Decoder, error) {
	cfg := defaultSettings()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Decoder{engine: engine, codec: codec}, nil
}

// Decode decompresses blk and restores count elements of size bytes each to
// host byte order.
//
// The returned slice is newly allocated and owned by the caller. A count of
// zero yields nil. Decoding fails if the decompressed payload holds fewer
// than count*size bytes.
func (d *Decoder) Decode(blk []byte, count, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidElementSize, size)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCount, count)
	}
	if count == 0 {
		return nil, nil
	}

	payload, err := d.codec.Decompress(blk)
	if err != nil {
		return nil, fmt.Errorf("block decompression failed: %w", err)
	}

	if len(payload) < count*size {
		return nil, fmt.Errorf("%w: block payload holds %d bytes, need %d",
			errs.ErrBufferTooSmall, len(payload), count*size)
	}

	data := make([]byte, count*size)
	if err := stream.ReadOrdered(bytes.NewReader(payload), data, count, size, d.engine); err != nil {
		return nil, err
	}

	return data, nil
}
