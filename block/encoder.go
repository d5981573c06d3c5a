package block

import (
	"bytes"
	"fmt"

	"github.com/arloliu/endio/compress"
	"github.com/arloliu/endio/endian"
	"github.com/arloliu/endio/internal/options"
	"github.com/arloliu/endio/stream"
)

// Encoder turns arrays of fixed-width elements into ordered, optionally
// compressed blocks.
//
// An Encoder is immutable after construction and safe for concurrent use.
type Encoder struct {
	engine endian.EndianEngine
	codec  compress.Codec
}

// NewEncoder creates an Encoder producing blocks in the byte order of
// engine.
//
// Parameters:
//   - engine: Byte order of the encoded payload
//   - opts: Optional configuration, e.g. WithCompression
//
// Returns:
//   - *Encoder: A ready-to-use encoder
//   - error: Invalid option error
func NewEncoder(engine endian.EndianEngine, opts ...Option) (*Encoder, error) {
	cfg := defaultSettings()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Encoder{engine: engine, codec: codec}, nil
}

// Encode serializes count elements of size bytes each from data into a new
// block: the bytes are arranged in the encoder's byte order, then compressed
// with the configured codec.
//
// The input is never mutated. The returned slice is newly allocated and
// owned by the caller. A count of zero yields an empty block.
func (e *Encoder) Encode(data []byte, count, size int) ([]byte, error) {
	var buf bytes.Buffer
	if count > 0 && size > 0 {
		buf.Grow(count * size)
	}

	if err := stream.WriteOrdered(&buf, data, count, size, e.engine); err != nil {
		return nil, err
	}

	if buf.Len() == 0 {
		return nil, nil
	}

	encoded, err := e.codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("block compression failed: %w", err)
	}

	return encoded, nil
}
