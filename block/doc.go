// Package block implements an in-memory codec for whole arrays of
// fixed-width numeric elements: the array's bytes are laid out in a chosen
// byte order and optionally compressed into a single self-contained block.
//
// A block carries no header, framing, or checksum. The element count,
// element size, byte order, and compression type must travel out-of-band;
// the decoder is configured with the same parameters the encoder used.
//
// Typical usage goes through the generic Marshal and Unmarshal helpers in
// the root endio package. This package is the byte-level implementation:
//
//	enc, err := block.NewEncoder(endian.GetBigEndianEngine(),
//	    block.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	blk, err := enc.Encode(data, count, size)
//
// Encoders and decoders are immutable after construction and safe for
// concurrent use.
package block
