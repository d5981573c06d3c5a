// Package compress provides compression and decompression codecs for endio
// ordered blocks.
//
// Compression is applied at the block level, after the numeric payload has
// been laid out in its target byte order. Arrays of fixed-width values in a
// uniform byte order compress well under general-purpose algorithms, so the
// block codec offers a choice:
//
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// All codecs operate on whole byte slices; there is no streaming mode. The
// Zstd codec uses the cgo-backed gozstd library when cgo is available and
// falls back to the pure-Go klauspost implementation otherwise; the two
// produce interoperable Zstandard frames.
//
// All codec instances are stateless and safe for concurrent use; internal
// encoder and decoder state is pooled per call.
package compress
