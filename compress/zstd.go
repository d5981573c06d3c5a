package compress

// ZstdCompressor provides Zstandard compression for ordered blocks.
//
// Zstd favors compression ratio over speed, making it the right choice when
// serialized arrays are archived or shipped over constrained links and
// decompressed infrequently.
//
// The implementation is selected at build time: the cgo-backed gozstd
// library when cgo is available, the pure-Go klauspost implementation
// otherwise. Both produce standard Zstandard frames and can decompress each
// other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
