package compress

// ZstdCompressor provides Zstandard compression for stored transmissions.
//
// Zstd favors compression ratio over speed, making it the right choice for
// archived transmission dumps that are decoded infrequently. Two
// implementations are selected at build time: the cgo-backed gozstd binding
// when cgo is available, and the pure-Go klauspost implementation otherwise.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
