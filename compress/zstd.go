package compress

// ZstdCompressor provides Zstandard compression for dataset payloads.
//
// Zstd gives the best ratio of the available codecs and is the right choice
// for archived observation series. Two interchangeable implementations back
// it: the cgo-based gozstd binding when cgo is available, and the pure-Go
// klauspost/compress encoder otherwise. Both emit standard Zstandard frames,
// so payloads written by one build decompress under the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
