package compress

// ZstdCompressor provides Zstandard compression for archive payloads.
//
// Zstd favors compression ratio over speed, making it the right choice for
// cold storage of waveform archives and for network transfer of large event
// datasets. Low-gain station data with long quiet stretches compresses
// particularly well.
//
// Two implementations are selected at build time: the cgo build uses the
// libzstd bindings, the pure-Go build uses klauspost/compress/zstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
