//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// zstdLevel is the default compression level; level 3 balances ratio and
// speed for small count payloads.
const zstdLevel = 3

// Compress compresses the input data using the cgo Zstandard binding.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses a Zstd frame using the cgo Zstandard binding.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
