package dataset

import (
	"fmt"

	"github.com/ednalab/rarecurve/format"
)

const (
	// MagicV1 identifies a version 1 rarefaction dataset container ("RFD1").
	MagicV1 uint32 = 0x52464431

	// headerSize is the fixed byte size of the container header:
	// magic(4) + encoding(1) + compression(1) + seriesCount(2) +
	// payloadSize(4) + checksum(8).
	headerSize = 20

	// indexEntrySize is the fixed byte size of one index entry:
	// id(8) + offset(4) + count(2) + encoding(1) + reserved(1).
	indexEntrySize = 16

	// maxSeriesCount and maxSeriesLength are the uint16 limits of the
	// header and index fields.
	maxSeriesCount  = 0xFFFF
	maxSeriesLength = 0xFFFF
)

// headerFlag holds the container-wide encoding and compression choices
// packed into the header.
type headerFlag struct {
	Encoding    format.EncodingType
	Compression format.CompressionType
}

func (f headerFlag) validate() error {
	switch f.Encoding {
	case format.TypeRaw, format.TypeDelta:
	default:
		return fmt.Errorf("invalid count encoding: %s", f.Encoding)
	}

	switch f.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return fmt.Errorf("invalid payload compression: %s", f.Compression)
	}

	return nil
}

// indexEntry locates one series inside the decompressed payload.
type indexEntry struct {
	// ID is the xxHash64 of the series name.
	ID uint64
	// Offset is the byte offset of the series payload within the
	// decompressed payload section.
	Offset uint32
	// Count is the number of observations in the series.
	Count uint16
	// Encoding is the per-series count encoding. It may differ from the
	// container default: series with fractional counts fall back to raw.
	Encoding format.EncodingType
}
