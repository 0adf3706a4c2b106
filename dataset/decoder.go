package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"

	"github.com/ednalab/rarecurve/compress"
	"github.com/ednalab/rarecurve/format"
	"github.com/ednalab/rarecurve/internal/hash"
)

var (
	// ErrInvalidMagic indicates data that is not a rarefaction dataset container.
	ErrInvalidMagic = errors.New("invalid container magic")
	// ErrTruncated indicates a container shorter than its header and index claim.
	ErrTruncated = errors.New("truncated container")
	// ErrChecksumMismatch indicates payload corruption.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)

// Decoder restores observation series from a binary container produced by
// Encoder.
//
// NewDecoder validates the header, verifies the payload checksum and
// decompresses the payload once; individual series are decoded lazily on
// access. A Decoder is read-only and safe for concurrent use after creation.
type Decoder struct {
	flag    headerFlag
	entries []indexEntry
	payload []byte
}

// NewDecoder parses and validates a container.
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if binary.LittleEndian.Uint32(data[0:4]) != MagicV1 {
		return nil, ErrInvalidMagic
	}

	flag := headerFlag{
		Encoding:    format.EncodingType(data[4]),
		Compression: format.CompressionType(data[5]),
	}
	if err := flag.validate(); err != nil {
		return nil, err
	}

	seriesCount := int(binary.LittleEndian.Uint16(data[6:8]))
	payloadSize := int(binary.LittleEndian.Uint32(data[8:12]))
	checksum := binary.LittleEndian.Uint64(data[12:20])

	indexEnd := headerSize + seriesCount*indexEntrySize
	if len(data) < indexEnd {
		return nil, ErrTruncated
	}

	compressed := data[indexEnd:]
	if hash.Checksum(compressed) != checksum {
		return nil, ErrChecksumMismatch
	}

	codec, err := compress.GetCodec(flag.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("payload decompression failed: %w", err)
	}
	if len(payload) != payloadSize {
		return nil, fmt.Errorf("%w: payload size %d, header claims %d", ErrCorruptPayload, len(payload), payloadSize)
	}

	entries := make([]indexEntry, seriesCount)
	for i := range entries {
		base := headerSize + i*indexEntrySize
		entries[i] = indexEntry{
			ID:       binary.LittleEndian.Uint64(data[base : base+8]),
			Offset:   binary.LittleEndian.Uint32(data[base+8 : base+12]),
			Count:    binary.LittleEndian.Uint16(data[base+12 : base+14]),
			Encoding: format.EncodingType(data[base+14]),
		}
		if int(entries[i].Offset) > len(payload) {
			return nil, fmt.Errorf("%w: entry %d offset out of range", ErrCorruptPayload, i)
		}
	}

	return &Decoder{flag: flag, entries: entries, payload: payload}, nil
}

// Len returns the number of series in the container.
func (d *Decoder) Len() int {
	return len(d.entries)
}

// IDs returns the series IDs in container order.
func (d *Decoder) IDs() []uint64 {
	ids := make([]uint64, len(d.entries))
	for i, entry := range d.entries {
		ids[i] = entry.ID
	}

	return ids
}

// Counts decodes the series stored under the given ID.
func (d *Decoder) Counts(id uint64) ([]float64, bool) {
	for i, entry := range d.entries {
		if entry.ID == id {
			counts, err := d.decodeEntry(i)
			if err != nil {
				return nil, false
			}

			return counts, true
		}
	}

	return nil, false
}

// CountsByName decodes the series stored under the xxHash64 of name.
func (d *Decoder) CountsByName(name string) ([]float64, bool) {
	return d.Counts(hash.SeriesID(name))
}

// All returns an iterator over every series in container order. Series that
// fail to decode are skipped.
func (d *Decoder) All() iter.Seq[DecodedSeries] {
	return func(yield func(DecodedSeries) bool) {
		for i, entry := range d.entries {
			counts, err := d.decodeEntry(i)
			if err != nil {
				continue
			}
			if !yield(DecodedSeries{ID: entry.ID, Counts: counts}) {
				return
			}
		}
	}
}

// decodeEntry decodes the i-th series from its payload segment. The segment
// runs from the entry's offset to the next entry's offset (entries are laid
// out in container order) or the payload end for the last entry.
func (d *Decoder) decodeEntry(i int) ([]float64, error) {
	entry := d.entries[i]

	end := len(d.payload)
	if i+1 < len(d.entries) {
		end = int(d.entries[i+1].Offset)
	}
	if end < int(entry.Offset) || end > len(d.payload) {
		return nil, ErrCorruptPayload
	}

	return decodeCounts(d.payload[entry.Offset:end], int(entry.Count), entry.Encoding)
}
