package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ednalab/rarecurve/compress"
	"github.com/ednalab/rarecurve/format"
	"github.com/ednalab/rarecurve/internal/hash"
	"github.com/ednalab/rarecurve/internal/options"
	"github.com/ednalab/rarecurve/internal/pool"
)

var (
	// ErrDuplicateSeries indicates two series whose names hash to the same ID.
	ErrDuplicateSeries = errors.New("duplicate series ID")
	// ErrEncoderFinished indicates use of an encoder after Finish.
	ErrEncoderFinished = errors.New("encoder already finished")
	// ErrTooManySeries indicates the container series limit was exceeded.
	ErrTooManySeries = errors.New("too many series for one container")
)

// encoderConfig holds the container-wide encoding choices.
type encoderConfig struct {
	flag headerFlag
}

// EncoderOption is a functional option for the Encoder.
type EncoderOption = options.Option[*encoderConfig]

// WithEncoding sets the preferred count encoding. TypeDelta (the default)
// falls back to raw per series when counts are not exact integers.
func WithEncoding(enc format.EncodingType) EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.flag.Encoding = enc
	})
}

// WithCompression sets the payload compression. The default is none.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.flag.Compression = comp
	})
}

// Encoder packs observation series into a single binary container.
//
// Series are added with Add and the container is produced by Finish; an
// encoder is single-use and not safe for concurrent use.
type Encoder struct {
	cfg      encoderConfig
	codec    compress.Codec
	entries  []indexEntry
	payload  *pool.ByteBuffer
	finished bool
}

// NewEncoder creates a new dataset encoder.
//
// Defaults: delta count encoding, no compression.
//
// Example:
//
//	enc, err := dataset.NewEncoder(
//	    dataset.WithCompression(format.CompressionZstd),
//	)
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := encoderConfig{
		flag: headerFlag{
			Encoding:    format.TypeDelta,
			Compression: format.CompressionNone,
		},
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.flag.validate(); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.flag.Compression)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		cfg:     cfg,
		codec:   codec,
		payload: pool.GetDatasetBuffer(),
	}, nil
}

// Add validates a series and appends it to the container.
//
// The series must satisfy the rarefaction domain invariant (see
// Series.Validate) and its name hash must not collide with a previously
// added series.
func (e *Encoder) Add(s Series) error {
	if e.finished {
		return ErrEncoderFinished
	}
	if len(e.entries) >= maxSeriesCount {
		return ErrTooManySeries
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("series %q: %w", s.Name, err)
	}

	id := s.ID()
	for _, entry := range e.entries {
		if entry.ID == id {
			return fmt.Errorf("%w: %q (id %#x)", ErrDuplicateSeries, s.Name, id)
		}
	}

	encoding := e.cfg.flag.Encoding
	if encoding == format.TypeDelta && !deltaEncodable(s.Counts) {
		encoding = format.TypeRaw
	}

	offset := uint32(e.payload.Len())
	if encoding == format.TypeDelta {
		e.payload.B = appendDeltaCounts(e.payload.B, s.Counts)
	} else {
		e.payload.B = appendRawCounts(e.payload.B, s.Counts)
	}

	e.entries = append(e.entries, indexEntry{
		ID:       id,
		Offset:   offset,
		Count:    uint16(len(s.Counts)),
		Encoding: encoding,
	})

	return nil
}

// Len returns the number of series added so far.
func (e *Encoder) Len() int {
	return len(e.entries)
}

// Finish compresses the payload, assembles the container and releases the
// encoder's internal buffer. The encoder cannot be reused afterwards.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, ErrEncoderFinished
	}
	e.finished = true
	defer func() {
		pool.PutDatasetBuffer(e.payload)
		e.payload = nil
	}()

	compressed, err := e.codec.Compress(e.payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("payload compression failed: %w", err)
	}

	out := make([]byte, 0, headerSize+len(e.entries)*indexEntrySize+len(compressed))

	out = binary.LittleEndian.AppendUint32(out, MagicV1)
	out = append(out, byte(e.cfg.flag.Encoding), byte(e.cfg.flag.Compression))
	out = binary.LittleEndian.AppendUint16(out, uint16(len(e.entries)))
	out = binary.LittleEndian.AppendUint32(out, uint32(e.payload.Len()))
	out = binary.LittleEndian.AppendUint64(out, hash.Checksum(compressed))

	for _, entry := range e.entries {
		out = binary.LittleEndian.AppendUint64(out, entry.ID)
		out = binary.LittleEndian.AppendUint32(out, entry.Offset)
		out = binary.LittleEndian.AppendUint16(out, entry.Count)
		out = append(out, byte(entry.Encoding), 0)
	}

	out = append(out, compressed...)

	return out, nil
}
