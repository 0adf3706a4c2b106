package dataset

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/ednalab/rarecurve/format"
)

// ErrCorruptPayload indicates a series payload that cannot be decoded.
var ErrCorruptPayload = errors.New("corrupt series payload")

// maxExactInt is the largest float64 magnitude guaranteed to hold an exact
// integer (2^53); counts above it cannot round-trip through int64 deltas.
const maxExactInt = 1 << 53

// deltaEncodable reports whether every count is an exactly representable
// non-negative integer, the precondition for lossless delta encoding.
func deltaEncodable(counts []float64) bool {
	for _, c := range counts {
		if c != math.Trunc(c) || c < 0 || c > maxExactInt {
			return false
		}
	}

	return true
}

// appendDeltaCounts appends the series as zigzag-varint deltas: the first
// count as-is, then successive differences. Rarefaction deltas are the small
// per-sample species gains, so most encode in a single byte.
func appendDeltaCounts(dst []byte, counts []float64) []byte {
	prev := int64(0)
	for i, c := range counts {
		v := int64(c)
		if i == 0 {
			dst = binary.AppendVarint(dst, v)
		} else {
			dst = binary.AppendVarint(dst, v-prev)
		}
		prev = v
	}

	return dst
}

// appendRawCounts appends the series as little-endian float64 bits.
func appendRawCounts(dst []byte, counts []float64) []byte {
	for _, c := range counts {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(c))
	}

	return dst
}

// decodeCounts restores count observations from a series payload segment.
func decodeCounts(segment []byte, count int, encoding format.EncodingType) ([]float64, error) {
	switch encoding {
	case format.TypeDelta:
		return decodeDeltaCounts(segment, count)
	case format.TypeRaw:
		return decodeRawCounts(segment, count)
	default:
		return nil, ErrCorruptPayload
	}
}

func decodeDeltaCounts(segment []byte, count int) ([]float64, error) {
	counts := make([]float64, count)
	acc := int64(0)
	pos := 0

	for i := range counts {
		v, n := binary.Varint(segment[pos:])
		if n <= 0 {
			return nil, ErrCorruptPayload
		}
		pos += n
		acc += v
		counts[i] = float64(acc)
	}

	return counts, nil
}

func decodeRawCounts(segment []byte, count int) ([]float64, error) {
	if len(segment) < count*8 {
		return nil, ErrCorruptPayload
	}

	counts := make([]float64, count)
	for i := range counts {
		bits := binary.LittleEndian.Uint64(segment[i*8:])
		counts[i] = math.Float64frombits(bits)
	}

	return counts, nil
}
