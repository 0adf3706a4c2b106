package dataset

import (
	"testing"

	"github.com/ednalab/rarecurve/format"
	"github.com/stretchr/testify/require"
)

func TestDeltaEncodable(t *testing.T) {
	require.True(t, deltaEncodable([]float64{0, 3, 7, 12, 12}))
	require.False(t, deltaEncodable([]float64{0, 3.5, 7}))
	require.False(t, deltaEncodable([]float64{-1, 0, 3}))
	require.False(t, deltaEncodable([]float64{1e16}))
}

func TestDeltaCounts_RoundTrip(t *testing.T) {
	counts := []float64{3, 7, 12, 12, 15, 15, 15, 40}

	encoded := appendDeltaCounts(nil, counts)
	decoded, err := decodeDeltaCounts(encoded, len(counts))

	require.NoError(t, err)
	require.Equal(t, counts, decoded)

	// Small rarefaction deltas encode in one byte each.
	require.LessOrEqual(t, len(encoded), len(counts)+1)
}

func TestRawCounts_RoundTrip(t *testing.T) {
	counts := []float64{0.5, 3.25, 7.125, 1e16}

	encoded := appendRawCounts(nil, counts)
	decoded, err := decodeRawCounts(encoded, len(counts))

	require.NoError(t, err)
	require.Equal(t, counts, decoded)
}

func TestDecodeCounts_Truncated(t *testing.T) {
	counts := []float64{3, 7, 12}

	delta := appendDeltaCounts(nil, counts)
	_, err := decodeDeltaCounts(delta[:1], len(counts))
	require.ErrorIs(t, err, ErrCorruptPayload)

	raw := appendRawCounts(nil, counts)
	_, err = decodeRawCounts(raw[:10], len(counts))
	require.ErrorIs(t, err, ErrCorruptPayload)
}

func TestDecodeCounts_UnknownEncoding(t *testing.T) {
	_, err := decodeCounts([]byte{1, 2, 3}, 1, format.EncodingType(0xF))
	require.ErrorIs(t, err, ErrCorruptPayload)
}
