package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeriesID_Deterministic(t *testing.T) {
	require.Equal(t, SeriesID("site-a/edna-2026"), SeriesID("site-a/edna-2026"))
	require.NotEqual(t, SeriesID("site-a/edna-2026"), SeriesID("site-b/edna-2026"))
}

func TestChecksum(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}

	require.Equal(t, Checksum(payload), Checksum(payload))
	require.NotEqual(t, Checksum(payload), Checksum(payload[:4]))
	require.Equal(t, Checksum(nil), Checksum([]byte{}))
}
