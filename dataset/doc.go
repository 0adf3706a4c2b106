// Package dataset provides a compact binary container for rarefaction
// observation series.
//
// The surrounding sampling pipeline produces one cumulative-species-count
// sequence per survey site; this package packs any number of those sequences
// into a single self-describing byte blob for storage or transport, and
// restores them on the consuming side where they feed curvefit.Fit directly.
//
// # Container Layout
//
// A container is little-endian throughout:
//
//	header:  magic, payload encoding, compression, series count,
//	         uncompressed payload size, xxHash64 payload checksum
//	index:   one fixed-size entry per series (xxHash64 of the series name,
//	         payload offset, observation count, per-series encoding)
//	payload: all series payloads concatenated, compressed as one block
//
// Series are identified by the xxHash64 of their name; original name strings
// are not stored.
//
// # Count Encoding
//
// Cumulative species counts are almost always small non-decreasing integers,
// so the default TypeDelta encoding stores each series as zigzag-varint
// deltas, which compress extremely well. A series containing fractional
// counts (e.g. coverage-weighted estimates) falls back to raw float64 for
// that series alone; the index entry records the per-series choice.
//
// # Basic Usage
//
//	enc, _ := dataset.NewEncoder(dataset.WithCompression(format.CompressionZstd))
//	_ = enc.Add(dataset.Series{Name: "site-a/edna-2026", Counts: counts})
//	data, _ := enc.Finish()
//
//	dec, _ := dataset.NewDecoder(data)
//	counts, ok := dec.CountsByName("site-a/edna-2026")
//	result := curvefit.Fit(counts, curvefit.ModelMichaelisMenten)
package dataset
