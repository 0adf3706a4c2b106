// Package rarecurve analyzes species-accumulation (rarefaction) data from
// incremental environmental sampling.
//
// Given an ordered sequence of cumulative species counts, rarecurve fits a
// saturation model to predict how total detectable diversity grows with
// further sampling, and packs observation series into a compact binary
// container for storage and transport.
//
// # Basic Usage
//
// Fitting a curve to observations:
//
//	import "github.com/ednalab/rarecurve"
//
//	counts := []float64{9, 17, 23, 29, 33, 38, 41, 44, 47, 50}
//	result := rarecurve.Fit(counts, "michaelis-menten")
//	if result != nil {
//	    fmt.Printf("%s (R²=%.4f)\n", result.Equation, result.RSquared)
//	}
//
// Packing series for transport:
//
//	enc, _ := rarecurve.NewSeriesEncoder()
//	_ = enc.Add(dataset.Series{Name: "site-a/edna-2026", Counts: counts})
//	data, _ := enc.Finish()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the curvefit
// and dataset packages, simplifying the most common use cases. For
// fine-grained control (typed model tags, curve sampling, encoding and
// compression options), use those packages directly.
package rarecurve

import (
	"github.com/ednalab/rarecurve/curvefit"
	"github.com/ednalab/rarecurve/dataset"
	"github.com/ednalab/rarecurve/internal/hash"
)

// Fit fits the named saturation model ("michaelis-menten" or "logarithmic")
// to a rarefaction series. It returns nil when fitting is not applicable:
// fewer than 3 observations, "none", or an unrecognized model name.
func Fit(counts []float64, model string) *curvefit.FitResult {
	return curvefit.Fit(counts, curvefit.ModelTypeFromString(model))
}

// SeriesID computes the xxHash64 identifier a named series is stored under
// in a dataset container.
func SeriesID(name string) uint64 {
	return hash.SeriesID(name)
}

// NewSeriesEncoder creates a dataset encoder with default settings
// (delta count encoding, no compression).
func NewSeriesEncoder(opts ...dataset.EncoderOption) (*dataset.Encoder, error) {
	return dataset.NewEncoder(opts...)
}

// NewSeriesDecoder parses and validates a dataset container.
func NewSeriesDecoder(data []byte) (*dataset.Decoder, error) {
	return dataset.NewDecoder(data)
}
