package dataset

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ednalab/rarecurve/internal/hash"
)

var (
	// ErrEmptySeries indicates a series with no observations.
	ErrEmptySeries = errors.New("series has no observations")
	// ErrSeriesTooLong indicates a series exceeding the container limit.
	ErrSeriesTooLong = errors.New("series exceeds maximum observation count")
	// ErrNegativeCount indicates a negative cumulative count.
	ErrNegativeCount = errors.New("cumulative count is negative")
	// ErrNotMonotonic indicates a cumulative count lower than its predecessor.
	ErrNotMonotonic = errors.New("cumulative counts must be non-decreasing")
)

// Series is one rarefaction observation sequence: the cumulative species
// count after each incremental sample at a single site. The implicit
// x-coordinate of Counts[i] is i+1.
type Series struct {
	// Name identifies the series, e.g. "site-a/edna-2026". Containers store
	// only its xxHash64.
	Name string
	// Counts holds the cumulative species counts in sampling order.
	Counts []float64
}

// ID returns the xxHash64 of the series name, the key it is stored under in
// a container.
func (s Series) ID() uint64 {
	return hash.SeriesID(s.Name)
}

// Validate checks the rarefaction domain invariant: at least one observation,
// no more than the container limit, every count non-negative, and the
// sequence monotonically non-decreasing.
func (s Series) Validate() error {
	if len(s.Counts) == 0 {
		return ErrEmptySeries
	}
	if len(s.Counts) > maxSeriesLength {
		return fmt.Errorf("%w: %d > %d", ErrSeriesTooLong, len(s.Counts), maxSeriesLength)
	}

	prev := 0.0
	for i, c := range s.Counts {
		if c < 0 {
			return fmt.Errorf("%w: counts[%d] = %v", ErrNegativeCount, i, c)
		}
		if c < prev {
			return fmt.Errorf("%w: counts[%d] = %v < %v", ErrNotMonotonic, i, c, prev)
		}
		prev = c
	}

	return nil
}

// All returns an iterator over (1-based sample index, cumulative count)
// pairs.
func (s Series) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, c := range s.Counts {
			if !yield(i+1, c) {
				return
			}
		}
	}
}

// DecodedSeries is a series restored from a container. Only the name hash
// survives encoding; the original name string does not.
type DecodedSeries struct {
	// ID is the xxHash64 of the original series name.
	ID uint64
	// Counts holds the cumulative species counts in sampling order.
	Counts []float64
}
