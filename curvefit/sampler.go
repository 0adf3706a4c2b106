package curvefit

import (
	"iter"
	"math"
)

const (
	// defaultCurvePoints is the default segment count for SmoothCurve.
	defaultCurvePoints = 100
	// defaultRangePoints is the default segment count for SmoothCurveInRange.
	defaultRangePoints = 50
)

// CurvePoint is a single sampled point of a fitted curve.
type CurvePoint struct {
	// X is the sample index the curve was evaluated at.
	X float64
	// Y is the model formula evaluated at X.
	Y float64
	// YUpper and YLower bound the confidence band at X; only meaningful when
	// HasBand is true. YLower is floored at zero.
	YUpper float64
	YLower float64
	// HasBand reports whether the fit carried a confidence interval.
	HasBand bool
}

// SmoothCurve re-evaluates a fitted model at numPoints+1 evenly spaced
// x-values spanning [1, SampleCount], producing a dense point sequence for
// smooth chart rendering independent of the original sampling cadence.
//
// The curve is re-derived from the stored parameters via the result's
// Predictor, not interpolated from FittedValues. A numPoints of zero or less
// selects the default of 100 segments.
//
// The returned sequence is lazy, finite and restartable: it can be ranged
// over multiple times and always yields identical points. A nil result (or
// one without a predictor) yields an empty sequence.
//
// Example:
//
//	for p := range curvefit.SmoothCurve(result, 0) {
//	    fmt.Printf("(%.2f, %.2f)\n", p.X, p.Y)
//	}
func SmoothCurve(result *FitResult, numPoints int) iter.Seq[CurvePoint] {
	if numPoints <= 0 {
		numPoints = defaultCurvePoints
	}
	if result == nil {
		return func(func(CurvePoint) bool) {}
	}

	return sampleRange(result, 1, float64(result.SampleCount), numPoints)
}

// SmoothCurveInRange re-evaluates a fitted model at numPoints+1 evenly spaced
// x-values over an arbitrary caller-supplied range, which may extend beyond
// the originally observed sample count (extrapolation).
//
// When the result carries a confidence interval, each point is annotated with
// YUpper = Y + StandardError and YLower = max(0, Y - StandardError). A
// numPoints of zero or less selects the default of 50 segments.
//
// Like SmoothCurve, the returned sequence is lazy, finite, restartable and
// pure.
func SmoothCurveInRange(result *FitResult, minX, maxX float64, numPoints int) iter.Seq[CurvePoint] {
	if numPoints <= 0 {
		numPoints = defaultRangePoints
	}

	return sampleRange(result, minX, maxX, numPoints)
}

// sampleRange evaluates the result's predictor at numPoints+1 evenly spaced
// x-values in [minX, maxX].
func sampleRange(result *FitResult, minX, maxX float64, numPoints int) iter.Seq[CurvePoint] {
	return func(yield func(CurvePoint) bool) {
		if result == nil || result.Predictor == nil {
			return
		}

		se := 0.0
		hasBand := result.Confidence != nil
		if hasBand {
			se = result.Confidence.StandardError
		}

		step := (maxX - minX) / float64(numPoints)
		for i := 0; i <= numPoints; i++ {
			x := minX + float64(i)*step
			y := result.Predictor.Predict(x)

			point := CurvePoint{X: x, Y: y}
			if hasBand {
				point.HasBand = true
				point.YUpper = y + se
				point.YLower = math.Max(0, y-se)
			}

			if !yield(point) {
				return
			}
		}
	}
}
