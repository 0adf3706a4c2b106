package curvefit

import (
	"fmt"
	"math"
)

// degenerateDenominator is the threshold below which the normal-equation
// denominator is treated as zero.
const degenerateDenominator = 1e-12

// fitLogarithmic fits the logarithmic model: S(n) = a * ln(n) + b
//
// This is exact closed-form ordinary least squares on the pairs
// (ln(n), S(n)), computed from the standard sums in a single pass. There is
// no iteration and no convergence concern; the result is fully deterministic.
//
// The normal-equation denominator n*Σx² - (Σx)² collapses to zero only when
// every log-transformed index coincides, which cannot happen for a well-formed
// 1..N series but can for malformed input. That case returns nil (the
// "not applicable" signal) rather than propagating NaN into the result.
//
// The logarithmic model does not produce a confidence band; Confidence is nil.
func fitLogarithmic(counts []float64) *FitResult {
	n := len(counts)
	fn := float64(n)

	// Transform: x = ln(index), fit y = a*x + b
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range counts {
		x := math.Log(float64(i + 1))
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	den := fn*sumX2 - sumX*sumX
	if math.Abs(den) < degenerateDenominator {
		return nil
	}

	a := (fn*sumXY - sumX*sumY) / den
	b := (sumY - a*sumX) / fn

	predictor := NewLogarithmicPredictor(a, b)
	fitted := make([]float64, n)
	for i := range fitted {
		fitted[i] = predictor.Predict(float64(i + 1))
	}

	return &FitResult{
		Model:        ModelLogarithmic,
		Params:       map[string]float64{"a": a, "b": b},
		FittedValues: fitted,
		RSquared:     rSquared(counts, fitted),
		Equation:     fmt.Sprintf("S(n) = %.2f * ln(n) + %.2f", a, b),
		SampleCount:  n,
		Converged:    true,
		Predictor:    predictor,
	}
}
