package curvefit

import "math"

// rSquared calculates the coefficient of determination (R²).
//
// R² measures the proportion of variance in the observed counts that is
// explained by the fitted curve.
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squares of residuals (observed - fitted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// The result is clamped to [0, 1] so that a worse-than-baseline fit reports
// as 0 rather than a confusing negative value. A zero total sum of squares
// (constant observations) also reports 0.
func rSquared(observed, fitted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := meanValue(observed)
	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - fitted[i]) * (observed[i] - fitted[i])
	}

	if ssTot == 0 {
		return 0
	}

	r2 := 1.0 - (ssRes / ssTot)
	if r2 < 0 {
		return 0
	}
	if r2 > 1 {
		return 1
	}

	return r2
}

// standardError calculates the residual standard error:
// sqrt(RSS / (n - dof)), where dof is the number of fitted parameters.
func standardError(observed, fitted []float64, dof int) float64 {
	n := len(observed)
	if n <= dof {
		return 0
	}

	rss := 0.0
	for i := range observed {
		diff := observed[i] - fitted[i]
		rss += diff * diff
	}

	return math.Sqrt(rss / float64(n-dof))
}

// meanValue calculates the arithmetic mean.
func meanValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
