package curvefit

import (
	"fmt"
	"math"
	"slices"
)

const (
	// maxIterations bounds the gradient-descent loop.
	maxIterations = 1000
	// initialLearningRate is the starting (and maximum) learning rate.
	initialLearningRate = 0.1
	// convergenceTolerance stops the loop when the sum-squared-error change
	// between iterations drops below it.
	convergenceTolerance = 1e-8
	// maxStagnation aborts the loop after this many consecutive
	// non-improving iterations.
	maxStagnation = 10
)

// fitMichaelisMenten fits the saturating model: S(n) = Smax * n / (K + n)
//
// The optimizer is a single-start gradient descent on the sum of squared
// residuals, with analytic partial derivatives for both parameters and a
// shared adaptive learning rate: the rate halves when an update increases the
// error and grows by 10% (capped at the initial rate) when it improves.
//
// Seeding compares the slope of the final segment against the first: when the
// curve is still rising at the end of the series (final slope above 50% of the
// first), Smax seeds at 1.5x the final observed value, otherwise 1.1x. Naive
// seeding at the final value itself makes the optimizer undershoot whenever
// sampling is clearly incomplete.
//
// After every update both parameters are clamped to a physically meaningful
// range: Smax cannot fall below the final observed count or exceed 5x the
// maximum, and K stays within [0.5, 3x the sample count].
//
// The loop never fails: exhausting the iteration budget or stagnating returns
// the best parameters found, with Converged reporting whether the error
// tolerance was reached.
func fitMichaelisMenten(counts []float64) *FitResult {
	n := len(counts)
	fn := float64(n)
	finalValue := counts[n-1]
	maxValue := slices.Max(counts)

	smax := 1.1 * finalValue
	if stillRising(counts) {
		smax = 1.5 * finalValue
	}
	k := 0.4 * fn

	smaxMin, smaxMax := finalValue, 5*maxValue
	kMin, kMax := 0.5, 3*fn

	rate := initialLearningRate
	prevErr := michaelisMentenSSE(counts, smax, k)
	bestSmax, bestK, bestErr := smax, k, prevErr
	stagnation := 0
	converged := false

	for iter := 0; iter < maxIterations; iter++ {
		gradSmax, gradK := michaelisMentenGradients(counts, smax, k)

		smax = clampValue(smax-rate*gradSmax, smaxMin, smaxMax)
		k = clampValue(k-rate*gradK, kMin, kMax)

		sse := michaelisMentenSSE(counts, smax, k)
		if sse < bestErr {
			bestSmax, bestK, bestErr = smax, k, sse
		}

		if sse > prevErr {
			rate /= 2
			stagnation++
			if stagnation >= maxStagnation {
				break
			}
		} else {
			stagnation = 0
			if rate < initialLearningRate {
				rate *= 1.1
			}
		}

		if math.Abs(sse-prevErr) < convergenceTolerance {
			converged = true
			break
		}
		prevErr = sse
	}

	predictor := NewMichaelisMentenPredictor(bestSmax, bestK)
	fitted := make([]float64, n)
	for i := range fitted {
		fitted[i] = predictor.Predict(float64(i + 1))
	}

	// 2 degrees of freedom consumed by the two fitted parameters.
	se := standardError(counts, fitted, 2)
	upper := make([]float64, n)
	lower := make([]float64, n)
	for i, v := range fitted {
		upper[i] = v + se
		lower[i] = math.Max(0, v-se)
	}

	return &FitResult{
		Model:        ModelMichaelisMenten,
		Params:       map[string]float64{"Smax": bestSmax, "K": bestK},
		FittedValues: fitted,
		RSquared:     rSquared(counts, fitted),
		Equation:     fmt.Sprintf("S(n) = %.2f * n / (%.2f + n)", bestSmax, bestK),
		Confidence: &ConfidenceInterval{
			Upper:         upper,
			Lower:         lower,
			StandardError: se,
		},
		SampleCount: n,
		Converged:   converged,
		Predictor:   predictor,
	}
}

// stillRising reports whether the slope of the final segment exceeds 50% of
// the slope of the first segment, judging the curve as not yet saturated.
func stillRising(counts []float64) bool {
	n := len(counts)
	firstSlope := counts[1] - counts[0]
	finalSlope := counts[n-1] - counts[n-2]

	return finalSlope > 0.5*firstSlope
}

// michaelisMentenSSE calculates the sum of squared residuals for the given
// parameters over all observations.
func michaelisMentenSSE(counts []float64, smax, k float64) float64 {
	sse := 0.0
	for i, y := range counts {
		x := float64(i + 1)
		residual := y - smax*x/(k+x)
		sse += residual * residual
	}

	return sse
}

// michaelisMentenGradients calculates the analytic partial derivatives of the
// sum-squared-error with respect to Smax and K.
//
// With residual r = y - Smax*x/(K+x):
//   - dSSE/dSmax = Σ -2 * r * x/(K+x)
//   - dSSE/dK    = Σ  2 * r * Smax*x/(K+x)²
func michaelisMentenGradients(counts []float64, smax, k float64) (gradSmax, gradK float64) {
	for i, y := range counts {
		x := float64(i + 1)
		denom := k + x
		residual := y - smax*x/denom

		gradSmax += -2 * residual * x / denom
		gradK += 2 * residual * smax * x / (denom * denom)
	}

	return gradSmax, gradK
}

// clampValue clamps v into [lo, hi].
func clampValue(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
