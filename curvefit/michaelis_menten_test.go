package curvefit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitMichaelisMenten_RecoversSyntheticParameters(t *testing.T) {
	// Exact data from S(n) = 100*n/(10+n), n=1..20.
	counts := michaelisMentenSeries(100, 10, 20)

	result := Fit(counts, ModelMichaelisMenten)
	require.NotNil(t, result)

	require.InEpsilon(t, 100.0, result.Params["Smax"], 0.05)
	require.InEpsilon(t, 10.0, result.Params["K"], 0.05)
	require.Greater(t, result.RSquared, 0.99)
}

func TestFitMichaelisMenten_ConfidenceBandOrdering(t *testing.T) {
	// Noisy saturating data; every band point must satisfy
	// lower <= fitted <= upper with lower >= 0.
	counts := []float64{8, 15, 20, 23, 26, 27, 29, 30, 30, 31}

	result := Fit(counts, ModelMichaelisMenten)
	require.NotNil(t, result)
	require.NotNil(t, result.Confidence)
	require.Len(t, result.Confidence.Upper, len(counts))
	require.Len(t, result.Confidence.Lower, len(counts))
	require.GreaterOrEqual(t, result.Confidence.StandardError, 0.0)

	for i, fitted := range result.FittedValues {
		require.LessOrEqual(t, result.Confidence.Lower[i], fitted)
		require.LessOrEqual(t, fitted, result.Confidence.Upper[i])
		require.GreaterOrEqual(t, result.Confidence.Lower[i], 0.0)
	}
}

func TestFitMichaelisMenten_ParameterClamping(t *testing.T) {
	inputs := [][]float64{
		michaelisMentenSeries(100, 10, 20),
		{8, 15, 20, 23, 26, 27, 29, 30, 30, 31},
		{5, 1, 9, 2, 7, 3}, // adversarial non-monotonic input
		{0, 0, 0, 100},
	}

	for _, counts := range inputs {
		n := len(counts)
		finalValue := counts[n-1]
		maxValue := counts[0]
		for _, v := range counts {
			if v > maxValue {
				maxValue = v
			}
		}

		result := Fit(counts, ModelMichaelisMenten)
		require.NotNil(t, result)

		// Smax cannot fall below what was already observed, K stays within
		// a small multiple of the sampling effort.
		require.GreaterOrEqual(t, result.Params["Smax"], finalValue)
		require.LessOrEqual(t, result.Params["Smax"], 5*maxValue)
		require.GreaterOrEqual(t, result.Params["K"], 0.5)
		require.LessOrEqual(t, result.Params["K"], 3*float64(n))
	}
}

func TestFitMichaelisMenten_ConvergesOnExactData(t *testing.T) {
	counts := michaelisMentenSeries(50, 4, 15)

	result := Fit(counts, ModelMichaelisMenten)
	require.NotNil(t, result)
	require.True(t, result.Converged)
}

func TestFitMichaelisMenten_NeverFailsOnAdversarialInput(t *testing.T) {
	// The loop must return a best-effort result without panicking even when
	// the input violates the monotonic rarefaction invariant.
	inputs := [][]float64{
		{100, 50, 25, 12, 6},
		{0, 0, 0},
		{1, 1, 1, 1, 1000},
	}

	for _, counts := range inputs {
		result := Fit(counts, ModelMichaelisMenten)
		require.NotNil(t, result)
		require.Len(t, result.FittedValues, len(counts))
		require.GreaterOrEqual(t, result.RSquared, 0.0)
		require.LessOrEqual(t, result.RSquared, 1.0)
	}
}

func TestStillRising(t *testing.T) {
	// Flat tail: final slope well below half the first slope.
	saturated := michaelisMentenSeries(100, 2, 30)
	require.False(t, stillRising(saturated))

	// Nearly linear growth keeps the final slope close to the first.
	rising := []float64{10, 20, 30, 40, 50, 59}
	require.True(t, rising[len(rising)-1]-rising[len(rising)-2] > 0.5*(rising[1]-rising[0]))
	require.True(t, stillRising(rising))
}
