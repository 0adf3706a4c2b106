package curvefit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// michaelisMentenSeries generates counts from S(n) = smax*n/(k+n) for n=1..n.
func michaelisMentenSeries(smax, k float64, n int) []float64 {
	counts := make([]float64, n)
	for i := range counts {
		x := float64(i + 1)
		counts[i] = smax * x / (k + x)
	}

	return counts
}

// logarithmicSeries generates counts from S(n) = a*ln(n) + b for n=1..n.
func logarithmicSeries(a, b float64, n int) []float64 {
	counts := make([]float64, n)
	for i := range counts {
		counts[i] = a*math.Log(float64(i+1)) + b
	}

	return counts
}

func TestFit_NoneModelReturnsNil(t *testing.T) {
	counts := michaelisMentenSeries(100, 10, 20)

	require.Nil(t, Fit(counts, ModelNone))
}

func TestFit_UnknownModelReturnsNil(t *testing.T) {
	counts := michaelisMentenSeries(100, 10, 20)

	require.Nil(t, Fit(counts, ModelType(42)))
	require.Nil(t, Fit(counts, ModelType(-1)))
}

func TestFit_TooFewPointsReturnsNil(t *testing.T) {
	counts := michaelisMentenSeries(100, 10, 20)

	require.Nil(t, Fit(counts[:2], ModelMichaelisMenten))
	require.Nil(t, Fit(counts[:2], ModelLogarithmic))
	require.Nil(t, Fit(nil, ModelMichaelisMenten))
}

func TestFit_FittedValuesAlignWithInput(t *testing.T) {
	for _, model := range []ModelType{ModelMichaelisMenten, ModelLogarithmic} {
		for _, n := range []int{3, 7, 20, 100} {
			counts := michaelisMentenSeries(80, 6, n)

			result := Fit(counts, model)
			require.NotNil(t, result)
			require.Len(t, result.FittedValues, n)
			require.Equal(t, n, result.SampleCount)
		}
	}
}

func TestFit_RSquaredWithinBounds(t *testing.T) {
	// Adversarial, non-monotonic and constant inputs must still score in [0, 1].
	inputs := [][]float64{
		{5, 1, 9, 2, 7, 3},
		{4, 4, 4, 4, 4},
		{0, 0, 0, 100},
		{1e9, 2, 1e-9, 5, 7},
	}

	for _, counts := range inputs {
		for _, model := range []ModelType{ModelMichaelisMenten, ModelLogarithmic} {
			result := Fit(counts, model)
			if result == nil {
				continue
			}
			require.GreaterOrEqual(t, result.RSquared, 0.0)
			require.LessOrEqual(t, result.RSquared, 1.0)
		}
	}
}

func TestFit_Deterministic(t *testing.T) {
	counts := michaelisMentenSeries(100, 10, 20)

	for _, model := range []ModelType{ModelMichaelisMenten, ModelLogarithmic} {
		first := Fit(counts, model)
		second := Fit(counts, model)

		require.NotNil(t, first)
		require.NotNil(t, second)
		require.Equal(t, first.Params, second.Params)
		require.Equal(t, first.FittedValues, second.FittedValues)
		require.Equal(t, first.RSquared, second.RSquared)
		require.Equal(t, first.Equation, second.Equation)
		require.Equal(t, first.Converged, second.Converged)
	}
}

func TestModelType_StringRoundTrip(t *testing.T) {
	for _, model := range []ModelType{ModelNone, ModelMichaelisMenten, ModelLogarithmic} {
		require.Equal(t, model, ModelTypeFromString(model.String()))
	}

	require.Equal(t, ModelMichaelisMenten, ModelTypeFromString("Michaelis-Menten"))
	require.Equal(t, ModelType(-1), ModelTypeFromString("polynomial"))
	require.Equal(t, "unknown", ModelType(42).String())
}

func TestFitResult_String(t *testing.T) {
	result := Fit(logarithmicSeries(5, 2, 10), ModelLogarithmic)

	require.NotNil(t, result)
	require.Contains(t, result.String(), "logarithmic")
	require.Contains(t, result.String(), result.Equation)
}
