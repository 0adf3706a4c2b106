package curvefit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitLogarithmic_RecoversSyntheticParameters(t *testing.T) {
	// Exact data from S(n) = 5*ln(n) + 2, n=1..20. The fit is closed-form,
	// so recovery is essentially exact.
	counts := logarithmicSeries(5, 2, 20)

	result := Fit(counts, ModelLogarithmic)
	require.NotNil(t, result)

	require.InDelta(t, 5.0, result.Params["a"], 1e-9)
	require.InDelta(t, 2.0, result.Params["b"], 1e-9)
	require.InDelta(t, 1.0, result.RSquared, 1e-9)
	require.True(t, result.Converged)
}

func TestFitLogarithmic_NoConfidenceInterval(t *testing.T) {
	result := Fit(logarithmicSeries(5, 2, 10), ModelLogarithmic)

	require.NotNil(t, result)
	require.Nil(t, result.Confidence)
}

func TestFitLogarithmic_FittedValuesMatchFormula(t *testing.T) {
	counts := []float64{3, 8, 11, 12, 14, 15, 15}

	result := Fit(counts, ModelLogarithmic)
	require.NotNil(t, result)

	a := result.Params["a"]
	b := result.Params["b"]
	for i, fitted := range result.FittedValues {
		expected := a*math.Log(float64(i+1)) + b
		require.InDelta(t, expected, fitted, 1e-12)
	}
}

func TestFitLogarithmic_Equation(t *testing.T) {
	result := Fit(logarithmicSeries(5, 2, 20), ModelLogarithmic)

	require.NotNil(t, result)
	require.Equal(t, "S(n) = 5.00 * ln(n) + 2.00", result.Equation)
}
