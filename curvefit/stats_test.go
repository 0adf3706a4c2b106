package curvefit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRSquared_PerfectFit(t *testing.T) {
	observed := []float64{1, 2, 3, 4, 5}
	fitted := []float64{1, 2, 3, 4, 5}

	require.Equal(t, 1.0, rSquared(observed, fitted))
}

func TestRSquared_WorseThanBaselineClampsToZero(t *testing.T) {
	// Predictions far worse than the mean baseline would yield a negative
	// raw R²; it must clamp to 0.
	observed := []float64{1, 2, 3, 4, 5}
	fitted := []float64{100, -100, 100, -100, 100}

	require.Equal(t, 0.0, rSquared(observed, fitted))
}

func TestRSquared_ConstantObservations(t *testing.T) {
	// Zero total sum of squares reports 0 instead of dividing by zero.
	observed := []float64{7, 7, 7, 7}
	fitted := []float64{7, 7, 7, 7}

	require.Equal(t, 0.0, rSquared(observed, fitted))
}

func TestRSquared_Empty(t *testing.T) {
	require.Equal(t, 0.0, rSquared(nil, nil))
}

func TestStandardError(t *testing.T) {
	observed := []float64{1, 2, 3, 4}
	fitted := []float64{1, 2, 3, 4}
	require.Equal(t, 0.0, standardError(observed, fitted, 2))

	// RSS = 4*1 = 4, n-dof = 2, se = sqrt(2).
	offset := []float64{2, 3, 4, 5}
	require.InDelta(t, math.Sqrt(2), standardError(observed, offset, 2), 1e-12)

	// Too few points for the degrees of freedom.
	require.Equal(t, 0.0, standardError([]float64{1, 2}, []float64{1, 2}, 2))
}

func TestMeanValue(t *testing.T) {
	require.Equal(t, 0.0, meanValue(nil))
	require.Equal(t, 2.5, meanValue([]float64{1, 2, 3, 4}))
}
