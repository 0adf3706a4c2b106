package curvefit

// minFitPoints is the minimum number of observations a fit requires.
const minFitPoints = 3

// Fit fits the requested saturation model to a rarefaction series and returns
// a unified result.
//
// The counts slice holds cumulative species counts, one per incremental
// sample; the implicit x-coordinate of counts[i] is i+1. The sequence is
// assumed to be non-negative and monotonically non-decreasing (a domain
// invariant of rarefaction data, not enforced here).
//
// Fit returns nil when fitting is not applicable: the model is ModelNone or
// unrecognized, fewer than 3 observations are supplied, or the input is
// numerically degenerate. A nil result is a deliberate non-error signal, not
// a failure; Fit never panics under normal operation.
//
// Parameters:
//   - counts: Ordered cumulative species counts (minimum length 3)
//   - model: The model to fit (ModelMichaelisMenten or ModelLogarithmic)
//
// Returns:
//   - *FitResult: The fitted model, or nil when fitting is not applicable
//
// Example:
//
//	result := curvefit.Fit(counts, curvefit.ModelMichaelisMenten)
//	if result == nil {
//	    return // not enough data to fit
//	}
//	fmt.Printf("%s (R²=%.4f)\n", result.Equation, result.RSquared)
func Fit(counts []float64, model ModelType) *FitResult {
	if model == ModelNone || len(counts) < minFitPoints {
		return nil
	}

	switch model {
	case ModelMichaelisMenten:
		return fitMichaelisMenten(counts)
	case ModelLogarithmic:
		return fitLogarithmic(counts)
	default:
		return nil
	}
}
