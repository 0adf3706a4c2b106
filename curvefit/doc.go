// Package curvefit fits saturation models to rarefaction (species accumulation)
// data and re-samples the fitted curves for rendering and extrapolation.
//
// The input is an ordered sequence of cumulative species counts, one per
// incremental sample; the implicit x-coordinate of each observation is its
// 1-based position in the sequence. Two models are supported:
//
//   - **Michaelis-Menten**: S(n) = Smax * n / (K + n), fitted by an iterative
//     gradient-descent least-squares optimizer with adaptive learning rate and
//     physically-motivated parameter clamping
//   - **Logarithmic**: S(n) = a * ln(n) + b, fitted by exact closed-form
//     ordinary least squares on the log-transformed sample index
//
// # Basic Usage
//
//	counts := []float64{12, 19, 24, 27, 29, 31, 32}
//	result := curvefit.Fit(counts, curvefit.ModelMichaelisMenten)
//	if result == nil {
//	    // fitting not applicable (fewer than 3 points or no model requested)
//	    return
//	}
//
//	fmt.Printf("%s (R²=%.4f)\n", result.Equation, result.RSquared)
//	smax := result.Params["Smax"] // asymptotic diversity estimate
//
// # Curve Sampling
//
// Fitted curves can be re-evaluated at arbitrary resolution and range,
// including extrapolation beyond the observed sample count:
//
//	for p := range curvefit.SmoothCurveInRange(result, 1, 50, 0) {
//	    plot(p.X, p.Y, p.YLower, p.YUpper)
//	}
//
// The samplers re-derive values from the fitted parameters rather than
// interpolating the stored fitted values, so a sampled point at any x equals
// the model formula evaluated directly at that x.
//
// # Failure Semantics
//
// No operation in this package panics or returns an error under normal use.
// Fit returns nil when fitting is not applicable; a non-convergent optimizer
// run silently yields the best parameters found, with Converged set false and
// RSquared serving as the quality proxy. All operations are pure: identical
// inputs always produce identical outputs, and no state is retained between
// calls.
package curvefit
