package curvefit

import (
	"fmt"
	"strings"
)

// ModelType represents the type of saturation model.
type ModelType int

const (
	// ModelNone represents the absence of a model; Fit returns nil for it.
	ModelNone ModelType = iota
	// ModelMichaelisMenten represents the saturating model: S(n) = Smax * n / (K + n)
	ModelMichaelisMenten
	// ModelLogarithmic represents the logarithmic model: S(n) = a * ln(n) + b
	ModelLogarithmic
)

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	ModelNone:            "none",
	ModelMichaelisMenten: "michaelis-menten",
	ModelLogarithmic:     "logarithmic",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// modelTypeFromString maps string names to ModelType.
var modelTypeFromString = map[string]ModelType{
	"none":             ModelNone,
	"michaelis-menten": ModelMichaelisMenten,
	"logarithmic":      ModelLogarithmic,
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1) // Invalid ModelType
}

// ConfidenceInterval is a ±1 standard-error band around the fitted values.
//
// This is a simple residual-based band, not a statistically rigorous
// confidence interval. The lower bound is floored at zero because species
// counts cannot be negative.
type ConfidenceInterval struct {
	// Upper contains fitted value + StandardError, aligned with FittedValues.
	Upper []float64
	// Lower contains max(0, fitted value - StandardError), aligned with FittedValues.
	Lower []float64
	// StandardError is the residual standard error: sqrt(RSS / (n - 2)).
	StandardError float64
}

// FitResult represents the outcome of fitting a saturation model to a
// rarefaction series.
//
// A FitResult contains everything a consumer needs to render or extrapolate
// the fitted curve: the named parameters, per-observation fitted values, a
// goodness-of-fit score, a human-readable equation, and a Predictor that
// re-derives the formula at arbitrary x.
//
// Fields:
//   - Model: The fitted model type (michaelis-menten or logarithmic)
//   - Params: Named parameters ("Smax"/"K" or "a"/"b")
//   - FittedValues: Model predictions aligned 1:1 with the input observations
//   - RSquared: Coefficient of determination, clamped to [0, 1]
//   - Equation: Human-readable formula string
//   - Confidence: ±1 SE band; nil for the logarithmic model
//   - SampleCount: Number of input observations
//   - Converged: Whether the optimizer reached its tolerance (diagnostic only)
//   - Predictor: Concrete implementation for re-evaluating the formula
type FitResult struct {
	// Model is the fitted model type.
	Model ModelType
	// Params contains the fitted parameters keyed by name.
	Params map[string]float64
	// FittedValues contains the model prediction for each input observation.
	FittedValues []float64
	// RSquared is the coefficient of determination (goodness of fit, 0-1).
	RSquared float64
	// Equation is a human-readable representation of the fitted formula.
	Equation string
	// Confidence is the ±1 standard-error band, nil when the model does not
	// produce one.
	Confidence *ConfidenceInterval
	// SampleCount is the number of observations the model was fitted to.
	SampleCount int
	// Converged reports whether the optimizer reached its error tolerance.
	// Closed-form fits are always converged. A false value does not indicate
	// failure; the result still carries the best parameters found.
	Converged bool
	// Predictor is the concrete predictor implementation.
	Predictor Predictor
}

// String returns a string representation of the fit result.
func (r *FitResult) String() string {
	return fmt.Sprintf("FitResult{Model: %s, R²: %.4f, Equation: %s}",
		r.Model, r.RSquared, r.Equation)
}
