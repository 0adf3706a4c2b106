package curvefit

import (
	"fmt"
	"math"
)

// Predictor defines the interface for evaluating a fitted saturation model
// at an arbitrary sample index.
type Predictor interface {
	// Predict calculates the expected cumulative species count at sample index x.
	Predict(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Params returns the fitted parameters keyed by name.
	Params() map[string]float64
}

// MichaelisMentenPredictor implements the saturating model: S(n) = Smax * n / (K + n)
type MichaelisMentenPredictor struct {
	smax, k float64
}

var _ Predictor = (*MichaelisMentenPredictor)(nil)

// NewMichaelisMentenPredictor creates a new Michaelis-Menten predictor with
// the given parameters.
func NewMichaelisMentenPredictor(smax, k float64) *MichaelisMentenPredictor {
	return &MichaelisMentenPredictor{smax: smax, k: k}
}

// Predict calculates the expected count using S = Smax * x / (K + x).
func (p *MichaelisMentenPredictor) Predict(x float64) float64 {
	if x < 0 {
		return 0
	}

	return p.smax * x / (p.k + x)
}

// Type returns the model type.
func (p *MichaelisMentenPredictor) Type() ModelType {
	return ModelMichaelisMenten
}

// Params returns the model parameters {"Smax", "K"}.
func (p *MichaelisMentenPredictor) Params() map[string]float64 {
	return map[string]float64{"Smax": p.smax, "K": p.k}
}

// LogarithmicPredictor implements the logarithmic model: S(n) = a * ln(n) + b
type LogarithmicPredictor struct {
	a, b float64
}

var _ Predictor = (*LogarithmicPredictor)(nil)

// NewLogarithmicPredictor creates a new logarithmic predictor with the given
// parameters.
func NewLogarithmicPredictor(a, b float64) *LogarithmicPredictor {
	return &LogarithmicPredictor{a: a, b: b}
}

// Predict calculates the expected count using S = a * ln(x) + b.
func (p *LogarithmicPredictor) Predict(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return p.a*math.Log(x) + p.b
}

// Type returns the model type.
func (p *LogarithmicPredictor) Type() ModelType {
	return ModelLogarithmic
}

// Params returns the model parameters {"a", "b"}.
func (p *LogarithmicPredictor) Params() map[string]float64 {
	return map[string]float64{"a": p.a, "b": p.b}
}

// NewPredictor creates a new predictor by model name and named parameters.
//
// Parameters:
//   - name: The model name (case-insensitive): "michaelis-menten" or "logarithmic"
//   - params: The fitted parameters. Michaelis-Menten expects "Smax" and "K";
//     logarithmic expects "a" and "b"
//
// Returns:
//   - Predictor: The created predictor instance
//   - error: Returns an error if the name is unknown or a parameter is missing
//
// Example:
//
//	predictor, err := NewPredictor("michaelis-menten", map[string]float64{"Smax": 100, "K": 10})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	expected := predictor.Predict(25) // expected count after 25 samples
func NewPredictor(name string, params map[string]float64) (Predictor, error) {
	switch ModelTypeFromString(name) {
	case ModelMichaelisMenten:
		smax, k, err := lookupParams(params, "Smax", "K")
		if err != nil {
			return nil, err
		}

		return NewMichaelisMentenPredictor(smax, k), nil
	case ModelLogarithmic:
		a, b, err := lookupParams(params, "a", "b")
		if err != nil {
			return nil, err
		}

		return NewLogarithmicPredictor(a, b), nil
	default:
		return nil, fmt.Errorf("unknown model type: %s. Supported types: michaelis-menten, logarithmic", name)
	}
}

// lookupParams fetches two named parameters, reporting which one is missing.
func lookupParams(params map[string]float64, first, second string) (float64, float64, error) {
	v1, ok := params[first]
	if !ok {
		return 0, 0, fmt.Errorf("missing parameter %q", first)
	}
	v2, ok := params[second]
	if !ok {
		return 0, 0, fmt.Errorf("missing parameter %q", second)
	}

	return v1, v2, nil
}
