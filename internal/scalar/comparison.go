package scalar

import (
	"github.com/Effie-Li/minitorch/internal/autodiff"
	"github.com/Effie-Li/minitorch/internal/operators"
)

// ltFn implements f(a, b) = 1 if a < b else 0.
//
// Backward pass:
//   - comparisons are piecewise constant, so both derivatives are 0
type ltFn struct{}

func (ltFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	return operators.Lt(inputs[0], inputs[1])
}

func (ltFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	return []float64{0, 0}
}

// eqFn implements f(a, b) = 1 if a == b else 0.
//
// Backward pass:
//   - both derivatives are 0, as for ltFn
type eqFn struct{}

func (eqFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	return operators.Eq(inputs[0], inputs[1])
}

func (eqFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	return []float64{0, 0}
}
