package scalar

import (
	"github.com/Effie-Li/minitorch/internal/autodiff"
	"github.com/Effie-Li/minitorch/internal/operators"
)

// addFn implements f(a, b) = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
type addFn struct{}

func (addFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	return operators.Add(inputs[0], inputs[1])
}

func (addFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	return []float64{dOutput, dOutput}
}
