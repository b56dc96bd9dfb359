package scalar

import (
	"github.com/Effie-Li/minitorch/internal/autodiff"
	"github.com/Effie-Li/minitorch/internal/operators"
)

// negFn implements f(a) = -a.
//
// Backward pass:
//   - d(-a)/da = -1
type negFn struct{}

func (negFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	return operators.Neg(inputs[0])
}

func (negFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	return []float64{-dOutput}
}
