package scalar

import (
	"github.com/Effie-Li/minitorch/internal/autodiff"
	"github.com/Effie-Li/minitorch/internal/operators"
)

// invFn implements f(a) = 1 / a.
//
// Backward pass:
//   - d(1/a)/da = -1 / a**2
type invFn struct{}

func (invFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	ctx.SaveForBackward(inputs[0])
	return operators.Inv(inputs[0])
}

func (invFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	a := ctx.SavedValues()[0]
	return []float64{operators.InvBack(a, dOutput)}
}
