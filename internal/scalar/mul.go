package scalar

import (
	"github.com/Effie-Li/minitorch/internal/autodiff"
	"github.com/Effie-Li/minitorch/internal/operators"
)

// mulFn implements f(a, b) = a * b.
//
// Backward pass:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
type mulFn struct{}

func (mulFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	ctx.SaveForBackward(inputs[0], inputs[1])
	return operators.Mul(inputs[0], inputs[1])
}

func (mulFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	saved := ctx.SavedValues()
	a, b := saved[0], saved[1]
	return []float64{b * dOutput, a * dOutput}
}
