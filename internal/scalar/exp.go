package scalar

import (
	"github.com/Effie-Li/minitorch/internal/autodiff"
	"github.com/Effie-Li/minitorch/internal/operators"
)

// expFn implements f(a) = e**a.
//
// Backward pass:
//   - d(exp(a))/da = exp(a), which is the forward output, so the output is
//     saved rather than recomputed
type expFn struct{}

func (expFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	out := operators.Exp(inputs[0])
	ctx.SaveForBackward(out)
	return out
}

func (expFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	out := ctx.SavedValues()[0]
	return []float64{out * dOutput}
}
