package scalar

import (
	"github.com/Effie-Li/minitorch/internal/autodiff"
	"github.com/Effie-Li/minitorch/internal/operators"
)

// sigmoidFn implements f(a) = 1 / (1 + exp(-a)).
//
// Backward pass:
//   - d(sigmoid(a))/da = sigmoid(a) * (1 - sigmoid(a)), expressed in terms
//     of the saved forward output
type sigmoidFn struct{}

func (sigmoidFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	out := operators.Sigmoid(inputs[0])
	ctx.SaveForBackward(out)
	return out
}

func (sigmoidFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	sigma := ctx.SavedValues()[0]
	return []float64{sigma * (1.0 - sigma) * dOutput}
}
