package scalar

import (
	"github.com/Effie-Li/minitorch/internal/autodiff"
	"github.com/Effie-Li/minitorch/internal/operators"
)

// reluFn implements f(a) = max(0, a).
//
// Backward pass:
//   - d(relu(a))/da = 1 where a > 0, else 0
type reluFn struct{}

func (reluFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	ctx.SaveForBackward(inputs[0])
	return operators.ReLU(inputs[0])
}

func (reluFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	a := ctx.SavedValues()[0]
	return []float64{operators.ReLUBack(a, dOutput)}
}
