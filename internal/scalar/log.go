package scalar

import (
	"github.com/Effie-Li/minitorch/internal/autodiff"
	"github.com/Effie-Li/minitorch/internal/operators"
)

// logFn implements f(a) = ln(a + EPS).
//
// Backward pass:
//   - d(ln(a))/da = 1 / (a + EPS)
type logFn struct{}

func (logFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	ctx.SaveForBackward(inputs[0])
	return operators.Log(inputs[0])
}

func (logFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	a := ctx.SavedValues()[0]
	return []float64{operators.LogBack(a, dOutput)}
}
