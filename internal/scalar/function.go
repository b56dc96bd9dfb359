package scalar

import "github.com/Effie-Li/minitorch/internal/autodiff"

// Function is a differentiable operation over scalars. Implementations are
// stateless: everything the backward rule needs is stored in the Context the
// forward rule received.
//
// Forward and Backward of the same operation share one Context and nothing
// else; an implementation must never reach for global state.
type Function interface {
	// Forward computes the operation's value from raw inputs, saving
	// whatever Backward will need via ctx.SaveForBackward.
	Forward(ctx *autodiff.Context, inputs ...float64) float64

	// Backward maps the derivative flowing into the output to one
	// derivative per input, in input order.
	Backward(ctx *autodiff.Context, dOutput float64) []float64
}

// Apply runs fn's forward pass over the given inputs and returns a new
// scalar recording the operation, its context, and its operands, so that a
// later backward pass can retrace the step. This is the extension point for
// operations defined outside this package.
func Apply(fn Function, inputs ...*Scalar) *Scalar {
	ctx := &autodiff.Context{}

	raw := make([]float64, len(inputs))
	for i, in := range inputs {
		raw[i] = in.data
	}

	out := fn.Forward(ctx, raw...)
	return newScalar(out, &history{fn: fn, ctx: ctx, inputs: inputs})
}
