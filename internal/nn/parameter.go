package nn

import (
	"github.com/Effie-Li/minitorch/internal/scalar"
)

// Parameter represents a trainable value in a neural network.
//
// Parameters are leaf scalars that collect derivatives during the backward
// pass. They typically represent weights and biases of layers.
//
// Example:
//
//	// Create a weight parameter
//	weight := nn.NewParameter("weight_0_0", scalar.New(0.3))
//
//	// Use it in a computation
//	out := input.Mul(weight.Value())
//
//	// Read the derivative after a backward pass
//	d := weight.Derivative()
type Parameter struct {
	name  string
	value *scalar.Scalar
}

// NewParameter creates a new trainable parameter.
//
// The scalar takes on the parameter name, so the name shows up in graph
// inspection and state dictionaries.
func NewParameter(name string, value *scalar.Scalar) *Parameter {
	value.SetName(name)
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the underlying scalar for use in computations.
func (p *Parameter) Value() *scalar.Scalar {
	return p.value
}

// Data returns the current raw value.
func (p *Parameter) Data() float64 {
	return p.value.Data()
}

// Derivative returns the derivative accumulated by backward passes.
//
// Returns 0 if no derivative has been computed yet.
func (p *Parameter) Derivative() float64 {
	return p.value.Derivative()
}

// HasDerivative reports whether a backward pass has reached this parameter.
func (p *Parameter) HasDerivative() bool {
	return p.value.HasDerivative()
}

// Update replaces the underlying scalar with a fresh leaf holding v.
//
// Optimizers call this after each step. Replacing the leaf releases the
// computation graph built during the previous iteration.
func (p *Parameter) Update(v float64) {
	p.value = scalar.New(v).SetName(p.name)
}

// ZeroGrad clears the accumulated derivative.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroDerivative()
}
