// Package scalar implements a float64 value type tracked by the autodiff
// engine, together with its library of differentiable operations.
//
// Every operation applied to Scalars records the operands and the producing
// Function, so a later Backward call can retrace the computation and deliver
// derivatives to the leaves.
//
// Usage:
//
//	x := scalar.New(2.0)
//	y := scalar.New(5.0)
//	z := x.Mul(y).Add(x)
//
//	z.Backward()
//	fmt.Println(x.Derivative()) // dz/dx = y + 1 = 6.0
//	fmt.Println(y.Derivative()) // dz/dy = x = 2.0
package scalar

import (
	"fmt"
	"strconv"

	"github.com/Effie-Li/minitorch/internal/autodiff"
)

// Scalar is one node of the computation graph: a float64 value plus the
// record of how it was produced. Scalars are immutable once created; every
// operation returns a new one.
type Scalar struct {
	id         int64
	data       float64
	history    *history
	derivative *float64
	name       string
}

// history records how a scalar was produced: the operation, the context its
// forward pass filled in, and the operands. A nil history marks a constant;
// a history with no function marks a leaf.
type history struct {
	fn     Function
	ctx    *autodiff.Context
	inputs []*Scalar
}

// New returns a leaf scalar holding v. Leaves are the nodes that receive
// accumulated derivatives when Backward runs.
func New(v float64) *Scalar {
	return newScalar(v, &history{})
}

// Constant returns a scalar that is excluded from differentiation entirely:
// it never receives a derivative and never appears in a traversal.
func Constant(v float64) *Scalar {
	return newScalar(v, nil)
}

func newScalar(v float64, h *history) *Scalar {
	s := &Scalar{
		id:      autodiff.NextID(),
		data:    v,
		history: h,
	}
	s.name = strconv.FormatInt(s.id, 10)
	return s
}

// Data returns the scalar's value.
func (s *Scalar) Data() float64 {
	return s.data
}

// Name returns the scalar's name; defaults to its unique id.
func (s *Scalar) Name() string {
	return s.name
}

// SetName renames the scalar and returns it, for chaining at construction.
func (s *Scalar) SetName(name string) *Scalar {
	s.name = name
	return s
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	return fmt.Sprintf("Scalar(%f)", s.data)
}

// Derivative returns the accumulated derivative, or 0 if none has been
// accumulated yet. Use HasDerivative to tell the two apart.
func (s *Scalar) Derivative() float64 {
	if s.derivative == nil {
		return 0
	}
	return *s.derivative
}

// HasDerivative reports whether any derivative has been accumulated since
// creation or the last ZeroDerivative.
func (s *Scalar) HasDerivative() bool {
	return s.derivative != nil
}

// ZeroDerivative clears the accumulated derivative.
func (s *Scalar) ZeroDerivative() {
	s.derivative = nil
}

// Backward runs backpropagation from this scalar with a seed derivative of
// 1, accumulating d(s)/d(leaf) onto every leaf the computation touched.
func (s *Scalar) Backward() {
	autodiff.Backpropagate(s, 1.0)
}

// UniqueID implements autodiff.Variable.
func (s *Scalar) UniqueID() int64 {
	return s.id
}

// IsLeaf reports whether the scalar was created directly rather than by an
// operation.
func (s *Scalar) IsLeaf() bool {
	return s.history != nil && s.history.fn == nil
}

// IsConstant reports whether the scalar is excluded from differentiation.
func (s *Scalar) IsConstant() bool {
	return s.history == nil
}

// Parents returns the non-constant operands of the producing operation.
// Constants are filtered here, at the operation layer, so the engine's
// traversal never sees them.
func (s *Scalar) Parents() []autodiff.Variable {
	if s.history == nil {
		return nil
	}
	var parents []autodiff.Variable
	for _, in := range s.history.inputs {
		if !in.IsConstant() {
			parents = append(parents, in)
		}
	}
	return parents
}

// AccumulateDerivative adds d into the running derivative total. Only leaves
// accumulate; calling this on any other node is a bug in the caller.
func (s *Scalar) AccumulateDerivative(d float64) {
	if !s.IsLeaf() {
		panic("scalar: only leaf variables can accumulate derivatives")
	}
	if s.derivative == nil {
		zero := 0.0
		s.derivative = &zero
	}
	*s.derivative += d
}

// ChainRule maps the derivative flowing into this scalar to one contribution
// per recorded operand, in operand order.
func (s *Scalar) ChainRule(dOutput float64) []autodiff.Partial {
	h := s.history
	if h == nil || h.fn == nil {
		panic("scalar: chain rule on a node with no producing operation")
	}

	grads := h.fn.Backward(h.ctx, dOutput)
	if len(grads) != len(h.inputs) {
		panic(fmt.Sprintf("scalar: %T Backward returned %d derivatives for %d inputs",
			h.fn, len(grads), len(h.inputs)))
	}

	pairs := make([]autodiff.Partial, len(h.inputs))
	for i, in := range h.inputs {
		pairs[i] = autodiff.Partial{Input: in, Deriv: grads[i]}
	}
	return pairs
}

// Add returns s + other.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return Apply(addFn{}, s, other)
}

// Sub returns s - other, computed as s + (-other).
func (s *Scalar) Sub(other *Scalar) *Scalar {
	return Apply(addFn{}, s, Apply(negFn{}, other))
}

// Mul returns s * other.
func (s *Scalar) Mul(other *Scalar) *Scalar {
	return Apply(mulFn{}, s, other)
}

// Div returns s / other, computed as s * (1/other).
func (s *Scalar) Div(other *Scalar) *Scalar {
	return Apply(mulFn{}, s, Apply(invFn{}, other))
}

// Neg returns -s.
func (s *Scalar) Neg() *Scalar {
	return Apply(negFn{}, s)
}

// Inv returns 1 / s.
func (s *Scalar) Inv() *Scalar {
	return Apply(invFn{}, s)
}

// Log returns ln(s), guarded against zero inputs.
func (s *Scalar) Log() *Scalar {
	return Apply(logFn{}, s)
}

// Exp returns e**s.
func (s *Scalar) Exp() *Scalar {
	return Apply(expFn{}, s)
}

// Sigmoid returns 1 / (1 + exp(-s)).
func (s *Scalar) Sigmoid() *Scalar {
	return Apply(sigmoidFn{}, s)
}

// ReLU returns max(0, s).
func (s *Scalar) ReLU() *Scalar {
	return Apply(reluFn{}, s)
}

// Lt returns 1 if s < other, else 0. Comparison results carry zero
// derivatives to both sides.
func (s *Scalar) Lt(other *Scalar) *Scalar {
	return Apply(ltFn{}, s, other)
}

// Gt returns 1 if s > other, else 0, computed as other < s.
func (s *Scalar) Gt(other *Scalar) *Scalar {
	return Apply(ltFn{}, other, s)
}

// Eq returns 1 if s == other, else 0.
func (s *Scalar) Eq(other *Scalar) *Scalar {
	return Apply(eqFn{}, s, other)
}
