// Package autodiff implements reverse-mode automatic differentiation over a
// dynamically built computation graph.
//
// The graph is never materialized ahead of time: each value produced by a
// differentiable operation records the inputs it was computed from, and the
// engine discovers the graph by walking those links backward from the output.
//
// Architecture:
//   - Variable interface: The capability set every graph node exposes
//   - TopologicalSort: Orders a node's ancestry consumer-before-producer
//   - Backpropagate: Walks the order, applying each node's local chain rule
//   - Context: Per-operation scratch storage shared by forward and backward
//   - CentralDifference: Numerical oracle for validating analytic derivatives
//
// Usage:
//
//	x := scalar.New(2.0)
//	y := scalar.New(5.0)
//	z := x.Mul(y)
//
//	z.Backward() // seeds the output derivative with 1
//	fmt.Println(x.Derivative()) // dz/dx = y = 5.0
//	fmt.Println(y.Derivative()) // dz/dy = x = 2.0
package autodiff

import "sync/atomic"

// Variable is implemented by every node in the computation graph.
//
// Graph algorithms identify nodes purely by UniqueID: structural or value
// equality is irrelevant, only identity matters. Ids are minted by NextID
// and are never reused within a process.
type Variable interface {
	// UniqueID returns the node's process-wide unique id, stable for the
	// node's lifetime.
	UniqueID() int64

	// IsLeaf reports whether the node has no producing operation (a graph
	// input).
	IsLeaf() bool

	// IsConstant reports whether the node is excluded from differentiation
	// entirely. No derivative is ever computed for a constant.
	IsConstant() bool

	// Parents returns the ordered sequence of variables consumed by the
	// operation that produced this node; empty for leaves and constants.
	Parents() []Variable

	// AccumulateDerivative adds d into the node's running derivative total.
	// Called only on leaves.
	AccumulateDerivative(d float64)

	// ChainRule maps the derivative flowing into this node to the
	// contribution for each of the node's direct inputs.
	ChainRule(dOutput float64) []Partial
}

// Partial pairs an input variable with its local derivative contribution, as
// produced by a node's ChainRule.
type Partial struct {
	Input Variable
	Deriv float64
}

// variableCount mints unique ids. Monotonically increasing, never reset.
var variableCount atomic.Int64

// NextID returns the next unique variable id. Node constructors call this
// once per node; the counter is not otherwise exposed.
func NextID() int64 {
	return variableCount.Add(1)
}
