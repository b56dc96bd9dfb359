// Copyright 2025 The Minitorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// This package exposes the graph engine: the Variable capability interface,
// topological ordering, the backpropagation walk, and a central-difference
// oracle for checking derivatives numerically. The scalar package provides
// the ready-made Variable implementation most callers want.
//
// Example:
//
//	import (
//	    "github.com/Effie-Li/minitorch/autodiff"
//	    "github.com/Effie-Li/minitorch/scalar"
//	)
//
//	func main() {
//	    x := scalar.New(2.0)
//	    y := scalar.New(5.0)
//	    z := x.Mul(y)
//
//	    // Walk the graph once, output first
//	    order := autodiff.TopologicalSort(z)
//
//	    // Or run the full backward pass
//	    autodiff.Backpropagate(z, 1.0)
//	}
package autodiff

import (
	"github.com/Effie-Li/minitorch/internal/autodiff"
)

// Variable is the capability set a value needs to participate in
// backpropagation.
type Variable = autodiff.Variable

// Partial pairs an input variable with the derivative routed to it.
type Partial = autodiff.Partial

// Context carries values saved by an operation's forward pass for use in
// its backward pass.
type Context = autodiff.Context

// DefaultEpsilon is the step size CentralDifference uses when none is given.
const DefaultEpsilon = autodiff.DefaultEpsilon

// NextID returns a process-unique variable identifier.
func NextID() int64 {
	return autodiff.NextID()
}

// TopologicalSort returns the reachable graph from v in
// consumer-before-producer order, starting with v itself.
func TopologicalSort(v Variable) []Variable {
	return autodiff.TopologicalSort(v)
}

// Backpropagate runs the backward pass from v, accumulating derivatives
// into the leaves of its graph.
//
// Example:
//
//	autodiff.Backpropagate(out, 1.0)
func Backpropagate(v Variable, deriv float64) {
	autodiff.Backpropagate(v, deriv)
}

// CentralDifference numerically approximates the derivative of f with
// respect to argument arg at vals. Pass epsilon 0 to use DefaultEpsilon.
func CentralDifference(f func(...float64) float64, vals []float64, arg int, epsilon float64) float64 {
	return autodiff.CentralDifference(f, vals, arg, epsilon)
}
