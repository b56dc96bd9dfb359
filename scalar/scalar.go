// Copyright 2025 The Minitorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides differentiable scalar values.
//
// A Scalar wraps a float64 and records every operation applied to it, so a
// single Backward call propagates derivatives to all participating leaves.
//
// Example:
//
//	import "github.com/Effie-Li/minitorch/scalar"
//
//	func main() {
//	    x := scalar.New(2.0)
//	    y := scalar.New(5.0)
//
//	    z := x.Mul(y).Add(x)
//	    z.Backward()
//
//	    fmt.Println(x.Derivative()) // 6 (y + 1)
//	    fmt.Println(y.Derivative()) // 2 (x)
//	}
package scalar

import (
	"github.com/Effie-Li/minitorch/internal/scalar"
)

// Scalar is a differentiable float64 value.
type Scalar = scalar.Scalar

// Function is a differentiable operation that can be applied to scalars.
type Function = scalar.Function

// New creates a leaf scalar that collects derivatives during backward
// passes.
func New(v float64) *Scalar {
	return scalar.New(v)
}

// Constant creates a scalar excluded from differentiation.
func Constant(v float64) *Scalar {
	return scalar.Constant(v)
}

// Apply runs a Function on the given inputs and records the operation in
// the computation graph.
//
// Example:
//
//	type square struct{}
//
//	func (square) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
//	    ctx.SaveForBackward(inputs[0])
//	    return inputs[0] * inputs[0]
//	}
//
//	func (square) Backward(ctx *autodiff.Context, d float64) []float64 {
//	    return []float64{2 * ctx.SavedValues()[0] * d}
//	}
//
//	y := scalar.Apply(square{}, x)
func Apply(fn Function, inputs ...*Scalar) *Scalar {
	return scalar.Apply(fn, inputs...)
}

// DerivativeCheck verifies the derivatives of f at the given inputs against
// a central-difference approximation. Returns nil when every argument's
// analytic derivative matches the numeric one.
func DerivativeCheck(f func(...*Scalar) *Scalar, inputs ...*Scalar) error {
	return scalar.DerivativeCheck(f, inputs...)
}
