// Copyright 2025 The Minitorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/Effie-Li/minitorch/internal/nn"
	"github.com/Effie-Li/minitorch/internal/scalar"
)

// Module is the base struct for all neural network components.
type Module = nn.Module

// Child is satisfied by any struct that embeds Module.
type Child = nn.Child

// Parameter represents a trainable value in a neural network.
type Parameter = nn.Parameter

// NamedParameter pairs a parameter with its dotted path in the module tree.
type NamedParameter = nn.NamedParameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, value *scalar.Scalar) *Parameter {
	return nn.NewParameter(name, value)
}

// Layers

// Linear represents a fully connected (dense) layer over scalars.
type Linear = nn.Linear

// NewLinear creates a new linear layer with weights and biases initialized
// uniformly in (-1, 1).
//
// Example:
//
//	layer := nn.NewLinear(2, 4)
//	output := layer.Forward(input) // length 4
func NewLinear(inSize, outSize int) *Linear {
	return nn.NewLinear(inSize, outSize)
}
