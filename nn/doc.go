// Copyright 2025 The Minitorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over scalar autodiff.
//
// # Overview
//
// This package contains:
//   - Module: base struct with parameter and submodule bookkeeping
//   - Parameter: trainable scalars with derivative tracking
//   - Linear: fully connected layer over scalar values
//
// # Basic Usage
//
//	import (
//	    "github.com/Effie-Li/minitorch/nn"
//	    "github.com/Effie-Li/minitorch/scalar"
//	)
//
//	type Network struct {
//	    nn.Module
//	    layer1 *nn.Linear
//	    layer2 *nn.Linear
//	}
//
//	func NewNetwork(hidden int) *Network {
//	    n := &Network{
//	        layer1: nn.NewLinear(2, hidden),
//	        layer2: nn.NewLinear(hidden, 1),
//	    }
//	    n.RegisterModule("layer1", n.layer1)
//	    n.RegisterModule("layer2", n.layer2)
//	    return n
//	}
//
//	func (n *Network) Forward(x []*scalar.Scalar) *scalar.Scalar {
//	    h := n.layer1.Forward(x)
//	    for i := range h {
//	        h[i] = h[i].ReLU()
//	    }
//	    return n.layer2.Forward(h)[0].Sigmoid()
//	}
//
// # Parameter Management
//
// Access model parameters for optimization:
//
//	for _, np := range model.NamedParameters() {
//	    fmt.Println(np.Name, np.Param.Data())
//	}
//
// State dictionaries map dotted parameter names to raw values and transfer
// weights between identically shaped models:
//
//	state := model.StateDict()
//	err := other.LoadStateDict(state)
package nn
