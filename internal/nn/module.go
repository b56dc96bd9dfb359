// Package nn implements neural network modules built on scalar autodiff.
//
// This package provides building blocks for constructing small networks:
//   - Module: Base struct with parameter and submodule bookkeeping
//   - Parameter: Trainable scalars with derivative tracking
//   - Linear: Fully connected layer over scalar values
//
// Modules form a tree. Embedding Module in a struct and registering its
// parameters and children gives the struct recursive parameter collection,
// train/eval mode switching, and state dictionaries:
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
// Design inspired by PyTorch's nn.Module but adapted for explicit
// registration instead of attribute reflection.
package nn

import (
	"fmt"

	"github.com/Effie-Li/minitorch/internal/scalar"
)

// Module is the base struct for all neural network components.
//
// The zero value is usable and starts in evaluation mode. Parameters and
// submodules must be registered explicitly; registration order determines
// iteration order everywhere below.
type Module struct {
	params   []*Parameter
	children []namedChild
	training bool
}

type namedChild struct {
	name   string
	module *Module
}

// Child is satisfied by any struct that embeds Module. It is what
// RegisterModule accepts, so only real modules can enter the tree.
type Child interface {
	base() *Module
}

func (m *Module) base() *Module { return m }

// RegisterParameter creates a Parameter holding value, records it on this
// module under the given name, and returns it.
//
// The name must be unique within this module.
func (m *Module) RegisterParameter(name string, value *scalar.Scalar) *Parameter {
	for _, p := range m.params {
		if p.Name() == name {
			panic(fmt.Sprintf("nn: parameter %q registered twice", name))
		}
	}
	p := NewParameter(name, value)
	m.params = append(m.params, p)
	return p
}

// RegisterModule records child as a submodule under the given name.
//
// The name must be unique within this module. It becomes the prefix for the
// child's parameters in NamedParameters and StateDict.
func (m *Module) RegisterModule(name string, child Child) {
	for _, c := range m.children {
		if c.name == name {
			panic(fmt.Sprintf("nn: module %q registered twice", name))
		}
	}
	m.children = append(m.children, namedChild{name: name, module: child.base()})
}

// Parameters returns all trainable parameters of this module and its
// submodules, depth first in registration order.
func (m *Module) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(m.params))
	params = append(params, m.params...)
	for _, c := range m.children {
		params = append(params, c.module.Parameters()...)
	}
	return params
}

// NamedParameter pairs a parameter with its dotted path in the module tree,
// e.g. "layer1.weight_0_0".
type NamedParameter struct {
	Name  string
	Param *Parameter
}

// NamedParameters returns all parameters with their dotted names, depth
// first in registration order.
func (m *Module) NamedParameters() []NamedParameter {
	var named []NamedParameter
	for _, p := range m.params {
		named = append(named, NamedParameter{Name: p.Name(), Param: p})
	}
	for _, c := range m.children {
		for _, np := range c.module.NamedParameters() {
			named = append(named, NamedParameter{Name: c.name + "." + np.Name, Param: np.Param})
		}
	}
	return named
}

// Modules returns the direct submodules in registration order.
func (m *Module) Modules() []*Module {
	mods := make([]*Module, len(m.children))
	for i, c := range m.children {
		mods[i] = c.module
	}
	return mods
}

// Train puts this module and all submodules into training mode.
func (m *Module) Train() {
	m.training = true
	for _, c := range m.children {
		c.module.Train()
	}
}

// Eval puts this module and all submodules into evaluation mode.
func (m *Module) Eval() {
	m.training = false
	for _, c := range m.children {
		c.module.Eval()
	}
}

// Training reports whether the module is in training mode.
func (m *Module) Training() bool {
	return m.training
}

// ZeroGrad clears the accumulated derivative of every parameter.
//
// This should be called before each training iteration to avoid
// accumulating derivatives from previous iterations.
func (m *Module) ZeroGrad() {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// StateDict returns a map of dotted parameter names to raw values.
func (m *Module) StateDict() map[string]float64 {
	state := make(map[string]float64)
	for _, np := range m.NamedParameters() {
		state[np.Name] = np.Param.Data()
	}
	return state
}

// LoadStateDict loads parameter values from a state dictionary.
//
// Every parameter of the module tree must be present in the dictionary.
// Extra keys are ignored.
func (m *Module) LoadStateDict(state map[string]float64) error {
	for _, np := range m.NamedParameters() {
		v, ok := state[np.Name]
		if !ok {
			return fmt.Errorf("missing parameter %s in state dict", np.Name)
		}
		np.Param.Update(v)
	}
	return nil
}
