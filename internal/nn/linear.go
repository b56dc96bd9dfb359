package nn

import (
	"fmt"
	"math/rand"

	"github.com/Effie-Li/minitorch/internal/scalar"
)

// Linear implements a fully connected (dense) layer over scalars.
//
// Performs the transformation: y_j = b_j + sum_i x_i * w_ij
// where:
//   - x is the input slice of length in_size
//   - w is the weight grid with shape [in_size][out_size]
//   - b is the bias slice of length out_size
//   - y is the output slice of length out_size
//
// Weights and biases are initialized uniformly in (-1, 1).
//
// Example:
//
//	layer := nn.NewLinear(2, 4)
//
//	input := []*scalar.Scalar{scalar.New(0.5), scalar.New(-1.2)}
//	output := layer.Forward(input) // length 4
type Linear struct {
	Module
	inSize  int
	outSize int
	weights [][]*Parameter // [in_size][out_size]
	bias    []*Parameter   // [out_size]
}

// NewLinear creates a new Linear layer.
//
// Weights are registered as "weight_{i}_{j}" and biases as "bias_{j}", all
// initialized uniformly in (-1, 1).
func NewLinear(inSize, outSize int) *Linear {
	if inSize <= 0 || outSize <= 0 {
		panic(fmt.Sprintf("nn: NewLinear with non-positive size %dx%d", inSize, outSize))
	}

	l := &Linear{
		inSize:  inSize,
		outSize: outSize,
	}

	l.weights = make([][]*Parameter, inSize)
	for i := range l.weights {
		l.weights[i] = make([]*Parameter, outSize)
		for j := range l.weights[i] {
			name := fmt.Sprintf("weight_%d_%d", i, j)
			l.weights[i][j] = l.RegisterParameter(name, scalar.New(2*(rand.Float64()-0.5)))
		}
	}

	l.bias = make([]*Parameter, outSize)
	for j := range l.bias {
		name := fmt.Sprintf("bias_%d", j)
		l.bias[j] = l.RegisterParameter(name, scalar.New(2*(rand.Float64()-0.5)))
	}

	return l
}

// Forward computes the output of the linear layer.
//
// Each output starts from its bias and accumulates the weighted inputs, so
// the whole transformation is recorded in the computation graph and the
// backward pass reaches every weight and bias.
func (l *Linear) Forward(inputs []*scalar.Scalar) []*scalar.Scalar {
	if len(inputs) != l.inSize {
		panic(fmt.Sprintf("Linear.Forward: expected %d inputs, got %d", l.inSize, len(inputs)))
	}

	outputs := make([]*scalar.Scalar, l.outSize)
	for j := range outputs {
		outputs[j] = l.bias[j].Value()
	}
	for i, x := range inputs {
		for j := range outputs {
			outputs[j] = outputs[j].Add(x.Mul(l.weights[i][j].Value()))
		}
	}
	return outputs
}

// InSize returns the number of input features.
func (l *Linear) InSize() int {
	return l.inSize
}

// OutSize returns the number of output features.
func (l *Linear) OutSize() int {
	return l.outSize
}

// Weight returns the weight parameter at position (i, j).
//
// Panics if the indices are out of bounds.
func (l *Linear) Weight(i, j int) *Parameter {
	if i < 0 || i >= l.inSize || j < 0 || j >= l.outSize {
		panic(fmt.Sprintf("Linear.Weight: index (%d, %d) out of bounds for %dx%d layer", i, j, l.inSize, l.outSize))
	}
	return l.weights[i][j]
}

// Bias returns the bias parameter at position j.
//
// Panics if the index is out of bounds.
func (l *Linear) Bias(j int) *Parameter {
	if j < 0 || j >= l.outSize {
		panic(fmt.Sprintf("Linear.Bias: index %d out of bounds for %d outputs", j, l.outSize))
	}
	return l.bias[j]
}
