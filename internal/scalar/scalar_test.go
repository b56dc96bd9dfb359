package scalar_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Effie-Li/minitorch/internal/autodiff"
	"github.com/Effie-Li/minitorch/internal/scalar"
)

// TestScalar_Arithmetic tests forward values of the arithmetic operations.
func TestScalar_Arithmetic(t *testing.T) {
	x := scalar.New(6.0)
	y := scalar.New(2.0)

	assert.InDelta(t, 8.0, x.Add(y).Data(), 1e-9)
	assert.InDelta(t, 4.0, x.Sub(y).Data(), 1e-9)
	assert.InDelta(t, 12.0, x.Mul(y).Data(), 1e-9)
	assert.InDelta(t, 3.0, x.Div(y).Data(), 1e-9)
	assert.InDelta(t, -6.0, x.Neg().Data(), 1e-9)
	assert.InDelta(t, 0.5, y.Inv().Data(), 1e-9)
}

// TestScalar_Activations tests forward values of the nonlinear operations.
func TestScalar_Activations(t *testing.T) {
	assert.InDelta(t, 0.5, scalar.New(0).Sigmoid().Data(), 1e-9)
	assert.InDelta(t, 0.0, scalar.New(-2).ReLU().Data(), 1e-9)
	assert.InDelta(t, 3.0, scalar.New(3).ReLU().Data(), 1e-9)
	assert.InDelta(t, 1.2, scalar.New(1.2).Exp().Log().Data(), 1e-4)
}

// TestScalar_Comparisons tests the 0/1 outputs of Lt, Gt, and Eq.
func TestScalar_Comparisons(t *testing.T) {
	a := scalar.New(1.0)
	b := scalar.New(2.0)

	assert.Equal(t, 1.0, a.Lt(b).Data())
	assert.Equal(t, 0.0, b.Lt(a).Data())
	assert.Equal(t, 1.0, b.Gt(a).Data())
	assert.Equal(t, 0.0, a.Eq(b).Data())
	assert.Equal(t, 1.0, a.Eq(scalar.New(1.0)).Data())
}

// TestBackward_Mul tests the product rule end to end.
func TestBackward_Mul(t *testing.T) {
	x := scalar.New(2.0)
	y := scalar.New(5.0)

	z := x.Mul(y)
	z.Backward()

	require.True(t, x.HasDerivative())
	require.True(t, y.HasDerivative())
	assert.InDelta(t, 5.0, x.Derivative(), 1e-9)
	assert.InDelta(t, 2.0, y.Derivative(), 1e-9)
}

// TestBackward_Chain tests a two-operation chain: z = x*y + x.
func TestBackward_Chain(t *testing.T) {
	x := scalar.New(2.0)
	y := scalar.New(5.0)

	z := x.Mul(y).Add(x)
	z.Backward()

	assert.InDelta(t, 11.0, z.Data(), 1e-9)
	assert.InDelta(t, 6.0, x.Derivative(), 1e-9) // dz/dx = y + 1
	assert.InDelta(t, 2.0, y.Derivative(), 1e-9) // dz/dy = x
}

// TestBackward_RepeatedInput tests that an input used twice by one operation
// accumulates both contributions: y = x*x.
func TestBackward_RepeatedInput(t *testing.T) {
	x := scalar.New(3.0)

	y := x.Mul(x)
	y.Backward()

	assert.InDelta(t, 6.0, x.Derivative(), 1e-9) // dy/dx = 2x
}

// TestBackward_Diamond tests fan-in through a shared non-leaf node:
// out = m*m with m = x+x, so out = 4x² and dout/dx = 8x.
func TestBackward_Diamond(t *testing.T) {
	x := scalar.New(1.5)

	m := x.Add(x)
	out := m.Mul(m)
	out.Backward()

	assert.InDelta(t, 9.0, out.Data(), 1e-9)
	assert.InDelta(t, 12.0, x.Derivative(), 1e-9)
}

// TestBackward_AccumulatesAcrossCalls tests that repeated backward passes
// add rather than reset.
func TestBackward_AccumulatesAcrossCalls(t *testing.T) {
	x := scalar.New(4.0)
	y := x.Mul(x)

	y.Backward()
	y.Backward()

	assert.InDelta(t, 16.0, x.Derivative(), 1e-9) // 2 * (2x)
}

// TestBackward_ConstantUntouched tests that constants receive no derivative
// and never enter the traversal.
func TestBackward_ConstantUntouched(t *testing.T) {
	x := scalar.New(2.0)
	k := scalar.Constant(3.0)

	z := x.Mul(k)
	z.Backward()

	assert.InDelta(t, 6.0, z.Data(), 1e-9)
	assert.InDelta(t, 3.0, x.Derivative(), 1e-9)
	assert.False(t, k.HasDerivative())

	order := autodiff.TopologicalSort(z)
	require.Len(t, order, 2)
	for _, v := range order {
		assert.NotEqual(t, k.UniqueID(), v.UniqueID(), "constant appeared in the topological order")
	}
}

// TestScalar_GraphContract tests the Variable capability set on real scalars.
func TestScalar_GraphContract(t *testing.T) {
	x := scalar.New(1.0)
	y := scalar.New(2.0)
	k := scalar.Constant(9.0)

	require.True(t, x.IsLeaf())
	require.False(t, x.IsConstant())
	require.True(t, k.IsConstant())
	require.False(t, k.IsLeaf())
	assert.Empty(t, x.Parents())

	z := x.Mul(y)
	require.False(t, z.IsLeaf())
	parents := z.Parents()
	require.Len(t, parents, 2)
	assert.Equal(t, x.UniqueID(), parents[0].UniqueID())
	assert.Equal(t, y.UniqueID(), parents[1].UniqueID())

	assert.NotEqual(t, x.UniqueID(), y.UniqueID())
	assert.Greater(t, y.UniqueID(), x.UniqueID())
}

// TestScalar_AccumulateOnNonLeafPanics tests the leaf-only accumulation
// contract.
func TestScalar_AccumulateOnNonLeafPanics(t *testing.T) {
	z := scalar.New(1.0).Mul(scalar.New(2.0))

	assert.Panics(t, func() { z.AccumulateDerivative(1.0) })
	assert.Panics(t, func() { scalar.Constant(1.0).AccumulateDerivative(1.0) })
}

// TestScalar_ZeroDerivative tests clearing the accumulated derivative.
func TestScalar_ZeroDerivative(t *testing.T) {
	x := scalar.New(2.0)
	x.Mul(x).Backward()

	require.True(t, x.HasDerivative())

	x.ZeroDerivative()
	assert.False(t, x.HasDerivative())
	assert.Equal(t, 0.0, x.Derivative())
}

// TestScalar_Naming tests the id-based default name and renaming.
func TestScalar_Naming(t *testing.T) {
	x := scalar.New(1.0)
	assert.Equal(t, strconv.FormatInt(x.UniqueID(), 10), x.Name())

	x.SetName("weight_0_1")
	assert.Equal(t, "weight_0_1", x.Name())
}

// squareFn is a user-defined operation: f(a) = a².
type squareFn struct{}

func (squareFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	ctx.SaveForBackward(inputs[0])
	return inputs[0] * inputs[0]
}

func (squareFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	a := ctx.SavedValues()[0]
	return []float64{2 * a * dOutput}
}

// TestApply_CustomFunction tests that operations defined outside the package
// participate in backpropagation through Apply.
func TestApply_CustomFunction(t *testing.T) {
	x := scalar.New(3.0)

	y := scalar.Apply(squareFn{}, x)
	y.Backward()

	assert.InDelta(t, 9.0, y.Data(), 1e-9)
	assert.InDelta(t, 6.0, x.Derivative(), 1e-9)
}
