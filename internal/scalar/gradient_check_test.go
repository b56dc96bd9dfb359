package scalar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Effie-Li/minitorch/internal/autodiff"
	"github.com/Effie-Li/minitorch/internal/scalar"
)

// TestDerivativeCheck_Ops verifies every differentiable operation against
// the central-difference oracle.
func TestDerivativeCheck_Ops(t *testing.T) {
	tests := []struct {
		name   string
		f      func(s ...*scalar.Scalar) *scalar.Scalar
		inputs []float64
	}{
		{"add", func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Add(s[1]) }, []float64{1.5, -2.0}},
		{"sub", func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Sub(s[1]) }, []float64{1.2, 3.4}},
		{"mul", func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Mul(s[1]) }, []float64{2.0, 3.0}},
		{"div", func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Div(s[1]) }, []float64{7.0, 2.0}},
		{"neg", func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Neg() }, []float64{1.7}},
		{"inv", func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Inv() }, []float64{2.5}},
		{"log", func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Log() }, []float64{3.0}},
		{"exp", func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Exp() }, []float64{1.2}},
		{"sigmoid", func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Sigmoid() }, []float64{0.7}},
		{"relu positive", func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].ReLU() }, []float64{2.0}},
		{"relu negative", func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].ReLU() }, []float64{-2.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := make([]*scalar.Scalar, len(tt.inputs))
			for i, v := range tt.inputs {
				inputs[i] = scalar.New(v)
			}
			if err := scalar.DerivativeCheck(tt.f, inputs...); err != nil {
				t.Error(err)
			}
		})
	}
}

// TestDerivativeCheck_Composed verifies derivatives of multi-operation
// expressions against the central-difference oracle.
func TestDerivativeCheck_Composed(t *testing.T) {
	tests := []struct {
		name   string
		f      func(s ...*scalar.Scalar) *scalar.Scalar
		inputs []float64
	}{
		{
			"cubic plus linear",
			func(s ...*scalar.Scalar) *scalar.Scalar {
				return s[0].Mul(s[0]).Mul(s[0]).Add(s[0].Add(s[0]))
			},
			[]float64{1.4},
		},
		{
			"sigmoid of product",
			func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Mul(s[1]).Sigmoid() },
			[]float64{0.8, -1.1},
		},
		{
			"log of square",
			func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Mul(s[0]).Log() },
			[]float64{2.0},
		},
		{
			"exp of product",
			func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Mul(s[1]).Exp() },
			[]float64{0.5, 0.3},
		},
		{
			"quotient plus term",
			func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Div(s[1]).Add(s[0]) },
			[]float64{3.0, 1.5},
		},
		{
			"relu of product",
			func(s ...*scalar.Scalar) *scalar.Scalar { return s[0].Mul(s[1]).ReLU() },
			[]float64{1.0, 2.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := make([]*scalar.Scalar, len(tt.inputs))
			for i, v := range tt.inputs {
				inputs[i] = scalar.New(v)
			}
			if err := scalar.DerivativeCheck(tt.f, inputs...); err != nil {
				t.Error(err)
			}
		})
	}
}

// TestDerivativeCheck_RandomPoints verifies a smooth composite expression at
// random evaluation points.
func TestDerivativeCheck_RandomPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := func(s ...*scalar.Scalar) *scalar.Scalar {
		return s[0].Mul(s[1]).Add(s[0]).Sigmoid()
	}
	for i := 0; i < 25; i++ {
		x := scalar.New(rng.Float64()*10 - 5)
		y := scalar.New(rng.Float64()*10 - 5)
		if err := scalar.DerivativeCheck(f, x, y); err != nil {
			t.Errorf("point %d: %v", i, err)
		}
	}
}

// TestBackward_DifferenceOfSquares checks a hand-derived gradient:
// z = (x+y)*(x-y) = x² - y², so dz/dx = 2x and dz/dy = -2y.
func TestBackward_DifferenceOfSquares(t *testing.T) {
	x := scalar.New(3.0)
	y := scalar.New(2.0)

	z := x.Add(y).Mul(x.Sub(y))
	z.Backward()

	if got, want := z.Data(), 5.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("z = %f, want %f", got, want)
	}
	if got, want := x.Derivative(), 6.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("dz/dx = %f, want %f", got, want)
	}
	if got, want := y.Derivative(), -4.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("dz/dy = %f, want %f", got, want)
	}
}

// brokenMulFn multiplies correctly but reports the wrong local derivatives.
type brokenMulFn struct{}

func (brokenMulFn) Forward(ctx *autodiff.Context, inputs ...float64) float64 {
	return inputs[0] * inputs[1]
}

func (brokenMulFn) Backward(ctx *autodiff.Context, dOutput float64) []float64 {
	return []float64{dOutput, dOutput}
}

// TestDerivativeCheck_DetectsWrongDerivative makes sure the oracle rejects an
// operation whose backward pass does not match its forward pass.
func TestDerivativeCheck_DetectsWrongDerivative(t *testing.T) {
	f := func(s ...*scalar.Scalar) *scalar.Scalar {
		return scalar.Apply(brokenMulFn{}, s[0], s[1])
	}
	err := scalar.DerivativeCheck(f, scalar.New(2.0), scalar.New(5.0))
	if err == nil {
		t.Error("expected a derivative mismatch, got nil")
	}
}
