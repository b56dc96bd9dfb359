package scalar

import (
	"fmt"
	"math"

	"github.com/Effie-Li/minitorch/internal/autodiff"
)

// DerivativeCheck runs f forward and backward, then compares each input's
// accumulated derivative against the central-difference estimate of the same
// partial. It returns an error naming the first argument whose analytic and
// numerical derivatives disagree beyond a 1e-2 absolute-plus-relative
// tolerance.
//
// The passed-in scalars receive accumulated derivatives as a side effect, so
// callers should pass fresh leaves.
func DerivativeCheck(f func(...*Scalar) *Scalar, inputs ...*Scalar) error {
	out := f(inputs...)
	out.Backward()

	vals := make([]float64, len(inputs))
	for i, in := range inputs {
		vals[i] = in.Data()
	}

	// Re-evaluate through fresh leaves so the estimate never disturbs the
	// derivatives just accumulated on the caller's scalars.
	eval := func(vs ...float64) float64 {
		args := make([]*Scalar, len(vs))
		for i, v := range vs {
			args[i] = New(v)
		}
		return f(args...).Data()
	}

	for i, in := range inputs {
		numeric := autodiff.CentralDifference(eval, vals, i, 0)
		analytic := in.Derivative()
		if math.Abs(analytic-numeric) > 1e-2+1e-2*math.Abs(numeric) {
			return fmt.Errorf("derivative mismatch for argument %d (%s): analytic %f, central difference %f",
				i, in.Name(), analytic, numeric)
		}
	}
	return nil
}
