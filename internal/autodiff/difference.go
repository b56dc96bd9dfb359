package autodiff

// DefaultEpsilon is the step size CentralDifference uses when the caller
// passes zero.
const DefaultEpsilon = 1e-6

// CentralDifference approximates the partial derivative of f with respect to
// its arg-th argument at vals, using the symmetric finite difference:
//
//	(f(..., x+eps, ...) - f(..., x-eps, ...)) / (2 * eps)
//
// A zero epsilon selects DefaultEpsilon. The caller's vals slice is not
// modified and f is evaluated exactly twice.
//
// CentralDifference is the independent oracle used to cross-check analytic
// derivatives in tests; it plays no role in the production backward path.
func CentralDifference(f func(...float64) float64, vals []float64, arg int, epsilon float64) float64 {
	if epsilon == 0 {
		epsilon = DefaultEpsilon
	}

	shifted := make([]float64, len(vals))
	copy(shifted, vals)

	shifted[arg] = vals[arg] + epsilon
	v1 := f(shifted...)
	shifted[arg] = vals[arg] - epsilon
	v2 := f(shifted...)

	return (v1 - v2) / (2 * epsilon)
}
