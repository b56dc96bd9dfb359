// Package operators provides the elementary float64 math the scalar
// operation library is built from.
//
// Forward functions compute values; the *Back functions compute the matching
// local derivative, taking the original input x and the derivative d flowing
// in from above. Comparison helpers return 1.0 for true and 0.0 for false so
// their results can flow through the same value type as everything else.
package operators

import "math"

// EPS guards Log and LogBack against zero inputs.
const EPS = 1e-6

// Mul returns x * y.
func Mul(x, y float64) float64 {
	return x * y
}

// Id returns x unchanged.
func Id(x float64) float64 {
	return x
}

// Add returns x + y.
func Add(x, y float64) float64 {
	return x + y
}

// Neg returns -x.
func Neg(x float64) float64 {
	return -x
}

// Lt returns 1.0 if x < y, else 0.0.
func Lt(x, y float64) float64 {
	if x < y {
		return 1.0
	}
	return 0.0
}

// Eq returns 1.0 if x == y, else 0.0.
func Eq(x, y float64) float64 {
	if x == y {
		return 1.0
	}
	return 0.0
}

// Max returns the larger of x and y.
func Max(x, y float64) float64 {
	if x > y {
		return x
	}
	return y
}

// IsClose reports |x - y| < 1e-2, as 1.0 or 0.0.
func IsClose(x, y float64) float64 {
	if math.Abs(x-y) < 1e-2 {
		return 1.0
	}
	return 0.0
}

// Sigmoid returns 1 / (1 + exp(-x)).
//
// Computed as exp(x) / (1 + exp(x)) for negative x so that the exponential
// never overflows.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

// ReLU returns x if x is positive, else 0.
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0.0
}

// Log returns ln(x + EPS). The offset keeps a zero input finite.
func Log(x float64) float64 {
	return math.Log(x + EPS)
}

// Exp returns e**x.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// LogBack returns d * dlog(x)/dx = d / (x + EPS).
func LogBack(x, d float64) float64 {
	return d / (x + EPS)
}

// Inv returns 1 / x.
func Inv(x float64) float64 {
	return 1.0 / x
}

// InvBack returns d * dinv(x)/dx = -d / x**2.
func InvBack(x, d float64) float64 {
	return -(1.0 / (x * x)) * d
}

// ReLUBack returns d where x is positive and 0 elsewhere.
func ReLUBack(x, d float64) float64 {
	if x > 0 {
		return d
	}
	return 0.0
}

// Sum returns the sum of xs; 0 for an empty slice.
func Sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}

// Prod returns the product of xs; 1 for an empty slice.
func Prod(xs []float64) float64 {
	total := 1.0
	for _, x := range xs {
		total *= x
	}
	return total
}
