package optim

import (
	"fmt"
	"math"

	"github.com/Effie-Li/minitorch/internal/nn"
)

// Adam implements the Adam optimization algorithm.
//
// Adam (Adaptive Moment Estimation) computes adaptive learning rates for
// each parameter from estimates of the first and second moments of the
// derivatives:
//
//	m = beta1 * m + (1 - beta1) * grad        // first moment
//	v = beta2 * v + (1 - beta2) * grad²       // second moment
//	mHat = m / (1 - beta1^t)                  // bias correction
//	vHat = v / (1 - beta2^t)
//	param = param - lr * mHat / (sqrt(vHat) + eps)
//
// Reference: Kingma & Ba, "Adam: A Method for Stochastic Optimization" (2014).
//
// Example:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{
//	    LR: 0.001,
//	})
type Adam struct {
	params []*nn.Parameter
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64

	m map[*nn.Parameter]float64 // first moment estimates
	v map[*nn.Parameter]float64 // second moment estimates
	t int                       // timestep, incremented per Step
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64 // Learning rate (default: 0.001)
	Beta1 float64 // First moment decay (default: 0.9)
	Beta2 float64 // Second moment decay (default: 0.999)
	Eps   float64 // Numerical stability term (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over the given parameters.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Beta1,
		beta2:  config.Beta2,
		eps:    config.Eps,
		m:      make(map[*nn.Parameter]float64),
		v:      make(map[*nn.Parameter]float64),
	}
}

// Step performs a single optimization step.
//
// Increments the timestep, then updates every parameter that has an
// accumulated derivative. Parameters outside the computation graph are
// skipped.
func (a *Adam) Step() {
	a.t++
	for _, param := range a.params {
		if !param.HasDerivative() {
			continue
		}
		a.updateParameter(param)
	}
}

// updateParameter applies the Adam update rule to one parameter.
func (a *Adam) updateParameter(param *nn.Parameter) {
	grad := param.Derivative()

	m := a.beta1*a.m[param] + (1-a.beta1)*grad
	v := a.beta2*a.v[param] + (1-a.beta2)*grad*grad
	a.m[param] = m
	a.v[param] = v

	// Bias correction compensates for the zero initialization of the
	// moment estimates in early steps.
	mHat := m / (1 - math.Pow(a.beta1, float64(a.t)))
	vHat := v / (1 - math.Pow(a.beta2, float64(a.t)))

	param.Update(param.Data() - a.lr*mHat/(math.Sqrt(vHat)+a.eps))
}

// ZeroGrad clears derivatives for all parameters.
func (a *Adam) ZeroGrad() {
	for _, param := range a.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the number of steps taken so far.
func (a *Adam) GetTimestep() int {
	return a.t
}

// StateDict returns the optimizer state for serialization.
//
// Exports the moment estimates as "m.{param_index}" and "v.{param_index}"
// plus the timestep as "t".
func (a *Adam) StateDict() map[string]float64 {
	state := make(map[string]float64)
	state["t"] = float64(a.t)
	for i, param := range a.params {
		if m, exists := a.m[param]; exists {
			state[fmt.Sprintf("m.%d", i)] = m
		}
		if v, exists := a.v[param]; exists {
			state[fmt.Sprintf("v.%d", i)] = v
		}
	}
	return state
}

// LoadStateDict restores moment estimates and the timestep saved by
// StateDict. Parameters without an entry start from zero moments.
func (a *Adam) LoadStateDict(state map[string]float64) error {
	a.m = make(map[*nn.Parameter]float64)
	a.v = make(map[*nn.Parameter]float64)
	a.t = int(state["t"])
	for i, param := range a.params {
		if m, exists := state[fmt.Sprintf("m.%d", i)]; exists {
			a.m[param] = m
		}
		if v, exists := state[fmt.Sprintf("v.%d", i)]; exists {
			a.v[param] = v
		}
	}
	return nil
}
