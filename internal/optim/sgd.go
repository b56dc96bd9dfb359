package optim

import (
	"fmt"

	"github.com/Effie-Li/minitorch/internal/nn"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * derivative
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + derivative
//	param = param - lr * velocity
//
// Momentum helps accelerate SGD in relevant directions and dampens oscillations.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]float64),
	}
}

// Step performs a single optimization step.
//
// Parameters with no derivative (not in the computation graph) are skipped.
func (s *SGD) Step() {
	for _, param := range s.params {
		if !param.HasDerivative() {
			// Parameter didn't participate in the forward pass, skip
			continue
		}
		grad := param.Derivative()

		if s.momentum == 0 {
			param.Update(param.Data() - s.lr*grad)
			continue
		}

		v := s.momentum*s.velocities[param] + grad
		s.velocities[param] = v
		param.Update(param.Data() - s.lr*v)
	}
}

// ZeroGrad clears derivatives for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the optimizer state for serialization.
//
// For SGD with momentum, this exports the velocity of each parameter as
// "velocity.{param_index}". Without momentum, returns an empty map.
func (s *SGD) StateDict() map[string]float64 {
	state := make(map[string]float64)
	if s.momentum == 0 {
		return state
	}
	for i, param := range s.params {
		v, exists := s.velocities[param]
		if !exists {
			continue // no velocity yet, parameter hasn't been stepped
		}
		state[fmt.Sprintf("velocity.%d", i)] = v
	}
	return state
}

// LoadStateDict restores velocity buffers saved by StateDict.
//
// If momentum is 0 the provided state is ignored. Parameters without an
// entry start from zero velocity on their next step.
func (s *SGD) LoadStateDict(state map[string]float64) error {
	if s.momentum == 0 {
		return nil
	}
	s.velocities = make(map[*nn.Parameter]float64)
	for i, param := range s.params {
		v, exists := state[fmt.Sprintf("velocity.%d", i)]
		if !exists {
			continue
		}
		s.velocities[param] = v
	}
	return nil
}
