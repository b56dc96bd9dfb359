// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read the derivatives that backward passes accumulate on
// parameter leaves, so Step takes no arguments.
//
// Design inspired by PyTorch's torch.optim.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss(model, data)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update model parameters based on accumulated derivatives to
// minimize the loss function during training.
//
// All optimizers must implement:
//   - Step: Apply derivative updates to parameters
//   - ZeroGrad: Clear derivatives before the next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update to all parameters.
	//
	// Reads each parameter's accumulated derivative and replaces the
	// parameter value in place. Parameters that no backward pass reached
	// are skipped.
	Step()

	// ZeroGrad clears all parameter derivatives.
	//
	// This should be called before each forward pass to prevent
	// accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	//
	// Useful for monitoring and learning rate scheduling.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
