// Copyright 2025 The Minitorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package checkpoint provides saving and loading of training state
// snapshots.
//
// Example:
//
//	err := checkpoint.SaveCheckpoint("run/epoch_10.json", model, optimizer, 10)
//
// To resume training:
//
//	cp, err := checkpoint.Load("run/epoch_10.json", model, optimizer)
//	startEpoch := cp.Epoch + 1
package checkpoint

import (
	"github.com/Effie-Li/minitorch/internal/checkpoint"
)

// FormatVersion identifies the checkpoint file layout.
const FormatVersion = checkpoint.FormatVersion

// Common errors, detectable with errors.Is.
var (
	ErrChecksumMismatch   = checkpoint.ErrChecksumMismatch
	ErrUnsupportedVersion = checkpoint.ErrUnsupportedVersion
)

// Checkpoint represents a complete training state snapshot.
type Checkpoint = checkpoint.Checkpoint

// Model is implemented by module trees that can snapshot their parameters.
type Model = checkpoint.Model

// OptimizerState is implemented by optimizers that can snapshot their state.
type OptimizerState = checkpoint.OptimizerState

// Load reads a checkpoint from path and restores it into the given model
// and optimizer. The optimizer may be nil.
func Load(path string, model Model, optimizer OptimizerState) (*Checkpoint, error) {
	return checkpoint.Load(path, model, optimizer)
}

// SaveCheckpoint saves a checkpoint of the model, the optimizer (which may
// be nil), and the epoch to path.
func SaveCheckpoint(path string, model Model, optimizer OptimizerState, epoch int) error {
	return checkpoint.SaveCheckpoint(path, model, optimizer, epoch)
}
