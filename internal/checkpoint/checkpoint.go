// Package checkpoint implements saving and loading of training state
// snapshots.
//
// A checkpoint is a JSON file holding model parameters, optional optimizer
// state, and training metadata, protected by a SHA-256 checksum. Checkpoints
// enable training to be resumed from a specific point, which matters for
// long-running jobs and for comparing runs.
//
// Example:
//
//	cp := &checkpoint.Checkpoint{
//	    Model:     model,
//	    Optimizer: optimizer,
//	    Epoch:     10,
//	    Loss:      0.123,
//	}
//	err := cp.Save("run/epoch_10.json")
//
// To resume training:
//
//	cp, err := checkpoint.Load("run/epoch_10.json", model, optimizer)
//	startEpoch := cp.Epoch + 1
package checkpoint

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// FormatVersion identifies the checkpoint file layout.
const FormatVersion = 1

// Model is implemented by module trees that can snapshot their parameters.
type Model interface {
	StateDict() map[string]float64
	LoadStateDict(state map[string]float64) error
}

// OptimizerState is implemented by optimizers that can snapshot their state.
//
// This interface is what checkpoints serialize, so the package does not
// depend on any concrete optimizer.
type OptimizerState interface {
	StateDict() map[string]float64
	LoadStateDict(state map[string]float64) error
	GetLR() float64
}

// Checkpoint represents a complete training state snapshot.
//
// The Model and, when present, the Optimizer are serialized through their
// state dictionaries. The remaining fields are training metadata carried
// alongside them.
type Checkpoint struct {
	Model        Model             // The network being trained
	Optimizer    OptimizerState    // Optional optimizer with its state
	Epoch        int               // Training epoch number
	Loss         float64           // Loss value at this checkpoint
	LearningRate float64           // Learning rate at this checkpoint
	Metadata     map[string]string // Additional training metadata
	CreatedAt    time.Time         // When the checkpoint was created
}

// file is the on-disk JSON layout.
type file struct {
	FormatVersion int                `json:"format_version"`
	CreatedAt     time.Time          `json:"created_at"`
	Epoch         int                `json:"epoch"`
	Loss          float64            `json:"loss"`
	LearningRate  float64            `json:"learning_rate"`
	Metadata      map[string]string  `json:"metadata,omitempty"`
	Model         map[string]float64 `json:"model"`
	Optimizer     map[string]float64 `json:"optimizer,omitempty"`
	Checksum      string             `json:"checksum"`
}

// Save writes the checkpoint to path.
//
// The learning rate is taken from the optimizer when one is attached,
// otherwise from the LearningRate field.
func (c *Checkpoint) Save(path string) error {
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	f := &file{
		FormatVersion: FormatVersion,
		CreatedAt:     createdAt,
		Epoch:         c.Epoch,
		Loss:          c.Loss,
		LearningRate:  c.LearningRate,
		Metadata:      c.Metadata,
		Model:         c.Model.StateDict(),
	}
	if c.Optimizer != nil {
		f.Optimizer = c.Optimizer.StateDict()
		f.LearningRate = c.Optimizer.GetLR()
	}

	checksum, err := computeChecksum(f)
	if err != nil {
		return err
	}
	f.Checksum = checksum

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode checkpoint")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write checkpoint %q", path)
	}
	return nil
}

// Load reads a checkpoint from path and restores it into the given model
// and optimizer.
//
// The model must be pre-constructed with the same architecture as when the
// checkpoint was saved. The optimizer may be nil, in which case any saved
// optimizer state is left unapplied.
//
// Returns ErrUnsupportedVersion for files written by an unknown layout and
// ErrChecksumMismatch when the contents do not match their checksum, both
// detectable with errors.Is.
func Load(path string, model Model, optimizer OptimizerState) (*Checkpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read checkpoint %q", path)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "failed to decode checkpoint %q", path)
	}
	if f.FormatVersion != FormatVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "checkpoint %q has format version %d", path, f.FormatVersion)
	}
	if err := validateChecksum(&f); err != nil {
		return nil, errors.Wrapf(err, "checkpoint %q", path)
	}

	if err := model.LoadStateDict(f.Model); err != nil {
		return nil, errors.Wrap(err, "failed to load model state")
	}
	if optimizer != nil && f.Optimizer != nil {
		if err := optimizer.LoadStateDict(f.Optimizer); err != nil {
			return nil, errors.Wrap(err, "failed to load optimizer state")
		}
	}

	return &Checkpoint{
		Model:        model,
		Optimizer:    optimizer,
		Epoch:        f.Epoch,
		Loss:         f.Loss,
		LearningRate: f.LearningRate,
		Metadata:     f.Metadata,
		CreatedAt:    f.CreatedAt,
	}, nil
}

// SaveCheckpoint is a convenience function to save a checkpoint.
//
// This is equivalent to creating a Checkpoint struct and calling Save, but
// with a simpler API for the common case.
func SaveCheckpoint(path string, model Model, optimizer OptimizerState, epoch int) error {
	cp := &Checkpoint{
		Model:     model,
		Optimizer: optimizer,
		Epoch:     epoch,
	}
	return cp.Save(path)
}
