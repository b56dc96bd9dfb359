package checkpoint_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Effie-Li/minitorch/internal/checkpoint"
	"github.com/Effie-Li/minitorch/internal/nn"
	"github.com/Effie-Li/minitorch/internal/optim"
	"github.com/Effie-Li/minitorch/internal/scalar"
)

// trainedLayer returns a layer and optimizer that have taken one real
// training step, so both carry non-trivial state.
func trainedLayer(t *testing.T) (*nn.Linear, *optim.Adam) {
	t.Helper()
	layer := nn.NewLinear(2, 2)
	optimizer := optim.NewAdam(layer.Parameters(), optim.AdamConfig{LR: 0.01})

	out := layer.Forward([]*scalar.Scalar{scalar.New(0.5), scalar.New(-0.3)})
	loss := out[0].Mul(out[0]).Add(out[1].Mul(out[1]))
	loss.Backward()
	optimizer.Step()

	return layer, optimizer
}

// TestSaveLoad_RoundTrip tests that model and optimizer state survive a
// save/load cycle into freshly constructed objects.
func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "epoch_3.json")
	layer, optimizer := trainedLayer(t)

	cp := &checkpoint.Checkpoint{
		Model:     layer,
		Optimizer: optimizer,
		Epoch:     3,
		Loss:      0.125,
		Metadata:  map[string]string{"dataset": "Xor"},
	}
	require.NoError(t, cp.Save(path))

	restoredLayer := nn.NewLinear(2, 2)
	restoredOpt := optim.NewAdam(restoredLayer.Parameters(), optim.AdamConfig{LR: 0.01})
	restored, err := checkpoint.Load(path, restoredLayer, restoredOpt)
	require.NoError(t, err)

	assert.Equal(t, 3, restored.Epoch)
	assert.Equal(t, 0.125, restored.Loss)
	assert.Equal(t, 0.01, restored.LearningRate)
	assert.Equal(t, "Xor", restored.Metadata["dataset"])
	assert.False(t, restored.CreatedAt.IsZero())

	assert.Equal(t, layer.StateDict(), restoredLayer.StateDict())
	assert.Equal(t, optimizer.StateDict(), restoredOpt.StateDict())
	assert.Equal(t, 1, restoredOpt.GetTimestep())
}

// TestSave_WithoutOptimizer tests model-only checkpoints.
func TestSave_WithoutOptimizer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	layer := nn.NewLinear(3, 1)

	require.NoError(t, checkpoint.SaveCheckpoint(path, layer, nil, 7))

	restoredLayer := nn.NewLinear(3, 1)
	restored, err := checkpoint.Load(path, restoredLayer, nil)
	require.NoError(t, err)

	assert.Equal(t, 7, restored.Epoch)
	assert.Equal(t, layer.StateDict(), restoredLayer.StateDict())
}

// TestLoad_ChecksumMismatch tests that tampered contents are rejected.
func TestLoad_ChecksumMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cp.json")
	layer, optimizer := trainedLayer(t)
	require.NoError(t, checkpoint.SaveCheckpoint(path, layer, optimizer, 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	tampered := strings.Replace(string(data), `"epoch": 3`, `"epoch": 4`, 1)
	require.NotEqual(t, string(data), tampered, "tampering had no effect")
	require.NoError(t, os.WriteFile(path, []byte(tampered), 0o644))

	_, err = checkpoint.Load(path, nn.NewLinear(2, 2), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, checkpoint.ErrChecksumMismatch)
}

// TestLoad_FormattingDoesNotBreakChecksum tests that re-indenting the file
// leaves the logical contents valid.
func TestLoad_FormattingDoesNotBreakChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cp.json")
	layer := nn.NewLinear(2, 1)
	require.NoError(t, checkpoint.SaveCheckpoint(path, layer, nil, 1))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	reflowed := strings.ReplaceAll(string(data), "\n  ", "\n      ")
	require.NoError(t, os.WriteFile(path, []byte(reflowed), 0o644))

	_, err = checkpoint.Load(path, nn.NewLinear(2, 1), nil)
	assert.NoError(t, err)
}

// TestLoad_UnsupportedVersion tests the format version gate.
func TestLoad_UnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cp.json")
	layer := nn.NewLinear(2, 1)
	require.NoError(t, checkpoint.SaveCheckpoint(path, layer, nil, 1))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	bumped := strings.Replace(string(data), `"format_version": 1`, `"format_version": 99`, 1)
	require.NoError(t, os.WriteFile(path, []byte(bumped), 0o644))

	_, err = checkpoint.Load(path, nn.NewLinear(2, 1), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, checkpoint.ErrUnsupportedVersion)
}

// TestLoad_MissingFile tests the error for a nonexistent path.
func TestLoad_MissingFile(t *testing.T) {
	_, err := checkpoint.Load(filepath.Join(t.TempDir(), "nope.json"), nn.NewLinear(1, 1), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoad_ShapeMismatch tests loading into a model with different
// architecture.
func TestLoad_ShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cp.json")
	require.NoError(t, checkpoint.SaveCheckpoint(path, nn.NewLinear(2, 1), nil, 1))

	_, err := checkpoint.Load(path, nn.NewLinear(3, 2), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load model state")
}
