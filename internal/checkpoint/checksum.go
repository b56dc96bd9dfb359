package checkpoint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

// computeChecksum returns the hex encoded SHA-256 of the canonical JSON
// encoding of f with its checksum field cleared.
//
// encoding/json writes struct fields in declaration order and map keys
// sorted, so the encoding is stable for equal contents regardless of how
// the file was formatted on disk.
func computeChecksum(f *file) (string, error) {
	stripped := *f
	stripped.Checksum = ""
	payload, err := json.Marshal(&stripped)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode checkpoint for checksum")
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// validateChecksum recomputes the checksum of f and compares it with the
// stored one. Returns ErrChecksumMismatch if they differ.
func validateChecksum(f *file) error {
	computed, err := computeChecksum(f)
	if err != nil {
		return err
	}
	if computed != f.Checksum {
		return ErrChecksumMismatch
	}
	return nil
}
