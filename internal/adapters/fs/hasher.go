package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints session runs with XXHash.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}

// ComputeInputHash computes a single hash over the session identity, its
// positional arguments and the contents of its input files.
func (h *Hasher) ComputeInputHash(inputs domain.RunInputs, root string) (string, error) {
	hasher := xxhash.New()

	writeField(hasher, inputs.Session)
	writeField(hasher, inputs.Python)
	for _, arg := range inputs.PosArgs {
		writeField(hasher, arg)
	}
	_, _ = hasher.Write([]byte{0})

	for _, input := range inputs.Files {
		if err := h.hashInput(filepath.Join(root, input), hasher); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func writeField(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0})
}

// hashInput hashes a path, resolving it as a glob pattern when it does not exist.
func (h *Hasher) hashInput(path string, hasher io.Writer) error {
	if _, err := os.Stat(path); err == nil {
		return h.hashPath(path, hasher)
	}

	matches, err := filepath.Glob(path)
	if err != nil || len(matches) == 0 {
		return zerr.With(zerr.New("input not found"), "path", path)
	}
	for _, match := range matches {
		if err := h.hashPath(match, hasher); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashPath(path string, hasher io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	if !info.IsDir() {
		return h.hashFile(path, hasher)
	}
	for filePath := range h.walker.WalkFiles(path, nil) {
		if err := h.hashFile(filePath, hasher); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashFile(path string, hasher io.Writer) error {
	_, _ = hasher.Write([]byte(path))
	_, _ = hasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(hasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
