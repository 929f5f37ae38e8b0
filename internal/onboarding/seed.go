package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadSnapshot decodes and validates a JSON data set.
func LoadSnapshot(r io.Reader) (Snapshot, error) {
	if r == nil {
		return Snapshot{}, fmt.Errorf("%w: reader is required", ErrInvalidSnapshot)
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var snapshot Snapshot
	if err := dec.Decode(&snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := snapshot.Validate(); err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}

// LoadSnapshotFile reads a JSON data set from path.
func LoadSnapshotFile(path string) (Snapshot, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Snapshot{}, fmt.Errorf("%w: seed path is required", ErrInvalidSnapshot)
	}
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	snapshot, err := LoadSnapshot(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load seed file %s: %w", path, err)
	}
	return snapshot, nil
}

// FileSource rereads a seed file on every load so edits show up without a restart.
type FileSource struct {
	Path string
}

// LoadSnapshot reads and validates the seed file.
func (s FileSource) LoadSnapshot(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	return LoadSnapshotFile(s.Path)
}

// Resolve returns the seed-file data set when path is set, otherwise the mock data.
func Resolve(path string) (Snapshot, error) {
	if strings.TrimSpace(path) == "" {
		return MockSnapshot(), nil
	}
	return LoadSnapshotFile(path)
}
