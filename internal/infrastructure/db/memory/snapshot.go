// Package memory provides mutex-guarded in-memory repositories with an
// optional JSON snapshot file. The snapshot is loaded once at construction and
// rewritten after every mutation, which mirrors the development-server
// flat-file persistence model behind the same repository interfaces the
// MongoDB implementations satisfy.
package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// loadSnapshot reads the JSON file at path into v. A missing file is not an
// error: the store simply starts empty.
func loadSnapshot(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read snapshot %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return nil
}

// writeSnapshot serializes v to path. Called with the store lock held, so
// snapshots are always consistent with the in-memory state.
func writeSnapshot(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}
