//go:build windows

package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeFileAtomic replaces path via a temp file in the same directory.
func writeFileAtomic(path string, payload []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".focusguard-stats-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp stats file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(payload); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write stats data: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("sync stats file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp stats file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace stats file: %w", err)
	}
	return nil
}
