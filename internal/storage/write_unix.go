//go:build !windows

package storage

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// writeFileAtomic replaces path durably: temp file, fsync, rename.
func writeFileAtomic(path string, payload []byte) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending stats file: %w", err)
	}
	defer func() {
		_ = pendingFile.Cleanup()
	}()

	if _, err := pendingFile.Write(payload); err != nil {
		return fmt.Errorf("write stats data: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace stats file: %w", err)
	}
	return nil
}
