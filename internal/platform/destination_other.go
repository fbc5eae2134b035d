//go:build !linux && !darwin && !windows

package platform

import (
	"path/filepath"

	"focusguard/internal/core/monitor"
)

func newDestinationProvider() monitor.DestinationSource {
	return unsupportedDestinationProvider{}
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
