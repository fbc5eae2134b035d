package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"focusguard/internal/core/monitor"
)

type destinationProvider struct {
	xdotoolPath string
}

func newDestinationProvider() monitor.DestinationSource {
	if strings.EqualFold(os.Getenv("XDG_SESSION_TYPE"), "wayland") {
		return unsupportedDestinationProvider{}
	}
	path, err := exec.LookPath("xdotool")
	if err != nil {
		return unsupportedDestinationProvider{}
	}
	return &destinationProvider{xdotoolPath: path}
}

// CurrentDestination returns the title of the focused X11 window.
// Browsers put the page title, and often the host, there.
func (provider *destinationProvider) CurrentDestination(ctx context.Context) (string, error) {
	output, err := exec.CommandContext(ctx, provider.xdotoolPath, "getactivewindow", "getwindowname").Output()
	if err != nil {
		return "", fmt.Errorf("xdotool: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
