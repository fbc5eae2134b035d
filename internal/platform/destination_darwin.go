package platform

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"focusguard/internal/core/monitor"
)

const frontWindowScript = `tell application "System Events"
	set frontApp to first application process whose frontmost is true
	if (count of windows of frontApp) is 0 then return name of frontApp
	return name of front window of frontApp
end tell`

type destinationProvider struct {
	osascriptPath string
}

func newDestinationProvider() monitor.DestinationSource {
	path, err := exec.LookPath("osascript")
	if err != nil {
		return unsupportedDestinationProvider{}
	}
	return &destinationProvider{osascriptPath: path}
}

// CurrentDestination returns the title of the frontmost window.
func (provider *destinationProvider) CurrentDestination(ctx context.Context) (string, error) {
	output, err := exec.CommandContext(ctx, provider.osascriptPath, "-e", frontWindowScript).Output()
	if err != nil {
		return "", fmt.Errorf("osascript: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}
