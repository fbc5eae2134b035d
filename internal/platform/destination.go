package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"focusguard/internal/core/monitor"
)

// NewDestinationProvider returns a destination source.
// A non-empty command is run on every poll and its stdout is the destination;
// otherwise the foreground window title of the current desktop is used.
func NewDestinationProvider(command []string) monitor.DestinationSource {
	if len(command) > 0 && strings.TrimSpace(command[0]) != "" {
		return &commandProvider{name: command[0], args: command[1:]}
	}
	return newDestinationProvider()
}

type commandProvider struct {
	name string
	args []string
}

func (provider *commandProvider) CurrentDestination(ctx context.Context) (string, error) {
	output, err := exec.CommandContext(ctx, provider.name, provider.args...).Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", monitor.ErrDestinationUnsupported, provider.name)
		}
		return "", fmt.Errorf("run %s: %w", provider.name, err)
	}
	return strings.TrimSpace(string(output)), nil
}

type unsupportedDestinationProvider struct{}

func (unsupportedDestinationProvider) CurrentDestination(context.Context) (string, error) {
	return "", monitor.ErrDestinationUnsupported
}
