package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"syscall"
	"unsafe"

	"focusguard/internal/core/monitor"
)

const maxWindowTitle = 512

type destinationProvider struct {
	getForegroundWindow *syscall.LazyProc
	getWindowText       *syscall.LazyProc
}

func newDestinationProvider() monitor.DestinationSource {
	user32 := syscall.NewLazyDLL("user32.dll")
	return &destinationProvider{
		getForegroundWindow: user32.NewProc("GetForegroundWindow"),
		getWindowText:       user32.NewProc("GetWindowTextW"),
	}
}

// CurrentDestination returns the title of the foreground window.
func (provider *destinationProvider) CurrentDestination(context.Context) (string, error) {
	if err := provider.getForegroundWindow.Find(); err != nil {
		return "", fmt.Errorf("%w: %v", monitor.ErrDestinationUnsupported, err)
	}
	handle, _, _ := provider.getForegroundWindow.Call()
	if handle == 0 {
		return "", nil
	}

	buffer := make([]uint16, maxWindowTitle)
	length, _, err := provider.getWindowText.Call(handle, uintptr(unsafe.Pointer(&buffer[0])), uintptr(len(buffer)))
	if length == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return "", fmt.Errorf("get window text: %w", err)
		}
		return "", nil
	}
	return syscall.UTF16ToString(buffer[:length]), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}
