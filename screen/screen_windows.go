//go:build windows

package screen

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

// GetSystemMetrics indices for the primary display size.
const (
	smCxScreen = 0
	smCyScreen = 1
)

// primary queries the primary display through GetSystemMetrics.
type primary struct{}

func (primary) Resolution() (int, int, error) {
	if err := procGetSystemMetrics.Find(); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if w == 0 || h == 0 {
		return 0, 0, ErrNoDisplay
	}
	return int(w), int(h), nil
}
