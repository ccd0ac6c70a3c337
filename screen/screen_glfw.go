//go:build (linux || darwin || freebsd) && cgo

package screen

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// primary queries the primary monitor's current video mode through glfw.
// Resolution must run on the main OS thread; see Primary.
type primary struct{}

func (primary) Resolution() (int, int, error) {
	if err := glfw.Init(); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}
	defer glfw.Terminate()

	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		return 0, 0, ErrNoDisplay
	}
	vm := mon.GetVideoMode()
	if vm == nil || vm.Width == 0 || vm.Height == 0 {
		return 0, 0, fmt.Errorf("%w: monitor %q reports no video mode", ErrNoDisplay, mon.GetName())
	}
	return vm.Width, vm.Height, nil
}
