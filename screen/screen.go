// Package screen reports the resolution of the primary display.
//
// Each target platform has its own Provider behind Primary: glfw on
// desktop Unix systems built with cgo, GetSystemMetrics on Windows, and a
// stub reporting ErrNoDisplay everywhere else. Nothing in the compositor
// depends on this package; it serves utilities such as FitScale that size
// a canvas for the screen.
package screen

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoDisplay is returned when no display can be queried.
var ErrNoDisplay = errors.New("screen: no display available")

// Provider reports the primary display resolution in pixels.
type Provider interface {
	Resolution() (width, height int, err error)
}

// ProviderFunc adapts an ordinary function to Provider.
type ProviderFunc func() (width, height int, err error)

// Resolution calls f.
func (f ProviderFunc) Resolution() (int, int, error) {
	return f()
}

// Static is a Provider with a fixed resolution, useful for headless
// environments and configuration overrides.
type Static struct {
	Width, Height int
}

// Resolution returns the fixed size, or ErrNoDisplay if it is not positive.
func (s Static) Resolution() (int, int, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrNoDisplay, s.Width, s.Height)
	}
	return s.Width, s.Height, nil
}

// Primary returns the Provider for the platform the binary was built for.
//
// On Linux, macOS and FreeBSD built with cgo the Provider talks to glfw,
// which only works from the process's main OS thread. Programs that call
// its Resolution method must pin the main goroutine to that thread before
// main runs:
//
//	func init() { runtime.LockOSThread() }
//
// and call Resolution from the main goroutine. The package does not do
// this itself, so importing it never changes the scheduling of a program.
func Primary() Provider {
	return primary{}
}

// FitScale returns the largest scale, at most 1, at which a canvas of
// canvasW x canvasH pixels fits inside margin times the screen reported by
// p. margin must lie in (0, 1]; values outside that range are treated as 1.
func FitScale(canvasW, canvasH int, p Provider, margin float64) (float64, error) {
	if canvasW <= 0 || canvasH <= 0 {
		return 0, fmt.Errorf("screen: invalid canvas size %dx%d", canvasW, canvasH)
	}
	w, h, err := p.Resolution()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(margin) || margin <= 0 || margin > 1 {
		margin = 1
	}

	scale := min(1,
		margin*float64(w)/float64(canvasW),
		margin*float64(h)/float64(canvasH))
	return scale, nil
}
