package mosaic

import (
	"context"
	"fmt"
	"time"
)

// Wait durations understood by a DisplaySink.
const (
	// NoWait presents the canvas and returns immediately.
	NoWait time.Duration = -1

	// WaitForever blocks until the viewer signals input, e.g. a keypress.
	WaitForever time.Duration = 0
)

// DisplaySink presents a finished canvas.
//
// wait follows these rules:
//   - wait < 0: present and return without blocking
//   - wait == 0: block until an input signal arrives
//   - wait > 0: block until input arrives or wait elapses
//
// Implementations must also stop waiting when ctx is done. Failures such as
// "no display available" are the sink's to report.
type DisplaySink interface {
	Display(ctx context.Context, windowID string, canvas *Image, wait time.Duration) error
}

// DisplayFunc adapts an ordinary function to DisplaySink.
type DisplayFunc func(ctx context.Context, windowID string, canvas *Image, wait time.Duration) error

// Display calls f.
func (f DisplayFunc) Display(ctx context.Context, windowID string, canvas *Image, wait time.Duration) error {
	return f(ctx, windowID, canvas, wait)
}

// ComposeAndDisplay composes images and hands the canvas to sink together
// with windowID and wait, unchanged.
func ComposeAndDisplay(ctx context.Context, sink DisplaySink, windowID string, wait time.Duration, images []*Image, opts ...Option) error {
	if sink == nil {
		return ErrNoSink
	}

	canvas, err := Compose(images, opts...)
	if err != nil {
		return err
	}

	Logger().Debug("mosaic: display", "window", windowID, "wait", wait)
	if err := sink.Display(ctx, windowID, canvas, wait); err != nil {
		return fmt.Errorf("mosaic: display %q: %w", windowID, err)
	}
	return nil
}
