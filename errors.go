package mosaic

import "errors"

// Validation errors. Compose reports them before allocating anything, so a
// failed call never yields a partial canvas. Details are wrapped around
// these values; test with errors.Is.
var (
	// ErrUnsupportedChannelCount is returned for channel counts other than 1 or 3.
	ErrUnsupportedChannelCount = errors.New("mosaic: unsupported channel count")

	// ErrArgumentCountMismatch is returned when the declared image count
	// differs from the number of images supplied.
	ErrArgumentCountMismatch = errors.New("mosaic: image count mismatch")

	// ErrDimensionMismatch is returned when the images do not all share the
	// same width, height and channel count.
	ErrDimensionMismatch = errors.New("mosaic: image dimension mismatch")

	// ErrInvalidLayout is returned for an empty image set, a non-positive
	// explicit row or column count, or an explicit grid too small for the images.
	ErrInvalidLayout = errors.New("mosaic: invalid layout")

	// ErrInvalidScale is returned when the scale factor is not a positive finite number.
	ErrInvalidScale = errors.New("mosaic: invalid scale factor")

	// ErrNoSink is returned by ComposeAndDisplay when no DisplaySink is given.
	ErrNoSink = errors.New("mosaic: no display sink")
)
