package mosaic

import (
	"fmt"
	"image"
	"image/color"

	intImage "github.com/gogpu/mosaic/internal/image"
)

// Image is a rectangular pixel buffer with 1 (gray) or 3 (RGB) channels.
// Compose only reads the images it is given; the canvas it returns is a new
// Image owned by the caller.
type Image = intImage.Buf

// Supported channel counts.
const (
	// Gray is one 8-bit luminance channel per pixel.
	Gray = 1

	// Color is three 8-bit channels per pixel in R, G, B order.
	Color = 3
)

// formatFor maps a channel count to its storage format.
func formatFor(channels int) (intImage.Format, error) {
	f, err := intImage.FormatForChannels(channels)
	if err != nil {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannelCount, channels)
	}
	return f, nil
}

// NewImage creates a black image of the given size and channel count.
func NewImage(width, height, channels int) (*Image, error) {
	f, err := formatFor(channels)
	if err != nil {
		return nil, err
	}
	return intImage.NewBuf(width, height, f)
}

// ImageFromRaw wraps tightly packed pixel data without copying.
// len(data) must be at least width*height*channels.
func ImageFromRaw(data []byte, width, height, channels int) (*Image, error) {
	f, err := formatFor(channels)
	if err != nil {
		return nil, err
	}
	return intImage.FromRaw(data, width, height, f, f.RowBytes(width))
}

// ImageFromStd copies a standard library image into an Image with the given
// channel count. Alpha is dropped; color sources stored as Gray are reduced
// to luminance.
func ImageFromStd(img image.Image, channels int) (*Image, error) {
	f, err := formatFor(channels)
	if err != nil {
		return nil, err
	}
	return intImage.FromStd(img, f)
}

// ChannelsOf reports the channel count that preserves img: Gray for
// grayscale color models, Color otherwise.
func ChannelsOf(img image.Image) int {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return Gray
	default:
		return Color
	}
}
