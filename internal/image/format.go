// Package image provides the pixel buffers mosaic composes.
//
// Only the two layouts the compositor accepts are modelled: 8-bit
// grayscale and packed 24-bit RGB. Buffers are plain byte slices with an
// explicit stride so that sub-regions can be addressed without copying.
package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {
		BytesPerPixel: 1,
		Channels:      1,
		IsGrayscale:   true,
	},
	FormatRGB8: {
		BytesPerPixel: 3,
		Channels:      3,
		IsGrayscale:   false,
	},
}

// FormatForChannels returns the format storing the given number of
// channels. Only 1 (grayscale) and 3 (color) are supported.
func FormatForChannels(channels int) (Format, error) {
	switch channels {
	case 1:
		return FormatGray8, nil
	case 3:
		return FormatRGB8, nil
	default:
		return 0, ErrUnsupportedChannels
	}
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
