package image

import (
	"errors"
	"fmt"
	"math"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrUnsupportedChannels is returned for channel counts other than 1 or 3.
	ErrUnsupportedChannels = errors.New("image: unsupported channel count")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when a pixel or region lies outside the buffer.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrFormatMismatch is returned when two buffers must share a format but do not.
	ErrFormatMismatch = errors.New("image: format mismatch")

	// ErrTooLarge is returned when a buffer would exceed MaxBytes.
	ErrTooLarge = errors.New("image: buffer too large")
)

// MaxBytes bounds the pixel storage of a single Buf.
const MaxBytes = math.MaxInt32

// CheckSize reports whether a width x height buffer of format fits in
// MaxBytes. The product is computed without overflowing int.
func CheckSize(width, height int, format Format) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	bpp := format.BytesPerPixel()
	if width > MaxBytes/bpp {
		return fmt.Errorf("%w: %dx%d %s", ErrTooLarge, width, height, format)
	}
	if row := width * bpp; height > MaxBytes/row {
		return fmt.Errorf("%w: %dx%d %s", ErrTooLarge, width, height, format)
	}
	return nil
}

// Buf is a rectangular pixel buffer.
//
// Pixels are stored row by row in a contiguous byte slice; consecutive rows
// start stride bytes apart. A freshly allocated Buf is zero filled, which is
// black for both supported formats.
//
// Thread safety: Buf is safe for concurrent read access. Writes require
// external synchronization.
type Buf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewBuf creates a zero-filled buffer with the given dimensions and format.
func NewBuf(width, height int, format Format) (*Buf, error) {
	if err := CheckSize(width, height, format); err != nil {
		return nil, err
	}

	stride := format.RowBytes(width)
	return &Buf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing pixel data without copying.
// The caller must keep data alive and unmodified for the lifetime of the Buf.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	// The last row does not need trailing padding.
	required := (height-1)*stride + format.RowBytes(width)
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &Buf{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone creates a deep, tightly packed copy of the buffer.
func (b *Buf) Clone() *Buf {
	c, _ := NewBuf(b.width, b.height, b.format)
	for y := range b.height {
		copy(c.RowBytes(y), b.RowBytes(y))
	}
	return c
}

// Width returns the width in pixels.
func (b *Buf) Width() int {
	return b.width
}

// Height returns the height in pixels.
func (b *Buf) Height() int {
	return b.height
}

// Stride returns the number of bytes between the starts of consecutive rows.
func (b *Buf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Buf) Format() Format {
	return b.format
}

// Channels returns the number of color channels per pixel.
func (b *Buf) Channels() int {
	return b.format.Channels()
}

// Bounds returns the dimensions as (width, height).
func (b *Buf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *Buf) Data() []byte {
	return b.data
}

// SameShape reports whether o has the same width, height and format as b.
func (b *Buf) SameShape(o *Buf) bool {
	return o != nil && b.width == o.width && b.height == o.height && b.format == o.format
}

// RowBytes returns the pixel bytes of row y, without padding.
// Returns nil if y is out of bounds.
func (b *Buf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// PixelBytes returns the raw bytes of pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (b *Buf) PixelBytes(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	return b.data[offset : offset+b.format.BytesPerPixel()]
}

// SetPixelBytes sets the raw bytes of pixel (x, y).
func (b *Buf) SetPixelBytes(x, y int, pixel []byte) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	copy(b.data[offset:offset+b.format.BytesPerPixel()], pixel)
	return nil
}

// GetRGB returns the color at (x, y). Gray pixels report r = g = b.
// Returns (0, 0, 0) if coordinates are out of bounds.
func (b *Buf) GetRGB(x, y int) (r, g, bl uint8) {
	pixel := b.PixelBytes(x, y)
	if pixel == nil {
		return 0, 0, 0
	}
	if b.format == FormatGray8 {
		return pixel[0], pixel[0], pixel[0]
	}
	return pixel[0], pixel[1], pixel[2]
}

// SetRGB sets the color at (x, y).
// Gray buffers store the standard luminance 0.299R + 0.587G + 0.114B.
func (b *Buf) SetRGB(x, y int, r, g, bl uint8) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}

	switch b.format {
	case FormatGray8:
		b.data[offset] = luma(r, g, bl)
	case FormatRGB8:
		b.data[offset] = r
		b.data[offset+1] = g
		b.data[offset+2] = bl
	}
	return nil
}

// Clear sets every pixel to zero (black).
func (b *Buf) Clear() {
	for y := range b.height {
		clear(b.RowBytes(y))
	}
}

// SubImage returns a view of the rectangle at (x, y) with the given size.
// The view shares pixel data with b. Returns nil if the rectangle is empty
// or not fully inside b.
func (b *Buf) SubImage(x, y, width, height int) *Buf {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > b.width || y+height > b.height {
		return nil
	}

	bpp := b.format.BytesPerPixel()
	start := y*b.stride + x*bpp
	end := (y+height-1)*b.stride + (x+width)*bpp

	return &Buf{
		data:   b.data[start:end],
		width:  width,
		height: height,
		stride: b.stride,
		format: b.format,
	}
}

// ByteSize returns the size of the underlying data in bytes.
func (b *Buf) ByteSize() int {
	return len(b.data)
}

// IsEmpty returns true if the buffer has zero dimensions.
func (b *Buf) IsEmpty() bool {
	return b == nil || b.width == 0 || b.height == 0
}

// luma converts RGB to 8-bit luminance with integer Rec. 601 weights.
func luma(r, g, b uint8) uint8 {
	return uint8((int(r)*299 + int(g)*587 + int(b)*114 + 500) / 1000)
}
