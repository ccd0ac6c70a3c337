package image

import (
	"image"
	"image/color"
	"image/draw"
)

// FromStd converts a standard library image into a buffer of the given format.
// Color images stored as Gray8 are reduced to luminance; gray images stored
// as RGB8 replicate the gray value into every channel. Alpha is discarded.
func FromStd(img image.Image, format Format) (*Buf, error) {
	bounds := img.Bounds()
	buf, err := NewBuf(bounds.Dx(), bounds.Dy(), format)
	if err != nil {
		return nil, err
	}

	// Fast path: same memory layout.
	if gray, ok := img.(*image.Gray); ok && format == FormatGray8 {
		for y := range buf.height {
			start := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), gray.Pix[start:start+buf.width])
		}
		return buf, nil
	}

	if format == FormatGray8 {
		for y := range buf.height {
			row := buf.RowBytes(y)
			for x := range buf.width {
				c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
				row[x] = c.Y
			}
		}
		return buf, nil
	}

	// Premultiplied RGBA already holds the color composited over black.
	if rgba, ok := img.(*image.RGBA); ok {
		for y := range buf.height {
			row := buf.RowBytes(y)
			src := rgba.Pix[rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := range buf.width {
				copy(row[x*3:x*3+3], src[x*4:x*4+3])
			}
		}
		return buf, nil
	}

	for y := range buf.height {
		row := buf.RowBytes(y)
		for x := range buf.width {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA() returns 16-bit values, scale to 8-bit
			row[x*3] = byte(r >> 8)
			row[x*3+1] = byte(g >> 8)
			row[x*3+2] = byte(b >> 8)
		}
	}
	return buf, nil
}

// ToStd copies the buffer into a standard library image.
// Returns *image.Gray for Gray8 and an opaque *image.RGBA for RGB8.
func (b *Buf) ToStd() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	if b.format == FormatGray8 {
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray
	}

	rgba := image.NewRGBA(rect)
	for y := range b.height {
		row := b.RowBytes(y)
		dst := rgba.Pix[y*rgba.Stride:]
		for x := range b.width {
			dst[x*4] = row[x*3]
			dst[x*4+1] = row[x*3+1]
			dst[x*4+2] = row[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return rgba
}

// DrawTarget returns a draw.Image that writes straight into the buffer.
// Gray8 buffers are exposed as *image.Gray sharing the same bytes.
func (b *Buf) DrawTarget() draw.Image {
	if b.format == FormatGray8 {
		return &image.Gray{
			Pix:    b.data,
			Stride: b.stride,
			Rect:   image.Rect(0, 0, b.width, b.height),
		}
	}
	return rgbView{b}
}

// rgbView adapts an RGB8 buffer to draw.Image.
type rgbView struct {
	b *Buf
}

func (v rgbView) ColorModel() color.Model { return color.RGBAModel }

func (v rgbView) Bounds() image.Rectangle { return image.Rect(0, 0, v.b.width, v.b.height) }

func (v rgbView) At(x, y int) color.Color {
	r, g, b := v.b.GetRGB(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Set stores c composited over black, since the buffer has no alpha.
func (v rgbView) Set(x, y int, c color.Color) {
	r, g, b, _ := c.RGBA()
	_ = v.b.SetRGB(x, y, byte(r>>8), byte(g>>8), byte(b>>8))
}
