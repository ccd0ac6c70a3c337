package image

// Rect represents a rectangular region in pixel coordinates.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Blit copies src into dst with its top-left corner at (x, y).
//
// Both buffers must share a format and src must fit entirely inside dst;
// nothing is written otherwise. Source bytes are copied verbatim, row by
// row, so the destination region becomes an exact copy of src.
func Blit(dst, src *Buf, x, y int) error {
	if dst.format != src.format {
		return ErrFormatMismatch
	}

	region := dst.SubImage(x, y, src.width, src.height)
	if region == nil {
		return ErrOutOfBounds
	}

	for row := range src.height {
		copy(region.RowBytes(row), src.RowBytes(row))
	}
	return nil
}

// FillRect sets every byte of every pixel inside r to v.
// The rectangle is clipped to the buffer.
func FillRect(dst *Buf, r Rect, v byte) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.Width, dst.width), min(r.Y+r.Height, dst.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	bpp := dst.format.BytesPerPixel()
	for y := y0; y < y1; y++ {
		row := dst.RowBytes(y)[x0*bpp : x1*bpp]
		for i := range row {
			row[i] = v
		}
	}
}
