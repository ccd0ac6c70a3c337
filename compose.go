package mosaic

import (
	"fmt"
	"math"

	intImage "github.com/gogpu/mosaic/internal/image"
)

// Compose arranges images on a grid and returns the resulting canvas.
//
// All images must share width, height and channel count. The canvas is
// rows*height pixels tall and cols*width pixels wide before scaling, starts
// out black, and receives image i in cell i in row-major order. Cells past
// the last image stay black. The configured scale is applied last.
//
// Input is validated before anything is allocated; on error no canvas is
// returned. The images are only read.
func Compose(images []*Image, opts ...Option) (*Image, error) {
	o := buildOptions(opts)

	grid, err := PlanGrid(len(images), o.layout)
	if err != nil {
		return nil, err
	}
	if err := checkShapes(images); err != nil {
		return nil, err
	}
	if math.IsNaN(o.scale) || math.IsInf(o.scale, 0) || o.scale <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, o.scale)
	}
	width, height, err := canvasSize(grid, images[0])
	if err != nil {
		return nil, err
	}
	if err := intImage.CheckScale(width, height, images[0].Format(), o.scale); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, err)
	}

	canvas, err := intImage.NewBuf(width, height, images[0].Format())
	if err != nil {
		return nil, fmt.Errorf("mosaic: allocate canvas: %w", err)
	}
	if err := place(canvas, grid, images); err != nil {
		return nil, err
	}
	if len(o.captions) > 0 {
		if err := caption(canvas, grid, images[0], o.captions); err != nil {
			return nil, err
		}
	}

	Logger().Debug("mosaic: composed",
		"images", grid.Count,
		"grid", fmt.Sprintf("%dx%d", grid.Rows, grid.Cols),
		"canvas", fmt.Sprintf("%dx%d", canvas.Width(), canvas.Height()),
		"channels", canvas.Channels())

	if o.scale == 1 {
		return canvas, nil
	}

	scaled, err := intImage.Resize(canvas, o.scale, o.resampler)
	if err != nil {
		return nil, fmt.Errorf("mosaic: scale canvas: %w", err)
	}
	Logger().Debug("mosaic: scaled",
		"scale", o.scale,
		"resampler", o.resampler.String(),
		"size", fmt.Sprintf("%dx%d", scaled.Width(), scaled.Height()))
	return scaled, nil
}

// ComposeN is Compose for callers that carry a separate image count.
// It fails with ErrArgumentCountMismatch unless n == len(images).
func ComposeN(n int, images []*Image, opts ...Option) (*Image, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one image, got %d", ErrInvalidLayout, n)
	}
	if n != len(images) {
		return nil, fmt.Errorf("%w: declared %d, supplied %d", ErrArgumentCountMismatch, n, len(images))
	}
	return Compose(images, opts...)
}

// checkShapes verifies that every image is present, non-empty, uses a
// supported channel count and matches the first image.
func checkShapes(images []*Image) error {
	first := images[0]
	if first.IsEmpty() {
		return fmt.Errorf("%w: image 0 is empty", ErrDimensionMismatch)
	}
	if ch := first.Channels(); ch != Gray && ch != Color {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannelCount, ch)
	}

	for i, img := range images[1:] {
		if img.IsEmpty() {
			return fmt.Errorf("%w: image %d is empty", ErrDimensionMismatch, i+1)
		}
		if !first.SameShape(img) {
			return fmt.Errorf("%w: image %d is %dx%dx%d, image 0 is %dx%dx%d",
				ErrDimensionMismatch, i+1,
				img.Width(), img.Height(), img.Channels(),
				first.Width(), first.Height(), first.Channels())
		}
	}
	return nil
}

// canvasSize returns the unscaled canvas dimensions for grid cells shaped
// like cell. Grids whose canvas would not fit in a single buffer are
// rejected as ErrInvalidLayout.
func canvasSize(grid Grid, cell *Image) (width, height int, err error) {
	w, h := cell.Bounds()
	if grid.Cols > math.MaxInt/w || grid.Rows > math.MaxInt/h {
		return 0, 0, fmt.Errorf("%w: %dx%d grid of %dx%d cells overflows",
			ErrInvalidLayout, grid.Rows, grid.Cols, w, h)
	}
	width, height = grid.Cols*w, grid.Rows*h
	if err := intImage.CheckSize(width, height, cell.Format()); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return width, height, nil
}

// place copies images into their cells row by row. Row r receives
// grid.RowWidth(r) images, which consumes exactly grid.Count in total.
func place(canvas *Image, grid Grid, images []*Image) error {
	w, h := images[0].Bounds()
	next := 0
	for r := range grid.Rows {
		for c := range grid.RowWidth(r) {
			if err := intImage.Blit(canvas, images[next], c*w, r*h); err != nil {
				return fmt.Errorf("mosaic: place image %d: %w", next, err)
			}
			next++
		}
	}
	return nil
}

// caption labels each occupied cell with its caption.
func caption(canvas *Image, grid Grid, cell *Image, captions []string) error {
	w, h := cell.Bounds()
	for i := range min(grid.Count, len(captions)) {
		r, c := grid.Cell(i)
		if err := intImage.DrawLabel(canvas.SubImage(c*w, r*h, w, h), captions[i]); err != nil {
			return fmt.Errorf("mosaic: caption image %d: %w", i, err)
		}
	}
	return nil
}
