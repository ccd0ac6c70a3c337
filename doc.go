// Package mosaic composes same-shaped raster images into one grid canvas
// for side-by-side inspection.
//
// # Quick Start
//
//	import "github.com/gogpu/mosaic"
//
//	// frame, sobel and laplacian are image.Image values of equal size.
//	images := make([]*mosaic.Image, 0, 3)
//	for _, m := range []image.Image{frame, sobel, laplacian} {
//	    img, err := mosaic.ImageFromStd(m, mosaic.Color)
//	    if err != nil {
//	        return err
//	    }
//	    images = append(images, img)
//	}
//	canvas, err := mosaic.Compose(images, mosaic.WithScale(0.5))
//
// # Layout
//
// Without an explicit layout the grid is three columns wide and as tall as
// needed. Fewer than three images sit on a single row, and a perfect square
// count greater than one gets a square grid:
//
//	n=1 -> 1x1   n=2 -> 1x2   n=4 -> 2x2   n=5 -> 2x3   n=9 -> 3x3
//
// Explicit(rows, cols) fixes the grid; unused cells stay black.
//
// # Images
//
// Images carry 1 (Gray) or 3 (Color) channels of 8-bit samples. All images
// passed to one Compose call must share width, height and channel count.
// Compose never modifies its inputs and returns a newly allocated canvas.
//
// # Display
//
// Compose has no side effects. ComposeAndDisplay forwards the canvas to a
// DisplaySink; integration/termview provides one that draws into a
// terminal. Screen size probing lives in the separate screen package and
// is never consulted by the compositor.
//
// # Logging
//
// mosaic is silent by default. Call SetLogger to receive debug records.
package mosaic

// Version is the current version of the library.
const Version = "0.1.0"
