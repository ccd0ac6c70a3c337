package image

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// ErrInvalidScale is returned when a scale factor is not a positive finite number.
var ErrInvalidScale = errors.New("image: invalid scale factor")

// Resampler selects the filter used when resizing.
type Resampler uint8

const (
	// ResampleAuto uses area averaging when shrinking and Catmull-Rom when
	// enlarging.
	ResampleAuto Resampler = iota

	// ResampleArea averages every source pixel that falls under a
	// destination pixel. Best for downscaling.
	ResampleArea

	// ResampleNearest picks the closest source pixel.
	// Fast but blocky.
	ResampleNearest

	// ResampleBilinear interpolates linearly between neighboring pixels.
	ResampleBilinear

	// ResampleCatmullRom uses the Catmull-Rom cubic kernel.
	// Sharpest result, slowest filter.
	ResampleCatmullRom
)

// String returns a string representation of the resampler.
func (r Resampler) String() string {
	switch r {
	case ResampleAuto:
		return "auto"
	case ResampleArea:
		return "area"
	case ResampleNearest:
		return "nearest"
	case ResampleBilinear:
		return "bilinear"
	case ResampleCatmullRom:
		return "catmullrom"
	default:
		return "unknown"
	}
}

// ParseResampler returns the resampler with the given name (case-insensitive).
// The empty string selects ResampleAuto.
func ParseResampler(name string) (Resampler, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return ResampleAuto, true
	case "area", "box":
		return ResampleArea, true
	case "nearest":
		return ResampleNearest, true
	case "bilinear", "linear":
		return ResampleBilinear, true
	case "catmullrom", "cubic":
		return ResampleCatmullRom, true
	default:
		return ResampleAuto, false
	}
}

// areaKernel is a box filter. x/image/draw widens kernel support by the
// reduction ratio, so every destination pixel averages exactly the source
// footprint it covers.
var areaKernel = &draw.Kernel{
	Support: 0.5,
	At: func(float64) float64 {
		return 1
	},
}

// interpolator resolves r for a resize whose factor is shrink (< 1) or not.
func (r Resampler) interpolator(shrink bool) draw.Interpolator {
	switch r {
	case ResampleArea:
		return areaKernel
	case ResampleNearest:
		return draw.NearestNeighbor
	case ResampleBilinear:
		return draw.BiLinear
	case ResampleCatmullRom:
		return draw.CatmullRom
	default:
		if shrink {
			return areaKernel
		}
		return draw.CatmullRom
	}
}

// CheckScale reports whether scale is a positive finite factor that keeps a
// width x height image of format within MaxBytes. Sizes are compared in
// floating point so that huge factors cannot wrap around.
func CheckScale(width, height int, format Format, scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	w := math.Max(1, math.Round(float64(width)*scale))
	h := math.Max(1, math.Round(float64(height)*scale))
	if w*h*float64(format.BytesPerPixel()) > MaxBytes {
		return fmt.Errorf("%w: %v turns %dx%d into %.0fx%.0f", ErrInvalidScale, scale, width, height, w, h)
	}
	return nil
}

// ScaledSize returns the dimensions of a width x height image scaled by
// scale, rounded to the nearest pixel and never below 1. The caller is
// expected to have validated scale with CheckScale.
func ScaledSize(width, height int, scale float64) (int, int) {
	w := max(1, int(math.Round(float64(width)*scale)))
	h := max(1, int(math.Round(float64(height)*scale)))
	return w, h
}

// Resize scales src uniformly on both axes.
// A scale of exactly 1 returns src itself; no resampling takes place.
func Resize(src *Buf, scale float64, r Resampler) (*Buf, error) {
	if err := CheckScale(src.width, src.height, src.format, scale); err != nil {
		return nil, err
	}
	if scale == 1 {
		return src, nil
	}
	w, h := ScaledSize(src.width, src.height, scale)
	return ResizeTo(src, w, h, r)
}

// ResizeTo scales src to exactly width x height. The output keeps the
// format of src.
func ResizeTo(src *Buf, width, height int, r Resampler) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width == src.width && height == src.height {
		return src.Clone(), nil
	}

	shrink := width < src.width || height < src.height
	interp := r.interpolator(shrink)

	if src.format == FormatGray8 {
		dst, err := NewBuf(width, height, FormatGray8)
		if err != nil {
			return nil, err
		}
		interp.Scale(dst.DrawTarget(), image.Rect(0, 0, width, height),
			src.DrawTarget(), image.Rect(0, 0, src.width, src.height), draw.Src, nil)
		return dst, nil
	}

	// x/image/draw has fast paths for *image.RGBA on both sides.
	tmp := image.NewRGBA(image.Rect(0, 0, width, height))
	interp.Scale(tmp, tmp.Bounds(), src.ToStd(), image.Rect(0, 0, src.width, src.height), draw.Src, nil)
	return FromStd(tmp, FormatRGB8)
}
