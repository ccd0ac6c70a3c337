package mosaic

import intImage "github.com/gogpu/mosaic/internal/image"

// Resampler selects the filter Compose uses to apply the scale factor.
type Resampler = intImage.Resampler

// Resampling filters.
const (
	// ResampleAuto averages pixel areas when shrinking and uses Catmull-Rom
	// when enlarging.
	ResampleAuto = intImage.ResampleAuto

	// ResampleArea averages every source pixel under a destination pixel.
	ResampleArea = intImage.ResampleArea

	// ResampleNearest picks the closest source pixel.
	ResampleNearest = intImage.ResampleNearest

	// ResampleBilinear interpolates linearly between neighboring pixels.
	ResampleBilinear = intImage.ResampleBilinear

	// ResampleCatmullRom uses the Catmull-Rom cubic kernel.
	ResampleCatmullRom = intImage.ResampleCatmullRom
)

// ParseResampler returns the resampler named s ("auto", "area", "nearest",
// "bilinear", "catmullrom"). The empty string selects ResampleAuto.
func ParseResampler(s string) (Resampler, bool) {
	return intImage.ParseResampler(s)
}

// Option configures a Compose call.
//
// Example:
//
//	canvas, err := mosaic.Compose(images,
//	    mosaic.WithLayout(mosaic.Explicit(1, 3)),
//	    mosaic.WithScale(0.5))
type Option func(*options)

type options struct {
	layout    Layout
	scale     float64
	resampler Resampler
	captions  []string
}

func defaultOptions() options {
	return options{
		layout:    Auto(),
		scale:     1.0,
		resampler: ResampleAuto,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLayout sets the grid layout. The default is Auto().
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithScale sets the uniform scale applied to the finished canvas.
// The default is 1, which leaves the canvas untouched.
func WithScale(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithResampler sets the filter used for scaling.
func WithResampler(r Resampler) Option {
	return func(o *options) {
		o.resampler = r
	}
}

// WithCaptions labels cells in order: captions[i] is drawn in the top-left
// corner of the cell holding image i, before scaling. Captions past the
// last image are ignored and empty captions draw nothing. Text is folded
// to ASCII.
func WithCaptions(captions ...string) Option {
	return func(o *options) {
		o.captions = captions
	}
}
