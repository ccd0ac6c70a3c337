package image

import (
	"errors"
	"math"
	"testing"
)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestResizeIdentity(t *testing.T) {
	src := patterned(t, 5, 3, FormatRGB8, 0)
	got, err := Resize(src, 1.0, ResampleAuto)
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if got != src {
		t.Error("Resize(1.0) should return the input buffer untouched")
	}
}

func TestResizeInvalidScale(t *testing.T) {
	src := patterned(t, 2, 2, FormatGray8, 0)
	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Resize(src, scale, ResampleAuto); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("Resize(%v) error = %v, want %v", scale, err, ErrInvalidScale)
		}
	}
}

func TestResizeRejectsOversizedResult(t *testing.T) {
	src := patterned(t, 2, 2, FormatRGB8, 0)
	for _, scale := range []float64{1e19, 1e300, math.MaxFloat64, 40000} {
		got, err := Resize(src, scale, ResampleAuto)
		if !errors.Is(err, ErrInvalidScale) {
			t.Errorf("Resize(%v) error = %v, want %v", scale, err, ErrInvalidScale)
		}
		if got != nil {
			t.Errorf("Resize(%v) returned a %dx%d buffer alongside an error", scale, got.Width(), got.Height())
		}
	}
}

func TestScaledSize(t *testing.T) {
	tests := []struct {
		w, h  int
		scale float64
		wantW int
		wantH int
	}{
		{4, 4, 1, 4, 4},
		{4, 6, 0.5, 2, 3},
		{5, 3, 0.5, 3, 2},
		{2, 2, 3, 6, 6},
		{10, 10, 0.01, 1, 1},
	}
	for _, tt := range tests {
		w, h := ScaledSize(tt.w, tt.h, tt.scale)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("ScaledSize(%d, %d, %v) = %dx%d, want %dx%d", tt.w, tt.h, tt.scale, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestResizeAreaAveragesBlocks(t *testing.T) {
	src, _ := NewBuf(4, 4, FormatGray8)
	// Left half 100, right half alternating 0/200 so every 2x2 block averages 100.
	for y := range 4 {
		for x := range 4 {
			v := byte(100)
			if x >= 2 && (x+y)%2 == 0 {
				v = 0
			} else if x >= 2 {
				v = 200
			}
			_ = src.SetPixelBytes(x, y, []byte{v})
		}
	}

	for _, r := range []Resampler{ResampleAuto, ResampleArea} {
		dst, err := Resize(src, 0.5, r)
		if err != nil {
			t.Fatalf("Resize(%v) error = %v", r, err)
		}
		if dst.Width() != 2 || dst.Height() != 2 || dst.Format() != FormatGray8 {
			t.Fatalf("Resize(%v) = %dx%d %v, want 2x2 Gray8", r, dst.Width(), dst.Height(), dst.Format())
		}
		for y := range 2 {
			for x := range 2 {
				if got := dst.PixelBytes(x, y)[0]; absDiff(got, 100) > 1 {
					t.Errorf("%v: pixel (%d, %d) = %d, want ~100", r, x, y, got)
				}
			}
		}
	}
}

func TestResizeRGBKeepsFormat(t *testing.T) {
	src, _ := NewBuf(2, 2, FormatRGB8)
	for y := range 2 {
		for x := range 2 {
			_ = src.SetRGB(x, y, 200, 100, 50)
		}
	}

	tests := []struct {
		name  string
		scale float64
		r     Resampler
	}{
		{"downscale area", 0.5, ResampleArea},
		{"upscale auto", 2, ResampleAuto},
		{"upscale nearest", 3, ResampleNearest},
		{"upscale bilinear", 1.5, ResampleBilinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, err := Resize(src, tt.scale, tt.r)
			if err != nil {
				t.Fatalf("Resize() error = %v", err)
			}
			wantW, wantH := ScaledSize(2, 2, tt.scale)
			if dst.Width() != wantW || dst.Height() != wantH {
				t.Fatalf("size = %dx%d, want %dx%d", dst.Width(), dst.Height(), wantW, wantH)
			}
			if dst.Format() != FormatRGB8 {
				t.Fatalf("Format() = %v, want RGB8", dst.Format())
			}
			// A flat field stays flat under every filter.
			for y := range wantH {
				for x := range wantW {
					r, g, b := dst.GetRGB(x, y)
					if absDiff(r, 200) > 1 || absDiff(g, 100) > 1 || absDiff(b, 50) > 1 {
						t.Fatalf("pixel (%d, %d) = (%d, %d, %d), want ~(200, 100, 50)", x, y, r, g, b)
					}
				}
			}
		})
	}
}

func TestParseResampler(t *testing.T) {
	tests := []struct {
		in   string
		want Resampler
		ok   bool
	}{
		{"", ResampleAuto, true},
		{"AREA", ResampleArea, true},
		{" nearest ", ResampleNearest, true},
		{"linear", ResampleBilinear, true},
		{"cubic", ResampleCatmullRom, true},
		{"lanczos", ResampleAuto, false},
	}
	for _, tt := range tests {
		got, ok := ParseResampler(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseResampler(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && got.String() == "unknown" {
			t.Errorf("%v has no name", got)
		}
	}
}
