package image

import (
	"image"
	"image/color"
	"testing"
)

func TestFromStdGray(t *testing.T) {
	src := image.NewGray(image.Rect(10, 20, 13, 22))
	src.SetGray(11, 21, color.Gray{Y: 42})

	buf, err := FromStd(src, FormatGray8)
	if err != nil {
		t.Fatalf("FromStd() error = %v", err)
	}
	if buf.Width() != 3 || buf.Height() != 2 {
		t.Fatalf("bounds = %dx%d, want 3x2", buf.Width(), buf.Height())
	}
	if got := buf.PixelBytes(1, 1)[0]; got != 42 {
		t.Errorf("pixel (1, 1) = %d, want 42", got)
	}
}

func TestFromStdColorToRGB(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	buf, err := FromStd(src, FormatRGB8)
	if err != nil {
		t.Fatalf("FromStd() error = %v", err)
	}
	if r, g, b := buf.GetRGB(1, 0); r != 10 || g != 20 || b != 30 {
		t.Errorf("GetRGB(1, 0) = (%d, %d, %d), want (10, 20, 30)", r, g, b)
	}
}

func TestFromStdColorToGray(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	buf, err := FromStd(src, FormatGray8)
	if err != nil {
		t.Fatalf("FromStd() error = %v", err)
	}
	if got := buf.PixelBytes(0, 0)[0]; got != 255 {
		t.Errorf("white converted to %d, want 255", got)
	}
}

func TestToStdRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatGray8, FormatRGB8} {
		src := patterned(t, 3, 2, f, 5)
		back, err := FromStd(src.ToStd(), f)
		if err != nil {
			t.Fatalf("%v: FromStd() error = %v", f, err)
		}
		for y := range 2 {
			if string(back.RowBytes(y)) != string(src.RowBytes(y)) {
				t.Errorf("%v: row %d = %v, want %v", f, y, back.RowBytes(y), src.RowBytes(y))
			}
		}
	}
}

func TestDrawTargetWritesThrough(t *testing.T) {
	gray, _ := NewBuf(4, 4, FormatGray8)
	sub := gray.SubImage(1, 1, 2, 2)
	sub.DrawTarget().Set(1, 1, color.Gray{Y: 99})
	if got := gray.PixelBytes(2, 2)[0]; got != 99 {
		t.Errorf("gray view write landed as %d at (2, 2), want 99", got)
	}

	rgb, _ := NewBuf(2, 2, FormatRGB8)
	rgb.DrawTarget().Set(0, 1, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	if r, g, b := rgb.GetRGB(0, 1); r != 1 || g != 2 || b != 3 {
		t.Errorf("rgb view write = (%d, %d, %d), want (1, 2, 3)", r, g, b)
	}
}
