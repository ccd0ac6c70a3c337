package image

import (
	"bytes"
	"testing"
)

func TestCleanLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sobel", "sobel"},
		{"café", "café"},
		{"cafe\u0301", "café"},
		{"Ωмега", "Ωмега"},
		{"tab\there", "tab here"},
		{" frame\n", "frame"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanLabel(tt.in); got != tt.want {
			t.Errorf("CleanLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDrawLabel(t *testing.T) {
	cell := patterned(t, 40, 30, FormatGray8, 100)
	before := cell.Clone()

	if err := DrawLabel(cell, "A"); err != nil {
		t.Fatalf("DrawLabel() error = %v", err)
	}

	// "A" advances about 8 pixels, so columns 0..9 lie inside the band.
	var lit, changedBelow int
	for y := range cell.Height() {
		for x := range cell.Width() {
			got := cell.PixelBytes(x, y)[0]
			if y >= LabelHeight && got != before.PixelBytes(x, y)[0] {
				changedBelow++
			}
			if y < LabelHeight && x < 10 && got >= 0x80 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no glyph pixels drawn inside the label band")
	}
	if changedBelow != 0 {
		t.Errorf("%d pixels below the label band changed", changedBelow)
	}
	// The far right of the cell lies past the band of a one-letter label.
	if got := cell.PixelBytes(39, 0)[0]; got != before.PixelBytes(39, 0)[0] {
		t.Errorf("pixel right of the band changed to %d", got)
	}
}

func TestShapeLabelCoversUnicode(t *testing.T) {
	lf, err := loadLabelFont()
	if err != nil {
		t.Fatalf("loadLabelFont() error = %v", err)
	}
	for _, text := range []string{"café", "Ωμέγα", "кошка"} {
		glyphs := shapeLabel(lf, text)
		if len(glyphs) == 0 {
			t.Errorf("shapeLabel(%q) returned no glyphs", text)
		}
		for _, g := range glyphs {
			if g.GlyphID == 0 {
				t.Errorf("shapeLabel(%q) fell back to .notdef", text)
				break
			}
		}
	}
}

func TestDrawLabelKeepsAccents(t *testing.T) {
	plain, _ := NewBuf(30, 30, FormatRGB8)
	accented, _ := NewBuf(30, 30, FormatRGB8)

	if err := DrawLabel(plain, "e"); err != nil {
		t.Fatalf("DrawLabel(e) error = %v", err)
	}
	if err := DrawLabel(accented, "é"); err != nil {
		t.Fatalf("DrawLabel(é) error = %v", err)
	}
	if bytes.Equal(plain.Data(), accented.Data()) {
		t.Error("é rendered the same as e")
	}
}

func TestDrawLabelClipsToSmallCell(t *testing.T) {
	cell := patterned(t, 6, 5, FormatGray8, 7)
	if err := DrawLabel(cell, "a caption far wider than the cell"); err != nil {
		t.Fatalf("DrawLabel() error = %v", err)
	}
	if cell.Width() != 6 || cell.Height() != 5 {
		t.Errorf("cell resized to %dx%d", cell.Width(), cell.Height())
	}
}

func TestDrawLabelEmpty(t *testing.T) {
	cell := patterned(t, 8, 8, FormatRGB8, 3)
	before := cell.Clone()
	for _, text := range []string{"", " \t\n"} {
		if err := DrawLabel(cell, text); err != nil {
			t.Fatalf("DrawLabel(%q) error = %v", text, err)
		}
	}
	if !bytes.Equal(cell.Data(), before.Data()) {
		t.Error("empty label modified the cell")
	}
}
