package image

import (
	"bytes"
	"fmt"
	"image"
	"strings"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// labelSize is the label font size in pixels per em.
	labelSize = 12

	// labelPadding is the gap in pixels around label text.
	labelPadding = 2
)

// LabelHeight is the height in pixels of the band DrawLabel paints.
// Go Regular at 12px needs 11 pixels above the baseline and 3 below.
const LabelHeight = 14 + 2*labelPadding

// labelFont holds the embedded Go Regular font in the two forms labels
// need: a go-text font for shaping and an sfnt font for glyph outlines.
// Both are safe for concurrent use.
type labelFont struct {
	shape   *gotext.Font
	outline *sfnt.Font
	ascent  int
}

var loadLabelFont = sync.OnceValues(func() (*labelFont, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("image: parse label font: %w", err)
	}
	outline, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("image: parse label outlines: %w", err)
	}
	var buf sfnt.Buffer
	m, err := outline.Metrics(&buf, fixed.I(labelSize), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("image: label font metrics: %w", err)
	}
	return &labelFont{shape: face.Font, outline: outline, ascent: m.Ascent.Ceil()}, nil
})

// HarfbuzzShaper keeps per-call state and is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// CleanLabel prepares s for drawing: it is normalized to NFC so combining
// accents reach the shaper precomposed, control characters become spaces
// and surrounding space is trimmed.
func CleanLabel(s string) string {
	t := transform.Chain(norm.NFC, runes.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}))
	cleaned, _, err := transform.String(t, s)
	if err != nil {
		cleaned = s
	}
	return strings.TrimSpace(cleaned)
}

// shapeLabel runs text through HarfBuzz with the label font.
func shapeLabel(lf *labelFont, text string) []shaping.Glyph {
	rs := []rune(text)
	input := shaping.Input{
		Text:      rs,
		RunStart:  0,
		RunEnd:    len(rs),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(lf.shape),
		Size:      fixed.I(labelSize),
		Script:    labelScript(rs),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)
	return out.Glyphs
}

// labelScript returns the script of the first letter in rs.
func labelScript(rs []rune) language.Script {
	for _, r := range rs {
		if unicode.IsLetter(r) {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}

// DrawLabel paints text in white on a black band at the top-left corner of
// dst. The text is shaped with Go Regular, so accented and non-Latin file
// names keep their letters. The band is as wide as the text plus padding,
// clipped to dst; text that does not fit is cut off. An empty label draws
// nothing.
func DrawLabel(dst *Buf, text string) error {
	text = CleanLabel(text)
	if text == "" {
		return nil
	}
	lf, err := loadLabelFont()
	if err != nil {
		return err
	}

	glyphs := shapeLabel(lf, text)
	var advance fixed.Int26_6
	for _, g := range glyphs {
		advance += g.Advance
	}

	width := min(advance.Ceil()+2*labelPadding, dst.width)
	height := min(LabelHeight, dst.height)
	FillRect(dst, Rect{Width: width, Height: height}, 0)

	z := vector.NewRasterizer(width, height)
	var buf sfnt.Buffer
	pen := fixed.I(labelPadding)
	baseline := fixed.I(labelPadding + lf.ascent)
	for _, g := range glyphs {
		segments, err := lf.outline.LoadGlyph(&buf, sfnt.GlyphIndex(g.GlyphID), fixed.I(labelSize), nil)
		if err == nil {
			// sfnt outlines are y-down around the origin on the baseline.
			traceGlyph(z, segments, pen+g.XOffset, baseline-g.YOffset)
		}
		pen += g.Advance
		if pen.Floor() >= width {
			break
		}
	}
	z.Draw(dst.DrawTarget(), image.Rect(0, 0, width, height), image.White, image.Point{})
	return nil
}

// traceGlyph adds the contours of one glyph, offset to (ox, oy), to z.
func traceGlyph(z *vector.Rasterizer, segments sfnt.Segments, ox, oy fixed.Int26_6) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(ox+p.X) / 64, float32(oy+p.Y) / 64
	}
	open := false
	for _, s := range segments {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			z.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}
}
