package termview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/mosaic"
)

// upperHalf fills the top half of a character cell.
const upperHalf = "▀"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Render draws img as lines of half-block cells under a title line, using
// the default lipgloss renderer.
func Render(title string, img *mosaic.Image) string {
	return render(lipgloss.DefaultRenderer(), title, img)
}

// cellKey identifies the colour pair of one character cell. The last byte
// marks cells without a lower pixel.
type cellKey [7]byte

func render(r *lipgloss.Renderer, title string, img *mosaic.Image) string {
	var b strings.Builder
	b.WriteString(r.NewStyle().Inherit(titleStyle).Render(title))
	b.WriteString(" ")
	b.WriteString(r.NewStyle().Inherit(hintStyle).Render(fmt.Sprintf("%dx%d", img.Width(), img.Height())))

	styles := make(map[cellKey]lipgloss.Style)
	for y := 0; y < img.Height(); y += 2 {
		b.WriteByte('\n')
		for x := range img.Width() {
			var k cellKey
			k[0], k[1], k[2] = img.GetRGB(x, y)
			if y+1 < img.Height() {
				k[3], k[4], k[5] = img.GetRGB(x, y+1)
			} else {
				k[6] = 1
			}

			st, ok := styles[k]
			if !ok {
				st = r.NewStyle().Foreground(hex(k[0], k[1], k[2]))
				if k[6] == 0 {
					st = st.Background(hex(k[3], k[4], k[5]))
				}
				styles[k] = st
			}
			b.WriteString(st.Render(upperHalf))
		}
	}
	return b.String()
}

func hex(r, g, b byte) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}
