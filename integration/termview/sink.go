package termview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/mosaic"
	intImage "github.com/gogpu/mosaic/internal/image"
)

var (
	// ErrEmptyCanvas is returned when Display receives a nil or empty canvas.
	ErrEmptyCanvas = errors.New("termview: empty canvas")

	// ErrNilSink is returned when Display is called on a nil *Sink.
	ErrNilSink = errors.New("termview: nil sink")
)

// Terminal size used when the output is not a terminal.
const (
	defaultCols = 80
	defaultRows = 24
)

// chromeRows is the number of terminal rows kept free for the title, the
// key hint and the shell prompt.
const chromeRows = 3

// Sink renders canvases to a terminal. The zero value is not usable; create
// one with New.
type Sink struct {
	out       io.Writer
	in        io.Reader
	cols      int
	rows      int
	resampler mosaic.Resampler
	renderer  *lipgloss.Renderer
}

// Option configures a Sink.
type Option func(*Sink)

// WithOutput sets the writer the canvas is drawn to. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Sink) {
		s.out = w
	}
}

// WithInput sets the reader key presses are read from. Default: os.Stdin.
func WithInput(r io.Reader) Option {
	return func(s *Sink) {
		s.in = r
	}
}

// WithSize fixes the terminal size in character cells instead of querying
// the output. Non-positive values are ignored.
func WithSize(cols, rows int) Option {
	return func(s *Sink) {
		if cols > 0 && rows > 0 {
			s.cols, s.rows = cols, rows
		}
	}
}

// WithResampler selects the filter used to fit the canvas to the terminal.
// Default: mosaic.ResampleArea.
func WithResampler(r mosaic.Resampler) Option {
	return func(s *Sink) {
		s.resampler = r
	}
}

// New creates a Sink.
func New(opts ...Option) *Sink {
	s := &Sink{
		out:       os.Stdout,
		in:        os.Stdin,
		resampler: mosaic.ResampleArea,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.renderer = lipgloss.NewRenderer(s.out)
	return s
}

// Display implements mosaic.DisplaySink.
func (s *Sink) Display(ctx context.Context, windowID string, canvas *mosaic.Image, wait time.Duration) error {
	// A nil *Sink stored in a mosaic.DisplaySink is not a nil interface.
	if s == nil {
		return ErrNilSink
	}
	if canvas.IsEmpty() {
		return ErrEmptyCanvas
	}

	cols, rows := s.size()
	fitted, err := fit(canvas, cols, (rows-chromeRows)*2, s.resampler)
	if err != nil {
		return err
	}
	mosaic.Logger().Debug("termview: display",
		"window", windowID,
		"canvas", fmt.Sprintf("%dx%d", canvas.Width(), canvas.Height()),
		"shown", fmt.Sprintf("%dx%d", fitted.Width(), fitted.Height()),
		"terminal", fmt.Sprintf("%dx%d", cols, rows))

	view := render(s.renderer, windowID, fitted)
	if wait < 0 {
		_, err := io.WriteString(s.out, view+"\n")
		return err
	}

	p := tea.NewProgram(newModel(view, wait, s.renderer),
		tea.WithContext(ctx),
		tea.WithInput(s.in),
		tea.WithOutput(s.out))
	if _, err := p.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("termview: %w", err)
	}
	return nil
}

// size returns the terminal size in cells, never smaller than one usable row.
func (s *Sink) size() (cols, rows int) {
	cols, rows = s.cols, s.rows
	if cols == 0 {
		var ok bool
		if cols, rows, ok = terminalSize(s.out); !ok {
			cols, rows = defaultCols, defaultRows
		}
	}
	return cols, max(rows, chromeRows+1)
}

// fit shrinks img so that it is at most maxW x maxH pixels, keeping the
// aspect ratio. Images that already fit are returned unchanged.
func fit(img *mosaic.Image, maxW, maxH int, r mosaic.Resampler) (*mosaic.Image, error) {
	scale := min(1, float64(maxW)/float64(img.Width()), float64(maxH)/float64(img.Height()))
	if scale >= 1 {
		return img, nil
	}
	return intImage.Resize(img, scale, r)
}
