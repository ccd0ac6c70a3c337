package termview

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/mosaic"
)

func gradient(t *testing.T, w, h, channels int) *mosaic.Image {
	t.Helper()
	img, err := mosaic.NewImage(w, h, channels)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	for y := range h {
		for x := range w {
			img.SetRGB(x, y, byte(x*255/w), byte(y*255/h), 128)
		}
	}
	return img
}

func TestRenderShape(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		wantLines int
	}{
		{"even height", 6, 4, 2},
		{"odd height", 5, 5, 3},
		{"single pixel", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render("pic", gradient(t, tt.w, tt.h, mosaic.Color))
			lines := strings.Split(out, "\n")
			if len(lines) != tt.wantLines+1 {
				t.Fatalf("Render() produced %d lines, want %d", len(lines), tt.wantLines+1)
			}
			if !strings.Contains(lines[0], "pic") {
				t.Errorf("title line = %q, want it to contain the window id", lines[0])
			}
			for i, line := range lines[1:] {
				if got := lipgloss.Width(line); got != tt.w {
					t.Errorf("line %d width = %d, want %d", i, got, tt.w)
				}
				if strings.Count(line, upperHalf) != tt.w {
					t.Errorf("line %d has %d half blocks, want %d", i, strings.Count(line, upperHalf), tt.w)
				}
			}
		})
	}
}

func TestFit(t *testing.T) {
	img := gradient(t, 40, 20, mosaic.Gray)

	same, err := fit(img, 80, 40, mosaic.ResampleArea)
	if err != nil {
		t.Fatalf("fit() error = %v", err)
	}
	if same != img {
		t.Error("fit() resized an image that already fits")
	}

	small, err := fit(img, 10, 100, mosaic.ResampleArea)
	if err != nil {
		t.Fatalf("fit() error = %v", err)
	}
	if small.Width() != 10 || small.Height() != 5 {
		t.Errorf("fit() = %dx%d, want 10x5", small.Width(), small.Height())
	}
	if small.Channels() != mosaic.Gray {
		t.Errorf("fit() channels = %d, want %d", small.Channels(), mosaic.Gray)
	}
}

func TestDisplayNoWait(t *testing.T) {
	var out bytes.Buffer
	sink := New(WithOutput(&out), WithSize(10, 8))

	if err := sink.Display(context.Background(), "frames", gradient(t, 40, 40, mosaic.Color), mosaic.NoWait); err != nil {
		t.Fatalf("Display() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	// (8 - 3) * 2 = 10 pixel rows fit, so the canvas shrinks to 10x10.
	if len(lines) != 1+5 {
		t.Fatalf("Display() wrote %d lines, want 6:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "frames") || !strings.Contains(lines[0], "10x10") {
		t.Errorf("title line = %q", lines[0])
	}
}

func TestDisplayEmptyCanvas(t *testing.T) {
	sink := New(WithOutput(&bytes.Buffer{}))
	if err := sink.Display(context.Background(), "w", nil, mosaic.NoWait); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Display(nil) error = %v, want %v", err, ErrEmptyCanvas)
	}
}

func TestDisplayNilSink(t *testing.T) {
	var sink *Sink
	err := mosaic.ComposeAndDisplay(context.Background(), sink, "w", mosaic.NoWait,
		[]*mosaic.Image{gradient(t, 4, 4, mosaic.Gray)})
	if !errors.Is(err, ErrNilSink) {
		t.Errorf("ComposeAndDisplay(nil *Sink) error = %v, want %v", err, ErrNilSink)
	}
}

func TestDisplayTimeout(t *testing.T) {
	var out bytes.Buffer
	sink := New(WithOutput(&out), WithInput(strings.NewReader("")), WithSize(20, 10))

	start := time.Now()
	if err := sink.Display(context.Background(), "w", gradient(t, 4, 4, mosaic.Gray), 20*time.Millisecond); err != nil {
		t.Fatalf("Display() error = %v", err)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Error("Display() returned before the wait elapsed")
	}
}

func TestDisplayContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	sink := New(WithOutput(&bytes.Buffer{}), WithInput(strings.NewReader("")), WithSize(20, 10))
	err := sink.Display(ctx, "w", gradient(t, 4, 4, mosaic.Gray), mosaic.WaitForever)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Display() error = %v, want %v", err, context.DeadlineExceeded)
	}
}

func TestModel(t *testing.T) {
	r := lipgloss.DefaultRenderer()

	forever := newModel("view", mosaic.WaitForever, r)
	if forever.Init() != nil {
		t.Error("WaitForever model should not schedule a timeout")
	}
	if timed := newModel("view", time.Second, r); timed.Init() == nil {
		t.Error("bounded wait should schedule a timeout")
	}

	if !strings.Contains(forever.View(), "press any key") {
		t.Errorf("View() = %q, want a key hint", forever.View())
	}

	for _, msg := range []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}, timeoutMsg{}} {
		next, cmd := forever.Update(msg)
		if cmd == nil {
			t.Errorf("Update(%T) did not quit", msg)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Update(%T) command is not tea.Quit", msg)
		}
		if got := next.View(); got != "view\n" {
			t.Errorf("View() after quit = %q, want %q", got, "view\n")
		}
	}

	if _, cmd := forever.Update(tea.WindowSizeMsg{Width: 10, Height: 10}); cmd != nil {
		t.Error("window resize should not quit")
	}
}
