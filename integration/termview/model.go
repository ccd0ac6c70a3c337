package termview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// timeoutMsg ends a bounded wait.
type timeoutMsg struct{}

// model shows a rendered canvas until a key arrives or the wait elapses.
type model struct {
	view string
	hint string
	wait time.Duration
	done bool
}

func newModel(view string, wait time.Duration, r *lipgloss.Renderer) model {
	hint := "press any key to close"
	if wait > 0 {
		hint = "closing in " + wait.String() + ", or press any key"
	}
	return model{
		view: view,
		hint: r.NewStyle().Inherit(hintStyle).Render(hint),
		wait: wait,
	}
}

func (m model) Init() tea.Cmd {
	if m.wait <= 0 {
		return nil
	}
	return tea.Tick(m.wait, func(time.Time) tea.Msg {
		return timeoutMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg, timeoutMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return m.view + "\n"
	}
	return m.view + "\n" + m.hint + "\n"
}
