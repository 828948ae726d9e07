package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jhardy773/security-plus-study-app/internal/bank"
	"github.com/jhardy773/security-plus-study-app/internal/config"
	"github.com/jhardy773/security-plus-study-app/internal/progress"
	"github.com/jhardy773/security-plus-study-app/internal/router"
	"github.com/jhardy773/security-plus-study-app/internal/screen"
	"github.com/jhardy773/security-plus-study-app/internal/screens/dashboard"
	"github.com/jhardy773/security-plus-study-app/internal/ui/layout"
)

// Options carries the wired dependencies into the TUI.
type Options struct {
	Repo       *bank.Repository
	Engine     *progress.Engine
	FileConfig config.FileConfig
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *progress.Engine
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	home := dashboard.New(opts.Repo, opts.Engine, opts.FileConfig)
	return AppModel{
		router: router.New(home),
		engine: opts.Engine,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is forwarded to the active screen: screens that own an
		// in-flight session show a confirmation instead of popping.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stats := m.engine.Statistics()
	header := layout.RenderHeader(title, int(stats.Accuracy()*100), stats.TotalQuestions, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
