package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jhardy773/security-plus-study-app/internal/bank"
	"github.com/jhardy773/security-plus-study-app/internal/config"
	"github.com/jhardy773/security-plus-study-app/internal/progress"
	"github.com/jhardy773/security-plus-study-app/internal/quiz"
	"github.com/jhardy773/security-plus-study-app/internal/router"
	"github.com/jhardy773/security-plus-study-app/internal/screen"
	"github.com/jhardy773/security-plus-study-app/internal/screens/setup"
	"github.com/jhardy773/security-plus-study-app/internal/screens/statsview"
	"github.com/jhardy773/security-plus-study-app/internal/ui/components"
	"github.com/jhardy773/security-plus-study-app/internal/ui/theme"
)

// DashboardScreen is the landing screen: stats overview, adaptive
// recommendations, and the session menu.
type DashboardScreen struct {
	menu    components.Menu
	repo    *bank.Repository
	engine  *progress.Engine
	fileCfg config.FileConfig
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(repo *bank.Repository, engine *progress.Engine, fileCfg config.FileConfig) *DashboardScreen {
	d := &DashboardScreen{repo: repo, engine: engine, fileCfg: fileCfg}

	items := []components.MenuItem{
		{Label: "STUDY MODE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(repo, engine, fileCfg, quiz.Study)}
			}
		}},
		{Label: "TIMED TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(repo, engine, fileCfg, quiz.Test)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsview.New(repo, engine)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	d.menu = components.NewMenu(items)
	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	stats := d.engine.Statistics()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Security+ Study Center"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Master the Security+ certification with adaptive learning"))
	b.WriteString("\n\n")

	overview := fmt.Sprintf(
		"Accuracy: %d%%    Answered: %d    Weak areas: %d    Strong areas: %d",
		int(stats.Accuracy()*100),
		stats.TotalQuestions,
		len(stats.WeakAreas),
		len(stats.StrongAreas),
	)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(overview))
	b.WriteString("\n\n")

	for _, rec := range progress.Recommendations(stats) {
		style := theme.Hint
		if rec.Kind == progress.RecommendReady {
			style = theme.StrongBadge
		}
		line := fmt.Sprintf("%s — %s", rec.Title, rec.Content)
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(style.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	menu := d.menu.View()
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(menu))

	return b.String()
}
