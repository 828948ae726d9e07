package statsview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jhardy773/security-plus-study-app/internal/bank"
	"github.com/jhardy773/security-plus-study-app/internal/progress"
	"github.com/jhardy773/security-plus-study-app/internal/router"
	"github.com/jhardy773/security-plus-study-app/internal/screen"
	"github.com/jhardy773/security-plus-study-app/internal/ui/components"
	"github.com/jhardy773/security-plus-study-app/internal/ui/layout"
	"github.com/jhardy773/security-plus-study-app/internal/ui/theme"
)

// StatsScreen shows the cumulative statistics: overall accuracy and the
// per-domain breakdown with weak/strong badges.
type StatsScreen struct {
	repo   *bank.Repository
	engine *progress.Engine
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the statistics screen.
func New(repo *bank.Repository, engine *progress.Engine) *StatsScreen {
	return &StatsScreen{repo: repo, engine: engine}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	stats := s.engine.Statistics()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Your Progress"))
	b.WriteString("\n\n")

	if stats.TotalQuestions == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No questions answered yet. Start a session to build statistics."))
		return b.String()
	}

	overall := fmt.Sprintf("Overall: %d/%d correct (%d%%)",
		stats.CorrectAnswers, stats.TotalQuestions, int(stats.Accuracy()*100))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Text).Render(overall))
	b.WriteString("\n\n")

	barWidth := width - 8
	if barWidth > 64 {
		barWidth = 64
	}

	// Bank order keeps the listing stable across sessions.
	for _, name := range s.repo.Categories() {
		cs, seen := stats.Categories[name]
		if !seen {
			b.WriteString("  " + theme.Hint.Render(fmt.Sprintf("%-42s not practiced yet", name)) + "\n")
			continue
		}

		badge := ""
		switch {
		case stats.IsWeak(name):
			badge = theme.WeakBadge.Render(" WEAK")
		case stats.IsStrong(name):
			badge = theme.StrongBadge.Render(" STRONG")
		}

		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-42s", name),
			Percent:     cs.Accuracy(),
			ShowPercent: true,
			Width:       barWidth,
		}
		b.WriteString("  " + bar.View() + badge + "\n")
	}
	b.WriteString("\n")

	for _, rec := range progress.Recommendations(stats) {
		style := theme.Hint
		if rec.Kind == progress.RecommendReady {
			style = theme.StrongBadge
		}
		b.WriteString("  " + style.Render(fmt.Sprintf("%s — %s", rec.Title, rec.Content)))
		b.WriteString("\n")
	}

	if err := s.engine.LastSaveErr(); err != nil {
		b.WriteString("\n")
		b.WriteString("  " + theme.Incorrect.Render(fmt.Sprintf("Warning: progress not saved (%v)", err)))
		b.WriteString("\n")
	}

	return b.String()
}
