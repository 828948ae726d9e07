package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jhardy773/security-plus-study-app/internal/bank"
	"github.com/jhardy773/security-plus-study-app/internal/progress"
	"github.com/jhardy773/security-plus-study-app/internal/quiz"
	"github.com/jhardy773/security-plus-study-app/internal/router"
	"github.com/jhardy773/security-plus-study-app/internal/screen"
	"github.com/jhardy773/security-plus-study-app/internal/ui/components"
	"github.com/jhardy773/security-plus-study-app/internal/ui/layout"
	"github.com/jhardy773/security-plus-study-app/internal/ui/theme"
)

// ResultsScreen shows the finished session: score, per-domain breakdown,
// recommendations, and the question review. Enter acknowledges the
// results, which retires the session for good.
type ResultsScreen struct {
	sess   *quiz.Session
	engine *progress.Engine

	questions map[int]bank.Question
	scroll    int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for a finished session.
func New(sess *quiz.Session, engine *progress.Engine) *ResultsScreen {
	byID := make(map[int]bank.Question)
	for _, q := range sess.Questions() {
		byID[q.ID] = q
	}
	return &ResultsScreen{sess: sess, engine: engine, questions: byID}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll review"},
		{Key: "Enter", Description: "Done"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		_ = r.sess.AcknowledgeResults()
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if r.scroll > 0 {
			r.scroll--
		}
	case "down", "j":
		if r.scroll < len(r.sess.View().Answers)-1 {
			r.scroll++
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	v := r.sess.View()
	stats := r.engine.Statistics()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Session Complete!"))
	b.WriteString("\n\n")

	pct := 0
	if len(v.Answers) > 0 {
		pct = v.CorrectCount * 100 / len(v.Answers)
	}
	score := fmt.Sprintf("Answered: %d/%d        Correct: %d        Score: %d%%",
		len(v.Answers), v.Total, v.CorrectCount, pct)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Text).Render(score))
	b.WriteString("\n\n")

	// Session breakdown by domain.
	b.WriteString(r.renderDomainBreakdown(width, v))

	// Guidance from the cumulative statistics.
	for _, rec := range progress.Recommendations(stats) {
		style := theme.Hint
		if rec.Kind == progress.RecommendReady {
			style = theme.StrongBadge
		}
		b.WriteString("  " + style.Render(fmt.Sprintf("%s — %s", rec.Title, rec.Content)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(r.renderReview(width, height, v))
	return b.String()
}

// renderDomainBreakdown shows this session's per-category accuracy bars.
func (r *ResultsScreen) renderDomainBreakdown(width int, v quiz.View) string {
	type counter struct {
		total, correct int
	}
	perDomain := make(map[string]*counter)
	var order []string
	for _, a := range v.Answers {
		c := perDomain[a.Category]
		if c == nil {
			c = &counter{}
			perDomain[a.Category] = c
			order = append(order, a.Category)
		}
		c.total++
		if a.IsCorrect {
			c.correct++
		}
	}
	if len(order) == 0 {
		return ""
	}

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render("  Domain performance"))
	b.WriteString("\n")
	for _, name := range order {
		c := perDomain[name]
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-42s", name),
			Percent:     float64(c.correct) / float64(c.total),
			ShowPercent: true,
			Width:       barWidth,
		}
		b.WriteString("  " + bar.View() + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// renderReview lists answers from the scroll offset down, ✓/✗ per
// question with the correct answer for misses.
func (r *ResultsScreen) renderReview(width, height int, v quiz.View) string {
	if len(v.Answers) == 0 {
		return theme.Hint.Render("  No questions were answered.")
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render("  Question review"))
	b.WriteString("\n")

	for i := r.scroll; i < len(v.Answers); i++ {
		a := v.Answers[i]
		q, ok := r.questions[a.QuestionID]
		if !ok {
			continue
		}

		mark := theme.Correct.Render("✓")
		if !a.IsCorrect {
			mark = theme.Incorrect.Render("✗")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", mark, lipgloss.NewStyle().
			Width(width-6).
			Foreground(theme.Text).
			Render(q.Prompt)))

		if !a.IsCorrect && a.Correct < len(q.Options) {
			b.WriteString(lipgloss.NewStyle().
				Width(width - 8).
				Foreground(theme.TextDim).
				Render("      Correct answer: " + q.Options[a.Correct]))
			b.WriteString("\n")
		}
	}
	return b.String()
}
