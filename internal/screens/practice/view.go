package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jhardy773/security-plus-study-app/internal/quiz"
	"github.com/jhardy773/security-plus-study-app/internal/ui/components"
	"github.com/jhardy773/security-plus-study-app/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	v := p.sess.View()

	if p.quitConfirm {
		return renderQuitConfirm(width)
	}
	if v.IsPaused {
		return renderPaused(width, v)
	}
	if v.Question == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nSession complete.")
	}

	var b strings.Builder

	// Progress line. Test mode hides the running score so no feedback
	// leaks before the results.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s  ·  %s", v.Question.Category, v.Question.Difficulty))

	right := fmt.Sprintf("Q %d/%d", v.Position+1, v.Total)
	if v.Mode == quiz.Study {
		right += fmt.Sprintf("  ✓ %d", v.CorrectCount)
	}
	if v.Timed {
		right += "  ⏱ " + quiz.FormatSeconds(v.RemainingSeconds)
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", pad) + infoRight)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	// Question prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Padding(0, 2).
		Render(v.Question.Prompt))
	b.WriteString("\n\n")

	opts := components.OptionList{
		Options: v.Question.Options,
		Cursor:  p.cursor,
		Chosen:  v.SelectedOption,
		Reveal:  v.FeedbackVisible,
		Correct: v.Question.Correct,
	}
	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(opts.View()))
	b.WriteString("\n")

	if v.FeedbackVisible {
		b.WriteString(renderFeedback(width, v))
	}

	return b.String()
}

func renderFeedback(width int, v quiz.View) string {
	var b strings.Builder

	if v.SelectedOption == v.Question.Correct {
		b.WriteString(theme.Correct.Padding(0, 2).Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Padding(0, 2).Render("Incorrect."))
	}
	b.WriteString("\n\n")

	if v.Question.Explanation != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width - 4).
			Foreground(theme.TextDim).
			Padding(0, 2).
			Render(v.Question.Explanation))
		b.WriteString("\n")
	}
	return b.String()
}

func renderPaused(width int, v quiz.View) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("\n\n\nPAUSED\n\n%s remaining\n\nPress P to resume", quiz.FormatSeconds(v.RemainingSeconds)))
}

func renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\n\nAbandon this session?\n\nAnswered questions stay recorded.\n\n[Y] Yes    [N] No")
}
