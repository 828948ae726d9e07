package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/jhardy773/security-plus-study-app/internal/ui/theme"
)

// optionLabels are the answer letters shown before each option.
var optionLabels = "ABCDEFGH"

// OptionList renders the answer options of a question. The quiz session
// owns the real selection state; this component is purely presentational
// so study and test mode can share it.
type OptionList struct {
	Options []string

	// Cursor is the highlighted row.
	Cursor int

	// Chosen is the locked-in selection, -1 for none.
	Chosen int

	// Reveal colors the correct option; set only when feedback may be
	// shown (study mode after answering, or the review list).
	Reveal  bool
	Correct int
}

// View renders the option rows.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := "?"
		if i < len(optionLabels) {
			label = string(optionLabels[i])
		}

		prefix := "  "
		if i == o.Cursor && !o.Reveal {
			prefix = "▸ "
		}
		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case o.Reveal && i == o.Correct:
			s += theme.Correct.Render(line) + "\n"
		case o.Reveal && i == o.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Reveal:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
