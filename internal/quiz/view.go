package quiz

import (
	"github.com/jhardy773/security-plus-study-app/internal/bank"
	"github.com/jhardy773/security-plus-study-app/internal/progress"
)

// View is the read-only snapshot the presentation layer renders from.
type View struct {
	ID    string
	Mode  Mode
	State State

	Position int
	Total    int
	Question *bank.Question // nil outside Active/Paused

	SelectedOption   int // -1 when nothing selected
	FeedbackVisible  bool
	Timed            bool
	RemainingSeconds int
	IsPaused         bool

	Answers      []progress.Answer
	CorrectCount int
}

// View captures the current session state for rendering.
func (s *Session) View() View {
	v := View{
		ID:               s.ID,
		Mode:             s.config.Mode,
		State:            s.state,
		Position:         s.position,
		Total:            len(s.questions),
		SelectedOption:   s.selected,
		FeedbackVisible:  s.feedbackVisible,
		Timed:            s.timed,
		RemainingSeconds: s.remaining,
		IsPaused:         s.state == Paused,
	}

	if (s.state == Active || s.state == Paused) && s.position < len(s.questions) {
		q := s.questions[s.position]
		v.Question = &q
	}

	v.Answers = make([]progress.Answer, len(s.answers))
	copy(v.Answers, s.answers)
	for _, a := range s.answers {
		if a.IsCorrect {
			v.CorrectCount++
		}
	}
	return v
}
