package practice

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/jhardy773/security-plus-study-app/internal/progress"
	"github.com/jhardy773/security-plus-study-app/internal/quiz"
	"github.com/jhardy773/security-plus-study-app/internal/router"
	"github.com/jhardy773/security-plus-study-app/internal/screen"
	"github.com/jhardy773/security-plus-study-app/internal/screens/results"
	"github.com/jhardy773/security-plus-study-app/internal/ui/layout"
)

// PracticeScreen drives an active session: option selection, study-mode
// feedback, the test-mode countdown, and pause.
type PracticeScreen struct {
	sess   *quiz.Session
	engine *progress.Engine

	cursor      int
	quitConfirm bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for an already started session.
func New(sess *quiz.Session, engine *progress.Engine) *PracticeScreen {
	return &PracticeScreen{sess: sess, engine: engine}
}

func (p *PracticeScreen) Init() tea.Cmd {
	if p.sess.View().Timed {
		return tickCmd()
	}
	return nil
}

func (p *PracticeScreen) Title() string {
	if p.sess.Config().Mode == quiz.Test {
		return "Timed Test"
	}
	return "Study Session"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	v := p.sess.View()
	if p.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if v.FeedbackVisible {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	}
	if v.Mode == quiz.Test {
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "N", Description: "Next/Skip"},
		}
		if v.Timed {
			hints = append(hints, layout.KeyHint{Key: "P", Description: "Pause"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return p.handleTick()
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

// handleTick feeds one second into the session. Ticks keep arriving while
// paused but the session discards them; scheduling stops for good once
// the session leaves the Active/Paused states so no stale timer can touch
// a finished session.
func (p *PracticeScreen) handleTick() (screen.Screen, tea.Cmd) {
	expired := p.sess.Tick()
	if expired {
		return p.finish()
	}

	switch p.sess.State() {
	case quiz.Active, quiz.Paused:
		return p, tickCmd()
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if p.quitConfirm {
		switch msg.String() {
		case "y", "Y":
			// Abandon: recorded answers are already ingested, the rest
			// of the session is simply dropped.
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			p.quitConfirm = false
		}
		return p, nil
	}

	v := p.sess.View()

	switch msg.String() {
	case "esc":
		p.quitConfirm = true
		return p, nil

	case "p", "P":
		if v.Mode == quiz.Test && v.Timed {
			if v.IsPaused {
				_ = p.sess.Resume()
			} else {
				_ = p.sess.Pause()
			}
		}
		return p, nil
	}

	if v.IsPaused {
		return p, nil
	}

	switch msg.String() {
	case "up", "k":
		if !v.FeedbackVisible && p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if !v.FeedbackVisible && v.Question != nil && p.cursor < len(v.Question.Options)-1 {
			p.cursor++
		}

	case "enter", " ":
		if v.FeedbackVisible {
			return p.advance()
		}
		err := p.sess.SelectOption(p.cursor)
		if err != nil && !errors.Is(err, quiz.ErrInvalidTransition) {
			return p, nil
		}
		// Test mode records the choice and waits for next/skip.
		return p, nil

	case "n", "N", "right":
		if v.Mode == quiz.Test {
			return p.advance()
		}
	}

	return p, nil
}

// advance moves the session forward and swaps in the results screen once
// it finishes.
func (p *PracticeScreen) advance() (screen.Screen, tea.Cmd) {
	if err := p.sess.Advance(); err != nil {
		return p, nil
	}
	p.cursor = 0
	if p.sess.State() == quiz.Finished {
		return p.finish()
	}
	return p, nil
}

func (p *PracticeScreen) finish() (screen.Screen, tea.Cmd) {
	next := results.New(p.sess, p.engine)
	return p, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
