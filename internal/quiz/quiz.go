// Package quiz implements the session state machine: lifecycle, question
// progression, answer finalization, and the test-mode countdown.
package quiz

import (
	"errors"
	"fmt"

	"github.com/jhardy773/security-plus-study-app/internal/bank"
)

// Mode is the session variant.
type Mode int

const (
	// Study gives immediate per-question feedback and is untimed.
	Study Mode = iota
	// Test defers all feedback to the results and may be timed.
	Test
)

// String returns the display name of the mode.
func (m Mode) String() string {
	if m == Test {
		return "Test"
	}
	return "Study"
}

// State is the session lifecycle state.
type State int

const (
	Configuring State = iota
	Active
	Paused
	Finished
	Reviewed
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case Configuring:
		return "Configuring"
	case Active:
		return "Active"
	case Paused:
		return "Paused"
	case Finished:
		return "Finished"
	case Reviewed:
		return "Reviewed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	// ErrNoQuestions rejects starting a session with an empty sequence.
	ErrNoQuestions = errors.New("no questions available for this session")

	// ErrInvalidTransition rejects a command not permitted in the
	// current state. The session is left unchanged.
	ErrInvalidTransition = errors.New("command not valid in current session state")
)

// Config describes a session before it starts.
type Config struct {
	Mode       Mode
	Categories []string
	Difficulty bank.Filter

	// TimeLimitMinutes arms the countdown in test mode; 0 means untimed.
	TimeLimitMinutes int

	// QuestionCount caps the drawn sequence in test mode; 0 means all.
	QuestionCount int
}

// Validate checks that the configuration can produce a session.
func (c Config) Validate() error {
	if len(c.Categories) == 0 {
		return errors.New("at least one category must be selected")
	}
	if c.TimeLimitMinutes < 0 {
		return errors.New("time limit cannot be negative")
	}
	if c.QuestionCount < 0 {
		return errors.New("question count cannot be negative")
	}
	return nil
}

// FormatSeconds renders a second count as m:ss for timer display.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
