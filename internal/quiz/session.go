package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhardy773/security-plus-study-app/internal/bank"
	"github.com/jhardy773/security-plus-study-app/internal/progress"
)

// Ingester receives finalized answers. *progress.Engine satisfies it.
type Ingester interface {
	Ingest(progress.Answer) *progress.Statistics
}

// Session is the state machine for one study or test run. It owns its
// question sequence and answer list exclusively; all mutation happens
// through its methods, one discrete event at a time.
type Session struct {
	ID     string
	config Config

	state     State
	questions []bank.Question
	position  int

	selected        int // selected option for the active question, -1 for none
	feedbackVisible bool
	recorded        bool // answer already finalized for the active question

	remaining int // seconds left, test mode with a time limit
	timed     bool
	startedAt time.Time

	answers  []progress.Answer
	ingester Ingester

	now func() time.Time
}

// NewSession creates a session in the Configuring state.
func NewSession(cfg Config, ingester Ingester) *Session {
	return &Session{
		ID:       uuid.New().String(),
		config:   cfg,
		state:    Configuring,
		selected: -1,
		ingester: ingester,
		now:      time.Now,
	}
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.config
}

// Questions returns a copy of the frozen question sequence, for the
// results review display.
func (s *Session) Questions() []bank.Question {
	out := make([]bank.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Start freezes the question sequence and transitions Configuring to
// Active. The sequence is never reshuffled afterwards. In test mode a
// configured question count truncates the sequence and a time limit arms
// the countdown.
func (s *Session) Start(questions []bank.Question) error {
	if s.state != Configuring {
		return ErrInvalidTransition
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	seq := make([]bank.Question, len(questions))
	copy(seq, questions)
	if s.config.Mode == Test && s.config.QuestionCount > 0 && s.config.QuestionCount < len(seq) {
		seq = seq[:s.config.QuestionCount]
	}

	s.questions = seq
	s.position = 0
	s.selected = -1
	s.feedbackVisible = false
	s.recorded = false
	s.answers = nil
	s.startedAt = s.now()

	if s.config.Mode == Test && s.config.TimeLimitMinutes > 0 {
		s.timed = true
		s.remaining = s.config.TimeLimitMinutes * 60
	}

	s.state = Active
	return nil
}

// SelectOption records the learner's choice for the active question.
// In study mode this immediately finalizes the answer and shows feedback,
// so a second call for the same question is rejected. In test mode the
// choice may be changed until Advance and no feedback is ever shown.
func (s *Session) SelectOption(index int) error {
	if s.state != Active {
		return ErrInvalidTransition
	}
	if s.feedbackVisible {
		return ErrInvalidTransition
	}
	if index < 0 || index >= len(s.questions[s.position].Options) {
		return ErrInvalidTransition
	}

	s.selected = index

	if s.config.Mode == Study {
		if err := s.finalizeCurrent(); err != nil {
			return err
		}
		s.feedbackVisible = true
	}
	return nil
}

// Advance moves to the next question, or to Finished past the last one.
// Test mode finalizes the pending selection first; with no selection the
// question is skipped unrecorded. Study mode requires the answer to have
// been finalized already via SelectOption.
func (s *Session) Advance() error {
	if s.state != Active {
		return ErrInvalidTransition
	}

	switch s.config.Mode {
	case Test:
		if s.selected >= 0 && !s.recorded {
			if err := s.finalizeCurrent(); err != nil {
				return err
			}
		}
	case Study:
		if !s.feedbackVisible {
			return ErrInvalidTransition
		}
	}

	if s.position >= len(s.questions)-1 {
		s.state = Finished
		return nil
	}

	s.position++
	s.selected = -1
	s.feedbackVisible = false
	s.recorded = false
	return nil
}

// Pause suspends the countdown. Valid only for an active test session;
// a no-op in study mode, which has no timer.
func (s *Session) Pause() error {
	if s.config.Mode == Study {
		return nil
	}
	if s.state != Active {
		return ErrInvalidTransition
	}
	s.state = Paused
	return nil
}

// Resume continues a paused test session.
func (s *Session) Resume() error {
	if s.config.Mode == Study {
		return nil
	}
	if s.state != Paused {
		return ErrInvalidTransition
	}
	s.state = Active
	return nil
}

// Tick consumes one elapsed second of the countdown. Ticks arriving
// outside an active timed test are discarded, so a stale timer can never
// mutate a finished or paused session. When the countdown reaches zero
// the session is forced to Finished, finalizing the pending selection if
// one was made; Tick reports that expiry.
func (s *Session) Tick() bool {
	if !s.timed || s.state != Active {
		return false
	}

	s.remaining--
	if s.remaining > 0 {
		return false
	}

	s.remaining = 0
	if s.selected >= 0 && !s.recorded {
		// Best effort; the guard above makes a double record impossible.
		_ = s.finalizeCurrent()
	}
	s.state = Finished
	return true
}

// AcknowledgeResults transitions Finished to Reviewed. A new session may
// then be configured; nothing carries over from this one.
func (s *Session) AcknowledgeResults() error {
	if s.state != Finished {
		return ErrInvalidTransition
	}
	s.state = Reviewed
	return nil
}

// finalizeCurrent grades the active question, appends the Answer, and
// forwards it to the ingester. At most once per position.
func (s *Session) finalizeCurrent() error {
	if s.recorded || s.selected < 0 {
		return ErrInvalidTransition
	}

	q := s.questions[s.position]
	elapsed := 0
	if s.config.Mode == Test {
		elapsed = int(s.now().Sub(s.startedAt).Seconds())
	}

	a := progress.Answer{
		QuestionID: q.ID,
		Category:   q.Category,
		Selected:   s.selected,
		Correct:    q.Correct,
		IsCorrect:  s.selected == q.Correct,
		Seconds:    elapsed,
	}
	s.answers = append(s.answers, a)
	s.recorded = true

	if s.ingester != nil {
		s.ingester.Ingest(a)
	}
	return nil
}
