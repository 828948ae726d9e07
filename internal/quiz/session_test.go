package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/jhardy773/security-plus-study-app/internal/bank"
	"github.com/jhardy773/security-plus-study-app/internal/progress"
)

// recordingIngester counts and captures ingested answers.
type recordingIngester struct {
	answers []progress.Answer
}

func (r *recordingIngester) Ingest(a progress.Answer) *progress.Statistics {
	r.answers = append(r.answers, a)
	return nil
}

func testQuestions(n int) []bank.Question {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{
			ID:       i + 1,
			Category: "General Security Concepts",
			Prompt:   "prompt",
			Options:  []string{"a", "b", "c"},
			Correct:  1,
		}
	}
	return qs
}

func startedStudy(t *testing.T, n int, ing Ingester) *Session {
	t.Helper()
	s := NewSession(Config{Mode: Study, Categories: []string{"General Security Concepts"}}, ing)
	if err := s.Start(testQuestions(n)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func startedTest(t *testing.T, n, limitMinutes int, ing Ingester) *Session {
	t.Helper()
	cfg := Config{
		Mode:             Test,
		Categories:       []string{"General Security Concepts"},
		TimeLimitMinutes: limitMinutes,
	}
	s := NewSession(cfg, ing)
	if err := s.Start(testQuestions(n)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestStart_RejectsEmptyQuestions(t *testing.T) {
	s := NewSession(Config{Mode: Study, Categories: []string{"x"}}, nil)
	if err := s.Start(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
	if s.State() != Configuring {
		t.Errorf("state = %v, want Configuring after rejected start", s.State())
	}
}

func TestStart_OnlyFromConfiguring(t *testing.T) {
	s := startedStudy(t, 1, nil)
	if err := s.Start(testQuestions(1)); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Start: err = %v, want ErrInvalidTransition", err)
	}
}

func TestStudy_SelectShowsFeedbackAndIngestsOnce(t *testing.T) {
	ing := &recordingIngester{}
	s := startedStudy(t, 2, ing)

	if err := s.SelectOption(1); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}

	v := s.View()
	if !v.FeedbackVisible {
		t.Error("feedback not visible after study-mode selection")
	}
	if len(ing.answers) != 1 {
		t.Fatalf("ingested %d answers, want 1", len(ing.answers))
	}
	if !ing.answers[0].IsCorrect {
		t.Error("selected correct option but answer marked incorrect")
	}
	if ing.answers[0].Seconds != 0 {
		t.Errorf("study-mode elapsed = %d, want 0", ing.answers[0].Seconds)
	}
}

func TestStudy_SecondSelectRejected(t *testing.T) {
	ing := &recordingIngester{}
	s := startedStudy(t, 1, ing)

	if err := s.SelectOption(0); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if err := s.SelectOption(2); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second select: err = %v, want ErrInvalidTransition", err)
	}
	if len(ing.answers) != 1 {
		t.Errorf("ingested %d answers after double select, want 1", len(ing.answers))
	}
}

func TestStudy_AdvanceRequiresFeedback(t *testing.T) {
	s := startedStudy(t, 2, nil)
	if err := s.Advance(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("advance before answering: err = %v, want ErrInvalidTransition", err)
	}

	if err := s.SelectOption(0); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Errorf("advance after feedback: %v", err)
	}
	if s.View().Position != 1 {
		t.Errorf("position = %d, want 1", s.View().Position)
	}
	if s.View().FeedbackVisible {
		t.Error("feedback flag not cleared on advance")
	}
}

func TestStudy_LastAdvanceFinishes(t *testing.T) {
	s := startedStudy(t, 1, nil)
	if err := s.SelectOption(1); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if s.State() != Finished {
		t.Errorf("state = %v, want Finished", s.State())
	}
}

func TestTest_NoFeedbackBeforeFinish(t *testing.T) {
	s := startedTest(t, 2, 0, nil)
	if err := s.SelectOption(1); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if s.View().FeedbackVisible {
		t.Error("test mode must not show feedback")
	}
}

func TestTest_SelectionCanChangeUntilAdvance(t *testing.T) {
	ing := &recordingIngester{}
	s := startedTest(t, 2, 0, ing)

	if err := s.SelectOption(0); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if err := s.SelectOption(1); err != nil {
		t.Fatalf("re-select: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if len(ing.answers) != 1 {
		t.Fatalf("ingested %d answers, want 1", len(ing.answers))
	}
	if ing.answers[0].Selected != 1 {
		t.Errorf("recorded selection = %d, want the final choice 1", ing.answers[0].Selected)
	}
}

func TestTest_SkipRecordsNothing(t *testing.T) {
	ing := &recordingIngester{}
	s := startedTest(t, 2, 0, ing)

	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if len(ing.answers) != 0 {
		t.Errorf("skip ingested %d answers, want 0", len(ing.answers))
	}
	if s.View().Position != 1 {
		t.Errorf("position = %d, want 1", s.View().Position)
	}
}

func TestTest_ElapsedFromSessionStart(t *testing.T) {
	ing := &recordingIngester{}
	s := startedTest(t, 1, 5, ing)

	base := time.Now()
	s.startedAt = base
	s.now = func() time.Time { return base.Add(42 * time.Second) }

	if err := s.SelectOption(1); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got := ing.answers[0].Seconds; got != 42 {
		t.Errorf("elapsed = %d, want 42", got)
	}
}

func TestTest_QuestionCountTruncates(t *testing.T) {
	cfg := Config{
		Mode:          Test,
		Categories:    []string{"x"},
		QuestionCount: 2,
	}
	s := NewSession(cfg, nil)
	if err := s.Start(testQuestions(5)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.View().Total != 2 {
		t.Errorf("total = %d, want 2", s.View().Total)
	}
}

func TestTimer_DecrementsOncePerTick(t *testing.T) {
	s := startedTest(t, 3, 1, nil)

	v := s.View()
	if v.RemainingSeconds != 60 {
		t.Fatalf("armed countdown = %d, want 60", v.RemainingSeconds)
	}

	s.Tick()
	s.Tick()
	if got := s.View().RemainingSeconds; got != 58 {
		t.Errorf("remaining = %d after 2 ticks, want 58", got)
	}
}

func TestTimer_PauseHoldsCountdown(t *testing.T) {
	s := startedTest(t, 3, 1, nil)

	s.Tick()
	if err := s.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if s.State() != Paused {
		t.Fatalf("state = %v, want Paused", s.State())
	}

	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if got := s.View().RemainingSeconds; got != 59 {
		t.Errorf("remaining = %d while paused, want 59", got)
	}

	if err := s.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	s.Tick()
	if got := s.View().RemainingSeconds; got != 58 {
		t.Errorf("remaining = %d after resume+tick, want 58", got)
	}
}

func TestTimer_ExpiryForcesFinishWithNoAnswers(t *testing.T) {
	ing := &recordingIngester{}
	s := startedTest(t, 3, 1, ing)

	expired := false
	for i := 0; i < 60; i++ {
		expired = s.Tick()
	}
	if !expired {
		t.Error("60th tick did not report expiry")
	}
	if s.State() != Finished {
		t.Errorf("state = %v, want Finished", s.State())
	}
	if len(ing.answers) != 0 {
		t.Errorf("expiry ingested %d answers, want 0", len(ing.answers))
	}

	// Stale ticks after expiry must not touch the session.
	if s.Tick() {
		t.Error("tick after Finished reported expiry")
	}
	if s.View().RemainingSeconds != 0 {
		t.Error("tick after Finished changed the countdown")
	}
}

func TestTimer_ExpiryFinalizesPendingSelection(t *testing.T) {
	ing := &recordingIngester{}
	s := startedTest(t, 3, 1, ing)

	if err := s.SelectOption(1); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	for i := 0; i < 60; i++ {
		s.Tick()
	}
	if len(ing.answers) != 1 {
		t.Errorf("ingested %d answers on expiry, want 1", len(ing.answers))
	}
}

func TestPauseResume_StudyModeNoOp(t *testing.T) {
	s := startedStudy(t, 1, nil)
	if err := s.Pause(); err != nil {
		t.Errorf("study-mode Pause: %v, want nil no-op", err)
	}
	if s.State() != Active {
		t.Errorf("state = %v, want Active", s.State())
	}
}

func TestPause_InvalidOutsideActive(t *testing.T) {
	s := startedTest(t, 1, 1, nil)
	if err := s.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if err := s.Pause(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double pause: err = %v, want ErrInvalidTransition", err)
	}
	if err := s.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if err := s.Resume(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double resume: err = %v, want ErrInvalidTransition", err)
	}
}

func TestAcknowledgeResults(t *testing.T) {
	s := startedStudy(t, 1, nil)

	if err := s.AcknowledgeResults(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("acknowledge while Active: err = %v, want ErrInvalidTransition", err)
	}

	if err := s.SelectOption(0); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if err := s.AcknowledgeResults(); err != nil {
		t.Fatalf("AcknowledgeResults: %v", err)
	}
	if s.State() != Reviewed {
		t.Errorf("state = %v, want Reviewed", s.State())
	}
}

func TestSelectOption_OutOfRangeRejected(t *testing.T) {
	s := startedStudy(t, 1, nil)
	if err := s.SelectOption(3); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("out-of-range select: err = %v, want ErrInvalidTransition", err)
	}
	if err := s.SelectOption(-1); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("negative select: err = %v, want ErrInvalidTransition", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := (Config{Mode: Study}).Validate(); err == nil {
		t.Error("expected error for empty category set")
	}
	if err := (Config{Mode: Test, Categories: []string{"x"}, TimeLimitMinutes: -1}).Validate(); err == nil {
		t.Error("expected error for negative time limit")
	}
	if err := (Config{Mode: Test, Categories: []string{"x"}, TimeLimitMinutes: 30, QuestionCount: 10}).Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{90, "1:30"},
		{3600, "60:00"},
		{-5, "0:00"},
	}
	for _, tc := range cases {
		if got := FormatSeconds(tc.in); got != tc.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
