package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jhardy773/security-plus-study-app/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title    string
	initRan  bool
	received []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "dashboard"})

	s2 := &stubScreen{title: "setup"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "setup" {
		t.Errorf("active = %q, want setup", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("Init did not run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "dashboard"})
	r.Push(&stubScreen{title: "setup"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "dashboard" {
		t.Errorf("active = %q, want dashboard", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "dashboard"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "dashboard"})
	r.Push(&stubScreen{title: "practice"})

	results := &stubScreen{title: "results"}
	r.Replace(results)

	if r.Depth() != 2 {
		t.Errorf("depth = %d after replace, want 2", r.Depth())
	}
	if r.Active().Title() != "results" {
		t.Errorf("active = %q, want results", r.Active().Title())
	}
	if !results.initRan {
		t.Error("Init did not run on replacement screen")
	}
}

func TestUpdate_NavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "dashboard"})

	setup := &stubScreen{title: "setup"}
	r.Update(PushScreenMsg{Screen: setup})
	if r.Active().Title() != "setup" || !setup.initRan {
		t.Errorf("push via message: active = %q, init = %v", r.Active().Title(), setup.initRan)
	}

	practice := &stubScreen{title: "practice"}
	r.Update(ReplaceScreenMsg{Screen: practice})
	if r.Active().Title() != "practice" || r.Depth() != 2 {
		t.Errorf("replace via message: active = %q, depth = %d", r.Active().Title(), r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "dashboard" {
		t.Errorf("pop via message: active = %q, want dashboard", r.Active().Title())
	}
}

func TestUpdate_ForwardsToActiveOnly(t *testing.T) {
	bottom := &stubScreen{title: "dashboard"}
	top := &stubScreen{title: "setup"}
	r := New(bottom)
	r.Push(top)

	r.Update("some message")

	if len(top.received) != 1 {
		t.Errorf("active screen received %d messages, want 1", len(top.received))
	}
	if len(bottom.received) != 0 {
		t.Errorf("covered screen received %d messages, want 0", len(bottom.received))
	}
}
