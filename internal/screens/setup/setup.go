package setup

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jhardy773/security-plus-study-app/internal/bank"
	"github.com/jhardy773/security-plus-study-app/internal/config"
	"github.com/jhardy773/security-plus-study-app/internal/progress"
	"github.com/jhardy773/security-plus-study-app/internal/quiz"
	"github.com/jhardy773/security-plus-study-app/internal/router"
	"github.com/jhardy773/security-plus-study-app/internal/screen"
	"github.com/jhardy773/security-plus-study-app/internal/screens/practice"
	"github.com/jhardy773/security-plus-study-app/internal/selector"
	"github.com/jhardy773/security-plus-study-app/internal/ui/components"
	"github.com/jhardy773/security-plus-study-app/internal/ui/layout"
	"github.com/jhardy773/security-plus-study-app/internal/ui/theme"
)

const (
	defaultTimeLimit     = 30 // minutes
	defaultQuestionCount = 0  // all eligible
)

// SetupScreen configures a session before it starts: categories,
// difficulty, and for test mode the time limit and question count.
type SetupScreen struct {
	repo   *bank.Repository
	engine *progress.Engine
	mode   quiz.Mode

	categories []string
	selected   map[string]bool
	difficulty bank.Filter

	timeInput  components.NumberInput
	countInput components.NumberInput

	cursor int
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a setup screen seeded from the config-file defaults.
func New(repo *bank.Repository, engine *progress.Engine, fileCfg config.FileConfig, mode quiz.Mode) *SetupScreen {
	s := &SetupScreen{
		repo:       repo,
		engine:     engine,
		mode:       mode,
		categories: repo.Categories(),
		selected:   make(map[string]bool),
	}

	// Preselect config-file categories when they exist in the bank,
	// otherwise everything.
	known := make(map[string]bool, len(s.categories))
	for _, c := range s.categories {
		known[c] = true
	}
	for _, c := range fileCfg.Session.Categories {
		if known[c] {
			s.selected[c] = true
		}
	}
	if len(s.selected) == 0 {
		for _, c := range s.categories {
			s.selected[c] = true
		}
	}

	if fileCfg.Session.Difficulty != nil {
		switch strings.ToLower(*fileCfg.Session.Difficulty) {
		case "easy":
			s.difficulty = bank.FilterEasy
		case "medium":
			s.difficulty = bank.FilterMedium
		case "hard":
			s.difficulty = bank.FilterHard
		}
	}

	timeLimit := defaultTimeLimit
	if fileCfg.Session.TimeLimit != nil && *fileCfg.Session.TimeLimit >= 0 {
		timeLimit = *fileCfg.Session.TimeLimit
	}
	count := defaultQuestionCount
	if fileCfg.Session.Questions != nil && *fileCfg.Session.Questions >= 0 {
		count = *fileCfg.Session.Questions
	}

	s.timeInput = components.NewNumberInput(fmt.Sprintf("%d", timeLimit), 240)
	s.countInput = components.NewNumberInput(fmt.Sprintf("%d", count), 999)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	if s.mode == quiz.Test {
		return "Test Setup"
	}
	return "Study Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "Space", Description: "Toggle"},
		{Key: "←→", Description: "Difficulty"},
		{Key: "Enter", Description: "Begin"},
		{Key: "Esc", Description: "Back"},
	}
}

// rowCount returns the number of navigable rows: categories, difficulty,
// test-only inputs, and the begin row.
func (s *SetupScreen) rowCount() int {
	n := len(s.categories) + 2
	if s.mode == quiz.Test {
		n += 2
	}
	return n
}

func (s *SetupScreen) difficultyRow() int { return len(s.categories) }
func (s *SetupScreen) timeRow() int       { return len(s.categories) + 1 }
func (s *SetupScreen) countRow() int      { return len(s.categories) + 2 }
func (s *SetupScreen) beginRow() int      { return s.rowCount() - 1 }

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	onTimeRow := s.mode == quiz.Test && s.cursor == s.timeRow()
	onCountRow := s.mode == quiz.Test && s.cursor == s.countRow()

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		s.syncFocus()
		return s, nil

	case "down", "j":
		if s.cursor < s.rowCount()-1 {
			s.cursor++
		}
		s.syncFocus()
		return s, nil

	case " ":
		if s.cursor < len(s.categories) {
			c := s.categories[s.cursor]
			s.selected[c] = !s.selected[c]
			s.errMsg = ""
		}
		return s, nil

	case "left", "h":
		if s.cursor == s.difficultyRow() {
			s.difficulty = cycleFilter(s.difficulty, -1)
		}
		return s, nil

	case "right", "l":
		if s.cursor == s.difficultyRow() {
			s.difficulty = cycleFilter(s.difficulty, 1)
		}
		return s, nil

	case "enter":
		if s.cursor == s.beginRow() {
			return s.begin()
		}
		// Enter elsewhere jumps to the begin row.
		s.cursor = s.beginRow()
		s.syncFocus()
		return s, nil
	}

	// Digits flow into the focused numeric input.
	if onTimeRow {
		var cmd tea.Cmd
		s.timeInput, cmd = s.timeInput.Update(msg)
		return s, cmd
	}
	if onCountRow {
		var cmd tea.Cmd
		s.countInput, cmd = s.countInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

// syncFocus keeps exactly the numeric input under the cursor focused.
func (s *SetupScreen) syncFocus() {
	if s.mode != quiz.Test {
		return
	}
	s.timeInput.Blur()
	s.countInput.Blur()
	switch s.cursor {
	case s.timeRow():
		s.timeInput.Focus()
	case s.countRow():
		s.countInput.Focus()
	}
}

// begin validates the configuration, draws the question sequence, and
// replaces this screen with the running session.
func (s *SetupScreen) begin() (screen.Screen, tea.Cmd) {
	var chosen []string
	for _, c := range s.categories {
		if s.selected[c] {
			chosen = append(chosen, c)
		}
	}

	cfg := quiz.Config{
		Mode:       s.mode,
		Categories: chosen,
		Difficulty: s.difficulty,
	}
	if s.mode == quiz.Test {
		cfg.TimeLimitMinutes = s.timeInput.Value()
		cfg.QuestionCount = s.countInput.Value()
	}
	if err := cfg.Validate(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	questions, err := selector.Select(s.repo, cfg.Categories, cfg.Difficulty, rng)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	sess := quiz.NewSession(cfg, s.engine)
	if err := sess.Start(questions); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	next := practice.New(sess, s.engine)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func cycleFilter(f bank.Filter, dir int) bank.Filter {
	order := []bank.Filter{bank.FilterAll, bank.FilterEasy, bank.FilterMedium, bank.FilterHard}
	for i, v := range order {
		if v == f {
			return order[(i+dir+len(order))%len(order)]
		}
	}
	return bank.FilterAll
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	label := "Configure study session"
	if s.mode == quiz.Test {
		label = "Configure timed test"
	}
	b.WriteString(theme.Title.Width(width).Render(label))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render("  Domains"))
	b.WriteString("\n")
	for i, c := range s.categories {
		mark := "[ ]"
		if s.selected[c] {
			mark = "[x]"
		}
		line := fmt.Sprintf("  %s %s  (%d questions)", mark, c, len(s.repo.ByCategory(c)))
		b.WriteString(s.row(i, line))
	}
	b.WriteString("\n")

	b.WriteString(s.row(s.difficultyRow(), fmt.Sprintf("  Difficulty: ◂ %s ▸", s.difficulty)))

	if s.mode == quiz.Test {
		b.WriteString(s.row(s.timeRow(), "  Time limit (minutes): "+s.timeInput.View()))
		b.WriteString(s.row(s.countRow(), "  Question count (0 = all): "+s.countInput.View()))
	}
	b.WriteString("\n")

	b.WriteString(s.row(s.beginRow(), "  ▶ BEGIN"))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *SetupScreen) row(index int, text string) string {
	style := theme.Unselected
	if index == s.cursor {
		style = theme.Selected
		text = "▸" + text[1:]
	}
	return style.Render(text) + "\n"
}
