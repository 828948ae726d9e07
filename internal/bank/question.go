package bank

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Difficulty is the rated difficulty of a question.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the display name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty converts a bank-file difficulty label to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// MarshalJSON encodes the difficulty as its display name.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a difficulty label, case-insensitively.
func (d *Difficulty) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Filter selects which difficulties are eligible for a session.
type Filter int

const (
	FilterAll Filter = iota
	FilterEasy
	FilterMedium
	FilterHard
)

// String returns the display name of the filter.
func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterEasy:
		return "Easy"
	case FilterMedium:
		return "Medium"
	case FilterHard:
		return "Hard"
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Matches reports whether a question of the given difficulty passes the filter.
func (f Filter) Matches(d Difficulty) bool {
	switch f {
	case FilterAll:
		return true
	case FilterEasy:
		return d == Easy
	case FilterMedium:
		return d == Medium
	case FilterHard:
		return d == Hard
	}
	return false
}

// Question is a single multiple-choice question from the bank.
// Questions are immutable once the repository is loaded.
type Question struct {
	ID          int        `json:"id"`
	Category    string     `json:"-"`
	Prompt      string     `json:"question"`
	Options     []string   `json:"options"`
	Correct     int        `json:"correct"`
	Explanation string     `json:"explanation"`
	Difficulty  Difficulty `json:"difficulty"`
}

// Validate checks the structural invariants of a question.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("question %d: empty prompt", q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %d: needs at least 2 options, got %d", q.ID, len(q.Options))
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("question %d: correct index %d out of range [0,%d)", q.ID, q.Correct, len(q.Options))
	}
	return nil
}
