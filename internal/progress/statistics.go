// Package progress tracks cumulative performance statistics and derives
// weak/strong area classification and study recommendations.
package progress

// CategoryStats holds the answer counters for a single category.
type CategoryStats struct {
	Total   int
	Correct int
}

// Accuracy returns correct/total for the category, 0 when unanswered.
func (c CategoryStats) Accuracy() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Total)
}

// Answer is a finalized per-question outcome. Sessions record these and
// forward them to the Engine.
type Answer struct {
	QuestionID int
	Category   string
	Selected   int
	Correct    int
	IsCorrect  bool
	Seconds    int // elapsed time attributed to the question; 0 in study mode
}

// Statistics is the persisted performance aggregate. WeakAreas and
// StrongAreas keep classification order for display; a category is a
// member of at most one of the two.
type Statistics struct {
	TotalQuestions int
	CorrectAnswers int
	Categories     map[string]*CategoryStats
	WeakAreas      []string
	StrongAreas    []string
}

// NewStatistics returns a zero-valued aggregate.
func NewStatistics() *Statistics {
	return &Statistics{Categories: make(map[string]*CategoryStats)}
}

// Accuracy returns the overall correct/total ratio, 0 when nothing has
// been answered.
func (s *Statistics) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalQuestions)
}

// CategoryAccuracy returns the accuracy for one category, 0 if unseen.
func (s *Statistics) CategoryAccuracy(name string) float64 {
	cs, ok := s.Categories[name]
	if !ok {
		return 0
	}
	return cs.Accuracy()
}

// IsWeak reports whether the category is currently classified weak.
func (s *Statistics) IsWeak(name string) bool {
	return contains(s.WeakAreas, name)
}

// IsStrong reports whether the category is currently classified strong.
func (s *Statistics) IsStrong(name string) bool {
	return contains(s.StrongAreas, name)
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

func remove(list []string, name string) []string {
	out := list[:0]
	for _, v := range list {
		if v != name {
			out = append(out, v)
		}
	}
	return out
}
