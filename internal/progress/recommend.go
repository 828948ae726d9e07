package progress

import (
	"fmt"
	"strings"
)

// RecommendationKind identifies the type of guidance.
type RecommendationKind string

const (
	RecommendFocus RecommendationKind = "focus"
	RecommendStudy RecommendationKind = "study"
	RecommendReady RecommendationKind = "ready"
)

// Recommendation is a single piece of study guidance derived from the
// current statistics.
type Recommendation struct {
	Kind    RecommendationKind
	Title   string
	Content string
}

// Recommendations derives guidance from the aggregate. It is a pure
// function of the statistics: focus-areas when any category is weak,
// plus study-more below 70% overall accuracy or exam-ready above 85%.
func Recommendations(s *Statistics) []Recommendation {
	var recs []Recommendation

	if len(s.WeakAreas) > 0 {
		recs = append(recs, Recommendation{
			Kind:    RecommendFocus,
			Title:   "Focus Areas",
			Content: fmt.Sprintf("Concentrate on: %s", strings.Join(s.WeakAreas, ", ")),
		})
	}

	accuracy := s.Accuracy()
	switch {
	case accuracy < 0.70:
		recs = append(recs, Recommendation{
			Kind:    RecommendStudy,
			Title:   "Study More",
			Content: "Your overall accuracy is below 70%. Consider reviewing fundamentals.",
		})
	case accuracy > 0.85:
		recs = append(recs, Recommendation{
			Kind:    RecommendReady,
			Title:   "Exam Ready",
			Content: "Great job! You're performing well across domains.",
		})
	}

	return recs
}
