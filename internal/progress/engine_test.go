package progress

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func answer(category string, correct bool) Answer {
	a := Answer{QuestionID: 1, Category: category, Correct: 0, Selected: 1}
	if correct {
		a.Selected = 0
		a.IsCorrect = true
	}
	return a
}

// ingestN feeds the engine a run of identical outcomes.
func ingestN(e *Engine, category string, correct bool, n int) {
	for i := 0; i < n; i++ {
		e.Ingest(answer(category, correct))
	}
}

func TestIngest_Counters(t *testing.T) {
	e := NewEngine(nil, nil, discardLogger())

	ingestN(e, "Security Architecture", true, 2)
	ingestN(e, "Security Operations", false, 1)

	s := e.Statistics()
	if s.TotalQuestions != 3 || s.CorrectAnswers != 2 {
		t.Errorf("totals = %d/%d, want 2/3", s.CorrectAnswers, s.TotalQuestions)
	}

	sum := 0
	for _, cs := range s.Categories {
		sum += cs.Total
	}
	if sum != s.TotalQuestions {
		t.Errorf("category totals sum to %d, overall is %d", sum, s.TotalQuestions)
	}

	if got := s.CategoryAccuracy("Security Architecture"); got != 1.0 {
		t.Errorf("architecture accuracy = %v, want 1.0", got)
	}
	if got := s.CategoryAccuracy("Security Operations"); got != 0 {
		t.Errorf("operations accuracy = %v, want 0", got)
	}
	if got := s.Accuracy(); got < 0.66 || got > 0.67 {
		t.Errorf("overall accuracy = %v, want 2/3", got)
	}
}

func TestClassify_FirstAnswerClassifies(t *testing.T) {
	e := NewEngine(nil, nil, discardLogger())

	e.Ingest(answer("A", true))
	e.Ingest(answer("B", false))

	s := e.Statistics()
	if !s.IsStrong("A") {
		t.Error("category at 1.0 accuracy not classified strong")
	}
	if !s.IsWeak("B") {
		t.Error("category at 0.0 accuracy not classified weak")
	}
}

func TestClassify_BandRetainsStrongLabel(t *testing.T) {
	e := NewEngine(nil, nil, discardLogger())

	// 7 correct puts the category at 1.0, strong. Three misses bring it
	// to exactly 7/10 = 0.70, inside the band, where the label holds.
	ingestN(e, "A", true, 7)
	ingestN(e, "A", false, 3)

	s := e.Statistics()
	if got := s.CategoryAccuracy("A"); got != 0.70 {
		t.Fatalf("accuracy = %v, want 0.70", got)
	}
	if !s.IsStrong("A") {
		t.Error("label lost inside the hysteresis band")
	}
	if s.IsWeak("A") {
		t.Error("category classified weak at 0.70")
	}
}

func TestClassify_BandDoesNotClassifyUnlabeled(t *testing.T) {
	// Seed a never-classified category directly at the edge of the band.
	seed := &Statistics{
		TotalQuestions: 9,
		CorrectAnswers: 7,
		Categories: map[string]*CategoryStats{
			"A": {Total: 9, Correct: 7},
		},
	}
	e := NewEngine(seed, nil, discardLogger())

	e.Ingest(answer("A", false)) // 7/10 = 0.70 exactly

	s := e.Statistics()
	if s.IsWeak("A") || s.IsStrong("A") {
		t.Errorf("category inside the band gained a label: weak=%v strong=%v",
			s.IsWeak("A"), s.IsStrong("A"))
	}

	e.Ingest(answer("A", false)) // 7/11 < 0.70
	if !s.IsWeak("A") {
		t.Error("category below 0.70 not classified weak")
	}
}

func TestClassify_WeakRecoversToStrong(t *testing.T) {
	e := NewEngine(nil, nil, discardLogger())

	ingestN(e, "A", false, 3)
	if !e.Statistics().IsWeak("A") {
		t.Fatal("category at 0.0 not weak")
	}

	// 13 straight correct answers reach 13/16 = 0.8125.
	ingestN(e, "A", true, 13)

	s := e.Statistics()
	if !s.IsStrong("A") {
		t.Error("category above 0.80 not classified strong")
	}
	if s.IsWeak("A") {
		t.Error("category still weak after crossing the strong threshold")
	}
}

func TestClassify_MutualExclusion(t *testing.T) {
	e := NewEngine(nil, nil, discardLogger())

	ingestN(e, "A", true, 4)
	ingestN(e, "A", false, 4) // 0.50, strong drops to weak
	ingestN(e, "A", true, 40) // back well above 0.80

	s := e.Statistics()
	weak, strong := s.IsWeak("A"), s.IsStrong("A")
	if weak && strong {
		t.Error("category is both weak and strong")
	}
	if !strong {
		t.Error("category above 0.80 not strong")
	}
}

// failingGateway fails saves until unlocked.
type failingGateway struct {
	saves   int
	failing bool
}

func (g *failingGateway) LoadStatistics() (*Statistics, error) { return nil, nil }

func (g *failingGateway) SaveStatistics(*Statistics) error {
	g.saves++
	if g.failing {
		return errors.New("disk full")
	}
	return nil
}

func TestIngest_SaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	gw := &failingGateway{failing: true}
	e := NewEngine(nil, gw, discardLogger())

	e.Ingest(answer("A", true))
	if e.LastSaveErr() == nil {
		t.Error("save failure not surfaced via LastSaveErr")
	}
	if e.Statistics().TotalQuestions != 1 {
		t.Error("in-memory aggregate lost the answer after a failed save")
	}

	gw.failing = false
	e.Ingest(answer("A", true))
	if e.LastSaveErr() != nil {
		t.Errorf("LastSaveErr = %v after successful save, want nil", e.LastSaveErr())
	}
	if gw.saves != 2 {
		t.Errorf("saves = %d, want one per ingested answer", gw.saves)
	}
}

type errorLoadGateway struct{}

func (errorLoadGateway) LoadStatistics() (*Statistics, error) {
	return nil, errors.New("corrupt database")
}
func (errorLoadGateway) SaveStatistics(*Statistics) error { return nil }

func TestLoad_UnreadableSaveStartsFresh(t *testing.T) {
	e := Load(errorLoadGateway{}, discardLogger())
	s := e.Statistics()
	if s == nil || s.TotalQuestions != 0 {
		t.Errorf("stats = %+v, want fresh zero aggregate", s)
	}
}
