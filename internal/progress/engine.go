package progress

import (
	"log/slog"
)

// Classification thresholds. The band between them is a hysteresis zone:
// an existing weak or strong label is retained until accuracy crosses the
// opposite threshold, which keeps borderline categories from flapping.
const (
	weakBelow     = 0.70
	strongAtLeast = 0.80
)

// Gateway is the persistence contract for statistics. Load returns nil
// when nothing has been saved yet. Failures are non-fatal to the engine.
type Gateway interface {
	LoadStatistics() (*Statistics, error)
	SaveStatistics(*Statistics) error
}

// Engine owns the statistics aggregate and applies answer outcomes to it.
// It is the single writer; the saved copy trails the in-memory state by
// at most one failed write.
type Engine struct {
	stats   *Statistics
	gateway Gateway
	logger  *slog.Logger

	// lastSaveErr holds the most recent persistence failure, cleared on
	// the next successful save. In-memory state stays authoritative.
	lastSaveErr error
}

// NewEngine creates an engine around an existing aggregate. A nil stats
// starts from zero; a nil gateway disables persistence.
func NewEngine(stats *Statistics, gw Gateway, logger *slog.Logger) *Engine {
	if stats == nil {
		stats = NewStatistics()
	}
	if stats.Categories == nil {
		stats.Categories = make(map[string]*CategoryStats)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{stats: stats, gateway: gw, logger: logger}
}

// Load builds an engine from the gateway's saved state, treating an
// absent or unreadable save as a zero-valued aggregate.
func Load(gw Gateway, logger *slog.Logger) *Engine {
	var stats *Statistics
	if gw != nil {
		loaded, err := gw.LoadStatistics()
		if err != nil {
			if logger == nil {
				logger = slog.Default()
			}
			logger.Warn("loading saved statistics failed, starting fresh", "error", err)
		} else {
			stats = loaded
		}
	}
	return NewEngine(stats, gw, logger)
}

// Statistics returns the current aggregate.
func (e *Engine) Statistics() *Statistics {
	return e.stats
}

// LastSaveErr returns the pending persistence failure, if any.
func (e *Engine) LastSaveErr() error {
	return e.lastSaveErr
}

// Ingest applies one answer outcome: updates the overall and per-category
// counters, reclassifies the category, and saves the aggregate. The
// caller guarantees each finalized question is ingested exactly once.
func (e *Engine) Ingest(a Answer) *Statistics {
	s := e.stats
	s.TotalQuestions++
	if a.IsCorrect {
		s.CorrectAnswers++
	}

	cs := s.Categories[a.Category]
	if cs == nil {
		cs = &CategoryStats{}
		s.Categories[a.Category] = cs
	}
	cs.Total++
	if a.IsCorrect {
		cs.Correct++
	}

	e.reclassify(a.Category, cs.Accuracy())
	e.save()
	return s
}

// reclassify applies the hysteresis rule after an ingestion. Weak is
// checked first; accuracy is a single value so both branches can never
// match at once.
func (e *Engine) reclassify(category string, accuracy float64) {
	s := e.stats
	switch {
	case accuracy < weakBelow:
		if !s.IsWeak(category) {
			s.WeakAreas = append(s.WeakAreas, category)
		}
		s.StrongAreas = remove(s.StrongAreas, category)
	case accuracy >= strongAtLeast:
		if !s.IsStrong(category) {
			s.StrongAreas = append(s.StrongAreas, category)
		}
		s.WeakAreas = remove(s.WeakAreas, category)
	}
	// Inside the band the existing label, if any, is kept.
}

// save writes the aggregate through the gateway. Failures are logged and
// remembered; they never interrupt a session.
func (e *Engine) save() {
	if e.gateway == nil {
		return
	}
	if err := e.gateway.SaveStatistics(e.stats); err != nil {
		e.lastSaveErr = err
		e.logger.Warn("saving statistics failed", "error", err)
		return
	}
	e.lastSaveErr = nil
}
