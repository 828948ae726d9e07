package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/jhardy773/security-plus-study-app/internal/progress"
)

const (
	classWeak   = "weak"
	classStrong = "strong"
)

// LoadStatistics reads the saved aggregate, returning nil when nothing
// has been saved yet. Implements progress.Gateway.
func (s *Store) LoadStatistics() (*progress.Statistics, error) {
	stats := progress.NewStatistics()

	row := s.db.QueryRow(`SELECT total_questions, correct_answers FROM stats WHERE id = 1`)
	err := row.Scan(&stats.TotalQuestions, &stats.CorrectAnswers)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}

	rows, err := s.db.Query(`SELECT category, total, correct, classification, class_rank FROM category_stats`)
	if err != nil {
		return nil, fmt.Errorf("load category stats: %w", err)
	}
	defer rows.Close()

	type classified struct {
		category string
		rank     int
	}
	var weak, strong []classified

	for rows.Next() {
		var (
			category, class string
			cs              progress.CategoryStats
			rank            int
		)
		if err := rows.Scan(&category, &cs.Total, &cs.Correct, &class, &rank); err != nil {
			return nil, fmt.Errorf("scan category stats: %w", err)
		}
		stats.Categories[category] = &progress.CategoryStats{Total: cs.Total, Correct: cs.Correct}
		switch class {
		case classWeak:
			weak = append(weak, classified{category, rank})
		case classStrong:
			strong = append(strong, classified{category, rank})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category stats: %w", err)
	}

	// Restore classification order.
	sort.Slice(weak, func(i, j int) bool { return weak[i].rank < weak[j].rank })
	sort.Slice(strong, func(i, j int) bool { return strong[i].rank < strong[j].rank })
	for _, c := range weak {
		stats.WeakAreas = append(stats.WeakAreas, c.category)
	}
	for _, c := range strong {
		stats.StrongAreas = append(stats.StrongAreas, c.category)
	}

	return stats, nil
}

// SaveStatistics replaces the saved aggregate with the given one.
// Implements progress.Gateway.
func (s *Store) SaveStatistics(stats *progress.Statistics) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO stats (id, total_questions, correct_answers) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET total_questions = excluded.total_questions, correct_answers = excluded.correct_answers`,
		stats.TotalQuestions, stats.CorrectAnswers,
	)
	if err != nil {
		return fmt.Errorf("save stats: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM category_stats`); err != nil {
		return fmt.Errorf("clear category stats: %w", err)
	}

	for category, cs := range stats.Categories {
		class := ""
		rank := 0
		for i, name := range stats.WeakAreas {
			if name == category {
				class, rank = classWeak, i
			}
		}
		for i, name := range stats.StrongAreas {
			if name == category {
				class, rank = classStrong, i
			}
		}
		_, err := tx.Exec(
			`INSERT INTO category_stats (category, total, correct, classification, class_rank) VALUES (?, ?, ?, ?, ?)`,
			category, cs.Total, cs.Correct, class, rank,
		)
		if err != nil {
			return fmt.Errorf("save category %q: %w", category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Reset deletes all saved statistics.
func (s *Store) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM stats`); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM category_stats`); err != nil {
		return fmt.Errorf("reset category stats: %w", err)
	}
	return tx.Commit()
}
