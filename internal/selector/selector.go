// Package selector draws the randomized question sequence for a session.
package selector

import (
	"errors"
	"math/rand"

	"github.com/jhardy773/security-plus-study-app/internal/bank"
)

// ErrEmptySelection is returned when no questions match the chosen
// categories and difficulty filter. No session may start in this case.
var ErrEmptySelection = errors.New("no questions match the selected criteria")

// Select filters the repository to the chosen categories and difficulty,
// then returns the eligible questions in uniform-random order. The rng is
// injected so tests can seed it; callers pass rand.New(rand.NewSource(...)).
func Select(repo *bank.Repository, categories []string, filter bank.Filter, rng *rand.Rand) ([]bank.Question, error) {
	var eligible []bank.Question
	for _, name := range categories {
		for _, q := range repo.ByCategory(name) {
			if filter.Matches(q.Difficulty) {
				eligible = append(eligible, q)
			}
		}
	}
	if len(eligible) == 0 {
		return nil, ErrEmptySelection
	}

	// Fisher-Yates via rand.Shuffle. A comparator-based shuffle would
	// not be uniform.
	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	return eligible, nil
}
