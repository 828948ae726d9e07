package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed bank.json
var defaultBank []byte

// bankFile is the on-disk shape of a question bank document.
type bankFile struct {
	Categories []struct {
		Name      string     `json:"name"`
		Questions []Question `json:"questions"`
	} `json:"categories"`
}

// Repository holds the categorized question bank for the process lifetime.
// It is read-only after construction.
type Repository struct {
	categories []string
	byCategory map[string][]Question
	byID       map[int]Question
}

// Default loads the embedded Security+ question bank.
func Default() (*Repository, error) {
	return Parse(defaultBank)
}

// LoadFile loads a question bank from a JSON file on disk.
func LoadFile(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	repo, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return repo, nil
}

// Parse validates and decodes a question bank document.
func Parse(data []byte) (*Repository, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}

	var f bankFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	repo := &Repository{
		byCategory: make(map[string][]Question),
		byID:       make(map[int]Question),
	}

	for _, cat := range f.Categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("category with empty name")
		}
		if _, dup := repo.byCategory[cat.Name]; dup {
			return nil, fmt.Errorf("duplicate category %q", cat.Name)
		}
		repo.categories = append(repo.categories, cat.Name)

		questions := make([]Question, 0, len(cat.Questions))
		for _, q := range cat.Questions {
			q.Category = cat.Name
			if err := q.Validate(); err != nil {
				return nil, fmt.Errorf("category %q: %w", cat.Name, err)
			}
			if _, dup := repo.byID[q.ID]; dup {
				return nil, fmt.Errorf("duplicate question id %d", q.ID)
			}
			repo.byID[q.ID] = q
			questions = append(questions, q)
		}
		repo.byCategory[cat.Name] = questions
	}

	if len(repo.byID) == 0 {
		return nil, fmt.Errorf("bank contains no questions")
	}
	return repo, nil
}

// Categories returns category names in bank-file order.
func (r *Repository) Categories() []string {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

// ByCategory returns the questions belonging to a category.
func (r *Repository) ByCategory(name string) []Question {
	qs := r.byCategory[name]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// ByID looks up a question by its identifier.
func (r *Repository) ByID(id int) (Question, bool) {
	q, ok := r.byID[id]
	return q, ok
}

// All returns every question in the bank, grouped by category order.
func (r *Repository) All() []Question {
	var out []Question
	for _, name := range r.categories {
		out = append(out, r.byCategory[name]...)
	}
	return out
}

// Len returns the total number of questions in the bank.
func (r *Repository) Len() int {
	return len(r.byID)
}
