package trivia

import (
	"context"
	"fmt"
	"html"
	"sync"

	"github.com/google/uuid"

	"github.com/clarkgrg/Trivia/internal/opentdb"
)

// Fetcher retrieves a page of raw question records from the trivia source.
// *opentdb.Client satisfies this; tests inject stubs.
type Fetcher interface {
	Fetch(ctx context.Context) ([]opentdb.Result, error)
}

// Service owns the question collection and the fetch-and-populate flow.
type Service struct {
	fetcher Fetcher

	mu         sync.Mutex
	collection Collection
}

// NewService creates a Service backed by the given fetcher.
func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Refresh fetches a fresh page of questions and replaces the whole
// collection. On any failure the existing collection is left untouched.
//
// Refresh is not retried automatically and does not coalesce concurrent
// callers: the UI drops refresh triggers while one is in flight, and if
// two do race, the later replace wins.
func (s *Service) Refresh(ctx context.Context) error {
	results, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch questions: %w", err)
	}

	qs := make([]*Question, 0, len(results))
	for _, r := range results {
		qs = append(qs, mapResult(r))
	}

	s.mu.Lock()
	s.collection.Replace(qs)
	s.mu.Unlock()
	return nil
}

// Questions returns the current collection contents in fetch order.
func (s *Service) Questions() []*Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Questions()
}

// Len returns the number of questions currently loaded.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Len()
}

// mapResult turns a raw API record into a Question with a fresh identity.
// The API HTML-escapes all text fields, so they are unescaped here.
func mapResult(r opentdb.Result) *Question {
	incorrect := make([]string, len(r.IncorrectAnswers))
	for i, a := range r.IncorrectAnswers {
		incorrect[i] = html.UnescapeString(a)
	}

	return &Question{
		ID:               uuid.New().String(),
		Category:         html.UnescapeString(r.Category),
		Type:             QuestionType(r.Type),
		Difficulty:       Difficulty(r.Difficulty),
		Prompt:           html.UnescapeString(r.Question),
		CorrectAnswer:    html.UnescapeString(r.CorrectAnswer),
		IncorrectAnswers: incorrect,
	}
}
