package trivia

import (
	"context"
	"testing"

	"github.com/clarkgrg/Trivia/internal/opentdb"
)

// stubFetcher implements Fetcher for tests.
type stubFetcher struct {
	results []opentdb.Result
	err     error
	calls   int
}

func (f *stubFetcher) Fetch(_ context.Context) ([]opentdb.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func sampleResults() []opentdb.Result {
	return []opentdb.Result{
		{
			Category:         "Science",
			Type:             "boolean",
			Difficulty:       "easy",
			Question:         "Is the sky blue?",
			CorrectAnswer:    "True",
			IncorrectAnswers: []string{"False"},
		},
		{
			Category:         "Geography",
			Type:             "multiple",
			Difficulty:       "medium",
			Question:         "What is the capital of Australia?",
			CorrectAnswer:    "Canberra",
			IncorrectAnswers: []string{"Sydney", "Melbourne", "Perth"},
		},
	}
}

func TestRefreshPopulatesCollection(t *testing.T) {
	svc := NewService(&stubFetcher{results: sampleResults()})

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	qs := svc.Questions()
	if len(qs) != 2 {
		t.Fatalf("collection length = %d, want 2", len(qs))
	}

	// Order reflects the order received.
	if qs[0].Prompt != "Is the sky blue?" || qs[1].Prompt != "What is the capital of Australia?" {
		t.Errorf("fetch order not preserved: %q, %q", qs[0].Prompt, qs[1].Prompt)
	}

	// Identifiers are fresh and unique.
	seen := map[string]bool{}
	for _, q := range qs {
		if q.ID == "" {
			t.Error("question has empty ID")
		}
		if seen[q.ID] {
			t.Errorf("duplicate ID %q", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestRefreshMapsSourceFields(t *testing.T) {
	svc := NewService(&stubFetcher{results: sampleResults()})
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := svc.Questions()[0]
	if q.Category != "Science" {
		t.Errorf("Category = %q", q.Category)
	}
	if q.Type != TypeBoolean {
		t.Errorf("Type = %q", q.Type)
	}
	if q.Difficulty != DifficultyEasy {
		t.Errorf("Difficulty = %q", q.Difficulty)
	}
	if q.CorrectAnswer != "True" {
		t.Errorf("CorrectAnswer = %q", q.CorrectAnswer)
	}
	if len(q.IncorrectAnswers) != 1 || q.IncorrectAnswers[0] != "False" {
		t.Errorf("IncorrectAnswers = %v", q.IncorrectAnswers)
	}

	all := q.AllAnswers()
	seen := map[string]bool{}
	for _, a := range all {
		seen[a] = true
	}
	if len(all) != 2 || !seen["True"] || !seen["False"] {
		t.Errorf("AllAnswers() = %v, want multiset {True, False}", all)
	}
}

func TestRefreshUnescapesHTMLEntities(t *testing.T) {
	svc := NewService(&stubFetcher{results: []opentdb.Result{{
		Category:         "Entertainment: Film",
		Type:             "multiple",
		Difficulty:       "hard",
		Question:         "Who said &quot;I&#039;ll be back&quot;?",
		CorrectAnswer:    "The Terminator &amp; co",
		IncorrectAnswers: []string{"Rocky &amp; co"},
	}}})
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := svc.Questions()[0]
	if q.Prompt != `Who said "I'll be back"?` {
		t.Errorf("Prompt = %q", q.Prompt)
	}
	if q.CorrectAnswer != "The Terminator & co" {
		t.Errorf("CorrectAnswer = %q", q.CorrectAnswer)
	}
	if q.IncorrectAnswers[0] != "Rocky & co" {
		t.Errorf("IncorrectAnswers[0] = %q", q.IncorrectAnswers[0])
	}
}

func TestRefreshFailureLeavesCollectionUntouched(t *testing.T) {
	fetcher := &stubFetcher{results: sampleResults()}
	svc := NewService(fetcher)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := svc.Questions()

	fetcher.err = &opentdb.ErrBadStatus{StatusCode: 500}
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatal("expected an error")
	}

	after := svc.Questions()
	if len(after) != len(before) {
		t.Fatalf("collection length changed: %d → %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("question %d replaced despite failed refresh", i)
		}
	}
}

func TestRefreshBadDataLeavesCollectionUntouched(t *testing.T) {
	fetcher := &stubFetcher{results: sampleResults()}
	svc := NewService(fetcher)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fetcher.err = &opentdb.ErrBadData{Err: context.Canceled}
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if svc.Len() != 2 {
		t.Errorf("collection length = %d, want 2", svc.Len())
	}
}

func TestRefreshReplacesWholesaleAndResetsGuesses(t *testing.T) {
	fetcher := &stubFetcher{results: sampleResults()}
	svc := NewService(fetcher)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	old := svc.Questions()
	old[0].SetGuess("True")
	oldID := old[0].ID

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fresh := svc.Questions()
	if fresh[0].ID == oldID {
		t.Error("refresh should create new entities with fresh IDs")
	}
	for _, q := range fresh {
		if q.Answered() {
			t.Error("refreshed questions should have no guess")
		}
	}
}
