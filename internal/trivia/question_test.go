package trivia

import (
	"sort"
	"testing"
)

func newTestQuestion() *Question {
	return &Question{
		ID:               "q-1",
		Category:         "Science",
		Type:             TypeMultiple,
		Difficulty:       DifficultyEasy,
		Prompt:           "What planet is known as the Red Planet?",
		CorrectAnswer:    "Mars",
		IncorrectAnswers: []string{"Venus", "Jupiter", "Mercury"},
	}
}

func TestIsCorrectRequiresExactMatch(t *testing.T) {
	tests := []struct {
		name  string
		guess string
		want  bool
	}{
		{"no guess", "", false},
		{"correct text", "Mars", true},
		{"wrong text", "Venus", false},
		{"case differs", "mars", false},
		{"leading space", " Mars", false},
		{"trailing space", "Mars ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newTestQuestion()
			if tt.guess != "" {
				q.SetGuess(tt.guess)
			}
			if got := q.IsCorrect(); got != tt.want {
				t.Errorf("IsCorrect() with guess %q = %v, want %v", tt.guess, got, tt.want)
			}
		})
	}
}

func TestSetGuessOverwrites(t *testing.T) {
	q := newTestQuestion()

	q.SetGuess("Venus")
	if q.IsCorrect() {
		t.Error("wrong guess should not be correct")
	}

	q.SetGuess("Mars")
	if !q.IsCorrect() {
		t.Error("guess should have been overwritten with the correct answer")
	}
	if q.Guess() != "Mars" {
		t.Errorf("Guess() = %q, want %q", q.Guess(), "Mars")
	}
}

func TestSetGuessAcceptsUnknownText(t *testing.T) {
	q := newTestQuestion()
	q.SetGuess("not an option")

	if q.Guess() != "not an option" {
		t.Errorf("Guess() = %q, want the unvalidated text", q.Guess())
	}
	if q.IsCorrect() {
		t.Error("unknown text should not be correct")
	}
}

func TestAnswered(t *testing.T) {
	q := newTestQuestion()
	if q.Answered() {
		t.Error("fresh question should not be answered")
	}
	q.SetGuess("Venus")
	if !q.Answered() {
		t.Error("question with a guess should be answered")
	}
}

func TestAllAnswersMultiset(t *testing.T) {
	q := newTestQuestion()
	all := q.AllAnswers()

	if len(all) != len(q.IncorrectAnswers)+1 {
		t.Fatalf("AllAnswers() length = %d, want %d", len(all), len(q.IncorrectAnswers)+1)
	}

	want := append([]string{q.CorrectAnswer}, q.IncorrectAnswers...)
	got := append([]string(nil), all...)
	sort.Strings(want)
	sort.Strings(got)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllAnswers() multiset = %v, want %v", got, want)
		}
	}
}

func TestAllAnswersStableAcrossCalls(t *testing.T) {
	q := newTestQuestion()

	first := q.AllAnswers()
	for range 10 {
		again := q.AllAnswers()
		if len(again) != len(first) {
			t.Fatalf("length changed between calls: %d vs %d", len(again), len(first))
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("order changed between calls: %v vs %v", again, first)
			}
		}
	}
}

func TestAllAnswersBooleanQuestion(t *testing.T) {
	q := &Question{
		Type:             TypeBoolean,
		Prompt:           "Is the sky blue?",
		CorrectAnswer:    "True",
		IncorrectAnswers: []string{"False"},
	}

	all := q.AllAnswers()
	if len(all) != 2 {
		t.Fatalf("AllAnswers() length = %d, want 2", len(all))
	}
	seen := map[string]bool{}
	for _, a := range all {
		seen[a] = true
	}
	if !seen["True"] || !seen["False"] {
		t.Errorf("AllAnswers() = %v, want multiset {True, False}", all)
	}
}

func TestAllAnswersNoIncorrect(t *testing.T) {
	q := &Question{CorrectAnswer: "42"}

	all := q.AllAnswers()
	if len(all) != 1 || all[0] != "42" {
		t.Errorf("AllAnswers() = %v, want [42]", all)
	}
}
