package history

import (
	"strings"
	"testing"
	"time"

	"github.com/clarkgrg/Trivia/internal/store"
)

func TestLoadedViewShowsAccuracyAndRecords(t *testing.T) {
	s := New(nil)

	s.Update(historyLoadedMsg{
		Records: []store.AnswerRecord{
			{Prompt: "Is the sky blue?", Guess: "True", CorrectAnswer: "True", Correct: true, AnsweredAt: time.Now()},
			{Prompt: "Capital of Australia?", Guess: "Sydney", CorrectAnswer: "Canberra", Correct: false, AnsweredAt: time.Now()},
		},
		Total:   4,
		Correct: 3,
	})

	view := s.View(80, 24)
	if !strings.Contains(view, "4 answered") {
		t.Error("view should show the total")
	}
	if !strings.Contains(view, "75% accuracy") {
		t.Error("view should show the accuracy")
	}
	if !strings.Contains(view, "Is the sky blue?") {
		t.Error("view should list the records")
	}
}

func TestErrorView(t *testing.T) {
	s := New(nil)
	s.Update(historyLoadedMsg{Err: errFake{}})

	view := s.View(80, 24)
	if !strings.Contains(view, "Could not load history") {
		t.Error("view should surface the load failure")
	}
}

func TestEmptyView(t *testing.T) {
	s := New(nil)
	s.Update(historyLoadedMsg{})

	view := s.View(80, 24)
	if !strings.Contains(view, "No answers recorded yet") {
		t.Error("view should explain the empty state")
	}
}

type errFake struct{}

func (errFake) Error() string { return "boom" }
