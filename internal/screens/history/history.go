package history

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clarkgrg/Trivia/internal/screen"
	"github.com/clarkgrg/Trivia/internal/store"
	"github.com/clarkgrg/Trivia/internal/ui/layout"
	"github.com/clarkgrg/Trivia/internal/ui/theme"
)

const recentLimit = 50

type historyLoadedMsg struct {
	Records []store.AnswerRecord
	Total   int
	Correct int
	Err     error
}

// HistoryScreen displays recent answers and overall accuracy.
type HistoryScreen struct {
	answers  store.Answers
	records  []store.AnswerRecord
	total    int
	correct  int
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(answers store.Answers) *HistoryScreen {
	return &HistoryScreen{answers: answers}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		records, err := s.answers.Recent(ctx, recentLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		total, correct, err := s.answers.Stats(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		return historyLoadedMsg{Records: records, Total: total, Correct: correct}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.records = msg.Records
		s.total = msg.Total
		s.correct = msg.Correct
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		}
	}

	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return "\n  " + theme.Hint.Render("Loading history...")
	}
	if s.errMsg != "" {
		return "\n  " + theme.Incorrect.Render("Could not load history: "+s.errMsg)
	}
	if len(s.records) == 0 {
		return "\n  " + theme.Hint.Render("No answers recorded yet. Play a round first!")
	}

	accuracy := 0.0
	if s.total > 0 {
		accuracy = float64(s.correct) / float64(s.total) * 100
	}

	out := "\n  " + theme.Subtitle.Render(
		fmt.Sprintf("%d answered · %d correct · %.0f%% accuracy", s.total, s.correct, accuracy)) + "\n\n"

	for i, rec := range s.records {
		marker := theme.Incorrect.Render("✘")
		if rec.Correct {
			marker = theme.Correct.Render("✔")
		}

		line := fmt.Sprintf("%s %s", marker, truncate(rec.Prompt, width-10))
		if i == s.selected {
			out += "  " + theme.Selected.Render("▸ ") + line + "\n"
			detail := fmt.Sprintf("guessed %q · correct answer %q · %s",
				rec.Guess, rec.CorrectAnswer, rec.AnsweredAt.Local().Format("Jan 2 15:04"))
			out += "      " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail) + "\n"
		} else {
			out += "    " + line + "\n"
		}
	}

	return out
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
