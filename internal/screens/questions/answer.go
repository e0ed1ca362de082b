package questions

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/clarkgrg/Trivia/internal/screen"
	"github.com/clarkgrg/Trivia/internal/store"
	"github.com/clarkgrg/Trivia/internal/trivia"
	"github.com/clarkgrg/Trivia/internal/ui/components"
	"github.com/clarkgrg/Trivia/internal/ui/layout"
	"github.com/clarkgrg/Trivia/internal/ui/theme"
)

// AnswerScreen shows a single question with its shuffled answer options.
// Submitting an option sets the guess, evaluates it, and appends the
// result to the answer history.
type AnswerScreen struct {
	question *trivia.Question
	answers  store.Answers
	logger   *zap.Logger
	picker   components.AnswerPicker
}

var _ screen.Screen = (*AnswerScreen)(nil)
var _ screen.KeyHintProvider = (*AnswerScreen)(nil)

// NewAnswerScreen creates the detail screen for q. A previously answered
// question comes back in its submitted state.
func NewAnswerScreen(q *trivia.Question, answers store.Answers, logger *zap.Logger) *AnswerScreen {
	picker := components.NewAnswerPicker(q.AllAnswers(), q.CorrectAnswer)
	if q.Answered() {
		picker.Submitted = true
		picker.Chosen = q.Guess()
	}

	return &AnswerScreen{
		question: q,
		answers:  answers,
		logger:   logger,
		picker:   picker,
	}
}

func (s *AnswerScreen) Init() tea.Cmd {
	return nil
}

func (s *AnswerScreen) Title() string {
	return "Question"
}

func (s *AnswerScreen) KeyHints() []layout.KeyHint {
	if s.picker.Submitted {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back to list"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AnswerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if saved, ok := msg.(answerSavedMsg); ok {
		if saved.Err != nil {
			s.logger.Warn("failed to record answer", zap.Error(saved.Err))
		}
		return s, nil
	}

	wasSubmitted := s.picker.Submitted

	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)

	if !wasSubmitted && s.picker.Submitted {
		s.question.SetGuess(s.picker.Chosen)
		return s, s.persistAnswer()
	}

	return s, cmd
}

// persistAnswer appends the evaluated guess to the answer history.
// Failures are logged, never surfaced: history is a convenience.
func (s *AnswerScreen) persistAnswer() tea.Cmd {
	q := s.question
	rec := store.AnswerRecord{
		QuestionID:    q.ID,
		Category:      q.Category,
		Difficulty:    string(q.Difficulty),
		Prompt:        q.Prompt,
		CorrectAnswer: q.CorrectAnswer,
		Guess:         q.Guess(),
		Correct:       q.IsCorrect(),
		AnsweredAt:    time.Now(),
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return answerSavedMsg{Err: s.answers.Append(ctx, rec)}
	}
}

func (s *AnswerScreen) View(width, height int) string {
	q := s.question

	meta := theme.Subtitle.Render(fmt.Sprintf("%s · %s", metaCategory(q), q.Difficulty))
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 4).
		Render(q.Prompt)

	out := "\n  " + meta + "\n\n  " + prompt + "\n\n"
	out += s.picker.View()

	if s.picker.Submitted {
		out += "\n"
		if q.IsCorrect() {
			out += "  " + theme.Correct.Render("Correct!") + "\n"
		} else {
			out += "  " + theme.Incorrect.Render(
				fmt.Sprintf("Incorrect. The correct answer is: %s", q.CorrectAnswer)) + "\n"
		}
	}

	return out
}

func metaCategory(q *trivia.Question) string {
	if q.Category == "" {
		return "General"
	}
	return q.Category
}
