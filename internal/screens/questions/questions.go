package questions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/clarkgrg/Trivia/internal/opentdb"
	"github.com/clarkgrg/Trivia/internal/router"
	"github.com/clarkgrg/Trivia/internal/screen"
	"github.com/clarkgrg/Trivia/internal/store"
	"github.com/clarkgrg/Trivia/internal/trivia"
	"github.com/clarkgrg/Trivia/internal/ui/layout"
	"github.com/clarkgrg/Trivia/internal/ui/theme"
)

// refreshTimeout bounds a single fetch-and-populate attempt so a dismissed
// or stuck refresh cannot linger forever.
const refreshTimeout = 30 * time.Second

// QuestionsScreen renders the loaded question collection as a navigable
// list with refresh support. Selecting a question pushes an AnswerScreen.
type QuestionsScreen struct {
	service *trivia.Service
	answers store.Answers
	logger  *zap.Logger

	spin       spinner.Model
	refreshing bool
	loaded     bool
	selected   int
	errMsg     string
}

var _ screen.Screen = (*QuestionsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionsScreen)(nil)

// New creates a QuestionsScreen with injected dependencies.
func New(service *trivia.Service, answers store.Answers, logger *zap.Logger) *QuestionsScreen {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Hint

	return &QuestionsScreen{
		service: service,
		answers: answers,
		logger:  logger,
		spin:    spin,
	}
}

func (s *QuestionsScreen) Title() string {
	return "Questions"
}

func (s *QuestionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

// Init triggers the fetch-and-populate flow exactly once on first display.
func (s *QuestionsScreen) Init() tea.Cmd {
	s.refreshing = true
	return tea.Batch(s.refresh(), s.spin.Tick)
}

func (s *QuestionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshedMsg:
		return s.handleRefreshed(msg)

	case answerSavedMsg:
		if msg.Err != nil {
			s.logger.Warn("failed to record answer", zap.Error(msg.Err))
		}
		return s, nil

	case spinner.TickMsg:
		if !s.refreshing {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// refresh runs one fetch-and-populate attempt off the UI loop.
func (s *QuestionsScreen) refresh() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		return refreshedMsg{Err: s.service.Refresh(ctx)}
	}
}

func (s *QuestionsScreen) handleRefreshed(msg refreshedMsg) (screen.Screen, tea.Cmd) {
	s.refreshing = false
	s.loaded = true

	if msg.Err != nil {
		// Prior questions stay visible; the failure is surfaced and logged.
		s.errMsg = refreshErrorText(msg.Err)
		s.logger.Warn("refresh failed", zap.Error(msg.Err))
		return s, nil
	}

	s.errMsg = ""
	s.selected = 0
	return s, nil
}

func (s *QuestionsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	qs := s.service.Questions()

	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(qs)-1 {
			s.selected++
		}
	case "enter":
		if s.selected >= 0 && s.selected < len(qs) {
			q := qs[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: NewAnswerScreen(q, s.answers, s.logger)}
			}
		}
	case "r":
		// Drop-while-in-flight: a refresh trigger is ignored while one is
		// already running.
		if s.refreshing {
			return s, nil
		}
		s.refreshing = true
		return s, tea.Batch(s.refresh(), s.spin.Tick)
	}

	return s, nil
}

func (s *QuestionsScreen) View(width, height int) string {
	qs := s.service.Questions()

	if !s.loaded && len(qs) == 0 {
		return "\n  " + s.spin.View() + theme.Hint.Render(" Loading questions...")
	}

	var out string

	if s.refreshing {
		out += "\n  " + s.spin.View() + theme.Hint.Render(" Refreshing...") + "\n\n"
	} else {
		out += "\n  " + theme.Subtitle.Render(fmt.Sprintf("%d questions loaded", len(qs))) + "\n\n"
	}

	if s.errMsg != "" {
		out += "  " + theme.Incorrect.Render(s.errMsg) + "\n\n"
	}

	if len(qs) == 0 {
		out += "  " + theme.Hint.Render("No questions yet. Press r to fetch a fresh set.") + "\n"
		return out
	}

	for i, q := range qs {
		marker := theme.Hint.Render("·")
		if q.Answered() {
			if q.IsCorrect() {
				marker = theme.Correct.Render("✔")
			} else {
				marker = theme.Incorrect.Render("✘")
			}
		}

		prompt := truncate(q.Prompt, width-8)
		line := fmt.Sprintf("%s %s", marker, prompt)
		if i == s.selected {
			out += "  " + theme.Selected.Render("▸ ") + line + "\n"
		} else {
			out += "    " + line + "\n"
		}
	}

	return out
}

// refreshErrorText maps the client's failure taxonomy to a short message.
func refreshErrorText(err error) string {
	var unavail *opentdb.ErrUnavailable
	if errors.As(err, &unavail) {
		return "Could not reach the trivia service. Showing previous questions."
	}
	var status *opentdb.ErrBadStatus
	if errors.As(err, &status) {
		return fmt.Sprintf("Trivia service returned HTTP %d. Showing previous questions.", status.StatusCode)
	}
	var bad *opentdb.ErrBadData
	if errors.As(err, &bad) {
		return "Trivia service sent an unreadable response. Showing previous questions."
	}
	return "Refresh failed. Showing previous questions."
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
