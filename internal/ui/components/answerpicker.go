package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clarkgrg/Trivia/internal/ui/theme"
)

// AnswerPicker presents a question's answer options as a radio-button
// list. Correctness is judged by exact text equality with CorrectAnswer,
// never by option position, since the option order is shuffled.
type AnswerPicker struct {
	Options       []string
	CorrectAnswer string
	Selected      int
	Submitted     bool
	Chosen        string
}

// NewAnswerPicker creates a picker over the given options.
func NewAnswerPicker(options []string, correctAnswer string) AnswerPicker {
	return AnswerPicker{
		Options:       options,
		CorrectAnswer: correctAnswer,
	}
}

// Init returns nil.
func (p AnswerPicker) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Once submitted, the
// picker is inert.
func (p AnswerPicker) Update(msg tea.Msg) (AnswerPicker, tea.Cmd) {
	if p.Submitted {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	case "enter":
		if p.Selected >= 0 && p.Selected < len(p.Options) {
			p.Submitted = true
			p.Chosen = p.Options[p.Selected]
		}
	}

	return p, nil
}

// View renders the options as radio buttons.
func (p AnswerPicker) View() string {
	var s string
	for i, opt := range p.Options {
		radio := "○"
		if p.Submitted && opt == p.Chosen {
			radio = "●"
		} else if !p.Submitted && i == p.Selected {
			radio = "●"
		}

		line := "  " + radio + " " + opt

		switch {
		case p.Submitted && opt == p.CorrectAnswer:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case p.Submitted && opt == p.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case p.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == p.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// IsCorrect returns true if the chosen answer matches the correct text.
func (p AnswerPicker) IsCorrect() bool {
	return p.Submitted && p.Chosen == p.CorrectAnswer
}
