package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/clarkgrg/Trivia/internal/router"
	"github.com/clarkgrg/Trivia/internal/screen"
	"github.com/clarkgrg/Trivia/internal/screens/history"
	"github.com/clarkgrg/Trivia/internal/screens/questions"
	"github.com/clarkgrg/Trivia/internal/store"
	"github.com/clarkgrg/Trivia/internal/trivia"
	"github.com/clarkgrg/Trivia/internal/ui/components"
	"github.com/clarkgrg/Trivia/internal/ui/theme"
)

const banner = `
 ████████ ██████  ██ ██    ██ ██  █████
    ██    ██   ██ ██ ██    ██ ██ ██   ██
    ██    ██████  ██ ██    ██ ██ ███████
    ██    ██   ██ ██  ██  ██  ██ ██   ██
    ██    ██   ██ ██   ████   ██ ██   ██`

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the app's dependencies.
func New(service *trivia.Service, answers store.Answers, logger *zap.Logger) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PLAY TRIVIA", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: questions.New(service, answers, logger)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(answers)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.menu.Init()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(banner)

	subtitle := theme.Subtitle.Render("Answer questions from the Open Trivia Database")

	content := title + "\n\n" + subtitle + "\n\n\n" + h.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}
