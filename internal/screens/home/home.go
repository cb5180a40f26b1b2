package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/quizfile"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/overview"
	"github.com/abhisek/quizdeck/internal/screens/runner"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// HomeScreen is the main menu shown after a quiz file loads.
type HomeScreen struct {
	quiz       *quizfile.Quiz
	resultsDir string
	menu       components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen for the loaded quiz.
func New(q *quizfile.Quiz, resultsDir string) *HomeScreen {
	s := &HomeScreen{quiz: q, resultsDir: resultsDir}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label: "Take Quiz",
			Action: push(func() screen.Screen {
				return runner.New(q, runner.Options{ResultsDir: resultsDir})
			}),
		},
		{
			Label: "Take Quiz (Shuffled)",
			Action: push(func() screen.Screen {
				return runner.New(q, runner.Options{Shuffle: true, ResultsDir: resultsDir})
			}),
		},
		{
			Label: "Quiz Overview",
			Action: push(func() screen.Screen {
				return overview.New(q)
			}),
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	})

	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), s.quiz.Title))
	if s.quiz.Description != "" {
		b.WriteString("\n")
		b.WriteString(center(theme.Subtitle, s.quiz.Description))
	}
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("%d questions, %d points",
			len(s.quiz.Questions), quiz.TotalPoints(s.quiz.Questions))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}
