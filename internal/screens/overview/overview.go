package overview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/quizfile"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// OverviewScreen shows a read-only breakdown of the loaded quiz: totals,
// per-category counts, and the question type mix.
type OverviewScreen struct {
	quiz       *quizfile.Quiz
	categories []quizfile.CategorySummary
	typeCounts map[quiz.QuestionType]int
}

var _ screen.Screen = (*OverviewScreen)(nil)
var _ screen.KeyHintProvider = (*OverviewScreen)(nil)

// New creates a new OverviewScreen.
func New(q *quizfile.Quiz) *OverviewScreen {
	counts := make(map[quiz.QuestionType]int)
	for i := range q.Questions {
		counts[q.Questions[i].Type]++
	}
	return &OverviewScreen{
		quiz:       q,
		categories: quizfile.Summarize(q.Questions),
		typeCounts: counts,
	}
}

func (s *OverviewScreen) Init() tea.Cmd {
	return nil
}

func (s *OverviewScreen) Title() string {
	return "Quiz Overview"
}

func (s *OverviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *OverviewScreen) View(width, height int) string {
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), s.quiz.Title))
	if s.quiz.Description != "" {
		b.WriteString("\n")
		b.WriteString(center(theme.Subtitle, s.quiz.Description))
	}
	b.WriteString("\n\n")

	totalPts := quiz.TotalPoints(s.quiz.Questions)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Questions: %d        Total points: %d", len(s.quiz.Questions), totalPts)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Categories")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, c := range s.categories {
		line := fmt.Sprintf("  %-20s %2d questions   %3d pts",
			c.Category, c.Questions, c.Points)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Question types")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, t := range quiz.AllTypes() {
		if s.typeCounts[t] == 0 {
			continue
		}
		line := fmt.Sprintf("  %-20s %2d", typeLabel(t), s.typeCounts[t])
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// typeLabel returns the human-readable name of a question type.
func typeLabel(t quiz.QuestionType) string {
	switch t {
	case quiz.TypeMultipleChoice:
		return "Multiple choice"
	case quiz.TypeTrueFalse:
		return "True / False"
	case quiz.TypeFillBlank:
		return "Fill in the blank"
	case quiz.TypeShortAnswer:
		return "Short answer"
	default:
		return string(t)
	}
}
