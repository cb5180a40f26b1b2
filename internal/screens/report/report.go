package report

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/results"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ReportScreen displays the final score and per-question breakdown for a
// finished session, with an option to export the results to disk.
type ReportScreen struct {
	summary    results.Summary
	resultsDir string

	savedPath string
	saveErr   error
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a new ReportScreen.
func New(summary results.Summary, resultsDir string) *ReportScreen {
	return &ReportScreen{summary: summary, resultsDir: resultsDir}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Results"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.savedPath == "" {
		hints = append(hints, layout.KeyHint{Key: "s", Description: "Save results"})
	}
	hints = append(hints, layout.KeyHint{Key: "Enter/Esc", Description: "Home"})
	return hints
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "s":
			if s.savedPath == "" {
				s.savedPath, s.saveErr = results.Save(s.resultsDir, s.summary)
			}
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	sum := s.summary

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	headline := "Quiz complete!"
	if sum.Aborted {
		headline = "Quiz ended early"
	}
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), headline))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Score: %d/%d points (%.1f%%)",
		sum.TotalPoints, sum.MaxPoints, sum.Percentage)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), scoreLine))
	b.WriteString("\n")

	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Time: %s",
		sum.Answered, sum.Correct, sum.DurationStr)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), statsLine))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(remarkColor(sum.Percentage)), remark(sum.Percentage)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Questions")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, out := range sum.Outcomes {
		mark := theme.Correct.Render("+")
		detail := fmt.Sprintf("%d pt", out.PointsEarned)
		if !out.Correct {
			mark = theme.Incorrect.Render("x")
			detail = fmt.Sprintf("answer: %s", out.CorrectAnswer)
		}

		line := fmt.Sprintf("%s  %d. %s    %s",
			mark, i+1, truncate(out.QuestionText, 48),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error),
			fmt.Sprintf("Save failed: %v", s.saveErr)))
	} else if s.savedPath != "" {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Success),
			fmt.Sprintf("Saved to %s", s.savedPath)))
	}

	return b.String()
}

// remark returns the encouragement line for a final percentage.
func remark(pct float64) string {
	switch {
	case pct >= 90:
		return "Excellent work!"
	case pct >= 75:
		return "Great job!"
	case pct >= 60:
		return "Good effort!"
	default:
		return "Keep practicing!"
	}
}

func remarkColor(pct float64) color.Color {
	switch {
	case pct >= 75:
		return theme.Success
	case pct >= 60:
		return theme.Accent
	default:
		return theme.Error
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
