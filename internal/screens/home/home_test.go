package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/quizfile"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/overview"
	"github.com/abhisek/quizdeck/internal/screens/runner"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuiz() *quizfile.Quiz {
	return &quizfile.Quiz{
		Title:       "Capitals",
		Description: "A short geography check",
		Questions: []quiz.Question{
			{
				ID:      "q1",
				Text:    "What is the capital of France?",
				Type:    quiz.TypeMultipleChoice,
				Options: []string{"London", "Paris"},
				Answers: []string{"Paris"},
				Points:  1,
			},
		},
	}
}

// selectItem presses enter and resolves the resulting navigation message.
func selectItem(t *testing.T, s screen.Screen) tea.Msg {
	t.Helper()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	return cmd()
}

func TestHomeScreen_View(t *testing.T) {
	s := New(testQuiz(), t.TempDir())
	view := s.View(80, 24)

	for _, want := range []string{"Capitals", "geography", "1 questions", "Take Quiz"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHomeScreen_TakeQuizPushesRunner(t *testing.T) {
	s := New(testQuiz(), t.TempDir())

	msg := selectItem(t, s)
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*runner.RunnerScreen); !ok {
		t.Fatalf("expected runner screen, got %T", push.Screen)
	}
}

func TestHomeScreen_OverviewEntry(t *testing.T) {
	s := New(testQuiz(), t.TempDir())

	// Move down twice to Quiz Overview.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(keyPress('j'))

	msg := selectItem(t, scr)
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*overview.OverviewScreen); !ok {
		t.Fatalf("expected overview screen, got %T", push.Screen)
	}
}

func TestHomeScreen_QuitEntry(t *testing.T) {
	s := New(testQuiz(), t.TempDir())

	var scr screen.Screen = s
	for i := 0; i < 3; i++ {
		scr, _ = scr.Update(keyPress('j'))
	}

	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
