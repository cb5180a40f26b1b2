package runner

import (
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/quizfile"
	"github.com/abhisek/quizdeck/internal/results"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/report"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Options configures a quiz run.
type Options struct {
	// Shuffle randomizes the question order.
	Shuffle bool

	// Rand seeds the shuffle; nil means time-seeded.
	Rand *rand.Rand

	// ResultsDir is where the report screen saves exported results.
	ResultsDir string
}

// RunnerScreen drives one quiz attempt: it displays the current question,
// collects the answer, shows per-answer feedback, and hands the completed
// session over to the report screen.
type RunnerScreen struct {
	title string
	sess  *session.Session
	opts  Options

	input       components.TextInput
	mcActive    bool
	mcSelected  int
	lastOutcome *quiz.Outcome

	showingFeedback    bool
	showingQuitConfirm bool
	elapsed            time.Duration
}

var _ screen.Screen = (*RunnerScreen)(nil)
var _ screen.KeyHintProvider = (*RunnerScreen)(nil)

// New creates a RunnerScreen with a fresh session over the quiz's questions.
func New(q *quizfile.Quiz, opts Options) *RunnerScreen {
	s := &RunnerScreen{
		title: q.Title,
		sess:  session.New(q.Questions, session.Options{Shuffle: opts.Shuffle, Rand: opts.Rand}),
		opts:  opts,
		input: components.NewTextInput("Type your answer...", 80),
	}
	s.setupCurrent()
	return s
}

func (s *RunnerScreen) Init() tea.Cmd {
	if s.sess.Complete() {
		// Empty question set: go straight to the report.
		return func() tea.Msg { return quizDoneMsg{} }
	}
	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *RunnerScreen) Title() string {
	return "Quiz"
}

func (s *RunnerScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *RunnerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.sess.Complete() {
			return s, nil
		}
		s.elapsed = time.Since(s.sess.StartedAt())
		return s, tickCmd()

	case quizDoneMsg:
		return s.finish()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the text input while it is active.
	if !s.mcActive && !s.showingFeedback && !s.showingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *RunnerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.sess.Abort()
			return s, func() tea.Msg { return quizDoneMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	// Feedback overlay: any key moves on.
	if s.showingFeedback {
		s.showingFeedback = false
		s.lastOutcome = nil
		if s.sess.Complete() {
			return s, func() tea.Msg { return quizDoneMsg{} }
		}
		s.setupCurrent()
		return s, s.input.Init()
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submit()
	}

	if s.mcActive {
		cur := s.sess.Current()
		switch key {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			idx := int(key[0] - '1')
			if cur != nil && idx < len(cur.Options) {
				s.mcSelected = idx
				return s.submit()
			}
		case "up", "k":
			if s.mcSelected > 0 {
				s.mcSelected--
			}
		case "down", "j":
			if cur != nil && s.mcSelected < len(cur.Options)-1 {
				s.mcSelected++
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit evaluates the current answer and raises the feedback overlay.
func (s *RunnerScreen) submit() (screen.Screen, tea.Cmd) {
	cur := s.sess.Current()
	if cur == nil {
		return s, nil
	}

	var raw string
	if s.mcActive {
		if s.mcSelected < 0 || s.mcSelected >= len(cur.Options) {
			return s, nil
		}
		raw = cur.Options[s.mcSelected]
	} else {
		raw = s.input.Value()
		if raw == "" {
			return s, nil
		}
	}

	out, err := s.sess.Submit(raw)
	if err != nil {
		// Terminal session; nothing left to answer.
		return s, func() tea.Msg { return quizDoneMsg{} }
	}

	s.lastOutcome = &out
	s.showingFeedback = true
	return s, nil
}

// finish builds the summary and replaces this screen with the report, so
// backing out of the report does not land on a finished run.
func (s *RunnerScreen) finish() (screen.Screen, tea.Cmd) {
	sum := results.Summarize(s.sess)
	sum.Title = s.title

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: report.New(sum, s.opts.ResultsDir),
		}
	}
}

// setupCurrent prepares the input mode for the question awaiting an answer.
func (s *RunnerScreen) setupCurrent() {
	cur := s.sess.Current()
	if cur == nil {
		return
	}
	if cur.Type == quiz.TypeMultipleChoice {
		s.mcActive = true
		s.mcSelected = 0
	} else {
		s.mcActive = false
		s.input = components.NewTextInput(placeholderFor(cur.Type), 80)
	}
}

func placeholderFor(t quiz.QuestionType) string {
	if t == quiz.TypeTrueFalse {
		return "true / false"
	}
	return "Type your answer..."
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
