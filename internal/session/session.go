package session

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// ErrComplete is returned by Submit once the session is terminal. It signals
// an integration bug in the caller (submitting past the end), not bad user
// input, so it is surfaced rather than swallowed.
var ErrComplete = errors.New("session is complete")

// Options configures session creation.
type Options struct {
	// Shuffle randomizes question order at start. The order is fixed for the
	// rest of the session.
	Shuffle bool

	// Rand is the random source used for shuffling. Nil means time-seeded.
	// Tests inject a seeded source to assert exact permutations.
	Rand *rand.Rand
}

// Session is one taker's ordered attempt at a sequence of questions. It is
// exclusively owned by the caller driving it; no internal locking.
type Session struct {
	id        string
	questions []quiz.Question
	cursor    int
	outcomes  []quiz.Outcome
	startedAt time.Time
	endedAt   time.Time
	aborted   bool
	shuffled  bool
}

// New creates a session over a copy of questions. An empty question set
// yields an immediately complete session. The questions are assumed to have
// passed quiz.Validate at load time.
func New(questions []quiz.Question, opts Options) *Session {
	qs := make([]quiz.Question, len(questions))
	copy(qs, questions)

	if opts.Shuffle {
		r := opts.Rand
		if r == nil {
			r = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		r.Shuffle(len(qs), func(i, j int) {
			qs[i], qs[j] = qs[j], qs[i]
		})
	}

	return &Session{
		id:        uuid.New().String(),
		questions: qs,
		startedAt: time.Now(),
		shuffled:  opts.Shuffle,
	}
}

// ID returns the session UUID.
func (s *Session) ID() string { return s.id }

// Len returns the number of questions in the session.
func (s *Session) Len() int { return len(s.questions) }

// Answered returns the number of answers recorded so far.
func (s *Session) Answered() int { return len(s.outcomes) }

// Shuffled reports whether the question order was randomized at start.
func (s *Session) Shuffled() bool { return s.shuffled }

// Aborted reports whether the session was ended before all questions were
// answered.
func (s *Session) Aborted() bool { return s.aborted }

// StartedAt returns the session start timestamp.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// EndedAt returns the end timestamp, zero while the session is in progress.
func (s *Session) EndedAt() time.Time { return s.endedAt }

// Complete reports whether the session is terminal: every question answered,
// or aborted.
func (s *Session) Complete() bool {
	return s.aborted || s.cursor >= len(s.questions)
}

// Current returns the question awaiting an answer, or nil once the session
// is complete.
func (s *Session) Current() *quiz.Question {
	if s.Complete() {
		return nil
	}
	return &s.questions[s.cursor]
}

// Submit evaluates raw against the current question, records the outcome,
// and advances. Answering the last question makes the session terminal.
// Returns ErrComplete when called on a terminal session.
func (s *Session) Submit(raw string) (quiz.Outcome, error) {
	if s.Complete() {
		return quiz.Outcome{}, ErrComplete
	}

	out := quiz.Evaluate(&s.questions[s.cursor], raw)
	s.outcomes = append(s.outcomes, out)
	s.cursor++

	if s.cursor >= len(s.questions) {
		s.endedAt = time.Now()
	}
	return out, nil
}

// Abort ends the session before all questions are answered. Outcomes
// recorded so far remain valid. No-op on an already terminal session.
func (s *Session) Abort() {
	if s.Complete() {
		return
	}
	s.aborted = true
	s.endedAt = time.Now()
}

// Outcomes returns the per-question outcomes recorded so far, in answer order.
func (s *Session) Outcomes() []quiz.Outcome {
	return s.outcomes
}

// Questions returns the session's question order. The slice is the session's
// own copy; callers must not mutate it.
func (s *Session) Questions() []quiz.Question {
	return s.questions
}

// PointsEarned sums the points of the recorded outcomes.
func (s *Session) PointsEarned() int {
	total := 0
	for _, o := range s.outcomes {
		total += o.PointsEarned
	}
	return total
}
