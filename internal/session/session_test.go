package session

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/abhisek/quizdeck/internal/quiz"
)

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID:      "q1",
			Text:    "What is the capital of France?",
			Type:    quiz.TypeMultipleChoice,
			Options: []string{"Paris", "London", "Rome"},
			Answers: []string{"Paris"},
			Points:  1,
		},
		{
			ID:      "q2",
			Text:    "The Earth is flat.",
			Type:    quiz.TypeTrueFalse,
			Answers: []string{"false"},
			Points:  2,
		},
		{
			ID:      "q3",
			Text:    "H2O is commonly called ____.",
			Type:    quiz.TypeFillBlank,
			Answers: []string{"water"},
			Points:  1,
		},
	}
}

func TestNew_PreservesOrderWithoutShuffle(t *testing.T) {
	qs := testQuestions()
	s := New(qs, Options{})

	for i, q := range s.Questions() {
		if q.ID != qs[i].ID {
			t.Errorf("question %d = %s, want %s (input order preserved)", i, q.ID, qs[i].ID)
		}
	}
	if s.Shuffled() {
		t.Error("Shuffled() should be false")
	}
}

func TestNew_ShuffleIsPermutation(t *testing.T) {
	qs := testQuestions()
	s := New(qs, Options{Shuffle: true, Rand: rand.New(rand.NewSource(7))})

	if s.Len() != len(qs) {
		t.Fatalf("Len = %d, want %d", s.Len(), len(qs))
	}
	seen := make(map[string]bool)
	for _, q := range s.Questions() {
		seen[q.ID] = true
	}
	for _, q := range qs {
		if !seen[q.ID] {
			t.Errorf("question %s missing after shuffle", q.ID)
		}
	}
	if !s.Shuffled() {
		t.Error("Shuffled() should be true")
	}
}

func TestNew_ShuffleDeterministicWithSeed(t *testing.T) {
	qs := testQuestions()
	a := New(qs, Options{Shuffle: true, Rand: rand.New(rand.NewSource(42))})
	b := New(qs, Options{Shuffle: true, Rand: rand.New(rand.NewSource(42))})

	for i := range a.Questions() {
		if a.Questions()[i].ID != b.Questions()[i].ID {
			t.Fatalf("same seed produced different orders at %d", i)
		}
	}
}

func TestNew_DoesNotMutateInput(t *testing.T) {
	qs := testQuestions()
	New(qs, Options{Shuffle: true, Rand: rand.New(rand.NewSource(3))})

	if qs[0].ID != "q1" || qs[1].ID != "q2" || qs[2].ID != "q3" {
		t.Error("New must shuffle a copy, not the caller's slice")
	}
}

func TestSubmit_AdvancesAndRecords(t *testing.T) {
	s := New(testQuestions(), Options{})

	out, err := s.Submit("Paris")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !out.Correct {
		t.Error("expected first answer correct")
	}
	if s.Answered() != 1 {
		t.Errorf("Answered = %d, want 1", s.Answered())
	}
	if cur := s.Current(); cur == nil || cur.ID != "q2" {
		t.Errorf("Current = %v, want q2", cur)
	}
}

func TestSubmit_LastQuestionCompletes(t *testing.T) {
	s := New(testQuestions(), Options{})

	if _, err := s.Submit("1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit("no"); err != nil {
		t.Fatal(err)
	}
	if s.Complete() {
		t.Fatal("session should still be in progress with one question left")
	}
	if _, err := s.Submit("water"); err != nil {
		t.Fatal(err)
	}

	if !s.Complete() {
		t.Error("session should be complete after the last answer")
	}
	if s.Current() != nil {
		t.Error("Current should be nil once complete")
	}
	if s.EndedAt().IsZero() {
		t.Error("EndedAt should be set on completion")
	}
}

func TestSubmit_AfterCompleteFails(t *testing.T) {
	s := New(testQuestions(), Options{})
	for !s.Complete() {
		if _, err := s.Submit("x"); err != nil {
			t.Fatal(err)
		}
	}

	_, err := s.Submit("x")
	if !errors.Is(err, ErrComplete) {
		t.Errorf("Submit after complete = %v, want ErrComplete", err)
	}
}

func TestAbort_KeepsRecordedOutcomes(t *testing.T) {
	s := New(testQuestions(), Options{})
	if _, err := s.Submit("Paris"); err != nil {
		t.Fatal(err)
	}

	s.Abort()

	if !s.Complete() {
		t.Error("aborted session should be complete")
	}
	if !s.Aborted() {
		t.Error("Aborted() should be true")
	}
	if len(s.Outcomes()) != 1 {
		t.Errorf("Outcomes length = %d, want 1", len(s.Outcomes()))
	}
	if _, err := s.Submit("x"); !errors.Is(err, ErrComplete) {
		t.Errorf("Submit after abort = %v, want ErrComplete", err)
	}
	if s.Current() != nil {
		t.Error("Current should be nil after abort")
	}
}

func TestAbort_AfterCompleteIsNoop(t *testing.T) {
	s := New(testQuestions(), Options{})
	for !s.Complete() {
		s.Submit("x")
	}
	end := s.EndedAt()

	s.Abort()

	if s.Aborted() {
		t.Error("Abort after normal completion must not mark the session aborted")
	}
	if s.EndedAt() != end {
		t.Error("Abort after completion must not move the end timestamp")
	}
}

func TestNew_EmptyQuestionSet(t *testing.T) {
	s := New(nil, Options{})

	if !s.Complete() {
		t.Error("empty session should be immediately complete")
	}
	if s.Current() != nil {
		t.Error("Current should be nil for an empty session")
	}
	if _, err := s.Submit("x"); !errors.Is(err, ErrComplete) {
		t.Errorf("Submit on empty session = %v, want ErrComplete", err)
	}
}

func TestPointsEarned(t *testing.T) {
	s := New(testQuestions(), Options{})
	s.Submit("Paris") // +1
	s.Submit("true")  // wrong, +0
	s.Submit("WATER") // +1

	if got := s.PointsEarned(); got != 2 {
		t.Errorf("PointsEarned = %d, want 2", got)
	}
}

func TestSessionIDsUnique(t *testing.T) {
	a := New(nil, Options{})
	b := New(nil, Options{})
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected distinct non-empty session IDs, got %q and %q", a.ID(), b.ID())
	}
}
