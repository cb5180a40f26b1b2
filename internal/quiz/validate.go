package quiz

import (
	"fmt"
	"strings"
)

// Validate checks the structural invariants the evaluator relies on. The
// loader runs it once per question at load time so Evaluate can assume a
// well-formed question and pattern-match over the closed type set.
func Validate(q *Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question text is empty")
	}
	if !KnownType(q.Type) {
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	if len(q.Answers) == 0 {
		return fmt.Errorf("no correct answer given")
	}
	if q.Points <= 0 {
		return fmt.Errorf("points must be positive, got %d", q.Points)
	}

	switch q.Type {
	case TypeMultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("multiple_choice needs at least 2 options, got %d", len(q.Options))
		}
		if len(q.Answers) != 1 {
			return fmt.Errorf("multiple_choice takes exactly one correct answer, got %d", len(q.Answers))
		}
		if CorrectOptionIndex(q) < 0 {
			return fmt.Errorf("correct answer %q matches no option text or index", q.Answers[0])
		}
	case TypeTrueFalse:
		if len(q.Answers) != 1 {
			return fmt.Errorf("true_false takes exactly one correct answer, got %d", len(q.Answers))
		}
		if _, ok := ParseBoolToken(q.Answers[0]); !ok {
			return fmt.Errorf("correct answer %q is not a boolean token", q.Answers[0])
		}
	case TypeFillBlank, TypeShortAnswer:
		for i, a := range q.Answers {
			if strings.TrimSpace(a) == "" {
				return fmt.Errorf("accepted answer %d is empty", i+1)
			}
		}
	}

	return nil
}
