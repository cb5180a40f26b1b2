package quiz

import (
	"strconv"
	"strings"
)

// Evaluate scores a raw answer against a question and returns the outcome.
// It never fails: malformed input (an out-of-range choice index, an
// unrecognizable boolean token) is recorded as an incorrect answer so a quiz
// is never interrupted by bad input.
//
// Normalization rules:
// - Whitespace is trimmed on both sides of the comparison
// - Comparison is case-insensitive
// - For multiple choice: matches against the option text or its 1-based index
// - For true/false: the tokens true/t/yes/y/1 and false/f/no/n/0 are recognized
// - For fill_blank and short_answer: any listed accepted answer counts
func Evaluate(q *Question, raw string) Outcome {
	out := Outcome{
		QuestionID:    q.ID,
		QuestionText:  q.Text,
		UserAnswer:    raw,
		CorrectAnswer: q.CorrectDisplay(),
		MaxPoints:     q.Points,
		Explanation:   q.Explanation,
	}

	var correct bool
	switch q.Type {
	case TypeMultipleChoice:
		correct = checkMultipleChoice(q, raw)
		// Show the resolved option text rather than a stored index.
		if idx := CorrectOptionIndex(q); idx >= 0 {
			out.CorrectAnswer = q.Options[idx]
		}
	case TypeTrueFalse:
		correct = checkTrueFalse(q, raw)
	case TypeFillBlank, TypeShortAnswer:
		correct = checkText(q, raw)
	}

	out.Correct = correct
	if correct {
		out.PointsEarned = q.Points
	}
	return out
}

// checkMultipleChoice resolves the taker's input to an option and compares it
// against the correct option text. Numeric input selects by 1-based index
// when it is in range; anything else is matched against the option texts
// directly, so an option whose text is itself a number stays reachable.
func checkMultipleChoice(q *Question, raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	selected := raw
	if idx, err := strconv.Atoi(raw); err == nil && idx >= 1 && idx <= len(q.Options) {
		selected = q.Options[idx-1]
	}

	correctIdx := CorrectOptionIndex(q)
	if correctIdx < 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(selected), strings.TrimSpace(q.Options[correctIdx]))
}

// checkTrueFalse parses both the input and the correct answer as boolean
// tokens. An unrecognized input token is an automatic incorrect answer, not
// an error.
func checkTrueFalse(q *Question, raw string) bool {
	got, ok := ParseBoolToken(raw)
	if !ok {
		return false
	}
	want, ok := ParseBoolToken(q.CorrectDisplay())
	if !ok {
		return false
	}
	return got == want
}

// checkText compares normalized free text against each accepted answer.
func checkText(q *Question, raw string) bool {
	normalized := normalizeText(raw)
	if normalized == "" {
		return false
	}
	for _, want := range q.Answers {
		if normalized == normalizeText(want) {
			return true
		}
	}
	return false
}

// normalizeText lowercases and trims a free-text answer for comparison.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseBoolToken maps a true/false answer token to a boolean. The second
// return value is false when the token is not recognized.
func ParseBoolToken(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y", "1":
		return true, true
	case "false", "f", "no", "n", "0":
		return false, true
	}
	return false, false
}

// CorrectOptionIndex returns the 0-based index of the correct option for a
// multiple_choice question, resolving the stored answer either as option text
// (case-insensitive) or as a 1-based index. Returns -1 if it resolves to no
// option.
func CorrectOptionIndex(q *Question) int {
	answer := strings.TrimSpace(q.CorrectDisplay())
	if answer == "" {
		return -1
	}

	for i, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(opt), answer) {
			return i
		}
	}

	if idx, err := strconv.Atoi(answer); err == nil && idx >= 1 && idx <= len(q.Options) {
		return idx - 1
	}
	return -1
}
