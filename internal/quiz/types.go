package quiz

// QuestionType identifies how a question is asked and answered.
type QuestionType string

const (
	// TypeMultipleChoice means the taker picks one of the listed options,
	// either by 1-based index or by typing the option text.
	TypeMultipleChoice QuestionType = "multiple_choice"

	// TypeTrueFalse means the taker answers with a boolean token.
	TypeTrueFalse QuestionType = "true_false"

	// TypeFillBlank means the taker types the missing word or phrase.
	TypeFillBlank QuestionType = "fill_blank"

	// TypeShortAnswer means the taker types a short free-text answer.
	TypeShortAnswer QuestionType = "short_answer"
)

// AllTypes returns the closed set of supported question types.
func AllTypes() []QuestionType {
	return []QuestionType{TypeMultipleChoice, TypeTrueFalse, TypeFillBlank, TypeShortAnswer}
}

// KnownType reports whether t is one of the supported question types.
func KnownType(t QuestionType) bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeFillBlank, TypeShortAnswer:
		return true
	}
	return false
}

// Question is a single loaded quiz item. Questions are immutable after loading;
// the evaluator never mutates them.
type Question struct {
	// ID is unique within a loaded quiz file.
	ID string

	// Text is the question prompt displayed to the taker.
	Text string

	// Type selects the evaluation rule.
	Type QuestionType

	// Options holds the choices for multiple_choice questions, in display
	// order. Empty for all other types.
	Options []string

	// Answers holds the accepted answers. Multiple choice and true/false
	// questions have exactly one entry; fill_blank and short_answer may list
	// several acceptable phrasings, any of which counts as correct.
	Answers []string

	// Points is the value of this question. Always positive; the loader
	// defaults it to 1.
	Points int

	// Explanation is shown after the question is answered. Optional.
	Explanation string

	// Category is a free-form label used for summaries. Defaults to "General".
	Category string
}

// Outcome records the evaluation of one submitted answer against one question.
// Points are all-or-nothing: the full question value on a match, zero otherwise.
type Outcome struct {
	QuestionID    string `json:"question_id"`
	QuestionText  string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"is_correct"`
	PointsEarned  int    `json:"points_earned"`
	MaxPoints     int    `json:"max_points"`
	Explanation   string `json:"explanation,omitempty"`
}

// CorrectDisplay returns the answer text shown to the taker after evaluation.
// For multi-accept questions this is the first (canonical) accepted answer.
func (q *Question) CorrectDisplay() string {
	if len(q.Answers) == 0 {
		return ""
	}
	return q.Answers[0]
}

// TotalPoints sums the point values of qs.
func TotalPoints(qs []Question) int {
	total := 0
	for i := range qs {
		total += qs[i].Points
	}
	return total
}
