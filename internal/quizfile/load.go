package quizfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// Quiz is a loaded, validated question file.
type Quiz struct {
	Title       string
	Description string
	Version     string
	Questions   []quiz.Question
}

// QuestionError reports which question in a file failed validation.
type QuestionError struct {
	Index int    // 0-based position in the file
	ID    string // question id, may be empty
	Err   error
}

func (e *QuestionError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("question %d (%s): %v", e.Index+1, e.ID, e.Err)
	}
	return fmt.Sprintf("question %d: %v", e.Index+1, e.Err)
}

func (e *QuestionError) Unwrap() error { return e.Err }

// fileQuestion is the wire form of one question entry. correct_answer may be
// a single string or an array of accepted strings.
type fileQuestion struct {
	ID            string          `json:"id"`
	Question      string          `json:"question"`
	Type          string          `json:"type"`
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
	Points        int             `json:"points"`
	Explanation   string          `json:"explanation"`
	Category      string          `json:"category"`
}

type file struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Version     string         `json:"version"`
	Questions   []fileQuestion `json:"questions"`
}

// Load reads and parses a quiz file from disk.
func Load(path string) (*Quiz, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}
	q, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return q, nil
}

// Parse validates raw quiz-file JSON against the schema, decodes it, and
// runs per-question invariant checks. Question IDs default to their 1-based
// position, points default to 1, category to "General".
func Parse(raw []byte) (*Quiz, error) {
	if err := validateShape(raw); err != nil {
		return nil, err
	}

	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode quiz file: %w", err)
	}

	out := &Quiz{
		Title:       f.Title,
		Description: f.Description,
		Version:     f.Version,
		Questions:   make([]quiz.Question, 0, len(f.Questions)),
	}

	seen := make(map[string]int)
	for i, fq := range f.Questions {
		q, err := convertQuestion(fq, i)
		if err != nil {
			return nil, &QuestionError{Index: i, ID: fq.ID, Err: err}
		}
		if prev, dup := seen[q.ID]; dup {
			return nil, &QuestionError{
				Index: i,
				ID:    q.ID,
				Err:   fmt.Errorf("duplicate id, first used by question %d", prev+1),
			}
		}
		seen[q.ID] = i
		out.Questions = append(out.Questions, q)
	}

	return out, nil
}

// convertQuestion maps a wire question to the domain type and validates it.
func convertQuestion(fq fileQuestion, index int) (quiz.Question, error) {
	answers, err := decodeAnswers(fq.CorrectAnswer)
	if err != nil {
		return quiz.Question{}, err
	}

	q := quiz.Question{
		ID:          fq.ID,
		Text:        fq.Question,
		Type:        quiz.QuestionType(fq.Type),
		Options:     fq.Options,
		Answers:     answers,
		Points:      fq.Points,
		Explanation: fq.Explanation,
		Category:    fq.Category,
	}

	if q.ID == "" {
		q.ID = fmt.Sprintf("q%d", index+1)
	}
	if q.Points == 0 {
		q.Points = 1
	}
	if q.Category == "" {
		q.Category = "General"
	}

	if err := quiz.Validate(&q); err != nil {
		return quiz.Question{}, err
	}
	return q, nil
}

// decodeAnswers accepts correct_answer as either a string or an array of
// strings.
func decodeAnswers(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing correct_answer")
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("correct_answer must be a string or array of strings")
	}
	return many, nil
}
