package results

import (
	"math"
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/session"
)

// Summary is a read-only aggregate view over a completed (or aborted)
// session, shaped for display and JSON export.
type Summary struct {
	Title       string         `json:"quiz_title,omitempty"`
	SessionID   string         `json:"session_id"`
	TotalPoints int            `json:"total_points"`
	MaxPoints   int            `json:"max_points"`
	Percentage  float64        `json:"percentage"`
	Duration    time.Duration  `json:"-"`
	DurationStr string         `json:"duration"`
	Answered    int            `json:"answered_questions"`
	Correct     int            `json:"correct_answers"`
	Shuffled    bool           `json:"shuffled"`
	Aborted     bool           `json:"aborted,omitempty"`
	FinishedAt  time.Time      `json:"timestamp"`
	Outcomes    []quiz.Outcome `json:"results"`
}

// Summarize derives a Summary from a session. It is safe to call repeatedly;
// for a session with a recorded end timestamp the result is identical each
// time. MaxPoints counts the answered questions' point values, so an aborted
// session reports only what was attempted; a session that ran to completion
// covers every loaded question.
func Summarize(s *session.Session) Summary {
	return summarizeAt(s, time.Now())
}

// summarizeAt computes the summary with an explicit clock for tests.
func summarizeAt(s *session.Session, now time.Time) Summary {
	outcomes := s.Outcomes()

	total, max, correct := 0, 0, 0
	for _, o := range outcomes {
		total += o.PointsEarned
		max += o.MaxPoints
		if o.Correct {
			correct++
		}
	}

	var pct float64
	if max > 0 {
		pct = float64(total) / float64(max) * 100
		pct = math.Round(pct*10) / 10
	}

	end := s.EndedAt()
	if end.IsZero() {
		// Session was abandoned without an explicit end mark.
		end = now
	}

	return Summary{
		SessionID:   s.ID(),
		TotalPoints: total,
		MaxPoints:   max,
		Percentage:  pct,
		Duration:    end.Sub(s.StartedAt()),
		DurationStr: end.Sub(s.StartedAt()).Round(time.Second).String(),
		Answered:    len(outcomes),
		Correct:     correct,
		Shuffled:    s.Shuffled(),
		Aborted:     s.Aborted(),
		FinishedAt:  end,
		Outcomes:    outcomes,
	}
}
