package runner

import "time"

// tickMsg is sent every second to refresh the elapsed-time display.
type tickMsg time.Time

// quizDoneMsg is sent to trigger the hand-over to the report screen.
type quizDoneMsg struct{}
