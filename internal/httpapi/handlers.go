package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/quizfile"
	"github.com/abhisek/quizdeck/internal/results"
	"github.com/abhisek/quizdeck/internal/session"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleUploadQuiz accepts a quiz document as the raw request body,
// validates it, and registers it under a fresh ID.
func (s *Server) handleUploadQuiz(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	q, err := quizfile.Parse(raw)
	if err != nil {
		status := http.StatusBadRequest
		resp := gin.H{"error": err.Error()}

		var qerr *quizfile.QuestionError
		if errors.As(err, &qerr) {
			resp["question_index"] = qerr.Index
			if qerr.ID != "" {
				resp["question_id"] = qerr.ID
			}
		}
		c.JSON(status, resp)
		return
	}

	id := s.AddQuiz(q)
	c.JSON(http.StatusCreated, gin.H{
		"quiz_id":        id,
		"title":          q.Title,
		"description":    q.Description,
		"question_count": len(q.Questions),
		"total_points":   quiz.TotalPoints(q.Questions),
	})
}

func (s *Server) handleListQuizzes(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quizzes := make([]gin.H, 0, len(s.quizzes))
	for id, q := range s.quizzes {
		quizzes = append(quizzes, gin.H{
			"quiz_id":        id,
			"title":          q.Title,
			"question_count": len(q.Questions),
		})
	}
	c.JSON(http.StatusOK, quizzes)
}

// handleQuizInfo returns metadata and the per-category breakdown for a quiz.
func (s *Server) handleQuizInfo(c *gin.Context) {
	q, ok := s.getQuiz(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
		return
	}

	categories := make([]gin.H, 0)
	for _, cat := range quizfile.Summarize(q.Questions) {
		categories = append(categories, gin.H{
			"category":  cat.Category,
			"questions": cat.Questions,
			"points":    cat.Points,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"title":          q.Title,
		"description":    q.Description,
		"question_count": len(q.Questions),
		"total_points":   quiz.TotalPoints(q.Questions),
		"categories":     categories,
	})
}

// handleStartSession begins a new attempt at a quiz. Shuffling is opt-in
// via the shuffle query parameter.
func (s *Server) handleStartSession(c *gin.Context) {
	q, ok := s.getQuiz(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
		return
	}

	shuffle := c.Query("shuffle") == "true"
	sess := session.New(q.Questions, session.Options{Shuffle: shuffle})

	s.mu.Lock()
	s.sessions[sess.ID()] = &sessionEntry{sess: sess, title: q.Title}
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{
		"session_id":     sess.ID(),
		"question_count": sess.Len(),
		"shuffled":       shuffle,
	})
}

// handleCurrentQuestion returns the question awaiting an answer, stripped
// of the correct answers and explanation.
func (s *Server) handleCurrentQuestion(c *gin.Context) {
	e, ok := s.getSession(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.sess.Complete() {
		c.JSON(http.StatusOK, gin.H{"complete": true})
		return
	}

	cur := e.sess.Current()
	resp := gin.H{
		"complete": false,
		"index":    e.sess.Answered() + 1,
		"total":    e.sess.Len(),
		"question": gin.H{
			"id":       cur.ID,
			"question": cur.Text,
			"type":     cur.Type,
			"points":   cur.Points,
			"category": cur.Category,
		},
	}
	if cur.Type == quiz.TypeMultipleChoice {
		resp["question"].(gin.H)["options"] = cur.Options
	}
	c.JSON(http.StatusOK, resp)
}

// answerRequest carries the submitted answer. An empty answer is valid
// input and grades as incorrect; only malformed JSON is rejected.
type answerRequest struct {
	Answer string `json:"answer"`
}

// handleSubmitAnswer records an answer for the current question and returns
// the graded outcome.
func (s *Server) handleSubmitAnswer(c *gin.Context) {
	e, ok := s.getSession(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	out, err := e.sess.Submit(req.Answer)
	if err != nil {
		if errors.Is(err, session.ErrComplete) {
			c.JSON(http.StatusConflict, gin.H{"error": "session is already complete"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":   out,
		"complete": e.sess.Complete(),
		"answered": e.sess.Answered(),
		"total":    e.sess.Len(),
	})
}

// handleAbort ends a session early, keeping the outcomes recorded so far.
func (s *Server) handleAbort(c *gin.Context) {
	e, ok := s.getSession(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess.Abort()
	c.JSON(http.StatusOK, gin.H{
		"aborted":  e.sess.Aborted(),
		"answered": e.sess.Answered(),
	})
}

// handleResults returns the final summary. Available only once the session
// is terminal; clients abort explicitly if they want partial results.
func (s *Server) handleResults(c *gin.Context) {
	e, ok := s.getSession(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.sess.Complete() {
		c.JSON(http.StatusConflict, gin.H{"error": "session still in progress"})
		return
	}

	sum := results.Summarize(e.sess)
	sum.Title = e.title
	c.JSON(http.StatusOK, sum)
}
