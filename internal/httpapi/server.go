package httpapi

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/quizfile"
	"github.com/abhisek/quizdeck/internal/session"
)

// Server holds the in-memory quiz and session registries behind the REST
// API. All state lives for the lifetime of the process; quizzes are loaded
// per upload and sessions expire with the server.
type Server struct {
	mu       sync.Mutex
	quizzes  map[string]*quizfile.Quiz
	sessions map[string]*sessionEntry
}

// sessionEntry ties a running session back to the quiz it was started from.
// The session type itself does no locking, so the entry's mutex serializes
// concurrent requests against the same session.
type sessionEntry struct {
	mu    sync.Mutex
	sess  *session.Session
	title string
}

// NewServer creates an empty Server.
func NewServer() *Server {
	return &Server{
		quizzes:  make(map[string]*quizfile.Quiz),
		sessions: make(map[string]*sessionEntry),
	}
}

// AddQuiz registers a quiz and returns its generated ID. Used both by the
// upload endpoint and by the serve command when a quiz file is passed on
// the command line.
func (s *Server) AddQuiz(q *quizfile.Quiz) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.quizzes[id] = q
	s.mu.Unlock()
	return id
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.POST("/quizzes", s.handleUploadQuiz)
		api.GET("/quizzes", s.handleListQuizzes)
		api.GET("/quizzes/:id", s.handleQuizInfo)
		api.POST("/quizzes/:id/sessions", s.handleStartSession)

		api.GET("/sessions/:id/question", s.handleCurrentQuestion)
		api.POST("/sessions/:id/answer", s.handleSubmitAnswer)
		api.POST("/sessions/:id/abort", s.handleAbort)
		api.GET("/sessions/:id/results", s.handleResults)
	}

	return r
}

func (s *Server) getQuiz(id string) (*quizfile.Quiz, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quizzes[id]
	return q, ok
}

func (s *Server) getSession(id string) (*sessionEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	return e, ok
}
