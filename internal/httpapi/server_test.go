package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQuiz = `{
  "title": "Capitals",
  "description": "A short geography check",
  "questions": [
    {
      "id": "geo-1",
      "question": "What is the capital of France?",
      "type": "multiple_choice",
      "options": ["London", "Paris", "Berlin", "Madrid"],
      "correct_answer": "Paris",
      "points": 1,
      "explanation": "Paris has been the capital since 987.",
      "category": "Geography"
    },
    {
      "id": "geo-2",
      "question": "Canberra is the capital of Australia.",
      "type": "true_false",
      "correct_answer": "true",
      "points": 2,
      "category": "Geography"
    }
  ]
}`

func newTestRouter() (*gin.Engine, *Server) {
	gin.SetMode(gin.TestMode)
	srv := NewServer()
	return srv.Router(), srv
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 && json.Valid(w.Body.Bytes()) {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			// List responses decode to a map only when shaped as an object.
			parsed = nil
		}
	}
	return w, parsed
}

func uploadQuiz(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/quizzes", testQuiz)
	require.Equal(t, http.StatusCreated, w.Code)
	id, ok := resp["quiz_id"].(string)
	require.True(t, ok, "quiz_id missing from upload response")
	return id
}

func startSession(t *testing.T, r *gin.Engine, quizID, query string) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/quizzes/"+quizID+"/sessions"+query, "")
	require.Equal(t, http.StatusCreated, w.Code)
	id, ok := resp["session_id"].(string)
	require.True(t, ok, "session_id missing from start response")
	return id
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter()
	w, resp := doJSON(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp["status"])
}

func TestUploadQuiz(t *testing.T) {
	r, _ := newTestRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/api/quizzes", testQuiz)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Capitals", resp["title"])
	assert.Equal(t, float64(2), resp["question_count"])
	assert.Equal(t, float64(3), resp["total_points"])
}

func TestUploadQuizInvalid(t *testing.T) {
	r, _ := newTestRouter()

	bad := `{
	  "title": "Broken",
	  "questions": [
	    {"id": "x1", "question": "Pick one", "type": "multiple_choice",
	     "options": ["a"], "correct_answer": "a"}
	  ]
	}`
	w, resp := doJSON(t, r, http.MethodPost, "/api/quizzes", bad)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp, "error")
	assert.Equal(t, float64(0), resp["question_index"])
	assert.Equal(t, "x1", resp["question_id"])
}

func TestQuizInfo(t *testing.T) {
	r, _ := newTestRouter()
	id := uploadQuiz(t, r)

	w, resp := doJSON(t, r, http.MethodGet, "/api/quizzes/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Capitals", resp["title"])
	assert.Equal(t, float64(3), resp["total_points"])

	cats, ok := resp["categories"].([]any)
	require.True(t, ok)
	require.Len(t, cats, 1)
	cat := cats[0].(map[string]any)
	assert.Equal(t, "Geography", cat["category"])
	assert.Equal(t, float64(2), cat["questions"])
}

func TestQuizNotFound(t *testing.T) {
	r, _ := newTestRouter()
	w, _ := doJSON(t, r, http.MethodGet, "/api/quizzes/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/quizzes/nope/sessions", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionFlow(t *testing.T) {
	r, _ := newTestRouter()
	quizID := uploadQuiz(t, r)
	sessID := startSession(t, r, quizID, "")

	// First question, answers stripped.
	w, resp := doJSON(t, r, http.MethodGet, "/api/sessions/"+sessID+"/question", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp["complete"])
	assert.Equal(t, float64(1), resp["index"])
	assert.Equal(t, float64(2), resp["total"])

	q := resp["question"].(map[string]any)
	assert.Equal(t, "geo-1", q["id"])
	assert.NotContains(t, q, "correct_answer")
	assert.NotContains(t, w.Body.String(), "Paris has been the capital")
	opts := q["options"].([]any)
	assert.Len(t, opts, 4)

	// Results are not available mid-session.
	w, _ = doJSON(t, r, http.MethodGet, "/api/sessions/"+sessID+"/results", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// Answer by option index.
	w, resp = doJSON(t, r, http.MethodPost, "/api/sessions/"+sessID+"/answer", `{"answer": "2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	result := resp["result"].(map[string]any)
	assert.Equal(t, true, result["is_correct"])
	assert.Equal(t, "Paris", result["correct_answer"])
	assert.Equal(t, false, resp["complete"])

	// Second question is not multiple choice, so no options key.
	w, resp = doJSON(t, r, http.MethodGet, "/api/sessions/"+sessID+"/question", "")
	require.Equal(t, http.StatusOK, w.Code)
	q = resp["question"].(map[string]any)
	assert.Equal(t, "geo-2", q["id"])
	assert.NotContains(t, q, "options")

	w, resp = doJSON(t, r, http.MethodPost, "/api/sessions/"+sessID+"/answer", `{"answer": "false"}`)
	require.Equal(t, http.StatusOK, w.Code)
	result = resp["result"].(map[string]any)
	assert.Equal(t, false, result["is_correct"])
	assert.Equal(t, true, resp["complete"])

	// Question endpoint reports completion.
	w, resp = doJSON(t, r, http.MethodGet, "/api/sessions/"+sessID+"/question", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["complete"])

	// Further answers are rejected.
	w, _ = doJSON(t, r, http.MethodPost, "/api/sessions/"+sessID+"/answer", `{"answer": "true"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Final results.
	w, resp = doJSON(t, r, http.MethodGet, "/api/sessions/"+sessID+"/results", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Capitals", resp["quiz_title"])
	assert.Equal(t, float64(1), resp["total_points"])
	assert.Equal(t, float64(3), resp["max_points"])
	assert.Equal(t, 33.3, resp["percentage"])
	assert.Equal(t, float64(1), resp["correct_answers"])

	outcomes := resp["results"].([]any)
	assert.Len(t, outcomes, 2)
}

func TestAbortSession(t *testing.T) {
	r, _ := newTestRouter()
	quizID := uploadQuiz(t, r)
	sessID := startSession(t, r, quizID, "")

	w, resp := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessID+"/answer", `{"answer": "Paris"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["result"].(map[string]any)["is_correct"])

	w, resp = doJSON(t, r, http.MethodPost, "/api/sessions/"+sessID+"/abort", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["aborted"])
	assert.Equal(t, float64(1), resp["answered"])

	// Aborted sessions report the answered questions only.
	w, resp = doJSON(t, r, http.MethodGet, "/api/sessions/"+sessID+"/results", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["aborted"])
	assert.Equal(t, float64(1), resp["total_points"])
	assert.Equal(t, float64(1), resp["max_points"])
	assert.Equal(t, float64(100), resp["percentage"])
}

func TestShuffledSessionStart(t *testing.T) {
	r, _ := newTestRouter()
	quizID := uploadQuiz(t, r)

	w, resp := doJSON(t, r, http.MethodPost, "/api/quizzes/"+quizID+"/sessions?shuffle=true", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, resp["shuffled"])
	assert.Equal(t, float64(2), resp["question_count"])
}

func TestSessionNotFound(t *testing.T) {
	r, _ := newTestRouter()
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/sessions/nope/question"},
		{http.MethodPost, "/api/sessions/nope/answer"},
		{http.MethodPost, "/api/sessions/nope/abort"},
		{http.MethodGet, "/api/sessions/nope/results"},
	} {
		w, _ := doJSON(t, r, route.method, route.path, `{"answer": "x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", route.method, route.path)
	}
}

func TestSubmitAnswerBadBody(t *testing.T) {
	r, _ := newTestRouter()
	quizID := uploadQuiz(t, r)
	sessID := startSession(t, r, quizID, "")

	w, _ := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessID+"/answer", `{"answer": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitEmptyAnswerGradesIncorrect(t *testing.T) {
	r, _ := newTestRouter()
	quizID := uploadQuiz(t, r)
	sessID := startSession(t, r, quizID, "")

	// An empty answer is a wrong answer, not a client error.
	w, resp := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessID+"/answer", `{"answer": ""}`)
	require.Equal(t, http.StatusOK, w.Code)
	result := resp["result"].(map[string]any)
	assert.Equal(t, false, result["is_correct"])
	assert.Equal(t, float64(0), result["points_earned"])
	assert.Equal(t, float64(1), resp["answered"])

	// Same for a body with no answer field at all.
	w, resp = doJSON(t, r, http.MethodPost, "/api/sessions/"+sessID+"/answer", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp["result"].(map[string]any)["is_correct"])
	assert.Equal(t, true, resp["complete"])
}
