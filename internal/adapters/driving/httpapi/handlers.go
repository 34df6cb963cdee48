package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/preppal-labs/preppal/internal/core/domain"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors to HTTP status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrNoMaterials):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrLLMUnavailable):
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

// handleHealth reports liveness and configured providers.
func (s *Server) handleHealth(c *gin.Context) {
	embedding := s.deps.EmbeddingModel
	if embedding == "" {
		embedding = "unconfigured"
	}
	llm := s.deps.LLMModel
	if llm == "" {
		llm = "unconfigured"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"embedding_model": embedding,
		"llm_model":       llm,
	})
}

// uploadRequest is the POST /upload body. Text arrives already extracted;
// file parsing happens upstream of this API.
type uploadRequest struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
	Subject  string `json:"subject"`
}

func (s *Server) handleUpload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	result, err := s.deps.Library.Upload(c.Request.Context(), req.Text, req.Filename, req.Subject)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) handleListDocuments(c *gin.Context) {
	docs, err := s.deps.Library.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if docs == nil {
		docs = []domain.DocumentInfo{}
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (s *Server) handleDeleteDocument(c *gin.Context) {
	id := c.Param("id")
	if err := s.deps.Library.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// chatRequest is the POST /chat body.
type chatRequest struct {
	Message     string   `json:"message"`
	DocumentIDs []string `json:"doc_ids"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	answer, err := s.deps.Answer.Ask(c.Request.Context(), req.Message, req.DocumentIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

func (s *Server) handleChatHistory(c *gin.Context) {
	history := s.deps.Answer.History(c.Request.Context())
	if history == nil {
		history = []domain.ChatEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

// quizRequest is the POST /quiz body.
type quizRequest struct {
	Topic        string   `json:"topic"`
	DocumentIDs  []string `json:"doc_ids"`
	NumQuestions int      `json:"num_questions"`
}

func (s *Server) handleQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	questions, err := s.deps.Quiz.Generate(c.Request.Context(), domain.QuizRequest{
		Topic:        req.Topic,
		DocumentIDs:  req.DocumentIDs,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// planRequest is the POST /plan body.
type planRequest struct {
	ExamDate    string   `json:"exam_date"`
	HoursPerDay float64  `json:"hours_per_day"`
	Subjects    []string `json:"subjects"`
}

func (s *Server) handlePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	examDate, err := time.Parse(dateLayout, req.ExamDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "exam_date must be YYYY-MM-DD"})
		return
	}

	plan, err := s.deps.Planner.Plan(c.Request.Context(), domain.PlanRequest{
		ExamDate:    examDate,
		HoursPerDay: req.HoursPerDay,
		Subjects:    req.Subjects,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
