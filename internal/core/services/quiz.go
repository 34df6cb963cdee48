package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/preppal-labs/preppal/internal/core/domain"
	"github.com/preppal-labs/preppal/internal/core/ports/driven"
	"github.com/preppal-labs/preppal/internal/core/ports/driving"
	"github.com/preppal-labs/preppal/internal/logger"
)

// Ensure QuizService implements the interface.
var _ driving.QuizService = (*QuizService)(nil)

const (
	// DefaultQuizQuestions is the question count when none is requested.
	DefaultQuizQuestions = 5

	// MaxQuizQuestions bounds a single quiz.
	MaxQuizQuestions = 20

	// quizChunksPerDocument limits how much context each document
	// contributes to the quiz prompt.
	quizChunksPerDocument = 3
)

// QuizService generates multiple-choice quizzes from stored document content.
type QuizService struct {
	store driven.DocumentStore
	llm   driven.LLMService // may be nil
}

// NewQuizService creates a new quiz service.
func NewQuizService(store driven.DocumentStore, llm driven.LLMService) *QuizService {
	return &QuizService{store: store, llm: llm}
}

// Generate builds a quiz from the scoped documents' content. No context in
// scope short-circuits to domain.ErrNoMaterials without a provider call.
func (s *QuizService) Generate(ctx context.Context, req domain.QuizRequest) ([]domain.QuizQuestion, error) {
	n := req.NumQuestions
	if n <= 0 {
		n = DefaultQuizQuestions
	}
	if n > MaxQuizQuestions {
		n = MaxQuizQuestions
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		topic = "your study materials"
	}

	contextText, err := s.assembleContext(ctx, req.DocumentIDs)
	if err != nil {
		return nil, err
	}
	if contextText == "" {
		return nil, domain.ErrNoMaterials
	}
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	logger.Section("Quiz Generation")
	logger.Debug("Topic: %q, questions: %d", topic, n)

	out, err := s.llm.Generate(ctx, buildQuizPrompt(topic, contextText, n), driven.GenerateOptions{
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	questions, err := parseQuizJSON(out)
	if err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	if len(questions) > n {
		questions = questions[:n]
	}
	return questions, nil
}

// assembleContext collects up to quizChunksPerDocument leading chunks from
// each scoped document. Unknown IDs are skipped silently, matching
// retrieval scope semantics.
func (s *QuizService) assembleContext(ctx context.Context, docIDs []string) (string, error) {
	var docs []domain.Document
	if len(docIDs) == 0 {
		all, err := s.store.All(ctx)
		if err != nil {
			return "", err
		}
		docs = all
	} else {
		for _, id := range docIDs {
			doc, err := s.store.Get(ctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return "", err
			}
			docs = append(docs, *doc)
		}
	}

	var b strings.Builder
	for _, doc := range docs {
		limit := quizChunksPerDocument
		if len(doc.Chunks) < limit {
			limit = len(doc.Chunks)
		}
		for i := 0; i < limit; i++ {
			if doc.Chunks[i] == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "[%s]\n%s", doc.Filename, doc.Chunks[i])
		}
	}
	return b.String(), nil
}

// buildQuizPrompt assembles the generation prompt requesting strict JSON.
func buildQuizPrompt(topic, contextText string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are PrepPal, a study assistant. Generate exactly %d multiple-choice questions about %s based ONLY on the material below.\n\n", n, topic)
	b.WriteString("Material:\n")
	b.WriteString(contextText)
	b.WriteString("\n\nRespond with a JSON array only, no prose and no code fences. Each element must have the shape:\n")
	b.WriteString(`{"question": "...", "options": ["...", "...", "...", "..."], "correct_index": 0, "explanation": "..."}`)
	return b.String()
}

// parseQuizJSON decodes the provider output into quiz questions. Models
// wrap JSON in markdown fences often enough that they are stripped first.
func parseQuizJSON(out string) ([]domain.QuizQuestion, error) {
	out = strings.TrimSpace(out)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	out = strings.TrimSpace(out)

	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(out), &questions); err != nil {
		return nil, err
	}

	for i, q := range questions {
		if q.Question == "" || len(q.Options) < 2 {
			return nil, fmt.Errorf("question %d is malformed", i)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %d has correct_index %d out of range", i, q.CorrectIndex)
		}
	}
	return questions, nil
}
