package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/preppal-labs/preppal/internal/core/domain"
	"github.com/preppal-labs/preppal/internal/core/ports/driven"
	"github.com/preppal-labs/preppal/internal/core/ports/driving"
	"github.com/preppal-labs/preppal/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// NoMaterialsMessage is returned, without any provider call, when
// retrieval finds nothing to ground an answer on.
const NoMaterialsMessage = "I don't have any study materials to reference yet. Please upload some documents first!"

// GenerationFailedMessage is returned when the generation provider fails.
// Provider errors are absorbed here; they never surface to the caller.
const GenerationFailedMessage = "I couldn't generate an answer right now. Please try again in a moment."

// AnswerService synthesises answers grounded in retrieved document chunks,
// and records the session's chat history in memory.
type AnswerService struct {
	retriever driving.Retriever
	llm       driven.LLMService // may be nil

	mu      sync.Mutex
	history []domain.ChatEntry
}

// NewAnswerService creates a new answer service. llm may be nil, in which
// case every answer is the fixed no-materials or generation-failed message.
func NewAnswerService(retriever driving.Retriever, llm driven.LLMService) *AnswerService {
	return &AnswerService{retriever: retriever, llm: llm}
}

// Ask retrieves relevant chunks for the query and synthesises an answer
// grounded in them.
func (s *AnswerService) Ask(ctx context.Context, query string, docIDs []string) (*domain.Answer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}

	results, err := s.retriever.Retrieve(ctx, query, domain.RetrievalOptions{DocumentIDs: docIDs})
	if err != nil {
		return nil, fmt.Errorf("retrieve context: %w", err)
	}

	answer := s.synthesise(ctx, query, results)

	entry := domain.ChatEntry{
		Timestamp: time.Now(),
		Query:     query,
		Answer:    answer,
		Sources:   results,
	}
	s.mu.Lock()
	s.history = append(s.history, entry)
	s.mu.Unlock()

	return &domain.Answer{
		Text:      answer,
		Sources:   results,
		Timestamp: entry.Timestamp,
	}, nil
}

// synthesise produces the answer text. The empty-context short-circuit is
// pipeline-level: no provider call is made for it.
func (s *AnswerService) synthesise(ctx context.Context, query string, results []domain.RetrievalResult) string {
	if len(results) == 0 {
		logger.Debug("No context retrieved, short-circuiting to fixed message")
		return NoMaterialsMessage
	}

	if s.llm == nil {
		logger.Warn("LLM service not configured, returning fixed message")
		return GenerationFailedMessage
	}

	answer, err := s.llm.Generate(ctx, buildAnswerPrompt(query, results), driven.GenerateOptions{
		Temperature: 0.2,
	})
	if err != nil {
		logger.Warn("answer generation failed: %v", err)
		return GenerationFailedMessage
	}
	return strings.TrimSpace(answer)
}

// History returns the chat exchanges recorded this session, oldest first.
func (s *AnswerService) History(_ context.Context) []domain.ChatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatEntry, len(s.history))
	copy(out, s.history)
	return out
}

// buildAnswerPrompt assembles the grounding prompt from the query and the
// ranked context chunks.
func buildAnswerPrompt(query string, results []domain.RetrievalResult) string {
	var b strings.Builder
	b.WriteString("You are PrepPal, a helpful study assistant. Answer the student's question using ONLY the information provided in the context below. If the answer cannot be found in the context, say \"I couldn't find that information in your study materials.\"\n\nContext:\n")
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[Source: %s, Chunk %d]\n%s", r.Source.Filename, r.Source.ChunkIndex, r.Text)
	}
	fmt.Fprintf(&b, "\n\nQuestion: %s\n\nAnswer:", query)
	return b.String()
}
