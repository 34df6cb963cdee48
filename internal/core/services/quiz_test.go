package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preppal-labs/preppal/internal/adapters/driven/storage/memory"
	"github.com/preppal-labs/preppal/internal/core/domain"
)

const quizJSON = `[
  {"question": "What does TCP stand for?", "options": ["Transmission Control Protocol", "Transfer Check Protocol", "Total Control Program", "Transport Carrier Packet"], "correct_index": 0, "explanation": "TCP is the Transmission Control Protocol."},
  {"question": "Which layer does IP operate at?", "options": ["Application", "Transport", "Network", "Physical"], "correct_index": 2, "explanation": "IP is a network layer protocol."}
]`

func putQuizDocument(t *testing.T, store *memory.DocumentStore, id string, chunks []string) {
	t.Helper()
	embeddings := make([][]float32, len(chunks))
	for i := range embeddings {
		embeddings[i] = []float32{1, 0}
	}
	require.NoError(t, store.Put(context.Background(), &domain.Document{
		ID:         id,
		Filename:   id + ".txt",
		Subject:    "Networks",
		Chunks:     chunks,
		Embeddings: embeddings,
		UploadedAt: time.Now(),
	}))
}

func TestQuiz_Generate(t *testing.T) {
	store := memory.NewDocumentStore()
	putQuizDocument(t, store, "doc-1", []string{"TCP is reliable.", "IP routes packets.", "UDP is stateless.", "ignored fourth chunk"})
	llm := &mockLLMService{response: quizJSON}
	svc := NewQuizService(store, llm)

	questions, err := svc.Generate(context.Background(), domain.QuizRequest{Topic: "networking", NumQuestions: 2})

	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "What does TCP stand for?", questions[0].Question)
	assert.Equal(t, 2, questions[1].CorrectIndex)
	assert.Equal(t, 1, llm.generateCalls)
	assert.Contains(t, llm.lastPrompt, "networking")
	assert.Contains(t, llm.lastPrompt, "TCP is reliable.")
	assert.NotContains(t, llm.lastPrompt, "ignored fourth chunk", "only the leading chunks per document feed the prompt")
}

func TestQuiz_MarkdownFencedJSON(t *testing.T) {
	store := memory.NewDocumentStore()
	putQuizDocument(t, store, "doc-1", []string{"material"})
	llm := &mockLLMService{response: "```json\n" + quizJSON + "\n```"}
	svc := NewQuizService(store, llm)

	questions, err := svc.Generate(context.Background(), domain.QuizRequest{})

	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestQuiz_NoMaterials(t *testing.T) {
	llm := &mockLLMService{response: quizJSON}
	svc := NewQuizService(memory.NewDocumentStore(), llm)

	_, err := svc.Generate(context.Background(), domain.QuizRequest{Topic: "anything"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoMaterials)
	assert.Equal(t, 0, llm.generateCalls, "no provider call may be made without context")
}

func TestQuiz_UnknownScopeIDsSkipped(t *testing.T) {
	store := memory.NewDocumentStore()
	putQuizDocument(t, store, "doc-1", []string{"material"})
	llm := &mockLLMService{response: quizJSON}
	svc := NewQuizService(store, llm)

	_, err := svc.Generate(context.Background(), domain.QuizRequest{DocumentIDs: []string{"missing"}})
	assert.ErrorIs(t, err, domain.ErrNoMaterials)

	questions, err := svc.Generate(context.Background(), domain.QuizRequest{DocumentIDs: []string{"missing", "doc-1"}})
	require.NoError(t, err)
	assert.NotEmpty(t, questions)
}

func TestQuiz_NilLLM(t *testing.T) {
	store := memory.NewDocumentStore()
	putQuizDocument(t, store, "doc-1", []string{"material"})
	svc := NewQuizService(store, nil)

	_, err := svc.Generate(context.Background(), domain.QuizRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestQuiz_MalformedResponse(t *testing.T) {
	store := memory.NewDocumentStore()
	putQuizDocument(t, store, "doc-1", []string{"material"})

	cases := map[string]string{
		"not json":           "here are your questions!",
		"missing question":   `[{"question": "", "options": ["a", "b"], "correct_index": 0, "explanation": "x"}]`,
		"index out of range": `[{"question": "q", "options": ["a", "b"], "correct_index": 5, "explanation": "x"}]`,
		"too few options":    `[{"question": "q", "options": ["a"], "correct_index": 0, "explanation": "x"}]`,
	}
	for name, response := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewQuizService(store, &mockLLMService{response: response})
			_, err := svc.Generate(context.Background(), domain.QuizRequest{})
			require.Error(t, err)
		})
	}
}
