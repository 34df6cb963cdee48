package services

import (
	"context"

	"github.com/preppal-labs/preppal/internal/core/ports/driven"
)

// --- Mock implementations shared across service tests ---

// mockEmbeddingService implements driven.EmbeddingService for testing.
type mockEmbeddingService struct {
	embedding  []float32
	embedErr   error
	dims       int
	embedCalls int
	batchCalls int
	lastTask   driven.EmbeddingTask
}

func (m *mockEmbeddingService) Embed(_ context.Context, _ string, task driven.EmbeddingTask) ([]float32, error) {
	m.embedCalls++
	m.lastTask = task
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	out := make([]float32, len(m.embedding))
	copy(out, m.embedding)
	return out, nil
}

func (m *mockEmbeddingService) EmbedBatch(_ context.Context, texts []string, task driven.EmbeddingTask) ([][]float32, error) {
	m.batchCalls++
	m.lastTask = task
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = make([]float32, len(m.embedding))
		copy(result[i], m.embedding)
	}
	return result, nil
}

func (m *mockEmbeddingService) Dimensions() int {
	if m.dims > 0 {
		return m.dims
	}
	return len(m.embedding)
}

func (m *mockEmbeddingService) ModelName() string { return "mock-embedding" }

func (m *mockEmbeddingService) Ping(_ context.Context) error { return nil }

func (m *mockEmbeddingService) Close() error { return nil }

// mockLLMService implements driven.LLMService for testing.
type mockLLMService struct {
	response      string
	generateErr   error
	generateCalls int
	lastPrompt    string
}

func (m *mockLLMService) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.generateCalls++
	m.lastPrompt = prompt
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.response, nil
}

func (m *mockLLMService) ModelName() string { return "mock-llm" }

func (m *mockLLMService) Ping(_ context.Context) error { return nil }

func (m *mockLLMService) Close() error { return nil }
