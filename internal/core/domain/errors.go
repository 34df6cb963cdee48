package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyContent indicates an upload with no usable text.
	// The upload is rejected before chunking; no partial document is created.
	ErrEmptyContent = errors.New("empty content")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Answer and quiz generation degrade to fixed fallback messages.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrNoMaterials indicates an operation needed document context but
	// none was available in scope.
	ErrNoMaterials = errors.New("no study materials available")
)
