package driven

import "context"

// EmbeddingTask hints the provider about how a text will be used.
// Some providers (Gemini) tune the vector for documents vs queries;
// providers without task support must ignore the hint. Either way,
// document and query vectors land in the same space.
type EmbeddingTask string

const (
	// TaskDocument marks text that will be stored and searched against.
	TaskDocument EmbeddingTask = "document"

	// TaskQuery marks text used to search stored documents.
	TaskQuery EmbeddingTask = "query"
)

// EmbeddingService generates vector embeddings from text.
// This is an optional service - when nil, uploads fall back to random
// vectors and semantic retrieval is disabled.
//
// Implementations may include:
//   - Gemini (text-embedding-004)
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string, task EmbeddingTask) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	// On success the result is positionally aligned with texts.
	EmbedBatch(ctx context.Context, texts []string, task EmbeddingTask) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 768, 1536).
	// This is fixed by the model and constant across the whole store.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
