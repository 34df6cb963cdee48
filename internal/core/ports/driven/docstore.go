package driven

import (
	"context"

	"github.com/preppal-labs/preppal/internal/core/domain"
)

// DocumentStore holds documents for the life of the process.
// There is no durability; a restart empties the store.
type DocumentStore interface {
	// Put stores a fully built document. The document must already have
	// its chunks and embeddings populated - a document is never visible
	// to readers in a half-built state.
	Put(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID.
	// Returns domain.ErrNotFound for unknown IDs.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Delete removes a document.
	// Returns domain.ErrNotFound for unknown IDs.
	Delete(ctx context.Context, id string) error

	// List returns metadata for every stored document, in upload order.
	// Embeddings and chunk text are never included.
	List(ctx context.Context) ([]domain.DocumentInfo, error)

	// All returns every stored document with chunks and embeddings, in
	// upload order. Used by the retriever to build its candidate set.
	All(ctx context.Context) ([]domain.Document, error)
}
