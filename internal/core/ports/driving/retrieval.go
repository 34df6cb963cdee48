package driving

import (
	"context"

	"github.com/preppal-labs/preppal/internal/core/domain"
)

// Retriever finds the stored chunks most similar to a query.
type Retriever interface {
	// Retrieve embeds the query and returns the top-K chunks in scope,
	// ordered by descending cosine similarity. An empty result is a valid
	// outcome (empty store, unknown scope IDs, or query embedding failure),
	// never an error.
	Retrieve(ctx context.Context, query string, opts domain.RetrievalOptions) ([]domain.RetrievalResult, error)
}
