package services

import (
	"context"
	"errors"
	"sort"

	"github.com/preppal-labs/preppal/internal/core/domain"
	"github.com/preppal-labs/preppal/internal/core/ports/driven"
	"github.com/preppal-labs/preppal/internal/core/ports/driving"
	"github.com/preppal-labs/preppal/internal/logger"
)

// Ensure RetrieverService implements the interface.
var _ driving.Retriever = (*RetrieverService)(nil)

// DefaultTopK is the default number of retrieval results.
const DefaultTopK = 5

// RetrieverService ranks stored chunks against a query by cosine
// similarity. The scan is linear over every candidate chunk; at this
// scale no approximate nearest-neighbour index is needed.
type RetrieverService struct {
	store    driven.DocumentStore
	embedder *Embedder
	topK     int
}

// NewRetriever creates a new retriever. defaultTopK <= 0 selects DefaultTopK.
func NewRetriever(store driven.DocumentStore, embedder *Embedder, defaultTopK int) *RetrieverService {
	if defaultTopK <= 0 {
		defaultTopK = DefaultTopK
	}
	return &RetrieverService{store: store, embedder: embedder, topK: defaultTopK}
}

// Retrieve embeds the query and returns the top-K chunks in scope, ordered
// by descending cosine similarity. Query embedding failure degrades to an
// empty result rather than an error: callers treat it as "no relevant
// material found".
func (s *RetrieverService) Retrieve(ctx context.Context, query string, opts domain.RetrievalOptions) ([]domain.RetrievalResult, error) {
	logger.Section("Retrieval")
	logger.Debug("Query: %q, scope: %v", query, opts.DocumentIDs)

	queryVec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		logger.Warn("query embedding failed, returning no results: %v", err)
		return []domain.RetrievalResult{}, nil
	}

	docs, err := s.candidates(ctx, opts.DocumentIDs)
	if err != nil {
		return nil, err
	}

	var results []domain.RetrievalResult
	for _, doc := range docs {
		for i, emb := range doc.Embeddings {
			results = append(results, domain.RetrievalResult{
				Text:  doc.Chunks[i],
				Score: dot(queryVec, emb),
				Source: domain.ChunkRef{
					DocumentID: doc.ID,
					Filename:   doc.Filename,
					ChunkIndex: i,
				},
			})
		}
	}

	if len(results) == 0 {
		logger.Debug("No candidate chunks in scope")
		return []domain.RetrievalResult{}, nil
	}

	// Stable sort keeps insertion order on ties, so results are
	// deterministic for a fixed store state.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	topK := opts.TopK
	if topK <= 0 {
		topK = s.topK
	}
	if len(results) > topK {
		results = results[:topK]
	}

	logger.Info("Retrieved %d chunks, best score %.4f", len(results), results[0].Score)
	return results, nil
}

// candidates resolves the scoped document set. Unknown IDs in scope are
// skipped silently; an empty scope means every stored document.
func (s *RetrieverService) candidates(ctx context.Context, docIDs []string) ([]domain.Document, error) {
	if len(docIDs) == 0 {
		return s.store.All(ctx)
	}

	docs := make([]domain.Document, 0, len(docIDs))
	for _, id := range docIDs {
		doc, err := s.store.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				logger.Debug("Scope document %s not found, skipping", id)
				continue
			}
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

// dot computes the dot product of two vectors. For unit-normalised
// vectors this is the cosine similarity. Mismatched lengths score zero;
// dimensionality is constant across the store by construction, so a
// mismatch only occurs against fallback vectors from a different model.
func dot(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
