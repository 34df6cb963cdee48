package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/preppal-labs/preppal/internal/core/domain"
	"github.com/preppal-labs/preppal/internal/core/ports/driven"
	"github.com/preppal-labs/preppal/internal/logger"
)

// DefaultDimensions is the fallback vector size when no provider is
// configured. Matches text-embedding-004 / nomic-embed-text.
const DefaultDimensions = 768

// Embedder wraps a driven.EmbeddingService with L2 normalisation and the
// upload-time fallback policy: when the provider fails for a whole batch,
// it substitutes unit-normalised random vectors of the correct dimension
// instead of propagating the error. Uploads therefore never fail on
// provider downtime, at the cost of those documents being unsearchable by
// meaning until re-uploaded. The degraded return flags this state so it is
// observable, not just logged.
type Embedder struct {
	svc  driven.EmbeddingService // may be nil
	dims int
}

// NewEmbedder creates an embedder around an optional provider service.
// When svc is nil every document batch is fallback-embedded and query
// embedding reports domain.ErrEmbeddingUnavailable.
func NewEmbedder(svc driven.EmbeddingService) *Embedder {
	dims := DefaultDimensions
	if svc != nil && svc.Dimensions() > 0 {
		dims = svc.Dimensions()
	}
	return &Embedder{svc: svc, dims: dims}
}

// Dimensions returns the vector size produced by this embedder.
func (e *Embedder) Dimensions() int {
	return e.dims
}

// EmbedDocuments embeds a batch of chunk texts for storage. The result is
// always positionally aligned with texts and every vector is unit length.
// degraded is true when the provider was unavailable or failed and random
// fallback vectors were substituted.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) (vecs [][]float32, degraded bool) {
	if len(texts) == 0 {
		return nil, false
	}

	if e.svc == nil {
		logger.Warn("embedding service not configured, storing fallback vectors for %d chunks", len(texts))
		return e.fallbackBatch(len(texts)), true
	}

	embedded, err := e.svc.EmbedBatch(ctx, texts, driven.TaskDocument)
	if err != nil || len(embedded) != len(texts) {
		if err != nil {
			logger.Warn("embedding batch failed (%v), storing fallback vectors for %d chunks", err, len(texts))
		} else {
			logger.Warn("embedding batch returned %d vectors for %d chunks, storing fallback vectors", len(embedded), len(texts))
		}
		return e.fallbackBatch(len(texts)), true
	}

	for i := range embedded {
		Normalise(embedded[i])
	}
	return embedded, false
}

// EmbedQuery embeds a search query. Unlike document embedding there is no
// random fallback: a meaningless query vector would produce plausible-looking
// but meaningless rankings, which is worse than no results.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if e.svc == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	vec, err := e.svc.Embed(ctx, text, driven.TaskQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	Normalise(vec)
	return vec, nil
}

// fallbackBatch generates n unit-normalised random vectors.
func (e *Embedder) fallbackBatch(n int) [][]float32 {
	vecs := make([][]float32, n)
	for i := range vecs {
		vecs[i] = randomUnitVector(e.dims)
	}
	return vecs
}

// randomUnitVector returns a random vector of unit length.
func randomUnitVector(dims int) []float32 {
	v := make([]float32, dims)
	for i := range v {
		v[i] = float32(rand.NormFloat64())
	}
	Normalise(v)
	return v
}

// Normalise scales v to unit length in place. A zero vector is left
// unscaled rather than divided by zero.
func Normalise(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		logger.Warn("zero-norm embedding left unscaled")
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range v {
		v[i] /= norm
	}
}
