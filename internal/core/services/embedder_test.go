package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preppal-labs/preppal/internal/core/domain"
	"github.com/preppal-labs/preppal/internal/core/ports/driven"
)

func vectorNorm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func TestEmbedder_EmbedDocuments_Success(t *testing.T) {
	mock := &mockEmbeddingService{embedding: []float32{3, 4}}
	e := NewEmbedder(mock)

	vecs, degraded := e.EmbedDocuments(context.Background(), []string{"a", "b"})

	require.Len(t, vecs, 2)
	assert.False(t, degraded)
	assert.Equal(t, driven.TaskDocument, mock.lastTask)
	for _, v := range vecs {
		assert.InDelta(t, 1.0, vectorNorm(v), 1e-6, "stored vectors must be unit length")
	}
	// [3,4] normalised is [0.6,0.8]
	assert.InDelta(t, 0.6, float64(vecs[0][0]), 1e-6)
	assert.InDelta(t, 0.8, float64(vecs[0][1]), 1e-6)
}

func TestEmbedder_EmbedDocuments_ProviderFailureFallsBack(t *testing.T) {
	mock := &mockEmbeddingService{embedErr: errors.New("quota exceeded"), dims: 768}
	e := NewEmbedder(mock)

	vecs, degraded := e.EmbedDocuments(context.Background(), []string{"a", "b", "c"})

	require.Len(t, vecs, 3, "fallback must not shorten the batch")
	assert.True(t, degraded)
	for i, v := range vecs {
		require.Len(t, v, 768, "fallback vector %d has wrong dimensionality", i)
		assert.InDelta(t, 1.0, vectorNorm(v), 1e-6, "fallback vector %d must be unit length", i)
	}
}

func TestEmbedder_EmbedDocuments_NilService(t *testing.T) {
	e := NewEmbedder(nil)

	vecs, degraded := e.EmbedDocuments(context.Background(), []string{"a"})

	require.Len(t, vecs, 1)
	assert.True(t, degraded)
	assert.Len(t, vecs[0], DefaultDimensions)
	assert.InDelta(t, 1.0, vectorNorm(vecs[0]), 1e-6)
}

func TestEmbedder_EmbedDocuments_Empty(t *testing.T) {
	e := NewEmbedder(&mockEmbeddingService{embedding: []float32{1, 0}})

	vecs, degraded := e.EmbedDocuments(context.Background(), nil)

	assert.Nil(t, vecs)
	assert.False(t, degraded)
}

func TestEmbedder_EmbedQuery_Success(t *testing.T) {
	mock := &mockEmbeddingService{embedding: []float32{0, 2}}
	e := NewEmbedder(mock)

	vec, err := e.EmbedQuery(context.Background(), "what is a network")

	require.NoError(t, err)
	assert.Equal(t, driven.TaskQuery, mock.lastTask)
	assert.InDelta(t, 1.0, vectorNorm(vec), 1e-6)
}

func TestEmbedder_EmbedQuery_NoRandomFallback(t *testing.T) {
	mock := &mockEmbeddingService{embedErr: errors.New("network down")}
	e := NewEmbedder(mock)

	_, err := e.EmbedQuery(context.Background(), "query")
	require.Error(t, err, "query embedding must fail loudly, never fall back to random vectors")
}

func TestEmbedder_EmbedQuery_NilService(t *testing.T) {
	e := NewEmbedder(nil)

	_, err := e.EmbedQuery(context.Background(), "query")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
}

func TestNormalise_ZeroVector(t *testing.T) {
	v := []float32{0, 0, 0}
	Normalise(v)
	assert.Equal(t, []float32{0, 0, 0}, v, "zero vector must be left unscaled")
}
