package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preppal-labs/preppal/internal/core/domain"
)

func newTestDocument(id string) *domain.Document {
	return &domain.Document{
		ID:         id,
		Filename:   id + ".txt",
		Subject:    "Networks",
		Chunks:     []string{"chunk one", "chunk two"},
		Embeddings: [][]float32{{1, 0}, {0, 1}},
		UploadedAt: time.Now(),
	}
}

func TestNewDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.documents)
	assert.Equal(t, 0, store.Len())
}

func TestDocumentStore_Put_Success(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := newTestDocument("doc-1")
	require.NoError(t, store.Put(ctx, doc))

	saved, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", saved.ID)
	assert.Equal(t, "doc-1.txt", saved.Filename)
	assert.Equal(t, "Networks", saved.Subject)
	assert.Len(t, saved.Chunks, 2)
	assert.Len(t, saved.Embeddings, 2)
}

func TestDocumentStore_Put_RejectsMisalignedEmbeddings(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := newTestDocument("doc-1")
	doc.Embeddings = doc.Embeddings[:1]

	err := store.Put(ctx, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, store.Len())
}

func TestDocumentStore_Get_NotFound(t *testing.T) {
	store := NewDocumentStore()

	_, err := store.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_Delete(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newTestDocument("doc-1")))
	require.NoError(t, store.Put(ctx, newTestDocument("doc-2")))

	require.NoError(t, store.Delete(ctx, "doc-1"))
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "doc-2", infos[0].ID)
}

func TestDocumentStore_Delete_NotFound(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newTestDocument("doc-1")))

	err := store.Delete(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, 1, store.Len(), "failed delete must not alter store size")
}

func TestDocumentStore_List_UploadOrder(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	for _, id := range []string{"doc-a", "doc-b", "doc-c"} {
		require.NoError(t, store.Put(ctx, newTestDocument(id)))
	}

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "doc-a", infos[0].ID)
	assert.Equal(t, "doc-b", infos[1].ID)
	assert.Equal(t, "doc-c", infos[2].ID)

	// Metadata only: chunk count derived, no vectors exposed.
	assert.Equal(t, 2, infos[0].ChunkCount)
}

func TestDocumentStore_ConcurrentAccess(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			doc := newTestDocument(string(rune('a' + n)))
			_ = store.Put(ctx, doc)
			_, _ = store.List(ctx)
			_, _ = store.Get(ctx, doc.ID)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, store.Len())
}
