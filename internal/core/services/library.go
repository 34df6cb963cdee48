package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/preppal-labs/preppal/internal/core/domain"
	"github.com/preppal-labs/preppal/internal/core/ports/driven"
	"github.com/preppal-labs/preppal/internal/core/ports/driving"
	"github.com/preppal-labs/preppal/internal/logger"
	"github.com/preppal-labs/preppal/internal/postprocessors/chunker"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// DefaultSubject is assigned when the caller supplies no subject.
const DefaultSubject = "General"

// LibraryService manages the document library lifecycle: it chunks and
// embeds uploaded text and publishes the finished document to the store.
type LibraryService struct {
	store    driven.DocumentStore
	splitter *chunker.Splitter
	embedder *Embedder
}

// NewLibraryService creates a new library service.
func NewLibraryService(store driven.DocumentStore, splitter *chunker.Splitter, embedder *Embedder) *LibraryService {
	return &LibraryService{
		store:    store,
		splitter: splitter,
		embedder: embedder,
	}
}

// Upload chunks and embeds already-extracted text and stores it as a new
// document. The document is built completely before it is published, so
// concurrent readers never observe chunks without embeddings. Embedding
// provider failure does not reject the upload; the result is flagged
// Degraded instead.
func (s *LibraryService) Upload(ctx context.Context, text, filename, subject string) (*domain.UploadResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrEmptyContent)
	}
	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", domain.ErrInvalidInput)
	}
	if subject == "" {
		subject = DefaultSubject
	}

	logger.Section("Document Upload")
	logger.Debug("Filename: %s, subject: %s", filename, subject)

	chunks := s.splitter.Split(text)
	logger.Debug("Chunked into %d segments of at most %d words", len(chunks), s.splitter.ChunkSize())

	embeddings, degraded := s.embedder.EmbedDocuments(ctx, chunks)

	doc := &domain.Document{
		ID:         uuid.New().String(),
		Filename:   filename,
		Subject:    subject,
		Chunks:     chunks,
		Embeddings: embeddings,
		Degraded:   degraded,
		UploadedAt: time.Now(),
	}

	if err := s.store.Put(ctx, doc); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	logger.Info("Stored document %s (%d chunks, degraded=%t)", doc.ID, len(chunks), degraded)

	return &domain.UploadResult{
		DocumentID: doc.ID,
		Filename:   doc.Filename,
		Subject:    doc.Subject,
		ChunkCount: doc.ChunkCount(),
		Degraded:   degraded,
	}, nil
}

// List returns metadata for every stored document.
func (s *LibraryService) List(ctx context.Context) ([]domain.DocumentInfo, error) {
	return s.store.List(ctx)
}

// Delete removes a document by ID.
func (s *LibraryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: document id is required", domain.ErrInvalidInput)
	}
	return s.store.Delete(ctx, id)
}
