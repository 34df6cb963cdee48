package driving

import (
	"context"

	"github.com/preppal-labs/preppal/internal/core/domain"
)

// LibraryService manages the document library: upload, listing, deletion.
type LibraryService interface {
	// Upload chunks and embeds already-extracted text and stores it as a
	// new document. The whole document succeeds or is rejected; embedding
	// provider failure does not reject it (the result is flagged Degraded).
	Upload(ctx context.Context, text, filename, subject string) (*domain.UploadResult, error)

	// List returns metadata for every stored document.
	List(ctx context.Context) ([]domain.DocumentInfo, error)

	// Delete removes a document by ID.
	// Returns domain.ErrNotFound for unknown IDs.
	Delete(ctx context.Context, id string) error
}
