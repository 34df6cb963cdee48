package driving

import (
	"context"

	"github.com/preppal-labs/preppal/internal/core/domain"
)

// AnswerService answers natural-language questions from stored documents.
type AnswerService interface {
	// Ask retrieves relevant chunks for the query and synthesises an
	// answer grounded in them. When no material is in scope it returns
	// a fixed no-materials answer without calling the provider.
	Ask(ctx context.Context, query string, docIDs []string) (*domain.Answer, error)

	// History returns the chat exchanges recorded this session, oldest first.
	History(ctx context.Context) []domain.ChatEntry
}
