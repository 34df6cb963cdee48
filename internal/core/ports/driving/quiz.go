package driving

import (
	"context"

	"github.com/preppal-labs/preppal/internal/core/domain"
)

// QuizService generates multiple-choice quizzes from stored documents.
type QuizService interface {
	// Generate builds a quiz from the scoped documents' content.
	// Returns domain.ErrNoMaterials when no context is available.
	Generate(ctx context.Context, req domain.QuizRequest) ([]domain.QuizQuestion, error)
}
