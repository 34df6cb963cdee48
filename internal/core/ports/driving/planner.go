package driving

import (
	"context"

	"github.com/preppal-labs/preppal/internal/core/domain"
)

// PlannerService produces day-by-day study schedules.
type PlannerService interface {
	// Plan builds a schedule from today until the exam date.
	// Returns domain.ErrInvalidInput for unusable requests.
	Plan(ctx context.Context, req domain.PlanRequest) (*domain.StudyPlan, error)
}
