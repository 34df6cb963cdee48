package services

import (
	"context"
	"fmt"
	"time"

	"github.com/preppal-labs/preppal/internal/core/domain"
	"github.com/preppal-labs/preppal/internal/core/ports/driving"
)

// Ensure PlannerService implements the interface.
var _ driving.PlannerService = (*PlannerService)(nil)

// fallbackPlanDays is used when the exam date is today or already past.
const fallbackPlanDays = 7

// PlannerService builds deterministic day-by-day study schedules.
// Subjects rotate round-robin across the days; no provider calls are made.
type PlannerService struct {
	now func() time.Time
}

// NewPlannerService creates a new planner service.
func NewPlannerService() *PlannerService {
	return &PlannerService{now: time.Now}
}

// Plan builds a schedule from today until the exam date. An exam date that
// is today or in the past falls back to a one-week plan.
func (s *PlannerService) Plan(_ context.Context, req domain.PlanRequest) (*domain.StudyPlan, error) {
	if req.ExamDate.IsZero() {
		return nil, fmt.Errorf("%w: exam date is required", domain.ErrInvalidInput)
	}
	if req.HoursPerDay <= 0 {
		return nil, fmt.Errorf("%w: hours per day must be positive", domain.ErrInvalidInput)
	}

	today := s.now()
	days := int(req.ExamDate.Sub(today).Hours() / 24)
	if days <= 0 {
		days = fallbackPlanDays
	}

	plan := make([]domain.StudyDay, 0, days)
	for day := 0; day < days; day++ {
		date := today.AddDate(0, 0, day)

		subject := "General Study"
		topics := []string{"Review materials"}
		if len(req.Subjects) > 0 {
			subject = req.Subjects[day%len(req.Subjects)]
			topics = []string{fmt.Sprintf("%s - Topic %d", subject, day/len(req.Subjects)+1)}
		}

		plan = append(plan, domain.StudyDay{
			Day:     day + 1,
			Date:    date.Format("2006-01-02"),
			Subject: subject,
			Hours:   req.HoursPerDay,
			Topics:  topics,
		})
	}

	return &domain.StudyPlan{
		Days:       plan,
		TotalDays:  days,
		TotalHours: float64(days) * req.HoursPerDay,
	}, nil
}
