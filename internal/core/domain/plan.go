package domain

import "time"

// StudyDay is a single entry in a study plan.
type StudyDay struct {
	// Day is the 1-based day number.
	Day int `json:"day"`

	// Date is the calendar date in YYYY-MM-DD form.
	Date string `json:"date"`

	// Subject is the subject scheduled for the day.
	Subject string `json:"subject"`

	// Hours is the planned study time.
	Hours float64 `json:"hours"`

	// Topics lists what to cover.
	Topics []string `json:"topics"`

	// Completed tracks progress; always false on creation.
	Completed bool `json:"completed"`
}

// StudyPlan is a complete day-by-day schedule up to an exam date.
type StudyPlan struct {
	Days       []StudyDay `json:"plan"`
	TotalDays  int        `json:"total_days"`
	TotalHours float64    `json:"total_hours"`
}

// PlanRequest describes a study plan generation call.
type PlanRequest struct {
	// ExamDate is the exam date. Past dates fall back to a one-week plan.
	ExamDate time.Time

	// HoursPerDay is the daily study budget.
	HoursPerDay float64

	// Subjects are rotated across the plan days in order.
	Subjects []string
}
