package models

import "time"

// Enrollment represents a student's membership in a course for a batch.
type Enrollment struct {
	ID             string            `json:"id"`
	StudentID      *string           `json:"student_id,omitempty" validate:"required,uuid"`
	CourseID       *string           `json:"course_id,omitempty" validate:"required,uuid"`
	BatchID        *string           `json:"batch_id,omitempty" validate:"required,uuid"`
	CurrentYear    *int              `json:"current_year,omitempty" validate:"required,min=1"`
	EnrollmentDate *time.Time        `json:"enrollment_date,omitempty"`
	CompletionDate *time.Time        `json:"completion_date,omitempty"`
	Status         *EnrollmentStatus `json:"status,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`

	Course *Course `json:"course,omitempty"`
	Batch  *Batch  `json:"batch,omitempty"`
}
