package models

import "time"

// Batch represents a group of students taught together in an academic year.
type Batch struct {
	ID           string     `json:"id" validate:"omitempty,uuid"`
	Name         string     `json:"name" validate:"required"`
	Description  *string    `json:"description,omitempty"`
	AcademicYear *int       `json:"academic_year,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`

	YearCourses []*BatchYearCourse `json:"year_courses,omitempty"`
	Schedules   []*BatchSchedule   `json:"schedules,omitempty"`
}

// BatchSchedule is one weekly time slot of a batch. Times are HH:MM 24-hour strings.
type BatchSchedule struct {
	ID        string    `json:"id"`
	BatchID   string    `json:"batch_id"`
	DayOfWeek DayOfWeek `json:"day_of_week" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
}

// BatchYearCourse assigns a (course, year) pairing to a batch.
type BatchYearCourse struct {
	ID         string    `json:"id"`
	BatchID    *string   `json:"batch_id,omitempty"`
	CourseID   *string   `json:"course_id,omitempty"`
	YearNumber int       `json:"year_number" validate:"required,min=1"`
	CreatedAt  time.Time `json:"created_at"`

	Course *Course `json:"course,omitempty"`
}
