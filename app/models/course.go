package models

import "time"

// Course represents a multi-year course offered by the academy.
type Course struct {
	ID            string    `json:"id" validate:"omitempty,uuid"`
	Name          string    `json:"name" validate:"required"`
	Description   *string   `json:"description,omitempty"`
	DurationYears int       `json:"duration_years" validate:"required,min=1"`
	CreatedAt     time.Time `json:"created_at"`

	FeeStructures []*FeeStructure `json:"fee_structures,omitempty"`
}

// FeeStructure holds the yearly fee for one year of a course.
type FeeStructure struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"course_id" validate:"required,uuid"`
	YearNumber int       `json:"year_number" validate:"required,min=1"`
	TotalFee   float64   `json:"total_fee" validate:"gte=0"`
	CreatedAt  time.Time `json:"created_at"`
}
