package models

import "time"

// Student represents an admitted student of the academy.
type Student struct {
	ID            string     `json:"id" validate:"omitempty,uuid"`
	GrNo          int64      `json:"gr_no"`
	FirstName     string     `json:"first_name" validate:"required"`
	MiddleName    *string    `json:"middle_name,omitempty"`
	LastName      string     `json:"last_name" validate:"required"`
	Gender        Gender     `json:"gender" validate:"required,oneof=Male Female"`
	DateOfBirth   time.Time  `json:"date_of_birth" validate:"required"`
	AdmissionDate time.Time  `json:"admission_date" validate:"required"`
	AvatarURL     *string    `json:"avatar_url,omitempty"`
	FormURL       *string    `json:"form_url,omitempty"`
	AddressID     *string    `json:"address_id,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`

	// Loaded on detail views only
	Address      *Address         `json:"address,omitempty"`
	Contacts     []*StudentContact `json:"contacts,omitempty"`
	FeeSummaries []*FeeSummary    `json:"fee_summaries,omitempty"`
	Enrollments  []*Enrollment    `json:"enrollments,omitempty"`
}

// FullName joins the student's name parts, skipping an empty middle name.
func (s *Student) FullName() string {
	if s.MiddleName != nil && *s.MiddleName != "" {
		return s.FirstName + " " + *s.MiddleName + " " + s.LastName
	}
	return s.FirstName + " " + s.LastName
}
