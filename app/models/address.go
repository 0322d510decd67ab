package models

import "time"

// Address represents a student's postal address.
type Address struct {
	ID        string     `json:"id" validate:"omitempty,uuid"`
	Line1     string     `json:"line_1" validate:"required"`
	Line2     *string    `json:"line_2,omitempty"`
	Unit      *string    `json:"unit,omitempty"`
	City      string     `json:"city" validate:"required"`
	State     string     `json:"state" validate:"required"`
	Country   string     `json:"country" validate:"required"`
	Zipcode   string     `json:"zipcode" validate:"required"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Contact represents a reachable person (parent, guardian or the student).
type Contact struct {
	ID          string     `json:"id" validate:"omitempty,uuid"`
	ContactName string     `json:"contact_name" validate:"required"`
	Phone       string     `json:"phone" validate:"required"`
	Email       *string    `json:"email,omitempty" validate:"omitempty,email"`
	WhatsappNum *string    `json:"whatsapp_num,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// StudentContact links a contact to a student with a relationship.
type StudentContact struct {
	ID           string     `json:"id"`
	StudentID    string     `json:"student_id"`
	ContactID    string     `json:"contact_id"`
	Relationship *Relation  `json:"relationship,omitempty"`
	Occupation   *string    `json:"occupation,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`

	Contact *Contact `json:"contact,omitempty"`
}
