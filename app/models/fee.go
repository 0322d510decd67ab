package models

import "time"

// FeeSummary is the per-student-per-course-per-year ledger header holding
// total, discount and final fee. One row per (student, course, year).
type FeeSummary struct {
	ID         string    `json:"id"`
	StudentID  *string   `json:"student_id,omitempty"`
	CourseID   *string   `json:"course_id,omitempty"`
	YearNumber *int      `json:"year_number,omitempty"`
	TotalFees  float64   `json:"total_fees"`
	Discount   float64   `json:"discount"`
	FinalFees  float64   `json:"final_fees"`
	Status     FeeStatus `json:"status"`
	CreatedAt  time.Time `json:"created_at"`

	Course       *Course        `json:"course,omitempty"`
	Installments []*Installment `json:"installments,omitempty"`
}

// Installment is one scheduled partial payment under a fee summary.
// A Completed installment always carries a receipt id.
type Installment struct {
	ID                string        `json:"id"`
	FeeSummaryID      *string       `json:"fee_summary_id,omitempty"`
	InstallmentNumber int           `json:"installment_number"`
	InstallmentAmount float64       `json:"installment_amount"`
	DueDate           *time.Time    `json:"due_date,omitempty"`
	AcademicYear      *int          `json:"academic_year,omitempty"`
	PaymentStatus     PaymentStatus `json:"payment_status"`
	ReceiptID         *string       `json:"receipt_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`

	Receipt *Receipt `json:"receipt,omitempty"`
}

// RegistrationFee is the one-time per-student fee charged at admission,
// independent of any course enrollment. At most one row per student.
type RegistrationFee struct {
	ID        string     `json:"id"`
	StudentID *string    `json:"student_id,omitempty"`
	Amount    float64    `json:"registration_fee"`
	IsPaid    bool       `json:"is_paid"`
	ReceiptID *string    `json:"receipt_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`

	Receipt *Receipt `json:"receipt,omitempty"`
}
