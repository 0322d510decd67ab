// Package ledger turns raw fee rows into the aggregates the console
// displays: category metrics, monthly trends, overdue lists and per-student
// payment histories. Every function is pure; rows go in, computed
// structures come out. Fetching lives in app/database.
package ledger

import (
	"time"

	"swaram-cms/app/models"
)

// RegistrationRow is the narrow projection of a registration fee record
// consumed by the aggregators.
type RegistrationRow struct {
	Amount    float64
	IsPaid    bool
	CreatedAt *time.Time
}

// InstallmentRow is the narrow projection of an installment record.
// ReceiptAmount is set only when the installment is Completed and its
// receipt still exists.
type InstallmentRow struct {
	FeeSummaryID  string
	Amount        float64
	Status        models.PaymentStatus
	DueDate       *time.Time
	CreatedAt     *time.Time
	ReceiptAmount *float64
}

// StudentRef carries the student identity fields shown on pending lists.
// Join misses leave the optional fields nil.
type StudentRef struct {
	StudentID  string  `json:"id"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   string  `json:"last_name"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
}

// PendingInstallmentRow is an installment joined through its fee summary
// to the student and course, as fetched for the pending report.
type PendingInstallmentRow struct {
	InstallmentRow
	Student           StudentRef
	CourseName        *string
	YearNumber        *int
	InstallmentNumber int
}

// PendingRegistrationRow is a registration fee joined to its student.
type PendingRegistrationRow struct {
	RegistrationRow
	Student StudentRef
}
