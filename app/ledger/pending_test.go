package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"swaram-cms/app/models"
)

func strPtr(s string) *string   { return &s }
func intPtr(n int) *int         { return &n }
func amtPtr(f float64) *float64 { return &f }

func TestPendingInstallments_FiltersOverduePendingOnly(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	overdue := now.AddDate(0, 0, -10)
	upcoming := now.AddDate(0, 0, 10)

	rows := []PendingInstallmentRow{
		{
			InstallmentRow:    InstallmentRow{FeeSummaryID: "s1", Amount: 1000, Status: models.PaymentPending, DueDate: ts(overdue)},
			Student:           StudentRef{StudentID: "st1", FirstName: "Asha", LastName: "Iyer"},
			CourseName:        strPtr("Vocal"),
			YearNumber:        intPtr(2),
			InstallmentNumber: 3,
		},
		{
			InstallmentRow: InstallmentRow{FeeSummaryID: "s2", Amount: 1000, Status: models.PaymentPending, DueDate: ts(upcoming)},
			Student:        StudentRef{StudentID: "st2", FirstName: "Ravi", LastName: "Mehta"},
		},
		{
			InstallmentRow: InstallmentRow{FeeSummaryID: "s3", Amount: 1000, Status: models.PaymentCompleted, DueDate: ts(overdue), ReceiptAmount: amtPtr(1000)},
			Student:        StudentRef{StudentID: "st3", FirstName: "Meera", LastName: "Nair"},
		},
	}

	result := PendingInstallments(rows, now)

	assert.Len(t, result.List, 1)
	assert.Equal(t, "st1", result.List[0].StudentID)
	assert.Equal(t, "Vocal 2 Year", result.List[0].Description)
	assert.Equal(t, 3, result.List[0].InstallmentNumber)
}

func TestPendingInstallments_PaidPercentCoversWholeSet(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	overdue := now.AddDate(0, 0, -5)

	// Two overdue installments under the same summary: both sit in the
	// denominator even though the summary counts once elsewhere.
	rows := []PendingInstallmentRow{
		{InstallmentRow: InstallmentRow{FeeSummaryID: "s1", Amount: 500, Status: models.PaymentPending, DueDate: ts(overdue)}},
		{InstallmentRow: InstallmentRow{FeeSummaryID: "s1", Amount: 500, Status: models.PaymentPending, DueDate: ts(overdue)}},
		{InstallmentRow: InstallmentRow{FeeSummaryID: "s2", Amount: 1000, Status: models.PaymentCompleted, DueDate: ts(overdue), ReceiptAmount: amtPtr(1000)}},
	}

	result := PendingInstallments(rows, now)

	assert.Len(t, result.List, 2)
	assert.InDelta(t, 50.0, result.PaidPercent, 0.001)
}

func TestPendingInstallments_MissingJoinRendersPlaceholder(t *testing.T) {
	now := time.Now()
	overdue := now.AddDate(0, 0, -1)

	rows := []PendingInstallmentRow{
		{InstallmentRow: InstallmentRow{FeeSummaryID: "s1", Amount: 100, Status: models.PaymentPending, DueDate: ts(overdue)}},
	}

	result := PendingInstallments(rows, now)

	assert.Equal(t, "- - Year", result.List[0].Description)
}

func TestPendingInstallments_Empty(t *testing.T) {
	result := PendingInstallments(nil, time.Now())

	assert.Equal(t, 0.0, result.PaidPercent)
	assert.Empty(t, result.List)
}

func TestPendingRegistrations(t *testing.T) {
	created := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	rows := []PendingRegistrationRow{
		{
			RegistrationRow: RegistrationRow{Amount: 1500, IsPaid: false, CreatedAt: ts(created)},
			Student:         StudentRef{StudentID: "st1", FirstName: "Asha", LastName: "Iyer"},
		},
		{
			RegistrationRow: RegistrationRow{Amount: 1500, IsPaid: true, CreatedAt: ts(created)},
			Student:         StudentRef{StudentID: "st2", FirstName: "Ravi", LastName: "Mehta"},
		},
	}

	result := PendingRegistrations(rows)

	assert.Len(t, result.List, 1)
	assert.Equal(t, "st1", result.List[0].StudentID)
	assert.Equal(t, created, *result.List[0].DueDate, "creation date stands in for the due date")
	assert.InDelta(t, 50.0, result.PaidPercent, 0.001)
}

func TestPendingRegistrations_ZeroTotal(t *testing.T) {
	result := PendingRegistrations([]PendingRegistrationRow{})

	assert.Equal(t, 0.0, result.PaidPercent)
}
