package ledger

import (
	"fmt"
	"time"

	"swaram-cms/app/models"
)

// PendingInstallment is one overdue installment on the pending report. A
// student with several overdue installments appears once per installment.
type PendingInstallment struct {
	StudentRef
	Description       string     `json:"description"`
	InstallmentAmount float64    `json:"installment_amount"`
	InstallmentNumber int        `json:"installment_number"`
	DueDate           *time.Time `json:"due_date"`
}

// PendingRegistration is one unpaid registration fee on the pending report.
// Registration fees have no due date of their own; the record's creation
// date stands in.
type PendingRegistration struct {
	StudentRef
	Amount  float64    `json:"amount"`
	DueDate *time.Time `json:"due_date"`
}

// PendingInstallmentsResult carries the overdue list plus the paid
// percentage across the entire installment set, not just the overdue subset.
type PendingInstallmentsResult struct {
	PaidPercent float64              `json:"paidPercent"`
	List        []PendingInstallment `json:"list"`
}

// PendingRegistrationsResult mirrors PendingInstallmentsResult for
// registration fees.
type PendingRegistrationsResult struct {
	PaidPercent float64               `json:"paidPercent"`
	List        []PendingRegistration `json:"list"`
}

// courseDescription renders "{course} {year} Year", substituting "-" for
// joins that no longer resolve.
func courseDescription(courseName *string, yearNumber *int) string {
	name := "-"
	if courseName != nil {
		name = *courseName
	}
	year := "-"
	if yearNumber != nil {
		year = fmt.Sprintf("%d", *yearNumber)
	}
	return fmt.Sprintf("%s %s Year", name, year)
}

// PendingInstallments filters installments that are past due and still
// Pending. The paid percentage sums receipt amounts of completed rows over
// the installment total of all rows.
func PendingInstallments(rows []PendingInstallmentRow, now time.Time) PendingInstallmentsResult {
	var total, paid float64
	list := []PendingInstallment{}
	for _, r := range rows {
		total += r.Amount
		if r.Status == models.PaymentCompleted && r.ReceiptAmount != nil {
			paid += *r.ReceiptAmount
		}
		if r.Status != models.PaymentPending || r.DueDate == nil || !r.DueDate.Before(now) {
			continue
		}
		list = append(list, PendingInstallment{
			StudentRef:        r.Student,
			Description:       courseDescription(r.CourseName, r.YearNumber),
			InstallmentAmount: r.Amount,
			InstallmentNumber: r.InstallmentNumber,
			DueDate:           r.DueDate,
		})
	}
	return PendingInstallmentsResult{
		PaidPercent: paidPercent(total, paid),
		List:        list,
	}
}

// PendingRegistrations filters unpaid registration fees.
func PendingRegistrations(rows []PendingRegistrationRow) PendingRegistrationsResult {
	var total, paid float64
	list := []PendingRegistration{}
	for _, r := range rows {
		total += r.Amount
		if r.IsPaid {
			paid += r.Amount
			continue
		}
		list = append(list, PendingRegistration{
			StudentRef: r.Student,
			Amount:     r.Amount,
			DueDate:    r.CreatedAt,
		})
	}
	return PendingRegistrationsResult{
		PaidPercent: paidPercent(total, paid),
		List:        list,
	}
}

// paidPercent computes paid/total * 100 with the zero-total guard.
func paidPercent(total, paid float64) float64 {
	if total == 0 {
		return 0
	}
	return paid / total * 100
}
