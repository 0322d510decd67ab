package ledger

import (
	"time"

	"swaram-cms/app/models"
)

// Metrics summarises one fee category for the reports page.
type Metrics struct {
	Total              float64 `json:"total"`
	Outstanding        float64 `json:"outstanding"`
	CollectedThisMonth float64 `json:"collectedThisMonth"`
	PendingStudents    int     `json:"pendingStudents"`
	PercentPaid        float64 `json:"percentPaid"`
}

// FeeReport pairs the registration and installment metrics.
type FeeReport struct {
	Registration Metrics `json:"registration"`
	Installments Metrics `json:"installments"`
}

// monthStart returns the first instant of the calendar month containing t.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// inCurrentMonth reports whether created falls within [first instant of the
// month containing now, now).
func inCurrentMonth(created *time.Time, now time.Time) bool {
	if created == nil {
		return false
	}
	return !created.Before(monthStart(now)) && created.Before(now)
}

// percentPaid computes (1 - outstanding/total) * 100, defined as 0 when
// total is 0 so empty data never divides by zero.
func percentPaid(total, outstanding float64) float64 {
	if total == 0 {
		return 0
	}
	return (1 - outstanding/total) * 100
}

// RegistrationMetrics aggregates registration fee rows. PendingStudents is
// the count of unpaid rows, since a student has at most one registration fee.
func RegistrationMetrics(rows []RegistrationRow, now time.Time) Metrics {
	var m Metrics
	for _, r := range rows {
		m.Total += r.Amount
		if !r.IsPaid {
			m.Outstanding += r.Amount
			m.PendingStudents++
			continue
		}
		if inCurrentMonth(r.CreatedAt, now) {
			m.CollectedThisMonth += r.Amount
		}
	}
	m.PercentPaid = percentPaid(m.Total, m.Outstanding)
	return m
}

// InstallmentMetrics aggregates installment rows. PendingStudents counts
// distinct fee summaries with at least one non-completed installment, so a
// student with three overdue installments under one summary counts once.
func InstallmentMetrics(rows []InstallmentRow, now time.Time) Metrics {
	var m Metrics
	pendingSummaries := make(map[string]struct{})
	for _, r := range rows {
		m.Total += r.Amount
		if r.Status != models.PaymentCompleted {
			m.Outstanding += r.Amount
			pendingSummaries[r.FeeSummaryID] = struct{}{}
			continue
		}
		if inCurrentMonth(r.CreatedAt, now) {
			m.CollectedThisMonth += r.Amount
		}
	}
	m.PendingStudents = len(pendingSummaries)
	m.PercentPaid = percentPaid(m.Total, m.Outstanding)
	return m
}

// ComputeFeeReport aggregates both categories in one call.
func ComputeFeeReport(reg []RegistrationRow, inst []InstallmentRow, now time.Time) FeeReport {
	return FeeReport{
		Registration: RegistrationMetrics(reg, now),
		Installments: InstallmentMetrics(inst, now),
	}
}
