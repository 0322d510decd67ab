package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"swaram-cms/app/models"
)

func ts(t time.Time) *time.Time { return &t }

func TestRegistrationMetrics_Empty(t *testing.T) {
	m := RegistrationMetrics(nil, time.Now())

	assert.Equal(t, Metrics{}, m)
}

func TestRegistrationMetrics_ZeroTotalGuard(t *testing.T) {
	now := time.Now()
	rows := []RegistrationRow{
		{Amount: 0, IsPaid: false, CreatedAt: ts(now)},
		{Amount: 0, IsPaid: true, CreatedAt: ts(now.Add(-time.Hour))},
	}

	m := RegistrationMetrics(rows, now)

	assert.Equal(t, 0.0, m.Total)
	assert.Equal(t, 0.0, m.PercentPaid, "zero total must yield 0%%, not NaN")
}

func TestRegistrationMetrics_Mixed(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.February, 20, 10, 0, 0, 0, time.UTC)

	rows := []RegistrationRow{
		{Amount: 1000, IsPaid: true, CreatedAt: ts(thisMonth)},
		{Amount: 500, IsPaid: false, CreatedAt: ts(lastMonth)},
	}

	m := RegistrationMetrics(rows, now)

	assert.Equal(t, 1500.0, m.Total)
	assert.Equal(t, 500.0, m.Outstanding)
	assert.Equal(t, 1000.0, m.CollectedThisMonth)
	assert.Equal(t, 1, m.PendingStudents)
	assert.InDelta(t, 66.67, m.PercentPaid, 0.01)
}

func TestRegistrationMetrics_CollectedExcludesUnpaid(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)

	rows := []RegistrationRow{
		{Amount: 700, IsPaid: false, CreatedAt: ts(thisMonth)},
	}

	m := RegistrationMetrics(rows, now)

	assert.Equal(t, 0.0, m.CollectedThisMonth)
	assert.Equal(t, 700.0, m.Outstanding)
}

func TestInstallmentMetrics_Empty(t *testing.T) {
	m := InstallmentMetrics([]InstallmentRow{}, time.Now())

	assert.Equal(t, Metrics{}, m)
}

func TestInstallmentMetrics_Scenario(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.February, 20, 10, 0, 0, 0, time.UTC)

	rows := []InstallmentRow{
		{FeeSummaryID: "s1", Amount: 1000, Status: models.PaymentCompleted, CreatedAt: ts(thisMonth)},
		{FeeSummaryID: "s2", Amount: 500, Status: models.PaymentPending, CreatedAt: ts(lastMonth)},
	}

	m := InstallmentMetrics(rows, now)

	assert.Equal(t, 1500.0, m.Total)
	assert.Equal(t, 500.0, m.Outstanding)
	assert.Equal(t, 1000.0, m.CollectedThisMonth)
	assert.InDelta(t, 66.67, m.PercentPaid, 0.01)
}

func TestInstallmentMetrics_PendingStudentsCountsDistinctSummaries(t *testing.T) {
	now := time.Now()
	rows := []InstallmentRow{
		{FeeSummaryID: "s1", Amount: 100, Status: models.PaymentPending},
		{FeeSummaryID: "s1", Amount: 100, Status: models.PaymentPending},
		{FeeSummaryID: "s1", Amount: 100, Status: models.PaymentPending},
		{FeeSummaryID: "s2", Amount: 100, Status: models.PaymentPending},
		{FeeSummaryID: "s3", Amount: 100, Status: models.PaymentCompleted, CreatedAt: ts(now)},
	}

	m := InstallmentMetrics(rows, now)

	assert.Equal(t, 2, m.PendingStudents, "three pending rows under s1 still count once")
}

func TestInstallmentMetrics_OutstandingNeverExceedsTotal(t *testing.T) {
	now := time.Now()
	rows := []InstallmentRow{
		{FeeSummaryID: "s1", Amount: 250, Status: models.PaymentPending},
		{FeeSummaryID: "s2", Amount: 750, Status: models.PaymentCompleted, CreatedAt: ts(now.Add(-48 * time.Hour))},
		{FeeSummaryID: "s3", Amount: 400, Status: models.PaymentPending},
	}

	m := InstallmentMetrics(rows, now)

	assert.LessOrEqual(t, m.Outstanding, m.Total)
	assert.GreaterOrEqual(t, m.PercentPaid, 0.0)
	assert.LessOrEqual(t, m.PercentPaid, 100.0)
}

func TestInstallmentMetrics_Idempotent(t *testing.T) {
	now := time.Now()
	rows := []InstallmentRow{
		{FeeSummaryID: "s1", Amount: 300, Status: models.PaymentPending, CreatedAt: ts(now)},
		{FeeSummaryID: "s2", Amount: 900, Status: models.PaymentCompleted, CreatedAt: ts(now.Add(-time.Hour))},
	}

	first := InstallmentMetrics(rows, now)
	second := InstallmentMetrics(rows, now)

	assert.Equal(t, first, second)
}

func TestInstallmentMetrics_CollectedWindowIsCalendarMonth(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	firstOfMonth := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	endOfLastMonth := firstOfMonth.Add(-time.Second)

	rows := []InstallmentRow{
		{FeeSummaryID: "s1", Amount: 100, Status: models.PaymentCompleted, CreatedAt: ts(firstOfMonth)},
		{FeeSummaryID: "s2", Amount: 100, Status: models.PaymentCompleted, CreatedAt: ts(endOfLastMonth)},
	}

	m := InstallmentMetrics(rows, now)

	assert.Equal(t, 100.0, m.CollectedThisMonth, "window is closed at the month start, open at now")
}

func TestComputeFeeReport(t *testing.T) {
	now := time.Now()
	report := ComputeFeeReport(
		[]RegistrationRow{{Amount: 1500, IsPaid: false, CreatedAt: ts(now)}},
		[]InstallmentRow{{FeeSummaryID: "s1", Amount: 2000, Status: models.PaymentPending}},
		now,
	)

	assert.Equal(t, 1500.0, report.Registration.Total)
	assert.Equal(t, 2000.0, report.Installments.Total)
	assert.Equal(t, 1, report.Registration.PendingStudents)
	assert.Equal(t, 1, report.Installments.PendingStudents)
}
