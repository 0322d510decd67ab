package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"swaram-cms/app/models"
)

func TestMonthlyTrend_BucketOrderIsAcademicYear(t *testing.T) {
	series := MonthlyTrend(nil, nil)

	assert.Len(t, series.Registration, 12)
	assert.Len(t, series.Installments, 12)
	assert.Equal(t, "Jun", series.Registration[0].Month)
	assert.Equal(t, "May", series.Registration[11].Month)
	assert.Equal(t, "Dec", series.Registration[6].Month)
}

func TestMonthlyTrend_SumMatchesPaidTotal(t *testing.T) {
	jun := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	sep := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2027, time.February, 25, 0, 0, 0, 0, time.UTC)

	inst := []InstallmentRow{
		{FeeSummaryID: "s1", Amount: 1200, Status: models.PaymentCompleted, CreatedAt: ts(jun)},
		{FeeSummaryID: "s1", Amount: 1200, Status: models.PaymentCompleted, CreatedAt: ts(sep)},
		{FeeSummaryID: "s2", Amount: 800, Status: models.PaymentCompleted, CreatedAt: ts(feb)},
		{FeeSummaryID: "s2", Amount: 800, Status: models.PaymentPending, CreatedAt: ts(feb)},
	}

	series := MonthlyTrend(nil, inst)

	var sum float64
	for _, p := range series.Installments {
		sum += p.Fees
	}
	assert.Equal(t, 3200.0, sum, "buckets must account for every paid amount exactly once")
}

func TestMonthlyTrend_CollapsesYears(t *testing.T) {
	thisYear := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	reg := []RegistrationRow{
		{Amount: 500, IsPaid: true, CreatedAt: ts(thisYear)},
		{Amount: 300, IsPaid: true, CreatedAt: ts(lastYear)},
	}

	series := MonthlyTrend(reg, nil)

	assert.Equal(t, "Jul", series.Registration[1].Month)
	assert.Equal(t, 800.0, series.Registration[1].Fees, "same month of different years lands in one bucket")
}

func TestMonthlyTrend_SkipsUnpaidAndNilTimestamps(t *testing.T) {
	jun := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	reg := []RegistrationRow{
		{Amount: 500, IsPaid: false, CreatedAt: ts(jun)},
		{Amount: 700, IsPaid: true, CreatedAt: nil},
	}
	inst := []InstallmentRow{
		{FeeSummaryID: "s1", Amount: 900, Status: models.PaymentCompleted, CreatedAt: nil},
	}

	series := MonthlyTrend(reg, inst)

	for _, p := range series.Registration {
		assert.Equal(t, 0.0, p.Fees)
	}
	for _, p := range series.Installments {
		assert.Equal(t, 0.0, p.Fees)
	}
}
