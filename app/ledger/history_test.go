package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"swaram-cms/app/models"
)

func receipt(id string, payee string, amount float64, paidOn time.Time) *HistoryReceipt {
	return &HistoryReceipt{ID: id, Payee: &payee, Amount: &amount, PaymentDate: &paidOn}
}

func TestPaymentHistory_MergesAndSortsDescending(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	summaries := []HistorySummary{
		{
			Status:     models.FeeActive,
			CourseName: strPtr("Tabla"),
			YearNumber: intPtr(1),
			Installments: []HistoryInstallment{
				{Number: 1, Status: models.PaymentCompleted, Receipt: receipt("r1", "Asha Iyer", 1200, jan)},
				{Number: 2, Status: models.PaymentCompleted, Receipt: receipt("r2", "Asha Iyer", 1200, mar)},
				{Number: 3, Status: models.PaymentPending},
			},
		},
	}
	reg := &RegistrationPayment{Amount: 1500, Receipt: receipt("r3", "Asha Iyer", 1500, feb)}

	records := PaymentHistory(summaries, reg)

	assert.Len(t, records, 3)
	assert.Equal(t, "r2", records[0].ReceiptID)
	assert.Equal(t, "r3", records[1].ReceiptID)
	assert.Equal(t, "r1", records[2].ReceiptID)
	assert.Equal(t, "Tabla - Year 1 (Installment #2)", records[0].Description)
	assert.Equal(t, "Registration Fee", records[1].Description)
}

func TestPaymentHistory_ExcludesCancelledSummaries(t *testing.T) {
	paidOn := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	summaries := []HistorySummary{
		{
			Status:     models.FeeCancelled,
			CourseName: strPtr("Sitar"),
			YearNumber: intPtr(1),
			Installments: []HistoryInstallment{
				{Number: 1, Status: models.PaymentCompleted, Receipt: receipt("r1", "Ravi Mehta", 1000, paidOn)},
			},
		},
	}

	records := PaymentHistory(summaries, nil)

	assert.Empty(t, records)
}

func TestPaymentHistory_SkipsCompletedWithoutReceipt(t *testing.T) {
	// A half-committed write leaves an installment Completed with no
	// receipt until the transaction is repaired; the view must not panic.
	summaries := []HistorySummary{
		{
			Status: models.FeeActive,
			Installments: []HistoryInstallment{
				{Number: 1, Status: models.PaymentCompleted, Receipt: nil},
			},
		},
	}

	records := PaymentHistory(summaries, nil)

	assert.Empty(t, records)
}

func TestPaymentHistory_NoRegistration(t *testing.T) {
	records := PaymentHistory(nil, nil)

	assert.Empty(t, records)
}

func TestFeeOverview_SortsNewestFirst(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	older := now.AddDate(0, -2, 0)
	newer := now.AddDate(0, -1, 0)

	records := FeeOverview(
		[]OverviewSummaryRow{
			{CourseName: strPtr("Vocal"), YearNumber: intPtr(1), FinalFees: 9000, CreatedAt: older},
			{CourseName: strPtr("Vocal"), YearNumber: intPtr(2), FinalFees: 9500, CreatedAt: newer},
		},
		[]OverviewRegistrationRow{{Amount: 1500, CreatedAt: &now}},
		now,
	)

	assert.Len(t, records, 3)
	assert.Equal(t, "Registration", records[0].FeeType)
	assert.Equal(t, 9500.0, records[1].Amount)
	assert.Equal(t, 9000.0, records[2].Amount)
}

func TestFeeOverview_NilRegistrationTimestampFallsBackToNow(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	records := FeeOverview(nil, []OverviewRegistrationRow{{Amount: 1500, CreatedAt: nil}}, now)

	assert.Equal(t, now, records[0].CreatedAt)
}
