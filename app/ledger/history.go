package ledger

import (
	"fmt"
	"sort"
	"time"

	"swaram-cms/app/models"
)

// HistorySummary is a fee summary with its installments and their receipts,
// as fetched for one student.
type HistorySummary struct {
	Status       models.FeeStatus
	CourseName   *string
	YearNumber   *int
	Installments []HistoryInstallment
}

// HistoryInstallment is one installment under a HistorySummary.
type HistoryInstallment struct {
	Number  int
	Status  models.PaymentStatus
	Receipt *HistoryReceipt
}

// HistoryReceipt is the receipt detail shown on a history line.
type HistoryReceipt struct {
	ID          string
	Payee       *string
	Amount      *float64
	PaymentDate *time.Time
}

// RegistrationPayment is a student's paid registration fee with its receipt.
type RegistrationPayment struct {
	Amount  float64
	Receipt *HistoryReceipt
}

// HistoryRecord is one line of a student's payment history.
type HistoryRecord struct {
	PaidOn      *time.Time `json:"paid_on"`
	Description string     `json:"description"`
	Amount      *float64   `json:"amount"`
	PaidBy      *string    `json:"paid_by"`
	ReceiptID   string     `json:"receipt_id"`
}

// PaymentHistory merges completed installments and the paid registration fee
// into one ledger view. Installments under Cancelled summaries are excluded.
// The result is sorted descending by paid-on date; records with no date sink
// to the end.
func PaymentHistory(summaries []HistorySummary, reg *RegistrationPayment) []HistoryRecord {
	records := []HistoryRecord{}

	for _, summary := range summaries {
		if summary.Status != models.FeeActive {
			continue
		}
		for _, inst := range summary.Installments {
			if inst.Status != models.PaymentCompleted || inst.Receipt == nil {
				continue
			}
			course := "-"
			if summary.CourseName != nil {
				course = *summary.CourseName
			}
			year := 0
			if summary.YearNumber != nil {
				year = *summary.YearNumber
			}
			records = append(records, HistoryRecord{
				PaidOn:      inst.Receipt.PaymentDate,
				Description: fmt.Sprintf("%s - Year %d (Installment #%d)", course, year, inst.Number),
				Amount:      inst.Receipt.Amount,
				PaidBy:      inst.Receipt.Payee,
				ReceiptID:   inst.Receipt.ID,
			})
		}
	}

	if reg != nil && reg.Receipt != nil {
		amount := reg.Amount
		records = append(records, HistoryRecord{
			PaidOn:      reg.Receipt.PaymentDate,
			Description: "Registration Fee",
			Amount:      &amount,
			PaidBy:      reg.Receipt.Payee,
			ReceiptID:   reg.Receipt.ID,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].PaidOn, records[j].PaidOn
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})

	return records
}
