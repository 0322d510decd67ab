package models

import "time"

// Receipt is an immutable record of one completed payment. It is referenced
// by exactly one installment or one registration fee, never both.
type Receipt struct {
	ID              string        `json:"id"`
	ReceiptNumber   int64         `json:"receipt_number"`
	Payee           string        `json:"payee" validate:"required"`
	Amount          float64       `json:"amount" validate:"required,gt=0"`
	PaymentDate     time.Time     `json:"payment_date" validate:"required"`
	PaymentMethod   PaymentMethod `json:"payment_method" validate:"required,oneof=Cash Cheque UPI"`
	ReferenceNumber *string       `json:"reference_number,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`

	// Description is resolved from the linked installment or registration
	// fee when the receipt is fetched for display. Not a stored column.
	Description string `json:"description,omitempty"`
}
