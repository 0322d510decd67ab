package database

import (
	"database/sql"
	"errors"
	"time"

	"swaram-cms/app/models"
)

// ErrReferenceRequired is returned when a cheque or UPI payment arrives
// without a reference number.
var ErrReferenceRequired = errors.New("reference number is required for non-cash payments")

// ErrAlreadyPaid is returned when a payment targets an obligation that is
// already settled.
var ErrAlreadyPaid = errors.New("payment already recorded")

// ErrDiscountExceedsTotal is returned when a discount would drive final
// fees negative.
var ErrDiscountExceedsTotal = errors.New("discount exceeds total fees")

// PaymentInput carries the receipt fields common to both payment kinds.
type PaymentInput struct {
	Payee           string
	Amount          float64
	PaymentDate     time.Time
	PaymentMethod   models.PaymentMethod
	ReferenceNumber *string
}

func (p *PaymentInput) validate() error {
	if p.PaymentMethod != models.MethodCash {
		if p.ReferenceNumber == nil || *p.ReferenceNumber == "" {
			return ErrReferenceRequired
		}
	}
	return nil
}

func insertReceipt(tx *sql.Tx, input *PaymentInput) (*models.Receipt, error) {
	receipt := &models.Receipt{
		Payee:           input.Payee,
		Amount:          input.Amount,
		PaymentDate:     input.PaymentDate,
		PaymentMethod:   input.PaymentMethod,
		ReferenceNumber: input.ReferenceNumber,
	}
	query := `INSERT INTO receipts (payee, amount, payment_date, payment_method, reference_number)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, receipt_number, created_at`
	err := tx.QueryRow(query,
		input.Payee, input.Amount, input.PaymentDate, input.PaymentMethod, input.ReferenceNumber,
	).Scan(&receipt.ID, &receipt.ReceiptNumber, &receipt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// RecordInstallmentPayment creates the receipt and marks the installment
// Completed in one transaction, so a receipt never exists without its
// installment pointing back at it.
func RecordInstallmentPayment(db *sql.DB, installmentID string, input *PaymentInput) (*models.Receipt, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var status models.PaymentStatus
	err = tx.QueryRow(`SELECT payment_status FROM student_installments WHERE id = $1 FOR UPDATE`,
		installmentID).Scan(&status)
	if err != nil {
		return nil, err
	}
	if status == models.PaymentCompleted {
		return nil, ErrAlreadyPaid
	}

	receipt, err := insertReceipt(tx, input)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(`UPDATE student_installments SET payment_status = 'Completed', receipt_id = $1 WHERE id = $2`,
		receipt.ID, installmentID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return receipt, nil
}

// RecordRegistrationPayment creates the receipt and flips the registration
// fee to paid in one transaction.
func RecordRegistrationPayment(db *sql.DB, registrationFeeID string, input *PaymentInput) (*models.Receipt, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var isPaid bool
	err = tx.QueryRow(`SELECT COALESCE(is_paid, false) FROM student_registration_fees WHERE id = $1 FOR UPDATE`,
		registrationFeeID).Scan(&isPaid)
	if err != nil {
		return nil, err
	}
	if isPaid {
		return nil, ErrAlreadyPaid
	}

	receipt, err := insertReceipt(tx, input)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(`UPDATE student_registration_fees SET is_paid = true, receipt_id = $1 WHERE id = $2`,
		receipt.ID, registrationFeeID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return receipt, nil
}

// ApplyDiscount sets the summary's discount and keeps final_fees equal to
// total_fees minus discount.
func ApplyDiscount(db *sql.DB, summaryID string, discount float64) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var totalFees float64
	err = tx.QueryRow(`SELECT COALESCE(total_fees, 0) FROM student_fee_summary WHERE id = $1 FOR UPDATE`,
		summaryID).Scan(&totalFees)
	if err != nil {
		return err
	}
	if discount < 0 || discount > totalFees {
		return ErrDiscountExceedsTotal
	}

	_, err = tx.Exec(`UPDATE student_fee_summary SET discount = $1, final_fees = total_fees - $1 WHERE id = $2`,
		discount, summaryID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// CancelFeeSummary marks a summary Cancelled. Its installments stay on
// record but drop out of history and schedule views.
func CancelFeeSummary(db *sql.DB, summaryID string) error {
	result, err := db.Exec(`UPDATE student_fee_summary SET status = 'Cancelled' WHERE id = $1`, summaryID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
