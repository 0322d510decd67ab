package database

import (
	"database/sql"

	"swaram-cms/app/models"
)

// GetReceiptByID fetches a receipt and resolves its description from the
// installment or registration fee that points at it.
func GetReceiptByID(db *sql.DB, id string) (*models.Receipt, error) {
	receipt := &models.Receipt{}
	query := `SELECT id, receipt_number, payee, amount, payment_date, payment_method, reference_number, created_at
			  FROM receipts WHERE id = $1`
	err := db.QueryRow(query, id).Scan(
		&receipt.ID, &receipt.ReceiptNumber, &receipt.Payee, &receipt.Amount,
		&receipt.PaymentDate, &receipt.PaymentMethod, &receipt.ReferenceNumber, &receipt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	receipt.Description, err = resolveReceiptDescription(db, id)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func resolveReceiptDescription(db *sql.DB, receiptID string) (string, error) {
	query := `SELECT COALESCE(c.name, '-') || ' - Year ' || COALESCE(fs.year_number::TEXT, '-') ||
			  ' (Installment #' || COALESCE(i.installment_number::TEXT, '-') || ')'
			  FROM student_installments i
			  JOIN student_fee_summary fs ON i.fee_summary_id = fs.id
			  LEFT JOIN courses c ON fs.course_id = c.id
			  WHERE i.receipt_id = $1`

	var description string
	err := db.QueryRow(query, receiptID).Scan(&description)
	if err == nil {
		return description, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	var exists bool
	err = db.QueryRow(`SELECT EXISTS(SELECT 1 FROM student_registration_fees WHERE receipt_id = $1)`,
		receiptID).Scan(&exists)
	if err != nil {
		return "", err
	}
	if exists {
		return "Registration Fee", nil
	}
	return "", nil
}

// GetReceiptsByStudent lists a student's receipts newest first, covering
// both installment and registration payments.
func GetReceiptsByStudent(db *sql.DB, studentID string) ([]*models.Receipt, error) {
	query := `
		SELECT r.id, r.receipt_number, r.payee, r.amount, r.payment_date,
			   r.payment_method, r.reference_number, r.created_at
		FROM receipts r
		JOIN student_installments i ON i.receipt_id = r.id
		JOIN student_fee_summary fs ON i.fee_summary_id = fs.id
		WHERE fs.student_id = $1
		UNION
		SELECT r.id, r.receipt_number, r.payee, r.amount, r.payment_date,
			   r.payment_method, r.reference_number, r.created_at
		FROM receipts r
		JOIN student_registration_fees rf ON rf.receipt_id = r.id
		WHERE rf.student_id = $1
		ORDER BY payment_date DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*models.Receipt
	for rows.Next() {
		r := &models.Receipt{}
		err := rows.Scan(&r.ID, &r.ReceiptNumber, &r.Payee, &r.Amount,
			&r.PaymentDate, &r.PaymentMethod, &r.ReferenceNumber, &r.CreatedAt)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, r)
	}
	return receipts, rows.Err()
}
