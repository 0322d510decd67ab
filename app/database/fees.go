package database

import (
	"database/sql"
	"time"

	"swaram-cms/app/ledger"
	"swaram-cms/app/models"
)

// GetRegistrationRows fetches the narrow registration fee projection the
// aggregators consume.
func GetRegistrationRows(db *sql.DB) ([]ledger.RegistrationRow, error) {
	query := `SELECT registration_fee, is_paid, created_at FROM student_registration_fees`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ledger.RegistrationRow
	for rows.Next() {
		var r ledger.RegistrationRow
		var isPaid sql.NullBool
		if err := rows.Scan(&r.Amount, &isPaid, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.IsPaid = isPaid.Valid && isPaid.Bool
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetInstallmentRows fetches the narrow installment projection the
// aggregators consume.
func GetInstallmentRows(db *sql.DB) ([]ledger.InstallmentRow, error) {
	query := `SELECT i.fee_summary_id, COALESCE(i.installment_amount, 0), i.payment_status,
			  i.due_date, i.created_at, r.amount
			  FROM student_installments i
			  LEFT JOIN receipts r ON i.receipt_id = r.id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ledger.InstallmentRow
	for rows.Next() {
		var r ledger.InstallmentRow
		var summaryID sql.NullString
		var status sql.NullString
		var created sql.NullTime
		if err := rows.Scan(&summaryID, &r.Amount, &status, &r.DueDate, &created, &r.ReceiptAmount); err != nil {
			return nil, err
		}
		r.FeeSummaryID = summaryID.String
		r.Status = models.PaymentStatus(status.String)
		if created.Valid {
			t := created.Time
			r.CreatedAt = &t
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetPendingInstallmentRows joins installments through their fee summary to
// student and course for the pending report. Broken joins surface as nil
// fields, never as dropped rows.
func GetPendingInstallmentRows(db *sql.DB) ([]ledger.PendingInstallmentRow, error) {
	query := `SELECT i.fee_summary_id, COALESCE(i.installment_amount, 0), i.payment_status,
			  i.due_date, i.created_at, COALESCE(i.installment_number, 0), r.amount,
			  s.id, s.first_name, s.middle_name, s.last_name, s.avatar_url,
			  c.name, fs.year_number
			  FROM student_installments i
			  LEFT JOIN receipts r ON i.receipt_id = r.id
			  LEFT JOIN student_fee_summary fs ON i.fee_summary_id = fs.id
			  LEFT JOIN students s ON fs.student_id = s.id
			  LEFT JOIN courses c ON fs.course_id = c.id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ledger.PendingInstallmentRow
	for rows.Next() {
		var r ledger.PendingInstallmentRow
		var summaryID, status sql.NullString
		var created sql.NullTime
		var studentID, firstName, lastName sql.NullString
		err := rows.Scan(
			&summaryID, &r.Amount, &status, &r.DueDate, &created, &r.InstallmentNumber, &r.ReceiptAmount,
			&studentID, &firstName, &r.Student.MiddleName, &lastName, &r.Student.AvatarURL,
			&r.CourseName, &r.YearNumber,
		)
		if err != nil {
			return nil, err
		}
		r.FeeSummaryID = summaryID.String
		r.Status = models.PaymentStatus(status.String)
		if created.Valid {
			t := created.Time
			r.CreatedAt = &t
		}
		r.Student.StudentID = studentID.String
		r.Student.FirstName = firstName.String
		r.Student.LastName = lastName.String
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetPendingRegistrationRows joins registration fees to their students for
// the pending report.
func GetPendingRegistrationRows(db *sql.DB) ([]ledger.PendingRegistrationRow, error) {
	query := `SELECT rf.registration_fee, rf.is_paid, rf.created_at,
			  s.id, s.first_name, s.middle_name, s.last_name, s.avatar_url
			  FROM student_registration_fees rf
			  LEFT JOIN students s ON rf.student_id = s.id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ledger.PendingRegistrationRow
	for rows.Next() {
		var r ledger.PendingRegistrationRow
		var isPaid sql.NullBool
		var studentID, firstName, lastName sql.NullString
		err := rows.Scan(
			&r.Amount, &isPaid, &r.CreatedAt,
			&studentID, &firstName, &r.Student.MiddleName, &lastName, &r.Student.AvatarURL,
		)
		if err != nil {
			return nil, err
		}
		r.IsPaid = isPaid.Valid && isPaid.Bool
		r.Student.StudentID = studentID.String
		r.Student.FirstName = firstName.String
		r.Student.LastName = lastName.String
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetFeeSummariesByStudent returns the student's ledger headers with course
// names resolved.
func GetFeeSummariesByStudent(db *sql.DB, studentID string) ([]*models.FeeSummary, error) {
	query := `SELECT fs.id, fs.student_id, fs.course_id, fs.year_number,
			  COALESCE(fs.total_fees, 0), COALESCE(fs.discount, 0), COALESCE(fs.final_fees, 0),
			  fs.status, fs.created_at, c.id, c.name
			  FROM student_fee_summary fs
			  LEFT JOIN courses c ON fs.course_id = c.id
			  WHERE fs.student_id = $1
			  ORDER BY fs.created_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.FeeSummary
	for rows.Next() {
		fs := &models.FeeSummary{}
		var courseID, courseName *string
		err := rows.Scan(
			&fs.ID, &fs.StudentID, &fs.CourseID, &fs.YearNumber,
			&fs.TotalFees, &fs.Discount, &fs.FinalFees,
			&fs.Status, &fs.CreatedAt, &courseID, &courseName,
		)
		if err != nil {
			return nil, err
		}
		if courseID != nil {
			fs.Course = &models.Course{ID: *courseID, Name: *courseName}
		}
		summaries = append(summaries, fs)
	}
	return summaries, rows.Err()
}

// FindFeeSummary locates the ledger header for one (student, course, year).
func FindFeeSummary(db *sql.DB, studentID, courseID string, yearNumber int) (*models.FeeSummary, error) {
	fs := &models.FeeSummary{}
	query := `SELECT id, student_id, course_id, year_number,
			  COALESCE(total_fees, 0), COALESCE(discount, 0), COALESCE(final_fees, 0), status, created_at
			  FROM student_fee_summary
			  WHERE student_id = $1 AND course_id = $2 AND year_number = $3
			  LIMIT 1`
	err := db.QueryRow(query, studentID, courseID, yearNumber).Scan(
		&fs.ID, &fs.StudentID, &fs.CourseID, &fs.YearNumber,
		&fs.TotalFees, &fs.Discount, &fs.FinalFees, &fs.Status, &fs.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// GetInstallmentsBySummary lists a summary's installments for the payment
// drawer.
func GetInstallmentsBySummary(db *sql.DB, summaryID string) ([]*models.Installment, error) {
	query := `SELECT id, fee_summary_id, COALESCE(installment_number, 0), COALESCE(installment_amount, 0),
			  due_date, academic_year, payment_status, receipt_id, created_at
			  FROM student_installments
			  WHERE fee_summary_id = $1
			  ORDER BY installment_number`

	rows, err := db.Query(query, summaryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var installments []*models.Installment
	for rows.Next() {
		i := &models.Installment{}
		err := rows.Scan(
			&i.ID, &i.FeeSummaryID, &i.InstallmentNumber, &i.InstallmentAmount,
			&i.DueDate, &i.AcademicYear, &i.PaymentStatus, &i.ReceiptID, &i.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		installments = append(installments, i)
	}
	return installments, rows.Err()
}

// GetHistorySummaries fetches one student's summaries with installments and
// receipts for the payment history reconstructor.
func GetHistorySummaries(db *sql.DB, studentID string) ([]ledger.HistorySummary, error) {
	query := `SELECT fs.id, fs.status, c.name, fs.year_number,
			  COALESCE(i.installment_number, 0), i.payment_status,
			  r.id, r.payee, r.amount, r.payment_date
			  FROM student_fee_summary fs
			  LEFT JOIN courses c ON fs.course_id = c.id
			  LEFT JOIN student_installments i ON i.fee_summary_id = fs.id
			  LEFT JOIN receipts r ON i.receipt_id = r.id
			  WHERE fs.student_id = $1
			  ORDER BY fs.created_at, i.installment_number`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*ledger.HistorySummary)
	var order []string
	for rows.Next() {
		var summaryID string
		var status models.FeeStatus
		var courseName *string
		var yearNumber *int
		var number int
		var instStatus sql.NullString
		var receiptID sql.NullString
		var payee *string
		var amount *float64
		var paymentDate sql.NullTime

		err := rows.Scan(&summaryID, &status, &courseName, &yearNumber,
			&number, &instStatus, &receiptID, &payee, &amount, &paymentDate)
		if err != nil {
			return nil, err
		}

		summary, ok := byID[summaryID]
		if !ok {
			summary = &ledger.HistorySummary{
				Status:     status,
				CourseName: courseName,
				YearNumber: yearNumber,
			}
			byID[summaryID] = summary
			order = append(order, summaryID)
		}
		if !instStatus.Valid {
			continue // summary with no installments
		}
		inst := ledger.HistoryInstallment{
			Number: number,
			Status: models.PaymentStatus(instStatus.String),
		}
		if receiptID.Valid {
			receipt := &ledger.HistoryReceipt{ID: receiptID.String, Payee: payee, Amount: amount}
			if paymentDate.Valid {
				t := paymentDate.Time
				receipt.PaymentDate = &t
			}
			inst.Receipt = receipt
		}
		summary.Installments = append(summary.Installments, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summaries := make([]ledger.HistorySummary, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, *byID[id])
	}
	return summaries, nil
}

// GetRegistrationPayment fetches the student's paid registration fee with
// its receipt, or nil when unpaid or absent.
func GetRegistrationPayment(db *sql.DB, studentID string) (*ledger.RegistrationPayment, error) {
	query := `SELECT rf.registration_fee, r.id, r.payee, r.amount, r.payment_date
			  FROM student_registration_fees rf
			  JOIN receipts r ON rf.receipt_id = r.id
			  WHERE rf.student_id = $1 AND rf.is_paid = true
			  LIMIT 1`

	var reg ledger.RegistrationPayment
	receipt := &ledger.HistoryReceipt{}
	var paymentDate sql.NullTime
	err := db.QueryRow(query, studentID).Scan(
		&reg.Amount, &receipt.ID, &receipt.Payee, &receipt.Amount, &paymentDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if paymentDate.Valid {
		t := paymentDate.Time
		receipt.PaymentDate = &t
	}
	reg.Receipt = receipt
	return &reg, nil
}

// GetRegistrationFeeByStudent returns the student's registration fee record.
func GetRegistrationFeeByStudent(db *sql.DB, studentID string) (*models.RegistrationFee, error) {
	rf := &models.RegistrationFee{}
	query := `SELECT id, student_id, COALESCE(registration_fee, 0), COALESCE(is_paid, false), receipt_id, created_at
			  FROM student_registration_fees WHERE student_id = $1 LIMIT 1`
	err := db.QueryRow(query, studentID).Scan(
		&rf.ID, &rf.StudentID, &rf.Amount, &rf.IsPaid, &rf.ReceiptID, &rf.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rf, nil
}

// ScheduleEntry is one row of a student's due-date-ordered payment schedule,
// mixing installments and the registration fee.
type ScheduleEntry struct {
	DueDate       *time.Time `json:"due_date"`
	FeeType       string     `json:"fee_type"`
	Description   string     `json:"description"`
	Amount        float64    `json:"amount"`
	ReceiptID     *string    `json:"receipt_id,omitempty"`
	PaymentStatus string     `json:"payment_status"`
}

// GetPaymentSchedule returns the student's full schedule ordered by due
// date. Registration fees have no due date; their creation date stands in.
func GetPaymentSchedule(db *sql.DB, studentID string) ([]ScheduleEntry, error) {
	query := `
		SELECT i.due_date, 'Course' AS fee_type,
			   COALESCE(c.name, '-') || ' - Year ' || COALESCE(fs.year_number::TEXT, '-') ||
			   ' (Installment #' || COALESCE(i.installment_number::TEXT, '-') || ')' AS description,
			   COALESCE(i.installment_amount, 0) AS amount,
			   i.receipt_id, COALESCE(i.payment_status::TEXT, 'Pending') AS payment_status
		FROM student_installments i
		JOIN student_fee_summary fs ON i.fee_summary_id = fs.id
		LEFT JOIN courses c ON fs.course_id = c.id
		WHERE fs.student_id = $1 AND fs.status = 'Active'
		UNION ALL
		SELECT rf.created_at::DATE, 'Registration', 'Registration Fee',
			   COALESCE(rf.registration_fee, 0), rf.receipt_id,
			   CASE WHEN rf.is_paid THEN 'Completed' ELSE 'Pending' END
		FROM student_registration_fees rf
		WHERE rf.student_id = $1
		ORDER BY due_date`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ScheduleEntry
	for rows.Next() {
		var e ScheduleEntry
		if err := rows.Scan(&e.DueDate, &e.FeeType, &e.Description, &e.Amount, &e.ReceiptID, &e.PaymentStatus); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
