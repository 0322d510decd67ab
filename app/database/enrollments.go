package database

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"swaram-cms/app/models"
	"swaram-cms/app/utils"
)

// installmentsPerYear is how many scheduled payments a year's course fee is
// split into.
const installmentsPerYear = 4

func GetEnrollmentsByStudent(db *sql.DB, studentID string) ([]*models.Enrollment, error) {
	query := `SELECT e.id, e.student_id, e.course_id, e.batch_id, e.current_year,
			  e.enrollment_date, e.completion_date, e.status, e.created_at,
			  c.id, c.name, c.duration_years,
			  b.id, b.name
			  FROM enrollments e
			  LEFT JOIN courses c ON e.course_id = c.id
			  LEFT JOIN batches b ON e.batch_id = b.id
			  WHERE e.student_id = $1
			  ORDER BY e.created_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		e := &models.Enrollment{}
		var courseID, courseName *string
		var durationYears *int
		var batchID, batchName *string
		err := rows.Scan(
			&e.ID, &e.StudentID, &e.CourseID, &e.BatchID, &e.CurrentYear,
			&e.EnrollmentDate, &e.CompletionDate, &e.Status, &e.CreatedAt,
			&courseID, &courseName, &durationYears,
			&batchID, &batchName,
		)
		if err != nil {
			return nil, err
		}
		if courseID != nil {
			e.Course = &models.Course{ID: *courseID, Name: *courseName}
			if durationYears != nil {
				e.Course.DurationYears = *durationYears
			}
		}
		if batchID != nil {
			e.Batch = &models.Batch{ID: *batchID, Name: *batchName}
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// CreateEnrollment inserts the enrollment and generates its fee summary and
// installment schedule in one transaction. The year's fee comes from the
// course's fee structure; a course year without a structure enrolls with a
// zero-fee summary.
func CreateEnrollment(db *sql.DB, enrollment *models.Enrollment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO enrollments (student_id, course_id, batch_id, current_year, enrollment_date, status)
		 VALUES ($1, $2, $3, $4, $5, 'Enrolled') RETURNING id, created_at`,
		enrollment.StudentID, enrollment.CourseID, enrollment.BatchID,
		enrollment.CurrentYear, enrollment.EnrollmentDate,
	).Scan(&enrollment.ID, &enrollment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert enrollment: %v", err)
	}

	if err := createFeeSummary(tx, enrollment); err != nil {
		return err
	}

	return tx.Commit()
}

// createFeeSummary generates the ledger header and installment schedule for
// a new enrollment, inside the caller's transaction.
func createFeeSummary(tx *sql.Tx, enrollment *models.Enrollment) error {
	var totalFee float64
	err := tx.QueryRow(
		`SELECT COALESCE(total_fee, 0) FROM fee_structures WHERE course_id = $1 AND year_number = $2`,
		enrollment.CourseID, enrollment.CurrentYear,
	).Scan(&totalFee)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to look up fee structure: %v", err)
	}

	var summaryID string
	err = tx.QueryRow(
		`INSERT INTO student_fee_summary (student_id, course_id, year_number, total_fees, discount, final_fees, status)
		 VALUES ($1, $2, $3, $4, 0, $4, 'Active') RETURNING id`,
		enrollment.StudentID, enrollment.CourseID, enrollment.CurrentYear, totalFee,
	).Scan(&summaryID)
	if err != nil {
		return fmt.Errorf("failed to insert fee summary: %v", err)
	}

	if totalFee <= 0 {
		return nil
	}

	start := time.Now()
	if enrollment.EnrollmentDate != nil {
		start = *enrollment.EnrollmentDate
	}
	academicYear := utils.AcademicYear(start)

	// Equal quarterly installments due on the 5th; rounding remainder lands
	// on the first installment.
	base := math.Floor(totalFee/installmentsPerYear*100) / 100
	first := totalFee - base*(installmentsPerYear-1)

	for i := 0; i < installmentsPerYear; i++ {
		amount := base
		if i == 0 {
			amount = first
		}
		due := time.Date(start.Year(), start.Month(), 5, 0, 0, 0, 0, time.UTC).AddDate(0, i*3, 0)
		_, err := tx.Exec(
			`INSERT INTO student_installments (fee_summary_id, installment_number, installment_amount, due_date, academic_year, payment_status)
			 VALUES ($1, $2, $3, $4, $5, 'Pending')`,
			summaryID, i+1, amount, due, academicYear,
		)
		if err != nil {
			return fmt.Errorf("failed to insert installment %d: %v", i+1, err)
		}
	}
	return nil
}

func UpdateEnrollment(db *sql.DB, enrollment *models.Enrollment) error {
	query := `UPDATE enrollments SET batch_id = $1, current_year = $2, status = $3, completion_date = $4
			  WHERE id = $5`
	_, err := db.Exec(query, enrollment.BatchID, enrollment.CurrentYear,
		enrollment.Status, enrollment.CompletionDate, enrollment.ID)
	return err
}

func DeleteEnrollment(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM enrollments WHERE id = $1`, id)
	return err
}
