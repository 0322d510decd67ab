package database

import (
	"database/sql"
	"fmt"

	"swaram-cms/app/models"
)

func GetBatchesByAcademicYear(db *sql.DB, academicYear int) ([]*models.Batch, error) {
	query := `SELECT id, name, description, academic_year, start_date, end_date, created_at
			  FROM batches WHERE academic_year = $1 ORDER BY name`

	rows, err := db.Query(query, academicYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []*models.Batch
	for rows.Next() {
		b := &models.Batch{}
		err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.AcademicYear, &b.StartDate, &b.EndDate, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// GetBatchByID loads a batch with its year-course assignments and weekly
// schedule slots.
func GetBatchByID(db *sql.DB, id string) (*models.Batch, error) {
	b := &models.Batch{}
	query := `SELECT id, name, description, academic_year, start_date, end_date, created_at
			  FROM batches WHERE id = $1`
	err := db.QueryRow(query, id).Scan(
		&b.ID, &b.Name, &b.Description, &b.AcademicYear, &b.StartDate, &b.EndDate, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	courseQuery := `SELECT byc.id, byc.batch_id, byc.course_id, byc.year_number, byc.created_at,
					c.id, c.name, c.description, c.duration_years, c.created_at
					FROM batch_year_courses byc
					LEFT JOIN courses c ON byc.course_id = c.id
					WHERE byc.batch_id = $1
					ORDER BY c.name, byc.year_number`
	rows, err := db.Query(courseQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		yc := &models.BatchYearCourse{}
		var courseID, courseName, courseDesc *string
		var durationYears *int
		var courseCreated sql.NullTime
		err := rows.Scan(
			&yc.ID, &yc.BatchID, &yc.CourseID, &yc.YearNumber, &yc.CreatedAt,
			&courseID, &courseName, &courseDesc, &durationYears, &courseCreated,
		)
		if err != nil {
			return nil, err
		}
		if courseID != nil {
			yc.Course = &models.Course{
				ID:          *courseID,
				Name:        *courseName,
				Description: courseDesc,
			}
			if durationYears != nil {
				yc.Course.DurationYears = *durationYears
			}
			if courseCreated.Valid {
				yc.Course.CreatedAt = courseCreated.Time
			}
		}
		b.YearCourses = append(b.YearCourses, yc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	schedules, err := getBatchSchedules(db, id)
	if err != nil {
		return nil, err
	}
	b.Schedules = schedules
	return b, nil
}

func getBatchSchedules(db *sql.DB, batchID string) ([]*models.BatchSchedule, error) {
	query := `SELECT id, batch_id, day_of_week, start_time, end_time
			  FROM batch_schedules WHERE batch_id = $1
			  ORDER BY array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday']::days[], day_of_week), start_time`

	rows, err := db.Query(query, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.BatchSchedule
	for rows.Next() {
		s := &models.BatchSchedule{}
		if err := rows.Scan(&s.ID, &s.BatchID, &s.DayOfWeek, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// CreateBatchWithDetails inserts the batch, its year-course assignments and
// its schedule slots in one transaction, so a child failure never leaves an
// orphaned batch behind.
func CreateBatchWithDetails(db *sql.DB, batch *models.Batch, yearCourses []*models.BatchYearCourse, schedules []*models.BatchSchedule) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO batches (name, description, academic_year, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		batch.Name, batch.Description, batch.AcademicYear, batch.StartDate, batch.EndDate,
	).Scan(&batch.ID, &batch.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert batch: %v", err)
	}

	for _, yc := range yearCourses {
		_, err := tx.Exec(
			`INSERT INTO batch_year_courses (batch_id, course_id, year_number) VALUES ($1, $2, $3)`,
			batch.ID, yc.CourseID, yc.YearNumber,
		)
		if err != nil {
			return fmt.Errorf("failed to insert batch course: %v", err)
		}
	}

	for _, s := range schedules {
		_, err := tx.Exec(
			`INSERT INTO batch_schedules (batch_id, day_of_week, start_time, end_time) VALUES ($1, $2, $3, $4)`,
			batch.ID, s.DayOfWeek, s.StartTime, s.EndTime,
		)
		if err != nil {
			return fmt.Errorf("failed to insert batch schedule: %v", err)
		}
	}

	return tx.Commit()
}

func UpdateBatch(db *sql.DB, batch *models.Batch) error {
	query := `UPDATE batches SET name = $1, description = $2, academic_year = $3,
			  start_date = $4, end_date = $5 WHERE id = $6`
	_, err := db.Exec(query, batch.Name, batch.Description, batch.AcademicYear,
		batch.StartDate, batch.EndDate, batch.ID)
	return err
}

// ReplaceBatchYearCourses swaps the batch's course assignments atomically.
func ReplaceBatchYearCourses(db *sql.DB, batchID string, yearCourses []*models.BatchYearCourse) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM batch_year_courses WHERE batch_id = $1`, batchID); err != nil {
		return err
	}
	for _, yc := range yearCourses {
		_, err := tx.Exec(
			`INSERT INTO batch_year_courses (batch_id, course_id, year_number) VALUES ($1, $2, $3)`,
			batchID, yc.CourseID, yc.YearNumber,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ReplaceBatchSchedules swaps the batch's weekly slots atomically.
func ReplaceBatchSchedules(db *sql.DB, batchID string, schedules []*models.BatchSchedule) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM batch_schedules WHERE batch_id = $1`, batchID); err != nil {
		return err
	}
	for _, s := range schedules {
		_, err := tx.Exec(
			`INSERT INTO batch_schedules (batch_id, day_of_week, start_time, end_time) VALUES ($1, $2, $3, $4)`,
			batchID, s.DayOfWeek, s.StartTime, s.EndTime,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func DeleteBatch(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM batches WHERE id = $1`, id)
	return err
}
