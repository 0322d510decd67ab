package database

import (
	"database/sql"

	"swaram-cms/app/models"
)

func GetAllCourses(db *sql.DB) ([]*models.Course, error) {
	query := `SELECT id, name, description, duration_years, created_at FROM courses ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		c := &models.Course{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.DurationYears, &c.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// GetCourseByID loads a course with its fee structures.
func GetCourseByID(db *sql.DB, id string) (*models.Course, error) {
	c := &models.Course{}
	query := `SELECT id, name, description, duration_years, created_at FROM courses WHERE id = $1`
	if err := db.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Description, &c.DurationYears, &c.CreatedAt); err != nil {
		return nil, err
	}

	feeQuery := `SELECT id, course_id, year_number, total_fee, created_at
				 FROM fee_structures WHERE course_id = $1 ORDER BY year_number`
	rows, err := db.Query(feeQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		f := &models.FeeStructure{}
		if err := rows.Scan(&f.ID, &f.CourseID, &f.YearNumber, &f.TotalFee, &f.CreatedAt); err != nil {
			return nil, err
		}
		c.FeeStructures = append(c.FeeStructures, f)
	}
	return c, rows.Err()
}

func CreateCourse(db *sql.DB, course *models.Course) error {
	query := `INSERT INTO courses (name, description, duration_years)
			  VALUES ($1, $2, $3) RETURNING id, created_at`
	return db.QueryRow(query, course.Name, course.Description, course.DurationYears).
		Scan(&course.ID, &course.CreatedAt)
}

func UpdateCourse(db *sql.DB, course *models.Course) error {
	query := `UPDATE courses SET name = $1, description = $2, duration_years = $3 WHERE id = $4`
	_, err := db.Exec(query, course.Name, course.Description, course.DurationYears, course.ID)
	return err
}

func DeleteCourse(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM courses WHERE id = $1`, id)
	return err
}

// UpsertFeeStructures replaces the yearly fees of a course in one
// transaction, keyed on (course_id, year_number).
func UpsertFeeStructures(db *sql.DB, courseID string, structures []*models.FeeStructure) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO fee_structures (course_id, year_number, total_fee)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (course_id, year_number)
			  DO UPDATE SET total_fee = EXCLUDED.total_fee`
	for _, f := range structures {
		if _, err := tx.Exec(query, courseID, f.YearNumber, f.TotalFee); err != nil {
			return err
		}
	}

	return tx.Commit()
}
