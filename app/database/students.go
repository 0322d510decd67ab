package database

import (
	"database/sql"
	"fmt"

	"swaram-cms/app/models"
)

// StudentFilters represents filtering options for the students listing.
type StudentFilters struct {
	Search    string
	Gender    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, gr_no, first_name, middle_name, last_name, gender,
			  date_of_birth, admission_date, avatar_url, form_url, address_id, created_at
			  FROM students ORDER BY gr_no`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

func GetStudentsWithFilters(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	where := "WHERE 1=1"
	var args []interface{}
	argIndex := 1

	if filters.Search != "" {
		where += fmt.Sprintf(` AND (first_name ILIKE $%d OR last_name ILIKE $%d OR CAST(gr_no AS TEXT) = $%d)`,
			argIndex, argIndex, argIndex+1)
		args = append(args, "%"+filters.Search+"%", filters.Search)
		argIndex += 2
	}
	if filters.Gender != "" {
		where += fmt.Sprintf(" AND gender = $%d", argIndex)
		args = append(args, filters.Gender)
		argIndex++
	}

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM students "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := "gr_no"
	switch filters.SortBy {
	case "name":
		orderBy = "first_name"
	case "admission_date":
		orderBy = "admission_date"
	}
	if filters.SortOrder == "desc" {
		orderBy += " DESC"
	}

	query := fmt.Sprintf(`SELECT id, gr_no, first_name, middle_name, last_name, gender,
			  date_of_birth, admission_date, avatar_url, form_url, address_id, created_at
			  FROM students %s ORDER BY %s`, where, orderBy)

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students, err := scanStudents(rows)
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func scanStudents(rows *sql.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		err := rows.Scan(
			&s.ID, &s.GrNo, &s.FirstName, &s.MiddleName, &s.LastName, &s.Gender,
			&s.DateOfBirth, &s.AdmissionDate, &s.AvatarURL, &s.FormURL, &s.AddressID, &s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID loads one student with address, contacts, fee summaries
// and enrollments for the detail view.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, gr_no, first_name, middle_name, last_name, gender,
			  date_of_birth, admission_date, avatar_url, form_url, address_id, created_at
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.GrNo, &s.FirstName, &s.MiddleName, &s.LastName, &s.Gender,
		&s.DateOfBirth, &s.AdmissionDate, &s.AvatarURL, &s.FormURL, &s.AddressID, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if s.AddressID != nil {
		if addr, err := GetAddressByID(db, *s.AddressID); err == nil {
			s.Address = addr
		}
	}
	if contacts, err := GetStudentContacts(db, id); err == nil {
		s.Contacts = contacts
	}
	if summaries, err := GetFeeSummariesByStudent(db, id); err == nil {
		s.FeeSummaries = summaries
	}
	if enrollments, err := GetEnrollmentsByStudent(db, id); err == nil {
		s.Enrollments = enrollments
	}
	return s, nil
}

// CreateStudent inserts the address, the student and its registration fee
// in a single transaction.
func CreateStudent(db *sql.DB, student *models.Student, address *models.Address, registrationFee float64) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if address != nil {
		err = tx.QueryRow(
			`INSERT INTO addresses (line_1, line_2, unit, city, state, country, zipcode)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			address.Line1, address.Line2, address.Unit, address.City,
			address.State, address.Country, address.Zipcode,
		).Scan(&address.ID)
		if err != nil {
			return fmt.Errorf("failed to insert address: %v", err)
		}
		student.AddressID = &address.ID
	}

	err = tx.QueryRow(
		`INSERT INTO students (first_name, middle_name, last_name, gender, date_of_birth, admission_date, avatar_url, address_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, gr_no, created_at`,
		student.FirstName, student.MiddleName, student.LastName, student.Gender,
		student.DateOfBirth, student.AdmissionDate, student.AvatarURL, student.AddressID,
	).Scan(&student.ID, &student.GrNo, &student.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert student: %v", err)
	}

	_, err = tx.Exec(
		`INSERT INTO student_registration_fees (student_id, registration_fee) VALUES ($1, $2)`,
		student.ID, registrationFee,
	)
	if err != nil {
		return fmt.Errorf("failed to insert registration fee: %v", err)
	}

	return tx.Commit()
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students SET first_name = $1, middle_name = $2, last_name = $3,
			  gender = $4, date_of_birth = $5, admission_date = $6, avatar_url = $7, form_url = $8
			  WHERE id = $9`
	_, err := db.Exec(query,
		student.FirstName, student.MiddleName, student.LastName, student.Gender,
		student.DateOfBirth, student.AdmissionDate, student.AvatarURL, student.FormURL, student.ID,
	)
	return err
}

// DeleteStudent removes a student; fee rows cascade. The caller removes the
// avatar object afterwards.
func DeleteStudent(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	return err
}

func GetAddressByID(db *sql.DB, id string) (*models.Address, error) {
	a := &models.Address{}
	query := `SELECT id, line_1, line_2, unit, city, state, country, zipcode, created_at
			  FROM addresses WHERE id = $1`
	err := db.QueryRow(query, id).Scan(
		&a.ID, &a.Line1, &a.Line2, &a.Unit, &a.City, &a.State, &a.Country, &a.Zipcode, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func UpsertAddress(db *sql.DB, address *models.Address) error {
	if address.ID == "" {
		return db.QueryRow(
			`INSERT INTO addresses (line_1, line_2, unit, city, state, country, zipcode)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			address.Line1, address.Line2, address.Unit, address.City,
			address.State, address.Country, address.Zipcode,
		).Scan(&address.ID)
	}
	_, err := db.Exec(
		`UPDATE addresses SET line_1 = $1, line_2 = $2, unit = $3, city = $4,
		 state = $5, country = $6, zipcode = $7 WHERE id = $8`,
		address.Line1, address.Line2, address.Unit, address.City,
		address.State, address.Country, address.Zipcode, address.ID,
	)
	return err
}

func GetStudentContacts(db *sql.DB, studentID string) ([]*models.StudentContact, error) {
	query := `SELECT sc.id, sc.student_id, sc.contact_id, sc.relationship, sc.occupation, sc.created_at,
			  c.id, c.contact_name, c.phone, c.email, c.whatsapp_num, c.created_at
			  FROM students_contacts sc
			  JOIN contacts c ON sc.contact_id = c.id
			  WHERE sc.student_id = $1
			  ORDER BY sc.created_at`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*models.StudentContact
	for rows.Next() {
		link := &models.StudentContact{Contact: &models.Contact{}}
		err := rows.Scan(
			&link.ID, &link.StudentID, &link.ContactID, &link.Relationship, &link.Occupation, &link.CreatedAt,
			&link.Contact.ID, &link.Contact.ContactName, &link.Contact.Phone,
			&link.Contact.Email, &link.Contact.WhatsappNum, &link.Contact.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// LinkStudentContact creates the contact and its link row in one transaction.
func LinkStudentContact(db *sql.DB, studentID string, contact *models.Contact, relationship *models.Relation, occupation *string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO contacts (contact_name, phone, email, whatsapp_num)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		contact.ContactName, contact.Phone, contact.Email, contact.WhatsappNum,
	).Scan(&contact.ID)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %v", err)
	}

	_, err = tx.Exec(
		`INSERT INTO students_contacts (student_id, contact_id, relationship, occupation)
		 VALUES ($1, $2, $3, $4)`,
		studentID, contact.ID, relationship, occupation,
	)
	if err != nil {
		return fmt.Errorf("failed to link contact: %v", err)
	}

	return tx.Commit()
}

func UnlinkStudentContact(db *sql.DB, linkID string) error {
	_, err := db.Exec(`DELETE FROM students_contacts WHERE id = $1`, linkID)
	return err
}
