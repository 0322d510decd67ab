package database

import (
	"database/sql"
	"log"
)

// RunMigrations applies the schema idempotently on startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createEnums(db); err != nil {
		return err
	}
	if err := createTables(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createEnums(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'gender') THEN
				CREATE TYPE gender AS ENUM ('Male', 'Female');
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'days') THEN
				CREATE TYPE days AS ENUM ('Monday', 'Tuesday', 'Wednesday', 'Thursday', 'Friday', 'Saturday', 'Sunday');
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'enrollment_status') THEN
				CREATE TYPE enrollment_status AS ENUM ('Enrolled', 'Completed', 'Dropped');
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'fee_status') THEN
				CREATE TYPE fee_status AS ENUM ('Active', 'Cancelled');
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'payment_status') THEN
				CREATE TYPE payment_status AS ENUM ('Pending', 'Completed');
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'payment_type') THEN
				CREATE TYPE payment_type AS ENUM ('Cash', 'Cheque', 'UPI');
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'relation') THEN
				CREATE TYPE relation AS ENUM ('Self', 'Father', 'Mother', 'Guardian');
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create enum types: %v", err)
		return err
	}
	return nil
}

func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			avatar_url TEXT,
			role_id UUID REFERENCES roles(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS addresses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			line_1 TEXT NOT NULL,
			line_2 TEXT,
			unit TEXT,
			city VARCHAR(100) NOT NULL,
			state VARCHAR(100) NOT NULL,
			country VARCHAR(100) NOT NULL,
			zipcode VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS contacts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			contact_name VARCHAR(255) NOT NULL,
			phone VARCHAR(20) NOT NULL,
			email VARCHAR(255),
			whatsapp_num VARCHAR(20),
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			gr_no BIGSERIAL,
			first_name VARCHAR(100) NOT NULL,
			middle_name VARCHAR(100),
			last_name VARCHAR(100) NOT NULL,
			gender gender NOT NULL,
			date_of_birth DATE NOT NULL,
			admission_date DATE NOT NULL DEFAULT CURRENT_DATE,
			avatar_url TEXT,
			form_url TEXT,
			address_id UUID REFERENCES addresses(id),
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS students_contacts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			contact_id UUID NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
			relationship relation,
			occupation TEXT,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS courses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			duration_years INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS fee_structures (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			course_id UUID REFERENCES courses(id) ON DELETE CASCADE,
			year_number INT,
			total_fee NUMERIC(12,2),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (course_id, year_number)
		)`,

		`CREATE TABLE IF NOT EXISTS batches (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			academic_year INT,
			start_date DATE,
			end_date DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS batch_year_courses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			batch_id UUID REFERENCES batches(id) ON DELETE CASCADE,
			course_id UUID REFERENCES courses(id) ON DELETE CASCADE,
			year_number INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS batch_schedules (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			batch_id UUID NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
			day_of_week days NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS enrollments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID REFERENCES students(id) ON DELETE CASCADE,
			course_id UUID REFERENCES courses(id),
			batch_id UUID REFERENCES batches(id),
			current_year INT,
			enrollment_date DATE,
			completion_date DATE,
			status enrollment_status DEFAULT 'Enrolled',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS receipts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			receipt_number BIGSERIAL,
			payee VARCHAR(255),
			amount NUMERIC(12,2),
			payment_date DATE,
			payment_method payment_type,
			reference_number VARCHAR(100),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS student_fee_summary (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID REFERENCES students(id) ON DELETE CASCADE,
			course_id UUID REFERENCES courses(id),
			year_number INT,
			total_fees NUMERIC(12,2) DEFAULT 0,
			discount NUMERIC(12,2) DEFAULT 0,
			final_fees NUMERIC(12,2) DEFAULT 0,
			status fee_status DEFAULT 'Active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CHECK (final_fees >= 0)
		)`,

		`CREATE TABLE IF NOT EXISTS student_installments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			fee_summary_id UUID REFERENCES student_fee_summary(id) ON DELETE CASCADE,
			installment_number INT,
			installment_amount NUMERIC(12,2),
			due_date DATE,
			academic_year INT,
			payment_status payment_status DEFAULT 'Pending',
			receipt_id UUID REFERENCES receipts(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS student_registration_fees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID REFERENCES students(id) ON DELETE CASCADE,
			registration_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			is_paid BOOLEAN DEFAULT false,
			receipt_id UUID REFERENCES receipts(id),
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}
	return nil
}
