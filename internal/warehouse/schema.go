package warehouse

import (
	"context"
	"fmt"
)

// schemaDDL creates the relational tables in dependency order. Foreign
// keys mirror the generator's reference structure, so a load of a
// consistent dataset never trips a constraint.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS faculties (
    id BIGINT PRIMARY KEY,
    code VARCHAR(10) NOT NULL,
    name VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS programs (
    id BIGINT PRIMARY KEY,
    code VARCHAR(20) NOT NULL,
    name VARCHAR(255) NOT NULL,
    faculty_id BIGINT NOT NULL REFERENCES faculties(id)
);

CREATE TABLE IF NOT EXISTS lecturers (
    id BIGINT PRIMARY KEY,
    employee_number VARCHAR(30) NOT NULL,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL,
    faculty_id BIGINT NOT NULL REFERENCES faculties(id)
);

CREATE TABLE IF NOT EXISTS students (
    id BIGINT PRIMARY KEY,
    student_number VARCHAR(10) NOT NULL,
    username VARCHAR(100) NOT NULL,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL,
    enrollment_date DATE NOT NULL,
    program_id BIGINT NOT NULL REFERENCES programs(id),
    is_active BOOLEAN NOT NULL
);

CREATE TABLE IF NOT EXISTS rooms (
    id BIGINT PRIMARY KEY,
    room_number VARCHAR(20) NOT NULL,
    building VARCHAR(255) NOT NULL,
    capacity INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS courses (
    id BIGINT PRIMARY KEY,
    code VARCHAR(20) NOT NULL,
    name VARCHAR(255) NOT NULL,
    credits INTEGER NOT NULL,
    program_id BIGINT NOT NULL REFERENCES programs(id)
);

CREATE TABLE IF NOT EXISTS semesters (
    id BIGINT PRIMARY KEY,
    code VARCHAR(20) NOT NULL,
    name VARCHAR(100) NOT NULL,
    start_date DATE NOT NULL,
    end_date DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS class_schedules (
    id BIGINT PRIMARY KEY,
    schedule_id UUID NOT NULL,
    course_id BIGINT NOT NULL REFERENCES courses(id),
    lecturer_id BIGINT NOT NULL REFERENCES lecturers(id),
    room_id BIGINT NOT NULL REFERENCES rooms(id),
    semester_id BIGINT NOT NULL REFERENCES semesters(id),
    day_of_week VARCHAR(10) NOT NULL,
    start_time TIME NOT NULL,
    end_time TIME NOT NULL
);

CREATE TABLE IF NOT EXISTS registrations (
    id BIGINT PRIMARY KEY,
    registration_id UUID NOT NULL,
    student_id BIGINT NOT NULL REFERENCES students(id),
    course_id BIGINT NOT NULL REFERENCES courses(id),
    semester_id BIGINT NOT NULL REFERENCES semesters(id),
    registered_at TIMESTAMP NOT NULL,
    UNIQUE (student_id, course_id, semester_id)
);

CREATE TABLE IF NOT EXISTS grades (
    id BIGINT PRIMARY KEY,
    registration_id BIGINT NOT NULL REFERENCES registrations(id),
    numeric_grade NUMERIC(5,2) NOT NULL,
    letter_grade VARCHAR(2) NOT NULL
);

CREATE TABLE IF NOT EXISTS semester_fees (
    id BIGINT PRIMARY KEY,
    student_id BIGINT NOT NULL REFERENCES students(id),
    semester_id BIGINT NOT NULL REFERENCES semesters(id),
    fee_amount BIGINT NOT NULL,
    payment_date DATE
);

CREATE TABLE IF NOT EXISTS academic_records (
    id BIGINT PRIMARY KEY,
    student_id BIGINT NOT NULL REFERENCES students(id),
    semester_id BIGINT NOT NULL REFERENCES semesters(id),
    semester_gpa NUMERIC(4,2) NOT NULL,
    cumulative_gpa NUMERIC(4,2) NOT NULL,
    semester_credits INTEGER NOT NULL,
    credits_passed INTEGER NOT NULL,
    total_credits INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS attendance (
    id BIGINT PRIMARY KEY,
    student_id BIGINT NOT NULL REFERENCES students(id),
    course_id BIGINT NOT NULL REFERENCES courses(id),
    class_schedule_id BIGINT NOT NULL REFERENCES class_schedules(id),
    meeting_date DATE NOT NULL,
    check_in_time TIME NOT NULL
);
`

// CreateSchema creates all relational tables.
func (db *PostgresDB) CreateSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// DropSchema removes every pipeline table, star schema included, so a
// run can start from a clean database.
func (db *PostgresDB) DropSchema(ctx context.Context) error {
	tables := []string{
		"fact_room_usage", "fact_teaching", "fact_grade", "fact_academic",
		"fact_fee", "fact_registration",
		"dim_room", "dim_class", "dim_semester", "dim_lecturer",
		"dim_course", "dim_student",
		"attendance", "academic_records", "semester_fees", "grades",
		"registrations", "class_schedules", "semesters", "courses",
		"rooms", "students", "lecturers", "programs", "faculties",
	}
	for _, table := range tables {
		if _, err := db.Pool.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
