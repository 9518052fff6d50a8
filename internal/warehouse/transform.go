package warehouse

import (
	"context"
	"fmt"

	"github.com/prasetya/siaklake/internal/pkg/logger"
)

// starStatements rebuilds the star schema from the relational tables.
// Dimensions denormalize the reference hierarchy; facts re-key the
// activity tables onto dimension ids. Ordered so every statement only
// reads tables that already exist.
var starStatements = []struct {
	table string
	sql   string
}{
	{"dim_student", `
		CREATE TABLE dim_student AS
		SELECT
			s.id AS student_id,
			s.student_number,
			s.name,
			s.email,
			s.enrollment_date,
			s.is_active,
			p.code AS program_code,
			p.name AS program_name,
			f.code AS faculty_code,
			f.name AS faculty_name
		FROM students s
		JOIN programs p ON s.program_id = p.id
		JOIN faculties f ON p.faculty_id = f.id`},

	{"dim_course", `
		CREATE TABLE dim_course AS
		SELECT
			c.id AS course_id,
			c.code AS course_code,
			c.name AS course_name,
			c.credits,
			p.code AS program_code,
			p.name AS program_name,
			f.code AS faculty_code,
			f.name AS faculty_name
		FROM courses c
		JOIN programs p ON c.program_id = p.id
		JOIN faculties f ON p.faculty_id = f.id`},

	{"dim_lecturer", `
		CREATE TABLE dim_lecturer AS
		SELECT
			l.id AS lecturer_id,
			l.employee_number,
			l.name,
			l.email,
			f.code AS faculty_code,
			f.name AS faculty_name
		FROM lecturers l
		JOIN faculties f ON l.faculty_id = f.id`},

	{"dim_semester", `
		CREATE TABLE dim_semester AS
		SELECT
			id AS semester_id,
			code AS semester_code,
			start_date,
			end_date,
			CASE
				WHEN POSITION('/' IN code) > 0 THEN SPLIT_PART(code, '/', 2)
				ELSE EXTRACT(YEAR FROM start_date)::VARCHAR || '/' || EXTRACT(YEAR FROM end_date)::VARCHAR
			END AS academic_year
		FROM semesters`},

	{"dim_room", `
		CREATE TABLE dim_room AS
		SELECT
			id AS room_id,
			building,
			capacity
		FROM rooms`},

	{"dim_class", `
		CREATE TABLE dim_class AS
		SELECT
			cs.id AS class_id,
			c.code || '_' || l.name || '_' || s.code AS class_code,
			c.code AS course_code,
			c.name AS course_name,
			l.name AS lecturer_name,
			cs.day_of_week,
			cs.start_time::VARCHAR AS start_time,
			cs.end_time::VARCHAR AS end_time,
			s.code AS semester_code,
			CASE
				WHEN POSITION('/' IN s.code) > 0 THEN SPLIT_PART(s.code, '/', 2)
				ELSE EXTRACT(YEAR FROM s.start_date)::VARCHAR || '/' || EXTRACT(YEAR FROM s.end_date)::VARCHAR
			END AS academic_year
		FROM class_schedules cs
		JOIN courses c ON cs.course_id = c.id
		JOIN lecturers l ON cs.lecturer_id = l.id
		JOIN semesters s ON cs.semester_id = s.id`},

	{"fact_registration", `
		CREATE TABLE fact_registration AS
		SELECT
			r.id AS registration_id,
			r.student_id,
			r.course_id,
			r.semester_id,
			r.registered_at AS registration_date
		FROM registrations r`},

	{"fact_fee", `
		CREATE TABLE fact_fee AS
		SELECT
			sf.id AS fee_id,
			sf.student_id,
			sf.semester_id,
			sf.fee_amount,
			sf.payment_date
		FROM semester_fees sf`},

	{"fact_academic", `
		CREATE TABLE fact_academic AS
		SELECT
			ar.id AS academic_id,
			ar.student_id,
			ar.semester_id,
			ar.semester_gpa,
			ar.cumulative_gpa,
			ar.semester_credits,
			ar.credits_passed,
			ar.total_credits
		FROM academic_records ar`},

	{"fact_grade", `
		CREATE TABLE fact_grade AS
		SELECT
			g.id AS grade_id,
			r.student_id,
			r.course_id,
			r.semester_id,
			g.numeric_grade,
			g.letter_grade
		FROM grades g
		JOIN registrations r ON g.registration_id = r.id`},

	// Teaching load and occupancy have no upstream source table, so
	// these two facts synthesize their measures at transform time.
	{"fact_teaching", `
		CREATE TABLE fact_teaching AS
		SELECT
			cs.id AS teaching_id,
			cs.lecturer_id,
			cs.course_id,
			cs.semester_id,
			cs.id AS class_id,
			cs.room_id,
			(FLOOR(RANDOM() * 31) + 15)::INTEGER AS total_students,
			(FLOOR(RANDOM() * 3) + 14)::INTEGER AS total_sessions,
			FLOOR(RANDOM() * 17)::INTEGER AS sessions_completed,
			ROUND((RANDOM() * 2.0 + 2.0)::NUMERIC, 1) AS teaching_hours
		FROM class_schedules cs`},

	{"fact_room_usage", `
		CREATE TABLE fact_room_usage AS
		SELECT
			cs.id AS usage_id,
			cs.room_id,
			cs.id AS class_id,
			cs.semester_id,
			(CURRENT_DATE - (FLOOR(RANDOM() * 91)::INTEGER))::DATE AS usage_date,
			cs.start_time::VARCHAR AS start_time,
			cs.end_time::VARCHAR AS end_time,
			(FLOOR(RANDOM() * 31) + 10)::INTEGER AS actual_occupancy,
			ROUND(((FLOOR(RANDOM() * 31) + 10) / 50.0) * 100, 2) AS utilization_rate
		FROM class_schedules cs`},
}

// StarTableNames lists the star-schema tables in creation order.
func StarTableNames() []string {
	names := make([]string, 0, len(starStatements))
	for _, stmt := range starStatements {
		names = append(names, stmt.table)
	}
	return names
}

// Transform rebuilds the star schema from scratch.
func (db *PostgresDB) Transform(ctx context.Context) error {
	logger.Info().Msg("Starting star schema transform")

	for _, stmt := range starStatements {
		if _, err := db.Pool.Exec(ctx, "DROP TABLE IF EXISTS "+stmt.table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", stmt.table, err)
		}
		if _, err := db.Pool.Exec(ctx, stmt.sql); err != nil {
			return fmt.Errorf("failed to build %s: %w", stmt.table, err)
		}
		logger.Info().Str("table", stmt.table).Msg("Built star table")
	}

	logger.Info().Msg("Star schema transform completed")
	return nil
}
