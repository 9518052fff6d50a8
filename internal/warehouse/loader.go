package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/prasetya/siaklake/internal/generator"
	"github.com/prasetya/siaklake/internal/pkg/logger"
)

// LoadDataset bulk-inserts a generated dataset in foreign-key
// dependency order. Each table goes in through COPY inside a single
// transaction, so a failed load leaves the database untouched.
func (db *PostgresDB) LoadDataset(ctx context.Context, ds *generator.Dataset) error {
	return db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, table := range copyTables(ds) {
			count, err := tx.CopyFrom(ctx,
				pgx.Identifier{table.name},
				table.columns,
				pgx.CopyFromRows(table.rows),
			)
			if err != nil {
				return fmt.Errorf("failed to load table %s: %w", table.name, err)
			}
			logger.Info().Str("table", table.name).Int64("rows", count).Msg("Loaded table")
		}
		return nil
	})
}

type copyTable struct {
	name    string
	columns []string
	rows    [][]interface{}
}

func copyTables(ds *generator.Dataset) []copyTable {
	tables := []copyTable{
		facultiesCopy(ds), programsCopy(ds), lecturersCopy(ds),
		studentsCopy(ds), roomsCopy(ds), coursesCopy(ds),
		semestersCopy(ds), classSchedulesCopy(ds), registrationsCopy(ds),
		gradesCopy(ds), semesterFeesCopy(ds), academicRecordsCopy(ds),
	}
	if len(ds.Attendance) > 0 {
		tables = append(tables, attendanceCopy(ds))
	}
	return tables
}

func facultiesCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.Faculties))
	for _, f := range ds.Faculties {
		rows = append(rows, []interface{}{f.ID, f.Code, f.Name})
	}
	return copyTable{"faculties", []string{"id", "code", "name"}, rows}
}

func programsCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.Programs))
	for _, p := range ds.Programs {
		rows = append(rows, []interface{}{p.ID, p.Code, p.Name, p.FacultyID})
	}
	return copyTable{"programs", []string{"id", "code", "name", "faculty_id"}, rows}
}

func lecturersCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.Lecturers))
	for _, l := range ds.Lecturers {
		rows = append(rows, []interface{}{l.ID, l.EmployeeNumber, l.Name, l.Email, l.FacultyID})
	}
	return copyTable{"lecturers", []string{"id", "employee_number", "name", "email", "faculty_id"}, rows}
}

func studentsCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.Students))
	for _, s := range ds.Students {
		rows = append(rows, []interface{}{
			s.ID, s.StudentNumber, s.Username, s.Name, s.Email,
			s.EnrollmentDate, s.ProgramID, s.IsActive,
		})
	}
	return copyTable{
		"students",
		[]string{"id", "student_number", "username", "name", "email", "enrollment_date", "program_id", "is_active"},
		rows,
	}
}

func roomsCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.Rooms))
	for _, r := range ds.Rooms {
		rows = append(rows, []interface{}{r.ID, r.RoomNumber, r.Building, r.Capacity})
	}
	return copyTable{"rooms", []string{"id", "room_number", "building", "capacity"}, rows}
}

func coursesCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.Courses))
	for _, c := range ds.Courses {
		rows = append(rows, []interface{}{c.ID, c.Code, c.Name, c.Credits, c.ProgramID})
	}
	return copyTable{"courses", []string{"id", "code", "name", "credits", "program_id"}, rows}
}

func semestersCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.Semesters))
	for _, s := range ds.Semesters {
		rows = append(rows, []interface{}{s.ID, s.Code, s.Name, s.StartDate, s.EndDate})
	}
	return copyTable{"semesters", []string{"id", "code", "name", "start_date", "end_date"}, rows}
}

func classSchedulesCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.ClassSchedules))
	for _, cs := range ds.ClassSchedules {
		rows = append(rows, []interface{}{
			cs.ID, cs.ScheduleID, cs.CourseID, cs.LecturerID, cs.RoomID,
			cs.SemesterID, cs.DayOfWeek, clockValue(cs.StartTime), clockValue(cs.EndTime),
		})
	}
	return copyTable{
		"class_schedules",
		[]string{"id", "schedule_id", "course_id", "lecturer_id", "room_id", "semester_id", "day_of_week", "start_time", "end_time"},
		rows,
	}
}

func registrationsCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.Registrations))
	for _, r := range ds.Registrations {
		rows = append(rows, []interface{}{
			r.ID, r.RegistrationID, r.StudentID, r.CourseID, r.SemesterID, r.Timestamp,
		})
	}
	return copyTable{
		"registrations",
		[]string{"id", "registration_id", "student_id", "course_id", "semester_id", "registered_at"},
		rows,
	}
}

func gradesCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.Grades))
	for _, g := range ds.Grades {
		rows = append(rows, []interface{}{g.ID, g.RegistrationID, g.NumericGrade, g.LetterGrade})
	}
	return copyTable{"grades", []string{"id", "registration_id", "numeric_grade", "letter_grade"}, rows}
}

func semesterFeesCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.SemesterFees))
	for _, f := range ds.SemesterFees {
		rows = append(rows, []interface{}{f.ID, f.StudentID, f.SemesterID, f.FeeAmount, f.PaymentDate})
	}
	return copyTable{"semester_fees", []string{"id", "student_id", "semester_id", "fee_amount", "payment_date"}, rows}
}

func academicRecordsCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.AcademicRecords))
	for _, r := range ds.AcademicRecords {
		rows = append(rows, []interface{}{
			r.ID, r.StudentID, r.SemesterID, r.SemesterGPA, r.CumulativeGPA,
			r.SemesterCredits, r.CreditsPassed, r.TotalCredits,
		})
	}
	return copyTable{
		"academic_records",
		[]string{"id", "student_id", "semester_id", "semester_gpa", "cumulative_gpa", "semester_credits", "credits_passed", "total_credits"},
		rows,
	}
}

func attendanceCopy(ds *generator.Dataset) copyTable {
	rows := make([][]interface{}, 0, len(ds.Attendance))
	for _, a := range ds.Attendance {
		rows = append(rows, []interface{}{
			a.ID, a.StudentID, a.CourseID, a.ClassScheduleID, a.MeetingDate, clockValue(a.CheckInTime),
		})
	}
	return copyTable{
		"attendance",
		[]string{"id", "student_id", "course_id", "class_schedule_id", "meeting_date", "check_in_time"},
		rows,
	}
}

// clockValue converts an HH:MM:SS clock string into a pgtype.Time so
// COPY can encode it into a TIME column.
func clockValue(clock string) pgtype.Time {
	parsed, err := time.Parse("15:04:05", clock)
	if err != nil {
		return pgtype.Time{}
	}
	micros := int64(parsed.Hour())*3600 + int64(parsed.Minute())*60 + int64(parsed.Second())
	return pgtype.Time{Microseconds: micros * 1_000_000, Valid: true}
}
