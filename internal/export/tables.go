package export

import (
	"strconv"

	"github.com/prasetya/siaklake/internal/generator"
)

const dateLayout = "2006-01-02"
const timestampLayout = "2006-01-02 15:04:05"

// Table is one generated collection flattened for serialization. The
// header names are the frozen field-name contract of the published
// files; renaming any of them is a breaking change.
type Table struct {
	Name    string
	Header  []string
	Rows    [][]string
	Records interface{}
}

// Tables flattens the dataset in warehouse dependency order.
func Tables(ds *generator.Dataset) []Table {
	tables := []Table{
		facultiesTable(ds),
		programsTable(ds),
		lecturersTable(ds),
		studentsTable(ds),
		roomsTable(ds),
		coursesTable(ds),
		semestersTable(ds),
		classSchedulesTable(ds),
		registrationsTable(ds),
		gradesTable(ds),
		semesterFeesTable(ds),
		academicRecordsTable(ds),
	}
	if len(ds.Attendance) > 0 {
		tables = append(tables, attendanceTable(ds))
	}
	return tables
}

func facultiesTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.Faculties))
	for _, f := range ds.Faculties {
		rows = append(rows, []string{formatID(f.ID), f.Code, f.Name})
	}
	return Table{
		Name:    "faculties",
		Header:  []string{"id", "code", "name"},
		Rows:    rows,
		Records: ds.Faculties,
	}
}

func programsTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.Programs))
	for _, p := range ds.Programs {
		rows = append(rows, []string{formatID(p.ID), p.Code, p.Name, formatID(p.FacultyID)})
	}
	return Table{
		Name:    "programs",
		Header:  []string{"id", "code", "name", "faculty_id"},
		Rows:    rows,
		Records: ds.Programs,
	}
}

func lecturersTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.Lecturers))
	for _, l := range ds.Lecturers {
		rows = append(rows, []string{formatID(l.ID), l.EmployeeNumber, l.Name, l.Email, formatID(l.FacultyID)})
	}
	return Table{
		Name:    "lecturers",
		Header:  []string{"id", "employee_number", "name", "email", "faculty_id"},
		Rows:    rows,
		Records: ds.Lecturers,
	}
}

func studentsTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.Students))
	for _, s := range ds.Students {
		rows = append(rows, []string{
			formatID(s.ID), s.StudentNumber, s.Username, s.Name, s.Email,
			s.EnrollmentDate.Format(dateLayout), formatID(s.ProgramID),
			strconv.FormatBool(s.IsActive),
		})
	}
	return Table{
		Name: "students",
		Header: []string{
			"id", "student_number", "username", "name", "email",
			"enrollment_date", "program_id", "is_active",
		},
		Rows:    rows,
		Records: ds.Students,
	}
}

func roomsTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.Rooms))
	for _, r := range ds.Rooms {
		rows = append(rows, []string{formatID(r.ID), r.RoomNumber, r.Building, strconv.Itoa(r.Capacity)})
	}
	return Table{
		Name:    "rooms",
		Header:  []string{"id", "room_number", "building", "capacity"},
		Rows:    rows,
		Records: ds.Rooms,
	}
}

func coursesTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.Courses))
	for _, c := range ds.Courses {
		rows = append(rows, []string{formatID(c.ID), c.Code, c.Name, strconv.Itoa(c.Credits), formatID(c.ProgramID)})
	}
	return Table{
		Name:    "courses",
		Header:  []string{"id", "code", "name", "credits", "program_id"},
		Rows:    rows,
		Records: ds.Courses,
	}
}

func semestersTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.Semesters))
	for _, s := range ds.Semesters {
		rows = append(rows, []string{
			formatID(s.ID), s.Code, s.Name,
			s.StartDate.Format(dateLayout), s.EndDate.Format(dateLayout),
		})
	}
	return Table{
		Name:    "semesters",
		Header:  []string{"id", "code", "name", "start_date", "end_date"},
		Rows:    rows,
		Records: ds.Semesters,
	}
}

func classSchedulesTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.ClassSchedules))
	for _, cs := range ds.ClassSchedules {
		rows = append(rows, []string{
			formatID(cs.ID), cs.ScheduleID, formatID(cs.CourseID),
			formatID(cs.LecturerID), formatID(cs.RoomID), formatID(cs.SemesterID),
			cs.DayOfWeek, cs.StartTime, cs.EndTime,
		})
	}
	return Table{
		Name: "class_schedules",
		Header: []string{
			"id", "schedule_id", "course_id", "lecturer_id", "room_id",
			"semester_id", "day_of_week", "start_time", "end_time",
		},
		Rows:    rows,
		Records: ds.ClassSchedules,
	}
}

func registrationsTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.Registrations))
	for _, r := range ds.Registrations {
		rows = append(rows, []string{
			formatID(r.ID), r.RegistrationID, formatID(r.StudentID),
			formatID(r.CourseID), formatID(r.SemesterID),
			r.Timestamp.Format(timestampLayout),
		})
	}
	return Table{
		Name: "registrations",
		Header: []string{
			"id", "registration_id", "student_id", "course_id",
			"semester_id", "timestamp",
		},
		Rows:    rows,
		Records: ds.Registrations,
	}
}

func gradesTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.Grades))
	for _, g := range ds.Grades {
		rows = append(rows, []string{
			formatID(g.ID), formatID(g.RegistrationID),
			strconv.FormatFloat(g.NumericGrade, 'f', 2, 64), g.LetterGrade,
		})
	}
	return Table{
		Name:    "grades",
		Header:  []string{"id", "registration_id", "numeric_grade", "letter_grade"},
		Rows:    rows,
		Records: ds.Grades,
	}
}

func semesterFeesTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.SemesterFees))
	for _, f := range ds.SemesterFees {
		payment := ""
		if f.PaymentDate != nil {
			payment = f.PaymentDate.Format(dateLayout)
		}
		rows = append(rows, []string{
			formatID(f.ID), formatID(f.StudentID), formatID(f.SemesterID),
			strconv.FormatInt(f.FeeAmount, 10), payment,
		})
	}
	return Table{
		Name:    "semester_fees",
		Header:  []string{"id", "student_id", "semester_id", "fee_amount", "payment_date"},
		Rows:    rows,
		Records: ds.SemesterFees,
	}
}

func academicRecordsTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.AcademicRecords))
	for _, r := range ds.AcademicRecords {
		rows = append(rows, []string{
			formatID(r.ID), formatID(r.StudentID), formatID(r.SemesterID),
			strconv.FormatFloat(r.SemesterGPA, 'f', 2, 64),
			strconv.FormatFloat(r.CumulativeGPA, 'f', 2, 64),
			strconv.Itoa(r.SemesterCredits), strconv.Itoa(r.CreditsPassed),
			strconv.Itoa(r.TotalCredits),
		})
	}
	return Table{
		Name: "academic_records",
		Header: []string{
			"id", "student_id", "semester_id", "semester_gpa",
			"cumulative_gpa", "semester_credits", "credits_passed",
			"total_credits",
		},
		Rows:    rows,
		Records: ds.AcademicRecords,
	}
}

func attendanceTable(ds *generator.Dataset) Table {
	rows := make([][]string, 0, len(ds.Attendance))
	for _, a := range ds.Attendance {
		rows = append(rows, []string{
			formatID(a.ID), formatID(a.StudentID), formatID(a.CourseID),
			formatID(a.ClassScheduleID), a.MeetingDate.Format(dateLayout),
			a.CheckInTime,
		})
	}
	return Table{
		Name: "attendance",
		Header: []string{
			"id", "student_id", "course_id", "class_schedule_id",
			"meeting_date", "check_in_time",
		},
		Rows:    rows,
		Records: ds.Attendance,
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
