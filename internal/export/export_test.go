package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetya/siaklake/internal/generator"
	"github.com/prasetya/siaklake/internal/model"
)

func sampleDataset() *generator.Dataset {
	paid := time.Date(2021, 8, 10, 0, 0, 0, 0, time.UTC)
	return &generator.Dataset{
		Faculties: []model.Faculty{{ID: 1, Code: "FT", Name: "Fakultas Teknik"}},
		Programs:  []model.Program{{ID: 1, Code: "FTEL", Name: "Teknik Elektro", FacultyID: 1}},
		Lecturers: []model.Lecturer{{ID: 1, EmployeeNumber: "19750101012341", Name: "Dr. Budi Santoso", Email: "budi.santoso@ui.ac.id", FacultyID: 1}},
		Students: []model.Student{{
			ID: 1, StudentNumber: "0218512001", Username: "asari", Name: "Andi Sari",
			Email: "asari@mahasiswa.ui.ac.id",
			EnrollmentDate: time.Date(2021, 8, 15, 0, 0, 0, 0, time.UTC),
			ProgramID: 1, IsActive: true,
		}},
		Rooms:   []model.Room{{ID: 1, RoomNumber: "101", Building: "Gedung A", Capacity: 30}},
		Courses: []model.Course{{ID: 1, Code: "ENEE110001", Name: "Rangkaian Listrik", Credits: 3, ProgramID: 1}},
		Semesters: []model.Semester{{
			ID: 1, Code: "1/2021", Name: "Semester Ganjil 2021/2022",
			StartDate: time.Date(2021, 8, 23, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2021, 12, 17, 0, 0, 0, 0, time.UTC),
		}},
		ClassSchedules: []model.ClassSchedule{{
			ID: 1, ScheduleID: "b2f9c2aa-0000-4000-8000-000000000001",
			CourseID: 1, LecturerID: 1, RoomID: 1, SemesterID: 1,
			DayOfWeek: "Senin", StartTime: "07:00:00", EndTime: "09:30:00",
		}},
		Registrations: []model.Registration{{
			ID: 1, RegistrationID: "b2f9c2aa-0000-4000-8000-000000000002",
			StudentID: 1, CourseID: 1, SemesterID: 1,
			Timestamp: time.Date(2021, 8, 9, 0, 0, 0, 0, time.UTC),
		}},
		Grades:          []model.Grade{{ID: 1, RegistrationID: 1, NumericGrade: 87.5, LetterGrade: "A"}},
		AcademicRecords: []model.AcademicRecord{{ID: 1, StudentID: 1, SemesterID: 1, SemesterGPA: 4, CumulativeGPA: 4, SemesterCredits: 3, CreditsPassed: 3, TotalCredits: 3}},
		SemesterFees:    []model.SemesterFee{{ID: 1, StudentID: 1, SemesterID: 1, FeeAmount: 9_000_000, PaymentDate: &paid}},
	}
}

func TestWriteDataset_CSV(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()

	require.NoError(t, WriteDataset(ds, dir, FormatCSV))

	// Attendance is empty, so only the twelve core tables exist.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 12)

	file, err := os.Open(filepath.Join(dir, "students.csv"))
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"id", "student_number", "username", "name", "email",
		"enrollment_date", "program_id", "is_active",
	}, rows[0])
	assert.Equal(t, []string{
		"1", "0218512001", "asari", "Andi Sari", "asari@mahasiswa.ui.ac.id",
		"2021-08-15", "1", "true",
	}, rows[1])
}

func TestWriteDataset_JSON(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()

	require.NoError(t, WriteDataset(ds, dir, FormatJSON))

	data, err := os.ReadFile(filepath.Join(dir, "grades.json"))
	require.NoError(t, err)

	var grades []model.Grade
	require.NoError(t, json.Unmarshal(data, &grades))
	require.Len(t, grades, 1)
	assert.Equal(t, 87.5, grades[0].NumericGrade)
	assert.Equal(t, "A", grades[0].LetterGrade)
}

func TestTables_DependencyOrder(t *testing.T) {
	tables := Tables(sampleDataset())

	names := make([]string, len(tables))
	for i, table := range tables {
		names[i] = table.Name
	}
	assert.Equal(t, []string{
		"faculties", "programs", "lecturers", "students", "rooms",
		"courses", "semesters", "class_schedules", "registrations",
		"grades", "semester_fees", "academic_records",
	}, names)
}

func TestTables_NilPaymentDateSerializesEmpty(t *testing.T) {
	ds := sampleDataset()
	ds.SemesterFees[0].PaymentDate = nil

	for _, table := range Tables(ds) {
		if table.Name != "semester_fees" {
			continue
		}
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "", table.Rows[0][4])
		return
	}
	t.Fatal("semester_fees table missing")
}
