package generator

import (
	"testing"

	"github.com/prasetya/siaklake/internal/model"
)

// TestGenerate_EndToEnd runs the full dependency chain at a small scale
// and checks the dataset is mutually consistent.
func TestGenerate_EndToEnd(t *testing.T) {
	ds, err := Generate(Counts{
		Faculties:      5,
		Programs:       10,
		Lecturers:      50,
		Students:       200,
		Rooms:          30,
		Courses:        100,
		Semesters:      8,
		ClassSchedules: 300,
		Registrations:  1000,
		StartYear:      2018,
		EndYear:        2022,
	}, testRand())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if len(ds.Faculties) != 5 || len(ds.Programs) != 10 || len(ds.Lecturers) != 50 ||
		len(ds.Students) != 200 || len(ds.Rooms) != 30 || len(ds.Courses) != 100 ||
		len(ds.Semesters) != 8 {
		t.Fatalf("unexpected base collection sizes: %d/%d/%d/%d/%d/%d/%d",
			len(ds.Faculties), len(ds.Programs), len(ds.Lecturers), len(ds.Students),
			len(ds.Rooms), len(ds.Courses), len(ds.Semesters))
	}
	if len(ds.ClassSchedules) == 0 || len(ds.Registrations) == 0 || len(ds.Grades) == 0 {
		t.Fatal("activity collections are empty")
	}

	facultyIDs := idSet(len(ds.Faculties), func(i int) int64 { return ds.Faculties[i].ID })
	programIDs := idSet(len(ds.Programs), func(i int) int64 { return ds.Programs[i].ID })
	lecturerIDs := idSet(len(ds.Lecturers), func(i int) int64 { return ds.Lecturers[i].ID })
	studentIDs := idSet(len(ds.Students), func(i int) int64 { return ds.Students[i].ID })
	roomIDs := idSet(len(ds.Rooms), func(i int) int64 { return ds.Rooms[i].ID })
	courseIDs := idSet(len(ds.Courses), func(i int) int64 { return ds.Courses[i].ID })
	semesterIDs := idSet(len(ds.Semesters), func(i int) int64 { return ds.Semesters[i].ID })
	registrationIDs := idSet(len(ds.Registrations), func(i int) int64 { return ds.Registrations[i].ID })

	for _, p := range ds.Programs {
		requireRef(t, facultyIDs, p.FacultyID, "program", p.ID)
	}
	for _, l := range ds.Lecturers {
		requireRef(t, facultyIDs, l.FacultyID, "lecturer", l.ID)
	}
	for _, s := range ds.Students {
		requireRef(t, programIDs, s.ProgramID, "student", s.ID)
	}
	for _, c := range ds.Courses {
		requireRef(t, programIDs, c.ProgramID, "course", c.ID)
	}
	for _, cs := range ds.ClassSchedules {
		requireRef(t, courseIDs, cs.CourseID, "schedule", cs.ID)
		requireRef(t, lecturerIDs, cs.LecturerID, "schedule", cs.ID)
		requireRef(t, roomIDs, cs.RoomID, "schedule", cs.ID)
		requireRef(t, semesterIDs, cs.SemesterID, "schedule", cs.ID)
	}

	seen := map[registrationKey]struct{}{}
	for _, r := range ds.Registrations {
		requireRef(t, studentIDs, r.StudentID, "registration", r.ID)
		requireRef(t, courseIDs, r.CourseID, "registration", r.ID)
		requireRef(t, semesterIDs, r.SemesterID, "registration", r.ID)

		key := registrationKey{r.StudentID, r.CourseID, r.SemesterID}
		if _, taken := seen[key]; taken {
			t.Fatalf("duplicate registration tuple %+v after shard merge", key)
		}
		seen[key] = struct{}{}
	}

	for _, g := range ds.Grades {
		requireRef(t, registrationIDs, g.RegistrationID, "grade", g.ID)
		if g.NumericGrade < 0 || g.NumericGrade > 100 {
			t.Errorf("grade %d numeric %.2f outside 0-100", g.ID, g.NumericGrade)
		}
	}

	for _, rec := range ds.AcademicRecords {
		requireRef(t, studentIDs, rec.StudentID, "academic record", rec.ID)
		requireRef(t, semesterIDs, rec.SemesterID, "academic record", rec.ID)
		if rec.SemesterGPA < 0 || rec.SemesterGPA > 4 {
			t.Errorf("academic record %d semester GPA %.2f outside 0-4", rec.ID, rec.SemesterGPA)
		}
	}

	for _, fee := range ds.SemesterFees {
		requireRef(t, studentIDs, fee.StudentID, "fee", fee.ID)
		requireRef(t, semesterIDs, fee.SemesterID, "fee", fee.ID)
	}
}

func idSet(n int, id func(int) int64) map[int64]struct{} {
	set := make(map[int64]struct{}, n)
	for i := 0; i < n; i++ {
		set[id(i)] = struct{}{}
	}
	return set
}

func requireRef(t *testing.T, set map[int64]struct{}, id int64, kind string, owner int64) {
	t.Helper()
	if _, ok := set[id]; !ok {
		t.Fatalf("%s %d references unknown id %d", kind, owner, id)
	}
}

func TestAttendanceRecords_WithinSemester(t *testing.T) {
	rng := testRand()
	faculties, _ := Faculties(rng, 3)
	programs, _ := Programs(rng, faculties, 6)
	students, _ := Students(rng, programs, 50, 2019, 2021)
	lecturers, _ := Lecturers(rng, faculties, 10)
	rooms, _ := Rooms(rng, 10)
	courses, _ := Courses(rng, programs, 30)
	semesters := Semesters(rng, 4, 2019)
	schedules := ClassSchedules(rng, courses, lecturers, rooms, semesters, 100)

	attendance := AttendanceRecords(rng, students, schedules, semesters, 500)
	if len(attendance) == 0 {
		t.Fatal("expected attendance records")
	}

	scheduleByID := map[int64]model.ClassSchedule{}
	for _, s := range schedules {
		scheduleByID[s.ID] = s
	}
	semesterByID := map[int64]model.Semester{}
	for _, s := range semesters {
		semesterByID[s.ID] = s
	}

	for _, a := range attendance {
		schedule, ok := scheduleByID[a.ClassScheduleID]
		if !ok {
			t.Fatalf("attendance %d references unknown schedule %d", a.ID, a.ClassScheduleID)
		}
		if a.CourseID != schedule.CourseID {
			t.Errorf("attendance %d course %d does not match schedule course %d", a.ID, a.CourseID, schedule.CourseID)
		}
		if a.MeetingDate.Weekday() != scheduleWeekdays[schedule.DayOfWeek] {
			t.Errorf("attendance %d meeting on %s, schedule runs on %s", a.ID, a.MeetingDate.Weekday(), schedule.DayOfWeek)
		}

		semester := semesterByID[schedule.SemesterID]
		if a.MeetingDate.Before(semester.StartDate) {
			t.Errorf("attendance %d meeting %s before semester start", a.ID, a.MeetingDate.Format("2006-01-02"))
		}
	}
}
