package generator

import (
	"fmt"
	"testing"
)

func TestClassSchedules_NoDoubleBooking(t *testing.T) {
	rng := testRand()
	faculties, _ := Faculties(rng, 5)
	programs, _ := Programs(rng, faculties, 10)
	lecturers, _ := Lecturers(rng, faculties, 20)
	rooms, _ := Rooms(rng, 10)
	courses, _ := Courses(rng, programs, 50)
	semesters := Semesters(rng, 4, 2020)

	schedules := ClassSchedules(rng, courses, lecturers, rooms, semesters, 300)
	if len(schedules) == 0 {
		t.Fatal("expected schedules to be generated")
	}

	slots := map[string]struct{}{}
	for _, s := range schedules {
		key := fmt.Sprintf("%d-%d-%s-%s", s.SemesterID, s.RoomID, s.DayOfWeek, s.StartTime)
		if _, taken := slots[key]; taken {
			t.Fatalf("double booking: semester %d room %d %s %s", s.SemesterID, s.RoomID, s.DayOfWeek, s.StartTime)
		}
		slots[key] = struct{}{}

		if s.ScheduleID == "" {
			t.Errorf("schedule %d has empty schedule uuid", s.ID)
		}
		if _, known := scheduleWeekdays[s.DayOfWeek]; !known {
			t.Errorf("schedule %d has unknown day %q", s.ID, s.DayOfWeek)
		}
	}
}

func TestClassSchedules_SlotMatchesCredits(t *testing.T) {
	rng := testRand()
	faculties, _ := Faculties(rng, 3)
	programs, _ := Programs(rng, faculties, 6)
	lecturers, _ := Lecturers(rng, faculties, 10)
	rooms, _ := Rooms(rng, 20)
	courses, _ := Courses(rng, programs, 40)
	semesters := Semesters(rng, 2, 2021)

	courseCredits := map[int64]int{}
	for _, c := range courses {
		courseCredits[c.ID] = c.Credits
	}

	regularStarts := map[string]struct{}{}
	for _, slot := range regularSlots {
		regularStarts[slot.start] = struct{}{}
	}
	extendedStarts := map[string]struct{}{}
	for _, slot := range extendedSlots {
		extendedStarts[slot.start] = struct{}{}
	}

	for _, s := range ClassSchedules(rng, courses, lecturers, rooms, semesters, 200) {
		if courseCredits[s.CourseID] >= 3 {
			if _, ok := extendedStarts[s.StartTime]; !ok {
				t.Errorf("3+ credit course %d scheduled in regular slot %s", s.CourseID, s.StartTime)
			}
		} else {
			if _, ok := regularStarts[s.StartTime]; !ok {
				t.Errorf("short course %d scheduled in extended slot %s", s.CourseID, s.StartTime)
			}
		}
	}
}

func TestClassSchedules_DropsWhenSlotsExhausted(t *testing.T) {
	rng := testRand()
	faculties, _ := Faculties(rng, 2)
	programs, _ := Programs(rng, faculties, 2)
	lecturers, _ := Lecturers(rng, faculties, 2)
	rooms, _ := Rooms(rng, 1)
	semesters := Semesters(rng, 1, 2022)
	courses, _ := Courses(rng, programs, 5)

	// One room, one semester: at most days x slots placements exist, so
	// an oversized target must under-deliver rather than conflict.
	schedules := ClassSchedules(rng, courses, lecturers, rooms, semesters, 500)
	limit := len(scheduleDays) * (len(regularSlots) + len(extendedSlots))
	if len(schedules) > limit {
		t.Fatalf("got %d schedules, more than the %d placeable slots", len(schedules), limit)
	}
}
