package generator

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/prasetya/siaklake/internal/model"
)

// Weekly teaching days; Saturday carries the least load.
var scheduleDays = []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
var scheduleDayWeights = []int{20, 20, 20, 20, 15, 5}

type timeSlot struct {
	start string
	end   string
}

// Regular 2-SKS session blocks.
var regularSlots = []timeSlot{
	{"07:00:00", "08:40:00"},
	{"08:41:00", "10:20:00"},
	{"10:21:00", "12:00:00"},
	{"12:01:00", "13:40:00"},
	{"13:41:00", "15:20:00"},
	{"15:21:00", "17:00:00"},
	{"17:01:00", "18:40:00"},
}

// Extended blocks for labs and 3+ SKS courses.
var extendedSlots = []timeSlot{
	{"07:00:00", "09:30:00"},
	{"10:00:00", "12:30:00"},
	{"13:00:00", "15:30:00"},
	{"16:00:00", "18:30:00"},
}

// How many (day, slot) re-draws one schedule attempt gets before the
// attempt is dropped.
const maxSlotAttempts = 50

// ClassSchedules generates up to n schedules, allocating non-conflicting
// (semester, room, day, start time) slots. This is a best-effort
// allocator: when a course/room pairing cannot find a free slot within
// the attempt ceiling it is silently skipped and the result simply
// contains fewer schedules. The conflict set is local to this call and
// must not be shared across goroutines; sharding this generator would
// reintroduce double-booking.
func ClassSchedules(rng *rand.Rand, courses []model.Course, lecturers []model.Lecturer, rooms []model.Room, semesters []model.Semester, n int) []model.ClassSchedule {
	if len(courses) == 0 || len(lecturers) == 0 || len(rooms) == 0 || len(semesters) == 0 {
		return nil
	}

	result := make([]model.ClassSchedule, 0, n)
	usedSlots := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		course := courses[rng.Intn(len(courses))]
		lecturer := lecturers[rng.Intn(len(lecturers))]
		room := rooms[rng.Intn(len(rooms))]
		semester := semesters[rng.Intn(len(semesters))]

		slotOptions := regularSlots
		if course.Credits >= 3 {
			slotOptions = extendedSlots
		}

		placed := false
		var day string
		var slot timeSlot
		for attempt := 0; attempt < maxSlotAttempts; attempt++ {
			day = scheduleDays[weightedIndex(rng, scheduleDayWeights)]
			slot = slotOptions[rng.Intn(len(slotOptions))]

			key := fmt.Sprintf("%d-%d-%s-%s", semester.ID, room.ID, day, slot.start)
			if _, taken := usedSlots[key]; !taken {
				usedSlots[key] = struct{}{}
				placed = true
				break
			}
		}
		if !placed {
			continue
		}

		result = append(result, model.ClassSchedule{
			ID:         int64(len(result) + 1),
			ScheduleID: uuid.NewString(),
			CourseID:   course.ID,
			LecturerID: lecturer.ID,
			RoomID:     room.ID,
			SemesterID: semester.ID,
			DayOfWeek:  day,
			StartTime:  slot.start,
			EndTime:    slot.end,
		})
	}

	return result
}
