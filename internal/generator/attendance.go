package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/prasetya/siaklake/internal/model"
)

// scheduleWeekdays maps schedule day names onto time.Weekday.
var scheduleWeekdays = map[string]time.Weekday{
	"Senin":  time.Monday,
	"Selasa": time.Tuesday,
	"Rabu":   time.Wednesday,
	"Kamis":  time.Thursday,
	"Jumat":  time.Friday,
	"Sabtu":  time.Saturday,
}

// AttendanceRecords simulates check-ins coming from an external
// attendance system. Meeting dates land inside the schedule's semester
// on the schedule's weekday; check-in times jitter around the session
// start (10 minutes early to 5 minutes late). Absences (about 20% of
// draws) produce no row. Attempts are bounded at 3× the target, so the
// result may fall short of n. A zero or negative n defaults to roughly
// 14 meetings per schedule.
func AttendanceRecords(rng *rand.Rand, students []model.Student, schedules []model.ClassSchedule, semesters []model.Semester, n int) []model.Attendance {
	if len(students) == 0 || len(schedules) == 0 || len(semesters) == 0 {
		return nil
	}
	if n <= 0 {
		n = len(schedules) * 14
	}

	semesterByID := make(map[int64]model.Semester, len(semesters))
	for _, s := range semesters {
		semesterByID[s.ID] = s
	}

	result := make([]model.Attendance, 0, n)
	maxAttempts := n * 3

	for attempt := 0; attempt < maxAttempts && len(result) < n; attempt++ {
		schedule := schedules[rng.Intn(len(schedules))]
		semester, ok := semesterByID[schedule.SemesterID]
		if !ok {
			continue
		}

		meetingDate := randomDateBetween(rng, semester.StartDate, semester.EndDate)
		meetingDate = alignWeekday(meetingDate, scheduleWeekdays[schedule.DayOfWeek])

		student := students[rng.Intn(len(students))]

		if rng.Float64() >= 0.8 {
			continue
		}

		checkIn, err := jitterClock(rng, schedule.StartTime)
		if err != nil {
			continue
		}

		result = append(result, model.Attendance{
			ID:              int64(len(result) + 1),
			StudentID:       student.ID,
			CourseID:        schedule.CourseID,
			ClassScheduleID: schedule.ID,
			MeetingDate:     meetingDate,
			CheckInTime:     checkIn,
		})
	}

	return result
}

func randomDateBetween(rng *rand.Rand, start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, rng.Intn(days+1))
}

// alignWeekday advances date to the next occurrence of target.
func alignWeekday(date time.Time, target time.Weekday) time.Time {
	diff := (int(target) - int(date.Weekday()) + 7) % 7
	return date.AddDate(0, 0, diff)
}

// jitterClock shifts an HH:MM:SS clock string by -10..+5 minutes.
func jitterClock(rng *rand.Rand, clock string) (string, error) {
	parsed, err := time.Parse("15:04:05", clock)
	if err != nil {
		return "", fmt.Errorf("parsing clock %q: %w", clock, err)
	}
	shifted := parsed.Add(time.Duration(intBetween(rng, -10, 5)) * time.Minute)
	return shifted.Format("15:04:05"), nil
}
