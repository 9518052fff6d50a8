package model

import "time"

// ClassSchedule assigns a course, lecturer and room to a weekly time
// slot within a semester. No two schedules may share
// (semester, room, day, start time).
type ClassSchedule struct {
	ID         int64  `json:"id"`
	ScheduleID string `json:"schedule_id"`
	CourseID   int64  `json:"course_id"`
	LecturerID int64  `json:"lecturer_id"`
	RoomID     int64  `json:"room_id"`
	SemesterID int64  `json:"semester_id"`
	DayOfWeek  string `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// Registration records a student taking a course in a semester.
// (StudentID, CourseID, SemesterID) is unique and the semester must not
// start before the student's enrollment date.
type Registration struct {
	ID             int64     `json:"id"`
	RegistrationID string    `json:"registration_id"`
	StudentID      int64     `json:"student_id"`
	CourseID       int64     `json:"course_id"`
	SemesterID     int64     `json:"semester_id"`
	Timestamp      time.Time `json:"timestamp"`
}

// Grade is the final grade for a registration. Registrations still in
// progress have no Grade row at all.
type Grade struct {
	ID             int64   `json:"id"`
	RegistrationID int64   `json:"registration_id"`
	NumericGrade   float64 `json:"numeric_grade"`
	LetterGrade    string  `json:"letter_grade"`
}

// AcademicRecord is the per-semester academic summary for a student.
// CumulativeGPA is a credit-weighted running average over the student's
// semesters in chronological order.
type AcademicRecord struct {
	ID              int64   `json:"id"`
	StudentID       int64   `json:"student_id"`
	SemesterID      int64   `json:"semester_id"`
	SemesterGPA     float64 `json:"semester_gpa"`
	CumulativeGPA   float64 `json:"cumulative_gpa"`
	SemesterCredits int     `json:"semester_credits"`
	CreditsPassed   int     `json:"credits_passed"`
	TotalCredits    int     `json:"total_credits"`
}

// SemesterFee is the tuition bill for a student in a semester. The fee
// derives from the student's UKT tier, which never changes once
// assigned. A nil PaymentDate means unpaid.
type SemesterFee struct {
	ID          int64      `json:"id"`
	StudentID   int64      `json:"student_id"`
	SemesterID  int64      `json:"semester_id"`
	FeeAmount   int64      `json:"fee_amount"`
	PaymentDate *time.Time `json:"payment_date"`
}

// Attendance is a single check-in for a class meeting, as an external
// attendance system would report it.
type Attendance struct {
	ID              int64     `json:"id"`
	StudentID       int64     `json:"student_id"`
	CourseID        int64     `json:"course_id"`
	ClassScheduleID int64     `json:"class_schedule_id"`
	MeetingDate     time.Time `json:"meeting_date"`
	CheckInTime     string    `json:"check_in_time"`
}
