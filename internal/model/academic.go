package model

import "time"

// Faculty represents a faculty at the university
type Faculty struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Program represents a study program offered by a faculty
type Program struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	FacultyID int64  `json:"faculty_id"`
}

// Lecturer represents a teaching staff member.
// EmployeeNumber follows the NIP layout: birth date, gender digit,
// four-digit serial and a check digit.
type Lecturer struct {
	ID             int64  `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	FacultyID      int64  `json:"faculty_id"`
}

// Student represents an enrolled student. StudentNumber is the 10-digit
// NPM encoding enrollment year, faculty, program and serial; it is
// format-stable but not guaranteed unique (the serial wraps at 10000).
type Student struct {
	ID             int64     `json:"id"`
	StudentNumber  string    `json:"student_number"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	ProgramID      int64     `json:"program_id"`
	IsActive       bool      `json:"is_active"`
}

// Room represents a physical room; (RoomNumber, Building) is unique.
type Room struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"room_number"`
	Building   string `json:"building"`
	Capacity   int    `json:"capacity"`
}

// Course represents a course belonging to a program. Credits follow the
// SKS system (1-6, mode 3).
type Course struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Credits   int    `json:"credits"`
	ProgramID int64  `json:"program_id"`
}

// Semester represents an academic term. Two are held per academic year
// (Ganjil and Genap); IDs increase chronologically.
type Semester struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
