package generator

import (
	"testing"
)

func TestStudents_NumberFormat(t *testing.T) {
	rng := testRand()
	faculties, err := Faculties(rng, 5)
	if err != nil {
		t.Fatalf("Faculties error: %v", err)
	}
	programs, err := Programs(rng, faculties, 10)
	if err != nil {
		t.Fatalf("Programs error: %v", err)
	}

	students, err := Students(rng, programs, 500, 2018, 2023)
	if err != nil {
		t.Fatalf("Students error: %v", err)
	}
	if len(students) != 500 {
		t.Fatalf("expected 500 students, got %d", len(students))
	}

	programIDs := map[int64]struct{}{}
	for _, p := range programs {
		programIDs[p.ID] = struct{}{}
	}

	usernames := map[string]struct{}{}
	for _, s := range students {
		if len(s.StudentNumber) != 10 {
			t.Fatalf("student %d number %q is not 10 characters", s.ID, s.StudentNumber)
		}
		for _, ch := range s.StudentNumber {
			if ch < '0' || ch > '9' {
				t.Fatalf("student number %q contains non-digit %q", s.StudentNumber, ch)
			}
		}

		year := s.EnrollmentDate.Year()
		if year < 2018 || year > 2023 {
			t.Errorf("enrollment year %d out of range", year)
		}
		// The published layout concatenates nine digits and left-pads
		// to ten, so the year code sits after a single leading zero.
		if s.StudentNumber[0] != '0' || s.StudentNumber[1:3] != twoDigitYear(year) {
			t.Errorf("student number %s does not carry year code %s", s.StudentNumber, twoDigitYear(year))
		}

		if _, ok := programIDs[s.ProgramID]; !ok {
			t.Errorf("student %d references unknown program %d", s.ID, s.ProgramID)
		}

		if _, taken := usernames[s.Username]; taken {
			t.Errorf("duplicate username %s", s.Username)
		}
		usernames[s.Username] = struct{}{}
	}
}

func twoDigitYear(year int) string {
	return string([]byte{byte('0' + (year/10)%10), byte('0' + year%10)})
}

func TestStudentNumber_KnownProgram(t *testing.T) {
	// FK -> faculty digit 2, program part "01", serial 0037, the nine
	// digits then left-padded to ten.
	if npm := studentNumber(2021, "FK01", 37); npm != "0212010037" {
		t.Fatalf("studentNumber(2021, FK01, 37) = %q, want 0212010037", npm)
	}
}

func TestStudentNumber_SerialWraps(t *testing.T) {
	a := studentNumber(2020, "FTEL", 1)
	b := studentNumber(2020, "FTEL", 10001)
	if a != b {
		t.Fatalf("serial should wrap at 10000: %s vs %s", a, b)
	}
}

func TestProgramDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12", "12"},
		{"A", "01"},
		{"IK", "91"}, // I=9, K=11 truncated to two digits
		{"", "00"},
	}
	for _, tc := range cases {
		if got := programDigits(tc.in); got != tc.want {
			t.Errorf("programDigits(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
