package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/prasetya/siaklake/internal/model"
)

// semesterTerm describes one of the two regular terms per academic
// year, with its nominal calendar anchors.
type semesterTerm struct {
	name       string
	code       string
	yearOffset int // spring terms run in the following calendar year
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
}

var semesterTerms = []semesterTerm{
	{name: "Ganjil", code: "1", yearOffset: 0, startMonth: time.August, startDay: 22, endMonth: time.December, endDay: 16},
	{name: "Genap", code: "2", yearOffset: 1, startMonth: time.January, startDay: 27, endMonth: time.May, endDay: 19},
}

// Semesters generates n academic terms starting from startYear, two per
// academic year in chronological order. Calendar anchors get a ±5 day
// jitter and are pushed off weekends.
func Semesters(rng *rand.Rand, n, startYear int) []model.Semester {
	result := make([]model.Semester, 0, n)
	id := int64(1)

	for year := startYear; len(result) < n; year++ {
		for _, term := range semesterTerms {
			start := jitteredWeekday(rng, year+term.yearOffset, term.startMonth, term.startDay)
			end := jitteredWeekday(rng, year+term.yearOffset, term.endMonth, term.endDay)

			result = append(result, model.Semester{
				ID:        id,
				Code:      fmt.Sprintf("%s/%d", term.code, year),
				Name:      fmt.Sprintf("Semester %s %d/%d", term.name, year, year+1),
				StartDate: start,
				EndDate:   end,
			})
			id++

			if len(result) >= n {
				break
			}
		}
	}

	return result
}

// jitteredWeekday applies a ±5 day jitter to the anchor date, then
// advances past Saturday/Sunday.
func jitteredWeekday(rng *rand.Rand, year int, month time.Month, day int) time.Time {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	date = date.AddDate(0, 0, intBetween(rng, -5, 5))
	for date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}
